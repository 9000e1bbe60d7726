package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/irrigo/farm-backend/access"
	"github.com/irrigo/farm-backend/model"
)

func (ctl *controller) listValves(c *gin.Context) {
	id, _ := access.IdentityFrom(c)
	motorID, ok := pathID(c, "motor_id")
	if !ok {
		return
	}

	valves := []model.Valve{}
	if err := ctl.scopedValves(id, motorID).Find(&valves).Error; err != nil {
		storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, valves)
}

func (ctl *controller) createValve(c *gin.Context) {
	id, _ := access.IdentityFrom(c)
	motorID, ok := pathID(c, "motor_id")
	if !ok {
		return
	}

	var input model.ValveInput
	if err := c.ShouldBindJSON(&input); err != nil {
		badRequest(c, "invalid payload")
		return
	}

	// Same create-time parent check as motors, one level further down
	// the chain: the caller must own the farm behind the motor.
	owner, err := ctl.motorOwner(motorID)
	if err != nil {
		storeError(c, err)
		return
	}
	if !access.CanAccess(id, owner, false) {
		notFound(c)
		return
	}

	valve := model.Valve{
		MotorID: motorID,
		Name:    input.Name,
		Open:    input.Open,
	}
	if err := ctl.db.Create(&valve).Error; err != nil {
		storeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, valve)
}

func (ctl *controller) getValve(c *gin.Context) {
	valve, ok := ctl.resolveValve(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, valve)
}

func (ctl *controller) updateValve(c *gin.Context) {
	valve, ok := ctl.resolveValve(c)
	if !ok {
		return
	}

	var input model.ValveInput
	if err := c.ShouldBindJSON(&input); err != nil {
		badRequest(c, "invalid payload")
		return
	}

	valve.Name = input.Name
	valve.Open = input.Open
	if err := ctl.db.Save(&valve).Error; err != nil {
		storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, valve)
}

// patchValve applies only the fields present in the body.
func (ctl *controller) patchValve(c *gin.Context) {
	valve, ok := ctl.resolveValve(c)
	if !ok {
		return
	}

	var patch model.ValvePatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		badRequest(c, "invalid payload")
		return
	}

	if patch.Name != nil {
		valve.Name = *patch.Name
	}
	if patch.Open != nil {
		valve.Open = *patch.Open
	}
	if err := ctl.db.Save(&valve).Error; err != nil {
		storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, valve)
}

func (ctl *controller) deleteValve(c *gin.Context) {
	valve, ok := ctl.resolveValve(c)
	if !ok {
		return
	}
	if err := ctl.db.Delete(&valve).Error; err != nil {
		storeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (ctl *controller) resolveValve(c *gin.Context) (model.Valve, bool) {
	id, _ := access.IdentityFrom(c)
	motorID, ok := pathID(c, "motor_id")
	if !ok {
		return model.Valve{}, false
	}
	valveID, ok := pathID(c, "valve_id")
	if !ok {
		return model.Valve{}, false
	}

	var valve model.Valve
	err := ctl.db.Where("id = ? AND motor_id = ?", valveID, motorID).First(&valve).Error
	if err != nil {
		storeError(c, err)
		return model.Valve{}, false
	}

	owner, err := ctl.motorOwner(valve.MotorID)
	if err != nil {
		storeError(c, err)
		return model.Valve{}, false
	}
	if !access.CanAccess(id, owner, false) {
		notFound(c)
		return model.Valve{}, false
	}
	return valve, true
}
