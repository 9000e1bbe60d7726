package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/irrigo/farm-backend/access"
	"github.com/irrigo/farm-backend/model"
)

func (ctl *controller) listMotors(c *gin.Context) {
	id, _ := access.IdentityFrom(c)
	farmID, ok := pathID(c, "farm_id")
	if !ok {
		return
	}

	motors := []model.Motor{}
	if err := ctl.scopedMotors(id, farmID).Find(&motors).Error; err != nil {
		storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, motors)
}

func (ctl *controller) createMotor(c *gin.Context) {
	id, _ := access.IdentityFrom(c)
	farmID, ok := pathID(c, "farm_id")
	if !ok {
		return
	}

	var input model.MotorInput
	if err := c.ShouldBindJSON(&input); err != nil {
		badRequest(c, "invalid payload")
		return
	}

	// The parent farm must be accessible to the caller before anything
	// is written. Motors have no privileged bypass, so this is a plain
	// ownership check.
	owner, err := ctl.farmOwner(farmID)
	if err != nil {
		storeError(c, err)
		return
	}
	if !access.CanAccess(id, owner, false) {
		notFound(c)
		return
	}

	motor := model.Motor{
		FarmID: farmID,
		Name:   input.Name,
		Active: input.Active,
	}
	if err := ctl.db.Create(&motor).Error; err != nil {
		storeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, motor)
}

func (ctl *controller) getMotor(c *gin.Context) {
	motor, ok := ctl.resolveMotor(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, motor)
}

func (ctl *controller) updateMotor(c *gin.Context) {
	motor, ok := ctl.resolveMotor(c)
	if !ok {
		return
	}

	var input model.MotorInput
	if err := c.ShouldBindJSON(&input); err != nil {
		badRequest(c, "invalid payload")
		return
	}

	motor.Name = input.Name
	motor.Active = input.Active
	if err := ctl.db.Save(&motor).Error; err != nil {
		storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, motor)
}

// patchMotor applies only the fields present in the body.
func (ctl *controller) patchMotor(c *gin.Context) {
	motor, ok := ctl.resolveMotor(c)
	if !ok {
		return
	}

	var patch model.MotorPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		badRequest(c, "invalid payload")
		return
	}

	if patch.Name != nil {
		motor.Name = *patch.Name
	}
	if patch.Active != nil {
		motor.Active = *patch.Active
	}
	if err := ctl.db.Save(&motor).Error; err != nil {
		storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, motor)
}

func (ctl *controller) deleteMotor(c *gin.Context) {
	motor, ok := ctl.resolveMotor(c)
	if !ok {
		return
	}
	if err := ctl.db.Delete(&motor).Error; err != nil {
		storeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// resolveMotor loads the motor addressed by the path and checks that
// the caller owns its farm. On failure it writes the error response
// and returns false.
func (ctl *controller) resolveMotor(c *gin.Context) (model.Motor, bool) {
	id, _ := access.IdentityFrom(c)
	farmID, ok := pathID(c, "farm_id")
	if !ok {
		return model.Motor{}, false
	}
	motorID, ok := pathID(c, "motor_id")
	if !ok {
		return model.Motor{}, false
	}

	var motor model.Motor
	err := ctl.db.Where("id = ? AND farm_id = ?", motorID, farmID).First(&motor).Error
	if err != nil {
		storeError(c, err)
		return model.Motor{}, false
	}

	owner, err := ctl.farmOwner(motor.FarmID)
	if err != nil {
		storeError(c, err)
		return model.Motor{}, false
	}
	if !access.CanAccess(id, owner, false) {
		notFound(c)
		return model.Motor{}, false
	}
	return motor, true
}
