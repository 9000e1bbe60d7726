package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/irrigo/farm-backend/access"
	"github.com/irrigo/farm-backend/model"
)

func (ctl *controller) listFarms(c *gin.Context) {
	id, _ := access.IdentityFrom(c)

	farms := []model.Farm{}
	if err := ctl.scopedFarms(id).Find(&farms).Error; err != nil {
		storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, farms)
}

func (ctl *controller) createFarm(c *gin.Context) {
	id, _ := access.IdentityFrom(c)

	var input model.FarmInput
	if err := c.ShouldBindJSON(&input); err != nil {
		badRequest(c, "invalid payload")
		return
	}

	// Admins and managers may create farms on behalf of another user.
	// Everybody else owns what they create, whatever the payload says.
	owner := id.UserID
	if id.Privileged() && input.OwnerID != 0 {
		owner = input.OwnerID
	}

	farm := model.Farm{
		Name:     input.Name,
		Location: input.Location,
		OwnerID:  owner,
	}
	if err := ctl.db.Create(&farm).Error; err != nil {
		storeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, farm)
}

func (ctl *controller) getFarm(c *gin.Context) {
	farm, ok := ctl.resolveFarm(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, farm)
}

func (ctl *controller) updateFarm(c *gin.Context) {
	farm, ok := ctl.resolveFarm(c)
	if !ok {
		return
	}

	var input model.FarmInput
	if err := c.ShouldBindJSON(&input); err != nil {
		badRequest(c, "invalid payload")
		return
	}

	// Ownership is never reassigned through update.
	farm.Name = input.Name
	farm.Location = input.Location
	if err := ctl.db.Save(&farm).Error; err != nil {
		storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, farm)
}

// patchFarm applies only the fields present in the body.
func (ctl *controller) patchFarm(c *gin.Context) {
	farm, ok := ctl.resolveFarm(c)
	if !ok {
		return
	}

	var patch model.FarmPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		badRequest(c, "invalid payload")
		return
	}

	if patch.Name != nil {
		farm.Name = *patch.Name
	}
	if patch.Location != nil {
		farm.Location = *patch.Location
	}
	if err := ctl.db.Save(&farm).Error; err != nil {
		storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, farm)
}

func (ctl *controller) deleteFarm(c *gin.Context) {
	farm, ok := ctl.resolveFarm(c)
	if !ok {
		return
	}
	if err := ctl.db.Delete(&farm).Error; err != nil {
		storeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// resolveFarm loads the farm addressed by the path and applies the
// object policy; farms are bypass-eligible, so admins and managers
// pass for any owner. On failure it writes the error response and
// returns false.
func (ctl *controller) resolveFarm(c *gin.Context) (model.Farm, bool) {
	id, _ := access.IdentityFrom(c)
	farmID, ok := pathID(c, "farm_id")
	if !ok {
		return model.Farm{}, false
	}

	var farm model.Farm
	if err := ctl.db.First(&farm, farmID).Error; err != nil {
		storeError(c, err)
		return model.Farm{}, false
	}
	if !access.CanAccess(id, farm.OwnerID, true) {
		notFound(c)
		return model.Farm{}, false
	}
	return farm, true
}
