package api

import (
	"gorm.io/gorm"

	"github.com/irrigo/farm-backend/access"
	"github.com/irrigo/farm-backend/model"
)

// scopedFarms returns the farms visible to the caller: all of them for
// admins and managers, only their own for everybody else.
func (ctl *controller) scopedFarms(id access.Identity) *gorm.DB {
	q := ctl.db.Model(&model.Farm{})
	if id.Privileged() {
		return q
	}
	return q.Where("farms.owner_id = ?", id.UserID)
}

// scopedMotors returns the motors visible to the caller under the
// given farm. Unlike farms there is no privileged bypass here; every
// role is filtered down to farms it owns.
func (ctl *controller) scopedMotors(id access.Identity, farmID uint64) *gorm.DB {
	return ctl.db.Model(&model.Motor{}).
		Select("motors.*").
		Joins("JOIN farms ON farms.id = motors.farm_id").
		Where("motors.farm_id = ? AND farms.owner_id = ?", farmID, id.UserID)
}

// scopedValves returns the valves visible to the caller under the
// given motor, filtered through the motor -> farm -> owner chain. No
// privileged bypass, same as motors.
func (ctl *controller) scopedValves(id access.Identity, motorID uint64) *gorm.DB {
	return ctl.db.Model(&model.Valve{}).
		Select("valves.*").
		Joins("JOIN motors ON motors.id = valves.motor_id").
		Joins("JOIN farms ON farms.id = motors.farm_id").
		Where("valves.motor_id = ? AND farms.owner_id = ?", motorID, id.UserID)
}

// farmOwner resolves a farm's owner id.
func (ctl *controller) farmOwner(farmID uint64) (uint64, error) {
	var farm model.Farm
	if err := ctl.db.Select("id", "owner_id").First(&farm, farmID).Error; err != nil {
		return 0, err
	}
	return farm.OwnerID, nil
}

// motorOwner resolves a motor's effective owner, the owner of its
// farm.
func (ctl *controller) motorOwner(motorID uint64) (uint64, error) {
	var motor model.Motor
	if err := ctl.db.Select("id", "farm_id").First(&motor, motorID).Error; err != nil {
		return 0, err
	}
	return ctl.farmOwner(motor.FarmID)
}
