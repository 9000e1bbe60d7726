package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/irrigo/farm-backend/model"
)

func TestValveListScopedThroughParentChain(t *testing.T) {
	_, router := newTestController(t)

	farm := createFarm(t, router, testUser1, model.FarmInput{Name: "North Field"})
	motor := createMotor(t, router, testUser1, farm.ID, model.MotorInput{Name: "pump-1"})
	createValve(t, router, testUser1, motor.ID, model.ValveInput{Name: "valve-1", Open: true})

	w := do(t, router, http.MethodGet, valvesPath(motor.ID), testUser1, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var valves []model.Valve
	decode(t, w, &valves)
	assert.Len(t, valves, 1)

	// Visibility resolves motor -> farm -> owner; nobody else sees it,
	// privileged roles included.
	for _, caller := range []model.User{testUser2, testAdmin, testManager} {
		w = do(t, router, http.MethodGet, valvesPath(motor.ID), caller, nil)
		require.Equal(t, http.StatusOK, w.Code)
		decode(t, w, &valves)
		assert.Empty(t, valves, "caller %s", caller.Name)
	}
}

func TestValveCreateOnForeignMotorRejected(t *testing.T) {
	ctl, router := newTestController(t)

	farm := createFarm(t, router, testUser1, model.FarmInput{Name: "North Field"})
	motor := createMotor(t, router, testUser1, farm.ID, model.MotorInput{Name: "pump-1"})

	for _, caller := range []model.User{testUser2, testManager} {
		w := do(t, router, http.MethodPost, valvesPath(motor.ID), caller,
			model.ValveInput{Name: "valve-x"})
		assert.Equal(t, http.StatusNotFound, w.Code, "caller %s", caller.Name)
	}

	var count int64
	require.NoError(t, ctl.db.Model(&model.Valve{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestValveDetailRoundTrip(t *testing.T) {
	_, router := newTestController(t)

	farm := createFarm(t, router, testUser1, model.FarmInput{Name: "North Field"})
	motor := createMotor(t, router, testUser1, farm.ID, model.MotorInput{Name: "pump-1"})
	valve := createValve(t, router, testUser1, motor.ID, model.ValveInput{Name: "valve-1", Open: false})

	w := do(t, router, http.MethodGet, valvePath(motor.ID, valve.ID), testUser1, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var got model.Valve
	decode(t, w, &got)
	assert.Equal(t, valve.ID, got.ID)
	assert.Equal(t, motor.ID, got.MotorID)
	assert.False(t, got.Open)

	w = do(t, router, http.MethodGet, valvePath(motor.ID, valve.ID), testUser2, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestValvePatchPartialUpdate(t *testing.T) {
	ctl, router := newTestController(t)

	farm := createFarm(t, router, testUser1, model.FarmInput{Name: "North Field"})
	motor := createMotor(t, router, testUser1, farm.ID, model.MotorInput{Name: "pump-1"})
	valve := createValve(t, router, testUser1, motor.ID, model.ValveInput{Name: "valve-1", Open: false})

	w := doRaw(t, router, http.MethodPatch, valvePath(motor.ID, valve.ID), testUser1, `{"open":true}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var got model.Valve
	require.NoError(t, ctl.db.First(&got, valve.ID).Error)
	assert.Equal(t, "valve-1", got.Name)
	assert.True(t, got.Open)
}

func TestValveUpdateAndDelete(t *testing.T) {
	ctl, router := newTestController(t)

	farm := createFarm(t, router, testUser1, model.FarmInput{Name: "North Field"})
	motor := createMotor(t, router, testUser1, farm.ID, model.MotorInput{Name: "pump-1"})
	valve := createValve(t, router, testUser1, motor.ID, model.ValveInput{Name: "valve-1", Open: false})

	w := do(t, router, http.MethodPatch, valvePath(motor.ID, valve.ID), testUser1,
		model.ValveInput{Name: "valve-1", Open: true})
	require.Equal(t, http.StatusOK, w.Code)

	var got model.Valve
	require.NoError(t, ctl.db.First(&got, valve.ID).Error)
	assert.True(t, got.Open)
	assert.Equal(t, motor.ID, got.MotorID)

	w = do(t, router, http.MethodDelete, valvePath(motor.ID, valve.ID), testUser1, nil)
	require.Equal(t, http.StatusNoContent, w.Code)

	w = do(t, router, http.MethodGet, valvePath(motor.ID, valve.ID), testUser1, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
