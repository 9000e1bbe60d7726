package api

import (
	"github.com/gin-gonic/gin"

	"github.com/irrigo/farm-backend/access"
	"github.com/irrigo/farm-backend/logger"
)

// Router builds the gin engine with all resource routes. The static
// pages are served without authentication, everything else sits
// behind the identity middleware.
func (ctl *controller) Router() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(logger.Middleware())

	router.GET("/farms/create-page", ctl.createFarmPage)
	router.GET("/farms/manage", ctl.managePage)

	authed := router.Group("/", access.Middleware([]byte(ctl.cfg.JWTSecret), ctl.db))

	authed.GET("/farms", ctl.listFarms)
	authed.POST("/farms", ctl.createFarm)
	authed.GET("/farms/:farm_id", ctl.getFarm)
	authed.PUT("/farms/:farm_id", ctl.updateFarm)
	authed.PATCH("/farms/:farm_id", ctl.patchFarm)
	authed.DELETE("/farms/:farm_id", ctl.deleteFarm)

	authed.GET("/farms/:farm_id/motors", ctl.listMotors)
	authed.POST("/farms/:farm_id/motors", ctl.createMotor)
	authed.GET("/farms/:farm_id/motors/:motor_id", ctl.getMotor)
	authed.PUT("/farms/:farm_id/motors/:motor_id", ctl.updateMotor)
	authed.PATCH("/farms/:farm_id/motors/:motor_id", ctl.patchMotor)
	authed.DELETE("/farms/:farm_id/motors/:motor_id", ctl.deleteMotor)

	authed.GET("/motors/:motor_id/valves", ctl.listValves)
	authed.POST("/motors/:motor_id/valves", ctl.createValve)
	authed.GET("/motors/:motor_id/valves/:valve_id", ctl.getValve)
	authed.PUT("/motors/:motor_id/valves/:valve_id", ctl.updateValve)
	authed.PATCH("/motors/:motor_id/valves/:valve_id", ctl.patchValve)
	authed.DELETE("/motors/:motor_id/valves/:valve_id", ctl.deleteValve)

	return router
}
