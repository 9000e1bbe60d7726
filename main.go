package main

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/handlers"
	"github.com/sirupsen/logrus"

	"github.com/irrigo/farm-backend/api"
	"github.com/irrigo/farm-backend/logger"
)

func main() {
	cfg, err := api.LoadConfig("config.yml")
	if err != nil {
		logrus.Fatalln("config:", err)
	}

	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.Init(level)

	if cfg.JWTSecret == "" {
		logrus.Fatalln("jwt secret is not configured, set FARM_JWT_SECRET or jwtSecret in config.yml")
	}

	if level < logrus.DebugLevel {
		gin.SetMode(gin.ReleaseMode)
	}

	ctl, err := api.NewController(cfg)
	if err != nil {
		logrus.Fatalln("controller:", err)
	}

	cors := handlers.CORS(
		handlers.AllowedOrigins(strings.Split(cfg.CORSOrigins, ",")),
		handlers.AllowedHeaders([]string{"Authorization", "Content-Type"}),
		handlers.AllowedMethods([]string{"GET", "POST", "PUT", "PATCH", "DELETE"}),
	)

	logrus.Infoln("listening on", cfg.Addr)
	logrus.Fatalln(http.ListenAndServe(cfg.Addr, cors(ctl.Router())))
}
