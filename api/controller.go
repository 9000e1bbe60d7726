package api

import (
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/irrigo/farm-backend/model"
)

type Controller interface {
	DB() *gorm.DB
	Router() *gin.Engine
}

type controller struct {
	cfg Config
	db  *gorm.DB
}

// NewController opens the sqlite database, enables foreign key
// enforcement and migrates the schema.
func NewController(cfg Config) (Controller, error) {
	dsn := cfg.DBPath
	if !strings.Contains(dsn, "?") {
		dsn += "?_fk=1"
	}

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, err
	}

	if r := db.Exec("PRAGMA foreign_keys = ON", nil); r.Error != nil {
		return nil, r.Error
	}

	if err := db.AutoMigrate(&model.User{}, &model.Farm{}, &model.Motor{}, &model.Valve{}); err != nil {
		return nil, err
	}

	return &controller{cfg: cfg, db: db}, nil
}

func (ctl *controller) DB() *gorm.DB {
	return ctl.db
}
