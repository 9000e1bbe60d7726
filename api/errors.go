package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/mattn/go-sqlite3"
	"gorm.io/gorm"

	"github.com/irrigo/farm-backend/logger"
)

func notFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
}

func badRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, gin.H{"error": msg})
}

// storeError maps database failures onto the API error taxonomy:
// missing rows become 404, constraint violations on writes become a
// 400 integrity error, anything else is a 500.
func storeError(c *gin.Context, err error) {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		notFound(c)
		return
	}
	var serr sqlite3.Error
	if errors.As(err, &serr) && serr.Code == sqlite3.ErrConstraint {
		badRequest(c, "integrity error: "+serr.Error())
		return
	}
	logger.FromContext(c.Request.Context()).Warnln("store error:", err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
}

// pathID parses a numeric path parameter.
func pathID(c *gin.Context, name string) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		badRequest(c, "invalid "+name)
		return 0, false
	}
	return id, true
}
