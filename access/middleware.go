package access

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/irrigo/farm-backend/logger"
	"github.com/irrigo/farm-backend/model"
)

// Claims is the token payload the external identity provider issues.
type Claims struct {
	UserID uint64 `json:"uid"`
	Name   string `json:"name"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// Middleware validates the "Authorization: Bearer" token with the
// shared secret and puts the resulting Identity on the context.
// Requests without a valid token are rejected with 401 before any
// query runs.
//
// The caller's user row is upserted so that ownership foreign keys
// always have a target, even for identities this backend has never
// seen before.
func Middleware(secret []byte, db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := ""
		bearer := c.GetHeader("Authorization")
		if len(bearer) >= 7 && strings.EqualFold(bearer[:7], "bearer ") {
			tokenString = bearer[7:]
		}
		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
			return
		}

		claims := Claims{}
		token, err := jwt.ParseWithClaims(tokenString, &claims, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrTokenSignatureInvalid
			}
			return secret, nil
		})
		if err != nil || !token.Valid || claims.UserID == 0 {
			logger.FromContext(c.Request.Context()).Infoln("rejected token:", err)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		user := model.User{ID: claims.UserID, Name: claims.Name, Role: claims.Role}
		if res := db.Clauses(clause.OnConflict{UpdateAll: true}).Create(&user); res.Error != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
			return
		}

		c.Set(identityKey, Identity{UserID: claims.UserID, Name: claims.Name, Role: claims.Role})
		c.Next()
	}
}
