package middlewares

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ratemybandeco/backend/utils"
)

// AdminOnly gates the moderation and menu-management routes.
func AdminOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := c.Get("role")
		if !exists {
			utils.RespondError(c, http.StatusUnauthorized, errors.New("unauthorized"))
			c.Abort()
			return
		}
		if role != "admin" {
			utils.RespondError(c, http.StatusForbidden, errors.New("admin access required"))
			c.Abort()
			return
		}
		c.Next()
	}
}

// StudentOnly keeps administrators out of the student-facing pages
// (home, profile), mirroring the role routing done at login.
func StudentOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := c.Get("role")
		if !exists {
			utils.RespondError(c, http.StatusUnauthorized, errors.New("unauthorized"))
			c.Abort()
			return
		}
		if role == "admin" {
			utils.RespondError(c, http.StatusForbidden, errors.New("student access only"))
			c.Abort()
			return
		}
		c.Next()
	}
}
