package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/kbhatta/quotify-api/internal/application/service"
)

// GetRole extracts the session role from the Gin context
func GetRole(c *gin.Context) string {
	role, exists := c.Get("role")
	if !exists {
		return ""
	}
	s, ok := role.(string)
	if !ok {
		return ""
	}
	return s
}

// IsOwner checks if the session carries the owner role
func IsOwner(c *gin.Context) bool {
	return GetRole(c) == service.RoleOwner
}
