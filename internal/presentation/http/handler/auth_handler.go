package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/kbhatta/quotify-api/internal/application/service"
	"github.com/kbhatta/quotify-api/internal/presentation/http/dto/request"
	"github.com/kbhatta/quotify-api/internal/presentation/http/dto/response"
)

// AuthHandler handles PIN login requests
type AuthHandler struct {
	authService *service.AuthService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Login handles PIN login
func (h *AuthHandler) Login(c *gin.Context) {
	var req request.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "PIN is required")
		return
	}

	result, err := h.authService.Login(c.Request.Context(), req.PIN)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Login successful", result)
}

// Me returns the role carried by the current session so the front-end
// can restore its screen gating after a reload.
func (h *AuthHandler) Me(c *gin.Context) {
	response.OK(c, "Session retrieved successfully", gin.H{
		"role":  GetRole(c),
		"owner": IsOwner(c),
	})
}
