package handlers

import (
	"github.com/gin-gonic/gin"

	"hardpos/internal/domain/auth"
	"hardpos/internal/infrastructure/http/v1/dto"
)

// AuthHandler handles authentication endpoints.
type AuthHandler struct {
	*BaseHandler
	service *auth.Service
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(base *BaseHandler, service *auth.Service) *AuthHandler {
	return &AuthHandler{BaseHandler: base, service: service}
}

// Login handles POST /auth/login.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !h.BindJSON(c, &req) {
		return
	}

	result, err := h.service.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.FromLoginResult(result))
}

// CreateUser handles POST /users. Admin only.
func (h *AuthHandler) CreateUser(c *gin.Context) {
	var req dto.CreateUserRequest
	if !h.BindJSON(c, &req) {
		return
	}

	user, err := h.service.CreateUser(c.Request.Context(), req.Username, req.DisplayName, req.Password, req.Role)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.Created(c, user.ID.String())
}
