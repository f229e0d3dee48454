package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pctowa/pctowa-backend/internal/authclient"
	"github.com/pctowa/pctowa-backend/internal/middleware"
	"github.com/pctowa/pctowa-backend/internal/model"
	"github.com/pctowa/pctowa-backend/internal/response"
	"github.com/pctowa/pctowa-backend/internal/service"
	"github.com/pctowa/pctowa-backend/internal/validator"
)

// AuthProxyHandler exposes login on the resource API by forwarding
// credentials to the auth server.
type AuthProxyHandler struct {
	client      *authclient.Client
	userService *service.UserService
}

// NewAuthProxyHandler creates a new AuthProxyHandler.
func NewAuthProxyHandler(client *authclient.Client, userService *service.UserService) *AuthProxyHandler {
	return &AuthProxyHandler{client: client, userService: userService}
}

// Login godoc
// POST /api/v1/auth/login
// Forwards credentials to the auth server and relays the issued token.
func (h *AuthProxyHandler) Login(c *gin.Context) {
	var req model.LoginRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	result, err := h.client.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, authclient.ErrUnauthorized) {
			response.Fail(c, http.StatusUnauthorized, response.ErrInvalidCredentials)
			return
		}
		response.Fail(c, http.StatusBadGateway, response.ErrAuthUnavailable)
		return
	}

	response.Success(c, http.StatusOK, result)
}

// Me godoc
// GET /api/v1/auth/me
// Returns the profile of the authenticated user.
func (h *AuthProxyHandler) Me(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		response.Fail(c, http.StatusUnauthorized, response.ErrTokenRequired)
		return
	}

	user, err := h.userService.GetByEmail(c.Request.Context(), claims.Email)
	if err != nil {
		response.Fail(c, http.StatusNotFound, response.ErrNotFound)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"user": user})
}
