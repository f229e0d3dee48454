package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pctowa/pctowa-backend/internal/middleware"
	"github.com/pctowa/pctowa-backend/internal/model"
	"github.com/pctowa/pctowa-backend/internal/response"
	"github.com/pctowa/pctowa-backend/internal/service"
	"github.com/pctowa/pctowa-backend/internal/validator"
)

// AuthHandler implements the auth server endpoints: credential login
// and token validation.
type AuthHandler struct {
	authService *service.AuthService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Login godoc
// POST /auth/login
// Verifies credentials and issues a JWT. A later login supersedes any
// earlier session for the same account.
func (h *AuthHandler) Login(c *gin.Context) {
	var req model.LoginRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	token, user, err := h.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		response.Fail(c, http.StatusUnauthorized, response.ErrInvalidCredentials)
		return
	}

	response.Success(c, http.StatusOK, model.LoginResponse{Token: token, User: *user})
}

// Validate godoc
// POST /auth/validate
// Checks a token's signature, expiry and active session. The route is
// served with Cache-Control: no-store.
func (h *AuthHandler) Validate(c *gin.Context) {
	var req model.ValidateRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	claims, err := h.authService.ValidateToken(c.Request.Context(), req.Token)
	if err != nil {
		response.Fail(c, http.StatusUnauthorized, response.ErrTokenInvalid)
		return
	}

	if err := h.authService.ValidateSession(c.Request.Context(), claims.Email, claims.ID); err != nil {
		response.Fail(c, http.StatusUnauthorized, response.ErrSessionInvalidated)
		return
	}

	response.Success(c, http.StatusOK, model.ValidateResponse{
		Email: claims.Email,
		Role:  claims.Role,
	})
}

// Logout godoc
// POST /auth/logout
// Drops the caller's active session.
func (h *AuthHandler) Logout(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		response.Fail(c, http.StatusUnauthorized, response.ErrTokenRequired)
		return
	}

	if err := h.authService.Logout(c.Request.Context(), claims.Email); err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{})
}
