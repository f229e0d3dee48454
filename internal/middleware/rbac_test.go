package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/pctowa/pctowa-backend/internal/model"
	"github.com/pctowa/pctowa-backend/internal/service"
	"github.com/stretchr/testify/assert"
)

func roleRouter(role model.Role, guard gin.HandlerFunc) *gin.Engine {
	r := gin.New()
	r.GET("/guarded",
		func(c *gin.Context) {
			c.Set(ContextKeyClaims, &service.Claims{Email: "user@example.com", Role: role})
		},
		guard,
		func(c *gin.Context) { c.Status(http.StatusOK) },
	)
	return r
}

func get(r *gin.Engine) int {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/guarded", nil))
	return w.Code
}

func TestRequireRole(t *testing.T) {
	guard := RequireRole(model.RoleAdmin, model.RoleSupertutor)

	assert.Equal(t, http.StatusOK, get(roleRouter(model.RoleAdmin, guard)))
	assert.Equal(t, http.StatusOK, get(roleRouter(model.RoleSupertutor, guard)))
	assert.Equal(t, http.StatusForbidden, get(roleRouter(model.RoleTeacher, guard)))
	assert.Equal(t, http.StatusForbidden, get(roleRouter(model.RoleTutor, guard)))
}

func TestRequireRoleWithoutClaims(t *testing.T) {
	r := gin.New()
	r.GET("/guarded", RequireRole(model.RoleAdmin), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	assert.Equal(t, http.StatusUnauthorized, get(r))
}

func TestRequireAdmin(t *testing.T) {
	assert.Equal(t, http.StatusOK, get(roleRouter(model.RoleAdmin, RequireAdmin())))
	assert.Equal(t, http.StatusForbidden, get(roleRouter(model.RoleSupertutor, RequireAdmin())))
}
