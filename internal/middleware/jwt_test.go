package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/pctowa/pctowa-backend/internal/model"
	"github.com/pctowa/pctowa-backend/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// stubValidator accepts exactly one token string.
type stubValidator struct {
	token  string
	claims *service.Claims
}

func (s *stubValidator) ValidateToken(_ context.Context, tokenStr string) (*service.Claims, error) {
	if tokenStr != s.token {
		return nil, errors.New("invalid token")
	}
	return s.claims, nil
}

func newStub(role model.Role) *stubValidator {
	return &stubValidator{
		token:  "good-token",
		claims: &service.Claims{Email: "user@example.com", Role: role},
	}
}

func protectedRouter(mw ...gin.HandlerFunc) *gin.Engine {
	r := gin.New()
	handlers := append(mw, func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	r.GET("/protected", handlers...)
	return r
}

func request(r *gin.Engine, target, authHeader string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	r.ServeHTTP(w, req)
	return w
}

func TestRequireJWT(t *testing.T) {
	stub := newStub(model.RoleAdmin)
	r := protectedRouter(RequireJWT(stub))

	t.Run("valid bearer token", func(t *testing.T) {
		w := request(r, "/protected", "Bearer good-token")
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("case insensitive scheme", func(t *testing.T) {
		w := request(r, "/protected", "bearer good-token")
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("missing header", func(t *testing.T) {
		w := request(r, "/protected", "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("wrong token", func(t *testing.T) {
		w := request(r, "/protected", "Bearer bad-token")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("token query fallback", func(t *testing.T) {
		w := request(r, "/protected?token=good-token", "")
		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestRequireWSAuth(t *testing.T) {
	stub := newStub(model.RoleAdmin)
	r := protectedRouter(RequireWSAuth(stub))

	t.Run("valid query token", func(t *testing.T) {
		w := request(r, "/protected?token=good-token", "")
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("missing token", func(t *testing.T) {
		w := request(r, "/protected", "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("invalid token", func(t *testing.T) {
		w := request(r, "/protected?token=bad", "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestGetClaims(t *testing.T) {
	stub := newStub(model.RoleTutor)

	r := gin.New()
	r.GET("/protected", RequireJWT(stub), func(c *gin.Context) {
		claims := GetClaims(c)
		require.NotNil(t, claims)
		assert.Equal(t, "user@example.com", claims.Email)
		assert.Equal(t, model.RoleTutor, claims.Role)
		c.Status(http.StatusOK)
	})

	w := request(r, "/protected", "Bearer good-token")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestGetClaimsWithoutMiddleware(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	assert.Nil(t, GetClaims(c))
}
