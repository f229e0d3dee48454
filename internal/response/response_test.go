package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func performRequest(r *gin.Engine) (*httptest.ResponseRecorder, Response) {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	r.ServeHTTP(w, req)

	var body Response
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		panic(err)
	}
	return w, body
}

func TestSuccessEnvelope(t *testing.T) {
	r := gin.New()
	r.Use(RequestIDMiddleware())
	r.GET("/", func(c *gin.Context) {
		Success(c, http.StatusOK, gin.H{"message": "ok"})
	})

	w, body := performRequest(r)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Nil(t, body.Error)
	assert.NotEmpty(t, body.Metadata.RequestID)
	assert.NotEmpty(t, body.Metadata.Timestamp)
	assert.Equal(t, body.Metadata.RequestID, w.Header().Get("X-Request-ID"))
}

func TestRequestIDPropagated(t *testing.T) {
	r := gin.New()
	r.Use(RequestIDMiddleware())
	r.GET("/", func(c *gin.Context) {
		Success(c, http.StatusOK, nil)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-ID", "client-supplied-id")
	r.ServeHTTP(w, req)

	var body Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "client-supplied-id", body.Metadata.RequestID)
}

func TestFailEnvelope(t *testing.T) {
	r := gin.New()
	r.Use(RequestIDMiddleware())
	r.GET("/", func(c *gin.Context) {
		Fail(c, http.StatusNotFound, ErrNotFound)
	})

	w, body := performRequest(r)

	assert.Equal(t, http.StatusNotFound, w.Code)
	require.NotNil(t, body.Error)
	assert.Equal(t, ErrNotFound, body.Error.Code)
	assert.Equal(t, GetMessage(ErrNotFound), body.Error.Message)
	assert.Empty(t, body.Error.Fields)
}

func TestFailWithFields(t *testing.T) {
	r := gin.New()
	r.GET("/", func(c *gin.Context) {
		FailWithFields(c, http.StatusBadRequest, ErrValidation, map[string]string{
			"email": "email is required",
		})
	})

	w, body := performRequest(r)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	require.NotNil(t, body.Error)
	assert.Equal(t, "email is required", body.Error.Fields["email"])
}

func TestAbortFailStopsChain(t *testing.T) {
	reached := false

	r := gin.New()
	r.Use(func(c *gin.Context) {
		AbortFail(c, http.StatusUnauthorized, ErrTokenInvalid)
	})
	r.GET("/", func(c *gin.Context) {
		reached = true
	})

	w, body := performRequest(r)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.False(t, reached)
	require.NotNil(t, body.Error)
	assert.Equal(t, ErrTokenInvalid, body.Error.Code)
}

func TestSuccessWithPagination(t *testing.T) {
	r := gin.New()
	r.GET("/", func(c *gin.Context) {
		SuccessWithPagination(c, http.StatusOK, gin.H{}, &Pagination{
			Page: 2, PerPage: 10, TotalItems: 35, TotalPages: 4,
		})
	})

	_, body := performRequest(r)

	require.NotNil(t, body.Pagination)
	assert.Equal(t, 2, body.Pagination.Page)
	assert.Equal(t, 4, body.Pagination.TotalPages)
}
