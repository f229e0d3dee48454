package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pctowa/pctowa-backend/internal/response"
	"github.com/redis/go-redis/v9"
)

// HealthHandler reports service liveness and backing store reachability.
// Pool and rdb may be nil for services that do not use them.
type HealthHandler struct {
	serviceName string
	startTime   time.Time
	pool        *pgxpool.Pool
	rdb         *redis.Client
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(serviceName string, pool *pgxpool.Pool, rdb *redis.Client) *HealthHandler {
	return &HealthHandler{
		serviceName: serviceName,
		startTime:   time.Now(),
		pool:        pool,
		rdb:         rdb,
	}
}

// Health godoc
// GET /health
// Reports the service status and its dependencies.
func (h *HealthHandler) Health(c *gin.Context) {
	status := http.StatusOK
	checks := gin.H{}

	if h.pool != nil {
		if err := h.pool.Ping(c.Request.Context()); err != nil {
			checks["database"] = "down"
			status = http.StatusServiceUnavailable
		} else {
			checks["database"] = "up"
		}
	}

	if h.rdb != nil {
		if err := h.rdb.Ping(c.Request.Context()).Err(); err != nil {
			checks["redis"] = "down"
			status = http.StatusServiceUnavailable
		} else {
			checks["redis"] = "up"
		}
	}

	response.Success(c, status, gin.H{
		"service": h.serviceName,
		"uptime":  time.Since(h.startTime).Round(time.Second).String(),
		"checks":  checks,
	})
}

// ListEndpoints godoc
// GET /endpoints
// Lists all registered routes. Wired only in debug mode.
func ListEndpoints(engine *gin.Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		routes := engine.Routes()
		out := make([]gin.H, 0, len(routes))
		for _, r := range routes {
			out = append(out, gin.H{"method": r.Method, "path": r.Path})
		}
		response.Success(c, http.StatusOK, gin.H{"endpoints": out})
	}
}
