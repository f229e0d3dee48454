package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/pctowa/pctowa-backend/internal/model"
	"github.com/pctowa/pctowa-backend/internal/response"
	"github.com/pctowa/pctowa-backend/internal/service"
	"github.com/pctowa/pctowa-backend/internal/validator"
	"github.com/rs/zerolog"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Token auth happens in middleware before the upgrade.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// LogHandler handles HTTP log ingestion and the live WebSocket tail.
type LogHandler struct {
	logService *service.LogService
	log        zerolog.Logger
}

// NewLogHandler creates a new LogHandler.
func NewLogHandler(logService *service.LogService, log zerolog.Logger) *LogHandler {
	return &LogHandler{
		logService: logService,
		log:        log.With().Str("component", "log_handler").Logger(),
	}
}

// Ingest godoc
// POST /log
// Accepts a single log message. Returns 429 when the origin exceeds
// its rate limit.
func (h *LogHandler) Ingest(c *gin.Context) {
	var req model.IngestLogRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	entry := &model.LogEntry{
		Level:     req.Type,
		Message:   req.Message,
		Origin:    req.Origin,
		Timestamp: time.Now(),
	}

	if err := h.logService.Ingest(c.Request.Context(), entry, "http"); err != nil {
		if errors.Is(err, service.ErrLogRateLimited) {
			response.Fail(c, http.StatusTooManyRequests, response.ErrRateLimitExceeded)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusAccepted, gin.H{"message": "log accepted"})
}

// Stream godoc
// GET /log/stream
// Upgrades to a WebSocket, replays the buffered tail and then pushes
// every new entry until the client disconnects.
func (h *LogHandler) Stream(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.log.Debug().Err(err).Msg("websocket upgrade failed")
		return
	}
	defer conn.Close()

	for _, entry := range h.logService.Recent() {
		if err := writeEntry(conn, entry); err != nil {
			return
		}
	}

	entries, cancel := h.logService.Subscribe()
	defer cancel()

	// Reader goroutine detects client disconnect.
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	for {
		select {
		case <-done:
			return
		case <-c.Request.Context().Done():
			return
		case entry := <-entries:
			if err := writeEntry(conn, entry); err != nil {
				return
			}
		}
	}
}

func writeEntry(conn *websocket.Conn, entry model.LogEntry) error {
	conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
	return conn.WriteJSON(entry)
}
