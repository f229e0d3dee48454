package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/pctowa/pctowa-backend/internal/config"
	"github.com/pctowa/pctowa-backend/internal/logsink"
	"github.com/pctowa/pctowa-backend/internal/metrics"
	"github.com/pctowa/pctowa-backend/internal/model"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// ErrLogRateLimited signals that an origin exceeded its ingestion quota.
var ErrLogRateLimited = errors.New("origin exceeded log rate limit")

// LogService accepts log entries from HTTP and syslog, applies the
// per-origin rate limit and writes accepted entries to the sink. The
// rate counters live in Redis so limits survive restarts.
type LogService struct {
	cfg  *config.Config
	rdb  *redis.Client
	sink *logsink.Sink
	log  zerolog.Logger
}

// NewLogService creates a new LogService.
func NewLogService(cfg *config.Config, rdb *redis.Client, sink *logsink.Sink, log zerolog.Logger) *LogService {
	return &LogService{
		cfg:  cfg,
		rdb:  rdb,
		sink: sink,
		log:  log.With().Str("component", "log_service").Logger(),
	}
}

// Ingest applies the rate limit and records the entry. The transport
// label ("http" or "udp") feeds the ingestion metrics.
func (s *LogService) Ingest(ctx context.Context, entry *model.LogEntry, transport string) error {
	allowed, err := s.allowOrigin(ctx, entry.Origin)
	if err != nil {
		// Redis trouble should not lose log messages; accept and note it.
		s.log.Warn().Err(err).Msg("rate limit check failed, accepting entry")
		allowed = true
	}
	if !allowed {
		metrics.CountDroppedLogMessage()
		return ErrLogRateLimited
	}

	if entry.Timestamp.IsZero() {
		entry.Timestamp = time.Now()
	}

	s.sink.Write(*entry)
	metrics.CountLogMessage(transport, string(entry.Level))
	return nil
}

// Recent returns the buffered tail of accepted entries, oldest first.
func (s *LogService) Recent() []model.LogEntry {
	return s.sink.Recent()
}

// Subscribe registers a live tail subscription on the sink.
func (s *LogService) Subscribe() (<-chan model.LogEntry, func()) {
	return s.sink.Subscribe()
}

// allowOrigin increments the origin's counter for the current window
// and reports whether it is still under the limit.
func (s *LogService) allowOrigin(ctx context.Context, origin string) (bool, error) {
	key := config.CacheKey.LogRateKey(origin)

	count, err := s.rdb.Incr(ctx, key).Result()
	if err != nil {
		return false, fmt.Errorf("incr rate counter: %w", err)
	}
	if count == 1 {
		if err := s.rdb.Expire(ctx, key, s.cfg.LogRateWindow).Err(); err != nil {
			return false, fmt.Errorf("set rate window: %w", err)
		}
	}

	return count <= int64(s.cfg.LogRateLimit), nil
}
