package logsink

import (
	"os"
	"sync"

	"github.com/pctowa/pctowa-backend/internal/model"
	"github.com/rs/zerolog"
)

// Sink fans ingested log entries out to the append-only log file and to
// any live tail subscribers, while keeping a ring of recent entries so
// a new subscriber can catch up.
type Sink struct {
	mu          sync.Mutex
	fileLog     zerolog.Logger
	file        *os.File
	ring        []model.LogEntry
	ringStart   int
	ringLen     int
	subscribers map[chan model.LogEntry]struct{}
}

// NewSink opens (or creates) the log file and prepares a ring buffer of
// the given size.
func NewSink(path string, ringSize int) (*Sink, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, err
	}

	if ringSize <= 0 {
		ringSize = 1
	}

	return &Sink{
		fileLog:     zerolog.New(f).With().Timestamp().Logger(),
		file:        f,
		ring:        make([]model.LogEntry, ringSize),
		subscribers: make(map[chan model.LogEntry]struct{}),
	}, nil
}

// Write records an entry to the file, the ring and all subscribers.
// Slow subscribers are skipped rather than blocking ingestion.
func (s *Sink) Write(entry model.LogEntry) {
	s.fileLog.WithLevel(zerologLevel(entry.Level)).
		Str("origin", entry.Origin).
		Time("logged_at", entry.Timestamp).
		Msg(entry.Message)

	s.mu.Lock()
	defer s.mu.Unlock()

	idx := (s.ringStart + s.ringLen) % len(s.ring)
	s.ring[idx] = entry
	if s.ringLen < len(s.ring) {
		s.ringLen++
	} else {
		s.ringStart = (s.ringStart + 1) % len(s.ring)
	}

	for ch := range s.subscribers {
		select {
		case ch <- entry:
		default:
		}
	}
}

// Recent returns the buffered entries, oldest first.
func (s *Sink) Recent() []model.LogEntry {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]model.LogEntry, 0, s.ringLen)
	for i := 0; i < s.ringLen; i++ {
		out = append(out, s.ring[(s.ringStart+i)%len(s.ring)])
	}
	return out
}

// Subscribe registers a channel that receives every new entry.
// The returned cancel function removes the subscription.
func (s *Sink) Subscribe() (<-chan model.LogEntry, func()) {
	ch := make(chan model.LogEntry, 64)

	s.mu.Lock()
	s.subscribers[ch] = struct{}{}
	s.mu.Unlock()

	cancel := func() {
		s.mu.Lock()
		delete(s.subscribers, ch)
		s.mu.Unlock()
	}
	return ch, cancel
}

// Close releases the underlying log file.
func (s *Sink) Close() error {
	return s.file.Close()
}

func zerologLevel(l model.LogLevel) zerolog.Level {
	switch l {
	case model.LogLevelDebug:
		return zerolog.DebugLevel
	case model.LogLevelWarning:
		return zerolog.WarnLevel
	case model.LogLevelError:
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}
