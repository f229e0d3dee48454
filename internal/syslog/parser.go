package syslog

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/pctowa/pctowa-backend/internal/model"
)

// Parse errors.
var (
	ErrInvalidFormat   = errors.New("invalid syslog message format")
	ErrInvalidPriority = errors.New("invalid syslog priority")
)

// Parse decodes an RFC 5424 style syslog line:
//
//	<PRI>VERSION TIMESTAMP HOSTNAME APP-NAME PROCID MSGID [SD] MSG
//
// The priority's severity maps onto the log level; APP-NAME becomes the
// origin. Structured data is skipped, not interpreted.
func Parse(raw string) (*model.LogEntry, error) {
	if len(raw) < 5 || raw[0] != '<' {
		return nil, ErrInvalidFormat
	}

	end := strings.IndexByte(raw, '>')
	if end < 2 || end > 4 {
		return nil, ErrInvalidFormat
	}

	pri, err := strconv.Atoi(raw[1:end])
	if err != nil || pri < 0 || pri > 191 {
		return nil, ErrInvalidPriority
	}

	rest := raw[end+1:]
	fields := strings.SplitN(rest, " ", 7)
	if len(fields) < 7 {
		return nil, ErrInvalidFormat
	}

	version := fields[0]
	if version != "1" {
		return nil, ErrInvalidFormat
	}

	ts, err := time.Parse(time.RFC3339, fields[1])
	if err != nil {
		// The nil timestamp placeholder "-" falls back to now.
		if fields[1] != "-" {
			return nil, ErrInvalidFormat
		}
		ts = time.Now()
	}

	origin := fields[3]
	if origin == "-" || origin == "" {
		return nil, ErrInvalidFormat
	}

	msg := fields[6]
	// Skip structured data if present.
	if strings.HasPrefix(msg, "[") {
		if end := strings.Index(msg, "] "); end >= 0 {
			msg = msg[end+2:]
		}
	} else if strings.HasPrefix(msg, "- ") {
		msg = msg[2:]
	}
	msg = strings.TrimSpace(msg)
	if msg == "" {
		return nil, ErrInvalidFormat
	}

	return &model.LogEntry{
		Level:     severityLevel(pri % 8),
		Message:   msg,
		Origin:    origin,
		Timestamp: ts,
	}, nil
}

// severityLevel folds the eight syslog severities into the four levels
// the platform tracks.
func severityLevel(severity int) model.LogLevel {
	switch {
	case severity <= 3: // emerg, alert, crit, err
		return model.LogLevelError
	case severity == 4: // warning
		return model.LogLevelWarning
	case severity == 7: // debug
		return model.LogLevelDebug
	default: // notice, info
		return model.LogLevelInfo
	}
}
