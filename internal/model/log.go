package model

import "time"

// LogLevel classifies an ingested log message.
type LogLevel string

const (
	LogLevelDebug   LogLevel = "debug"
	LogLevelInfo    LogLevel = "info"
	LogLevelWarning LogLevel = "warning"
	LogLevelError   LogLevel = "error"
)

// Valid reports whether the level is a known one.
func (l LogLevel) Valid() bool {
	switch l {
	case LogLevelDebug, LogLevelInfo, LogLevelWarning, LogLevelError:
		return true
	}
	return false
}

// LogEntry is a single message accepted by the log server, either via
// HTTP or the UDP syslog listener.
type LogEntry struct {
	Level     LogLevel  `json:"level"`
	Message   string    `json:"message"`
	Origin    string    `json:"origin"`
	Timestamp time.Time `json:"timestamp"`
}

// IngestLogRequest is the HTTP payload for submitting a log message.
type IngestLogRequest struct {
	Type    LogLevel `json:"type" binding:"required,oneof=debug info warning error"`
	Message string   `json:"message" binding:"required,min=1,max=8192"`
	Origin  string   `json:"origin" binding:"required,min=1,max=100"`
}
