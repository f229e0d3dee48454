package syslog

import (
	"testing"
	"time"

	"github.com/pctowa/pctowa-backend/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFullMessage(t *testing.T) {
	raw := `<165>1 2026-03-02T14:30:00Z web01 frontend 1234 ID47 [exampleSDID@32473 iut="3"] session expired for user`

	entry, err := Parse(raw)
	require.NoError(t, err)

	assert.Equal(t, "frontend", entry.Origin)
	assert.Equal(t, "session expired for user", entry.Message)
	// 165 = facility 20, severity 5 (notice).
	assert.Equal(t, model.LogLevelInfo, entry.Level)
	assert.Equal(t, time.Date(2026, 3, 2, 14, 30, 0, 0, time.UTC), entry.Timestamp.UTC())
}

func TestParseNilStructuredData(t *testing.T) {
	entry, err := Parse(`<11>1 2026-03-02T14:30:00Z host app - - - database connection lost`)
	require.NoError(t, err)

	assert.Equal(t, "app", entry.Origin)
	assert.Equal(t, "database connection lost", entry.Message)
	// Severity 3 (err).
	assert.Equal(t, model.LogLevelError, entry.Level)
}

func TestParseNilTimestampFallsBackToNow(t *testing.T) {
	before := time.Now()
	entry, err := Parse(`<12>1 - host app - - - disk usage above threshold`)
	require.NoError(t, err)

	assert.Equal(t, model.LogLevelWarning, entry.Level)
	assert.False(t, entry.Timestamp.Before(before))
}

func TestParseInvalid(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"empty", ""},
		{"no priority", "1 2026-03-02T14:30:00Z host app - - - msg"},
		{"unterminated priority", "<165 1 msg"},
		{"priority out of range", `<999>1 2026-03-02T14:30:00Z host app - - - msg`},
		{"wrong version", `<165>2 2026-03-02T14:30:00Z host app - - - msg`},
		{"too few fields", `<165>1 2026-03-02T14:30:00Z host`},
		{"nil origin", `<165>1 2026-03-02T14:30:00Z host - - - - msg`},
		{"bad timestamp", `<165>1 yesterday host app - - - msg`},
		{"empty message", `<165>1 2026-03-02T14:30:00Z host app - - - `},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.raw)
			assert.Error(t, err)
		})
	}
}

func TestSeverityLevel(t *testing.T) {
	assert.Equal(t, model.LogLevelError, severityLevel(0))
	assert.Equal(t, model.LogLevelError, severityLevel(3))
	assert.Equal(t, model.LogLevelWarning, severityLevel(4))
	assert.Equal(t, model.LogLevelInfo, severityLevel(5))
	assert.Equal(t, model.LogLevelInfo, severityLevel(6))
	assert.Equal(t, model.LogLevelDebug, severityLevel(7))
}
