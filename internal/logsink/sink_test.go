package logsink

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/pctowa/pctowa-backend/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSink(t *testing.T, ringSize int) *Sink {
	t.Helper()

	sink, err := NewSink(filepath.Join(t.TempDir(), "test.log"), ringSize)
	require.NoError(t, err)
	t.Cleanup(func() { sink.Close() })
	return sink
}

func entry(msg string) model.LogEntry {
	return model.LogEntry{
		Level:     model.LogLevelInfo,
		Message:   msg,
		Origin:    "frontend",
		Timestamp: time.Now(),
	}
}

func TestSinkRecentOrder(t *testing.T) {
	sink := newTestSink(t, 8)

	sink.Write(entry("first"))
	sink.Write(entry("second"))
	sink.Write(entry("third"))

	recent := sink.Recent()
	require.Len(t, recent, 3)
	assert.Equal(t, "first", recent[0].Message)
	assert.Equal(t, "third", recent[2].Message)
}

func TestSinkRingOverwritesOldest(t *testing.T) {
	sink := newTestSink(t, 3)

	for i := 1; i <= 5; i++ {
		sink.Write(entry(fmt.Sprintf("msg-%d", i)))
	}

	recent := sink.Recent()
	require.Len(t, recent, 3)
	assert.Equal(t, "msg-3", recent[0].Message)
	assert.Equal(t, "msg-5", recent[2].Message)
}

func TestSinkSubscribe(t *testing.T) {
	sink := newTestSink(t, 8)

	ch, cancel := sink.Subscribe()
	defer cancel()

	sink.Write(entry("hello"))

	select {
	case got := <-ch:
		assert.Equal(t, "hello", got.Message)
	case <-time.After(time.Second):
		t.Fatal("no entry delivered to subscriber")
	}
}

func TestSinkCancelStopsDelivery(t *testing.T) {
	sink := newTestSink(t, 8)

	ch, cancel := sink.Subscribe()
	cancel()

	sink.Write(entry("after cancel"))

	select {
	case <-ch:
		t.Fatal("entry delivered after cancel")
	default:
	}
}

func TestSinkWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.log")
	sink, err := NewSink(path, 8)
	require.NoError(t, err)

	sink.Write(entry("persisted line"))
	require.NoError(t, sink.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(data), "persisted line"))
	assert.True(t, strings.Contains(string(data), "frontend"))
}
