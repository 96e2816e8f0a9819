package profiler

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTickLogsOncePerInterval(t *testing.T) {
	var buf bytes.Buffer
	p := NewProfiler(zerolog.New(&buf))
	p.SetInterval(time.Hour)

	assert.False(t, p.Tick())
	assert.Zero(t, buf.Len())
}

func TestTickEmitsFrameStats(t *testing.T) {
	var buf bytes.Buffer
	p := NewProfiler(zerolog.New(&buf))
	p.SetInterval(0)
	time.Sleep(time.Millisecond)

	require.True(t, p.Tick())

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "frame stats", entry["message"])
	assert.Equal(t, "profiler", entry["component"])
	assert.Contains(t, entry, "fps")
	assert.Contains(t, entry, "heap_mb")
}
