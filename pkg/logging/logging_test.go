package logging

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want LogLevel
	}{
		{"debug", LevelDebug},
		{"INFO", LevelInfo},
		{"", LevelInfo},
		{"warning", LevelWarn},
		{" error ", LevelError},
	}
	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got)
	}

	_, err := ParseLevel("loud")
	assert.Error(t, err)
}

func TestInitForCLI_WritesRecords(t *testing.T) {
	var buf bytes.Buffer
	InitForCLI(LevelInfo, &buf)

	Debug("Test", "hidden %d", 1)
	Info("Test", "saved %s", "#ff0000")
	Error("Test", errors.New("boom"), "failed")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "saved #ff0000")
	assert.Contains(t, out, "subsystem=Test")
	assert.Contains(t, out, "error=boom")
}

func TestInitForTUI_DeliversEntries(t *testing.T) {
	ch := InitForTUI(LevelDebug)
	defer CloseTUIChannel()

	Warn("Swatch", "channel %s clamped", "r")

	select {
	case entry := <-ch:
		assert.Equal(t, LevelWarn, entry.Level)
		assert.Equal(t, "Swatch", entry.Subsystem)
		assert.Equal(t, "channel r clamped", entry.Message)
		assert.Contains(t, entry.String(), "[WARN] Swatch: channel r clamped")
	case <-time.After(time.Second):
		t.Fatal("no log entry delivered")
	}
}

func TestInitForTUI_FullBufferDoesNotBlock(t *testing.T) {
	InitForTUI(LevelInfo)
	defer CloseTUIChannel()

	done := make(chan struct{})
	go func() {
		for i := 0; i < tuiChannelBufferSize*2; i++ {
			Info("Flood", "line %d", i)
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("logging blocked on a full channel")
	}
}

func TestLogEntry_StringWithError(t *testing.T) {
	e := LogEntry{
		Timestamp: time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
		Level:     LevelError,
		Subsystem: "Clipboard",
		Message:   "copy failed",
		Err:       errors.New("no display"),
	}
	assert.Equal(t, "03:04:05 [ERROR] Clipboard: copy failed (no display)", e.String())
}
