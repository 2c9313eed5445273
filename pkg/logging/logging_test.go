package logging

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	level, err := ParseLevel("debug")
	assert.NoError(t, err)
	assert.Equal(t, LevelDebug, level)

	// Empty defaults to info
	level, err = ParseLevel("")
	assert.NoError(t, err)
	assert.Equal(t, LevelInfo, level)

	_, err = ParseLevel("verbose")
	assert.Error(t, err)
}

func TestLogLevel_String(t *testing.T) {
	assert.Equal(t, "DEBUG", LevelDebug.String())
	assert.Equal(t, "INFO", LevelInfo.String())
	assert.Equal(t, "WARN", LevelWarn.String())
	assert.Equal(t, "ERROR", LevelError.String())
	assert.Equal(t, "UNKNOWN", LogLevel(42).String())
}

func TestInitForCLI_WritesTextLines(t *testing.T) {
	var buf bytes.Buffer
	InitForCLI(LevelInfo, &buf)

	Info("config", "loaded %d entries", 3)
	output := buf.String()
	assert.Contains(t, output, "loaded 3 entries")
	assert.Contains(t, output, "subsystem=config")

	// Debug is below the filter level and must not appear
	buf.Reset()
	Debug("config", "noise")
	assert.Empty(t, buf.String())
}

func TestInitForBoard_DeliversEntries(t *testing.T) {
	entries := InitForBoard(LevelDebug)

	Warn("sink", "write lagging")

	select {
	case entry := <-entries:
		assert.Equal(t, LevelWarn, entry.Level)
		assert.Equal(t, "sink", entry.Subsystem)
		assert.Equal(t, "write lagging", entry.Message)
		assert.False(t, entry.Timestamp.IsZero())
	case <-time.After(100 * time.Millisecond):
		t.Fatal("Expected entry on board log channel")
	}
}

func TestCloseBoardChannel_RevertsToTextLogging(t *testing.T) {
	entries := InitForBoard(LevelDebug)
	CloseBoardChannel()

	_, open := <-entries
	assert.False(t, open, "channel should be closed")

	// Late shutdown messages must not hit the closed channel.
	Info("bootstrap", "late message")
	// A second close is a no-op.
	CloseBoardChannel()
}
