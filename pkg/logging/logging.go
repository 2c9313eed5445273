package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync/atomic"
	"time"
)

// LogLevel defines the severity of the log entry.
type LogLevel int

const (
	LevelDebug LogLevel = iota
	LevelInfo
	LevelWarn
	LevelError
)

// String makes LogLevel satisfy the fmt.Stringer interface.
func (l LogLevel) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// SlogLevel maps a LogLevel onto the corresponding slog.Level.
func (l LogLevel) SlogLevel() slog.Level {
	switch l {
	case LevelDebug:
		return slog.LevelDebug
	case LevelInfo:
		return slog.LevelInfo
	case LevelWarn:
		return slog.LevelWarn
	case LevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo // Default to INFO for unknown
	}
}

// ParseLevel converts a configuration string such as "debug" into a LogLevel.
func ParseLevel(s string) (LogLevel, error) {
	switch s {
	case "debug":
		return LevelDebug, nil
	case "info", "":
		return LevelInfo, nil
	case "warn":
		return LevelWarn, nil
	case "error":
		return LevelError, nil
	default:
		return LevelInfo, fmt.Errorf("unknown log level %q", s)
	}
}

// LogEntry is the structured log entry delivered to the board's activity
// panel.
type LogEntry struct {
	Timestamp time.Time
	Level     LogLevel
	Subsystem string
	Message   string
	Err       error
}

var (
	defaultLogger   *slog.Logger
	boardLogChannel chan LogEntry
	isBoardMode     bool
	droppedEntries  atomic.Int64
)

const boardChannelBufferSize = 2048

// initCommon initializes the logger for either board or CLI mode.
// This should be called once at application startup.
func initCommon(mode string, level LogLevel, output io.Writer, channelBufferSize int) <-chan LogEntry {
	opts := &slog.HandlerOptions{
		Level: level.SlogLevel(),
	}

	var handler slog.Handler
	if mode == "board" {
		isBoardMode = true
		if channelBufferSize <= 0 {
			channelBufferSize = boardChannelBufferSize
		}
		boardLogChannel = make(chan LogEntry, channelBufferSize)
		// The board consumes entries from the channel; stderr only catches
		// logs emitted before the program takes over the terminal.
		handler = slog.NewTextHandler(os.Stderr, opts)
	} else { // cli mode
		isBoardMode = false
		handler = slog.NewTextHandler(output, opts)
	}
	defaultLogger = slog.New(handler)
	slog.SetDefault(defaultLogger)

	if isBoardMode {
		return boardLogChannel
	}
	return nil
}

// InitForBoard initializes the logging system for board mode. It returns the
// channel the board listens to for activity panel entries.
func InitForBoard(filterLevel LogLevel) <-chan LogEntry {
	return initCommon("board", filterLevel, os.Stderr, boardChannelBufferSize)
}

// InitForCLI initializes the logging system for CLI mode. Logs are written
// as slog text lines to the provided output.
func InitForCLI(filterLevel LogLevel, output io.Writer) {
	initCommon("cli", filterLevel, output, 0)
}

func logInternal(level LogLevel, subsystem string, err error, messageFmt string, args ...interface{}) {
	msg := messageFmt
	if len(args) > 0 {
		msg = fmt.Sprintf(messageFmt, args...)
	}

	now := time.Now()

	if isBoardMode {
		if boardLogChannel != nil {
			entry := LogEntry{
				Timestamp: now,
				Level:     level,
				Subsystem: subsystem,
				Message:   msg,
				Err:       err,
			}
			// Handlers may log from the board's own event loop, so a full
			// buffer drops the entry instead of blocking the loop.
			select {
			case boardLogChannel <- entry:
			default:
				droppedEntries.Add(1)
			}
		} else {
			// Board mode without a channel means init was skipped. Emergency
			// fallback to stderr.
			fmt.Fprintf(os.Stderr, "[LOGGING_CRITICAL] board mode active but channel is nil. Log: %s [%s] %s\n", now.Format(time.RFC3339), level, msg)
			if err != nil {
				fmt.Fprintf(os.Stderr, "  Error: %v\n", err)
			}
		}
		return
	}

	// CLI mode logging
	if defaultLogger == nil {
		fmt.Fprintf(os.Stderr, "[LOGGING_ERROR] Logger not initialized. Log: %s [%s] %s\n", now.Format(time.RFC3339), level, msg)
		return
	}

	var slogAttrs []slog.Attr
	slogAttrs = append(slogAttrs, slog.String("subsystem", subsystem))
	if err != nil {
		slogAttrs = append(slogAttrs, slog.String("error", err.Error()))
	}

	defaultLogger.LogAttrs(context.Background(), level.SlogLevel(), msg, slogAttrs...)
}

// Debug logs a debug message.
func Debug(subsystem string, messageFmt string, args ...interface{}) {
	logInternal(LevelDebug, subsystem, nil, messageFmt, args...)
}

// Info logs an informational message.
func Info(subsystem string, messageFmt string, args ...interface{}) {
	logInternal(LevelInfo, subsystem, nil, messageFmt, args...)
}

// Warn logs a warning message.
func Warn(subsystem string, messageFmt string, args ...interface{}) {
	logInternal(LevelWarn, subsystem, nil, messageFmt, args...)
}

// Error logs an error message.
func Error(subsystem string, err error, messageFmt string, args ...interface{}) {
	logInternal(LevelError, subsystem, err, messageFmt, args...)
}

// DroppedEntries reports how many board entries were discarded because the
// channel buffer was full.
func DroppedEntries() int64 {
	return droppedEntries.Load()
}

// CloseBoardChannel closes the board log channel and reverts to plain text
// logging, so late shutdown messages cannot hit a closed channel. Should be
// called once the board stopped reading.
func CloseBoardChannel() {
	if boardLogChannel != nil {
		ch := boardLogChannel
		boardLogChannel = nil
		isBoardMode = false
		close(ch)
	}
}
