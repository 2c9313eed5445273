// Package sink provides LogSink implementations for the board's log feed.
//
// Sinks never surface failures to the caller. Anything that goes wrong is
// reported through pkg/logging and otherwise swallowed.
package sink

import (
	"fmt"
	"io"
	"sync"
	"time"

	"logboard/pkg/logging"
)

const subsystem = "sink"

// WriterSink writes each message as a timestamped line to an io.Writer.
type WriterSink struct {
	w  io.Writer
	mu sync.Mutex
}

// NewWriterSink creates a sink that writes to w.
func NewWriterSink(w io.Writer) *WriterSink {
	return &WriterSink{w: w}
}

// LogMessage implements viewmodel.LogSink. Write failures are logged and
// swallowed.
func (s *WriterSink) LogMessage(message string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.w == nil {
		return
	}
	if _, err := fmt.Fprintf(s.w, "%s %s\n", time.Now().Format(time.RFC3339), message); err != nil {
		logging.Warn(subsystem, "dropping log line: %v", err)
	}
}
