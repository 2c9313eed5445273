package sink

import (
	"io"

	"github.com/rs/zerolog"
)

// StructuredSink emits each message as a zerolog JSON event.
type StructuredSink struct {
	logger zerolog.Logger
}

// NewStructuredSink creates a sink emitting timestamped JSON events to w.
func NewStructuredSink(w io.Writer) *StructuredSink {
	logger := zerolog.New(w).With().Timestamp().Logger()
	return &StructuredSink{logger: logger}
}

// LogMessage implements viewmodel.LogSink. zerolog absorbs write failures,
// so nothing propagates to the caller.
func (s *StructuredSink) LogMessage(message string) {
	s.logger.Info().Msg(message)
}
