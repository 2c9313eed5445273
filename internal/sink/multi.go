package sink

import (
	"logboard/pkg/viewmodel"
)

// MultiSink fans each message out to several sinks in order.
type MultiSink struct {
	sinks []viewmodel.LogSink
}

// NewMultiSink creates a sink delivering to every given sink. Nil entries
// are skipped.
func NewMultiSink(sinks ...viewmodel.LogSink) *MultiSink {
	return &MultiSink{sinks: sinks}
}

// LogMessage implements viewmodel.LogSink.
func (s *MultiSink) LogMessage(message string) {
	for _, sink := range s.sinks {
		if sink == nil {
			continue
		}
		sink.LogMessage(message)
	}
}
