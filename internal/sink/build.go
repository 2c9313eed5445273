package sink

import (
	"fmt"
	"os"
	"path/filepath"

	"logboard/pkg/logging"
	"logboard/pkg/viewmodel"
)

// Build constructs the sink selected by kind ("nop", "writer", or
// "structured"). Writer and structured sinks append to the file at path, or
// fall back to stderr when path is empty. The returned cleanup releases any
// file handle and must be called on shutdown; it is never nil.
func Build(kind, path string) (viewmodel.LogSink, func(), error) {
	noop := func() {}

	switch kind {
	case "", "nop":
		return viewmodel.NopSink{}, noop, nil
	case "writer", "structured":
		w, cleanup, err := openTarget(path)
		if err != nil {
			return nil, noop, err
		}
		if kind == "writer" {
			return NewWriterSink(w), cleanup, nil
		}
		return NewStructuredSink(w), cleanup, nil
	default:
		return nil, noop, fmt.Errorf("unknown sink kind %q", kind)
	}
}

func openTarget(path string) (*os.File, func(), error) {
	if path == "" {
		return os.Stderr, func() {}, nil
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, func() {}, fmt.Errorf("failed to create sink directory: %w", err)
		}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, func() {}, fmt.Errorf("failed to open sink file: %w", err)
	}
	cleanup := func() {
		if err := f.Close(); err != nil {
			logging.Warn(subsystem, "failed to close sink file: %v", err)
		}
	}
	return f, cleanup, nil
}
