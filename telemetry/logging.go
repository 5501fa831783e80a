package telemetry

import (
	"fmt"
	"io"
)

// logWriter is the destination for plain human-readable log output.
var logWriter io.Writer

// SetLogWriter sets the log output destination. A nil writer (the
// default) falls back to stdout.
func SetLogWriter(w io.Writer) {
	logWriter = w
}

// Logf writes a formatted log message — the narration channel the tick
// loop and CLI runner use alongside the structured slog records.
func Logf(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	if logWriter != nil {
		fmt.Fprintln(logWriter, msg)
	} else {
		fmt.Println(msg)
	}
}
