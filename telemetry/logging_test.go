package telemetry

import (
	"bytes"
	"strings"
	"testing"
)

func TestLogfWritesToConfiguredWriter(t *testing.T) {
	var buf bytes.Buffer
	SetLogWriter(&buf)
	defer SetLogWriter(nil)

	Logf("tick %d: %s", 5, "settled")

	if got := buf.String(); !strings.Contains(got, "tick 5: settled") {
		t.Fatalf("Logf output = %q, want it to contain the formatted message", got)
	}
}
