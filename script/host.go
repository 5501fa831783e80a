// Package script implements the C9 script hook: a pre-compiled user
// program run once per tick against the paint queue and temperature
// field.
//
// No general-purpose imperative interpreter (Lua/Rhai/Starlark-class)
// appears anywhere in the example pack this module was grounded on.
// govaluate is the closest ecosystem tool available: an expression
// evaluator extensible with custom side-effecting functions. A script
// here is therefore a sequence of expression statements, one per line,
// each evaluated for its side effects through the registered host
// functions — not a full language with loops or branches. That
// restriction is intentional; see SPEC_FULL.md.
package script

import (
	"fmt"
	"strings"

	"github.com/Knetic/govaluate"
)

// Engine is the narrow surface a script can reach into. engine.Engine
// satisfies it. Run receives it as a parameter and stores it in the
// Host's current field for the duration of that call; the host function
// closures read it from there and do not take it as a parameter of their
// own. No package-level pointer is involved.
type Engine interface {
	EnqueuePaint(x, y int, id byte)
	SetTemperature(x, y int, value float32)
	TypeID(name string) (byte, bool)
	ElapsedSeconds() float64
}

const maxLogEntries = 30

// Host holds one compiled program plus its accumulated print ring
// buffer and last compile/run error. It is safe to keep across many
// ticks; Compile replaces the program, Run executes the current one.
type Host struct {
	statements []*govaluate.EvaluableExpression
	source     string

	log    []string
	lastErr string

	current Engine // valid only while Run is executing
}

// NewHost returns an empty host: no program compiled, nothing logged.
func NewHost() *Host {
	return &Host{}
}

// LastError returns the most recent compile or run error, or "" if none
// has occurred since the last successful compile. An error persists
// until the next successful Compile; a later successful Run does not
// clear it.
func (h *Host) LastError() string {
	return h.lastErr
}

// LogLines returns the current print ring buffer, oldest first.
func (h *Host) LogLines() []string {
	out := make([]string, len(h.log))
	copy(out, h.log)
	return out
}

// Compile parses source into one expression per non-blank line. Source
// is ASCII text; compilation is separate from execution, per spec. A
// parse failure leaves the previously compiled program (if any) in
// place and records the error string — a script never aborts the
// engine, even at authoring time.
func (h *Host) Compile(source string) error {
	functions := h.functions()

	lines := strings.Split(source, "\n")
	statements := make([]*govaluate.EvaluableExpression, 0, len(lines))
	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		expr, err := govaluate.NewEvaluableExpressionWithFunctions(trimmed, functions)
		if err != nil {
			h.lastErr = fmt.Sprintf("line %d: %v", i+1, err)
			return fmt.Errorf("compile script: %w", err)
		}
		statements = append(statements, expr)
	}

	h.statements = statements
	h.source = source
	h.lastErr = ""
	return nil
}

// Empty reports whether no program is currently compiled. The tick
// scheduler skips running a script entirely in this case.
func (h *Host) Empty() bool {
	return len(h.statements) == 0
}

// Run executes every compiled statement in order against eng, once.
// A runtime error aborts only the remaining statements of this tick's
// run; it is captured, not propagated, and the engine keeps ticking.
func (h *Host) Run(eng Engine) {
	if len(h.statements) == 0 {
		return
	}

	h.current = eng
	defer func() { h.current = nil }()

	params := bridgeParams{eng: eng}
	for i, stmt := range h.statements {
		if _, err := stmt.Evaluate(params.asMap()); err != nil {
			h.lastErr = fmt.Sprintf("statement %d: %v", i+1, err)
			return
		}
	}
}

func (h *Host) appendLog(entry string) {
	h.log = append(h.log, entry)
	if len(h.log) > maxLogEntries {
		h.log = h.log[len(h.log)-maxLogEntries:]
	}
}

// bridgeParams supplies the globals (time, GRID_WIDTH, GRID_HEIGHT)
// evaluated alongside each statement. Functions are bound once at
// Compile time (see functions.go); globals are re-read every Run since
// time advances between ticks.
type bridgeParams struct {
	eng Engine
}

func (p bridgeParams) asMap() map[string]interface{} {
	return map[string]interface{}{
		"time":        p.eng.ElapsedSeconds(),
		"GRID_WIDTH":  float64(1024),
		"GRID_HEIGHT": float64(512),
	}
}
