package script

import "testing"

type fakeEngine struct {
	paints []struct {
		x, y int
		id   byte
	}
	temps   map[[2]int]float32
	typeIDs map[string]byte
	elapsed float64
}

func newFakeEngine() *fakeEngine {
	return &fakeEngine{
		temps:   make(map[[2]int]float32),
		typeIDs: map[string]byte{"sand": 1, "water": 2},
	}
}

func (f *fakeEngine) EnqueuePaint(x, y int, id byte) {
	f.paints = append(f.paints, struct {
		x, y int
		id   byte
	}{x, y, id})
}

func (f *fakeEngine) SetTemperature(x, y int, value float32) {
	f.temps[[2]int{x, y}] = value
}

func (f *fakeEngine) TypeID(name string) (byte, bool) {
	id, ok := f.typeIDs[name]
	return id, ok
}

func (f *fakeEngine) ElapsedSeconds() float64 { return f.elapsed }

func TestCompileEmptyProgramIsEmpty(t *testing.T) {
	h := NewHost()
	if !h.Empty() {
		t.Fatalf("fresh host should be empty")
	}
	if err := h.Compile(""); err != nil {
		t.Fatalf("Compile(\"\") returned error: %v", err)
	}
	if !h.Empty() {
		t.Fatalf("host compiled from blank source should still be empty")
	}
}

func TestRunSetCell(t *testing.T) {
	h := NewHost()
	if err := h.Compile("set_cell(5, 6, 1)"); err != nil {
		t.Fatalf("Compile: %v", err)
	}
	eng := newFakeEngine()
	h.Run(eng)

	if len(eng.paints) != 1 {
		t.Fatalf("expected 1 paint, got %d", len(eng.paints))
	}
	p := eng.paints[0]
	if p.x != 5 || p.y != 6 || p.id != 1 {
		t.Fatalf("unexpected paint: %+v", p)
	}
	if h.LastError() != "" {
		t.Fatalf("unexpected error: %v", h.LastError())
	}
}

func TestRunDrawLineEnqueuesEveryPoint(t *testing.T) {
	h := NewHost()
	if err := h.Compile("draw_line(vec2(0, 0), vec2(3, 0), 2)"); err != nil {
		t.Fatalf("Compile: %v", err)
	}
	eng := newFakeEngine()
	h.Run(eng)

	if len(eng.paints) != 4 {
		t.Fatalf("expected 4 paints along a 4-pixel horizontal line, got %d", len(eng.paints))
	}
}

func TestTypeIDUnknownNameIsRecoverableError(t *testing.T) {
	h := NewHost()
	if err := h.Compile("set_cell(0, 0, type_id(\"unobtainium\"))"); err != nil {
		t.Fatalf("Compile: %v", err)
	}
	eng := newFakeEngine()
	h.Run(eng)

	if h.LastError() == "" {
		t.Fatalf("expected a script error for an unregistered material name")
	}
	if len(eng.paints) != 0 {
		t.Fatalf("failed statement should not have enqueued a paint")
	}
}

func TestPrintRingBufferBoundedAt30(t *testing.T) {
	h := NewHost()
	src := ""
	for i := 0; i < 40; i++ {
		src += "print(1)\n"
	}
	if err := h.Compile(src); err != nil {
		t.Fatalf("Compile: %v", err)
	}
	h.Run(newFakeEngine())

	if got := len(h.LogLines()); got != maxLogEntries {
		t.Fatalf("log buffer length = %d, want %d", got, maxLogEntries)
	}
}

func TestCompileErrorKeepsPreviousProgram(t *testing.T) {
	h := NewHost()
	if err := h.Compile("set_cell(0, 0, 1)"); err != nil {
		t.Fatalf("Compile: %v", err)
	}
	if err := h.Compile("set_cell(((("); err == nil {
		t.Fatalf("expected a compile error for malformed source")
	}
	if h.Empty() {
		t.Fatalf("a failed compile should not discard the previously compiled program")
	}
}
