package engine

import (
	"sync"

	"github.com/sandcell/evolution/grid"
	"github.com/sandcell/evolution/materials"
)

// PaintWrite is one requested cell write: a brush stroke or a script's
// set_cell call.
type PaintWrite struct {
	X, Y int
	ID   materials.ID
}

// PaintQueue is the append-only FIFO of pending writes (C8). Writes are
// buffered here rather than applied immediately so that a tick always
// starts from a consistent grid: the queue is drained in full before any
// script or cell update runs.
type PaintQueue struct {
	mu      sync.Mutex
	pending []PaintWrite
}

// NewPaintQueue returns an empty queue.
func NewPaintQueue() *PaintQueue {
	return &PaintQueue{}
}

// Enqueue appends a write. Out-of-range coordinates are accepted here —
// they are silently dropped at drain time, never at enqueue time, so a
// caller painting near an edge never sees an error.
func (q *PaintQueue) Enqueue(x, y int, id materials.ID) {
	q.mu.Lock()
	q.pending = append(q.pending, PaintWrite{X: x, Y: y, ID: id})
	q.mu.Unlock()
}

// DrainInto applies every pending write to the engine's grid, in FIFO
// order, then empties the queue. Out-of-range writes are silently
// dropped.
func (q *PaintQueue) DrainInto(e *Engine) {
	q.mu.Lock()
	writes := q.pending
	q.pending = nil
	q.mu.Unlock()

	for _, w := range writes {
		if !grid.InBounds(w.X, w.Y) {
			continue
		}
		e.Set(grid.Index(w.X, w.Y), w.ID)
	}
}
