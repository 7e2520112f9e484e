// Package editor implements the pointer interaction state machine that owns
// the quadrilateral, the gesture session and the undo history. It has no UI
// dependencies: the window shell translates device events into the pointer
// methods here, and each method reports whether the display needs repainting.
package editor

import (
	"github.com/example/quadframe/internal/geom"
	"github.com/example/quadframe/internal/history"
	"github.com/example/quadframe/internal/quad"
)

// State identifies the machine's current mode.
type State int

const (
	// Idle means no quadrilateral exists and no gesture is in progress.
	Idle State = iota
	// Drawing means the initial rectangle gesture is in progress.
	Drawing
	// Dragging means one existing corner is following the pointer.
	Dragging
	// Settled means a quadrilateral exists with no active gesture.
	Settled
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Drawing:
		return "drawing"
	case Dragging:
		return "dragging"
	case Settled:
		return "settled"
	}
	return "unknown"
}

// ClickCancelDistance is the displacement below which a draw gesture is
// treated as a stray click and discarded. It applies only to the initial draw
// gesture: corner drags always commit, however small. That asymmetry is
// intentional.
const ClickCancelDistance = 5

// Editor owns all mutable interaction state. It is not safe for concurrent
// use; the single event-loop goroutine is expected to own it.
type Editor struct {
	log *history.Log

	shape    quad.Quadrilateral
	hasShape bool

	state        State
	dragCorner   geom.Corner
	gestureStart geom.Point
}

// Option adjusts an Editor at construction time.
type Option func(*Editor)

// WithHistoryCapacity bounds the undo history. Unbounded by default.
func WithHistoryCapacity(n int) Option {
	return func(e *Editor) { e.log = history.New(history.WithCapacity(n)) }
}

// New creates an Editor with no shape and empty history.
func New(opts ...Option) *Editor {
	e := &Editor{log: history.New(), state: Idle}
	for _, o := range opts {
		o(e)
	}
	return e
}

// State returns the machine's current mode.
func (e *Editor) State() State { return e.state }

// Shape returns the quadrilateral to display, if one exists. This includes
// uncommitted in-progress shapes while drawing or dragging.
func (e *Editor) Shape() (quad.Quadrilateral, bool) {
	return e.shape, e.hasShape
}

// CanUndo reports whether the undo command would do anything. The UI uses
// this for button enablement.
func (e *Editor) CanUndo() bool { return e.log.CanUndo() }

// CanRedo reports whether the redo command would do anything.
func (e *Editor) CanRedo() bool { return e.log.CanRedo() }

// History exposes the underlying log for inspection.
func (e *Editor) History() *history.Log { return e.log }

// PointerDown feeds a press at p. In Idle it seeds a degenerate quadrilateral
// and begins the draw gesture; nothing is committed until release. In Settled
// it hit-tests the corner handles and either begins a drag or ignores the
// press entirely (only one shape is allowed, so a miss never starts a new
// one).
func (e *Editor) PointerDown(p geom.Point) bool {
	switch e.state {
	case Idle:
		e.shape = quad.Degenerate(p)
		e.hasShape = true
		e.gestureStart = p
		e.log.DropRedo()
		e.state = Drawing
		return true
	case Settled:
		c, ok := quad.CornerNear(e.shape, p, quad.HitTolerance)
		if !ok {
			return false
		}
		e.dragCorner = c
		e.gestureStart = p
		e.state = Dragging
		return false
	}
	return false
}

// PointerMove feeds a move to p. While drawing the whole rectangle is
// re-derived from the anchor; while dragging only the grabbed corner moves.
// Moves outside a gesture are no-ops, and a pointer that leaves and re-enters
// the canvas mid-gesture simply keeps going: only a release ends a gesture.
func (e *Editor) PointerMove(p geom.Point) bool {
	switch e.state {
	case Drawing:
		e.shape = quad.FromAnchor(e.gestureStart, p)
		return true
	case Dragging:
		e.shape = e.shape.WithCorner(e.dragCorner, p)
		return true
	}
	return false
}

// PointerUp feeds a release at p and ends any gesture. A draw gesture whose
// total displacement is under ClickCancelDistance discards the shape; any
// other draw release and every drag release commits the current shape.
func (e *Editor) PointerUp(p geom.Point) bool {
	switch e.state {
	case Drawing:
		if geom.Distance(e.gestureStart, p) < ClickCancelDistance {
			e.shape = quad.Quadrilateral{}
			e.hasShape = false
			e.state = Idle
			return true
		}
		e.log.Commit(e.shape)
		e.state = Settled
		return true
	case Dragging:
		e.log.Commit(e.shape)
		e.state = Settled
		return true
	}
	return false
}

// Undo steps back one commit. Valid from any state: an in-progress gesture is
// abandoned and the displayed shape snaps to the history top. With an empty
// undo stack this is a silent no-op apart from the gesture reset.
func (e *Editor) Undo() bool {
	changed := false
	if e.log.CanUndo() {
		e.log.Undo()
		changed = true
	}
	return e.syncToHistory() || changed
}

// Redo steps forward one undone commit, with the same any-state semantics as
// Undo.
func (e *Editor) Redo() bool {
	changed := false
	if e.log.CanRedo() {
		e.log.Redo()
		changed = true
	}
	return e.syncToHistory() || changed
}

// Clear removes the shape and empties both history stacks. Undo and redo
// afterwards are no-ops.
func (e *Editor) Clear() bool {
	had := e.hasShape || e.log.CanUndo() || e.log.CanRedo()
	e.log.Clear()
	e.syncToHistory()
	return had
}

// syncToHistory resets any in-progress gesture and re-derives the displayed
// shape from the top of the undo stack, landing in Settled or Idle. Reports
// whether the displayed shape or state changed.
func (e *Editor) syncToHistory() bool {
	q, present := e.log.Current()
	next := Idle
	if present {
		next = Settled
	}
	changed := e.state != next || e.hasShape != present || (present && q != e.shape)
	e.shape = q
	e.hasShape = present
	e.state = next
	return changed
}
