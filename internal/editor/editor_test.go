package editor

import (
	"testing"

	"github.com/example/quadframe/internal/geom"
	"github.com/example/quadframe/internal/quad"
)

func drag(e *Editor, from, to geom.Point) {
	e.PointerDown(from)
	e.PointerMove(to)
	e.PointerUp(to)
}

func TestDrawCommitsRectangle(t *testing.T) {
	e := New()
	drag(e, geom.Pt(100, 100), geom.Pt(200, 150))

	if e.State() != Settled {
		t.Fatalf("expected settled, got %v", e.State())
	}
	q, ok := e.Shape()
	if !ok {
		t.Fatalf("expected a shape after draw")
	}
	want := quad.Quadrilateral{
		TopLeft:     geom.Pt(100, 100),
		TopRight:    geom.Pt(200, 100),
		BottomLeft:  geom.Pt(100, 150),
		BottomRight: geom.Pt(200, 150),
	}
	if q != want {
		t.Fatalf("expected %+v, got %+v", want, q)
	}
	if e.History().Depth() != 1 {
		t.Fatalf("expected one history entry, got %d", e.History().Depth())
	}
}

func TestShortDrawCancels(t *testing.T) {
	e := New()
	drag(e, geom.Pt(100, 100), geom.Pt(102, 101))

	if e.State() != Idle {
		t.Fatalf("expected idle after stray click, got %v", e.State())
	}
	if _, ok := e.Shape(); ok {
		t.Fatalf("stray click must not leave a shape")
	}
	if e.CanUndo() {
		t.Fatalf("stray click must not commit")
	}
}

func TestDrawAtThresholdCommits(t *testing.T) {
	e := New()
	drag(e, geom.Pt(0, 0), geom.Pt(ClickCancelDistance, 0))
	if e.State() != Settled {
		t.Fatalf("displacement equal to the threshold must commit, got %v", e.State())
	}
}

func TestZeroDistanceDragCommits(t *testing.T) {
	e := New()
	drag(e, geom.Pt(0, 0), geom.Pt(100, 100))

	// Press exactly on a corner and release without moving. Unlike the draw
	// gesture this still commits.
	e.PointerDown(geom.Pt(100, 100))
	if e.State() != Dragging {
		t.Fatalf("expected dragging, got %v", e.State())
	}
	e.PointerUp(geom.Pt(100, 100))
	if e.State() != Settled {
		t.Fatalf("expected settled, got %v", e.State())
	}
	if e.History().Depth() != 2 {
		t.Fatalf("expected two commits, got %d", e.History().Depth())
	}
}

func TestDragMovesSingleCorner(t *testing.T) {
	e := New()
	drag(e, geom.Pt(0, 0), geom.Pt(100, 100))

	e.PointerDown(geom.Pt(100, 100)) // bottom-right handle
	e.PointerMove(geom.Pt(140, 60))
	e.PointerUp(geom.Pt(140, 60))

	q, _ := e.Shape()
	if q.BottomRight != geom.Pt(140, 60) {
		t.Fatalf("bottom-right not dragged: %v", q.BottomRight)
	}
	if q.TopLeft != geom.Pt(0, 0) || q.TopRight != geom.Pt(100, 0) || q.BottomLeft != geom.Pt(0, 100) {
		t.Fatalf("drag must move exactly one corner, got %+v", q)
	}
}

func TestPressMissIgnoredWhenSettled(t *testing.T) {
	e := New()
	drag(e, geom.Pt(0, 0), geom.Pt(100, 100))

	before, _ := e.Shape()
	if repaint := e.PointerDown(geom.Pt(50, 50)); repaint {
		t.Fatalf("press away from every handle must not repaint")
	}
	if e.State() != Settled {
		t.Fatalf("expected settled, got %v", e.State())
	}
	e.PointerMove(geom.Pt(60, 60))
	e.PointerUp(geom.Pt(60, 60))
	after, _ := e.Shape()
	if after != before {
		t.Fatalf("ignored press must leave the shape untouched")
	}
	if e.History().Depth() != 1 {
		t.Fatalf("ignored press must not commit, depth %d", e.History().Depth())
	}
}

func TestNewDrawDropsRedo(t *testing.T) {
	e := New()
	drag(e, geom.Pt(0, 0), geom.Pt(100, 100))
	e.Undo()
	if !e.CanRedo() {
		t.Fatalf("expected a redo entry after undo")
	}
	// The redo branch dies as soon as a new draw begins, before commit.
	e.PointerDown(geom.Pt(10, 10))
	if e.CanRedo() {
		t.Fatalf("pointer down in idle must drop the redo stack")
	}
}

func TestUndoRedoRestoreShape(t *testing.T) {
	e := New()
	drag(e, geom.Pt(0, 0), geom.Pt(100, 100))
	first, _ := e.Shape()
	e.PointerDown(geom.Pt(100, 100))
	e.PointerMove(geom.Pt(130, 130))
	e.PointerUp(geom.Pt(130, 130))
	second, _ := e.Shape()

	if !e.Undo() {
		t.Fatalf("undo should report a change")
	}
	if q, _ := e.Shape(); q != first {
		t.Fatalf("undo: expected %+v, got %+v", first, q)
	}
	if !e.Redo() {
		t.Fatalf("redo should report a change")
	}
	if q, _ := e.Shape(); q != second {
		t.Fatalf("redo: expected %+v, got %+v", second, q)
	}
	if e.State() != Settled {
		t.Fatalf("expected settled, got %v", e.State())
	}
}

func TestUndoToEmptyDocument(t *testing.T) {
	e := New()
	drag(e, geom.Pt(0, 0), geom.Pt(100, 100))
	e.Undo()
	if e.State() != Idle {
		t.Fatalf("expected idle after undoing the only commit, got %v", e.State())
	}
	if _, ok := e.Shape(); ok {
		t.Fatalf("expected no shape")
	}
	// A second undo has nothing left to do.
	if e.Undo() {
		t.Fatalf("undo on empty history must report no change")
	}
}

func TestUndoMidGestureAbandonsIt(t *testing.T) {
	e := New()
	drag(e, geom.Pt(0, 0), geom.Pt(100, 100))
	e.PointerDown(geom.Pt(100, 100))
	e.PointerMove(geom.Pt(300, 300))

	e.Undo()
	if e.State() != Idle {
		t.Fatalf("expected idle, got %v", e.State())
	}
	// The release that would have ended the abandoned gesture is now a stray
	// event and must not commit anything.
	e.PointerUp(geom.Pt(300, 300))
	if e.History().Depth() != 0 {
		t.Fatalf("abandoned gesture must not commit, depth %d", e.History().Depth())
	}
}

func TestClearMakesUndoRedoNoOps(t *testing.T) {
	e := New()
	drag(e, geom.Pt(0, 0), geom.Pt(100, 100))
	e.Undo()
	drag(e, geom.Pt(0, 0), geom.Pt(50, 50))

	if !e.Clear() {
		t.Fatalf("clear should report a change")
	}
	if _, ok := e.Shape(); ok {
		t.Fatalf("expected no shape after clear")
	}
	if e.State() != Idle {
		t.Fatalf("expected idle after clear, got %v", e.State())
	}
	if e.Undo() || e.Redo() {
		t.Fatalf("undo and redo after clear must be no-ops")
	}
}

func TestMoveOutsideGestureIsNoOp(t *testing.T) {
	e := New()
	if e.PointerMove(geom.Pt(10, 10)) {
		t.Fatalf("move in idle must not repaint")
	}
	drag(e, geom.Pt(0, 0), geom.Pt(100, 100))
	before, _ := e.Shape()
	if e.PointerMove(geom.Pt(10, 10)) {
		t.Fatalf("move in settled must not repaint")
	}
	if after, _ := e.Shape(); after != before {
		t.Fatalf("move in settled must not mutate the shape")
	}
}

func TestHistoryCapacityOption(t *testing.T) {
	e := New(WithHistoryCapacity(1))
	drag(e, geom.Pt(0, 0), geom.Pt(100, 100))
	e.PointerDown(geom.Pt(100, 100))
	e.PointerMove(geom.Pt(120, 120))
	e.PointerUp(geom.Pt(120, 120))

	// Only the latest commit survives, so one undo empties the document.
	e.Undo()
	if e.State() != Idle {
		t.Fatalf("expected idle after undo with capacity 1, got %v", e.State())
	}
}
