package history

import (
	"testing"

	"github.com/example/quadframe/internal/geom"
	"github.com/example/quadframe/internal/quad"
)

func snapshot(n float64) quad.Quadrilateral {
	return quad.FromAnchor(geom.Pt(0, 0), geom.Pt(n, n))
}

func TestCommitUndoRedoRoundTrip(t *testing.T) {
	l := New()
	shapes := []quad.Quadrilateral{snapshot(10), snapshot(20), snapshot(30)}
	for _, q := range shapes {
		l.Commit(q)
	}
	if l.Depth() != len(shapes) {
		t.Fatalf("expected depth %d, got %d", len(shapes), l.Depth())
	}

	// Undo all the way down. After each undo the displayed snapshot is the
	// previous commit, and the last undo reports an empty document.
	for i := len(shapes) - 1; i >= 0; i-- {
		q, present := l.Undo()
		if i == 0 {
			if present {
				t.Fatalf("expected empty document after final undo, got %v", q)
			}
		} else if !present || q != shapes[i-1] {
			t.Fatalf("undo %d: expected %v, got %v present=%v", i, shapes[i-1], q, present)
		}
	}
	if l.CanUndo() {
		t.Fatalf("undo stack should be empty")
	}
	if l.RedoDepth() != len(shapes) {
		t.Fatalf("expected redo depth %d, got %d", len(shapes), l.RedoDepth())
	}

	// Redo replays commits in their original order.
	for _, want := range shapes {
		q, present := l.Redo()
		if !present || q != want {
			t.Fatalf("redo: expected %v, got %v present=%v", want, q, present)
		}
	}
	if l.CanRedo() {
		t.Fatalf("redo stack should be empty")
	}
}

func TestUndoEmptyIsNoOp(t *testing.T) {
	l := New()
	if q, present := l.Undo(); present || q != (quad.Quadrilateral{}) {
		t.Fatalf("undo on empty log must report nothing, got %v present=%v", q, present)
	}
	if l.CanRedo() {
		t.Fatalf("failed undo must not populate redo")
	}
}

func TestCommitClearsRedo(t *testing.T) {
	l := New()
	l.Commit(snapshot(10))
	l.Commit(snapshot(20))
	l.Undo()
	if !l.CanRedo() {
		t.Fatalf("expected a redo entry after undo")
	}
	l.Commit(snapshot(30))
	if l.CanRedo() {
		t.Fatalf("commit must drop pending redo entries")
	}
}

func TestDropRedo(t *testing.T) {
	l := New()
	l.Commit(snapshot(10))
	l.Undo()
	l.DropRedo()
	if l.CanRedo() {
		t.Fatalf("expected empty redo stack")
	}
	if l.CanUndo() {
		t.Fatalf("drop redo must not touch the undo stack")
	}
}

func TestCapacityEvictsOldest(t *testing.T) {
	l := New(WithCapacity(2))
	l.Commit(snapshot(10))
	l.Commit(snapshot(20))
	l.Commit(snapshot(30))
	if l.Depth() != 2 {
		t.Fatalf("expected capped depth 2, got %d", l.Depth())
	}
	if q, _ := l.Undo(); q != snapshot(20) {
		t.Fatalf("expected second commit under the top, got %v", q)
	}
	if _, present := l.Undo(); present {
		t.Fatalf("oldest commit should have been evicted")
	}
}

func TestClear(t *testing.T) {
	l := New()
	l.Commit(snapshot(10))
	l.Undo()
	l.Commit(snapshot(20))
	l.Clear()
	if l.CanUndo() || l.CanRedo() {
		t.Fatalf("clear must empty both stacks")
	}
	if _, present := l.Current(); present {
		t.Fatalf("expected no current snapshot after clear")
	}
}
