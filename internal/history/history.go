// Package history records committed quadrilateral snapshots for linear
// undo/redo. Snapshots are values, so a push never aliases the live shape.
package history

import (
	"github.com/example/quadframe/internal/quad"
)

// Log is a pair of stacks over committed snapshots: undo with the most recent
// commit last, redo with the most recently undone first. Both grow without
// bound unless a capacity is requested explicitly.
type Log struct {
	undo     []quad.Quadrilateral
	redo     []quad.Quadrilateral
	capacity int
}

// Option adjusts a Log at construction time.
type Option func(*Log)

// WithCapacity caps the undo stack at n entries, evicting the oldest commit
// when a push would exceed it. This is an opt-in extension; the default is an
// unbounded history.
func WithCapacity(n int) Option {
	return func(l *Log) {
		if n > 0 {
			l.capacity = n
		}
	}
}

// New creates an empty Log.
func New(opts ...Option) *Log {
	l := &Log{}
	for _, o := range opts {
		o(l)
	}
	return l
}

// Commit pushes a snapshot of q onto the undo stack. Any pending redo entries
// become unreachable and are dropped unconditionally.
func (l *Log) Commit(q quad.Quadrilateral) {
	l.undo = append(l.undo, q)
	if l.capacity > 0 && len(l.undo) > l.capacity {
		l.undo = append(l.undo[:0], l.undo[len(l.undo)-l.capacity:]...)
	}
	l.redo = nil
}

// DropRedo discards the redo stack without touching committed history. The
// editor calls this when a new gesture begins, before anything is committed.
func (l *Log) DropRedo() {
	l.redo = nil
}

// Undo moves the most recent commit to the front of the redo stack and
// reports the snapshot that should now be displayed, if any. With an empty
// undo stack nothing changes and present is false.
func (l *Log) Undo() (q quad.Quadrilateral, present bool) {
	if len(l.undo) == 0 {
		return quad.Quadrilateral{}, false
	}
	top := l.undo[len(l.undo)-1]
	l.undo = l.undo[:len(l.undo)-1]
	l.redo = append([]quad.Quadrilateral{top}, l.redo...)
	return l.Current()
}

// Redo moves the front redo entry back onto the undo stack and returns it as
// the snapshot to display. With an empty redo stack nothing changes.
func (l *Log) Redo() (q quad.Quadrilateral, present bool) {
	if len(l.redo) == 0 {
		return quad.Quadrilateral{}, false
	}
	front := l.redo[0]
	l.redo = l.redo[1:]
	l.undo = append(l.undo, front)
	return front, true
}

// Clear empties both stacks.
func (l *Log) Clear() {
	l.undo = nil
	l.redo = nil
}

// Current returns the snapshot on top of the undo stack, the shape most
// recently committed or redone.
func (l *Log) Current() (q quad.Quadrilateral, present bool) {
	if len(l.undo) == 0 {
		return quad.Quadrilateral{}, false
	}
	return l.undo[len(l.undo)-1], true
}

// CanUndo reports whether an undo would change the displayed shape.
func (l *Log) CanUndo() bool { return len(l.undo) > 0 }

// CanRedo reports whether a redo would change the displayed shape.
func (l *Log) CanRedo() bool { return len(l.redo) > 0 }

// Depth returns the number of committed snapshots available to undo.
func (l *Log) Depth() int { return len(l.undo) }

// RedoDepth returns the number of undone snapshots available to redo.
func (l *Log) RedoDepth() int { return len(l.redo) }
