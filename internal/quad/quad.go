// Package quad models the single editable quadrilateral: four named corners
// in canvas pixel coordinates, with no geometric constraint. Dragging may
// cross corners and produce a non-convex or self-intersecting outline; that
// is permitted, not an error.
package quad

import (
	"github.com/example/quadframe/internal/geom"
)

// Quadrilateral holds the four named corners. It is a plain value, so
// assignment is a deep copy and history snapshots never alias live state.
type Quadrilateral struct {
	TopLeft     geom.Point
	TopRight    geom.Point
	BottomLeft  geom.Point
	BottomRight geom.Point
}

// Degenerate seeds a zero-area quadrilateral with every corner at p. This is
// the shape created on the first press of a draw gesture.
func Degenerate(p geom.Point) Quadrilateral {
	return Quadrilateral{TopLeft: p, TopRight: p, BottomLeft: p, BottomRight: p}
}

// FromAnchor reconstructs an axis-aligned rectangle from the fixed TopLeft
// anchor and the live pointer position. The whole shape is derived fresh from
// the two points on every call rather than patched by deltas, which is what
// keeps the outline rectangular for the entire draw gesture.
func FromAnchor(anchor, current geom.Point) Quadrilateral {
	return Quadrilateral{
		TopLeft:     anchor,
		TopRight:    geom.Point{X: current.X, Y: anchor.Y},
		BottomLeft:  geom.Point{X: anchor.X, Y: current.Y},
		BottomRight: current,
	}
}

// Corner returns the named corner point.
func (q Quadrilateral) Corner(c geom.Corner) geom.Point {
	switch c {
	case geom.TopLeft:
		return q.TopLeft
	case geom.TopRight:
		return q.TopRight
	case geom.BottomLeft:
		return q.BottomLeft
	default:
		return q.BottomRight
	}
}

// WithCorner returns a copy of q with exactly one corner replaced. Unlike the
// draw gesture the rest of the shape is untouched, so a dragged rectangle
// becomes an arbitrary quadrilateral.
func (q Quadrilateral) WithCorner(c geom.Corner, p geom.Point) Quadrilateral {
	switch c {
	case geom.TopLeft:
		q.TopLeft = p
	case geom.TopRight:
		q.TopRight = p
	case geom.BottomLeft:
		q.BottomLeft = p
	case geom.BottomRight:
		q.BottomRight = p
	}
	return q
}

// HitTolerance is the corner handle hit radius in pixels.
const HitTolerance = 6

// CornerNear returns the first corner of q whose distance to p is within
// tolerance, walking corners in declaration order. When two handles coincide
// the earlier corner wins; that tie-break is deliberate and load-bearing for
// drag-target resolution.
func CornerNear(q Quadrilateral, p geom.Point, tolerance float64) (geom.Corner, bool) {
	for _, c := range geom.Corners {
		if geom.Distance(q.Corner(c), p) <= tolerance {
			return c, true
		}
	}
	return 0, false
}
