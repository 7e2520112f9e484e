package geom

import "math"

// Point is a location in canvas pixel coordinates. Points are immutable
// values; mutation happens by constructing a replacement.
type Point struct {
	X float64
	Y float64
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float64) Point { return Point{X: x, Y: y} }

// Distance returns the Euclidean distance between a and b.
func Distance(a, b Point) float64 {
	return math.Hypot(b.X-a.X, b.Y-a.Y)
}

// Corner identifies one of the four named quadrilateral corners.
type Corner int

const (
	TopLeft Corner = iota
	TopRight
	BottomLeft
	BottomRight
)

// Corners lists the corner keys in declaration order. Hit testing walks this
// slice front to back, so when two handles overlap the earlier corner wins.
var Corners = [...]Corner{TopLeft, TopRight, BottomLeft, BottomRight}

func (c Corner) String() string {
	switch c {
	case TopLeft:
		return "top-left"
	case TopRight:
		return "top-right"
	case BottomLeft:
		return "bottom-left"
	case BottomRight:
		return "bottom-right"
	}
	return "unknown"
}
