// Package render composites the editor canvas: the background image stretched
// to fill the canvas bounds, the quadrilateral outline and its corner
// handles. It also serializes canvas pixels for export.
package render

import (
	"bytes"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"math"

	xdraw "golang.org/x/image/draw"

	"github.com/example/quadframe/internal/geom"
	"github.com/example/quadframe/internal/quad"
	"github.com/example/quadframe/internal/theme"
)

// Compose draws one full canvas frame into dst. The background is stretched
// to exactly fill dst's bounds (no letterboxing); a nil background paints the
// theme's canvas fill instead. When a shape is present its closed outline is
// stroked TL→TR→BR→BL→TL and a filled circular handle is drawn at each corner
// in declaration order. Compose runs only when state changes; there is no
// animation schedule.
func Compose(dst *image.RGBA, background image.Image, shape *quad.Quadrilateral, th *theme.Theme) {
	if th == nil {
		th = theme.Default()
	}
	if background != nil {
		xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), background, background.Bounds(), draw.Src, nil)
	} else {
		draw.Draw(dst, dst.Bounds(), &image.Uniform{th.CanvasFill}, image.Point{}, draw.Src)
	}
	if shape == nil {
		return
	}
	strokeQuad(dst, *shape, th.Stroke, th.StrokeWidth)
	for _, c := range geom.Corners {
		p := shape.Corner(c)
		drawFilledCircle(dst, round(p.X), round(p.Y), th.HandleRadius, th.Handle)
	}
}

// EncodePNG serializes img as a PNG byte buffer. Export never touches
// interaction state.
func EncodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func strokeQuad(dst *image.RGBA, q quad.Quadrilateral, col color.Color, width int) {
	path := [...]geom.Point{q.TopLeft, q.TopRight, q.BottomRight, q.BottomLeft, q.TopLeft}
	for i := 0; i < len(path)-1; i++ {
		a, b := path[i], path[i+1]
		drawLine(dst, round(a.X), round(a.Y), round(b.X), round(b.Y), col, width)
	}
}

func round(v float64) int { return int(math.Round(v)) }

func setThickPixel(img *image.RGBA, x, y, thick int, col color.Color) {
	r := thick / 2
	for dx := -r; dx <= r; dx++ {
		for dy := -r; dy <= r; dy++ {
			px := x + dx
			py := y + dy
			if image.Pt(px, py).In(img.Bounds()) {
				img.Set(px, py, col)
			}
		}
	}
}

func drawLine(img *image.RGBA, x0, y0, x1, y1 int, col color.Color, thick int) {
	dx := math.Abs(float64(x1 - x0))
	dy := math.Abs(float64(y1 - y0))
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx - dy
	for {
		setThickPixel(img, x0, y0, thick, col)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

func drawFilledCircle(img *image.RGBA, cx, cy, r int, col color.Color) {
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			if dx*dx+dy*dy <= r*r {
				px := cx + dx
				py := cy + dy
				if image.Pt(px, py).In(img.Bounds()) {
					img.Set(px, py, col)
				}
			}
		}
	}
}
