package render

import (
	"image"
	"image/color"
	"image/draw"
)

// ShadowOptions configures the drop shadow applied to exported images.
type ShadowOptions struct {
	Radius  int
	Offset  image.Point
	Opacity float64
}

// DefaultShadowOptions returns a conservative drop shadow that frames most
// exports well.
func DefaultShadowOptions() ShadowOptions {
	return ShadowOptions{
		Radius:  16,
		Offset:  image.Pt(10, 10),
		Opacity: 0.5,
	}
}

// AddShadow returns img composited over a blurred drop shadow on an expanded
// canvas. The composed canvas is fully opaque, so the shadow mask is simply
// the image rectangle. Zero opacity returns img unchanged.
func AddShadow(img *image.RGBA, opts ShadowOptions) *image.RGBA {
	if img == nil || img.Bounds().Empty() || opts.Opacity <= 0 {
		return img
	}
	opacity := opts.Opacity
	if opacity > 1 {
		opacity = 1
	}
	radius := opts.Radius
	if radius < 0 {
		radius = 0
	}

	src := img.Bounds()
	shadow := src.Inset(-radius).Add(opts.Offset)
	total := src.Union(shadow)

	dst := image.NewRGBA(total.Sub(total.Min))
	alpha := uint8(opacity*255 + 0.5)

	mask := image.NewGray(image.Rect(0, 0, src.Dx()+2*radius, src.Dy()+2*radius))
	inner := image.Rect(radius, radius, radius+src.Dx(), radius+src.Dy())
	draw.Draw(mask, inner, &image.Uniform{color.Gray{Y: 255}}, image.Point{}, draw.Src)
	blurred := boxBlur(mask, radius)

	origin := shadow.Min.Sub(total.Min)
	draw.DrawMask(dst, blurred.Bounds().Add(origin),
		image.NewUniform(color.RGBA{0, 0, 0, alpha}), image.Point{},
		blurred, blurred.Bounds().Min, draw.Over)
	draw.Draw(dst, src.Sub(total.Min), img, src.Min, draw.Over)
	return dst
}

// boxBlur applies a separable box blur of the given radius, a cheap stand-in
// for a Gaussian that is close enough for shadow edges.
func boxBlur(src *image.Gray, radius int) *image.Gray {
	if radius <= 0 {
		out := image.NewGray(src.Bounds())
		copy(out.Pix, src.Pix)
		return out
	}
	bounds := src.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	tmp := image.NewGray(bounds)
	dst := image.NewGray(bounds)

	for y := 0; y < h; y++ {
		prefix := make([]int, w+1)
		for x := 0; x < w; x++ {
			prefix[x+1] = prefix[x] + int(src.Pix[y*src.Stride+x])
		}
		for x := 0; x < w; x++ {
			x0 := max(x-radius, 0)
			x1 := min(x+radius, w-1)
			tmp.Pix[y*tmp.Stride+x] = uint8((prefix[x1+1] - prefix[x0]) / (x1 - x0 + 1))
		}
	}

	for x := 0; x < w; x++ {
		prefix := make([]int, h+1)
		for y := 0; y < h; y++ {
			prefix[y+1] = prefix[y] + int(tmp.Pix[y*tmp.Stride+x])
		}
		for y := 0; y < h; y++ {
			y0 := max(y-radius, 0)
			y1 := min(y+radius, h-1)
			dst.Pix[y*dst.Stride+x] = uint8((prefix[y1+1] - prefix[y0]) / (y1 - y0 + 1))
		}
	}

	return dst
}
