package main

import (
	"context"
	"flag"
	"fmt"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"

	"github.com/example/quadframe/internal/background"
	"github.com/example/quadframe/internal/clipboard"
	"github.com/example/quadframe/internal/geom"
	"github.com/example/quadframe/internal/quad"
	"github.com/example/quadframe/internal/render"
	"github.com/example/quadframe/internal/theme"
)

// composeCmd renders a quadrilateral over a background without opening a
// window. The eight positional arguments are the corner coordinates in
// top-left, top-right, bottom-left, bottom-right order.
type composeCmd struct {
	file          string
	url           string
	output        string
	stdout        bool
	toClipboard   bool
	width         int
	height        int
	strokeSpec    string
	handleSpec    string
	shadow        bool
	shadowRadius  int
	shadowOffsetX int
	shadowOffsetY int
	shadowOpacity float64
	shape         quad.Quadrilateral
	*root
	fs *flag.FlagSet
}

func (c *composeCmd) FlagSet() *flag.FlagSet {
	return c.fs
}

func parseColor(s string) (color.RGBA, error) {
	spec := strings.ToLower(strings.TrimSpace(s))
	if spec == "" {
		return color.RGBA{}, fmt.Errorf("color cannot be empty")
	}
	if c, ok := colornames.Map[spec]; ok {
		return c, nil
	}
	if strings.HasPrefix(spec, "#") {
		return theme.ParseColor(spec)
	}
	return color.RGBA{}, fmt.Errorf("invalid color %q", s)
}

func parseComposeCmd(args []string, r *root) (*composeCmd, error) {
	fs := flag.NewFlagSet("compose", flag.ExitOnError)
	c := &composeCmd{root: r, fs: fs}
	fs.Usage = usageFunc(c)

	shadowDefaults := render.DefaultShadowOptions()
	fs.StringVar(&c.file, "file", "", "background image file")
	fs.StringVar(&c.url, "url", "", "background image URL")
	fs.StringVar(&c.output, "output", "", "output file path")
	fs.BoolVar(&c.stdout, "stdout", false, "write the PNG to standard output instead of a file")
	fs.BoolVar(&c.toClipboard, "to-clipboard", false, "copy the result to the clipboard")
	fs.IntVar(&c.width, "width", 0, "canvas width in pixels (defaults to the background width)")
	fs.IntVar(&c.height, "height", 0, "canvas height in pixels (defaults to the background height)")
	fs.StringVar(&c.strokeSpec, "stroke", "", "outline color name or hex value")
	fs.StringVar(&c.handleSpec, "handle", "", "corner handle color name or hex value")
	fs.BoolVar(&c.shadow, "shadow", false, "composite the result over a drop shadow")
	fs.IntVar(&c.shadowRadius, "shadow-radius", shadowDefaults.Radius, "drop shadow blur radius in pixels")
	fs.IntVar(&c.shadowOffsetX, "shadow-offset-x", shadowDefaults.Offset.X, "drop shadow horizontal offset in pixels")
	fs.IntVar(&c.shadowOffsetY, "shadow-offset-y", shadowDefaults.Offset.Y, "drop shadow vertical offset in pixels")
	fs.Float64Var(&c.shadowOpacity, "shadow-opacity", shadowDefaults.Opacity, "drop shadow opacity between 0 and 1")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	coords, err := expectFloats(fs.Args(), 8)
	if err != nil {
		return nil, err
	}
	c.shape = quad.Quadrilateral{
		TopLeft:     geom.Pt(coords[0], coords[1]),
		TopRight:    geom.Pt(coords[2], coords[3]),
		BottomLeft:  geom.Pt(coords[4], coords[5]),
		BottomRight: geom.Pt(coords[6], coords[7]),
	}

	if c.file != "" && c.url != "" {
		return nil, fmt.Errorf("-file and -url are mutually exclusive")
	}
	if c.file == "" && c.url == "" && (c.width <= 0 || c.height <= 0) {
		return nil, fmt.Errorf("canvas dimensions are required without a background")
	}
	if c.shadowOpacity < 0 || c.shadowOpacity > 1 {
		return nil, fmt.Errorf("shadow-opacity must be between 0 and 1")
	}
	if c.output == "" && !c.stdout {
		if r != nil && r.config != nil && r.config.Output != "" {
			c.output = r.config.Output
		} else {
			c.output = "quadframe.png"
		}
	}
	return c, nil
}

func expectFloats(args []string, n int) ([]float64, error) {
	if len(args) != n {
		return nil, fmt.Errorf("expected %d corner coordinates, got %d", n, len(args))
	}
	vals := make([]float64, n)
	for i, raw := range args {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid coordinate %q", raw)
		}
		vals[i] = v
	}
	return vals, nil
}

func (c *composeCmd) Run() error {
	var bg image.Image
	src := c.file
	if c.url != "" {
		src = c.url
	}
	if src != "" {
		img, err := background.Load(context.Background(), src)
		if err != nil {
			return fmt.Errorf("load background: %w", err)
		}
		bg = img
	}

	width, height := c.width, c.height
	if width <= 0 || height <= 0 {
		width = bg.Bounds().Dx()
		height = bg.Bounds().Dy()
	}

	th := theme.Default()
	if c.root != nil && c.root.activeTheme != nil {
		th = c.root.activeTheme
	}
	tc := *th
	if c.strokeSpec != "" {
		col, err := parseColor(c.strokeSpec)
		if err != nil {
			return err
		}
		tc.Stroke = col
	}
	if c.handleSpec != "" {
		col, err := parseColor(c.handleSpec)
		if err != nil {
			return err
		}
		tc.Handle = col
	}

	out := image.NewRGBA(image.Rect(0, 0, width, height))
	render.Compose(out, bg, &c.shape, &tc)
	if c.shadow {
		out = render.AddShadow(out, render.ShadowOptions{
			Radius:  c.shadowRadius,
			Offset:  image.Pt(c.shadowOffsetX, c.shadowOffsetY),
			Opacity: c.shadowOpacity,
		})
	}

	data, err := render.EncodePNG(out)
	if err != nil {
		return fmt.Errorf("encode PNG: %w", err)
	}

	if c.stdout {
		if _, err := os.Stdout.Write(data); err != nil {
			return fmt.Errorf("write PNG to stdout: %w", err)
		}
	} else {
		if err := os.WriteFile(c.output, data, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", c.output, err)
		}
		saved := c.output
		if abs, err := filepath.Abs(c.output); err == nil {
			saved = abs
		}
		fmt.Fprintf(os.Stderr, "saved %s\n", saved)
		c.root.notifySave(saved)
	}

	if c.toClipboard {
		if err := clipboard.WriteImage(out); err != nil {
			return fmt.Errorf("copy PNG to clipboard: %w", err)
		}
		detail := "image"
		if !c.stdout {
			detail = filepath.Base(c.output)
		}
		fmt.Fprintf(os.Stderr, "copied %s to clipboard\n", detail)
		c.root.notifyCopy(detail)
	}
	return nil
}
