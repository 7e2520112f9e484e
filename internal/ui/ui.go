// Package ui runs the interactive editing window. It owns the shiny event
// loop and translates device events into editor commands; all drawing state
// lives in the editor and all pixel work in the render package.
package ui

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"log"
	"os"
	"time"

	"golang.org/x/exp/shiny/driver"
	"golang.org/x/exp/shiny/screen"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/mobile/event/key"
	"golang.org/x/mobile/event/lifecycle"
	"golang.org/x/mobile/event/mouse"
	"golang.org/x/mobile/event/paint"
	"golang.org/x/mobile/event/size"

	"github.com/example/quadframe/internal/background"
	"github.com/example/quadframe/internal/clipboard"
	"github.com/example/quadframe/internal/editor"
	"github.com/example/quadframe/internal/geom"
	"github.com/example/quadframe/internal/notify"
	"github.com/example/quadframe/internal/render"
	"github.com/example/quadframe/internal/theme"
)

const barHeight = 28

// backgroundEvent carries an asynchronous load result into the event loop.
type backgroundEvent struct {
	background.Result
}

// Session holds the configuration for one editing window.
type Session struct {
	Source   string
	Output   string
	Theme    *theme.Theme
	Notifier *notify.Notifier
	CanvasW  int
	CanvasH  int

	historyCap int
	onClose    func()
	closeOnce  bool
}

// Option modifies a Session during creation.
type Option func(*Session)

// WithBackgroundSource sets the file path or URL loaded behind the canvas.
func WithBackgroundSource(src string) Option { return func(s *Session) { s.Source = src } }

// WithOutput sets the file path used when saving.
func WithOutput(out string) Option { return func(s *Session) { s.Output = out } }

// WithTheme sets the color theme.
func WithTheme(th *theme.Theme) Option { return func(s *Session) { s.Theme = th } }

// WithNotifier sets the desktop notifier used after save and copy.
func WithNotifier(n *notify.Notifier) Option { return func(s *Session) { s.Notifier = n } }

// WithCanvasSize sets the editing canvas dimensions in pixels.
func WithCanvasSize(w, h int) Option {
	return func(s *Session) {
		if w > 0 {
			s.CanvasW = w
		}
		if h > 0 {
			s.CanvasH = h
		}
	}
}

// WithHistoryCapacity bounds the undo history. Unbounded by default.
func WithHistoryCapacity(n int) Option { return func(s *Session) { s.historyCap = n } }

// WithOnClose registers a callback invoked when the window closes.
func WithOnClose(fn func()) Option { return func(s *Session) { s.onClose = fn } }

// New creates a Session with the provided options.
func New(opts ...Option) *Session {
	s := &Session{
		Output:  "quadframe.png",
		Theme:   theme.Default(),
		CanvasW: 800,
		CanvasH: 600,
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Run executes the UI loop using shiny's driver. It blocks until the window
// closes.
func (s *Session) Run() { driver.Main(s.main) }

func (s *Session) notifyClose() {
	if s.closeOnce {
		return
	}
	s.closeOnce = true
	if s.onClose != nil {
		s.onClose()
	}
}

// command is one button in the bar above the canvas.
type command struct {
	label   string
	action  func()
	enabled func() bool
	rect    image.Rectangle
}

// outline draws a one pixel border inside r.
func outline(dst *image.RGBA, r image.Rectangle, col color.RGBA) {
	draw.Draw(dst, image.Rect(r.Min.X, r.Min.Y, r.Max.X, r.Min.Y+1), &image.Uniform{col}, image.Point{}, draw.Src)
	draw.Draw(dst, image.Rect(r.Min.X, r.Max.Y-1, r.Max.X, r.Max.Y), &image.Uniform{col}, image.Point{}, draw.Src)
	draw.Draw(dst, image.Rect(r.Min.X, r.Min.Y, r.Min.X+1, r.Max.Y), &image.Uniform{col}, image.Point{}, draw.Src)
	draw.Draw(dst, image.Rect(r.Max.X-1, r.Min.Y, r.Max.X, r.Max.Y), &image.Uniform{col}, image.Point{}, draw.Src)
}

func (s *Session) main(scr screen.Screen) {
	th := s.Theme
	var edOpts []editor.Option
	if s.historyCap > 0 {
		edOpts = append(edOpts, editor.WithHistoryCapacity(s.historyCap))
	}
	ed := editor.New(edOpts...)

	width := s.CanvasW
	height := s.CanvasH + barHeight
	w, err := scr.NewWindow(&screen.NewWindowOptions{Width: width, Height: height, Title: "QuadFrame"})
	if err != nil {
		log.Fatalf("new window: %v", err)
	}
	defer w.Release()
	defer s.notifyClose()

	var bg *image.RGBA
	loading := s.Source != ""
	if loading {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		background.Fetch(ctx, s.Source, func(r background.Result) {
			w.Send(backgroundEvent{r})
		})
	}

	var message string
	var messageUntil time.Time
	say := func(format string, args ...any) {
		message = fmt.Sprintf(format, args...)
		log.Print(message)
		messageUntil = time.Now().Add(2 * time.Second)
	}

	// compose renders the current scene at canvas size, without the bar.
	compose := func() *image.RGBA {
		out := image.NewRGBA(image.Rect(0, 0, s.CanvasW, s.CanvasH))
		var bgImg image.Image
		if bg != nil {
			bgImg = bg
		}
		if q, ok := ed.Shape(); ok {
			render.Compose(out, bgImg, &q, th)
		} else {
			render.Compose(out, bgImg, nil, th)
		}
		return out
	}

	save := func() {
		data, err := render.EncodePNG(compose())
		if err != nil {
			log.Printf("save: %v", err)
			return
		}
		if err := os.WriteFile(s.Output, data, 0o644); err != nil {
			log.Printf("save: %v", err)
			return
		}
		say("saved %s", s.Output)
		if s.Notifier != nil {
			s.Notifier.Save(s.Output)
		}
	}

	copyImage := func() {
		if err := clipboard.WriteImage(compose()); err != nil {
			log.Printf("copy: %v", err)
			return
		}
		say("image copied to clipboard")
		if s.Notifier != nil {
			s.Notifier.Copy(s.Output)
		}
	}

	done := false
	always := func() bool { return true }
	commands := []*command{
		{label: "^Z:undo", enabled: ed.CanUndo, action: func() {
			if ed.Undo() {
				w.Send(paint.Event{})
			}
		}},
		{label: "^Y:redo", enabled: ed.CanRedo, action: func() {
			if ed.Redo() {
				w.Send(paint.Event{})
			}
		}},
		{label: "^D:clear", enabled: always, action: func() {
			if ed.Clear() {
				w.Send(paint.Event{})
			}
		}},
		{label: "^S:save", enabled: always, action: func() { save(); w.Send(paint.Event{}) }},
		{label: "^C:copy", enabled: always, action: func() { copyImage(); w.Send(paint.Event{}) }},
		{label: "Q:quit", enabled: always, action: func() { done = true }},
	}
	hoverCommand := -1
	pressedCommand := -1

	drawBar := func(dst *image.RGBA) {
		draw.Draw(dst, image.Rect(0, 0, width, barHeight), &image.Uniform{th.BarBackground}, image.Point{}, draw.Src)
		meas := &font.Drawer{Face: basicfont.Face7x13}
		x := 4
		for i, c := range commands {
			tw := meas.MeasureString(c.label).Ceil()
			c.rect = image.Rect(x, 4, x+tw+12, barHeight-4)
			bgCol := th.ButtonBackground
			txtCol := th.ButtonText
			switch {
			case !c.enabled():
				bgCol = th.ButtonDisabled
				txtCol = th.ButtonTextDisabled
			case i == pressedCommand:
				bgCol = th.ButtonPress
			case i == hoverCommand:
				bgCol = th.ButtonHover
			}
			draw.Draw(dst, c.rect, &image.Uniform{bgCol}, image.Point{}, draw.Src)
			outline(dst, c.rect, th.ButtonBorder)
			d := &font.Drawer{Dst: dst, Src: image.NewUniform(txtCol), Face: basicfont.Face7x13,
				Dot: fixed.P(c.rect.Min.X+6, c.rect.Min.Y+13)}
			d.DrawString(c.label)
			x = c.rect.Max.X + 6
		}
	}

	drawLoading := func(dst *image.RGBA) {
		msg := "loading background..."
		d := &font.Drawer{Dst: dst, Src: image.NewUniform(th.LoadingText), Face: basicfont.Face7x13}
		tw := d.MeasureString(msg).Ceil()
		d.Dot = fixed.P((s.CanvasW-tw)/2, s.CanvasH/2)
		d.DrawString(msg)
	}

	for {
		if done {
			return
		}
		switch e := w.NextEvent().(type) {
		case lifecycle.Event:
			if e.To == lifecycle.StageDead {
				return
			}
		case backgroundEvent:
			loading = false
			if e.Err != nil {
				log.Printf("load background: %v", e.Err)
				say("background failed: %s", e.Source)
			} else {
				bg = e.Image
			}
			w.Send(paint.Event{})
		case size.Event:
			width = e.WidthPx
			height = e.HeightPx
			w.Send(paint.Event{})
		case paint.Event:
			b, err := scr.NewBuffer(image.Point{width, height})
			if err != nil {
				log.Printf("new buffer: %v", err)
				continue
			}
			frame := compose()
			if loading {
				drawLoading(frame)
			}
			draw.Draw(b.RGBA(), b.Bounds(), &image.Uniform{th.BarBackground}, image.Point{}, draw.Src)
			draw.Draw(b.RGBA(), image.Rect(0, barHeight, width, barHeight+s.CanvasH), frame, image.Point{}, draw.Src)
			drawBar(b.RGBA())
			if message != "" && time.Now().Before(messageUntil) {
				d := &font.Drawer{Dst: b.RGBA(), Src: image.NewUniform(th.ButtonText), Face: basicfont.Face7x13}
				tw := d.MeasureString(message).Ceil()
				box := image.Rect((width-tw)/2-8, height-28, (width+tw)/2+8, height-8)
				draw.Draw(b.RGBA(), box, &image.Uniform{th.BarBackground}, image.Point{}, draw.Src)
				d.Dot = fixed.P(box.Min.X+8, box.Min.Y+14)
				d.DrawString(message)
			}
			w.Upload(image.Point{}, b, b.Bounds())
			b.Release()
			w.Publish()
		case mouse.Event:
			// The bar captures events only while no gesture is active. A
			// drag that moves over or releases on the bar still reaches the
			// editor: only a pointer-up may end a gesture.
			st := ed.State()
			midGesture := st == editor.Drawing || st == editor.Dragging
			if int(e.Y) < barHeight && !midGesture {
				p := image.Point{int(e.X), int(e.Y)}
				hoverCommand = -1
				for i, c := range commands {
					if p.In(c.rect) {
						hoverCommand = i
						if e.Button == mouse.ButtonLeft && e.Direction == mouse.DirPress && c.enabled() {
							pressedCommand = i
							c.action()
						}
						break
					}
				}
				if e.Direction == mouse.DirRelease {
					pressedCommand = -1
				}
				w.Send(paint.Event{})
				continue
			}
			if hoverCommand != -1 || pressedCommand != -1 {
				hoverCommand = -1
				pressedCommand = -1
				w.Send(paint.Event{})
			}
			p := geom.Pt(float64(e.X), float64(e.Y)-barHeight)
			repaint := false
			switch {
			case e.Button == mouse.ButtonLeft && e.Direction == mouse.DirPress:
				repaint = ed.PointerDown(p)
			case e.Direction == mouse.DirNone:
				repaint = ed.PointerMove(p)
			case e.Button == mouse.ButtonLeft && e.Direction == mouse.DirRelease:
				repaint = ed.PointerUp(p)
			}
			if repaint {
				w.Send(paint.Event{})
			}
		case key.Event:
			if e.Direction != key.DirPress {
				continue
			}
			if e.Modifiers&key.ModControl != 0 {
				switch e.Rune {
				case 'z', 'Z':
					if ed.Undo() {
						w.Send(paint.Event{})
					}
				case 'y', 'Y':
					if ed.Redo() {
						w.Send(paint.Event{})
					}
				case 'd', 'D':
					if ed.Clear() {
						w.Send(paint.Event{})
					}
				case 's', 'S':
					save()
					w.Send(paint.Event{})
				case 'c', 'C':
					copyImage()
					w.Send(paint.Event{})
				}
				continue
			}
			switch e.Rune {
			case 'q', 'Q':
				return
			}
			if e.Code == key.CodeEscape {
				return
			}
		}
	}
}
