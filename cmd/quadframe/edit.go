package main

import (
	"flag"
	"fmt"

	"github.com/example/quadframe/internal/config"
	"github.com/example/quadframe/internal/ui"
)

// editCmd opens the interactive editing window.
type editCmd struct {
	file         string
	url          string
	output       string
	width        int
	height       int
	historyLimit int
	*root
	fs *flag.FlagSet
}

func (e *editCmd) FlagSet() *flag.FlagSet {
	return e.fs
}

func parseEditCmd(args []string, r *root) (*editCmd, error) {
	fs := flag.NewFlagSet("edit", flag.ExitOnError)
	e := &editCmd{root: r, fs: fs}
	fs.Usage = usageFunc(e)

	defOut := config.DefaultOutput
	defW, defH := config.DefaultCanvasWidth, config.DefaultCanvasHeight
	if r != nil && r.config != nil {
		if r.config.Output != "" {
			defOut = r.config.Output
		}
		if r.config.Canvas.Width > 0 {
			defW = r.config.Canvas.Width
		}
		if r.config.Canvas.Height > 0 {
			defH = r.config.Canvas.Height
		}
	}

	fs.StringVar(&e.file, "file", "", "background image file")
	fs.StringVar(&e.url, "url", "", "background image URL")
	fs.StringVar(&e.output, "output", defOut, "output file path used when saving")
	fs.IntVar(&e.width, "width", defW, "canvas width in pixels")
	fs.IntVar(&e.height, "height", defH, "canvas height in pixels")
	fs.IntVar(&e.historyLimit, "history-limit", 0, "maximum undo depth (0 = unlimited)")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if e.file != "" && e.url != "" {
		return nil, fmt.Errorf("-file and -url are mutually exclusive")
	}
	if e.width <= 0 || e.height <= 0 {
		return nil, fmt.Errorf("canvas dimensions must be positive")
	}
	if e.historyLimit < 0 {
		return nil, fmt.Errorf("history-limit cannot be negative")
	}
	return e, nil
}

func (e *editCmd) Run() error {
	src := e.file
	if e.url != "" {
		src = e.url
	}
	opts := []ui.Option{
		ui.WithBackgroundSource(src),
		ui.WithOutput(e.output),
		ui.WithCanvasSize(e.width, e.height),
	}
	if e.historyLimit > 0 {
		opts = append(opts, ui.WithHistoryCapacity(e.historyLimit))
	}
	if e.root != nil {
		if e.root.activeTheme != nil {
			opts = append(opts, ui.WithTheme(e.root.activeTheme))
		}
		if e.root.notifier != nil {
			opts = append(opts, ui.WithNotifier(e.root.notifier))
		}
	}
	sess := ui.New(opts...)
	sess.Run()
	return nil
}
