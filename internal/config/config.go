package config

import (
	"fmt"
	"sort"
	"strings"

	"github.com/example/quadframe/internal/theme"
)

// Canvas holds the fixed canvas dimensions. They are external configuration:
// the editor never resizes its canvas at runtime.
type Canvas struct {
	Width  int
	Height int
}

// Notify holds notification settings.
type Notify struct {
	Save bool
	Copy bool
}

// Config holds the application configuration.
type Config struct {
	Theme  string
	Output string
	Canvas Canvas
	Notify Notify
	Themes map[string]*theme.Theme
}

// DefaultOutput is the fixed filename offered for exports when none is
// configured.
const DefaultOutput = "quadframe.png"

// Default canvas dimensions, used when the config file does not set them.
const (
	DefaultCanvasWidth  = 800
	DefaultCanvasHeight = 600
)

// New creates a new Config with defaults.
func New() *Config {
	return &Config{
		Theme:  "", // empty falls back to Env/Default
		Output: DefaultOutput,
		Canvas: Canvas{Width: DefaultCanvasWidth, Height: DefaultCanvasHeight},
		Notify: Notify{Save: false, Copy: false},
		Themes: make(map[string]*theme.Theme),
	}
}

// String implements fmt.Stringer and returns the configuration in RC format.
// The output parses back to an equivalent Config.
func (c *Config) String() string {
	var sb strings.Builder

	if c.Theme != "" {
		fmt.Fprintf(&sb, "theme = %s\n", c.Theme)
	}
	if c.Output != "" {
		fmt.Fprintf(&sb, "output = %s\n", c.Output)
	}
	sb.WriteString("\n")

	sb.WriteString("[canvas]\n")
	fmt.Fprintf(&sb, "width = %d\n", c.Canvas.Width)
	fmt.Fprintf(&sb, "height = %d\n", c.Canvas.Height)
	sb.WriteString("\n")

	sb.WriteString("[notify]\n")
	fmt.Fprintf(&sb, "save = %v\n", c.Notify.Save)
	fmt.Fprintf(&sb, "copy = %v\n", c.Notify.Copy)
	sb.WriteString("\n")

	var themeNames []string
	for name := range c.Themes {
		themeNames = append(themeNames, name)
	}
	sort.Strings(themeNames)

	for _, name := range themeNames {
		t := c.Themes[name]
		fmt.Fprintf(&sb, "[theme.%s]\n", name)
		fmt.Fprintf(&sb, "Name: %s\n", t.Name)
		fmt.Fprintf(&sb, "Stroke: %s\n", theme.FormatColor(t.Stroke))
		fmt.Fprintf(&sb, "Handle: %s\n", theme.FormatColor(t.Handle))
		fmt.Fprintf(&sb, "CanvasFill: %s\n", theme.FormatColor(t.CanvasFill))
		fmt.Fprintf(&sb, "LoadingText: %s\n", theme.FormatColor(t.LoadingText))
		fmt.Fprintf(&sb, "StrokeWidth: %d\n", t.StrokeWidth)
		fmt.Fprintf(&sb, "HandleRadius: %d\n", t.HandleRadius)
		fmt.Fprintf(&sb, "BarBackground: %s\n", theme.FormatColor(t.BarBackground))
		fmt.Fprintf(&sb, "ButtonBackground: %s\n", theme.FormatColor(t.ButtonBackground))
		fmt.Fprintf(&sb, "ButtonHover: %s\n", theme.FormatColor(t.ButtonHover))
		fmt.Fprintf(&sb, "ButtonPress: %s\n", theme.FormatColor(t.ButtonPress))
		fmt.Fprintf(&sb, "ButtonDisabled: %s\n", theme.FormatColor(t.ButtonDisabled))
		fmt.Fprintf(&sb, "ButtonText: %s\n", theme.FormatColor(t.ButtonText))
		fmt.Fprintf(&sb, "ButtonTextDisabled: %s\n", theme.FormatColor(t.ButtonTextDisabled))
		fmt.Fprintf(&sb, "ButtonBorder: %s\n", theme.FormatColor(t.ButtonBorder))
		sb.WriteString("\n")
	}

	return sb.String()
}
