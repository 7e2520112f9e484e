package theme

import (
	"image/color"
	"strings"
	"testing"
)

func TestParseOverridesFields(t *testing.T) {
	src := `
# comment lines are ignored
Name: Ocean
Stroke: #112233
Handle: #44556677
StrokeWidth: 4
HandleRadius: 9
`
	th, err := Parse(strings.NewReader(src))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if th.Name != "Ocean" {
		t.Errorf("name: got %q", th.Name)
	}
	if th.Stroke != (color.RGBA{0x11, 0x22, 0x33, 0xFF}) {
		t.Errorf("stroke: got %v", th.Stroke)
	}
	if th.Handle != (color.RGBA{0x44, 0x55, 0x66, 0x77}) {
		t.Errorf("handle: got %v", th.Handle)
	}
	if th.StrokeWidth != 4 || th.HandleRadius != 9 {
		t.Errorf("metrics: got %d/%d", th.StrokeWidth, th.HandleRadius)
	}
	// Missing keys keep the default values.
	if th.CanvasFill != Default().CanvasFill {
		t.Errorf("canvas fill should keep the default, got %v", th.CanvasFill)
	}
}

func TestParseUnknownKeyIgnored(t *testing.T) {
	th, err := Parse(strings.NewReader("FutureKnob: #000000\n"))
	if err != nil {
		t.Fatalf("unknown keys must be ignored, got %v", err)
	}
	if th.Stroke != Default().Stroke {
		t.Fatalf("unexpected mutation from unknown key")
	}
}

func TestParseRejectsBadColor(t *testing.T) {
	if _, err := Parse(strings.NewReader("Stroke: #zzzzzz\n")); err == nil {
		t.Fatalf("expected error for invalid color")
	}
	if _, err := Parse(strings.NewReader("StrokeWidth: -3\n")); err == nil {
		t.Fatalf("expected error for negative size")
	}
}

func TestColorRoundTrip(t *testing.T) {
	cases := []color.RGBA{
		{0, 0, 0, 255},
		{255, 255, 255, 255},
		{200, 30, 30, 255},
		{10, 20, 30, 40},
	}
	for _, c := range cases {
		parsed, err := ParseColor(FormatColor(c))
		if err != nil {
			t.Fatalf("round trip %v: %v", c, err)
		}
		if parsed != c {
			t.Errorf("round trip %v: got %v", c, parsed)
		}
	}
}

func TestLoadEmbeddedThemes(t *testing.T) {
	loader := NewLoader()
	for _, name := range []string{"default", "dark"} {
		th, err := loader.Load(name)
		if err != nil {
			t.Fatalf("load %s: %v", name, err)
		}
		if th == nil || th.StrokeWidth < 1 {
			t.Fatalf("theme %s incomplete: %+v", name, th)
		}
	}
}
