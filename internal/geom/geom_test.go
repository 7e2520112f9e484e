package geom

import "testing"

func TestDistance(t *testing.T) {
	if got := Distance(Pt(0, 0), Pt(3, 4)); got != 5 {
		t.Fatalf("expected 5, got %v", got)
	}
	if got := Distance(Pt(2, 2), Pt(2, 2)); got != 0 {
		t.Fatalf("expected 0, got %v", got)
	}
}

func TestCornersDeclarationOrder(t *testing.T) {
	want := [...]Corner{TopLeft, TopRight, BottomLeft, BottomRight}
	if Corners != want {
		t.Fatalf("corner order changed: %v", Corners)
	}
}

func TestCornerString(t *testing.T) {
	cases := map[Corner]string{
		TopLeft:     "top-left",
		TopRight:    "top-right",
		BottomLeft:  "bottom-left",
		BottomRight: "bottom-right",
	}
	for c, want := range cases {
		if got := c.String(); got != want {
			t.Errorf("corner %d: expected %q, got %q", int(c), want, got)
		}
	}
}
