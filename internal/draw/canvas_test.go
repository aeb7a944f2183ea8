package draw

import (
	"strings"
	"testing"
)

// 4x2 terminal mapped 1:1 onto a 4x4 sub-pixel logical space.
func testCanvas() *Canvas {
	return NewCanvas(4, 2, 4, 4)
}

func TestHalfBlockEncoding(t *testing.T) {
	c := testCanvas()
	c.setPixel(0, 0) // top half only
	c.setPixel(1, 1) // bottom half only
	c.setPixel(2, 0) // both halves
	c.setPixel(2, 1)

	var b strings.Builder
	if err := c.Render(&b); err != nil {
		t.Fatalf("render: %v", err)
	}
	out := b.String()
	row := out[strings.Index(out, "H")+1:]
	row = row[:strings.Index(row, "\033")]
	if row != "▀▄█ " {
		t.Fatalf("first row = %q, want %q", row, "▀▄█ ")
	}
}

func TestPlotOutsideBoundsIgnored(t *testing.T) {
	c := testCanvas()
	c.Plot(-10, -10)
	c.Plot(100, 100)
	for i, on := range c.pixels {
		if on {
			t.Fatalf("pixel %d set by out-of-bounds plot", i)
		}
	}
}

func TestResizeRescales(t *testing.T) {
	c := NewCanvas(10, 10, 100, 100)
	c.Plot(99, 99)
	c.Resize(20, 20)
	// Buffer was reallocated, nothing survives a resize.
	for i, on := range c.pixels {
		if on {
			t.Fatalf("pixel %d survived a resize", i)
		}
	}
	if c.TerminalWidth() != 20 || c.TerminalHeight() != 20 {
		t.Fatalf("size = %dx%d, want 20x20", c.TerminalWidth(), c.TerminalHeight())
	}
}

func TestIrregularCircleIsDeterministic(t *testing.T) {
	a := NewCanvas(40, 20, 80, 80)
	b := NewCanvas(40, 20, 80, 80)
	a.DrawIrregularCircle(42, 40, 40, 10, 14, 15)
	b.DrawIrregularCircle(42, 40, 40, 10, 14, 15)
	for i := range a.pixels {
		if a.pixels[i] != b.pixels[i] {
			t.Fatalf("same seed drew different outlines at pixel %d", i)
		}
	}
	c := NewCanvas(40, 20, 80, 80)
	c.DrawIrregularCircle(43, 40, 40, 10, 14, 15)
	same := true
	for i := range a.pixels {
		if a.pixels[i] != c.pixels[i] {
			same = false
			break
		}
	}
	if same {
		t.Fatalf("different seeds drew identical outlines")
	}
}
