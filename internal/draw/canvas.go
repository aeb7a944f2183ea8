// Package draw renders line shapes onto a monochrome terminal canvas
// with 2x vertical resolution using half-block characters. Shapes are
// drawn in a logical coordinate space that scales to the actual
// terminal size.
package draw

import (
	"fmt"
	"io"
	"math"
	"math/rand"
	"strings"
)

// Point is a position in logical canvas coordinates (origin top-left,
// y down).
type Point struct {
	X, Y float64
}

// Canvas is a drawing buffer of on/off sub-pixels, two per terminal row.
type Canvas struct {
	termWidth      int
	termHeight     int
	subPixelHeight int    // termHeight * 2
	pixels         []bool // [y*termWidth + x]

	logicalWidth  float64
	logicalHeight float64
	scaleX        float64
	scaleY        float64

	renderBuf strings.Builder // reused across frames
}

// NewCanvas creates a canvas that scales the logical coordinate space
// onto the given terminal dimensions.
func NewCanvas(termWidth, termHeight int, logicalWidth, logicalHeight float64) *Canvas {
	c := &Canvas{logicalWidth: logicalWidth, logicalHeight: logicalHeight}
	c.Resize(termWidth, termHeight)
	return c
}

// Resize updates the canvas for new terminal dimensions, keeping the
// logical size.
func (c *Canvas) Resize(termWidth, termHeight int) {
	if termWidth < 1 {
		termWidth = 1
	}
	if termHeight < 1 {
		termHeight = 1
	}
	subPixelHeight := termHeight * 2
	if termWidth != c.termWidth || termHeight != c.termHeight {
		c.termWidth = termWidth
		c.termHeight = termHeight
		c.subPixelHeight = subPixelHeight
		c.pixels = make([]bool, subPixelHeight*termWidth)
	}
	c.scaleX = float64(termWidth) / c.logicalWidth
	c.scaleY = float64(subPixelHeight) / c.logicalHeight
}

// TerminalWidth returns the terminal column count the canvas renders to.
func (c *Canvas) TerminalWidth() int { return c.termWidth }

// TerminalHeight returns the terminal row count the canvas renders to.
func (c *Canvas) TerminalHeight() int { return c.termHeight }

// Clear resets all pixels.
func (c *Canvas) Clear() {
	clear(c.pixels)
}

func (c *Canvas) setPixel(x, y int) {
	if x >= 0 && x < c.termWidth && y >= 0 && y < c.subPixelHeight {
		c.pixels[y*c.termWidth+x] = true
	}
}

// Plot sets the pixel at a logical coordinate.
func (c *Canvas) Plot(x, y float64) {
	c.setPixel(int(math.Round(x*c.scaleX)), int(math.Round(y*c.scaleY)))
}

// DrawLine draws a line between two logical points using Bresenham's
// algorithm in pixel space.
func (c *Canvas) DrawLine(p1, p2 Point) {
	x1 := int(math.Round(p1.X * c.scaleX))
	y1 := int(math.Round(p1.Y * c.scaleY))
	x2 := int(math.Round(p2.X * c.scaleX))
	y2 := int(math.Round(p2.Y * c.scaleY))

	dx := abs(x2 - x1)
	dy := abs(y2 - y1)
	sx := 1
	if x1 > x2 {
		sx = -1
	}
	sy := 1
	if y1 > y2 {
		sy = -1
	}
	err := dx - dy
	for {
		c.setPixel(x1, y1)
		if x1 == x2 && y1 == y2 {
			return
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x1 += sx
		}
		if e2 < dx {
			err += dx
			y1 += sy
		}
	}
}

// DrawPolygon draws the outline of a polygon.
func (c *Canvas) DrawPolygon(points []Point) {
	n := len(points)
	if n < 2 {
		return
	}
	for i := 0; i < n; i++ {
		c.DrawLine(points[i], points[(i+1)%n])
	}
}

// DrawCircle draws a circle as a closed polyline with the given number
// of segments.
func (c *Canvas) DrawCircle(cx, cy, radius float64, segments int) {
	if segments < 3 {
		segments = 3
	}
	prev := Point{X: cx + radius, Y: cy}
	for i := 1; i <= segments; i++ {
		angle := 2 * math.Pi * float64(i) / float64(segments)
		p := Point{X: cx + radius*math.Cos(angle), Y: cy + radius*math.Sin(angle)}
		c.DrawLine(prev, p)
		prev = p
	}
}

// DrawDottedCircle plots isolated points around a circle, for faint
// rings the monochrome canvas cannot dim.
func (c *Canvas) DrawDottedCircle(cx, cy, radius float64, dots int) {
	for i := 0; i < dots; i++ {
		angle := 2 * math.Pi * float64(i) / float64(dots)
		c.Plot(cx+radius*math.Cos(angle), cy+radius*math.Sin(angle))
	}
}

// DrawIrregularCircle draws a closed polyline whose per-vertex radius
// varies within [radiusMin, radiusMax], deterministically from the
// seed. The same seed always produces the same outline.
func (c *Canvas) DrawIrregularCircle(seed uint64, cx, cy, radiusMin, radiusMax float64, segments int) {
	if segments < 3 {
		segments = 3
	}
	rng := rand.New(rand.NewSource(int64(seed)))
	span := radiusMax - radiusMin
	first := Point{X: cx + radiusMin + rng.Float64()*span, Y: cy}
	prev := first
	for i := 1; i < segments; i++ {
		r := radiusMin + rng.Float64()*span
		angle := 2 * math.Pi * float64(i) / float64(segments)
		p := Point{X: cx + r*math.Cos(angle), Y: cy + r*math.Sin(angle)}
		c.DrawLine(prev, p)
		prev = p
	}
	c.DrawLine(prev, first)
}

// Render writes the canvas to w as rows of half-block characters, one
// cursor-positioned line per terminal row.
func (c *Canvas) Render(w io.Writer) error {
	b := &c.renderBuf
	b.Reset()
	for row := 0; row < c.termHeight; row++ {
		fmt.Fprintf(b, "\033[%d;1H", row+1)
		for col := 0; col < c.termWidth; col++ {
			top := c.pixels[(row*2)*c.termWidth+col]
			bottom := c.pixels[(row*2+1)*c.termWidth+col]
			switch {
			case top && bottom:
				b.WriteRune('█')
			case top:
				b.WriteRune('▀')
			case bottom:
				b.WriteRune('▄')
			default:
				b.WriteByte(' ')
			}
		}
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
