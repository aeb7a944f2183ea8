package loop

import (
	"io"
	"math"

	"schwarzschild/internal/draw"
	"schwarzschild/internal/sim"
)

// Segment counts for the circle shapes. The planet is the biggest on
// screen and gets the smoothest outline.
const (
	planetSegments    = 80
	bulletSegments    = 4
	asteroidSegments  = 15
	explosionSegments = 20
	pulseDots         = 48
	trajectoryStride  = 4
)

// Effects fainter than this would be invisible on a monochrome canvas,
// so they are dropped instead of dimmed.
const minVisibleAlpha = 0.05

// toCanvas maps a world coordinate (origin at the planet, y up) onto
// the logical canvas (origin top-left, y down).
func toCanvas(x, y float64) draw.Point {
	return draw.Point{X: x + viewWidth/2, Y: viewHeight/2 - y}
}

// renderFrame draws one complete frame for the world's current phase.
func renderFrame(world *sim.World, canvas *draw.Canvas, out io.Writer) error {
	draw.ClearScreen(out)
	canvas.Clear()

	switch world.Phase() {
	case sim.PhaseTitle:
		drawTitleScreen(out, canvas)
	case sim.PhasePlaying:
		drawEntities(world, canvas)
		if err := canvas.Render(out); err != nil {
			return err
		}
		drawPlayingHUD(world, out)
	case sim.PhaseGameOver:
		drawGameOverScreen(world, out, canvas)
	}
	return nil
}

// drawEntities draws every live entity onto the canvas.
func drawEntities(world *sim.World, canvas *draw.Canvas) {
	if world.Overlay() {
		points := world.Trajectory(600, 1.0/targetFPS)
		for i := 0; i < len(points); i += trajectoryStride {
			p := toCanvas(points[i].X, points[i].Y)
			canvas.Plot(p.X, p.Y)
		}
	}

	t := world.Tuning()
	world.Each(func(e sim.Entity) {
		switch e.Kind {
		case sim.KindShip:
			drawShip(canvas, e)
		case sim.KindPlanet:
			c := toCanvas(e.X, e.Y)
			canvas.DrawCircle(c.X, c.Y, e.Radius, planetSegments)
			canvas.DrawDottedCircle(c.X, c.Y, e.Radius+t.PulseSize*e.Pulse, pulseDots)
		case sim.KindBullet:
			c := toCanvas(e.X, e.Y)
			canvas.DrawCircle(c.X, c.Y, e.Radius, bulletSegments)
		case sim.KindAsteroid:
			c := toCanvas(e.X, e.Y)
			canvas.DrawIrregularCircle(e.Seed, c.X, c.Y, e.Radius-2, e.Radius+2, asteroidSegments)
		case sim.KindTrail:
			if e.Alpha*e.LifeFraction() < minVisibleAlpha {
				return
			}
			canvas.DrawLine(toCanvas(e.X, e.Y), toCanvas(e.EndX, e.EndY))
		case sim.KindExplosion:
			drawExplosion(canvas, e, t.ExplosionMaxRadius)
		}
	})
}

// drawShip draws the ship as a triangle pointing along its facing. The
// model points up, so the rotation is the heading minus a quarter turn.
func drawShip(canvas *draw.Canvas, e sim.Entity) {
	model := [3]draw.Point{
		{X: 0, Y: 5},
		{X: -5, Y: -5},
		{X: 5, Y: -5},
	}
	scale := e.Radius / 10
	rot := e.Angle - math.Pi/2
	sin, cos := math.Sincos(rot)

	var pts [3]draw.Point
	for i, m := range model {
		x := (m.X*cos - m.Y*sin) * scale
		y := (m.X*sin + m.Y*cos) * scale
		pts[i] = toCanvas(e.X+x, e.Y+y)
	}
	canvas.DrawPolygon(pts[:])
}

// drawExplosion draws an expanding ring that decelerates as it grows
// and drops out before it would linger at full size.
func drawExplosion(canvas *draw.Canvas, e sim.Entity, maxRadius float64) {
	if e.MaxLife <= 0 || e.LifeFraction() <= 0.2 {
		return
	}
	age := e.MaxLife - e.Life
	progress := age / e.MaxLife
	factor := 1 - (1-progress)*(1-progress)
	c := toCanvas(e.X, e.Y)
	canvas.DrawCircle(c.X, c.Y, factor*maxRadius, explosionSegments)
}
