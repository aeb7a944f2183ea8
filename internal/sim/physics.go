package sim

import "math"

// Bounds is the visible half-extent of the play field. Only the ship's
// space wrap uses it; everything else lives in unbounded world space.
type Bounds struct {
	HalfW, HalfH float64
}

// Vec is a 2D point in world space.
type Vec struct {
	X, Y float64
}

// applyGravity pulls every massive non-planet entity toward the
// planet. The squared distance is floored at 1 so the force stays
// bounded at near-zero separation.
func (w *World) applyGravity(dt float64) {
	_, planet, ok := w.store.First(KindPlanet)
	if !ok {
		return
	}
	w.store.Each(func(_ Handle, e *Entity) {
		if e.Kind == KindPlanet || e.Mass <= 0 {
			return
		}
		dx := planet.X - e.X
		dy := planet.Y - e.Y
		d := math.Hypot(dx, dy)
		if d == 0 {
			return
		}
		force := w.tuning.Gravity * planet.Mass * e.Mass / math.Max(1, d*d)
		e.VX += dx / d * force * dt
		e.VY += dy / d * force * dt
	})
}

// applyDrag slows asteroids in proportion to their proximity to the
// planet surface. Speed is floored at zero and the direction is
// preserved.
func (w *World) applyDrag(dt float64) {
	_, planet, ok := w.store.First(KindPlanet)
	if !ok {
		return
	}
	t := w.tuning
	w.store.EachKind(KindAsteroid, func(_ Handle, a *Entity) {
		surface := math.Max(1, math.Hypot(planet.X-a.X, planet.Y-a.Y)-planet.Radius)
		drag := dt * (t.DragConstant + a.Radius*t.DragRadiusFactor) / surface
		speed := math.Hypot(a.VX, a.VY)
		if speed <= drag {
			a.VX, a.VY = 0, 0
			return
		}
		scale := (speed - drag) / speed
		a.VX *= scale
		a.VY *= scale
	})
}

// controlShip applies rotation and thrust input to the ship. Angular
// velocity accelerates under input up to a clamp and decays toward
// zero without overshoot when no rotate key is held.
func (w *World) controlShip(in Input, dt float64) {
	_, ship, ok := w.store.First(KindShip)
	if !ok {
		return
	}
	t := w.tuning
	switch {
	case in.Left && !in.Right:
		ship.Spin = math.Min(ship.Spin+t.ShipSpinAccel*dt, t.ShipSpinMax)
	case in.Right && !in.Left:
		ship.Spin = math.Max(ship.Spin-t.ShipSpinAccel*dt, -t.ShipSpinMax)
	default:
		decay := t.ShipSpinDecel * dt
		switch {
		case ship.Spin > decay:
			ship.Spin -= decay
		case ship.Spin < -decay:
			ship.Spin += decay
		default:
			ship.Spin = 0
		}
	}
	ship.Angle += ship.Spin * dt

	if in.Thrust {
		ship.VX += math.Cos(ship.Angle) * t.ShipThrust * dt
		ship.VY += math.Sin(ship.Angle) * t.ShipThrust * dt
	}
}

// integratePositions advances every moving entity by its velocity.
// Runs strictly after all velocity updates for the frame so each
// entity moves under the same velocity snapshot timing.
func (w *World) integratePositions(dt float64) {
	w.store.Each(func(_ Handle, e *Entity) {
		if e.Kind == KindPlanet || e.Kind == KindTrail {
			return
		}
		e.X += e.VX * dt
		e.Y += e.VY * dt
	})
}

// wrapShip teleports the ship to the opposite edge when it leaves the
// visible half-extents, preserving the overshoot remainder.
func (w *World) wrapShip(b Bounds) {
	_, ship, ok := w.store.First(KindShip)
	if !ok {
		return
	}
	ship.X = wrapAxis(ship.X, b.HalfW)
	ship.Y = wrapAxis(ship.Y, b.HalfH)
}

func wrapAxis(v, half float64) float64 {
	if half <= 0 {
		return v
	}
	if v < -half {
		return half + math.Mod(v, half)
	}
	if v > half {
		return -half + math.Mod(v, half)
	}
	return v
}

// Trajectory forward-integrates the ship under planet gravity for the
// given number of steps without mutating the simulation, for the
// trajectory overlay. Returns nil when no ship or planet exists.
// Prediction stops early if the path enters the planet.
func (w *World) Trajectory(steps int, dt float64) []Vec {
	_, ship, shipOK := w.store.First(KindShip)
	_, planet, planetOK := w.store.First(KindPlanet)
	if !shipOK || !planetOK {
		return nil
	}
	x, y := ship.X, ship.Y
	vx, vy := ship.VX, ship.VY
	pts := make([]Vec, 0, steps)
	for i := 0; i < steps; i++ {
		dx := planet.X - x
		dy := planet.Y - y
		d := math.Hypot(dx, dy)
		if d > 0 {
			force := w.tuning.Gravity * planet.Mass * ship.Mass / math.Max(1, d*d)
			vx += dx / d * force * dt
			vy += dy / d * force * dt
		}
		x += vx * dt
		y += vy * dt
		pts = append(pts, Vec{X: x, Y: y})
		if math.Hypot(planet.X-x, planet.Y-y) < planet.Radius {
			break
		}
	}
	return pts
}
