package sim

import "math"

// overlap is the circle-circle collision test used by both passes.
func overlap(ax, ay, ar, bx, by, br float64) bool {
	return math.Hypot(bx-ax, by-ay) < ar+br
}

// resolvePlanetCollisions destroys every massive entity overlapping
// the planet. Non-bullets grow the planet; the growth is accumulated
// across the scan and applied once, and a stable planet that crosses
// the mass threshold starts collapsing.
func (w *World) resolvePlanetCollisions() {
	_, planet, ok := w.store.First(KindPlanet)
	if !ok {
		return
	}
	t := w.tuning

	var dR, dM float64
	w.store.Each(func(h Handle, e *Entity) {
		if e.Kind == KindPlanet || e.Mass <= 0 || e.Radius <= 0 {
			return
		}
		if !overlap(planet.X, planet.Y, planet.Radius, e.X, e.Y, e.Radius) {
			return
		}
		if w.store.Kill(h) && e.Kind != KindBullet {
			dR += e.Radius * t.RadiusConsumeScale
			dM += e.Mass * t.MassConsumeScale
		}
	})

	planet.Radius += dR
	planet.Mass += dM

	if !planet.Collapsing && planet.Mass >= t.CollapseMassThreshold {
		planet.Collapsing = true
		planet.CollapseR0 = planet.Radius
		planet.CollapseM0 = planet.Mass
		planet.CollapseT = 0
	}
}

// resolveBulletCollisions destroys every bullet/asteroid pair whose
// circles overlap. The asteroid's destruction, its explosion, the
// score award and any fracture children all happen in this one pass;
// a killed asteroid drops out of consideration immediately, so it can
// be struck by at most one bullet per frame.
func (w *World) resolveBulletCollisions() {
	type ref struct {
		h Handle
		e *Entity
	}
	var asteroids, bullets []ref
	w.store.EachKind(KindAsteroid, func(h Handle, e *Entity) {
		asteroids = append(asteroids, ref{h, e})
	})
	w.store.EachKind(KindBullet, func(h Handle, e *Entity) {
		bullets = append(bullets, ref{h, e})
	})

	for _, a := range asteroids {
		for _, b := range bullets {
			if !w.store.Alive(b.h) {
				continue
			}
			if !overlap(a.e.X, a.e.Y, a.e.Radius, b.e.X, b.e.Y, b.e.Radius) {
				continue
			}
			if !w.store.Kill(a.h) {
				break
			}
			w.store.Kill(b.h)
			w.spawnExplosion(a.e)
			w.score += w.scoreFor(a.e.Radius)
			if a.e.Radius > w.tuning.FractureMinRadius {
				w.fracture(a.e)
			}
			break
		}
	}
}

// scoreFor maps an asteroid radius to points: small rocks are worth
// the most. Normalization over the configured radius band is
// extrapolated, not clamped, for out-of-band radii.
func (w *World) scoreFor(radius float64) int {
	t := w.tuning
	norm := (radius - t.AsteroidRadiusMin) / (t.AsteroidRadiusMax - t.AsteroidRadiusMin)
	return t.ScoreMin + int((1-norm)*float64(t.ScoreMax-t.ScoreMin))
}

// spawnExplosion queues an explosion at the asteroid's last position,
// inheriting its velocity.
func (w *World) spawnExplosion(a *Entity) {
	t := w.tuning
	w.store.Spawn(Entity{
		Kind:    KindExplosion,
		X:       a.X,
		Y:       a.Y,
		VX:      a.VX,
		VY:      a.VY,
		Life:    t.ExplosionLifetime,
		MaxLife: t.ExplosionLifetime,
	})
}

// fracture queues the parent asteroid's children: evenly spaced in
// angle from a random offset, each offset from the parent center by
// its own radius, inheriting the parent velocity plus a random kick
// along its spawn angle.
func (w *World) fracture(parent *Entity) {
	t := w.tuning
	radius := parent.Radius * t.FractureRadiusFactor
	mass := parent.Mass * t.FractureMassFactor
	section := 2 * math.Pi / float64(t.FractureCount)
	angle := w.rng.Float64() * 2 * math.Pi
	for i := 0; i < t.FractureCount; i++ {
		kick := t.FractureSpeedMin + w.rng.Float64()*(t.FractureSpeedMax-t.FractureSpeedMin)
		w.store.Spawn(Entity{
			Kind:    KindAsteroid,
			X:       parent.X + radius*math.Cos(angle),
			Y:       parent.Y + radius*math.Sin(angle),
			VX:      parent.VX + math.Cos(angle)*kick,
			VY:      parent.VY + math.Sin(angle)*kick,
			Radius:  radius,
			Mass:    mass,
			Life:    t.AsteroidLifetime,
			MaxLife: t.AsteroidLifetime,
			Seed:    w.rng.Uint64(),
		})
		angle += section
	}
}

// advanceCollapse runs the deterministic collapse curve while the
// planet is collapsing: radius holds near its initial value and then
// implodes on an eighth-power ease, mass grows linearly. Both reach
// their endpoints exactly at the collapse duration.
func (w *World) advanceCollapse(dt float64) {
	_, planet, ok := w.store.First(KindPlanet)
	if !ok || !planet.Collapsing {
		return
	}
	t := w.tuning
	planet.CollapseT += dt
	f := planet.CollapseT / t.CollapseDuration
	if f > 1 {
		f = 1
	}
	planet.Radius = t.CollapseMinRadius + (1-math.Pow(f, 8))*(planet.CollapseR0-t.CollapseMinRadius)
	planet.Mass = planet.CollapseM0 + f*(t.CollapseFinalMass-planet.CollapseM0)
}
