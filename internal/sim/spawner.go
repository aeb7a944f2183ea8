package sim

import "math"

// runSpawner counts the spawn timer down (floored at zero) and, when
// it expires, injects one asteroid at the spawn distance along a
// random angle. The initial velocity is rotated off the spawn angle
// so the approach is tangential rather than radial, then the timer
// resets to a random delay in the configured band.
func (w *World) runSpawner(dt float64) {
	if w.spawnTimer > 0 {
		w.spawnTimer -= dt
		if w.spawnTimer < 0 {
			w.spawnTimer = 0
		}
	}
	if w.spawnTimer > 0 {
		return
	}

	t := w.tuning
	angle := w.rng.Float64() * 2 * math.Pi
	radius := t.AsteroidRadiusMin + w.rng.Float64()*(t.AsteroidRadiusMax-t.AsteroidRadiusMin)
	mass := t.AsteroidMassMin + w.rng.Float64()*(t.AsteroidMassMax-t.AsteroidMassMin)
	speed := t.AsteroidSpeedMin + w.rng.Float64()*(t.AsteroidSpeedMax-t.AsteroidSpeedMin)
	heading := angle + t.SpawnHeadingOffset

	w.store.Spawn(Entity{
		Kind:    KindAsteroid,
		X:       t.AsteroidSpawnDistance * math.Cos(angle),
		Y:       t.AsteroidSpawnDistance * math.Sin(angle),
		VX:      speed * math.Cos(heading),
		VY:      speed * math.Sin(heading),
		Radius:  radius,
		Mass:    mass,
		Life:    t.AsteroidLifetime,
		MaxLife: t.AsteroidLifetime,
		Seed:    w.rng.Uint64(),
	})

	w.spawnTimer = t.SpawnDelayMin + w.rng.Float64()*(t.SpawnDelayMax-t.SpawnDelayMin)
}
