// Package sim implements the gravity-well arcade simulation: the
// entity store, per-frame physics, collision and fracture resolution,
// the asteroid spawner, lifetime expiry, and the Title → Playing →
// GameOver state machine. It performs no I/O; input, clock, bounds and
// rendering are supplied by the caller each frame.
package sim

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"time"
)

// Phase is the game state machine's current state.
type Phase uint8

const (
	PhaseTitle Phase = iota
	PhasePlaying
	PhaseGameOver
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseTitle:
		return "title"
	case PhasePlaying:
		return "playing"
	case PhaseGameOver:
		return "gameover"
	default:
		return "unknown"
	}
}

// ErrBadTransition is returned when a phase transition that the state
// machine does not permit is requested. It signals a programming
// error, not a runtime condition.
var ErrBadTransition = errors.New("sim: invalid phase transition")

// next maps each phase to its single permitted successor.
var next = map[Phase]Phase{
	PhaseTitle:    PhasePlaying,
	PhasePlaying:  PhaseGameOver,
	PhaseGameOver: PhasePlaying,
}

// Input is the polled pressed-state for one frame. Confirm and
// Overlay are edge-detected inside the world.
type Input struct {
	Left    bool
	Right   bool
	Thrust  bool
	Fire    bool
	Confirm bool
	Overlay bool
}

// World is the complete simulation state: the entity store plus the
// per-session game aggregate. One frame is one call to Step; the
// caller owns the world exclusively and nothing mutates it
// concurrently.
type World struct {
	store  *Store
	tuning Tuning
	rng    *rand.Rand
	phase  Phase

	score       int
	elapsed     float64 // time spent in the current Playing session
	overElapsed float64 // time spent on the game-over screen
	overlay     bool    // trajectory overlay toggle
	grace       float64 // continuous time the loss condition has held
	spawnTimer  float64

	confirmHeld bool
	overlayHeld bool
}

// NewWorld creates a world in the Title phase.
func NewWorld(t Tuning) *World {
	return &World{
		store:  NewStore(),
		tuning: t,
		rng:    rand.New(rand.NewSource(time.Now().UnixNano())),
		phase:  PhaseTitle,
	}
}

// Phase returns the current state machine phase.
func (w *World) Phase() Phase { return w.phase }

// Score returns the current session score.
func (w *World) Score() int { return w.score }

// Elapsed returns the time spent in the current Playing session.
func (w *World) Elapsed() float64 { return w.elapsed }

// GameOverElapsed returns the time spent on the game-over screen.
func (w *World) GameOverElapsed() float64 { return w.overElapsed }

// Overlay reports whether the trajectory overlay is enabled.
func (w *World) Overlay() bool { return w.overlay }

// Tuning returns the world's parameters.
func (w *World) Tuning() Tuning { return w.tuning }

// Each calls fn with a copy of every live entity, for rendering.
func (w *World) Each(fn func(Entity)) {
	w.store.Each(func(_ Handle, e *Entity) { fn(*e) })
}

// Planet returns a copy of the planet entity, if one exists.
func (w *World) Planet() (Entity, bool) {
	_, p, ok := w.store.First(KindPlanet)
	if !ok {
		return Entity{}, false
	}
	return *p, true
}

// Ship returns a copy of the ship entity, if one exists.
func (w *World) Ship() (Entity, bool) {
	_, s, ok := w.store.First(KindShip)
	if !ok {
		return Entity{}, false
	}
	return *s, true
}

// Step advances the simulation by dt seconds of wall time. dt must be
// positive; non-positive values are ignored.
func (w *World) Step(in Input, b Bounds, dt float64) {
	if dt <= 0 {
		return
	}

	confirm := in.Confirm && !w.confirmHeld
	w.confirmHeld = in.Confirm
	toggle := in.Overlay && !w.overlayHeld
	w.overlayHeld = in.Overlay

	switch w.phase {
	case PhaseTitle:
		if confirm {
			_ = w.transition(PhasePlaying)
		}
	case PhasePlaying:
		if toggle {
			w.overlay = !w.overlay
		}
		w.stepPlaying(in, b, dt)
	case PhaseGameOver:
		w.overElapsed += dt
		if confirm {
			_ = w.transition(PhasePlaying)
		}
	}
}

// stepPlaying runs one full sequential pass of all Playing systems.
// All velocity updates complete before positions integrate, collision
// resolution sees post-integration positions, and lifetime expiry runs
// after collision-driven destruction. Structural mutations land at the
// single flush before the loss check.
func (w *World) stepPlaying(in Input, b Bounds, dt float64) {
	w.elapsed += dt

	w.controlShip(in, dt)
	w.controlFire(in, dt)
	w.applyGravity(dt)
	w.applyDrag(dt)
	w.integratePositions(dt)
	w.wrapShip(b)
	w.emitTrail()
	w.resolvePlanetCollisions()
	w.resolveBulletCollisions()
	w.advanceCollapse(dt)
	w.runSpawner(dt)
	w.expireLifetimes(dt)
	w.advancePulse(dt)
	w.store.Flush()
	w.evaluateLoss(dt)
}

// transition moves the state machine to the requested phase, running
// the exit hook of the old phase and the enter hook of the new one
// exactly once. Disallowed transitions are rejected.
func (w *World) transition(to Phase) error {
	if next[w.phase] != to {
		return fmt.Errorf("%w: %v -> %v", ErrBadTransition, w.phase, to)
	}
	w.exitPhase(w.phase)
	w.phase = to
	w.enterPhase(to)
	return nil
}

func (w *World) exitPhase(p Phase) {
	if p == PhasePlaying {
		// Teardown is total: every entity goes, queued spawns included.
		w.store.Clear()
	}
}

func (w *World) enterPhase(p Phase) {
	switch p {
	case PhasePlaying:
		t := w.tuning
		w.score = 0
		w.elapsed = 0
		w.grace = 0
		w.overElapsed = 0
		w.spawnTimer = t.SpawnInitialDelay
		w.store.Add(Entity{
			Kind:   KindShip,
			Y:      t.ShipStartAltitude,
			LastY:  t.ShipStartAltitude,
			Angle:  math.Pi / 2,
			Radius: t.ShipRadius,
			Mass:   t.ShipMass,
		})
		w.store.Add(Entity{
			Kind:   KindPlanet,
			Radius: t.PlanetStartRadius,
			Mass:   t.PlanetStartMass,
		})
	case PhaseGameOver:
		w.overElapsed = 0
	}
}

// controlFire counts the ship's fire delay down (floored at zero) and
// spawns a bullet at the nose while the fire key is held and the delay
// has expired. Bullet velocity is muzzle velocity along the ship's
// facing; it does not inherit the ship's motion.
func (w *World) controlFire(in Input, dt float64) {
	_, ship, ok := w.store.First(KindShip)
	if !ok {
		return
	}
	t := w.tuning
	if ship.FireDelay > 0 {
		ship.FireDelay -= dt
		if ship.FireDelay < 0 {
			ship.FireDelay = 0
		}
	}
	if ship.FireDelay > 0 || !in.Fire {
		return
	}
	w.store.Spawn(Entity{
		Kind:    KindBullet,
		X:       ship.X + math.Cos(ship.Angle)*ship.Radius,
		Y:       ship.Y + math.Sin(ship.Angle)*ship.Radius,
		VX:      math.Cos(ship.Angle) * t.BulletSpeed,
		VY:      math.Sin(ship.Angle) * t.BulletSpeed,
		Radius:  t.BulletRadius,
		Mass:    t.BulletMass,
		Life:    t.BulletLifetime,
		MaxLife: t.BulletLifetime,
	})
	ship.FireDelay = t.ShipFireDelay
}

// emitTrail records one trail segment per frame covering the ship's
// displacement since the previous frame.
func (w *World) emitTrail() {
	_, ship, ok := w.store.First(KindShip)
	if !ok {
		return
	}
	t := w.tuning
	w.store.Spawn(Entity{
		Kind:    KindTrail,
		X:       ship.X,
		Y:       ship.Y,
		EndX:    ship.LastX,
		EndY:    ship.LastY,
		Alpha:   t.TrailAlpha,
		Life:    t.TrailLifetime,
		MaxLife: t.TrailLifetime,
	})
	ship.LastX, ship.LastY = ship.X, ship.Y
}

// advancePulse drives the planet's cosmetic gravity ring phase inward,
// faster the heavier the planet, wrapping back out when it passes zero.
func (w *World) advancePulse(dt float64) {
	_, planet, ok := w.store.First(KindPlanet)
	if !ok {
		return
	}
	t := w.tuning
	shrink := dt * t.PulseRate * math.Pow(t.PulseMassFactor, planet.Mass-t.PlanetStartMass)
	if planet.Pulse > shrink {
		planet.Pulse -= shrink
	} else {
		planet.Pulse = 1 - math.Mod(shrink, 1)
	}
}

// evaluateLoss accumulates the grace timer while the loss condition
// (ship gone, or planet collapsing) holds and fires the GameOver
// transition once it reaches the grace duration. The timer resets
// whenever the condition stops holding: the condition must hold
// continuously.
func (w *World) evaluateLoss(dt float64) {
	_, _, shipAlive := w.store.First(KindShip)
	_, planet, planetOK := w.store.First(KindPlanet)
	losing := !shipAlive || (planetOK && planet.Collapsing)
	if !losing {
		w.grace = 0
		return
	}
	w.grace += dt
	if w.grace >= w.tuning.GraceDuration {
		_ = w.transition(PhaseGameOver)
	}
}
