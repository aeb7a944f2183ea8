package sim

import (
	"math"
	"math/rand"
	"testing"
)

func testWorld() *World {
	w := NewWorld(DefaultTuning())
	w.rng = rand.New(rand.NewSource(1))
	return w
}

func TestGravityForceClampedNearZeroDistance(t *testing.T) {
	w := testWorld()
	w.store.Add(Entity{Kind: KindPlanet, Radius: 30, Mass: 500})
	w.store.Add(Entity{Kind: KindBullet, X: 0.001, Radius: 1, Mass: 10})

	w.applyGravity(1.0)

	_, b, _ := w.store.First(KindBullet)
	limit := w.tuning.Gravity * 500 * 10 // max force with the d² floor at 1
	speed := math.Hypot(b.VX, b.VY)
	if speed > limit+1e-9 {
		t.Fatalf("gravity blew past the clamp: dv = %f, limit = %f", speed, limit)
	}
	if speed == 0 {
		t.Fatalf("expected a nonzero pull at close range")
	}
}

func TestGravityPullsTowardPlanet(t *testing.T) {
	w := testWorld()
	w.store.Add(Entity{Kind: KindPlanet, Mass: 500, Radius: 30})
	w.store.Add(Entity{Kind: KindAsteroid, X: 200, Y: 0, Radius: 10, Mass: 10})

	w.applyGravity(1.0 / 60)

	_, a, _ := w.store.First(KindAsteroid)
	if a.VX >= 0 {
		t.Fatalf("asteroid at +x should accelerate toward origin, VX = %f", a.VX)
	}
	if a.VY != 0 {
		t.Fatalf("pull should be purely radial here, VY = %f", a.VY)
	}
}

func TestMasslessEntitiesIgnoreGravity(t *testing.T) {
	w := testWorld()
	w.store.Add(Entity{Kind: KindPlanet, Mass: 500, Radius: 30})
	w.store.Add(Entity{Kind: KindExplosion, X: 100, VX: 5})

	w.applyGravity(1.0)

	_, e, _ := w.store.First(KindExplosion)
	if e.VX != 5 || e.VY != 0 {
		t.Fatalf("explosion velocity changed under gravity: (%f, %f)", e.VX, e.VY)
	}
}

func TestDragFloorsSpeedAtZero(t *testing.T) {
	w := testWorld()
	w.store.Add(Entity{Kind: KindPlanet, Mass: 500, Radius: 30})
	// Slow asteroid right next to the surface: drag exceeds its speed.
	w.store.Add(Entity{Kind: KindAsteroid, X: 35, VX: 0.5, VY: 0.2, Radius: 10, Mass: 10})

	w.applyDrag(1.0 / 60)

	_, a, _ := w.store.First(KindAsteroid)
	if a.VX != 0 || a.VY != 0 {
		t.Fatalf("speed should floor at zero, got (%f, %f)", a.VX, a.VY)
	}
}

func TestDragPreservesDirection(t *testing.T) {
	w := testWorld()
	w.store.Add(Entity{Kind: KindPlanet, Mass: 500, Radius: 30})
	w.store.Add(Entity{Kind: KindAsteroid, X: 400, VX: 30, VY: 40, Radius: 10, Mass: 10})

	w.applyDrag(1.0 / 60)

	_, a, _ := w.store.First(KindAsteroid)
	speed := math.Hypot(a.VX, a.VY)
	if speed >= 50 {
		t.Fatalf("drag did not reduce speed: %f", speed)
	}
	if speed == 0 {
		t.Fatalf("drag should not zero a fast asteroid far from the planet")
	}
	// Direction unchanged: 3-4-5 ratio survives the rescale.
	if math.Abs(a.VX/a.VY-0.75) > 1e-9 {
		t.Fatalf("direction changed: (%f, %f)", a.VX, a.VY)
	}
}

func TestShipWrapPreservesOvershoot(t *testing.T) {
	w := testWorld()
	w.store.Add(Entity{Kind: KindShip, X: 650, Y: -370, Radius: 10, Mass: 10})

	w.wrapShip(Bounds{HalfW: 640, HalfH: 360})

	_, s, _ := w.store.First(KindShip)
	if math.Abs(s.X-(-630)) > 1e-9 {
		t.Fatalf("x wrap: got %f, want -630", s.X)
	}
	if math.Abs(s.Y-350) > 1e-9 {
		t.Fatalf("y wrap: got %f, want 350", s.Y)
	}
}

func TestShipInsideBoundsNotWrapped(t *testing.T) {
	w := testWorld()
	w.store.Add(Entity{Kind: KindShip, X: 100, Y: -200, Radius: 10, Mass: 10})

	w.wrapShip(Bounds{HalfW: 640, HalfH: 360})

	_, s, _ := w.store.First(KindShip)
	if s.X != 100 || s.Y != -200 {
		t.Fatalf("in-bounds ship moved to (%f, %f)", s.X, s.Y)
	}
}

func TestSpinClampsAtMax(t *testing.T) {
	w := testWorld()
	w.store.Add(Entity{Kind: KindShip, Radius: 10, Mass: 10})

	in := Input{Left: true}
	for i := 0; i < 600; i++ {
		w.controlShip(in, 1.0/60)
	}

	_, s, _ := w.store.First(KindShip)
	if math.Abs(s.Spin-w.tuning.ShipSpinMax) > 1e-9 {
		t.Fatalf("spin = %f, want clamp at %f", s.Spin, w.tuning.ShipSpinMax)
	}
}

func TestSpinDecaysToZeroWithoutOvershoot(t *testing.T) {
	w := testWorld()
	w.store.Add(Entity{Kind: KindShip, Spin: 2.0, Radius: 10, Mass: 10})

	prev := 2.0
	for i := 0; i < 600; i++ {
		w.controlShip(Input{}, 1.0/60)
		_, s, _ := w.store.First(KindShip)
		if s.Spin < 0 {
			t.Fatalf("spin overshot past zero: %f", s.Spin)
		}
		if s.Spin > prev {
			t.Fatalf("spin increased during decay: %f -> %f", prev, s.Spin)
		}
		prev = s.Spin
	}
	if prev != 0 {
		t.Fatalf("spin should reach exactly zero, got %f", prev)
	}
}

func TestThrustActsAlongFacing(t *testing.T) {
	w := testWorld()
	w.store.Add(Entity{Kind: KindShip, Angle: math.Pi / 2, Radius: 10, Mass: 10})

	w.controlShip(Input{Thrust: true}, 1.0/60)

	_, s, _ := w.store.First(KindShip)
	if s.VY <= 0 {
		t.Fatalf("thrust while facing up should add +y velocity, VY = %f", s.VY)
	}
	if math.Abs(s.VX) > 1e-9 {
		t.Fatalf("no sideways thrust expected, VX = %f", s.VX)
	}
}

func TestIntegrationUsesVelocitySnapshot(t *testing.T) {
	w := testWorld()
	w.store.Add(Entity{Kind: KindBullet, X: 10, VX: 60, Radius: 1, Mass: 10})

	w.integratePositions(1.0 / 60)

	_, b, _ := w.store.First(KindBullet)
	if math.Abs(b.X-11) > 1e-9 {
		t.Fatalf("x = %f, want 11", b.X)
	}
}

func TestTrajectoryDoesNotMutateAndStopsAtPlanet(t *testing.T) {
	w := testWorld()
	w.store.Add(Entity{Kind: KindPlanet, Mass: 500, Radius: 30})
	w.store.Add(Entity{Kind: KindShip, Y: 100, Radius: 10, Mass: 10})

	pts := w.Trajectory(2000, 1.0/30)
	if len(pts) == 0 {
		t.Fatalf("expected trajectory points")
	}

	_, s, _ := w.store.First(KindShip)
	if s.X != 0 || s.Y != 100 || s.VX != 0 || s.VY != 0 {
		t.Fatalf("trajectory mutated the ship: %+v", s)
	}

	// A ship dropped straight at the planet ends inside it.
	last := pts[len(pts)-1]
	if math.Hypot(last.X, last.Y) >= 100 {
		t.Fatalf("prediction never approached the planet: %+v", last)
	}
}

func TestTrajectoryNilWithoutShip(t *testing.T) {
	w := testWorld()
	w.store.Add(Entity{Kind: KindPlanet, Mass: 500, Radius: 30})
	if pts := w.Trajectory(10, 1.0/30); pts != nil {
		t.Fatalf("expected nil trajectory without a ship")
	}
}
