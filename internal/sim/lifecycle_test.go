package sim

import (
	"math"
	"testing"
)

func TestLifetimeCountsDownMonotonically(t *testing.T) {
	w := testWorld()
	h := w.store.Add(Entity{Kind: KindBullet, Radius: 1, Mass: 10, Life: 1.0, MaxLife: 1.0})

	dt := 0.3
	for k := 1; k <= 3; k++ {
		w.expireLifetimes(dt)
		w.store.Flush()
		e := w.store.Get(h)
		if e == nil {
			t.Fatalf("bullet removed early at frame %d", k)
		}
		want := math.Max(0, 1.0-float64(k)*dt)
		if math.Abs(e.Life-want) > 1e-9 {
			t.Fatalf("frame %d: life = %f, want %f", k, e.Life, want)
		}
	}

	// Fourth frame drives the lifetime to the zero floor; the entity
	// must be gone the same frame, not the next.
	w.expireLifetimes(dt)
	w.store.Flush()
	if w.store.Get(h) != nil {
		t.Fatalf("bullet survived the frame its lifetime reached zero")
	}
}

func TestLifetimeNeverNegative(t *testing.T) {
	w := testWorld()
	w.store.Add(Entity{Kind: KindExplosion, Life: 0.1, MaxLife: 0.5})

	w.expireLifetimes(10.0) // dt far larger than the remaining life

	_, e, ok := w.store.First(KindExplosion)
	if ok && e.Life < 0 {
		t.Fatalf("lifetime went negative: %f", e.Life)
	}
	w.store.Flush()
	if w.store.Count(KindExplosion) != 0 {
		t.Fatalf("expired explosion still present after flush")
	}
}

func TestUntimedKindsAreNotExpired(t *testing.T) {
	w := testWorld()
	w.store.Add(Entity{Kind: KindShip, Radius: 10, Mass: 10})
	w.store.Add(Entity{Kind: KindPlanet, Radius: 30, Mass: 500})

	w.expireLifetimes(100.0)
	w.store.Flush()

	if w.store.Count(KindShip) != 1 || w.store.Count(KindPlanet) != 1 {
		t.Fatalf("untimed entities were expired")
	}
}

func TestTrailSegmentsExpire(t *testing.T) {
	w := testWorld()
	w.store.Add(Entity{Kind: KindTrail, Alpha: 0.2, Life: 3.0, MaxLife: 3.0})

	for i := 0; i < 181; i++ {
		w.expireLifetimes(1.0 / 60)
		w.store.Flush()
	}
	if w.store.Count(KindTrail) != 0 {
		t.Fatalf("trail segment outlived its lifetime")
	}
}
