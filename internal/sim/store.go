package sim

// Kind tags an entity record with its simulation role.
type Kind uint8

const (
	KindShip Kind = iota + 1
	KindPlanet
	KindBullet
	KindAsteroid
	KindTrail
	KindExplosion
)

// String returns a short name for the kind.
func (k Kind) String() string {
	switch k {
	case KindShip:
		return "ship"
	case KindPlanet:
		return "planet"
	case KindBullet:
		return "bullet"
	case KindAsteroid:
		return "asteroid"
	case KindTrail:
		return "trail"
	case KindExplosion:
		return "explosion"
	default:
		return "unknown"
	}
}

// timed reports whether entities of this kind carry a remaining
// lifetime and are subject to expiry.
func (k Kind) timed() bool {
	switch k {
	case KindBullet, KindAsteroid, KindTrail, KindExplosion:
		return true
	}
	return false
}

// Handle identifies an entity in the store. The generation counter
// invalidates handles whose slot has been reclaimed and reused.
type Handle struct {
	ID  uint32
	Gen uint32
}

// Entity is a tagged record carrying the union of simulation
// attributes. Only the fields relevant to its Kind are meaningful.
type Entity struct {
	Kind Kind

	X, Y   float64 // position; the planet sits at the origin
	VX, VY float64 // linear velocity, units/sec

	Radius float64
	Mass   float64

	Life    float64 // remaining lifetime, seconds
	MaxLife float64 // initial lifetime, for fade fractions

	// Ship
	Angle        float64 // orientation in radians, π/2 = up
	Spin         float64 // angular velocity, radians/sec
	FireDelay    float64 // seconds until the next shot is allowed
	LastX, LastY float64 // position at the previous trail emission

	// Asteroid
	Seed uint64 // outline seed, no simulation effect

	// Trail segment runs from (X,Y) to (EndX,EndY)
	EndX, EndY float64
	Alpha      float64 // base alpha, scaled by the lifetime fraction

	// Planet
	Collapsing bool
	CollapseR0 float64 // radius when the collapse started
	CollapseM0 float64 // mass when the collapse started
	CollapseT  float64 // seconds since the collapse started
	Pulse      float64 // gravity pulse ring phase in [0,1), cosmetic
}

// LifeFraction returns the remaining fraction of the entity's initial
// lifetime, or 0 for entities without one.
func (e *Entity) LifeFraction() float64 {
	if e.MaxLife <= 0 {
		return 0
	}
	return e.Life / e.MaxLife
}

type slot struct {
	ent  Entity
	gen  uint32
	live bool
	dead bool // killed mid-frame; slot reclaimed at Flush
}

// Store owns every live entity as a slot in a flat arena.
//
// Structural mutations are buffered: Kill only marks the slot dead
// (iteration skips it immediately) and Spawn queues the record; both
// take structural effect at Flush, so no system observes a
// half-updated entity set mid-pass.
type Store struct {
	slots   []slot
	free    []uint32
	pending []Entity
}

// NewStore creates an empty entity store.
func NewStore() *Store {
	return &Store{}
}

// Add inserts an entity immediately and returns its handle. Use Spawn
// instead while a frame pass is in progress.
func (s *Store) Add(e Entity) Handle {
	var id uint32
	if n := len(s.free); n > 0 {
		id = s.free[n-1]
		s.free = s.free[:n-1]
	} else {
		s.slots = append(s.slots, slot{})
		id = uint32(len(s.slots) - 1)
	}
	sl := &s.slots[id]
	sl.ent = e
	sl.live = true
	sl.dead = false
	return Handle{ID: id, Gen: sl.gen}
}

// Spawn queues an entity for insertion at the next Flush.
func (s *Store) Spawn(e Entity) {
	s.pending = append(s.pending, e)
}

// Kill marks the entity dead. It reports whether the mark was applied;
// a second Kill of the same entity (or a stale handle) returns false,
// which is what keeps an asteroid from being destroyed and scored
// twice in one pass.
func (s *Store) Kill(h Handle) bool {
	if int(h.ID) >= len(s.slots) {
		return false
	}
	sl := &s.slots[h.ID]
	if !sl.live || sl.dead || sl.gen != h.Gen {
		return false
	}
	sl.dead = true
	return true
}

// Alive reports whether the handle refers to a live, unkilled entity.
func (s *Store) Alive(h Handle) bool {
	if int(h.ID) >= len(s.slots) {
		return false
	}
	sl := &s.slots[h.ID]
	return sl.live && !sl.dead && sl.gen == h.Gen
}

// Get returns the entity for the handle, or nil if it is dead or stale.
func (s *Store) Get(h Handle) *Entity {
	if !s.Alive(h) {
		return nil
	}
	return &s.slots[h.ID].ent
}

// Each calls fn for every live entity in slot order.
func (s *Store) Each(fn func(Handle, *Entity)) {
	for i := range s.slots {
		sl := &s.slots[i]
		if !sl.live || sl.dead {
			continue
		}
		fn(Handle{ID: uint32(i), Gen: sl.gen}, &sl.ent)
	}
}

// EachKind calls fn for every live entity of the given kind.
func (s *Store) EachKind(k Kind, fn func(Handle, *Entity)) {
	s.Each(func(h Handle, e *Entity) {
		if e.Kind == k {
			fn(h, e)
		}
	})
}

// First returns the first live entity of the given kind. The second
// return is false when none exists, which callers treat as "feature
// inactive this frame" rather than an error.
func (s *Store) First(k Kind) (Handle, *Entity, bool) {
	for i := range s.slots {
		sl := &s.slots[i]
		if sl.live && !sl.dead && sl.ent.Kind == k {
			return Handle{ID: uint32(i), Gen: sl.gen}, &sl.ent, true
		}
	}
	return Handle{}, nil, false
}

// Count returns the number of live entities of the given kind.
func (s *Store) Count(k Kind) int {
	n := 0
	s.EachKind(k, func(Handle, *Entity) { n++ })
	return n
}

// Len returns the number of live entities.
func (s *Store) Len() int {
	n := 0
	s.Each(func(Handle, *Entity) { n++ })
	return n
}

// Flush applies buffered structural mutations: dead slots are
// reclaimed (their generation bumps, invalidating old handles) and
// queued spawns become live. Called once per frame at the pass
// boundary.
func (s *Store) Flush() {
	for i := range s.slots {
		sl := &s.slots[i]
		if sl.live && sl.dead {
			sl.live = false
			sl.dead = false
			sl.gen++
			s.free = append(s.free, uint32(i))
		}
	}
	for _, e := range s.pending {
		s.Add(e)
	}
	s.pending = s.pending[:0]
}

// Clear removes every entity unconditionally, including queued spawns.
func (s *Store) Clear() {
	for i := range s.slots {
		sl := &s.slots[i]
		if sl.live {
			sl.live = false
			sl.dead = false
			sl.gen++
			s.free = append(s.free, uint32(i))
		}
	}
	s.pending = s.pending[:0]
}
