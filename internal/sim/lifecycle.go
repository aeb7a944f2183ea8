package sim

// expireLifetimes decrements every timed entity's remaining lifetime
// by dt, floored at zero. An entity whose lifetime reaches zero is
// killed here and reclaimed at this frame's flush, so it never
// survives into the next frame.
func (w *World) expireLifetimes(dt float64) {
	w.store.Each(func(h Handle, e *Entity) {
		if !e.Kind.timed() {
			return
		}
		if e.Life > 0 {
			e.Life -= dt
			if e.Life < 0 {
				e.Life = 0
			}
		}
		if e.Life == 0 {
			w.store.Kill(h)
		}
	})
}
