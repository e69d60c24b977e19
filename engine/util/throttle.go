package util

import "time"

// Throttle runs a function at most once per interval of simulation time. The first call always
// runs (leading edge). Calls that fall inside the interval are dropped, not deferred, because
// there is no timer to run a trailing call from.
type Throttle struct {
	interval float64
	elapsed  float64
	primed   bool
	fn       func()
}

// NewThrottle with a zero or negative interval runs fn on every call.
func NewThrottle(interval time.Duration, fn func()) *Throttle {
	return &Throttle{
		interval: interval.Seconds(),
		fn:       fn,
	}
}

// Tick advances the throttle by dt seconds and runs the function if it is due.
// It reports whether the function ran.
func (t *Throttle) Tick(dt float64) bool {
	if t.primed {
		t.elapsed += dt
		if t.elapsed < t.interval {
			return false
		}
	}
	t.primed = true
	t.elapsed = 0
	t.fn()
	return true
}

// Reset makes the next Tick run immediately.
func (t *Throttle) Reset() {
	t.primed = false
	t.elapsed = 0
}
