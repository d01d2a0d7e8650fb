package service

import "sync"

// runGuard collapses concurrent sync runs. The first caller acquires the
// guard and runs; callers arriving while it is held set a rerun flag and
// return immediately, and the active run picks the flag up when it finishes.
// Any number of collapsed callers produce at most one rerun.
type runGuard struct {
	mu     sync.Mutex
	active bool
	rerun  bool
}

// tryAcquire reports whether the caller may run. When the guard is already
// held it records a rerun request instead.
func (g *runGuard) tryAcquire() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.active {
		g.rerun = true
		return false
	}
	g.active = true
	return true
}

// release ends the caller's run. When a rerun was requested the guard stays
// held and release returns true; the caller must run again and call release
// once more.
func (g *runGuard) release() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.rerun {
		g.rerun = false
		return true
	}
	g.active = false
	return false
}
