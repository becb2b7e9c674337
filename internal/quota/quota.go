// Package quota tracks the external API cost budget for a single run.
package quota

import "sync"

// Governor gates platform API calls against a fixed cost ceiling. The
// counter is shared by every concurrent caller in a run, so reservation is
// a single locked check-and-increment; a denied reservation leaves the
// counter untouched. The ceiling is scoped to the process run and is not
// persisted.
type Governor struct {
	mu    sync.Mutex
	limit int
	used  int
}

func NewGovernor(limit int) *Governor {
	return &Governor{limit: limit}
}

// Reserve charges cost against the budget if the full amount fits.
// It reports whether the reservation was granted.
func (g *Governor) Reserve(cost int) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.used+cost > g.limit {
		return false
	}
	g.used += cost
	return true
}

// Remaining returns the unreserved budget.
func (g *Governor) Remaining() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.limit - g.used
}

// Used returns the consumed budget.
func (g *Governor) Used() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.used
}
