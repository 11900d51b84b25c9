// Package navends implements MultipleEnds, the weighted goal set consumed
// by package pathfind: a mapping from node to a non-negative "end-cost"
// penalty, used to express "prefer end A over end B by delta" within a
// single search.
package navends

import (
	"errors"

	"github.com/euro0217/discrete-multi-nav/navcost"
)

// ErrNegativePenalty is returned by Set when asked to record a negative
// end-cost penalty; penalties must be non-negative so that "smaller
// penalty = more preferred" composes correctly with the search's cost
// order.
var ErrNegativePenalty = errors.New("navends: penalty must be non-negative")

// MultipleEnds is a weighted goal set: node -> end-cost penalty. It is
// empty iff the search it's passed to has no valid goal.
type MultipleEnds[N comparable, C navcost.Cost] struct {
	ends map[N]C
}

// New returns an empty MultipleEnds, ready for Set calls.
func New[N comparable, C navcost.Cost]() MultipleEnds[N, C] {
	return MultipleEnds[N, C]{ends: make(map[N]C)}
}

// IsEmpty reports whether no goal has been registered.
func (e MultipleEnds[N, C]) IsEmpty() bool {
	return len(e.ends) == 0
}

// Len returns the number of distinct goal nodes.
func (e MultipleEnds[N, C]) Len() int {
	return len(e.ends)
}

// Set records node as a goal with the given penalty. Smaller penalties are
// more preferred. Setting the same node twice overwrites its penalty.
func (e *MultipleEnds[N, C]) Set(node N, penalty C) error {
	if penalty < 0 {
		return ErrNegativePenalty
	}
	if e.ends == nil {
		e.ends = make(map[N]C)
	}
	e.ends[node] = penalty
	return nil
}

// Penalty returns the registered penalty for node, and whether node is one
// of the goals. A node not present is not a goal, regardless of any other
// node sharing the same value.
func (e MultipleEnds[N, C]) Penalty(node N) (C, bool) {
	p, ok := e.ends[node]
	return p, ok
}

// Keys returns the goal nodes in unspecified order, for callers (such as
// internal/gridmap's heuristic) that need to enumerate the goal set.
func (e MultipleEnds[N, C]) Keys() []N {
	keys := make([]N, 0, len(e.ends))
	for n := range e.ends {
		keys = append(keys, n)
	}
	return keys
}
