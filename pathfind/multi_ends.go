// Package pathfind implements the reservation-aware and plain weighted
// searches agents use to plan hops: FindMultipleEnds finds the cheapest
// route to any node in a weighted goal set, and FindNextReservation layers
// seat-budget tracking on top so a caller can commit only the prefix of a
// plan that's actually reservable right now.
package pathfind

import (
	"iter"

	"github.com/euro0217/discrete-multi-nav/navcost"
	"github.com/euro0217/discrete-multi-nav/navends"
)

// Edge is one outgoing arc from a node, as produced by a caller's
// successors function: the node it lands on, the additive cost of the
// hop, and an opaque attribute (an edge index, a seat list, anything the
// caller wants echoed back on the resulting path hop).
type Edge[N comparable, C navcost.Cost, T any] struct {
	Node N
	Cost C
	Attr T
}

// FindMultipleEnds finds the cheapest path from start to any node
// registered in ends, where "cheapest" also accounts for each goal's own
// penalty (smaller penalty wins ties against a cheaper-but-less-preferred
// goal). heuristic, if non-nil, must be admissible (never overestimate
// the true remaining cost to the nearest goal) or the result may not be
// optimal; pass nil to run plain Dijkstra.
//
// The returned Path excludes start; its last hop is one of ends' goal
// nodes. FindMultipleEnds reports false if no goal is reachable, or if
// ends is empty.
func FindMultipleEnds[N comparable, C navcost.Cost, MC navcost.Cost, T any](
	start N,
	ends navends.MultipleEnds[N, MC],
	successors func(N) iter.Seq[Edge[N, C, T]],
	convertPenalty func(MC) C,
	heuristic func(N) C,
) (Path[N, C, T], bool) {
	if ends.IsEmpty() {
		return Path[N, C, T]{}, false
	}

	var zero C
	plus := func(a, b C) C { return a + b }
	less := func(a, b C) bool { return a < b }

	succ := func(n N) iter.Seq[edge[N, C, T]] {
		return func(yield func(edge[N, C, T]) bool) {
			for e := range successors(n) {
				if !yield(edge[N, C, T]{to: destNode[N]{node: e.Node}, cost: e.Cost, attr: e.Attr}) {
					return
				}
			}
		}
	}
	endEdge := func(n N) (C, bool) {
		p, ok := ends.Penalty(n)
		if !ok {
			return zero, false
		}
		return convertPenalty(p), true
	}
	heuristicEdge := func(n N) C {
		if heuristic == nil {
			return zero
		}
		return heuristic(n)
	}

	return search[N, C, T](start, succ, endEdge, heuristicEdge, zero, plus, less)
}
