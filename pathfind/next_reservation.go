package pathfind

import (
	"iter"

	"github.com/euro0217/discrete-multi-nav/navcost"
	"github.com/euro0217/discrete-multi-nav/navends"
)

// SeatEdge is one outgoing arc as seen by FindNextReservation: the node it
// lands on, the additive cost of the hop, the seats the hop touches (all
// of which must be free for the hop to count as unblocked; the simulator
// lists the swept cells followed by the landing footprint), and an opaque
// attribute echoed back on the path hop.
type SeatEdge[N comparable, C navcost.Cost, SI comparable, T any] struct {
	Node  N
	Cost  C
	Seats []SI
	Attr  T
}

// FindNextReservation searches like FindMultipleEnds but additionally
// tracks a reservation budget: maxBudget caps the total cost of hops whose
// seats are all currently free (per isFree). Once that budget would be
// exceeded, or a hop touches a seat isFree reports as taken, every
// subsequent hop on that branch is marked blocked; blocked hops still
// extend the search (so a full route to a goal is still found and
// returned), but the caller should only commit the unblocked prefix.
//
// The returned Path is truncated at the first blocked hop: the caller
// gets back exactly the prefix that's safe to reserve right now, with
// plain (un-augmented) costs. FindNextReservation reports false if no
// goal is reachable at all, even fully blocked.
func FindNextReservation[N comparable, C navcost.Cost, SI comparable, T any](
	start N,
	ends navends.MultipleEnds[N, C],
	successors func(N) iter.Seq[SeatEdge[N, C, SI, T]],
	isFree func(SI) bool,
	maxBudget C,
	heuristic func(N) C,
) (Path[N, C, T], bool) {
	if ends.IsEmpty() {
		return Path[N, C, T]{}, false
	}

	zero := navcost.Zero[C]()
	plus := func(a, b navcost.RCost[C]) navcost.RCost[C] { return a.Plus(b) }
	less := func(a, b navcost.RCost[C]) bool { return a.Less(b) }

	succ := func(n N) iter.Seq[edge[N, navcost.RCost[C], T]] {
		return func(yield func(edge[N, navcost.RCost[C], T]) bool) {
			for s := range successors(n) {
				free := true
				for _, si := range s.Seats {
					if !isFree(si) {
						free = false
						break
					}
				}
				rc := navcost.AddBlocked[C](s.Cost)
				if free {
					rc = navcost.Add(s.Cost, maxBudget)
				}
				e := edge[N, navcost.RCost[C], T]{to: destNode[N]{node: s.Node}, cost: rc, attr: s.Attr}
				if !yield(e) {
					return
				}
			}
		}
	}
	endEdge := func(n N) (navcost.RCost[C], bool) {
		p, ok := ends.Penalty(n)
		if !ok {
			return zero, false
		}
		return navcost.Add(p, maxBudget), true
	}
	heuristicEdge := func(n N) navcost.RCost[C] {
		if heuristic == nil {
			return zero
		}
		return navcost.Add(heuristic(n), maxBudget)
	}

	rpath, ok := search[N, navcost.RCost[C], T](start, succ, endEdge, heuristicEdge, zero, plus, less)
	if !ok {
		return Path[N, C, T]{}, false
	}
	return truncateUnblocked(rpath), true
}

// truncateUnblocked collapses an RCost-costed path down to the longest
// leading run of unblocked hops, converting each surviving hop's cost back
// to plain C.
func truncateUnblocked[N comparable, C navcost.Cost, T any](p Path[N, navcost.RCost[C], T]) Path[N, C, T] {
	out := make([]PathNode[N, C, T], 0, p.Len())
	for _, hop := range p.All() {
		if hop.Cost.IsBlocked() {
			break
		}
		out = append(out, PathNode[N, C, T]{Node: hop.Node, Cost: hop.Cost.Collapse(), Attr: hop.Attr})
	}
	return Path[N, C, T]{nodes: out}
}
