// Package navmap defines the Map capability: the graph interface the
// path-finder and simulator consume but never construct or mutate
// topology-wise. Concrete map/graph implementations — adjacency, cell
// footprints, heuristics — are external collaborators; this package only
// specifies the shape they must have. internal/gridmap provides one
// concrete implementation used by this module's tests and cmd/navsim.
package navmap

import (
	"iter"

	"github.com/euro0217/discrete-multi-nav/handle"
	"github.com/euro0217/discrete-multi-nav/navcost"
	"github.com/euro0217/discrete-multi-nav/navends"
)

// Successor describes one outgoing edge: the node it lands on and the
// additive cost of taking it.
type Successor[N comparable, C navcost.Cost] struct {
	Node N
	Cost C
}

// SeatCost pairs a seat touched mid-hop with its intra-hop offset cost
// (the time at which that seat, specifically, becomes occupied relative to
// the start of the hop).
type SeatCost[SI comparable, C navcost.Cost] struct {
	Seat SI
	Cost C
}

// Heuristic estimates the remaining cost from a node to the search's goal
// set. It must be admissible (never overestimate); consistency is not
// required.
type Heuristic[N comparable, C navcost.Cost] interface {
	Estimate(node N) C
}

// Seat is a single indivisible resource cell. At most one agent owns a
// seat at any instant.
type Seat[T any] interface {
	// IsEmptyFor reports whether the seat is reservable by h: either
	// unowned, or already owned by h.
	IsEmptyFor(h handle.Handle[T]) bool
	// Add marks h as the seat's owner.
	Add(h handle.Handle[T])
	// Remove clears ownership if h currently owns the seat; otherwise a
	// no-op (an agent can never evict another agent's hold directly).
	Remove(h handle.Handle[T])
}

// Map is the capability an implementor must expose for the path-finder and
// simulator to drive agents of payload/kind T across nodes of type N, with
// costs of type C, seat indices SI, and edge indices I.
//
// The four operations below (Seats, Successors, SeatsBetween, and the seat
// table accessor) are the hot-path queries; implementations should make
// them allocation-light — Go's range-over-func iterators let a Map return
// them without heap-boxing a generic Iterator interface for every call.
type Map[N comparable, C navcost.Cost, SI comparable, I comparable, T any] interface {
	// Seats returns the footprint cells an agent of kind T occupies while
	// resting at node.
	Seats(node N, kind T) iter.Seq[SI]

	// Successors enumerates the edges leaving node: edge index, target
	// node, and cost.
	Successors(node N, kind T) iter.Seq2[I, Successor[N, C]]

	// Successor resolves a single edge index to its target node. It
	// reports false if the edge index is not valid from node.
	Successor(node N, kind T, i I) (N, bool)

	// SeatsBetween enumerates the cells touched during the hop from node
	// along edge i (possibly including node's own cell, but not the
	// target's resting footprint), each with its intra-hop offset cost.
	SeatsBetween(node N, kind T, i I) iter.Seq[SeatCost[SI, C]]

	// Heuristic returns an admissible heuristic for the given goal set, or
	// false if none is available (the caller should fall back to Dijkstra,
	// i.e. the zero heuristic).
	Heuristic(ends navends.MultipleEnds[N, C]) (Heuristic[N, C], bool)

	// SeatAt resolves a seat index to its mutable Seat, the Go equivalent
	// of the source's index-mut `map[seat_index] -> Seat` access.
	SeatAt(si SI) Seat[T]
}
