package pathfind

// PathNode is one hop of a Path: the node reached, the cumulative cost to
// reach it from the search's start, and the opaque edge attribute that
// produced it. C is left unconstrained so the search core can build paths
// over navcost.RCost as well as over plain costs.
type PathNode[N any, C any, T any] struct {
	Node N
	Cost C
	Attr T
}

// Path is the ordered sequence of hops a search returns: the first entry
// is the first hop *after* start (start itself is never included), costs
// are cumulative and non-decreasing. The last node of a full search result
// is one of the search's goals; a path truncated by FindNextReservation
// may stop short of any goal.
type Path[N any, C any, T any] struct {
	nodes []PathNode[N, C, T]
}

// Len returns the number of hops in the path (0 for "start is already a
// goal").
func (p Path[N, C, T]) Len() int {
	return len(p.nodes)
}

// At returns the i-th hop.
func (p Path[N, C, T]) At(i int) PathNode[N, C, T] {
	return p.nodes[i]
}

// TotalCost returns the cumulative cost of the last hop, or the zero value
// if the path is empty.
func (p Path[N, C, T]) TotalCost() C {
	if len(p.nodes) == 0 {
		var zero C
		return zero
	}
	return p.nodes[len(p.nodes)-1].Cost
}

// All ranges over the path's hops in order.
func (p Path[N, C, T]) All() []PathNode[N, C, T] {
	return p.nodes
}
