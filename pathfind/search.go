package pathfind

import (
	"container/heap"
	"iter"
)

// destNode is either a real graph node or the virtual sink every goal edge
// converges on. Folding goal absorption into the graph itself, rather than
// special-casing "have we reached a goal yet" in the main loop, is what
// lets a single search loop serve both plain and reservation-aware callers.
type destNode[N comparable] struct {
	dest bool
	node N
}

// edge is one outgoing arc as seen by the search core: a target (possibly
// the virtual sink), the cost contribution of taking it, and an opaque
// attribute the caller wants attached to the resulting path hop.
type edge[N comparable, S any, T any] struct {
	to   destNode[N]
	cost S
	attr T
}

type cameFromEntry[N comparable, S any, T any] struct {
	parent destNode[N]
	g      S
	attr   T
}

type searchItem[N comparable, S any, T any] struct {
	at       destNode[N]
	priority S
	index    int
}

// searchHeap is a binary min-heap over searchItem ordered by priority, with
// an index map so the core loop can push improved priorities for a node
// already in the queue instead of scanning for it (the decrease-key idiom
// gonum's A* priority queue and this module's own graph search use).
type searchHeap[N comparable, S any, T any] struct {
	items []*searchItem[N, S, T]
	index map[destNode[N]]int
	less  func(a, b S) bool
}

func newSearchHeap[N comparable, S any, T any](less func(a, b S) bool) *searchHeap[N, S, T] {
	return &searchHeap[N, S, T]{index: make(map[destNode[N]]int), less: less}
}

func (h *searchHeap[N, S, T]) Len() int { return len(h.items) }

func (h *searchHeap[N, S, T]) Less(i, j int) bool {
	return h.less(h.items[i].priority, h.items[j].priority)
}

func (h *searchHeap[N, S, T]) Swap(i, j int) {
	h.items[i], h.items[j] = h.items[j], h.items[i]
	h.index[h.items[i].at] = i
	h.index[h.items[j].at] = j
}

func (h *searchHeap[N, S, T]) Push(x any) {
	it := x.(*searchItem[N, S, T])
	it.index = len(h.items)
	h.items = append(h.items, it)
	h.index[it.at] = it.index
}

func (h *searchHeap[N, S, T]) Pop() any {
	old := h.items
	n := len(old)
	it := old[n-1]
	old[n-1] = nil
	h.items = old[:n-1]
	delete(h.index, it.at)
	return it
}

// pushOrImprove inserts at with priority p, or, if at is already queued,
// lowers its priority and fixes the heap in place.
func (h *searchHeap[N, S, T]) pushOrImprove(at destNode[N], p S) {
	if i, ok := h.index[at]; ok {
		if h.less(p, h.items[i].priority) {
			h.items[i].priority = p
			heap.Fix(h, i)
		}
		return
	}
	heap.Push(h, &searchItem[N, S, T]{at: at, priority: p})
}

// search runs a generalized Dijkstra/A* to the virtual sink: from start,
// it explores real edges produced by successors plus, at every node that
// has a registered goal-absorption edge (endEdge), the edge to the sink.
// The first time the sink is popped off the open set, its best-cost
// predecessor chain is unwound into a Path.
//
// heuristicEdge supplies the estimated remaining cost from a node as an
// edge value to add onto its accumulated cost for priority ordering; a
// caller with no heuristic passes a function that always returns zero,
// degrading the search to plain Dijkstra.
func search[N comparable, S any, T any](
	start N,
	successors func(N) iter.Seq[edge[N, S, T]],
	endEdge func(N) (S, bool),
	heuristicEdge func(N) S,
	zero S,
	plus func(acc, e S) S,
	less func(a, b S) bool,
) (Path[N, S, T], bool) {
	startAt := destNode[N]{node: start}
	sink := destNode[N]{dest: true}

	best := map[destNode[N]]S{startAt: zero}
	cameFrom := map[destNode[N]]cameFromEntry[N, S, T]{}
	closed := map[destNode[N]]bool{}

	h := newSearchHeap[N, S, T](less)
	heap.Init(h)
	h.pushOrImprove(startAt, plus(zero, heuristicEdge(start)))

	relax := func(from destNode[N], fromG S, e edge[N, S, T]) {
		g := plus(fromG, e.cost)
		if cur, ok := best[e.to]; ok && !less(g, cur) {
			return
		}
		best[e.to] = g
		cameFrom[e.to] = cameFromEntry[N, S, T]{parent: from, g: g, attr: e.attr}
		pri := g
		if !e.to.dest {
			pri = plus(g, heuristicEdge(e.to.node))
		}
		h.pushOrImprove(e.to, pri)
	}

	for h.Len() > 0 {
		cur := heap.Pop(h).(*searchItem[N, S, T])
		if closed[cur.at] {
			continue
		}
		closed[cur.at] = true

		if cur.at.dest {
			return buildPath[N, S, T](cameFrom, sink), true
		}

		g := best[cur.at]
		for e := range successors(cur.at.node) {
			relax(cur.at, g, e)
		}
		if penalty, ok := endEdge(cur.at.node); ok {
			var zeroAttr T
			relax(cur.at, g, edge[N, S, T]{to: sink, cost: penalty, attr: zeroAttr})
		}
	}
	return Path[N, S, T]{}, false
}

func buildPath[N comparable, S any, T any](cameFrom map[destNode[N]]cameFromEntry[N, S, T], sink destNode[N]) Path[N, S, T] {
	var hops []PathNode[N, S, T]
	at := sink
	for {
		entry, ok := cameFrom[at]
		if !ok {
			break
		}
		if !at.dest {
			hops = append(hops, PathNode[N, S, T]{Node: at.node, Cost: entry.g, Attr: entry.attr})
		}
		at = entry.parent
	}
	for i, j := 0, len(hops)-1; i < j; i, j = i+1, j-1 {
		hops[i], hops[j] = hops[j], hops[i]
	}
	return Path[N, S, T]{nodes: hops}
}
