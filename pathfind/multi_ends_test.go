package pathfind_test

import (
	"iter"
	"testing"

	"github.com/euro0217/discrete-multi-nav/navends"
	"github.com/euro0217/discrete-multi-nav/pathfind"
)

// line builds a successors function over the integer nodes [0, n): each
// node i has a single outgoing edge to i+1 of cost 1, attributed with the
// edge index i itself.
func line(n int) func(int) iter.Seq[pathfind.Edge[int, int, int]] {
	return func(node int) iter.Seq[pathfind.Edge[int, int, int]] {
		return func(yield func(pathfind.Edge[int, int, int]) bool) {
			if node+1 >= n {
				return
			}
			yield(pathfind.Edge[int, int, int]{Node: node + 1, Cost: 1, Attr: node})
		}
	}
}

func identity(p int) int { return p }

func TestFindMultipleEnds_ReachesCheapestGoal(t *testing.T) {
	ends := navends.New[int, int]()
	_ = ends.Set(5, 0)

	path, ok := pathfind.FindMultipleEnds[int, int, int, int](0, ends, line(10), identity, nil)
	if !ok {
		t.Fatalf("expected a path to be found")
	}
	if path.Len() != 5 {
		t.Fatalf("path length = %d, want 5", path.Len())
	}
	if path.At(path.Len() - 1).Node != 5 {
		t.Fatalf("last node = %d, want 5", path.At(path.Len()-1).Node)
	}
	if path.TotalCost() != 5 {
		t.Fatalf("total cost = %d, want 5", path.TotalCost())
	}
}

func TestFindMultipleEnds_PenaltyCanFlipTheWinner(t *testing.T) {
	ends := navends.New[int, int]()
	_ = ends.Set(3, 0)
	_ = ends.Set(5, 10)

	path, ok := pathfind.FindMultipleEnds[int, int, int, int](0, ends, line(10), identity, nil)
	if !ok {
		t.Fatalf("expected a path to be found")
	}
	if path.At(path.Len()-1).Node != 3 {
		t.Fatalf("goal chosen = %d, want 3 (5's penalty makes it pricier)", path.At(path.Len()-1).Node)
	}
}

func TestFindMultipleEnds_StartIsGoal_EmptyPath(t *testing.T) {
	ends := navends.New[int, int]()
	_ = ends.Set(0, 0)

	path, ok := pathfind.FindMultipleEnds[int, int, int, int](0, ends, line(10), identity, nil)
	if !ok {
		t.Fatalf("expected a path to be found")
	}
	if path.Len() != 0 {
		t.Fatalf("path length = %d, want 0", path.Len())
	}
}

func TestFindMultipleEnds_Unreachable(t *testing.T) {
	ends := navends.New[int, int]()
	_ = ends.Set(100, 0)

	_, ok := pathfind.FindMultipleEnds[int, int, int, int](0, ends, line(10), identity, nil)
	if ok {
		t.Fatalf("goal outside the graph must be unreachable")
	}
}

func TestFindMultipleEnds_EmptyEnds(t *testing.T) {
	ends := navends.New[int, int]()
	_, ok := pathfind.FindMultipleEnds[int, int, int, int](0, ends, line(10), identity, nil)
	if ok {
		t.Fatalf("an empty goal set is never satisfiable")
	}
}

func TestFindMultipleEnds_AdmissibleHeuristicMatchesDijkstra(t *testing.T) {
	ends := navends.New[int, int]()
	_ = ends.Set(7, 0)

	heuristic := func(n int) int {
		d := 7 - n
		if d < 0 {
			return 0
		}
		return d
	}

	withH, ok := pathfind.FindMultipleEnds[int, int, int, int](0, ends, line(10), identity, heuristic)
	if !ok {
		t.Fatalf("expected a path to be found")
	}
	withoutH, ok := pathfind.FindMultipleEnds[int, int, int, int](0, ends, line(10), identity, nil)
	if !ok {
		t.Fatalf("expected a path to be found")
	}
	if withH.TotalCost() != withoutH.TotalCost() {
		t.Fatalf("heuristic search cost = %d, dijkstra cost = %d, must match", withH.TotalCost(), withoutH.TotalCost())
	}
}
