package pathfind_test

import (
	"iter"
	"testing"

	"github.com/euro0217/discrete-multi-nav/navends"
	"github.com/euro0217/discrete-multi-nav/pathfind"
)

// lineWithSeats is like line but each hop touches a single seat named
// after the node it departs from, and carries no attribute.
func lineWithSeats(n int) func(int) iter.Seq[pathfind.SeatEdge[int, int, int, struct{}]] {
	return func(node int) iter.Seq[pathfind.SeatEdge[int, int, int, struct{}]] {
		return func(yield func(pathfind.SeatEdge[int, int, int, struct{}]) bool) {
			if node+1 >= n {
				return
			}
			yield(pathfind.SeatEdge[int, int, int, struct{}]{
				Node:  node + 1,
				Cost:  1,
				Seats: []int{node},
			})
		}
	}
}

func allFree(int) bool { return true }

func TestFindNextReservation_FullyFreeReturnsWholePath(t *testing.T) {
	ends := navends.New[int, int]()
	_ = ends.Set(5, 0)

	path, ok := pathfind.FindNextReservation[int, int, int, struct{}](0, ends, lineWithSeats(10), allFree, 100, nil)
	if !ok {
		t.Fatalf("expected a path to be found")
	}
	if path.Len() != 5 {
		t.Fatalf("path length = %d, want 5 (nothing blocked)", path.Len())
	}
	if path.TotalCost() != 5 {
		t.Fatalf("total cost = %d, want 5", path.TotalCost())
	}
}

func TestFindNextReservation_TakenSeatTruncatesPath(t *testing.T) {
	ends := navends.New[int, int]()
	_ = ends.Set(5, 0)

	taken := map[int]bool{2: true}
	isFree := func(si int) bool { return !taken[si] }

	path, ok := pathfind.FindNextReservation[int, int, int, struct{}](0, ends, lineWithSeats(10), isFree, 100, nil)
	if !ok {
		t.Fatalf("a fully blocked route is still a route for reachability purposes")
	}
	if path.Len() != 2 {
		t.Fatalf("path length = %d, want 2 (truncated before the seat-2 hop)", path.Len())
	}
	if path.At(path.Len()-1).Node != 2 {
		t.Fatalf("last committable node = %d, want 2", path.At(path.Len()-1).Node)
	}
}

func TestFindNextReservation_BudgetExhaustionTruncates(t *testing.T) {
	ends := navends.New[int, int]()
	_ = ends.Set(9, 0)

	path, ok := pathfind.FindNextReservation[int, int, int, struct{}](0, ends, lineWithSeats(10), allFree, 3, nil)
	if !ok {
		t.Fatalf("expected a path to be found")
	}
	if path.Len() != 3 {
		t.Fatalf("path length = %d, want 3 (budget of 3 exhausted after 3 unit-cost hops)", path.Len())
	}
}

func TestFindNextReservation_Unreachable(t *testing.T) {
	ends := navends.New[int, int]()
	_ = ends.Set(100, 0)

	_, ok := pathfind.FindNextReservation[int, int, int, struct{}](0, ends, lineWithSeats(10), allFree, 100, nil)
	if ok {
		t.Fatalf("goal outside the graph must be unreachable")
	}
}
