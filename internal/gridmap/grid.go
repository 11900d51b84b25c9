// Package gridmap is a concrete navmap.Map: a rectangular board where
// each cell is a single seat and an agent moves between cells with
// knight-style jumps, sweeping through the cells it passes over along
// the way. It exists for this module's own tests and for cmd/navsim's
// example runs; it is not part of the core simulation model.
package gridmap

import (
	"iter"

	"github.com/euro0217/discrete-multi-nav/handle"
	"github.com/euro0217/discrete-multi-nav/navends"
	"github.com/euro0217/discrete-multi-nav/navmap"
)

// Cell is both the node type and the seat-index type for Grid: a board
// position is its own seat.
type Cell struct {
	X, Y int
}

// seatOffset is one cell touched during a knight hop, relative to the
// hop's starting cell, with the tick offset at which it's touched.
type seatOffset struct {
	dx, dy, cost int
}

// dxys are the eight knight-move deltas a hop may take.
var dxys = [8][2]int{
	{2, 1}, {1, 2}, {-1, 2}, {-2, 1},
	{-2, -1}, {-1, -2}, {1, -2}, {2, -1},
}

// sweep[i] lists the cells a hop along dxys[i] passes through before
// landing, each with the tick offset (from the hop's start) at which the
// agent's footprint reaches it. The final landing cell's own resting
// footprint is reported separately by Seats, not here.
var sweep = [8][3]seatOffset{
	{{0, 0, 2}, {1, 0, 3}, {1, 1, 4}},
	{{0, 0, 2}, {0, 1, 3}, {1, 1, 4}},
	{{0, 0, 2}, {0, 1, 3}, {-1, 1, 4}},
	{{0, 0, 2}, {-1, 0, 3}, {-1, 1, 4}},
	{{0, 0, 2}, {-1, 0, 3}, {-1, -1, 4}},
	{{0, 0, 2}, {0, -1, 3}, {-1, -1, 4}},
	{{0, 0, 2}, {0, -1, 3}, {1, -1, 4}},
	{{0, 0, 2}, {1, 0, 3}, {1, -1, 4}},
}

// hopCost is the uniform cost of any knight hop.
const hopCost = 4

// Grid is a width x height board of cell-seats. A Grid's zero value is
// not usable; construct one with New.
type Grid[T any] struct {
	width, height int
	cells         [][]cellSeat[T]
}

// New returns an empty width x height Grid.
func New[T any](width, height int) *Grid[T] {
	cells := make([][]cellSeat[T], width)
	for x := range cells {
		cells[x] = make([]cellSeat[T], height)
	}
	return &Grid[T]{width: width, height: height, cells: cells}
}

// Width returns the board's column count.
func (g *Grid[T]) Width() int { return g.width }

// Height returns the board's row count.
func (g *Grid[T]) Height() int { return g.height }

// InBounds reports whether c lies on the board.
func (g *Grid[T]) InBounds(c Cell) bool {
	return c.X >= 0 && c.X < g.width && c.Y >= 0 && c.Y < g.height
}

// Seats returns the single cell an agent occupies while resting at node
// (the kind parameter is unused: every kind has a one-cell footprint on
// this board).
func (g *Grid[T]) Seats(node Cell, _ T) iter.Seq[Cell] {
	return func(yield func(Cell) bool) {
		yield(node)
	}
}

// Successors enumerates the knight hops available from node that stay on
// the board.
func (g *Grid[T]) Successors(node Cell, _ T) iter.Seq2[int, navmap.Successor[Cell, int]] {
	return func(yield func(int, navmap.Successor[Cell, int]) bool) {
		for i, d := range dxys {
			dest := Cell{X: node.X + d[0], Y: node.Y + d[1]}
			if !g.InBounds(dest) {
				continue
			}
			if !yield(i, navmap.Successor[Cell, int]{Node: dest, Cost: hopCost}) {
				return
			}
		}
	}
}

// Successor resolves a single knight-move index from node, reporting
// false if the index is out of range or the destination is off-board.
func (g *Grid[T]) Successor(node Cell, _ T, i int) (Cell, bool) {
	if i < 0 || i >= len(dxys) {
		return Cell{}, false
	}
	d := dxys[i]
	dest := Cell{X: node.X + d[0], Y: node.Y + d[1]}
	if !g.InBounds(dest) {
		return Cell{}, false
	}
	return dest, true
}

// SeatsBetween enumerates the cells a knight hop along index i sweeps
// through before landing, each with its tick offset from the hop's
// start. It does not include the destination's own resting cell.
func (g *Grid[T]) SeatsBetween(node Cell, _ T, i int) iter.Seq[navmap.SeatCost[Cell, int]] {
	return func(yield func(navmap.SeatCost[Cell, int]) bool) {
		if i < 0 || i >= len(sweep) {
			return
		}
		for _, s := range sweep[i] {
			cell := Cell{X: node.X + s.dx, Y: node.Y + s.dy}
			if !yield(navmap.SeatCost[Cell, int]{Seat: cell, Cost: s.cost}) {
				return
			}
		}
	}
}

// Heuristic builds a per-goal Manhattan-distance estimate scaled by 4/3,
// which never overestimates a knight hop's true cost-per-unit-distance
// (at most 3 Manhattan units per hop of cost 4). Estimate takes the
// minimum over every registered goal combined with that goal's own
// penalty, so the bound stays admissible against the cheapest goal
// overall rather than whichever one happened to be picked. It reports
// false if ends has no goals.
func (g *Grid[T]) Heuristic(ends navends.MultipleEnds[Cell, int]) (navmap.Heuristic[Cell, int], bool) {
	keys := ends.Keys()
	if len(keys) == 0 {
		return nil, false
	}
	goals := make([]goalPenalty, len(keys))
	for i, k := range keys {
		p, _ := ends.Penalty(k)
		goals[i] = goalPenalty{node: k, penalty: p}
	}
	return manhattanHeuristic{goals: goals}, true
}

// SeatAt resolves a cell to its mutable seat.
func (g *Grid[T]) SeatAt(si Cell) navmap.Seat[T] {
	return &g.cells[si.X][si.Y]
}

type goalPenalty struct {
	node    Cell
	penalty int
}

type manhattanHeuristic struct {
	goals []goalPenalty
}

func (h manhattanHeuristic) Estimate(n Cell) int {
	best := 0
	for i, g := range h.goals {
		dx := abs(g.node.X - n.X)
		dy := abs(g.node.Y - n.Y)
		est := (dx+dy)*4/3 + g.penalty
		if i == 0 || est < best {
			best = est
		}
	}
	return best
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// cellSeat is the Grid's Seat implementation: at most one handle owns a
// cell at a time.
type cellSeat[T any] struct {
	owner handle.Handle[T]
	held  bool
}

func (s *cellSeat[T]) IsEmptyFor(h handle.Handle[T]) bool {
	return !s.held || s.owner == h
}

func (s *cellSeat[T]) Add(h handle.Handle[T]) {
	s.owner, s.held = h, true
}

func (s *cellSeat[T]) Remove(h handle.Handle[T]) {
	if s.held && s.owner == h {
		s.held = false
	}
}
