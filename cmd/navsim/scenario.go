package main

import (
	"github.com/google/uuid"

	"github.com/euro0217/discrete-multi-nav/handle"
	"github.com/euro0217/discrete-multi-nav/internal/gridmap"
	"github.com/euro0217/discrete-multi-nav/navends"
	"github.com/euro0217/discrete-multi-nav/simulator"
)

// agentKind is the one agent payload/footprint kind this harness ever
// places on the grid; a richer CLI could vary footprints per kind, but
// this demo scenario has no use for more than one.
type agentKind struct{}

// Sim is the concrete Simulator instantiation this harness drives: int
// ticks/costs, gridmap.Cell nodes and seats, int edge indices.
type Sim = simulator.Simulator[gridmap.Cell, int, gridmap.Cell, int, agentKind, *gridmap.Grid[agentKind]]

// mover is one seeded agent: its handle, a stable UUID for frame dumps,
// and its starting cell (used only for logging).
type mover struct {
	Handle handle.Handle[agentKind]
	UUID   uuid.UUID
	Start  gridmap.Cell
}

// buildScenario lays out a width x height grid and seeds it with the
// "mirror moves" scenario of §8: agents start at the board's corners, in
// the order top-left, top-right, bottom-left, bottom-right, and each
// round-trips to the diagonally opposite corner and back.
func buildScenario(width, height, numAgents, maxReservationTime int) (*Sim, []mover) {
	grid := gridmap.New[agentKind](width, height)
	sim := simulator.New[gridmap.Cell, int, gridmap.Cell, int, agentKind](0, grid, maxReservationTime)

	if numAgents > 4 {
		numAgents = 4
	}
	corners := []gridmap.Cell{
		{X: 0, Y: 0},
		{X: width - 1, Y: 0},
		{X: 0, Y: height - 1},
		{X: width - 1, Y: height - 1},
	}
	opposite := []gridmap.Cell{corners[3], corners[2], corners[1], corners[0]}

	movers := make([]mover, 0, numAgents)
	for i := 0; i < numAgents; i++ {
		start := corners[i]
		goThere := navends.New[gridmap.Cell, int]()
		_ = goThere.Set(opposite[i], 0)
		comeBack := navends.New[gridmap.Cell, int]()
		_ = comeBack.Set(start, 0)

		h := sim.Add(agentKind{}, start, []navends.MultipleEnds[gridmap.Cell, int]{goThere, comeBack})
		movers = append(movers, mover{Handle: h, UUID: uuid.New(), Start: start})
	}
	return sim, movers
}

// countByState tallies how many of sim's agents currently sit in each
// agent.State, keyed by its String() form so callers can feed it straight
// into a metrics gauge or a log field.
func countByState(sim *Sim) map[string]int {
	counts := map[string]int{"NotPlaced": 0, "Stop": 0, "Moving": 0}
	for _, r := range sim.Agents() {
		counts[r.State().String()]++
	}
	return counts
}
