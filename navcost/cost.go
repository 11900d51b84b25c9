// Package navcost implements the cost algebra the path-finder optimizes
// over: ordinary additive costs (Cost), and RCost, a reservation-augmented
// cost that layers a per-search "reservation budget" onto a Cost so that
// paths crossing currently-held cells become a deferred penalty rather than
// a hard exclusion.
//
// See FindNextReservation in package pathfind for why this shape lets a
// single monotone-cost shortest-path search stand in for the otherwise
// multi-objective "shortest, but cap how far you walk into other agents'
// reservations" problem.
package navcost

// Cost is the additive cost type the path-finder is generic over: it needs
// a zero, a total order, and overflow-free addition in the domain used.
// Any fixed-width signed or unsigned integer satisfies this; the simulator
// harness, the example grid map and the simulator tests in this module use
// int.
type Cost interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}
