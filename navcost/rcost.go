package navcost

import "errors"

// ErrBadRCostCombination is the one internal-invariant violation exposed by
// this package. RCost addition is defined only for Cost+Add, Cost+AddBlocked,
// and Cost+Cost (path concatenation); any other pairing (Add+Add,
// AddBlocked+AddBlocked, Add+AddBlocked, anything plus a bare edge variant as
// the left operand, ...) is a programmer error in the caller, never
// reachable through pathfind's public entry points.
var ErrBadRCostCombination = errors.New("navcost: invalid RCost addition")

// rcostKind distinguishes RCost's three variants.
type rcostKind uint8

const (
	rcostCost rcostKind = iota
	rcostAdd
	rcostAddBlocked
)

// RCost is the reservation-augmented cost used by reservation-aware
// searches: a tagged sum of
//
//   - Cost{cost, r, blocked}   — accumulated cost along an explored prefix;
//     r is the running reservation-budget spend while still unblocked.
//   - Add{dc, max}             — an edge weight extending the path by dc,
//     provided the budget max is not exceeded.
//   - AddBlocked{dc}           — an edge that crosses a reserved cell.
//
// The zero value is the Cost{0,0,false} identity, the same value Zero
// returns; the edge variants are built with Add or AddBlocked.
type RCost[C Cost] struct {
	kind    rcostKind
	cost    C
	r       C
	blocked bool
	dc      C
	max     C
}

// Zero returns the Cost{0,0,false} identity element.
func Zero[C Cost]() RCost[C] {
	return RCost[C]{kind: rcostCost}
}

// CostOf constructs a Cost{cost,r,blocked} variant directly. Most callers
// only ever read this variant back out via Collapse; constructing one by
// hand is mainly useful in tests.
func CostOf[C Cost](cost, r C, blocked bool) RCost[C] {
	return RCost[C]{kind: rcostCost, cost: cost, r: r, blocked: blocked}
}

// Add constructs an Add{dc,max} edge: extend the path by dc as long as the
// running reservation spend does not exceed max.
func Add[C Cost](dc, max C) RCost[C] {
	return RCost[C]{kind: rcostAdd, dc: dc, max: max}
}

// AddBlocked constructs an AddBlocked{dc} edge: the hop crosses a cell
// currently reserved by another agent.
func AddBlocked[C Cost](dc C) RCost[C] {
	return RCost[C]{kind: rcostAddBlocked, dc: dc}
}

// IsBlocked reports whether a Cost-variant RCost has crossed into reserved
// territory. Calling IsBlocked on an Add/AddBlocked variant panics with
// ErrBadRCostCombination — those variants describe edges, not accumulated
// path state.
func (a RCost[C]) IsBlocked() bool {
	if a.kind != rcostCost {
		panic(ErrBadRCostCombination)
	}
	return a.blocked
}

// Collapse folds a Cost-variant RCost back down to a plain Cost (cost + r),
// the step FindNextReservation takes once the committable prefix has been
// truncated and the reservation bookkeeping is no longer needed.
func (a RCost[C]) Collapse() C {
	if a.kind != rcostCost {
		panic(ErrBadRCostCombination)
	}
	return a.cost + a.r
}

// Plus implements the four composition rules:
//
//	Cost{c,r,false} + Add{dc,max}      = Cost{c, r+dc, false}   if r+dc <= max
//	                                     Cost{c+dc, r, true}     otherwise
//	Cost{c,r,true}  + Add{dc,_}        = Cost{c+dc, r, true}
//	Cost{c,r,_}     + AddBlocked{dc}   = Cost{c+dc, r, true}
//	Cost{c1,r1,b1}  + Cost{c2,r2,b2}   = Cost{c1+c2, r1+r2, b1||b2}  (path concatenation)
//
// Any other pairing panics with ErrBadRCostCombination.
func (a RCost[C]) Plus(b RCost[C]) RCost[C] {
	switch {
	case a.kind == rcostCost && b.kind == rcostAdd:
		if !a.blocked {
			if sum := a.r + b.dc; sum <= b.max {
				return RCost[C]{kind: rcostCost, cost: a.cost, r: sum, blocked: false}
			}
			return RCost[C]{kind: rcostCost, cost: a.cost + b.dc, r: a.r, blocked: true}
		}
		return RCost[C]{kind: rcostCost, cost: a.cost + b.dc, r: a.r, blocked: true}
	case a.kind == rcostCost && b.kind == rcostAddBlocked:
		return RCost[C]{kind: rcostCost, cost: a.cost + b.dc, r: a.r, blocked: true}
	case a.kind == rcostCost && b.kind == rcostCost:
		return RCost[C]{kind: rcostCost, cost: a.cost + b.cost, r: a.r + b.r, blocked: a.blocked || b.blocked}
	default:
		panic(ErrBadRCostCombination)
	}
}

// Less implements the lexicographic order on (blocked, cost, r), unblocked
// preferred, used by pathfind's open-set ordering: among explored prefixes,
// paths that finish inside the budget beat paths that don't, and among
// those, cheaper (and then lower-reservation-spend) paths win.
func (a RCost[C]) Less(b RCost[C]) bool {
	if a.kind != rcostCost || b.kind != rcostCost {
		panic(ErrBadRCostCombination)
	}
	if a.blocked != b.blocked {
		return !a.blocked // unblocked (false) sorts first
	}
	if a.cost != b.cost {
		return a.cost < b.cost
	}
	return a.r < b.r
}
