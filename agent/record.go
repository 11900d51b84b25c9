// Package agent implements the per-agent state machine the simulator
// drives: NotPlaced, Stop, and Moving, plus the destination queue an
// agent works through.
package agent

import (
	"github.com/euro0217/discrete-multi-nav/navcost"
	"github.com/euro0217/discrete-multi-nav/navends"
)

// State is one of the three states an agent's record can be in.
type State int

const (
	// NotPlaced is the initial state: the agent has not yet acquired its
	// resting footprint.
	NotPlaced State = iota
	// Stop is an agent resting at Current with its footprint held.
	Stop
	// Moving is an agent mid-plan, working through Nexts.
	Moving
)

// String renders a State for logging and debug output.
func (s State) String() string {
	switch s {
	case NotPlaced:
		return "NotPlaced"
	case Stop:
		return "Stop"
	case Moving:
		return "Moving"
	default:
		return "State(?)"
	}
}

// Hop is one planned step: the node the agent will be at, and the
// absolute clock time it arrives there.
type Hop[N any, C navcost.Cost] struct {
	Node        N
	ArrivalTime C
}

// Record is the simulator's per-agent bookkeeping: the payload the
// caller attached to this agent, its current node, its state, its
// planned hops (when Moving), its destination queue, and a removal
// flag the simulator sets but only acts on at the next Stop tick.
type Record[N comparable, C navcost.Cost, T any] struct {
	Payload      T
	Current      N
	state        State
	nexts        []Hop[N, C]
	Destinations []navends.MultipleEnds[N, C]
	Removing     bool
}

// NewRecord returns a freshly constructed, NotPlaced record.
func NewRecord[N comparable, C navcost.Cost, T any](payload T, node N, destinations []navends.MultipleEnds[N, C]) *Record[N, C, T] {
	return &Record[N, C, T]{
		Payload:      payload,
		Current:      node,
		state:        NotPlaced,
		Destinations: destinations,
	}
}

// State returns the agent's current state.
func (r *Record[N, C, T]) State() State {
	return r.state
}

// Nexts returns the agent's planned hops. Only meaningful when
// State() == Moving; empty otherwise.
func (r *Record[N, C, T]) Nexts() []Hop[N, C] {
	return r.nexts
}

// Place transitions NotPlaced -> Stop, once the caller has confirmed the
// resting footprint is free and acquired it.
func (r *Record[N, C, T]) Place() {
	r.state = Stop
}

// Depart transitions Stop -> Moving with the given hops, unless hops is
// empty, in which case it is a no-op (the agent stays Stop: a plan whose
// committable prefix is empty never moves the agent).
func (r *Record[N, C, T]) Depart(hops []Hop[N, C]) {
	if len(hops) == 0 {
		return
	}
	r.nexts = hops
	r.state = Moving
}

// Arrive pops the first planned hop, sets Current to it, and reports
// whether the agent is still Moving afterward (false once nexts is
// drained, at which point the state is set to Stop). Calling Arrive
// while not Moving is a no-op and returns the zero value, false.
func (r *Record[N, C, T]) Arrive() (poppedNode N, stillMoving bool) {
	if r.state != Moving || len(r.nexts) == 0 {
		var zero N
		return zero, false
	}
	hop := r.nexts[0]
	r.nexts = r.nexts[1:]
	r.Current = hop.Node
	if len(r.nexts) == 0 {
		r.state = Stop
		return hop.Node, false
	}
	return hop.Node, true
}

// PopDestinationIfArrived checks whether Current satisfies one of the
// goals of the destination queue's front entry via atEnd, and if so pops
// that entry. It is a no-op when the queue is empty or atEnd reports
// false.
func (r *Record[N, C, T]) PopDestinationIfArrived(atEnd func(N, navends.MultipleEnds[N, C]) bool) {
	if len(r.Destinations) == 0 {
		return
	}
	if atEnd(r.Current, r.Destinations[0]) {
		r.Destinations = r.Destinations[1:]
	}
}
