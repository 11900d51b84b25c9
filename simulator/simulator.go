// Package simulator drives the discrete-time tick loop: placing agents,
// planning and committing their reservations, advancing arrivals, and
// retiring removed agents, all against a navmap.Map and a
// reservation.Ledger.
package simulator

import (
	"iter"

	"github.com/euro0217/discrete-multi-nav/agent"
	"github.com/euro0217/discrete-multi-nav/handle"
	"github.com/euro0217/discrete-multi-nav/navcost"
	"github.com/euro0217/discrete-multi-nav/navends"
	"github.com/euro0217/discrete-multi-nav/navmap"
	"github.com/euro0217/discrete-multi-nav/pathfind"
	"github.com/euro0217/discrete-multi-nav/reservation"
)

// SeatTime is one cell a dry-run movement touches, with its intra-hop
// offset cost (when the hop reaches it, relative to the hop's start), or
// HasTime=false for a resting (hold-forever) cell.
type SeatTime[SI comparable, C navcost.Cost] struct {
	Seat    SI
	HasTime bool
	Time    C
}

// Movement is a dry-run description of one edge: the node it lands on
// and every cell it would touch, in sweep order followed by the landing
// footprint.
type Movement[N any, SI comparable, C navcost.Cost] struct {
	Node  N
	Seats []SeatTime[SI, C]
}

// Simulator is the top-level object: it owns the map, the reservation
// ledger, and every agent record, and advances them one Step at a time.
type Simulator[N comparable, C navcost.Cost, SI comparable, I comparable, T any, M navmap.Map[N, C, SI, I, T]] struct {
	time               C
	m                  M
	ledger             *reservation.Ledger[C, SI, T]
	agents             map[handle.Handle[T]]*agent.Record[N, C, T]
	queue              []handle.Handle[T]
	maxReservationTime C
}

// New returns a Simulator with no agents, clock set to initTime, over
// map m, with maxReservationTime bounding how far any single plan may
// reserve into occupied territory.
func New[N comparable, C navcost.Cost, SI comparable, I comparable, T any, M navmap.Map[N, C, SI, I, T]](initTime C, m M, maxReservationTime C) *Simulator[N, C, SI, I, T, M] {
	return &Simulator[N, C, SI, I, T, M]{
		time:               initTime,
		m:                  m,
		ledger:             reservation.NewLedger[C, SI, T](),
		agents:             make(map[handle.Handle[T]]*agent.Record[N, C, T]),
		maxReservationTime: maxReservationTime,
	}
}

// Time returns the current clock.
func (s *Simulator[N, C, SI, I, T, M]) Time() C {
	return s.time
}

// Map returns the map this simulator runs over.
func (s *Simulator[N, C, SI, I, T, M]) Map() M {
	return s.m
}

// Add registers a new agent at node with the given destination queue and
// enqueues it for placement. The returned handle follows the
// low-edge-then-high-edge allocation policy.
func (s *Simulator[N, C, SI, I, T, M]) Add(payload T, node N, destinations []navends.MultipleEnds[N, C]) handle.Handle[T] {
	h := s.newHandle()
	s.agents[h] = agent.NewRecord[N, C, T](payload, node, destinations)
	s.queue = append(s.queue, h)
	return h
}

func (s *Simulator[N, C, SI, I, T, M]) newHandle() handle.Handle[T] {
	if len(s.agents) == 0 {
		return handle.New[T](0)
	}
	var min, max uint32
	first := true
	for h := range s.agents {
		v := h.Value()
		if first || v < min {
			min = v
		}
		if first || v > max {
			max = v
		}
		first = false
	}
	if min > 0 {
		return handle.New[T](min - 1)
	}
	return handle.New[T](max + 1)
}

// Agent returns the record for h, if it's still live.
func (s *Simulator[N, C, SI, I, T, M]) Agent(h handle.Handle[T]) (*agent.Record[N, C, T], bool) {
	r, ok := s.agents[h]
	return r, ok
}

// Agents returns the live agent table. Callers must not mutate it
// directly; use Add/Remove/AgentDestinations instead.
func (s *Simulator[N, C, SI, I, T, M]) Agents() map[handle.Handle[T]]*agent.Record[N, C, T] {
	return s.agents
}

// AgentDestinations returns a pointer to h's destination queue so callers
// can push additional goals onto the front or back of it, or false if h
// is not live.
func (s *Simulator[N, C, SI, I, T, M]) AgentDestinations(h handle.Handle[T]) (*[]navends.MultipleEnds[N, C], bool) {
	r, ok := s.agents[h]
	if !ok {
		return nil, false
	}
	return &r.Destinations, true
}

// Remove flags h for destruction; the record is actually removed the
// next time it reaches Stop. Returns false if h is unknown or was
// already flagged.
func (s *Simulator[N, C, SI, I, T, M]) Remove(h handle.Handle[T]) bool {
	r, ok := s.agents[h]
	if !ok || r.Removing {
		return false
	}
	r.Removing = true
	return true
}

// MovementOf dry-runs edge i from h's last committed node (the tail of
// Nexts if Moving, else Current), reporting the cells it would touch.
// Reports false if h is unknown or edge i doesn't exist from that node.
func (s *Simulator[N, C, SI, I, T, M]) MovementOf(h handle.Handle[T], i I) (Movement[N, SI, C], bool) {
	r, ok := s.agents[h]
	if !ok {
		return Movement[N, SI, C]{}, false
	}
	from := r.Current
	if nexts := r.Nexts(); len(nexts) > 0 {
		from = nexts[len(nexts)-1].Node
	}
	dest, ok := s.m.Successor(from, r.Payload, i)
	if !ok {
		return Movement[N, SI, C]{}, false
	}
	var seats []SeatTime[SI, C]
	for sc := range s.m.SeatsBetween(from, r.Payload, i) {
		seats = append(seats, SeatTime[SI, C]{Seat: sc.Seat, HasTime: true, Time: sc.Cost})
	}
	for seat := range s.m.Seats(dest, r.Payload) {
		seats = append(seats, SeatTime[SI, C]{Seat: seat})
	}
	return Movement[N, SI, C]{Node: dest, Seats: seats}, true
}

// IsEmptyFor reports whether every cell in m is currently acquirable by
// h (unowned, or already owned by h).
func (s *Simulator[N, C, SI, I, T, M]) IsEmptyFor(h handle.Handle[T], m Movement[N, SI, C]) bool {
	for _, st := range m.Seats {
		if !s.ledger.IsFreeFor(st.Seat, h) {
			return false
		}
	}
	return true
}

// Step advances the simulator by one tick: release-due, then
// opportunistic placement/arrival in queue order, then a full drain
// through planning with the failure-before-success requeue.
func (s *Simulator[N, C, SI, I, T, M]) Step() {
	s.ledger.ReleaseDue(s.time)

	for _, h := range s.queue {
		r, ok := s.agents[h]
		if !ok {
			continue
		}
		switch r.State() {
		case agent.NotPlaced:
			if s.footprintFree(h, r) {
				s.placeAgent(h, r)
			}
		case agent.Moving:
			nexts := r.Nexts()
			if len(nexts) > 0 && nexts[0].ArrivalTime <= s.time {
				if _, stillMoving := r.Arrive(); !stillMoving {
					r.PopDestinationIfArrived(atEnd[N, C])
				}
			}
		}
	}

	queue := s.queue
	var failures, successes []handle.Handle[T]
	for _, h := range queue {
		r, ok := s.agents[h]
		if !ok {
			continue
		}
		if r.State() != agent.Stop {
			failures = append(failures, h)
			continue
		}
		if r.Removing {
			s.destroy(h, r)
			continue
		}
		if s.planAndCommit(h, r) {
			successes = append(successes, h)
		} else {
			failures = append(failures, h)
		}
	}
	s.queue = append(failures, successes...)
	s.time++
}

func atEnd[N comparable, C navcost.Cost](n N, e navends.MultipleEnds[N, C]) bool {
	_, ok := e.Penalty(n)
	return ok
}

func (s *Simulator[N, C, SI, I, T, M]) footprintFree(h handle.Handle[T], r *agent.Record[N, C, T]) bool {
	for seat := range s.m.Seats(r.Current, r.Payload) {
		if !s.ledger.IsFreeFor(seat, h) {
			return false
		}
	}
	return true
}

func (s *Simulator[N, C, SI, I, T, M]) placeAgent(h handle.Handle[T], r *agent.Record[N, C, T]) {
	for seat := range s.m.Seats(r.Current, r.Payload) {
		s.ledger.HoldForever(seat, h)
	}
	r.Place()
}

func (s *Simulator[N, C, SI, I, T, M]) destroy(h handle.Handle[T], r *agent.Record[N, C, T]) {
	for seat := range s.m.Seats(r.Current, r.Payload) {
		s.ledger.Release(seat, h)
	}
	delete(s.agents, h)
}

type reservationPlan[SI comparable, C navcost.Cost] struct {
	holdForever bool
	at          C
}

func (s *Simulator[N, C, SI, I, T, M]) planAndCommit(h handle.Handle[T], r *agent.Record[N, C, T]) bool {
	if len(r.Destinations) == 0 {
		return false
	}
	ends := r.Destinations[0]
	kind := r.Payload

	successors := func(n N) iter.Seq[pathfind.SeatEdge[N, C, SI, I]] {
		return func(yield func(pathfind.SeatEdge[N, C, SI, I]) bool) {
			for i, succ := range s.m.Successors(n, kind) {
				var seats []SI
				for sc := range s.m.SeatsBetween(n, kind, i) {
					seats = append(seats, sc.Seat)
				}
				for seat := range s.m.Seats(succ.Node, kind) {
					seats = append(seats, seat)
				}
				e := pathfind.SeatEdge[N, C, SI, I]{Node: succ.Node, Cost: succ.Cost, Seats: seats, Attr: i}
				if !yield(e) {
					return
				}
			}
		}
	}
	isFree := func(seat SI) bool { return s.ledger.IsFreeFor(seat, h) }
	var heuristic func(N) C
	if hfn, ok := s.m.Heuristic(ends); ok {
		heuristic = hfn.Estimate
	}

	path, ok := pathfind.FindNextReservation[N, C, SI, I](r.Current, ends, successors, isFree, s.maxReservationTime, heuristic)
	if !ok || path.Len() == 0 {
		return false
	}

	hops := make([]agent.Hop[N, C], path.Len())
	for idx, hop := range path.All() {
		hops[idx] = agent.Hop[N, C]{Node: hop.Node, ArrivalTime: s.time + hop.Cost}
	}

	reserved := make(map[SI]reservationPlan[SI, C])
	merge := func(seat SI, holdForever bool, at C) {
		if cur, ok := reserved[seat]; ok {
			if cur.holdForever {
				return
			}
			if !holdForever && cur.at >= at {
				return
			}
		}
		reserved[seat] = reservationPlan[SI, C]{holdForever: holdForever, at: at}
	}

	for seat := range s.m.Seats(r.Current, kind) {
		merge(seat, false, s.time)
	}

	prevNode := r.Current
	c0 := s.time
	last := path.Len() - 1
	for idx, hop := range path.All() {
		for sc := range s.m.SeatsBetween(prevNode, kind, hop.Attr) {
			merge(sc.Seat, false, c0+sc.Cost)
		}
		if idx == last {
			for seat := range s.m.Seats(hop.Node, kind) {
				merge(seat, true, c0)
			}
		} else {
			// +1: an intermediate footprint outlives the tick the agent
			// arrives there, not just the arrival instant itself.
			for seat := range s.m.Seats(hop.Node, kind) {
				merge(seat, false, s.time+hop.Cost+1)
			}
		}
		prevNode = hop.Node
		c0 = s.time + hop.Cost
	}

	r.Depart(hops)
	for seat, p := range reserved {
		s.ledger.Acquire(seat, h)
		if !p.holdForever {
			s.ledger.ScheduleRelease(seat, h, p.at)
		}
	}
	return true
}
