// Package reservation implements the seat/cell reservation ledger: which
// handle currently owns each seat, and a schedule of future releases.
package reservation

import (
	"container/heap"

	"github.com/euro0217/discrete-multi-nav/handle"
	"github.com/euro0217/discrete-multi-nav/navcost"
)

type releaseEvent[C navcost.Cost, SI comparable, T any] struct {
	at    C
	owner handle.Handle[T]
	seat  SI
}

type releaseHeap[C navcost.Cost, SI comparable, T any] []releaseEvent[C, SI, T]

func (h releaseHeap[C, SI, T]) Len() int { return len(h) }

func (h releaseHeap[C, SI, T]) Less(i, j int) bool { return h[i].at < h[j].at }

func (h releaseHeap[C, SI, T]) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *releaseHeap[C, SI, T]) Push(x any) {
	*h = append(*h, x.(releaseEvent[C, SI, T]))
}

func (h *releaseHeap[C, SI, T]) Pop() any {
	old := *h
	n := len(old)
	it := old[n-1]
	*h = old[:n-1]
	return it
}

// Ledger tracks per-seat ownership and a schedule of future releases. It
// has no opinion on whether an acquisition is "allowed"; callers check
// IsFreeFor themselves before calling Acquire.
type Ledger[C navcost.Cost, SI comparable, T any] struct {
	owners   map[SI]handle.Handle[T]
	releases releaseHeap[C, SI, T]
}

// NewLedger returns an empty ledger.
func NewLedger[C navcost.Cost, SI comparable, T any]() *Ledger[C, SI, T] {
	return &Ledger[C, SI, T]{owners: make(map[SI]handle.Handle[T])}
}

// IsFreeFor reports whether seat is unowned or already owned by owner.
func (l *Ledger[C, SI, T]) IsFreeFor(seat SI, owner handle.Handle[T]) bool {
	cur, ok := l.owners[seat]
	return !ok || cur == owner
}

// Acquire sets owner as seat's owner. Acquiring a seat already owned by a
// different handle is a caller error: check IsFreeFor first.
func (l *Ledger[C, SI, T]) Acquire(seat SI, owner handle.Handle[T]) {
	l.owners[seat] = owner
}

// ScheduleRelease queues a future release of seat, to fire once ReleaseDue
// is called with a time at or past at. A seat may have several pending
// release events outstanding at once; only the earliest still-unpopped
// one for that seat matters, and every later one is still tested against
// its own recorded owner when it is eventually popped.
func (l *Ledger[C, SI, T]) ScheduleRelease(seat SI, owner handle.Handle[T], at C) {
	heap.Push(&l.releases, releaseEvent[C, SI, T]{at: at, owner: owner, seat: seat})
}

// HoldForever acquires seat with no scheduled release: used for an
// agent's resting footprint, which is only released when the agent
// departs or is removed.
func (l *Ledger[C, SI, T]) HoldForever(seat SI, owner handle.Handle[T]) {
	l.Acquire(seat, owner)
}

// ReleaseDue pops every scheduled release whose time is at most now,
// clearing the owner of each popped seat — but only if that seat's
// current owner still matches the one recorded on the event. A mismatch
// means the seat has since been reacquired (by its own agent's re-plan,
// or another agent entirely) and this release is stale; it is silently
// dropped rather than clobbering the new owner.
func (l *Ledger[C, SI, T]) ReleaseDue(now C) {
	for len(l.releases) > 0 && l.releases[0].at <= now {
		ev := heap.Pop(&l.releases).(releaseEvent[C, SI, T])
		if cur, ok := l.owners[ev.seat]; ok && cur == ev.owner {
			delete(l.owners, ev.seat)
		}
	}
}

// Release immediately clears owner's ownership of seat, if owner still
// owns it; a mismatched or absent owner is a no-op, mirroring the
// mismatch tolerance ReleaseDue applies to stale scheduled releases.
func (l *Ledger[C, SI, T]) Release(seat SI, owner handle.Handle[T]) {
	if cur, ok := l.owners[seat]; ok && cur == owner {
		delete(l.owners, seat)
	}
}

// OwnerOf returns seat's current owner, if any.
func (l *Ledger[C, SI, T]) OwnerOf(seat SI) (handle.Handle[T], bool) {
	h, ok := l.owners[seat]
	return h, ok
}
