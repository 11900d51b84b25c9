package navends_test

import (
	"errors"
	"testing"

	"github.com/euro0217/discrete-multi-nav/navends"
)

type coord struct{ X, Y int }

func TestEmptyByDefault(t *testing.T) {
	e := navends.New[coord, int64]()
	if !e.IsEmpty() {
		t.Fatalf("fresh MultipleEnds must be empty")
	}
	if e.Len() != 0 {
		t.Fatalf("Len() = %d, want 0", e.Len())
	}
}

func TestSetAndPenalty(t *testing.T) {
	e := navends.New[coord, int64]()
	if err := e.Set(coord{1, 2}, 10); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if e.IsEmpty() {
		t.Fatalf("MultipleEnds with one goal must not be empty")
	}
	p, ok := e.Penalty(coord{1, 2})
	if !ok || p != 10 {
		t.Fatalf("Penalty() = (%d, %v), want (10, true)", p, ok)
	}
	if _, ok := e.Penalty(coord{9, 9}); ok {
		t.Fatalf("Penalty() for unregistered node should report ok=false")
	}
}

func TestSetRejectsNegativePenalty(t *testing.T) {
	e := navends.New[coord, int64]()
	err := e.Set(coord{0, 0}, -1)
	if !errors.Is(err, navends.ErrNegativePenalty) {
		t.Fatalf("expected ErrNegativePenalty, got %v", err)
	}
	if !e.IsEmpty() {
		t.Fatalf("a rejected Set must not mutate the goal set")
	}
}

func TestSetOverwritesPenalty(t *testing.T) {
	e := navends.New[coord, int64]()
	_ = e.Set(coord{1, 1}, 5)
	_ = e.Set(coord{1, 1}, 2)
	p, _ := e.Penalty(coord{1, 1})
	if p != 2 {
		t.Fatalf("Penalty() = %d, want 2 (last write wins)", p)
	}
	if e.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", e.Len())
	}
}

func TestZeroValueIsUsable(t *testing.T) {
	var e navends.MultipleEnds[coord, int64]
	if !e.IsEmpty() {
		t.Fatalf("zero value must be empty")
	}
	if err := e.Set(coord{0, 0}, 1); err != nil {
		t.Fatalf("Set() on zero value error = %v", err)
	}
}
