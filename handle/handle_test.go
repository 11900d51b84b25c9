package handle_test

import (
	"testing"

	"github.com/euro0217/discrete-multi-nav/handle"
)

type agentKind struct{}

func TestNull(t *testing.T) {
	null := handle.Null[agentKind]()
	if !null.IsNull() {
		t.Fatalf("Null() should report IsNull() == true")
	}

	h := handle.New[agentKind](0)
	if h.IsNull() {
		t.Fatalf("handle 0 must not be null")
	}
}

func TestDistinctHandlesCompareUnequal(t *testing.T) {
	a := handle.New[agentKind](1)
	b := handle.New[agentKind](2)
	if a == b {
		t.Fatalf("distinct handles must compare unequal")
	}
	if a != handle.New[agentKind](1) {
		t.Fatalf("equal ids must compare equal")
	}
}

func TestLessOrdersByID(t *testing.T) {
	a := handle.New[agentKind](1)
	b := handle.New[agentKind](2)
	if !a.Less(b) {
		t.Fatalf("expected 1 < 2")
	}
	if b.Less(a) {
		t.Fatalf("expected 2 !< 1")
	}
}

func TestStringDoesNotPanic(t *testing.T) {
	if got := handle.Null[agentKind]().String(); got == "" {
		t.Fatalf("String() must not be empty")
	}
	if got := handle.New[agentKind](42).String(); got == "" {
		t.Fatalf("String() must not be empty")
	}
}
