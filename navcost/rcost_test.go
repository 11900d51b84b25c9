package navcost_test

import (
	"testing"

	"github.com/euro0217/discrete-multi-nav/navcost"
)

func TestZeroPlusAdd_RCostLaw(t *testing.T) {
	// zero + Add{dc, max} = Cost{0, dc, false} if dc <= max, else
	// Cost{dc, 0, true}.
	cases := []struct {
		dc, max         int64
		wantCost, wantR int64
		wantBlocked     bool
	}{
		{dc: 3, max: 5, wantCost: 0, wantR: 3, wantBlocked: false},
		{dc: 5, max: 5, wantCost: 0, wantR: 5, wantBlocked: false},
		{dc: 6, max: 5, wantCost: 6, wantR: 0, wantBlocked: true},
	}
	for _, tc := range cases {
		got := navcost.Zero[int64]().Plus(navcost.Add(tc.dc, tc.max))
		if got.Collapse() != tc.wantCost+tc.wantR {
			t.Fatalf("dc=%d max=%d: Collapse() = %d, want %d", tc.dc, tc.max, got.Collapse(), tc.wantCost+tc.wantR)
		}
		if got.IsBlocked() != tc.wantBlocked {
			t.Fatalf("dc=%d max=%d: blocked = %v, want %v", tc.dc, tc.max, got.IsBlocked(), tc.wantBlocked)
		}
	}
}

func TestBlockedStaysBlocked(t *testing.T) {
	blocked := navcost.CostOf(int64(2), int64(1), true)
	got := blocked.Plus(navcost.Add(int64(4), int64(100)))
	if !got.IsBlocked() {
		t.Fatalf("once blocked, must stay blocked")
	}
	if got.Collapse() != 2+4+1 {
		t.Fatalf("Collapse() = %d, want %d", got.Collapse(), 2+4+1)
	}
}

func TestAddBlockedAlwaysBlocks(t *testing.T) {
	unblocked := navcost.CostOf(int64(10), int64(2), false)
	got := unblocked.Plus(navcost.AddBlocked[int64](3))
	if !got.IsBlocked() {
		t.Fatalf("AddBlocked must force blocked=true")
	}
	if got.Collapse() != 10+3+2 {
		t.Fatalf("Collapse() = %d, want %d", got.Collapse(), 15)
	}
}

func TestCostConcatenation(t *testing.T) {
	a := navcost.CostOf(int64(3), int64(1), false)
	b := navcost.CostOf(int64(4), int64(2), true)
	got := a.Plus(b)
	if got.Collapse() != 7+3 {
		t.Fatalf("Collapse() = %d, want %d", got.Collapse(), 10)
	}
	if !got.IsBlocked() {
		t.Fatalf("blocked should OR together: true")
	}
}

func TestBadCombinationPanics(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Fatalf("expected panic for Add+Add")
		}
	}()
	navcost.Add(int64(1), int64(2)).Plus(navcost.Add(int64(1), int64(2)))
}

func TestLessOrdering(t *testing.T) {
	unblockedCheap := navcost.CostOf(int64(1), int64(0), false)
	unblockedExpensive := navcost.CostOf(int64(5), int64(0), false)
	blockedCheap := navcost.CostOf(int64(1), int64(0), true)

	if !unblockedCheap.Less(unblockedExpensive) {
		t.Fatalf("cheaper unblocked path should sort first")
	}
	if !unblockedExpensive.Less(blockedCheap) {
		t.Fatalf("any unblocked path should sort before any blocked path")
	}
	if blockedCheap.Less(unblockedExpensive) {
		t.Fatalf("blocked must never sort before unblocked")
	}
}
