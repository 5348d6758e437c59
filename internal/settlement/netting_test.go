package settlement

import (
	"math"
	"testing"
)

func TestSimplifyDebtsParisTrip(t *testing.T) {
	// Dinner €300 paid by Alice, drinks €100 paid by Bob, split three ways.
	net := map[string]float64{
		"Alice":   166.67,
		"Bob":     -33.33,
		"Charlie": -133.34,
	}

	plan := SimplifyDebts(net)
	if len(plan) != 2 {
		t.Fatalf("plan has %d transfers, want 2: %+v", len(plan), plan)
	}

	// Largest debt is matched first.
	if plan[0].From != "Charlie" || plan[0].To != "Alice" || math.Abs(plan[0].Amount-133.34) > 0.01 {
		t.Errorf("plan[0] = %+v, want Charlie -> Alice 133.34", plan[0])
	}
	if plan[1].From != "Bob" || plan[1].To != "Alice" || math.Abs(plan[1].Amount-33.33) > 0.01 {
		t.Errorf("plan[1] = %+v, want Bob -> Alice 33.33", plan[1])
	}
}

func TestSimplifyDebtsSplitsAcrossCreditors(t *testing.T) {
	net := map[string]float64{
		"Dana": -100,
		"Eve":  60,
		"Finn": 40,
	}

	plan := SimplifyDebts(net)
	if len(plan) != 2 {
		t.Fatalf("plan has %d transfers, want 2: %+v", len(plan), plan)
	}
	if plan[0] != (Transfer{From: "Dana", To: "Eve", Amount: 60}) {
		t.Errorf("plan[0] = %+v", plan[0])
	}
	if plan[1] != (Transfer{From: "Dana", To: "Finn", Amount: 40}) {
		t.Errorf("plan[1] = %+v", plan[1])
	}
}

func TestSimplifyDebtsIgnoresNoise(t *testing.T) {
	net := map[string]float64{
		"Alice": 0.004,
		"Bob":   -0.004,
	}
	if plan := SimplifyDebts(net); len(plan) != 0 {
		t.Errorf("near-zero balances produced transfers: %+v", plan)
	}

	if plan := SimplifyDebts(nil); len(plan) != 0 {
		t.Errorf("empty input produced transfers: %+v", plan)
	}
}

func TestSimplifyDebtsDeterministicOnTies(t *testing.T) {
	net := map[string]float64{
		"Zed": -50,
		"Amy": -50,
		"Pat": 100,
	}
	for i := 0; i < 5; i++ {
		plan := SimplifyDebts(net)
		if len(plan) != 2 {
			t.Fatalf("plan has %d transfers, want 2", len(plan))
		}
		if plan[0].From != "Amy" || plan[1].From != "Zed" {
			t.Fatalf("tied debtors not ordered by name: %+v", plan)
		}
	}
}
