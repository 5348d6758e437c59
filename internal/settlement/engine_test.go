package settlement

import (
	"math"
	"math/rand"
	"testing"
)

func TestSettleDinnerAtSakura(t *testing.T) {
	expenses := []Expense{
		{Payer: "Sarah Williams", Amount: 750},
		{Payer: "Mike Torres", Amount: 750},
	}
	participants := []string{"Sarah Williams", "Mike Torres", "You"}

	result, err := Settle(expenses, participants)
	if err != nil {
		t.Fatalf("Settle returned error: %v", err)
	}

	if result.Total != 1500 {
		t.Errorf("Total = %v, want 1500", result.Total)
	}
	if result.SharePerPerson != 500 {
		t.Errorf("SharePerPerson = %v, want 500", result.SharePerPerson)
	}

	want := map[string]struct {
		net   float64
		class Classification
	}{
		"Sarah Williams": {250, Creditor},
		"Mike Torres":    {250, Creditor},
		"You":            {-500, Debtor},
	}
	for name, w := range want {
		pos, ok := result.Position(name)
		if !ok {
			t.Fatalf("no position for %s", name)
		}
		if math.Abs(pos.Net-w.net) > 0.01 {
			t.Errorf("%s net = %v, want %v", name, pos.Net, w.net)
		}
		if pos.Classification != w.class {
			t.Errorf("%s classification = %s, want %s", name, pos.Classification, w.class)
		}
	}

	you, _ := result.Position("You")
	if you.StatusLine() != "Owes € 500.00" {
		t.Errorf("You status line = %q, want %q", you.StatusLine(), "Owes € 500.00")
	}
	sarah, _ := result.Position("Sarah Williams")
	if sarah.StatusLine() != "Creditor (+€ 250.00)" {
		t.Errorf("Sarah status line = %q", sarah.StatusLine())
	}
}

func TestSettleDivisorIsUnionOfPayersAndDeclared(t *testing.T) {
	// Charlie never contributed and was never declared a payer; Dana paid
	// but was never declared. Both count toward the divisor, as does "You".
	expenses := []Expense{{Payer: "Dana", Amount: 400}}
	participants := []string{"Alice", "Charlie"}

	result, err := Settle(expenses, participants)
	if err != nil {
		t.Fatalf("Settle returned error: %v", err)
	}

	if len(result.Positions) != 4 {
		t.Fatalf("got %d positions, want 4 (Alice, Charlie, Dana, You)", len(result.Positions))
	}
	if result.SharePerPerson != 100 {
		t.Errorf("SharePerPerson = %v, want 100", result.SharePerPerson)
	}
	dana, _ := result.Position("Dana")
	if dana.Classification != Creditor || math.Abs(dana.Net-300) > 0.01 {
		t.Errorf("Dana position = %+v, want creditor +300", dana)
	}
	for _, name := range []string{"Alice", "Charlie", "You"} {
		pos, _ := result.Position(name)
		if pos.Classification != Debtor || math.Abs(pos.Net+100) > 0.01 {
			t.Errorf("%s position = %+v, want debtor -100", name, pos)
		}
	}
}

func TestSettleIsOrderIndependent(t *testing.T) {
	expenses := []Expense{
		{Payer: "Alice", Amount: 120},
		{Payer: "Bob", Amount: 80},
		{Payer: "Alice", Amount: 55.50},
		{Payer: "Charlie", Amount: 14.50},
	}
	participants := []string{"Alice", "Bob", "Charlie"}

	baseline, err := Settle(expenses, participants)
	if err != nil {
		t.Fatalf("Settle returned error: %v", err)
	}

	rng := rand.New(rand.NewSource(42))
	for trial := 0; trial < 10; trial++ {
		shuffled := make([]Expense, len(expenses))
		copy(shuffled, expenses)
		rng.Shuffle(len(shuffled), func(i, j int) {
			shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
		})

		result, err := Settle(shuffled, participants)
		if err != nil {
			t.Fatalf("trial %d: %v", trial, err)
		}
		for _, want := range baseline.Positions {
			got, ok := result.Position(want.Name)
			if !ok {
				t.Fatalf("trial %d: missing position for %s", trial, want.Name)
			}
			if math.Abs(got.Net-want.Net) > 0.001 {
				t.Errorf("trial %d: %s net = %v, want %v", trial, want.Name, got.Net, want.Net)
			}
		}
	}
}

func TestSettleAlwaysIncludesSelf(t *testing.T) {
	result, err := Settle(nil, nil)
	if err != nil {
		t.Fatalf("Settle returned error: %v", err)
	}
	if len(result.Positions) != 1 || result.Positions[0].Name != Self {
		t.Fatalf("positions = %+v, want just %q", result.Positions, Self)
	}
	if result.Positions[0].Classification != Settled {
		t.Errorf("empty split should leave %q settled", Self)
	}
}

func TestSettleIsIdempotent(t *testing.T) {
	expenses := []Expense{{Payer: "You", Amount: 90}}
	participants := []string{"You", "Mike"}

	first, err := Settle(expenses, participants)
	if err != nil {
		t.Fatal(err)
	}
	second, err := Settle(expenses, participants)
	if err != nil {
		t.Fatal(err)
	}
	if len(first.Positions) != len(second.Positions) {
		t.Fatal("recomputation changed position count")
	}
	for i := range first.Positions {
		if first.Positions[i] != second.Positions[i] {
			t.Errorf("position %d differs between runs: %+v vs %+v",
				i, first.Positions[i], second.Positions[i])
		}
	}
}
