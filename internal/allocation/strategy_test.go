package allocation

import (
	"errors"
	"math"
	"testing"
)

func shares(n int) []Share {
	return make([]Share, n)
}

func TestFactory(t *testing.T) {
	f := NewFactory()

	for _, m := range []Method{MethodEqually, MethodPercentage, MethodFixedAmount} {
		s, err := f.Create(m)
		if err != nil {
			t.Fatalf("Create(%s) returned error: %v", m, err)
		}
		if s.Method() != m {
			t.Errorf("Create(%s).Method() = %s", m, s.Method())
		}
	}

	if _, err := f.CreateFromString("by_vibes"); !errors.Is(err, ErrUnknownMethod) {
		t.Errorf("CreateFromString with bogus method: err = %v, want ErrUnknownMethod", err)
	}
}

func TestEquallyAllocate(t *testing.T) {
	tests := []struct {
		name  string
		n     int
		total float64
	}{
		{"one participant", 1, 100},
		{"three participants", 3, 100},
		{"seven participants", 7, 1500},
		{"zero total", 4, 0},
	}

	s := &EquallyStrategy{}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := s.Allocate(tt.total, shares(tt.n))
			if err != nil {
				t.Fatalf("Allocate returned error: %v", err)
			}

			var sumAmount, sumPercent float64
			for _, sh := range out {
				if math.Abs(sh.Amount-tt.total/float64(tt.n)) > 0.001 {
					t.Errorf("share amount = %v, want %v", sh.Amount, tt.total/float64(tt.n))
				}
				sumAmount += sh.Amount
				sumPercent += sh.Percent
			}
			if math.Abs(sumAmount-tt.total) > 0.01 {
				t.Errorf("shares sum to %v, want %v", sumAmount, tt.total)
			}
			if math.Abs(sumPercent-100) > 0.01 {
				t.Errorf("percents sum to %v, want 100", sumPercent)
			}
		})
	}

	if _, err := s.Allocate(100, nil); !errors.Is(err, ErrNoParticipants) {
		t.Errorf("Allocate with no participants: err = %v, want ErrNoParticipants", err)
	}
	if _, err := s.Allocate(-1, shares(2)); !errors.Is(err, ErrNegativeTotal) {
		t.Errorf("Allocate with negative total: err = %v, want ErrNegativeTotal", err)
	}
}

func TestPercentageAllocate(t *testing.T) {
	s := &PercentageStrategy{}

	t.Run("seven participants, base 14 remainder 2", func(t *testing.T) {
		out, err := s.Allocate(700, shares(7))
		if err != nil {
			t.Fatalf("Allocate returned error: %v", err)
		}

		want := []float64{15, 15, 14, 14, 14, 14, 14}
		var sum float64
		for i, sh := range out {
			if sh.Percent != want[i] {
				t.Errorf("participant %d percent = %v, want %v", i, sh.Percent, want[i])
			}
			if math.Abs(sh.Amount-(want[i]/100)*700) > 0.001 {
				t.Errorf("participant %d amount = %v, want %v", i, sh.Amount, (want[i]/100)*700)
			}
			sum += sh.Percent
		}
		if sum != 100 {
			t.Errorf("percents sum to %v, want exactly 100", sum)
		}
	})

	// Integer arithmetic means no drift for any participant count.
	t.Run("sum is exactly 100 for N 1..20", func(t *testing.T) {
		for n := 1; n <= 20; n++ {
			out, err := s.Allocate(100, shares(n))
			if err != nil {
				t.Fatalf("N=%d: %v", n, err)
			}
			var sum float64
			for _, sh := range out {
				sum += sh.Percent
			}
			if sum != 100 {
				t.Errorf("N=%d: percents sum to %v, want exactly 100", n, sum)
			}
		}
	})
}

func TestFixedAmountAllocate(t *testing.T) {
	s := &FixedAmountStrategy{}

	current := []Share{{Amount: 70}, {Amount: 20}, {Amount: 10}}
	out, err := s.Allocate(100, current)
	if err != nil {
		t.Fatalf("Allocate returned error: %v", err)
	}

	wantPercents := []float64{70, 20, 10}
	for i, sh := range out {
		if sh.Amount != current[i].Amount {
			t.Errorf("participant %d amount = %v, want unchanged %v", i, sh.Amount, current[i].Amount)
		}
		if math.Abs(sh.Percent-wantPercents[i]) > 0.001 {
			t.Errorf("participant %d percent = %v, want %v", i, sh.Percent, wantPercents[i])
		}
	}

	// Zero total must not divide by zero.
	out, err = s.Allocate(0, []Share{{Amount: 0}, {Amount: 0}})
	if err != nil {
		t.Fatalf("Allocate with zero total returned error: %v", err)
	}
	for i, sh := range out {
		if sh.Percent != 0 {
			t.Errorf("participant %d percent = %v, want 0 for zero total", i, sh.Percent)
		}
	}
}
