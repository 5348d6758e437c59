package split

import (
	"math"
	"testing"

	"github.com/maxiapp/maxi/internal/allocation"
)

const epsilon = 1e-9

func testSplit(total float64, percents []float64) *Split {
	sp := &Split{Total: total}
	for i, pct := range percents {
		sp.Participants = append(sp.Participants, &Participant{
			Name:    string(rune('A' + i)),
			Percent: pct,
			Share:   total * pct / 100,
		})
	}
	return sp
}

func TestApplyMethodEqually(t *testing.T) {
	sp := testSplit(100, []float64{0, 0, 0})
	factory := allocation.NewFactory()

	if err := sp.ApplyMethod(allocation.MethodEqually, factory); err != nil {
		t.Fatalf("ApplyMethod: %v", err)
	}

	var sum float64
	for i, p := range sp.Participants {
		if math.Abs(p.Percent-100.0/3) > epsilon {
			t.Errorf("participant %d percent = %v, want 100/3", i, p.Percent)
		}
		if math.Abs(p.Share-100.0/3) > epsilon {
			t.Errorf("participant %d share = %v, want 100/3", i, p.Share)
		}
		sum += p.Share
	}
	if math.Abs(sum-100) > epsilon {
		t.Errorf("shares sum = %v, want 100", sum)
	}
	if ok, _ := sp.Reconcile(); !ok {
		t.Error("full-precision equal shares must reconcile")
	}
}

func TestApplyMethodPercentage(t *testing.T) {
	sp := testSplit(100, []float64{0, 0, 0})
	factory := allocation.NewFactory()

	if err := sp.ApplyMethod(allocation.MethodPercentage, factory); err != nil {
		t.Fatalf("ApplyMethod: %v", err)
	}

	wantPercents := []float64{34, 33, 33}
	for i, p := range sp.Participants {
		if p.Percent != wantPercents[i] {
			t.Errorf("participant %d percent = %v, want %v", i, p.Percent, wantPercents[i])
		}
	}
}

func TestApplyMethodUnknown(t *testing.T) {
	sp := testSplit(100, []float64{50, 50})
	if err := sp.ApplyMethod("randomly", allocation.NewFactory()); err == nil {
		t.Fatal("expected error for unknown method")
	}
}

func TestAdjustPercentageStep(t *testing.T) {
	// Three participants: the step is 2 points, compensated 1 point each.
	sp := testSplit(100, []float64{34, 33, 33})

	sp.AdjustPercentage(0, 1)

	wantPercents := []float64{36, 32, 32}
	wantShares := []float64{36, 32, 32}
	for i, p := range sp.Participants {
		if p.Percent != wantPercents[i] {
			t.Errorf("participant %d percent = %v, want %v", i, p.Percent, wantPercents[i])
		}
		if math.Abs(p.Share-wantShares[i]) > epsilon {
			t.Errorf("participant %d share = %v, want %v", i, p.Share, wantShares[i])
		}
	}
}

func TestAdjustPercentageDown(t *testing.T) {
	sp := testSplit(100, []float64{34, 33, 33})

	sp.AdjustPercentage(1, -1)

	wantPercents := []float64{35, 31, 34}
	for i, p := range sp.Participants {
		if p.Percent != wantPercents[i] {
			t.Errorf("participant %d percent = %v, want %v", i, p.Percent, wantPercents[i])
		}
	}
}

func TestAdjustPercentageTargetClamp(t *testing.T) {
	tests := []struct {
		name      string
		percents  []float64
		index     int
		direction int
	}{
		{"over 100", []float64{99, 1, 0}, 0, 1},
		{"under 0", []float64{99, 1, 0}, 2, -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sp := testSplit(100, tt.percents)
			before := make([]float64, len(sp.Participants))
			for i, p := range sp.Participants {
				before[i] = p.Percent
			}

			sp.AdjustPercentage(tt.index, tt.direction)

			for i, p := range sp.Participants {
				if p.Percent != before[i] {
					t.Errorf("participant %d percent changed to %v, want no-op", i, p.Percent)
				}
			}
		})
	}
}

func TestAdjustPercentageCompensationClampDrifts(t *testing.T) {
	// The zero participant cannot give up a point, so the total drifts to
	// 101 and reconciliation must flag it.
	sp := testSplit(100, []float64{50, 50, 0})

	sp.AdjustPercentage(0, 1)

	wantPercents := []float64{52, 49, 0}
	for i, p := range sp.Participants {
		if p.Percent != wantPercents[i] {
			t.Errorf("participant %d percent = %v, want %v", i, p.Percent, wantPercents[i])
		}
	}
	ok, remainder := sp.Reconcile()
	if ok {
		t.Error("expected reconciliation failure after clamped compensation")
	}
	if math.Abs(remainder+1) > epsilon {
		t.Errorf("remainder = %v, want -1", remainder)
	}
}

func TestAdjustPercentageBadInput(t *testing.T) {
	sp := testSplit(100, []float64{50, 50})
	for _, tt := range []struct{ index, direction int }{
		{-1, 1}, {2, 1}, {0, 0}, {0, 2},
	} {
		sp.AdjustPercentage(tt.index, tt.direction)
	}
	if sp.Participants[0].Percent != 50 || sp.Participants[1].Percent != 50 {
		t.Error("bad input should leave percents untouched")
	}
}

func TestAdjustAmountRedistributes(t *testing.T) {
	sp := testSplit(90, []float64{34, 33, 33})
	for i, share := range []float64{30, 30, 30} {
		sp.Participants[i].Share = share
	}

	sp.AdjustAmount(0, 60)

	wantShares := []float64{60, 15, 15}
	var sum float64
	for i, p := range sp.Participants {
		if math.Abs(p.Share-wantShares[i]) > epsilon {
			t.Errorf("participant %d share = %v, want %v", i, p.Share, wantShares[i])
		}
		sum += p.Share
	}
	if math.Abs(sum-90) > epsilon {
		t.Errorf("shares sum = %v, want 90", sum)
	}
	if math.Abs(sp.Participants[0].Percent-100*60.0/90.0) > epsilon {
		t.Errorf("percent not re-derived from share: %v", sp.Participants[0].Percent)
	}

	if ok, _ := sp.Reconcile(); !ok {
		t.Error("amount adjustment preserves the sum; reconcile should pass")
	}
}

func TestAdjustAmountBadIndex(t *testing.T) {
	sp := testSplit(90, []float64{50, 50})
	sp.AdjustAmount(5, 10)
	if sp.Participants[0].Share != 45 {
		t.Error("bad index should leave shares untouched")
	}
}

func TestReconcileWithinTolerance(t *testing.T) {
	sp := testSplit(100, []float64{0, 0, 0})
	for _, p := range sp.Participants {
		p.Share = 33.33
	}

	ok, remainder := sp.Reconcile()
	if !ok {
		t.Error("0.01 remainder is within tolerance")
	}
	if math.Abs(remainder-0.01) > epsilon {
		t.Errorf("remainder = %v, want 0.01", remainder)
	}
}
