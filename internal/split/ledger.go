package split

import (
	"github.com/maxiapp/maxi/internal/allocation"
	"github.com/maxiapp/maxi/internal/money"
)

// The participant ledger: allocation-method switches, manual share edits and
// the total-reconciliation check. Every operation here is a total function
// over the split's current state — out-of-range input degrades to a no-op
// and the drift it may leave behind is surfaced by Reconcile, never hidden.

// ApplyMethod switches the allocation method and recomputes every
// participant's percent and share through the matching strategy.
func (s *Split) ApplyMethod(method allocation.Method, factory *allocation.Factory) error {
	strategy, err := factory.Create(method)
	if err != nil {
		return err
	}

	current := make([]allocation.Share, len(s.Participants))
	for i, p := range s.Participants {
		current[i] = allocation.Share{Percent: p.Percent, Amount: p.Share}
	}

	shares, err := strategy.Allocate(s.Total, current)
	if err != nil {
		return err
	}

	s.Method = method
	for i, p := range s.Participants {
		p.Percent = shares[i].Percent
		p.Share = shares[i].Amount
	}
	return nil
}

// AdjustPercentage nudges participant index by direction (+1/-1). The
// nominal step is N-1 points so that the compensating single point taken
// from (or given to) each of the other N-1 participants balances it out.
// Other participants clamp at 0, which can leave the percents summing away
// from 100: that drift is deliberate and shows up in Reconcile.
func (s *Split) AdjustPercentage(index, direction int) {
	n := len(s.Participants)
	if n < 2 || index < 0 || index >= n {
		return
	}
	if direction != 1 && direction != -1 {
		return
	}

	step := float64(direction * (n - 1))
	target := s.Participants[index]
	newPercent := target.Percent + step
	if newPercent < 0 || newPercent > 100 {
		return
	}

	target.Percent = newPercent
	target.Share = money.PercentOf(s.Total, newPercent)

	compensation := float64(-direction)
	for i, p := range s.Participants {
		if i == index {
			continue
		}
		p.Percent += compensation
		if p.Percent < 0 {
			p.Percent = 0
		}
		p.Share = money.PercentOf(s.Total, p.Percent)
	}
}

// AdjustAmount sets participant index's share directly and spreads the
// delta evenly across all other participants in the opposite direction.
// All percents are then re-derived from the shares.
func (s *Split) AdjustAmount(index int, newAmount float64) {
	n := len(s.Participants)
	if n < 2 || index < 0 || index >= n {
		return
	}

	target := s.Participants[index]
	diff := newAmount - target.Share
	target.Share = newAmount

	perPerson := diff / float64(n-1)
	for i, p := range s.Participants {
		if i != index {
			p.Share -= perPerson
		}
	}

	for _, p := range s.Participants {
		if s.Total != 0 {
			p.Percent = (p.Share / s.Total) * 100
		} else {
			p.Percent = 0
		}
	}
}

// Reconcile checks that the participants' shares cover the total pot within
// tolerance. The remainder is signed and display-ready. A split cannot be
// finalized or sent while ok is false.
func (s *Split) Reconcile() (ok bool, remainder float64) {
	shares := make([]float64, len(s.Participants))
	for i, p := range s.Participants {
		shares[i] = p.Share
	}
	return money.SharesReconcile(shares, s.Total)
}
