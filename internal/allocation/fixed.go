package allocation

// =============================================================================
// FIXED AMOUNT ALLOCATION
// Amounts are taken as manually entered; percents are recomputed for display
// =============================================================================

// FixedAmountStrategy implements the Strategy interface for fixed-amount splits.
type FixedAmountStrategy struct{}

// Method returns the allocation method identifier.
func (s *FixedAmountStrategy) Method() Method {
	return MethodFixedAmount
}

// Allocate keeps each participant's current amount and derives the percent
// from it (amount/total × 100). The percents here are display values only;
// whether the amounts actually cover the pot is the ledger's Reconcile check.
func (s *FixedAmountStrategy) Allocate(total float64, current []Share) ([]Share, error) {
	if err := validate(total, current); err != nil {
		return nil, err
	}

	out := make([]Share, len(current))
	for i, c := range current {
		percent := 0.0
		if total != 0 {
			percent = (c.Amount / total) * 100
		}
		out[i] = Share{
			Percent: percent,
			Amount:  c.Amount,
		}
	}
	return out, nil
}
