package allocation

// =============================================================================
// EQUAL ALLOCATION
// Every participant gets the same percent and the same amount
// =============================================================================

// EquallyStrategy implements the Strategy interface for equal splits.
type EquallyStrategy struct{}

// Method returns the allocation method identifier.
func (s *EquallyStrategy) Method() Method {
	return MethodEqually
}

// Allocate gives each participant percent = 100/N and amount = total/N.
// Shares keep full float precision so they always sum back to the total;
// rounding happens only at display time.
func (s *EquallyStrategy) Allocate(total float64, current []Share) ([]Share, error) {
	if err := validate(total, current); err != nil {
		return nil, err
	}

	n := float64(len(current))
	out := make([]Share, len(current))
	for i := range out {
		out[i] = Share{
			Percent: 100 / n,
			Amount:  total / n,
		}
	}
	return out, nil
}
