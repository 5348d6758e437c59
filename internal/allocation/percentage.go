package allocation

// =============================================================================
// PERCENTAGE ALLOCATION
// Integer percents that always sum to exactly 100, with the remainder of
// 100/N handed out one point at a time to the first participants in order
// =============================================================================

// PercentageStrategy implements the Strategy interface for percentage splits.
type PercentageStrategy struct{}

// Method returns the allocation method identifier.
func (s *PercentageStrategy) Method() Method {
	return MethodPercentage
}

// Allocate assigns base = 100/N percent to everyone and one extra point to
// each of the first 100%N participants in list order. Because the percents
// are integers there is no floating drift: they sum to exactly 100 for any N.
func (s *PercentageStrategy) Allocate(total float64, current []Share) ([]Share, error) {
	if err := validate(total, current); err != nil {
		return nil, err
	}

	n := len(current)
	base := 100 / n
	remainder := 100 % n

	out := make([]Share, n)
	for i := range out {
		percent := base
		if i < remainder {
			percent++
		}
		out[i] = Share{
			Percent: float64(percent),
			Amount:  (float64(percent) / 100) * total,
		}
	}
	return out, nil
}
