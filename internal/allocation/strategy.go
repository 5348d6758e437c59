package allocation

import (
	"errors"
	"fmt"
)

// Method defines how a split's total pot is distributed across participants.
type Method string

const (
	MethodEqually     Method = "equally"
	MethodPercentage  Method = "percentage"
	MethodFixedAmount Method = "fixed_amount"
)

// Share holds one participant's slice of the pot, both as a percent of the
// total and as an absolute amount.
type Share struct {
	Percent float64 `json:"percent"`
	Amount  float64 `json:"amount"`
}

// Strategy is the interface that all allocation strategies must implement.
type Strategy interface {
	// Allocate computes a new share for every participant. The current
	// shares are passed in because fixed-amount allocation keeps the
	// manually entered amounts as-is.
	Allocate(total float64, current []Share) ([]Share, error)

	// Method returns the method identifier for this strategy.
	Method() Method
}

// Factory creates allocation strategies based on the requested method.
type Factory struct{}

// NewFactory creates a new factory instance.
func NewFactory() *Factory {
	return &Factory{}
}

// Create returns the appropriate strategy implementation for the method.
func (f *Factory) Create(method Method) (Strategy, error) {
	switch method {
	case MethodEqually:
		return &EquallyStrategy{}, nil
	case MethodPercentage:
		return &PercentageStrategy{}, nil
	case MethodFixedAmount:
		return &FixedAmountStrategy{}, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownMethod, method)
	}
}

// CreateFromString creates a strategy from a raw string (useful for API requests).
func (f *Factory) CreateFromString(method string) (Strategy, error) {
	return f.Create(Method(method))
}

var (
	ErrUnknownMethod  = errors.New("unknown allocation method")
	ErrNoParticipants = errors.New("at least one participant is required")
	ErrNegativeTotal  = errors.New("total cannot be negative")
)

func validate(total float64, current []Share) error {
	if len(current) == 0 {
		return ErrNoParticipants
	}
	if total < 0 {
		return ErrNegativeTotal
	}
	return nil
}
