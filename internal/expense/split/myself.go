package split

import (
	"github.com/tripsplit/tripsplit/internal/money"
)

// MyselfStrategy assigns the whole cost to the payer. No participant
// selection is required.
type MyselfStrategy struct{}

// Mode returns the split mode identifier
func (s *MyselfStrategy) Mode() Mode {
	return ModeMyself
}

// Validate checks if the inputs are valid for a self-paid expense
func (s *MyselfStrategy) Validate(amount float64, cfg *Configuration) error {
	if amount <= 0 {
		return ErrInvalidAmount
	}
	if cfg.Payer == "" {
		return ErrMissingPayer
	}
	return nil
}

// Calculate returns a single-entry map: the payer bears the full
// base-currency cost.
func (s *MyselfStrategy) Calculate(amount, rate float64, cfg *Configuration) (map[string]float64, error) {
	if err := s.Validate(amount, cfg); err != nil {
		return nil, err
	}

	return map[string]float64{
		cfg.Payer: money.Round2(money.Convert(amount, rate)),
	}, nil
}
