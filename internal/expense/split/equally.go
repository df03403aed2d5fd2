package split

import (
	"github.com/tripsplit/tripsplit/internal/money"
)

// EquallyStrategy divides the base-currency total cent-exactly across the
// selected participants. The payer may be part of the selection.
type EquallyStrategy struct{}

// Mode returns the split mode identifier
func (s *EquallyStrategy) Mode() Mode {
	return ModeEqually
}

// Validate checks if the inputs are valid for an equal split
func (s *EquallyStrategy) Validate(amount float64, cfg *Configuration) error {
	if amount <= 0 {
		return ErrInvalidAmount
	}
	if len(cfg.Participants) == 0 {
		return ErrMissingParticipants
	}
	return nil
}

// Calculate apportions the total in integer cents; the first participants in
// selection order absorb the remainder cents, so the result sums exactly to
// the cent-rounded total.
func (s *EquallyStrategy) Calculate(amount, rate float64, cfg *Configuration) (map[string]float64, error) {
	if err := s.Validate(amount, cfg); err != nil {
		return nil, err
	}

	return money.SplitEqually(money.Convert(amount, rate), cfg.Participants)
}
