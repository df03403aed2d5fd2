package split

import (
	"errors"
	"fmt"
	"math"
)

// Mode identifies a split strategy
type Mode string

const (
	// ModeMyself: the payer bore the whole cost themselves.
	ModeMyself Mode = "MYSELF"
	// ModeEqually: the cost is divided cent-exactly across the selection.
	ModeEqually Mode = "EQUALLY"
	// ModeSpecific: each participant entered their own amount in the
	// transaction currency.
	ModeSpecific Mode = "SPECIFIC"
)

// Configuration carries the form-side split selection for one expense.
// It is consumed to produce a per-participant share map and then discarded.
type Configuration struct {
	// Payer is the participant email that fronted the money.
	Payer string `json:"payer"`

	// Participants is the ordered selection for ModeEqually. Order matters:
	// the first participants absorb any remainder cents.
	Participants []string `json:"participants,omitempty"`

	// Entries maps participant email to a user-entered amount in the
	// transaction currency, for ModeSpecific. A zero entry means the
	// participant is not taking part.
	Entries map[string]float64 `json:"entries,omitempty"`
}

// Strategy is the interface that all split strategies must implement
type Strategy interface {
	// Calculate produces the per-participant share map in base currency.
	// Shares are positive cost shares whose sum equals the cent-rounded
	// base-currency total.
	Calculate(amount, rate float64, cfg *Configuration) (map[string]float64, error)

	// Mode returns the mode identifier for this strategy
	Mode() Mode

	// Validate checks if the inputs are valid for this strategy
	Validate(amount float64, cfg *Configuration) error
}

// Factory creates split strategies based on the requested mode
type Factory struct{}

// NewFactory creates a new factory instance
func NewFactory() *Factory {
	return &Factory{}
}

// Create returns the strategy implementation for the mode
func (f *Factory) Create(mode Mode) (Strategy, error) {
	switch mode {
	case ModeMyself:
		return &MyselfStrategy{}, nil
	case ModeEqually:
		return &EquallyStrategy{}, nil
	case ModeSpecific:
		return &SpecificStrategy{}, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownMode, mode)
	}
}

var (
	ErrInvalidAmount       = errors.New("amount must be a positive number")
	ErrMissingPayer        = errors.New("payer is required")
	ErrMissingParticipants = errors.New("at least one participant must be selected")
	ErrSplitMismatch       = errors.New("entered amounts do not sum to the total")
	ErrEmptySplit          = errors.New("split has no participating members")
	ErrUnknownMode         = errors.New("unknown split mode")
)

// validEntry reports whether a specific-mode entry counts as participation.
// Zero means "not participating"; negative and non-finite values are junk.
func validEntry(v float64) bool {
	return v > 0 && !math.IsInf(v, 1)
}
