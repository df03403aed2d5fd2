package split

import (
	"math"
	"sort"

	"github.com/tripsplit/tripsplit/internal/money"
)

// SpecificStrategy takes per-participant amounts entered in the transaction
// currency. Entries must sum to the expense amount; each share is converted
// to base currency individually.
type SpecificStrategy struct{}

// Mode returns the split mode identifier
func (s *SpecificStrategy) Mode() Mode {
	return ModeSpecific
}

// Validate checks if the entered amounts are consistent with the total.
// The comparison happens in the transaction currency, before conversion,
// because that is the currency the user typed the numbers in. A zero entry
// means "not participating" and is ignored.
func (s *SpecificStrategy) Validate(amount float64, cfg *Configuration) error {
	if amount <= 0 {
		return ErrInvalidAmount
	}

	var sum float64
	for _, v := range cfg.Entries {
		if validEntry(v) {
			sum += v
		}
	}

	// Tolerance is one cent either way. Compare in integer cents so binary
	// float noise at the boundary cannot flip the result.
	if math.Abs(math.Round(sum*100)-math.Round(amount*100)) > 1 {
		return ErrSplitMismatch
	}
	return nil
}

// Calculate converts each participating entry to base currency. Zero,
// negative, and non-finite entries are discarded. Per-entry rounding and the
// one-cent entry tolerance leave a residual against the cent-rounded base
// total; it is spread one cent at a time, in email order, so the shares sum
// exactly to the converted total.
func (s *SpecificStrategy) Calculate(amount, rate float64, cfg *Configuration) (map[string]float64, error) {
	if err := s.Validate(amount, cfg); err != nil {
		return nil, err
	}

	participants := make([]string, 0, len(cfg.Entries))
	cents := make(map[string]int64, len(cfg.Entries))
	var sum int64
	for participant, entered := range cfg.Entries {
		if !validEntry(entered) {
			continue
		}
		c := int64(math.Round(money.Convert(entered, rate) * 100))
		participants = append(participants, participant)
		cents[participant] = c
		sum += c
	}

	if len(participants) == 0 {
		return nil, ErrEmptySplit
	}
	sort.Strings(participants)

	target := int64(math.Round(money.Convert(amount, rate) * 100))
	step := int64(1)
	if sum > target {
		step = -1
	}
	for i := 0; sum != target; i = (i + 1) % len(participants) {
		cents[participants[i]] += step
		sum += step
	}

	splits := make(map[string]float64, len(cents))
	for participant, c := range cents {
		splits[participant] = float64(c) / 100
	}

	return splits, nil
}
