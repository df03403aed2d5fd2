// Package money provides currency conversion and cent-accurate apportionment.
//
// All amounts are base-currency floats rounded to two decimals at the point
// of allocation, never at conversion, so repeated conversions do not compound
// rounding error.
package money

import (
	"errors"
	"math"
)

var (
	ErrNoParticipants = errors.New("at least one participant is required")
	ErrInvalidTotal   = errors.New("total must be greater than zero")
)

// Convert converts an amount into base currency. No rounding is applied;
// rounding is the caller's responsibility at the point of allocation.
func Convert(amount, rate float64) float64 {
	return amount * rate
}

// Round2 rounds a value to 2 decimal places
func Round2(value float64) float64 {
	return math.Round(value*100) / 100
}

// SplitEqually divides totalBase across the participants in cents.
// The first (totalCents mod N) participants, in the given order, absorb one
// extra cent each, so the result always sums to exactly Round2(totalBase).
// The caller supplies a stable order; reordering moves the remainder cents.
// Duplicates in the selection count once.
func SplitEqually(totalBase float64, participants []string) (map[string]float64, error) {
	participants = dedupe(participants)
	if len(participants) == 0 {
		return nil, ErrNoParticipants
	}
	if totalBase <= 0 {
		return nil, ErrInvalidTotal
	}

	totalCents := int64(math.Round(totalBase * 100))
	n := int64(len(participants))
	base := totalCents / n
	remainder := totalCents - base*n

	splits := make(map[string]float64, len(participants))
	for i, p := range participants {
		cents := base
		if int64(i) < remainder {
			cents++
		}
		splits[p] = float64(cents) / 100
	}

	return splits, nil
}

// dedupe keeps the first occurrence of each participant, preserving order.
func dedupe(participants []string) []string {
	seen := make(map[string]struct{}, len(participants))
	unique := make([]string, 0, len(participants))
	for _, p := range participants {
		if _, dup := seen[p]; dup {
			continue
		}
		seen[p] = struct{}{}
		unique = append(unique, p)
	}
	return unique
}
