// Package settlement reduces the expense history into net pairwise balances
// for a viewpoint participant.
package settlement

import (
	"math"

	"github.com/tripsplit/tripsplit/internal/expense"
	"github.com/tripsplit/tripsplit/internal/money"
	"github.com/tripsplit/tripsplit/internal/trip"
)

// ParticipantBalance is the net signed balance against one counterpart.
// Positive means they owe the viewpoint user; negative means the viewpoint
// user owes them. Exactly zero means settled.
type ParticipantBalance struct {
	ParticipantID string  `json:"participant_id"`
	Name          string  `json:"name"`
	Balance       float64 `json:"balance"`
}

// Result is the outcome of one aggregation pass.
type Result struct {
	Balances []ParticipantBalance `json:"balances"`

	// Skipped counts malformed expenses excluded from the totals: unknown
	// payer, unknown split participant, or a split sum that violates the
	// amount invariant. One bad record must not block the whole trip.
	Skipped int `json:"skipped"`
}

// Aggregate computes the viewpoint participant's net balance against every
// other known participant across the full expense collection.
//
// Inputs are read-only; the function holds no state and is safe to call
// concurrently. An unknown viewpoint yields an empty result, not an error:
// access gating belongs upstream.
func Aggregate(expenses []*expense.Expense, dir *trip.Directory, viewpoint string) *Result {
	result := &Result{}
	if !dir.HasParticipant(viewpoint) {
		return result
	}

	balances := make(map[string]float64)
	for _, email := range dir.Emails() {
		if email != viewpoint {
			balances[email] = 0
		}
	}

	for _, e := range expenses {
		if !wellFormed(e, dir) {
			result.Skipped++
			continue
		}

		if e.Payer == viewpoint {
			// Every other participant owes the viewpoint their share.
			for participant, share := range e.Splits {
				if participant != viewpoint {
					balances[participant] += share
				}
			}
		} else if share, ok := e.Splits[viewpoint]; ok {
			// The viewpoint owes the payer their own share.
			balances[e.Payer] -= share
		}
	}

	for _, email := range dir.Emails() {
		if email == viewpoint {
			continue
		}
		result.Balances = append(result.Balances, ParticipantBalance{
			ParticipantID: email,
			Name:          dir.DisplayName(email),
			Balance:       money.Round2(balances[email]),
		})
	}

	return result
}

// wellFormed checks the stored-data invariants before an expense may
// contribute to balances. Violations mean corrupt data; the expense is
// treated as unreadable.
func wellFormed(e *expense.Expense, dir *trip.Directory) bool {
	if e.Amount <= 0 || len(e.Splits) == 0 {
		return false
	}
	if !dir.HasParticipant(e.Payer) {
		return false
	}

	var sum float64
	for participant, share := range e.Splits {
		if !dir.HasParticipant(participant) {
			return false
		}
		sum += share
	}

	return math.Abs(sum-e.AmountInBase()) <= 0.01
}
