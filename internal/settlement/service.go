package settlement

import (
	"context"
	"log/slog"

	"github.com/tripsplit/tripsplit/internal/expense"
	"github.com/tripsplit/tripsplit/internal/trip"
)

// ExpenseSource supplies the expense collection to aggregate over.
type ExpenseSource interface {
	FetchAll(ctx context.Context) ([]*expense.Expense, error)
}

// DirectoryProvider supplies the participant directory and rate table.
type DirectoryProvider interface {
	Directory(ctx context.Context) (*trip.Directory, error)
}

// Service computes settle-up balances on demand
type Service struct {
	expenses ExpenseSource
	trips    DirectoryProvider
}

// NewService creates a new settlement service
func NewService(expenses ExpenseSource, trips DirectoryProvider) *Service {
	return &Service{expenses: expenses, trips: trips}
}

// Balances aggregates the full expense history from the viewpoint
// participant's perspective.
func (s *Service) Balances(ctx context.Context, viewpoint string) (*Result, error) {
	expenses, err := s.expenses.FetchAll(ctx)
	if err != nil {
		return nil, err
	}
	dir, err := s.trips.Directory(ctx)
	if err != nil {
		return nil, err
	}

	result := Aggregate(expenses, dir, viewpoint)
	if result.Skipped > 0 {
		slog.Warn("Skipped malformed expenses during balance aggregation",
			"viewpoint", viewpoint,
			"skipped", result.Skipped,
		)
	}
	return result, nil
}
