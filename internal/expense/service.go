package expense

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"strings"
	"time"

	"github.com/tripsplit/tripsplit/internal/expense/split"
	"github.com/tripsplit/tripsplit/internal/money"
	"github.com/tripsplit/tripsplit/internal/trip"
)

// Common errors
var (
	ErrMissingItemName    = errors.New("item name is required")
	ErrMissingCategory    = errors.New("category is required")
	ErrUnknownPayer       = errors.New("payer is not a trip participant")
	ErrUnknownParticipant = errors.New("split references an unknown participant")
)

// DirectoryProvider supplies the participant directory and rate table for
// one computation.
type DirectoryProvider interface {
	Directory(ctx context.Context) (*trip.Directory, error)
}

// Service handles expense business logic. All validation runs before any
// store call; an invalid expense is never persisted.
type Service struct {
	store        Store
	trips        DirectoryProvider
	splitFactory *split.Factory
}

// NewService creates a new expense service with dependencies injected
func NewService(store Store, trips DirectoryProvider, splitFactory *split.Factory) *Service {
	return &Service{
		store:        store,
		trips:        trips,
		splitFactory: splitFactory,
	}
}

// Create validates the request, computes the split map, assigns the
// timestamp, and persists the expense.
func (s *Service) Create(ctx context.Context, req *ExpenseRequest) (*Expense, error) {
	expense, err := s.build(ctx, req)
	if err != nil {
		return nil, err
	}

	expense.Timestamp = time.Now().UTC().Format(time.RFC3339Nano)
	if err := s.store.Add(ctx, expense); err != nil {
		return nil, err
	}

	slog.Info("Expense created",
		"timestamp", expense.Timestamp,
		"payer", expense.Payer,
		"amount_base", expense.AmountInBase(),
	)
	return expense, nil
}

// Update replaces the expense stored under the given timestamp. The
// timestamp itself is immutable.
func (s *Service) Update(ctx context.Context, timestamp string, req *ExpenseRequest) (*Expense, error) {
	expense, err := s.build(ctx, req)
	if err != nil {
		return nil, err
	}

	expense.Timestamp = timestamp
	if err := s.store.Edit(ctx, expense); err != nil {
		return nil, err
	}

	slog.Info("Expense updated", "timestamp", timestamp)
	return expense, nil
}

// Delete removes an expense by timestamp
func (s *Service) Delete(ctx context.Context, timestamp string) error {
	if err := s.store.Delete(ctx, timestamp); err != nil {
		return err
	}
	slog.Info("Expense deleted", "timestamp", timestamp)
	return nil
}

// List retrieves the full expense collection
func (s *Service) List(ctx context.Context) ([]*Expense, error) {
	return s.store.FetchAll(ctx)
}

// build turns a request into a validated expense record, without a timestamp.
func (s *Service) build(ctx context.Context, req *ExpenseRequest) (*Expense, error) {
	if req.Amount <= 0 {
		return nil, split.ErrInvalidAmount
	}
	if strings.TrimSpace(req.ItemName) == "" {
		return nil, ErrMissingItemName
	}
	if strings.TrimSpace(req.Category) == "" {
		return nil, ErrMissingCategory
	}

	dir, err := s.trips.Directory(ctx)
	if err != nil {
		return nil, err
	}

	payer := strings.TrimSpace(strings.ToLower(req.Payer))
	if payer == "" {
		return nil, split.ErrMissingPayer
	}
	if !dir.HasParticipant(payer) {
		return nil, ErrUnknownPayer
	}

	currency := strings.ToUpper(strings.TrimSpace(req.Currency))
	rate, err := effectiveRate(dir, currency, req.ExchangeRate)
	if err != nil {
		return nil, err
	}

	mode, err := resolveMode(req.PayType, req.SplitMode)
	if err != nil {
		return nil, err
	}
	strategy, err := s.splitFactory.Create(mode)
	if err != nil {
		return nil, err
	}

	splits, err := strategy.Calculate(req.Amount, rate, &split.Configuration{
		Payer:        payer,
		Participants: req.Participants,
		Entries:      req.Entries,
	})
	if err != nil {
		return nil, err
	}

	for participant := range splits {
		if !dir.HasParticipant(participant) {
			return nil, fmt.Errorf("%w: %s", ErrUnknownParticipant, participant)
		}
	}

	// Last gate before the store: the shares must sum to the cent-rounded
	// base total, or the record would be unreadable to balance aggregation.
	var total float64
	for _, share := range splits {
		total += share
	}
	base := money.Round2(money.Convert(req.Amount, rate))
	if math.Abs(total-base) > 0.01 {
		return nil, fmt.Errorf("computed splits sum to %.2f, want %.2f", total, base)
	}

	date := strings.TrimSpace(req.Date)
	if date == "" {
		date = time.Now().UTC().Format("2006-01-02")
	}

	return &Expense{
		Date:         date,
		ItemName:     strings.TrimSpace(req.ItemName),
		Category:     strings.TrimSpace(req.Category),
		Payer:        payer,
		Amount:       req.Amount,
		Currency:     currency,
		ExchangeRate: rate,
		Splits:       splits,
	}, nil
}

// effectiveRate prefers an explicit per-expense rate and falls back to the
// trip's rate table. Unknown currencies fail rather than defaulting.
func effectiveRate(dir *trip.Directory, currency string, override *float64) (float64, error) {
	if override != nil {
		if *override <= 0 {
			return 0, trip.ErrInvalidRate
		}
		return *override, nil
	}
	return dir.Rate(currency)
}

// resolveMode maps the form's pay-type and split-mode pair to a strategy.
func resolveMode(payType, splitMode string) (split.Mode, error) {
	switch strings.ToLower(payType) {
	case "myself":
		return split.ModeMyself, nil
	case "others":
		switch strings.ToLower(splitMode) {
		case "equally":
			return split.ModeEqually, nil
		case "specific":
			return split.ModeSpecific, nil
		}
	}
	return "", fmt.Errorf("%w: pay_type=%q split_mode=%q", split.ErrUnknownMode, payType, splitMode)
}
