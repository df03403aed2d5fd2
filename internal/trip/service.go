package trip

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/google/uuid"
)

// Common errors
var (
	ErrInvalidEmail = errors.New("participant email is required")
	ErrInvalidName  = errors.New("participant name is required")
	ErrInvalidRate  = errors.New("exchange rate must be greater than zero")
)

// Service handles trip configuration business logic
type Service struct {
	store       Store
	defaultName string
	defaultBase string
}

// NewService creates a new trip service
func NewService(store Store, defaultName, defaultBaseCurrency string) *Service {
	return &Service{
		store:       store,
		defaultName: defaultName,
		defaultBase: defaultBaseCurrency,
	}
}

// GetTrip returns the trip record, creating the default one on first use.
func (s *Service) GetTrip(ctx context.Context) (*Trip, error) {
	trip, err := s.store.GetTrip(ctx)
	if err == nil {
		return trip, nil
	}
	if !errors.Is(err, ErrTripNotFound) {
		return nil, err
	}

	trip = &Trip{
		ID:           uuid.New(),
		Name:         s.defaultName,
		BaseCurrency: s.defaultBase,
	}
	if err := s.store.CreateTrip(ctx, trip); err != nil {
		return nil, err
	}
	slog.Info("Trip created", "trip_id", trip.ID, "base_currency", trip.BaseCurrency)

	// The base currency always converts 1:1 to itself.
	if err := s.store.SetRate(ctx, trip.BaseCurrency, 1); err != nil {
		return nil, err
	}

	return trip, nil
}

// Directory builds a read-only snapshot of participants and rates for one
// computation. Callers must not rely on it staying current.
func (s *Service) Directory(ctx context.Context) (*Directory, error) {
	participants, err := s.store.ListParticipants(ctx)
	if err != nil {
		return nil, err
	}
	rates, err := s.store.ListRates(ctx)
	if err != nil {
		return nil, err
	}
	return NewDirectory(participants, rates), nil
}

// ListParticipants retrieves all trip members
func (s *Service) ListParticipants(ctx context.Context) ([]Participant, error) {
	return s.store.ListParticipants(ctx)
}

// ListRates retrieves the exchange-rate table
func (s *Service) ListRates(ctx context.Context) (map[string]float64, error) {
	return s.store.ListRates(ctx)
}

// AddParticipant registers a new trip member
func (s *Service) AddParticipant(ctx context.Context, email, name string) (*Participant, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	name = strings.TrimSpace(name)
	if email == "" || !strings.Contains(email, "@") {
		return nil, ErrInvalidEmail
	}
	if name == "" {
		return nil, ErrInvalidName
	}

	p := Participant{Email: email, Name: name}
	if err := s.store.AddParticipant(ctx, p); err != nil {
		return nil, err
	}

	slog.Info("Participant added", "email", email)
	return &p, nil
}

// SetRate inserts or updates the exchange rate for a currency
func (s *Service) SetRate(ctx context.Context, currency string, rate float64) error {
	currency = strings.ToUpper(strings.TrimSpace(currency))
	if currency == "" {
		return ErrUnknownCurrency
	}
	if rate <= 0 {
		return ErrInvalidRate
	}

	if err := s.store.SetRate(ctx, currency, rate); err != nil {
		return err
	}

	slog.Info("Exchange rate updated", "currency", currency, "rate", rate)
	return nil
}
