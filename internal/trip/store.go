package trip

import (
	"context"
	"errors"
)

var (
	ErrTripNotFound      = errors.New("trip not found")
	ErrParticipantExists = errors.New("participant already exists")
)

// Store is the persistence contract for trip configuration.
type Store interface {
	GetTrip(ctx context.Context) (*Trip, error)
	CreateTrip(ctx context.Context, t *Trip) error
	ListParticipants(ctx context.Context) ([]Participant, error)
	AddParticipant(ctx context.Context, p Participant) error
	ListRates(ctx context.Context) (map[string]float64, error)
	SetRate(ctx context.Context, currency string, rate float64) error
}
