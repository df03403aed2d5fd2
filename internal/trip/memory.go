package trip

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// MemoryStore is an in-memory trip configuration store. It backs demo mode
// and tests; the zero backend serves canned data only.
type MemoryStore struct {
	mu           sync.RWMutex
	trip         *Trip
	participants map[string]Participant
	rates        map[string]float64
}

// NewMemoryStore creates an empty in-memory store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		participants: make(map[string]Participant),
		rates:        make(map[string]float64),
	}
}

// NewDemoStore creates an in-memory store seeded with the demo trip
func NewDemoStore(baseCurrency string) *MemoryStore {
	s := NewMemoryStore()
	s.trip = &Trip{
		ID:           uuid.New(),
		Name:         "Taipei Demo Trip",
		BaseCurrency: baseCurrency,
		CreatedAt:    time.Now().UTC(),
	}
	for _, p := range []Participant{
		{Email: "alice@tripsplit.demo", Name: "Alice"},
		{Email: "bob@tripsplit.demo", Name: "Bob"},
		{Email: "carol@tripsplit.demo", Name: "Carol"},
	} {
		s.participants[p.Email] = p
	}
	s.rates = map[string]float64{
		"TWD": 1,
		"USD": 32.5,
		"JPY": 0.21,
	}
	return s
}

func (s *MemoryStore) GetTrip(ctx context.Context) (*Trip, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.trip == nil {
		return nil, ErrTripNotFound
	}
	copied := *s.trip
	return &copied, nil
}

func (s *MemoryStore) CreateTrip(ctx context.Context, t *Trip) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	copied := *t
	s.trip = &copied
	return nil
}

func (s *MemoryStore) ListParticipants(ctx context.Context) ([]Participant, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	participants := make([]Participant, 0, len(s.participants))
	for _, p := range s.participants {
		participants = append(participants, p)
	}
	return participants, nil
}

func (s *MemoryStore) AddParticipant(ctx context.Context, p Participant) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.participants[p.Email]; exists {
		return ErrParticipantExists
	}
	s.participants[p.Email] = p
	return nil
}

func (s *MemoryStore) ListRates(ctx context.Context) (map[string]float64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rates := make(map[string]float64, len(s.rates))
	for code, rate := range s.rates {
		rates[code] = rate
	}
	return rates, nil
}

func (s *MemoryStore) SetRate(ctx context.Context, currency string, rate float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rates[currency] = rate
	return nil
}
