package expense

import (
	"context"
	"sort"
	"sync"
)

// MemoryStore is an in-memory expense store keyed by timestamp. It backs
// demo mode and tests.
type MemoryStore struct {
	mu       sync.RWMutex
	expenses map[string]*Expense
}

// NewMemoryStore creates an empty in-memory store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{expenses: make(map[string]*Expense)}
}

// NewDemoStore creates an in-memory store seeded with canned expenses that
// match the demo trip's participants and rates.
func NewDemoStore() *MemoryStore {
	s := NewMemoryStore()
	for _, e := range []*Expense{
		{
			Timestamp:    "2026-08-20T09:15:00.000000001Z",
			Date:         "2026-08-20",
			ItemName:     "Hostel deposit",
			Category:     "Lodging",
			Payer:        "alice@tripsplit.demo",
			Amount:       3000,
			Currency:     "TWD",
			ExchangeRate: 1,
			Splits: map[string]float64{
				"alice@tripsplit.demo": 1000,
				"bob@tripsplit.demo":   1000,
				"carol@tripsplit.demo": 1000,
			},
		},
		{
			Timestamp:    "2026-08-21T12:40:00.000000002Z",
			Date:         "2026-08-21",
			ItemName:     "Lunch",
			Category:     "Food",
			Payer:        "bob@tripsplit.demo",
			Amount:       45,
			Currency:     "USD",
			ExchangeRate: 32.5,
			Splits: map[string]float64{
				"alice@tripsplit.demo": 487.5,
				"bob@tripsplit.demo":   487.5,
				"carol@tripsplit.demo": 487.5,
			},
		},
		{
			Timestamp:    "2026-08-22T18:05:00.000000003Z",
			Date:         "2026-08-22",
			ItemName:     "Airport train",
			Category:     "Transport",
			Payer:        "carol@tripsplit.demo",
			Amount:       1527,
			Currency:     "JPY",
			ExchangeRate: 0.21,
			Splits: map[string]float64{
				"alice@tripsplit.demo": 160.34,
				"carol@tripsplit.demo": 160.33,
			},
		},
	} {
		s.expenses[e.Timestamp] = e
	}
	return s
}

// FetchAll returns copies of every expense, newest entry first
func (s *MemoryStore) FetchAll(ctx context.Context) ([]*Expense, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	expenses := make([]*Expense, 0, len(s.expenses))
	for _, e := range s.expenses {
		expenses = append(expenses, e.Clone())
	}
	sort.Slice(expenses, func(i, j int) bool {
		return expenses[i].Timestamp > expenses[j].Timestamp
	})
	return expenses, nil
}

// Add stores a copy of the expense
func (s *MemoryStore) Add(ctx context.Context, e *Expense) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.expenses[e.Timestamp] = e.Clone()
	return nil
}

// Edit replaces an expense, matched by timestamp
func (s *MemoryStore) Edit(ctx context.Context, e *Expense) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.expenses[e.Timestamp]; !exists {
		return ErrExpenseNotFound
	}
	s.expenses[e.Timestamp] = e.Clone()
	return nil
}

// Delete removes an expense by timestamp
func (s *MemoryStore) Delete(ctx context.Context, timestamp string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.expenses[timestamp]; !exists {
		return ErrExpenseNotFound
	}
	delete(s.expenses, timestamp)
	return nil
}
