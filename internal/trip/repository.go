package trip

import (
	"context"
	"database/sql"
	"fmt"
)

// Repository is the Postgres-backed trip configuration store
type Repository struct {
	db *sql.DB
}

// NewRepository creates a new trip repository
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// GetTrip retrieves the trip record
func (r *Repository) GetTrip(ctx context.Context) (*Trip, error) {
	query := `SELECT id, name, base_currency, created_at FROM trips ORDER BY created_at LIMIT 1`

	trip := &Trip{}
	err := r.db.QueryRowContext(ctx, query).Scan(
		&trip.ID,
		&trip.Name,
		&trip.BaseCurrency,
		&trip.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrTripNotFound
		}
		return nil, fmt.Errorf("failed to get trip: %w", err)
	}

	return trip, nil
}

// CreateTrip inserts the trip record
func (r *Repository) CreateTrip(ctx context.Context, t *Trip) error {
	query := `INSERT INTO trips (id, name, base_currency) VALUES ($1, $2, $3)`
	if _, err := r.db.ExecContext(ctx, query, t.ID, t.Name, t.BaseCurrency); err != nil {
		return fmt.Errorf("failed to create trip: %w", err)
	}
	return nil
}

// ListParticipants retrieves all trip participants
func (r *Repository) ListParticipants(ctx context.Context) ([]Participant, error) {
	query := `SELECT email, name FROM participants ORDER BY email`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list participants: %w", err)
	}
	defer rows.Close()

	var participants []Participant
	for rows.Next() {
		var p Participant
		if err := rows.Scan(&p.Email, &p.Name); err != nil {
			return nil, fmt.Errorf("failed to scan participant: %w", err)
		}
		participants = append(participants, p)
	}

	return participants, rows.Err()
}

// AddParticipant inserts a new participant
func (r *Repository) AddParticipant(ctx context.Context, p Participant) error {
	query := `INSERT INTO participants (email, name) VALUES ($1, $2) ON CONFLICT (email) DO NOTHING`

	result, err := r.db.ExecContext(ctx, query, p.Email, p.Name)
	if err != nil {
		return fmt.Errorf("failed to add participant: %w", err)
	}

	affected, _ := result.RowsAffected()
	if affected == 0 {
		return ErrParticipantExists
	}

	return nil
}

// ListRates retrieves the exchange-rate table
func (r *Repository) ListRates(ctx context.Context) (map[string]float64, error) {
	query := `SELECT currency, rate FROM exchange_rates`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list rates: %w", err)
	}
	defer rows.Close()

	rates := make(map[string]float64)
	for rows.Next() {
		var currency string
		var rate float64
		if err := rows.Scan(&currency, &rate); err != nil {
			return nil, fmt.Errorf("failed to scan rate: %w", err)
		}
		rates[currency] = rate
	}

	return rates, rows.Err()
}

// SetRate inserts or updates an exchange rate
func (r *Repository) SetRate(ctx context.Context, currency string, rate float64) error {
	query := `
		INSERT INTO exchange_rates (currency, rate)
		VALUES ($1, $2)
		ON CONFLICT (currency) DO UPDATE SET rate = EXCLUDED.rate
	`
	if _, err := r.db.ExecContext(ctx, query, currency, rate); err != nil {
		return fmt.Errorf("failed to set rate: %w", err)
	}
	return nil
}
