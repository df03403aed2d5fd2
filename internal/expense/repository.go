package expense

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
)

// Repository is the Postgres-backed expense store
type Repository struct {
	db *sql.DB
}

// NewRepository creates a new expense repository
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// FetchAll retrieves every expense, newest entry first
func (r *Repository) FetchAll(ctx context.Context) ([]*Expense, error) {
	query := `
		SELECT timestamp, date, item_name, category, payer, amount, currency, exchange_rate, splits
		FROM expenses
		ORDER BY timestamp DESC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch expenses: %w", err)
	}
	defer rows.Close()

	var expenses []*Expense
	for rows.Next() {
		expense := &Expense{}
		var splitsJSON []byte
		if err := rows.Scan(
			&expense.Timestamp,
			&expense.Date,
			&expense.ItemName,
			&expense.Category,
			&expense.Payer,
			&expense.Amount,
			&expense.Currency,
			&expense.ExchangeRate,
			&splitsJSON,
		); err != nil {
			return nil, fmt.Errorf("failed to scan expense: %w", err)
		}
		if err := json.Unmarshal(splitsJSON, &expense.Splits); err != nil {
			return nil, fmt.Errorf("failed to decode splits for %s: %w", expense.Timestamp, err)
		}
		expenses = append(expenses, expense)
	}

	return expenses, rows.Err()
}

// Add inserts a new expense
func (r *Repository) Add(ctx context.Context, e *Expense) error {
	splitsJSON, err := json.Marshal(e.Splits)
	if err != nil {
		return fmt.Errorf("failed to encode splits: %w", err)
	}

	query := `
		INSERT INTO expenses (timestamp, date, item_name, category, payer, amount, currency, exchange_rate, splits)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	if _, err := r.db.ExecContext(ctx, query,
		e.Timestamp, e.Date, e.ItemName, e.Category, e.Payer,
		e.Amount, e.Currency, e.ExchangeRate, splitsJSON,
	); err != nil {
		return fmt.Errorf("failed to add expense: %w", err)
	}

	return nil
}

// Edit replaces an expense, matched by timestamp
func (r *Repository) Edit(ctx context.Context, e *Expense) error {
	splitsJSON, err := json.Marshal(e.Splits)
	if err != nil {
		return fmt.Errorf("failed to encode splits: %w", err)
	}

	query := `
		UPDATE expenses
		SET date = $2, item_name = $3, category = $4, payer = $5,
		    amount = $6, currency = $7, exchange_rate = $8, splits = $9
		WHERE timestamp = $1
	`
	result, err := r.db.ExecContext(ctx, query,
		e.Timestamp, e.Date, e.ItemName, e.Category, e.Payer,
		e.Amount, e.Currency, e.ExchangeRate, splitsJSON,
	)
	if err != nil {
		return fmt.Errorf("failed to edit expense: %w", err)
	}

	affected, _ := result.RowsAffected()
	if affected == 0 {
		return ErrExpenseNotFound
	}

	return nil
}

// Delete removes an expense by timestamp
func (r *Repository) Delete(ctx context.Context, timestamp string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM expenses WHERE timestamp = $1`, timestamp)
	if err != nil {
		return fmt.Errorf("failed to delete expense: %w", err)
	}

	affected, _ := result.RowsAffected()
	if affected == 0 {
		return ErrExpenseNotFound
	}

	return nil
}
