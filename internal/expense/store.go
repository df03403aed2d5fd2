package expense

import (
	"context"
	"errors"
)

var ErrExpenseNotFound = errors.New("expense not found")

// Store is the persistence contract the engine needs: fetch, add, edit,
// delete. Edit is full replacement keyed by Timestamp. Implementations must
// not retain or mutate the expenses handed to them.
type Store interface {
	FetchAll(ctx context.Context) ([]*Expense, error)
	Add(ctx context.Context, e *Expense) error
	Edit(ctx context.Context, e *Expense) error
	Delete(ctx context.Context, timestamp string) error
}
