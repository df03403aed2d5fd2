package expense

import (
	"github.com/tripsplit/tripsplit/internal/money"
)

// Expense is the central record of the trip ledger.
//
// Timestamp is assigned at creation, never changes, and is the primary key
// for edit and delete. Date is the calendar day the money was spent, which
// is not the same thing.
type Expense struct {
	Timestamp    string  `json:"timestamp"`
	Date         string  `json:"date"`
	ItemName     string  `json:"item_name"`
	Category     string  `json:"category"`
	Payer        string  `json:"payer"` // participant email, never a display name
	Amount       float64 `json:"amount"`
	Currency     string  `json:"currency"`
	ExchangeRate float64 `json:"exchange_rate"` // base units per unit of Currency

	// Splits maps participant email to their positive base-currency cost
	// share. The values sum to AmountInBase within one cent.
	Splits map[string]float64 `json:"splits"`
}

// AmountInBase is the cent-rounded cost in the trip's base currency.
func (e *Expense) AmountInBase() float64 {
	return money.Round2(money.Convert(e.Amount, e.ExchangeRate))
}

// Clone returns a deep copy so callers can hand expenses to computations
// without sharing the splits map.
func (e *Expense) Clone() *Expense {
	copied := *e
	copied.Splits = make(map[string]float64, len(e.Splits))
	for k, v := range e.Splits {
		copied.Splits[k] = v
	}
	return &copied
}
