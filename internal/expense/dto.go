package expense

// ExpenseRequest is the payload for creating or editing an expense. The same
// shape serves both: an edit is a full replacement keyed by the timestamp in
// the URL.
type ExpenseRequest struct {
	Date     string  `json:"date"`
	ItemName string  `json:"item_name"`
	Category string  `json:"category"`
	Payer    string  `json:"payer"`
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`

	// ExchangeRate overrides the trip's rate table for this expense.
	// When omitted, the rate is looked up from the table.
	ExchangeRate *float64 `json:"exchange_rate,omitempty"`

	// PayType is "myself" or "others"; SplitMode is "equally" or "specific"
	// and only applies to "others".
	PayType   string `json:"pay_type"`
	SplitMode string `json:"split_mode,omitempty"`

	// Participants is the ordered selection for the equal split.
	Participants []string `json:"participants,omitempty"`

	// Entries holds per-participant amounts in the transaction currency for
	// the specific split.
	Entries map[string]float64 `json:"entries,omitempty"`
}

// ListResponse wraps the expense collection
type ListResponse struct {
	Expenses []*Expense `json:"expenses"`
	Total    int        `json:"total"`
}
