package trip

import (
	"errors"
	"sort"
	"time"

	"github.com/google/uuid"
)

var ErrUnknownCurrency = errors.New("unknown currency code")

// Trip represents the shared trip configuration. All balances are reported
// in the trip's base currency.
type Trip struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	BaseCurrency string    `json:"base_currency"`
	CreatedAt    time.Time `json:"created_at"`
}

// Participant is a member of the trip, identified by email.
// The email is the stable ID everywhere; display names are render-only.
type Participant struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

// Directory is a read-only snapshot of the participant list and exchange-rate
// table, handed to a computation as an explicit dependency. A rate expresses
// units of base currency per unit of the quoted currency.
type Directory struct {
	names map[string]string
	rates map[string]float64
}

// NewDirectory builds a snapshot from the trip configuration.
func NewDirectory(participants []Participant, rates map[string]float64) *Directory {
	names := make(map[string]string, len(participants))
	for _, p := range participants {
		names[p.Email] = p.Name
	}
	copied := make(map[string]float64, len(rates))
	for code, rate := range rates {
		copied[code] = rate
	}
	return &Directory{names: names, rates: copied}
}

// HasParticipant reports whether the email belongs to a known participant.
func (d *Directory) HasParticipant(email string) bool {
	_, ok := d.names[email]
	return ok
}

// DisplayName resolves a participant's display name, falling back to the
// email for unknown entries.
func (d *Directory) DisplayName(email string) string {
	if name, ok := d.names[email]; ok {
		return name
	}
	return email
}

// Emails returns all participant emails in sorted order.
func (d *Directory) Emails() []string {
	emails := make([]string, 0, len(d.names))
	for email := range d.names {
		emails = append(emails, email)
	}
	sort.Strings(emails)
	return emails
}

// Rate looks up the exchange rate for a currency code. Unknown codes fail
// explicitly rather than defaulting.
func (d *Directory) Rate(currency string) (float64, error) {
	rate, ok := d.rates[currency]
	if !ok {
		return 0, ErrUnknownCurrency
	}
	return rate, nil
}
