package settlement

// BalancesResponse is the settle-up view for the authenticated user
type BalancesResponse struct {
	Viewpoint string               `json:"viewpoint"`
	Balances  []ParticipantBalance `json:"balances"`

	// Warning is set when malformed expenses were excluded from the totals.
	Warning string `json:"warning,omitempty"`
}
