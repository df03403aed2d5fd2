package trip

// AddParticipantRequest represents the request to register a trip member
type AddParticipantRequest struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

// SetRateRequest represents the request to set an exchange rate
type SetRateRequest struct {
	Rate float64 `json:"rate"`
}

// ConfigResponse represents the full trip configuration
type ConfigResponse struct {
	Trip         *Trip              `json:"trip"`
	Participants []Participant      `json:"participants"`
	Rates        map[string]float64 `json:"rates"`
}
