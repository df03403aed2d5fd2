package trip

import (
	"encoding/json"
	"errors"
	"net/http"
	"sort"

	"github.com/go-chi/chi/v5"

	"github.com/tripsplit/tripsplit/pkg/response"
)

// Handler handles HTTP requests for trip configuration
type Handler struct {
	service *Service
}

// NewHandler creates a new trip handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the router for trip endpoints
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/", h.GetConfig)
	r.Post("/participants", h.AddParticipant)
	r.Put("/rates/{currency}", h.SetRate)

	return r
}

// GetConfig handles GET /trip
// @Summary      Get trip configuration
// @Description  Get the trip record, participant directory, and exchange-rate table
// @Tags         trip
// @Produce      json
// @Success      200 {object} response.APIResponse{data=ConfigResponse}
// @Router       /trip [get]
func (h *Handler) GetConfig(w http.ResponseWriter, r *http.Request) {
	trip, err := h.service.GetTrip(r.Context())
	if err != nil {
		response.InternalError(w, "Failed to load trip")
		return
	}

	participants, err := h.service.ListParticipants(r.Context())
	if err != nil {
		response.InternalError(w, "Failed to load participants")
		return
	}
	sort.Slice(participants, func(i, j int) bool { return participants[i].Email < participants[j].Email })

	rates, err := h.service.ListRates(r.Context())
	if err != nil {
		response.InternalError(w, "Failed to load exchange rates")
		return
	}

	response.JSON(w, http.StatusOK, &ConfigResponse{
		Trip:         trip,
		Participants: participants,
		Rates:        rates,
	})
}

// AddParticipant handles POST /trip/participants
// @Summary      Add a participant
// @Description  Register a new trip member identified by email
// @Tags         trip
// @Accept       json
// @Produce      json
// @Param        request body AddParticipantRequest true "Participant"
// @Success      201 {object} response.APIResponse{data=Participant}
// @Failure      400 {object} response.APIResponse
// @Failure      409 {object} response.APIResponse
// @Router       /trip/participants [post]
func (h *Handler) AddParticipant(w http.ResponseWriter, r *http.Request) {
	var req AddParticipantRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	p, err := h.service.AddParticipant(r.Context(), req.Email, req.Name)
	if err != nil {
		if errors.Is(err, ErrParticipantExists) {
			response.Conflict(w, err.Error())
			return
		}
		if errors.Is(err, ErrInvalidEmail) || errors.Is(err, ErrInvalidName) {
			response.BadRequest(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to add participant")
		return
	}

	response.JSON(w, http.StatusCreated, p)
}

// SetRate handles PUT /trip/rates/{currency}
// @Summary      Set an exchange rate
// @Description  Insert or update the base-currency rate for a currency code
// @Tags         trip
// @Accept       json
// @Produce      json
// @Param        currency path string true "Currency code"
// @Param        request body SetRateRequest true "Rate"
// @Success      200 {object} response.APIResponse
// @Failure      400 {object} response.APIResponse
// @Router       /trip/rates/{currency} [put]
func (h *Handler) SetRate(w http.ResponseWriter, r *http.Request) {
	currency := chi.URLParam(r, "currency")

	var req SetRateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.service.SetRate(r.Context(), currency, req.Rate); err != nil {
		if errors.Is(err, ErrInvalidRate) || errors.Is(err, ErrUnknownCurrency) {
			response.BadRequest(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to set exchange rate")
		return
	}

	response.JSON(w, http.StatusOK, map[string]string{"message": "Exchange rate updated"})
}
