package settlement

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/tripsplit/tripsplit/pkg/middleware"
	"github.com/tripsplit/tripsplit/pkg/response"
)

// Handler handles HTTP requests for settle-up balances
type Handler struct {
	service *Service
}

// NewHandler creates a new settlement handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the router for settlement endpoints
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/balances", h.Balances)

	return r
}

// Balances handles GET /settlements/balances
// @Summary      Get settle-up balances
// @Description  Net signed balance between the authenticated user and every other participant. Positive means they owe you.
// @Tags         settlements
// @Produce      json
// @Success      200 {object} response.APIResponse{data=BalancesResponse}
// @Failure      401 {object} response.APIResponse
// @Router       /settlements/balances [get]
func (h *Handler) Balances(w http.ResponseWriter, r *http.Request) {
	viewpoint, ok := middleware.GetUserEmail(r.Context())
	if !ok {
		response.Unauthorized(w, "Authentication required")
		return
	}

	result, err := h.service.Balances(r.Context(), viewpoint)
	if err != nil {
		response.InternalError(w, "Failed to compute balances")
		return
	}

	resp := &BalancesResponse{
		Viewpoint: viewpoint,
		Balances:  result.Balances,
	}
	if result.Skipped > 0 {
		resp.Warning = fmt.Sprintf("%d malformed expense(s) were excluded from the totals", result.Skipped)
	}

	response.JSON(w, http.StatusOK, resp)
}
