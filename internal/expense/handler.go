package expense

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/tripsplit/tripsplit/internal/expense/split"
	"github.com/tripsplit/tripsplit/internal/trip"
	"github.com/tripsplit/tripsplit/pkg/response"
)

// Handler handles HTTP requests for expense operations
type Handler struct {
	service *Service
}

// NewHandler creates a new expense handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the router for expense endpoints
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/", h.List)
	r.Post("/", h.Create)
	r.Put("/{timestamp}", h.Update)
	r.Delete("/{timestamp}", h.Delete)

	return r
}

// validationCodes maps each validation failure to a distinct code so the UI
// can render a field-specific message.
var validationCodes = []struct {
	err  error
	code string
}{
	{split.ErrInvalidAmount, "INVALID_AMOUNT"},
	{ErrMissingItemName, "MISSING_ITEM_NAME"},
	{ErrMissingCategory, "MISSING_CATEGORY"},
	{split.ErrMissingParticipants, "MISSING_PARTICIPANTS"},
	{split.ErrSplitMismatch, "SPLIT_MISMATCH"},
	{split.ErrEmptySplit, "EMPTY_SPLIT"},
	{split.ErrMissingPayer, "MISSING_PAYER"},
	{split.ErrUnknownMode, "INVALID_SPLIT_MODE"},
	{trip.ErrUnknownCurrency, "UNKNOWN_CURRENCY"},
	{trip.ErrInvalidRate, "INVALID_RATE"},
	{ErrUnknownPayer, "UNKNOWN_PARTICIPANT"},
	{ErrUnknownParticipant, "UNKNOWN_PARTICIPANT"},
}

func writeError(w http.ResponseWriter, err error) {
	for _, vc := range validationCodes {
		if errors.Is(err, vc.err) {
			response.Error(w, http.StatusBadRequest, vc.code, err.Error())
			return
		}
	}
	if errors.Is(err, ErrExpenseNotFound) {
		response.NotFound(w, err.Error())
		return
	}
	response.InternalError(w, "Failed to process expense")
}

// List handles GET /expenses
// @Summary      List expenses
// @Description  Get the full expense collection, newest entry first
// @Tags         expenses
// @Produce      json
// @Success      200 {object} response.APIResponse{data=ListResponse}
// @Router       /expenses [get]
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	expenses, err := h.service.List(r.Context())
	if err != nil {
		response.InternalError(w, "Failed to list expenses")
		return
	}

	response.JSON(w, http.StatusOK, &ListResponse{
		Expenses: expenses,
		Total:    len(expenses),
	})
}

// Create handles POST /expenses
// @Summary      Create an expense
// @Description  Validate the form input, compute the per-participant split, and persist the record
// @Tags         expenses
// @Accept       json
// @Produce      json
// @Param        request body ExpenseRequest true "Expense"
// @Success      201 {object} response.APIResponse{data=Expense}
// @Failure      400 {object} response.APIResponse
// @Router       /expenses [post]
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req ExpenseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	expense, err := h.service.Create(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, expense)
}

// Update handles PUT /expenses/{timestamp}
// @Summary      Edit an expense
// @Description  Replace the expense stored under the timestamp; the timestamp itself never changes
// @Tags         expenses
// @Accept       json
// @Produce      json
// @Param        timestamp path string true "Expense timestamp"
// @Param        request body ExpenseRequest true "Replacement expense"
// @Success      200 {object} response.APIResponse{data=Expense}
// @Failure      400 {object} response.APIResponse
// @Failure      404 {object} response.APIResponse
// @Router       /expenses/{timestamp} [put]
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	timestamp := chi.URLParam(r, "timestamp")

	var req ExpenseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	expense, err := h.service.Update(r.Context(), timestamp, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, expense)
}

// Delete handles DELETE /expenses/{timestamp}
// @Summary      Delete an expense
// @Tags         expenses
// @Produce      json
// @Param        timestamp path string true "Expense timestamp"
// @Success      200 {object} response.APIResponse
// @Failure      404 {object} response.APIResponse
// @Router       /expenses/{timestamp} [delete]
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	timestamp := chi.URLParam(r, "timestamp")

	if err := h.service.Delete(r.Context(), timestamp); err != nil {
		writeError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, map[string]string{"message": "Expense deleted"})
}
