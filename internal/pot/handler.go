package pot

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/maxiapp/maxi/pkg/middleware"
	"github.com/maxiapp/maxi/pkg/response"
)

// Handler handles HTTP requests for pot operations.
type Handler struct {
	service *Service
}

// NewHandler creates a new pot handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the pot feature router.
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Post("/", h.Create)
	r.Get("/", h.List)
	r.Get("/{id}", h.Get)
	r.Post("/{id}/contributions", h.Contribute)
	r.Post("/{id}/expenses", h.LogExpense)
	r.Put("/{id}/schedule", h.UpdateSchedule)
	return r
}

// Create handles POST /pots
// @Summary      Create a group pot
// @Description  The creator becomes the admin and first member
// @Tags         pots
// @Accept       json
// @Produce      json
// @Param        request body CreatePotRequest true "Pot creation request"
// @Success      201 {object} response.APIResponse{data=PotSummary}
// @Failure      400 {object} response.APIResponse
// @Router       /pots [post]
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUser(r.Context())

	var req CreatePotRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	resp, err := h.service.Create(r.Context(), Actor(user), &req)
	if err != nil {
		h.writeError(w, err)
		return
	}
	response.JSON(w, http.StatusCreated, resp)
}

// List handles GET /pots
// @Summary      List the acting user's pots
// @Tags         pots
// @Produce      json
// @Success      200 {object} response.APIResponse{data=[]PotSummary}
// @Router       /pots [get]
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUser(r.Context())

	resp, err := h.service.List(r.Context(), Actor(user))
	if err != nil {
		h.writeError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, resp)
}

// Get handles GET /pots/{id}
// @Summary      Pot dashboard
// @Description  Balance, schedule, contribution tally and the transaction feed
// @Tags         pots
// @Produce      json
// @Param        id path string true "Pot ID"
// @Success      200 {object} response.APIResponse{data=PotDetail}
// @Failure      404 {object} response.APIResponse
// @Router       /pots/{id} [get]
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUser(r.Context())

	resp, err := h.service.Get(r.Context(), chi.URLParam(r, "id"), Actor(user))
	if err != nil {
		h.writeError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, resp)
}

// Contribute handles POST /pots/{id}/contributions
// @Summary      Pay money into a pot
// @Tags         pots
// @Accept       json
// @Produce      json
// @Param        id path string true "Pot ID"
// @Param        request body ContributionRequest true "Contribution"
// @Success      201 {object} response.APIResponse{data=TransactionResult}
// @Failure      403 {object} response.APIResponse
// @Router       /pots/{id}/contributions [post]
func (h *Handler) Contribute(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUser(r.Context())

	var req ContributionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	resp, err := h.service.Contribute(r.Context(), chi.URLParam(r, "id"), Actor(user), &req)
	if err != nil {
		h.writeError(w, err)
		return
	}
	response.JSON(w, http.StatusCreated, resp)
}

// LogExpense handles POST /pots/{id}/expenses
// @Summary      Record money spent from a pot
// @Description  Admin only; the amount is stored negative
// @Tags         pots
// @Accept       json
// @Produce      json
// @Param        id path string true "Pot ID"
// @Param        request body ExpenseRequest true "Expense"
// @Success      201 {object} response.APIResponse{data=TransactionResult}
// @Failure      403 {object} response.APIResponse
// @Router       /pots/{id}/expenses [post]
func (h *Handler) LogExpense(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUser(r.Context())

	var req ExpenseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	resp, err := h.service.LogExpense(r.Context(), chi.URLParam(r, "id"), Actor(user), &req)
	if err != nil {
		h.writeError(w, err)
		return
	}
	response.JSON(w, http.StatusCreated, resp)
}

// UpdateSchedule handles PUT /pots/{id}/schedule
// @Summary      Replace the contribution schedule
// @Description  Admin only
// @Tags         pots
// @Accept       json
// @Produce      json
// @Param        id path string true "Pot ID"
// @Param        request body ScheduleInput true "Schedule"
// @Success      200 {object} response.APIResponse{data=Schedule}
// @Failure      403 {object} response.APIResponse
// @Router       /pots/{id}/schedule [put]
func (h *Handler) UpdateSchedule(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUser(r.Context())

	var req ScheduleInput
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	schedule, err := h.service.UpdateSchedule(r.Context(), chi.URLParam(r, "id"), Actor(user), &req)
	if err != nil {
		h.writeError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, map[string]Schedule{"schedule": schedule})
}

func (h *Handler) writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrPotNotFound):
		response.NotFound(w, err.Error())
	case errors.Is(err, ErrNotAdmin), errors.Is(err, ErrNotMember):
		response.Forbidden(w, err.Error())
	case errors.Is(err, ErrMissingName),
		errors.Is(err, ErrInvalidAmount),
		errors.Is(err, ErrInvalidFrequency),
		errors.Is(err, ErrMissingDescription):
		response.Validation(w, err.Error())
	default:
		response.InternalError(w, "Unexpected error")
	}
}
