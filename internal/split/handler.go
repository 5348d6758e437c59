package split

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/maxiapp/maxi/internal/allocation"
	"github.com/maxiapp/maxi/internal/settlement"
	"github.com/maxiapp/maxi/pkg/middleware"
	"github.com/maxiapp/maxi/pkg/response"
)

// Handler handles HTTP requests for split operations.
type Handler struct {
	service *Service
}

// NewHandler creates a new split handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Register mounts the split endpoints on the shared /requests router.
func (h *Handler) Register(r chi.Router) {
	r.Post("/split", h.Create)
	r.Post("/{id}/expenses", h.AddExpense)
	r.Post("/items/{itemID}/approve", h.ApproveExpense)
	r.Post("/items/{itemID}/reject", h.RejectExpense)
	r.Put("/{id}/method", h.SetMethod)
	r.Post("/{id}/adjust", h.AdjustShare)
	r.Post("/{id}/send", h.Send)
	r.Get("/{id}/settlement", h.Settlement)
	r.Delete("/{id}", h.Delete)
}

// Create handles POST /requests/split
// @Summary      Create a social split
// @Description  Create a split with its initial expenses and participant roster; a positive deadline opens a consolidation window
// @Tags         splits
// @Accept       json
// @Produce      json
// @Param        request body CreateSplitRequest true "Split creation request"
// @Success      201 {object} response.APIResponse{data=SplitResponse}
// @Failure      400 {object} response.APIResponse
// @Router       /requests/split [post]
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUser(r.Context())

	var req CreateSplitRequest
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

// AddExpense handles POST /requests/{id}/expenses
// @Summary      Add an expense to a split
// @Description  Owner expenses are approved immediately; everyone else's wait in the pending queue
// @Tags         splits
// @Accept       json
// @Produce      json
// @Param        id path string true "Split ID"
// @Param        request body AddExpenseRequest true "Expense"
// @Success      201 {object} response.APIResponse{data=SplitResponse}
// @Failure      404 {object} response.APIResponse
// @Router       /requests/{id}/expenses [post]
func (h *Handler) AddExpense(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUser(r.Context())

	var req AddExpenseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	resp, err := h.service.AddExpense(r.Context(), chi.URLParam(r, "id"), Actor(user), &req)
	if err != nil {
		h.writeError(w, err)
		return
	}
	response.JSON(w, http.StatusCreated, resp)
}

// ApproveExpense handles POST /requests/items/{itemID}/approve
// @Summary      Approve a pending expense
// @Tags         splits
// @Produce      json
// @Param        itemID path string true "Expense ID"
// @Success      200 {object} response.APIResponse{data=SplitResponse}
// @Failure      403 {object} response.APIResponse
// @Failure      404 {object} response.APIResponse
// @Router       /requests/items/{itemID}/approve [post]
func (h *Handler) ApproveExpense(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUser(r.Context())

	resp, err := h.service.ApproveExpense(r.Context(), chi.URLParam(r, "itemID"), Actor(user))
	if err != nil {
		h.writeError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, resp)
}

// RejectExpense handles POST /requests/items/{itemID}/reject
// @Summary      Reject a pending expense
// @Tags         splits
// @Produce      json
// @Param        itemID path string true "Expense ID"
// @Success      200 {object} response.APIResponse{data=SplitResponse}
// @Failure      403 {object} response.APIResponse
// @Failure      404 {object} response.APIResponse
// @Router       /requests/items/{itemID}/reject [post]
func (h *Handler) RejectExpense(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUser(r.Context())

	resp, err := h.service.RejectExpense(r.Context(), chi.URLParam(r, "itemID"), Actor(user))
	if err != nil {
		h.writeError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, resp)
}

// SetMethod handles PUT /requests/{id}/method
// @Summary      Switch allocation method
// @Description  Recomputes every participant's percent and share under equally, percentage or fixed_amount
// @Tags         splits
// @Accept       json
// @Produce      json
// @Param        id path string true "Split ID"
// @Param        request body SetMethodRequest true "Allocation method"
// @Success      200 {object} response.APIResponse{data=SplitResponse}
// @Failure      400 {object} response.APIResponse
// @Router       /requests/{id}/method [put]
func (h *Handler) SetMethod(w http.ResponseWriter, r *http.Request) {
	var req SetMethodRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	resp, err := h.service.SetMethod(r.Context(), chi.URLParam(r, "id"), req.Method)
	if err != nil {
		h.writeError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, resp)
}

// AdjustShare handles POST /requests/{id}/adjust
// @Summary      Adjust one participant's share
// @Description  Applies a percentage step or a fixed amount; any drift is reported in the reconciliation block
// @Tags         splits
// @Accept       json
// @Produce      json
// @Param        id path string true "Split ID"
// @Param        request body AdjustShareRequest true "Adjustment"
// @Success      200 {object} response.APIResponse{data=SplitResponse}
// @Failure      400 {object} response.APIResponse
// @Router       /requests/{id}/adjust [post]
func (h *Handler) AdjustShare(w http.ResponseWriter, r *http.Request) {
	var req AdjustShareRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	resp, err := h.service.AdjustShare(r.Context(), chi.URLParam(r, "id"), &req)
	if err != nil {
		h.writeError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, resp)
}

// Send handles POST /requests/{id}/send
// @Summary      Finalize the review step and issue the share link
// @Tags         splits
// @Produce      json
// @Param        id path string true "Split ID"
// @Success      200 {object} response.APIResponse
// @Failure      409 {object} response.APIResponse
// @Router       /requests/{id}/send [post]
func (h *Handler) Send(w http.ResponseWriter, r *http.Request) {
	link, err := h.service.Send(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, map[string]string{"link": link})
}

// Settlement handles GET /requests/{id}/settlement
// @Summary      Net positions and payment plan
// @Tags         splits
// @Produce      json
// @Param        id path string true "Split ID"
// @Success      200 {object} response.APIResponse{data=SettlementResponse}
// @Failure      404 {object} response.APIResponse
// @Router       /requests/{id}/settlement [get]
func (h *Handler) Settlement(w http.ResponseWriter, r *http.Request) {
	resp, err := h.service.Settlement(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, resp)
}

// Delete handles DELETE /requests/{id}
// @Summary      Abandon a split
// @Description  Stops the consolidation timer and removes the split
// @Tags         splits
// @Produce      json
// @Param        id path string true "Split ID"
// @Success      200 {object} response.APIResponse
// @Failure      403 {object} response.APIResponse
// @Failure      404 {object} response.APIResponse
// @Router       /requests/{id} [delete]
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUser(r.Context())

	if err := h.service.Delete(r.Context(), chi.URLParam(r, "id"), Actor(user)); err != nil {
		h.writeError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, map[string]string{"message": "Split deleted"})
}

func (h *Handler) writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrSplitNotFound), errors.Is(err, ErrExpenseNotFound):
		response.NotFound(w, err.Error())
	case errors.Is(err, ErrNotOwner):
		response.Forbidden(w, err.Error())
	case errors.Is(err, ErrSplitFinalized):
		response.Conflict(w, err.Error())
	case errors.Is(err, ErrNotReconciled):
		response.ReconciliationFailed(w, err.Error())
	case errors.Is(err, ErrMissingTitle),
		errors.Is(err, ErrNoExpenses),
		errors.Is(err, ErrEmptyDescription),
		errors.Is(err, ErrInvalidAmount):
		response.Validation(w, err.Error())
	case errors.Is(err, settlement.ErrNoParticipants):
		response.PreconditionFailed(w, err.Error())
	case errors.Is(err, allocation.ErrUnknownMethod), errors.Is(err, ErrInvalidAdjustment):
		response.BadRequest(w, err.Error())
	default:
		response.InternalError(w, "Unexpected error")
	}
}
