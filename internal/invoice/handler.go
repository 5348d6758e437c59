package invoice

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/maxiapp/maxi/pkg/middleware"
	"github.com/maxiapp/maxi/pkg/response"
)

// Handler handles HTTP requests for invoice operations.
type Handler struct {
	service *Service
}

// NewHandler creates a new invoice handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Register mounts the invoice endpoints on the shared /requests router.
func (h *Handler) Register(r chi.Router) {
	r.Post("/create", h.Create)
}

// Create handles POST /requests/create
// @Summary      Create an SME invoice
// @Description  Computes subtotal, VAT and grand total; the client owes the grand total
// @Tags         invoices
// @Accept       json
// @Produce      json
// @Param        request body CreateInvoiceRequest true "Invoice composer form"
// @Success      201 {object} response.APIResponse{data=InvoiceResponse}
// @Failure      400 {object} response.APIResponse
// @Router       /requests/create [post]
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUser(r.Context())

	var req CreateInvoiceRequest
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

// Scan handles POST /scan-invoice
// @Summary      Parse recognized receipt text into an invoice draft
// @Tags         invoices
// @Accept       json
// @Produce      json
// @Param        request body ScanRequest true "Recognized receipt text"
// @Success      200 {object} response.APIResponse{data=ScanResult}
// @Failure      400 {object} response.APIResponse
// @Router       /scan-invoice [post]
func (h *Handler) Scan(w http.ResponseWriter, r *http.Request) {
	var req ScanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}
	if req.Text == "" {
		response.Validation(w, "Missing receipt text")
		return
	}
	response.JSON(w, http.StatusOK, h.service.Scan(r.Context(), &req))
}

func (h *Handler) writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrInvoiceNotFound):
		response.NotFound(w, err.Error())
	case errors.Is(err, ErrMissingClient),
		errors.Is(err, ErrNoItems),
		errors.Is(err, ErrInvalidItem),
		errors.Is(err, ErrInvalidVAT):
		response.Validation(w, err.Error())
	default:
		response.InternalError(w, "Unexpected error")
	}
}
