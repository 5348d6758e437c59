package request

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/maxiapp/maxi/pkg/middleware"
	"github.com/maxiapp/maxi/pkg/response"
)

// Handler handles HTTP requests for the unified feed.
type Handler struct {
	service *Service
}

// NewHandler creates a new request feed handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Register mounts the feed endpoints on the shared /requests router. The
// literal routes (received, sent) must be registered before the {id}
// wildcards by the caller; chi resolves static segments first anyway.
func (h *Handler) Register(r chi.Router) {
	r.Get("/received", h.Received)
	r.Get("/sent", h.Sent)
	r.Get("/{id}", h.Detail)
	r.Post("/{id}/comments", h.AddComment)
}

// Received handles GET /requests/received
// @Summary      Requests where the acting user is a participant
// @Description  The payer dashboard; amounts shown are the viewer's own net share
// @Tags         requests
// @Produce      json
// @Success      200 {object} response.APIResponse{data=[]RequestSummary}
// @Router       /requests/received [get]
func (h *Handler) Received(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUser(r.Context())

	resp, err := h.service.Received(r.Context(), Actor(user))
	if err != nil {
		h.writeError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, resp)
}

// Sent handles GET /requests/sent
// @Summary      Requests created by the acting user
// @Tags         requests
// @Produce      json
// @Success      200 {object} response.APIResponse{data=[]RequestSummary}
// @Router       /requests/sent [get]
func (h *Handler) Sent(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUser(r.Context())

	resp, err := h.service.Sent(r.Context(), Actor(user))
	if err != nil {
		h.writeError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, resp)
}

// Detail handles GET /requests/{id}
// @Summary      Full detail for one request
// @Description  Resolves the id against invoices and splits and includes the comment feed
// @Tags         requests
// @Produce      json
// @Param        id path string true "Request ID"
// @Success      200 {object} response.APIResponse{data=RequestDetail}
// @Failure      404 {object} response.APIResponse
// @Router       /requests/{id} [get]
func (h *Handler) Detail(w http.ResponseWriter, r *http.Request) {
	resp, err := h.service.Detail(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, resp)
}

// AddComment handles POST /requests/{id}/comments
// @Summary      Comment on a request
// @Tags         requests
// @Accept       json
// @Produce      json
// @Param        id path string true "Request ID"
// @Param        request body CommentRequest true "Comment"
// @Success      201 {object} response.APIResponse{data=CommentResponse}
// @Failure      404 {object} response.APIResponse
// @Router       /requests/{id}/comments [post]
func (h *Handler) AddComment(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUser(r.Context())

	var req CommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	resp, err := h.service.AddComment(r.Context(), chi.URLParam(r, "id"), Actor(user), &req)
	if err != nil {
		h.writeError(w, err)
		return
	}
	response.JSON(w, http.StatusCreated, resp)
}

func (h *Handler) writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrRequestNotFound):
		response.NotFound(w, err.Error())
	case errors.Is(err, ErrEmptyComment):
		response.Validation(w, err.Error())
	default:
		response.InternalError(w, "Unexpected error")
	}
}
