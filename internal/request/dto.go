package request

import (
	"time"

	"github.com/maxiapp/maxi/internal/invoice"
	"github.com/maxiapp/maxi/internal/split"
)

// RequestSummary is one card in the received or sent feed, regardless of
// whether it backs an invoice or a split.
type RequestSummary struct {
	ID              string  `json:"id"`
	Kind            Kind    `json:"type"`
	Title           string  `json:"title"`
	Subtitle        string  `json:"subtitle"`
	Amount          float64 `json:"amount"`
	Status          string  `json:"status"`
	IsConsolidating bool    `json:"isConsolidating"`
	Deadline        *string `json:"deadline,omitempty"`
	Photo           string  `json:"photo,omitempty"`
}

// CommentRequest is the body for POST /requests/{id}/comments.
type CommentRequest struct {
	Text     string `json:"text"`
	ImageURL string `json:"image_url,omitempty"`
}

// CommentResponse is one social feed entry.
type CommentResponse struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	ImageURL  string `json:"image_url,omitempty"`
	UserName  string `json:"user_name"`
	CreatedAt string `json:"created_at"`
}

// RequestDetail is the full view of one request: the kind-specific document
// plus the shared social feed.
type RequestDetail struct {
	ID       string                   `json:"id"`
	Kind     Kind                     `json:"type"`
	Invoice  *invoice.InvoiceResponse `json:"invoice,omitempty"`
	Split    *split.SplitResponse     `json:"split,omitempty"`
	Comments []CommentResponse        `json:"comments"`
}

func toCommentResponse(c *Comment) CommentResponse {
	return CommentResponse{
		ID:        c.ID,
		Text:      c.Text,
		ImageURL:  c.ImageURL,
		UserName:  c.UserName,
		CreatedAt: c.CreatedAt.Format(time.RFC3339),
	}
}
