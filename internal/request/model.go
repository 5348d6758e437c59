package request

import "time"

// Kind discriminates the two request variants in the unified feed.
type Kind string

const (
	KindInvoice Kind = "invoice"
	KindSplit   Kind = "split"
)

// Comment is one entry in a request's social feed.
type Comment struct {
	ID        string    `json:"id"`
	RequestID string    `json:"request_id"`
	UserID    string    `json:"user_id"`
	UserName  string    `json:"user_name"`
	Text      string    `json:"text"`
	ImageURL  string    `json:"image_url,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
