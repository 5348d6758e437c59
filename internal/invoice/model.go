package invoice

import "time"

// Status follows the client's payment lifecycle.
const (
	StatusPending = "Pending"
	StatusPaid    = "Paid"
	StatusOverdue = "Overdue"
)

// LineItem is one billed row. Invoice items need no approval queue; they are
// part of the document from the moment it is created.
type LineItem struct {
	ID          string  `json:"id"`
	Description string  `json:"desc"`
	Amount      float64 `json:"amount"`
}

// Recipient is the single participant on an invoice: the client, who owes
// the grand total.
type Recipient struct {
	Name     string  `json:"name"`
	Status   string  `json:"status"`
	Stage    string  `json:"stage"`
	NetShare float64 `json:"net_share"`
}

// Invoice is an SME payment request. Totals are derived at creation and
// never change afterwards.
type Invoice struct {
	ID          string `json:"id"`
	Number      string `json:"number"`
	ClientName  string `json:"client"`
	CreatorID   string `json:"creator_id"`
	CreatorName string `json:"creator_name"`

	Items      []LineItem `json:"items"`
	Subtotal   float64    `json:"subtotal"`
	VATPercent float64    `json:"vat_percent"`
	VATAmount  float64    `json:"vat_amount"`
	GrandTotal float64    `json:"grand_total"`

	Note            string     `json:"note,omitempty"`
	DueDate         *time.Time `json:"due_date,omitempty"`
	ReminderProfile string     `json:"reminder_profile,omitempty"`

	Status    string    `json:"status"`
	Recipient Recipient `json:"recipient"`
	CreatedAt time.Time `json:"created_at"`
}
