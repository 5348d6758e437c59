package invoice

import (
	"time"

	"github.com/maxiapp/maxi/internal/money"
)

// LineItemInput is one billed row in a creation request.
type LineItemInput struct {
	Description string  `json:"desc"`
	Amount      float64 `json:"amount"`
}

// CreateInvoiceRequest is the body for POST /requests/create. The field
// names follow the invoice composer form.
type CreateInvoiceRequest struct {
	ClientName      string          `json:"clientName"`
	Items           []LineItemInput `json:"items"`
	VATPercent      float64         `json:"vat"`
	Note            string          `json:"nextSteps,omitempty"`
	DueDate         string          `json:"dueDate,omitempty"`
	ReminderProfile string          `json:"reminderProfile,omitempty"`
}

// ScanRequest is the body for POST /scan-invoice: the recognized text of a
// receipt. An OCR pipeline in front of this API fills Text in.
type ScanRequest struct {
	Text string `json:"text"`
}

// LineItemResponse is one billed row in an invoice view.
type LineItemResponse struct {
	ID          string  `json:"id"`
	Description string  `json:"desc"`
	Amount      float64 `json:"amount"`
}

// InvoiceResponse is the full outward-facing view of an invoice.
type InvoiceResponse struct {
	ID              string             `json:"id"`
	Number          string             `json:"number"`
	ClientName      string             `json:"client"`
	CreatorName     string             `json:"creator_name"`
	Items           []LineItemResponse `json:"items"`
	Subtotal        float64            `json:"subtotal"`
	VATPercent      float64            `json:"vat_percent"`
	VATAmount       float64            `json:"vat_amount"`
	GrandTotal      float64            `json:"grand_total"`
	GrandTotalShown string             `json:"grand_total_display"`
	Note            string             `json:"note,omitempty"`
	DueDate         *string            `json:"due_date,omitempty"`
	ReminderProfile string             `json:"reminder_profile,omitempty"`
	Status          string             `json:"status"`
	Recipient       Recipient          `json:"recipient"`
	CreatedAt       string             `json:"created_at"`
}

// ToResponse converts an Invoice to its outward-facing form.
func (inv *Invoice) ToResponse() *InvoiceResponse {
	items := make([]LineItemResponse, len(inv.Items))
	for i, item := range inv.Items {
		items[i] = LineItemResponse{
			ID:          item.ID,
			Description: item.Description,
			Amount:      item.Amount,
		}
	}

	var dueDate *string
	if inv.DueDate != nil {
		d := inv.DueDate.Format(time.RFC3339)
		dueDate = &d
	}

	return &InvoiceResponse{
		ID:              inv.ID,
		Number:          inv.Number,
		ClientName:      inv.ClientName,
		CreatorName:     inv.CreatorName,
		Items:           items,
		Subtotal:        money.Round(inv.Subtotal),
		VATPercent:      inv.VATPercent,
		VATAmount:       money.Round(inv.VATAmount),
		GrandTotal:      money.Round(inv.GrandTotal),
		GrandTotalShown: money.Format(inv.GrandTotal),
		Note:            inv.Note,
		DueDate:         dueDate,
		ReminderProfile: inv.ReminderProfile,
		Status:          inv.Status,
		Recipient:       inv.Recipient,
		CreatedAt:       inv.CreatedAt.Format(time.RFC3339),
	}
}
