package split

import (
	"time"

	"github.com/maxiapp/maxi/internal/money"
	"github.com/maxiapp/maxi/internal/settlement"
)

// ExpenseInput is one line item in a creation or add-expense request.
type ExpenseInput struct {
	Description string  `json:"desc"`
	Amount      float64 `json:"amount"`
}

// CreateSplitRequest is the body for POST /requests/split.
type CreateSplitRequest struct {
	Title         string         `json:"title"`
	Participants  []string       `json:"participants"`
	Expenses      []ExpenseInput `json:"expenses"`
	DeadlineHours int            `json:"deadlineHours"`
	PhotoURL      string         `json:"photo,omitempty"`
}

// AddExpenseRequest is the body for POST /requests/{id}/expenses.
type AddExpenseRequest struct {
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
}

// SetMethodRequest is the body for PUT /requests/{id}/method.
type SetMethodRequest struct {
	Method string `json:"method"`
}

// AdjustShareRequest is the body for POST /requests/{id}/adjust. Exactly one
// of Direction (percentage step) or Amount (fixed amount) must be set.
type AdjustShareRequest struct {
	Index     int      `json:"index"`
	Direction *int     `json:"direction,omitempty"`
	Amount    *float64 `json:"amount,omitempty"`
}

// ParticipantResponse is one row of the per-participant share table.
type ParticipantResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Role        Role    `json:"role"`
	Percent     float64 `json:"percent"`
	Share       float64 `json:"share"`
	NetPosition float64 `json:"net_position"`
	Status      string  `json:"status"`
}

// ExpenseResponse is one line item, approved or pending.
type ExpenseResponse struct {
	ID          string  `json:"id"`
	Description string  `json:"desc"`
	Amount      float64 `json:"amount"`
	PaidBy      string  `json:"paidBy"`
	CreatedAt   string  `json:"created_at"`
}

// ReconciliationResponse reports whether shares currently cover the pot.
type ReconciliationResponse struct {
	OK        bool    `json:"ok"`
	Remainder float64 `json:"remainder"`
	Display   string  `json:"display"`
}

// SplitResponse is the full plain-data view of a split that the rendering
// layer consumes; it exposes no timer or queue internals.
type SplitResponse struct {
	ID              string                 `json:"id"`
	Title           string                 `json:"title"`
	PhotoURL        string                 `json:"photo,omitempty"`
	Method          string                 `json:"method"`
	Status          Status                 `json:"status"`
	IsConsolidating bool                   `json:"isConsolidating"`
	Deadline        *string                `json:"deadline,omitempty"`
	Total           float64                `json:"total"`
	TotalDisplay    string                 `json:"total_display"`
	CreatorName     string                 `json:"creator_name"`
	Participants    []ParticipantResponse  `json:"participants"`
	Items           []ExpenseResponse      `json:"items"`
	PendingItems    []ExpenseResponse      `json:"pendingItems"`
	Reconciliation  ReconciliationResponse `json:"reconciliation"`
	CreatedAt       string                 `json:"created_at"`
}

// SettlementResponse is the outcome of the settlement engine plus the
// simplified payment plan.
type SettlementResponse struct {
	Total          float64               `json:"total"`
	SharePerPerson float64               `json:"share_per_person"`
	Positions      []settlement.Position `json:"positions"`
	Plan           []settlement.Transfer `json:"plan"`
}

// ToResponse converts a Split to its outward-facing form. Amounts are
// rounded to currency precision here; internal state keeps full precision.
func (s *Split) ToResponse() *SplitResponse {
	participants := make([]ParticipantResponse, len(s.Participants))
	for i, p := range s.Participants {
		participants[i] = ParticipantResponse{
			ID:          p.ID,
			Name:        p.Name,
			Role:        p.Role,
			Percent:     money.Round(p.Percent),
			Share:       money.Round(p.Share),
			NetPosition: money.Round(p.NetPosition),
			Status:      p.Status,
		}
	}

	ok, remainder := s.Reconcile()

	var deadline *string
	if s.Deadline != nil {
		d := s.Deadline.Format(time.RFC3339)
		deadline = &d
	}

	return &SplitResponse{
		ID:              s.ID,
		Title:           s.Title,
		PhotoURL:        s.PhotoURL,
		Method:          string(s.Method),
		Status:          s.Status,
		IsConsolidating: s.IsConsolidating,
		Deadline:        deadline,
		Total:           money.Round(s.Total),
		TotalDisplay:    money.Format(s.Total),
		CreatorName:     s.CreatorName,
		Participants:    participants,
		Items:           expenseResponses(s.Approved),
		PendingItems:    expenseResponses(s.Pending),
		Reconciliation: ReconciliationResponse{
			OK:        ok,
			Remainder: remainder,
			Display:   "Remaining: " + money.Format(remainder),
		},
		CreatedAt: s.CreatedAt.Format(time.RFC3339),
	}
}

func expenseResponses(expenses []*Expense) []ExpenseResponse {
	out := make([]ExpenseResponse, len(expenses))
	for i, e := range expenses {
		out[i] = ExpenseResponse{
			ID:          e.ID,
			Description: e.Description,
			Amount:      e.Amount,
			PaidBy:      e.PayerName,
			CreatedAt:   e.CreatedAt.Format(time.RFC3339),
		}
	}
	return out
}
