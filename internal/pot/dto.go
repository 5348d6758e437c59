package pot

import (
	"time"

	"github.com/maxiapp/maxi/internal/money"
)

// ScheduleInput carries the contribution schedule in create and update
// requests.
type ScheduleInput struct {
	Amount    float64 `json:"amount"`
	Frequency string  `json:"frequency"`
	DueDay    int     `json:"due_day,omitempty"`
}

// CreatePotRequest is the body for POST /pots.
type CreatePotRequest struct {
	Name     string        `json:"name"`
	Schedule ScheduleInput `json:"schedule"`
}

// ContributionRequest is the body for POST /pots/{id}/contributions.
type ContributionRequest struct {
	Amount      float64 `json:"amount"`
	Description string  `json:"description,omitempty"`
}

// ExpenseRequest is the body for POST /pots/{id}/expenses. The amount is
// taken as an absolute value and recorded negative.
type ExpenseRequest struct {
	Amount      float64 `json:"amount"`
	Description string  `json:"description"`
}

// PotSummary is one card in the pots list.
type PotSummary struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	TotalBalance float64 `json:"totalBalance"`
	MemberCount  int     `json:"memberCount"`
}

// TallyEntry is one member's lifetime contribution total.
type TallyEntry struct {
	UserID    string  `json:"user_id"`
	Name      string  `json:"name"`
	TotalPaid float64 `json:"total_paid"`
}

// TransactionResponse is one feed entry in a pot view.
type TransactionResponse struct {
	ID          string  `json:"id"`
	Type        string  `json:"type"`
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
	UserName    string  `json:"user_name"`
	Date        string  `json:"date"`
}

// PotDetail is the full dashboard view of one pot.
type PotDetail struct {
	ID                string                `json:"id"`
	Name              string                `json:"name"`
	AdminID           string                `json:"admin_id"`
	IsAdmin           bool                  `json:"is_admin"`
	TotalBalance      float64               `json:"totalBalance"`
	Schedule          Schedule              `json:"schedule"`
	ContributionTally []TallyEntry          `json:"contributionTally"`
	TransactionFeed   []TransactionResponse `json:"transactionFeed"`
}

// TransactionResult is returned after money moves: the new entry plus the
// resulting balance.
type TransactionResult struct {
	NewTransaction TransactionResponse `json:"newTransaction"`
	TotalBalance   float64             `json:"totalBalance"`
}

func (p *Pot) toSummary() PotSummary {
	return PotSummary{
		ID:           p.ID,
		Name:         p.Name,
		TotalBalance: money.Round(p.Balance()),
		MemberCount:  len(p.Members),
	}
}

// toDetail renders the dashboard view for the given viewer. The feed is
// newest first.
func (p *Pot) toDetail(viewerID string) *PotDetail {
	tally := make([]TallyEntry, len(p.Members))
	for i, m := range p.Members {
		tally[i] = TallyEntry{
			UserID:    m.ID,
			Name:      m.Name,
			TotalPaid: money.Round(p.ContributionsBy(m.ID)),
		}
	}

	feed := make([]TransactionResponse, len(p.Feed))
	for i, t := range p.Feed {
		feed[len(p.Feed)-1-i] = toTransactionResponse(t)
	}

	return &PotDetail{
		ID:                p.ID,
		Name:              p.Name,
		AdminID:           p.AdminID,
		IsAdmin:           p.AdminID == viewerID,
		TotalBalance:      money.Round(p.Balance()),
		Schedule:          p.Schedule,
		ContributionTally: tally,
		TransactionFeed:   feed,
	}
}

func toTransactionResponse(t *Transaction) TransactionResponse {
	return TransactionResponse{
		ID:          t.ID,
		Type:        t.Type,
		Description: t.Description,
		Amount:      t.Amount,
		UserName:    t.UserName,
		Date:        t.Date.Format(time.RFC3339),
	}
}
