package pot

import "time"

// Transaction types. Contributions carry positive amounts, expenses
// negative ones, so the balance is always a plain sum over the feed.
const (
	TypeContribution = "Contribution"
	TypeExpense      = "Expense"
)

// Frequency values for a scheduled contribution.
const (
	FrequencyOneTime = "One-Time"
	FrequencyWeekly  = "Weekly"
	FrequencyMonthly = "Monthly"
)

// Schedule is the pot's recurring contribution ask.
type Schedule struct {
	Amount    float64 `json:"amount"`
	Frequency string  `json:"frequency"`
	DueDay    int     `json:"due_day,omitempty"`
}

// Member is one person with access to the pot.
type Member struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Transaction is one feed entry, money in or money out.
type Transaction struct {
	ID          string    `json:"id"`
	Type        string    `json:"type"`
	Description string    `json:"description"`
	Amount      float64   `json:"amount"`
	UserID      string    `json:"user_id"`
	UserName    string    `json:"user_name"`
	Date        time.Time `json:"date"`
}

// Pot is a shared money pool with an admin, members, a contribution
// schedule and a transaction feed.
type Pot struct {
	ID        string         `json:"id"`
	Name      string         `json:"name"`
	AdminID   string         `json:"admin_id"`
	Members   []*Member      `json:"members"`
	Schedule  Schedule       `json:"schedule"`
	Feed      []*Transaction `json:"feed"`
	CreatedAt time.Time      `json:"created_at"`
}

// Balance sums the whole feed.
func (p *Pot) Balance() float64 {
	var total float64
	for _, t := range p.Feed {
		total += t.Amount
	}
	return total
}

// IsMember reports whether the given user has access to the pot.
func (p *Pot) IsMember(userID string) bool {
	for _, m := range p.Members {
		if m.ID == userID {
			return true
		}
	}
	return false
}

// ContributionsBy sums the contributions a member has paid in. Expenses do
// not count against a member's tally.
func (p *Pot) ContributionsBy(userID string) float64 {
	var total float64
	for _, t := range p.Feed {
		if t.UserID == userID && t.Type == TypeContribution {
			total += t.Amount
		}
	}
	return total
}
