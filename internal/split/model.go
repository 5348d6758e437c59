package split

import (
	"time"

	"github.com/maxiapp/maxi/internal/allocation"
)

// Status represents where a split is in its lifecycle.
type Status string

const (
	// StatusOpen means the split has no deadline: shares follow the equal
	// split of whatever approved expenses exist, and expenses may still be
	// added.
	StatusOpen Status = "Open"
	// StatusConsolidating means the deadline window is still running.
	StatusConsolidating Status = "Consolidating"
	// StatusFinalized means the deadline passed, settlement has run, and no
	// further expense mutation is allowed.
	StatusFinalized Status = "Finalized"
)

// Role distinguishes the split's creator from everyone else. Only the owner
// bypasses the approval queue and decides on pending expenses.
type Role string

const (
	RoleOwner  Role = "owner"
	RoleMember Role = "member"
)

// Participant is one member of a split. The ID is stable and assigned at
// split creation; the name is a display attribute (duplicate names are
// deduplicated when the split is created, not here).
type Participant struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Role    Role    `json:"role"`
	Percent float64 `json:"percent"`
	Share   float64 `json:"share"`

	// Settlement output, refreshed every time the engine runs.
	NetPosition float64 `json:"net_position"`
	Status      string  `json:"status"`
}

// Expense is one line item. Approval state is positional: an expense lives
// either in the split's approved sequence or its pending queue, never both.
type Expense struct {
	ID          string    `json:"id"`
	Description string    `json:"description"`
	Amount      float64   `json:"amount"`
	PayerID     string    `json:"payer_id"`
	PayerName   string    `json:"payer_name"`
	CreatedAt   time.Time `json:"created_at"`
}

// Split is the aggregate root for a group expense.
type Split struct {
	ID          string            `json:"id"`
	Title       string            `json:"title"`
	PhotoURL    string            `json:"photo_url,omitempty"`
	Method      allocation.Method `json:"method"`
	CreatorID   string            `json:"creator_id"`
	CreatorName string            `json:"creator_name"`

	Deadline        *time.Time `json:"deadline,omitempty"`
	IsConsolidating bool       `json:"is_consolidating"`
	Status          Status     `json:"status"`

	Participants []*Participant `json:"participants"`
	Approved     []*Expense     `json:"approved"`
	Pending      []*Expense     `json:"pending"`

	// Total is derived: the sum of the approved sequence only. Pending
	// amounts never count toward it.
	Total float64 `json:"total"`

	CreatedAt time.Time `json:"created_at"`
}

// Owner returns the creator's participant record.
func (s *Split) Owner() *Participant {
	for _, p := range s.Participants {
		if p.Role == RoleOwner {
			return p
		}
	}
	return nil
}

// ParticipantNames returns display names in roster order.
func (s *Split) ParticipantNames() []string {
	names := make([]string, len(s.Participants))
	for i, p := range s.Participants {
		names[i] = p.Name
	}
	return names
}

// RecomputeTotal re-derives the total pot from the approved expense list.
func (s *Split) RecomputeTotal() {
	var total float64
	for _, e := range s.Approved {
		total += e.Amount
	}
	s.Total = total
}
