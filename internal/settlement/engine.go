package settlement

import (
	"errors"

	"github.com/maxiapp/maxi/internal/money"
)

// Self is the display name the current user always participates under.
// The settlement divisor includes them even with zero contribution.
const Self = "You"

// settledTolerance absorbs floating point noise when classifying a net
// position as settled.
const settledTolerance = 0.01

var ErrNoParticipants = errors.New("settlement requires at least one participant")

// Classification says which side of the pot a participant ended up on.
type Classification string

const (
	Debtor   Classification = "debtor"
	Creditor Classification = "creditor"
	Settled  Classification = "settled"
)

// Expense is one contribution toward the pot, attributed to its payer.
type Expense struct {
	Payer  string
	Amount float64
}

// Position is one participant's final standing: what they put in, what an
// equal share would have been, and the signed difference between the two.
type Position struct {
	Name           string         `json:"name"`
	Contribution   float64        `json:"contribution"`
	Share          float64        `json:"share"`
	Net            float64        `json:"net"`
	Classification Classification `json:"classification"`
}

// StatusLine renders the per-person status string shown on both the payer
// and creator dashboards, e.g. "Owes € 500.00" or "Creditor (+€ 250.00)".
func (p Position) StatusLine() string {
	switch p.Classification {
	case Debtor:
		return "Owes " + money.Format(-p.Net)
	case Creditor:
		return "Creditor (+" + money.Format(p.Net) + ")"
	default:
		return "Settled"
	}
}

// Result is the full outcome of settling a split. It is derived data:
// recomputing it from the same expenses and participants is idempotent.
type Result struct {
	Total          float64    `json:"total"`
	SharePerPerson float64    `json:"share_per_person"`
	Positions      []Position `json:"positions"`
}

// Position looks up a participant's position by name.
func (r Result) Position(name string) (Position, bool) {
	for _, p := range r.Positions {
		if p.Name == name {
			return p, true
		}
	}
	return Position{}, false
}

// Settle nets each participant's contribution against an equal-share
// baseline.
//
// The divisor is the union of everyone who contributed, everyone declared a
// participant, and the current user — not just the declared list. Positions
// come back in a stable order: declared participants first, then undeclared
// payers by first appearance, then the current user if absent from both.
func Settle(expenses []Expense, participants []string) (Result, error) {
	contributions := make(map[string]float64)
	var total float64
	for _, e := range expenses {
		contributions[e.Payer] += e.Amount
		total += e.Amount
	}

	roster := make([]string, 0, len(participants)+len(contributions)+1)
	seen := make(map[string]bool)
	add := func(name string) {
		if name == "" || seen[name] {
			return
		}
		seen[name] = true
		roster = append(roster, name)
	}
	for _, name := range participants {
		add(name)
	}
	for _, e := range expenses {
		add(e.Payer)
	}
	add(Self)

	// "You" is always added above, so an empty roster means the inputs were
	// nonsense. Fail loudly rather than divide by zero.
	if len(roster) == 0 {
		return Result{}, ErrNoParticipants
	}

	share := total / float64(len(roster))

	positions := make([]Position, len(roster))
	for i, name := range roster {
		net := contributions[name] - share
		positions[i] = Position{
			Name:           name,
			Contribution:   contributions[name],
			Share:          share,
			Net:            net,
			Classification: classify(net),
		}
	}

	return Result{
		Total:          total,
		SharePerPerson: share,
		Positions:      positions,
	}, nil
}

func classify(net float64) Classification {
	switch {
	case net < -settledTolerance:
		return Debtor
	case net > settledTolerance:
		return Creditor
	default:
		return Settled
	}
}
