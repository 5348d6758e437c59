package settlement

import (
	"math"
	"sort"

	"github.com/maxiapp/maxi/internal/money"
)

// Transfer is one payment in a simplified settlement plan.
type Transfer struct {
	From   string  `json:"from"`
	To     string  `json:"to"`
	Amount float64 `json:"amount"`
}

// SimplifyDebts turns a set of net positions into a minimal payment plan
// using greedy matching: the largest debt is paired against the largest
// credit until both sides are exhausted. Positions within a cent of zero
// are treated as already settled.
func SimplifyDebts(net map[string]float64) []Transfer {
	type balance struct {
		person string
		amount float64
	}

	var debtors, creditors []balance
	for person, amount := range net {
		amount = money.Round(amount)
		switch {
		case amount < -settledTolerance:
			debtors = append(debtors, balance{person, amount})
		case amount > settledTolerance:
			creditors = append(creditors, balance{person, amount})
		}
	}

	// Biggest debts against biggest credits; name as tie-break so the plan
	// is deterministic regardless of map order.
	sort.Slice(debtors, func(i, j int) bool {
		if debtors[i].amount != debtors[j].amount {
			return debtors[i].amount < debtors[j].amount
		}
		return debtors[i].person < debtors[j].person
	})
	sort.Slice(creditors, func(i, j int) bool {
		if creditors[i].amount != creditors[j].amount {
			return creditors[i].amount > creditors[j].amount
		}
		return creditors[i].person < creditors[j].person
	})

	var plan []Transfer
	d, c := 0, 0
	for d < len(debtors) && c < len(creditors) {
		debtor := &debtors[d]
		creditor := &creditors[c]

		amount := math.Min(-debtor.amount, creditor.amount)
		plan = append(plan, Transfer{
			From:   debtor.person,
			To:     creditor.person,
			Amount: money.Round(amount),
		})

		debtor.amount += amount
		creditor.amount -= amount

		if math.Abs(debtor.amount) < settledTolerance {
			d++
		}
		if creditor.amount < settledTolerance {
			c++
		}
	}

	return plan
}
