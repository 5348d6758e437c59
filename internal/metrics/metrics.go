// Package metrics exposes the application's Prometheus instrumentation.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	SplitsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "maxi_splits_created_total",
		Help: "Number of splits created.",
	})
	SplitsFinalized = promauto.NewCounter(prometheus.CounterOpts{
		Name: "maxi_splits_finalized_total",
		Help: "Number of splits finalized by deadline expiry.",
	})
	ExpensesAdded = promauto.NewCounter(prometheus.CounterOpts{
		Name: "maxi_expenses_added_total",
		Help: "Number of expenses submitted to splits, approved or pending.",
	})
	ExpensesApproved = promauto.NewCounter(prometheus.CounterOpts{
		Name: "maxi_expenses_approved_total",
		Help: "Number of pending expenses approved by split owners.",
	})
	ExpensesRejected = promauto.NewCounter(prometheus.CounterOpts{
		Name: "maxi_expenses_rejected_total",
		Help: "Number of pending expenses rejected by split owners.",
	})
	SettlementsComputed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "maxi_settlements_computed_total",
		Help: "Number of settlement engine runs.",
	})
	InvoicesCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "maxi_invoices_created_total",
		Help: "Number of invoices created.",
	})
	PotTransactions = promauto.NewCounter(prometheus.CounterOpts{
		Name: "maxi_pot_transactions_total",
		Help: "Number of pot contributions and expenses logged.",
	})
)

// Handler serves the Prometheus scrape endpoint.
func Handler() http.Handler {
	return promhttp.Handler()
}
