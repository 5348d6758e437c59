package invoice

import "context"

// Repository holds invoices in memory, one map plus an insertion-order
// index, accessed only through the owning Service.
type Repository struct {
	invoices map[string]*Invoice
	order    []string
}

// NewRepository creates an empty in-memory invoice store.
func NewRepository() *Repository {
	return &Repository{invoices: make(map[string]*Invoice)}
}

// Create stores a new invoice.
func (r *Repository) Create(ctx context.Context, inv *Invoice) error {
	r.invoices[inv.ID] = inv
	r.order = append(r.order, inv.ID)
	return nil
}

// GetByID retrieves an invoice, or nil if the id is unknown.
func (r *Repository) GetByID(ctx context.Context, id string) (*Invoice, error) {
	return r.invoices[id], nil
}

// List returns all invoices in creation order.
func (r *Repository) List(ctx context.Context) ([]*Invoice, error) {
	out := make([]*Invoice, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.invoices[id])
	}
	return out, nil
}
