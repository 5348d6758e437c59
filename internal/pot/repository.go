package pot

import "context"

// Repository holds pots in memory, one map plus an insertion-order index,
// accessed only through the owning Service.
type Repository struct {
	pots  map[string]*Pot
	order []string
}

// NewRepository creates an empty in-memory pot store.
func NewRepository() *Repository {
	return &Repository{pots: make(map[string]*Pot)}
}

// Create stores a new pot.
func (r *Repository) Create(ctx context.Context, p *Pot) error {
	r.pots[p.ID] = p
	r.order = append(r.order, p.ID)
	return nil
}

// GetByID retrieves a pot, or nil if the id is unknown.
func (r *Repository) GetByID(ctx context.Context, id string) (*Pot, error) {
	return r.pots[id], nil
}

// List returns all pots in creation order.
func (r *Repository) List(ctx context.Context) ([]*Pot, error) {
	out := make([]*Pot, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.pots[id])
	}
	return out, nil
}
