package split

import "context"

// Repository holds splits in memory. There is no persistence layer in this
// prototype: the store is one map plus an insertion-order index, owned by a
// single Service whose mutex serializes every access.
type Repository struct {
	splits map[string]*Split
	order  []string
}

// NewRepository creates an empty in-memory split store.
func NewRepository() *Repository {
	return &Repository{splits: make(map[string]*Split)}
}

// Create stores a new split.
func (r *Repository) Create(ctx context.Context, s *Split) error {
	r.splits[s.ID] = s
	r.order = append(r.order, s.ID)
	return nil
}

// GetByID retrieves a split, or nil if the id is unknown.
func (r *Repository) GetByID(ctx context.Context, id string) (*Split, error) {
	return r.splits[id], nil
}

// List returns all splits in creation order.
func (r *Repository) List(ctx context.Context) ([]*Split, error) {
	out := make([]*Split, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.splits[id])
	}
	return out, nil
}

// FindByPendingExpense locates the split holding a pending expense with the
// given id, or nil if no split has it queued.
func (r *Repository) FindByPendingExpense(ctx context.Context, expenseID string) (*Split, error) {
	for _, id := range r.order {
		s := r.splits[id]
		for _, e := range s.Pending {
			if e.ID == expenseID {
				return s, nil
			}
		}
	}
	return nil, nil
}

// Delete removes a split. Missing ids are ignored.
func (r *Repository) Delete(ctx context.Context, id string) error {
	if _, ok := r.splits[id]; !ok {
		return nil
	}
	delete(r.splits, id)
	for i, existing := range r.order {
		if existing == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}
