package split

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/maxiapp/maxi/internal/allocation"
	"github.com/maxiapp/maxi/internal/metrics"
	"github.com/maxiapp/maxi/internal/scheduler"
	"github.com/maxiapp/maxi/internal/settlement"
)

// Common errors
var (
	ErrSplitNotFound     = errors.New("split not found")
	ErrExpenseNotFound   = errors.New("pending expense not found")
	ErrNotOwner          = errors.New("only the split owner can perform this action")
	ErrSplitFinalized    = errors.New("split is finalized and can no longer change")
	ErrMissingTitle      = errors.New("title is required")
	ErrNoExpenses        = errors.New("at least one expense is required")
	ErrEmptyDescription  = errors.New("expense description is required")
	ErrInvalidAmount     = errors.New("expense amount must be positive")
	ErrNotReconciled     = errors.New("shares do not sum to the total pot")
	ErrInvalidAdjustment = errors.New("adjustment needs either a direction or an amount")
)

// Actor identifies who is performing an operation.
type Actor struct {
	ID   string
	Name string
}

// Service handles split business logic. A single mutex serializes every
// operation so each one runs to completion without interleaving, matching
// the one-event-loop-turn atomicity the prototype relied on.
type Service struct {
	mu      sync.Mutex
	repo    *Repository
	factory *allocation.Factory
	sched   scheduler.Scheduler
	poll    time.Duration
	now     func() time.Time

	// one cancellable deadline check per in-flight consolidating split
	timers map[string]scheduler.CancelFunc
}

// NewService creates a split service with its dependencies injected. poll is
// the deadline check interval (one second in production).
func NewService(repo *Repository, factory *allocation.Factory, sched scheduler.Scheduler, poll time.Duration) *Service {
	return &Service{
		repo:    repo,
		factory: factory,
		sched:   sched,
		poll:    poll,
		now:     time.Now,
		timers:  make(map[string]scheduler.CancelFunc),
	}
}

// Create builds a new split from the creation form. The participant list is
// deduplicated and the creator is always first; each participant gets a
// stable id. A positive deadline starts the consolidation window, otherwise
// the split stays open with equal-split semantics and settles immediately.
func (s *Service) Create(ctx context.Context, actor Actor, req *CreateSplitRequest) (*SplitResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if strings.TrimSpace(req.Title) == "" {
		return nil, ErrMissingTitle
	}
	if len(req.Expenses) == 0 {
		return nil, ErrNoExpenses
	}
	for _, e := range req.Expenses {
		if strings.TrimSpace(e.Description) == "" {
			return nil, ErrEmptyDescription
		}
		if e.Amount <= 0 {
			return nil, ErrInvalidAmount
		}
	}

	now := s.now()
	sp := &Split{
		ID:          uuid.NewString(),
		Title:       strings.TrimSpace(req.Title),
		PhotoURL:    req.PhotoURL,
		Method:      allocation.MethodEqually,
		CreatorID:   actor.ID,
		CreatorName: actor.Name,
		Status:      StatusOpen,
		CreatedAt:   now,
	}

	sp.Participants = append(sp.Participants, &Participant{
		ID:     actor.ID,
		Name:   actor.Name,
		Role:   RoleOwner,
		Status: "Pending",
	})
	seen := map[string]bool{strings.ToLower(actor.Name): true}
	for _, raw := range req.Participants {
		name := strings.TrimSpace(raw)
		if name == "" || seen[strings.ToLower(name)] {
			continue
		}
		seen[strings.ToLower(name)] = true
		sp.Participants = append(sp.Participants, &Participant{
			ID:     uuid.NewString(),
			Name:   name,
			Role:   RoleMember,
			Status: "Pending",
		})
	}

	for _, e := range req.Expenses {
		sp.Approved = append(sp.Approved, &Expense{
			ID:          uuid.NewString(),
			Description: strings.TrimSpace(e.Description),
			Amount:      e.Amount,
			PayerID:     actor.ID,
			PayerName:   actor.Name,
			CreatedAt:   now,
		})
	}
	sp.RecomputeTotal()

	if err := sp.ApplyMethod(allocation.MethodEqually, s.factory); err != nil {
		return nil, err
	}

	if req.DeadlineHours > 0 {
		deadline := now.Add(time.Duration(req.DeadlineHours) * time.Hour)
		sp.Deadline = &deadline
		sp.Status = StatusConsolidating
		sp.IsConsolidating = true
	}

	if err := s.repo.Create(ctx, sp); err != nil {
		return nil, err
	}

	if sp.IsConsolidating {
		s.watch(sp.ID)
	} else {
		s.resettle(sp)
	}

	metrics.SplitsCreated.Inc()
	slog.Info("split created",
		"split_id", sp.ID,
		"title", sp.Title,
		"participants", len(sp.Participants),
		"consolidating", sp.IsConsolidating,
	)
	return sp.ToResponse(), nil
}

// GetByID retrieves a split as plain response data.
func (s *Service) GetByID(ctx context.Context, id string) (*SplitResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sp, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}
	return sp.ToResponse(), nil
}

// AddExpense submits a line item. The owner's expenses go straight into the
// approved list and move the total; anyone else's join the pending queue
// until the owner decides.
func (s *Service) AddExpense(ctx context.Context, splitID string, actor Actor, req *AddExpenseRequest) (*SplitResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sp, err := s.get(ctx, splitID)
	if err != nil {
		return nil, err
	}
	if sp.Status == StatusFinalized {
		return nil, ErrSplitFinalized
	}
	if strings.TrimSpace(req.Description) == "" {
		return nil, ErrEmptyDescription
	}
	if req.Amount <= 0 {
		return nil, ErrInvalidAmount
	}

	expense := &Expense{
		ID:          uuid.NewString(),
		Description: strings.TrimSpace(req.Description),
		Amount:      req.Amount,
		PayerID:     actor.ID,
		PayerName:   actor.Name,
		CreatedAt:   s.now(),
	}

	if actor.ID == sp.CreatorID {
		sp.Approved = append(sp.Approved, expense)
		s.refresh(sp)
	} else {
		// FIFO: oldest submissions surface first for approval.
		sp.Pending = append(sp.Pending, expense)
	}

	metrics.ExpensesAdded.Inc()
	return sp.ToResponse(), nil
}

// ApproveExpense moves a pending expense into the approved list and
// recomputes the total. Approving an unknown or already-decided id is a
// not-found error and leaves the approved list untouched.
func (s *Service) ApproveExpense(ctx context.Context, expenseID string, actor Actor) (*SplitResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sp, err := s.repo.FindByPendingExpense(ctx, expenseID)
	if err != nil {
		return nil, err
	}
	if sp == nil {
		return nil, ErrExpenseNotFound
	}
	if actor.ID != sp.CreatorID {
		return nil, ErrNotOwner
	}
	if sp.Status == StatusFinalized {
		return nil, ErrSplitFinalized
	}

	expense := removePending(sp, expenseID)
	sp.Approved = append(sp.Approved, expense)
	s.refresh(sp)

	metrics.ExpensesApproved.Inc()
	return sp.ToResponse(), nil
}

// RejectExpense removes a pending expense permanently. Totals are untouched
// because pending amounts never counted toward them.
func (s *Service) RejectExpense(ctx context.Context, expenseID string, actor Actor) (*SplitResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sp, err := s.repo.FindByPendingExpense(ctx, expenseID)
	if err != nil {
		return nil, err
	}
	if sp == nil {
		return nil, ErrExpenseNotFound
	}
	if actor.ID != sp.CreatorID {
		return nil, ErrNotOwner
	}

	removePending(sp, expenseID)
	metrics.ExpensesRejected.Inc()
	return sp.ToResponse(), nil
}

// SetMethod switches the allocation method and recomputes every share.
func (s *Service) SetMethod(ctx context.Context, splitID string, method string) (*SplitResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sp, err := s.get(ctx, splitID)
	if err != nil {
		return nil, err
	}
	if err := sp.ApplyMethod(allocation.Method(method), s.factory); err != nil {
		return nil, err
	}
	return sp.ToResponse(), nil
}

// AdjustShare applies a manual share edit: a ±1 percentage step or a direct
// amount. Drift left behind by clamping shows up in the response's
// reconciliation block rather than being corrected here.
func (s *Service) AdjustShare(ctx context.Context, splitID string, req *AdjustShareRequest) (*SplitResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sp, err := s.get(ctx, splitID)
	if err != nil {
		return nil, err
	}

	switch {
	case req.Direction != nil:
		sp.AdjustPercentage(req.Index, *req.Direction)
	case req.Amount != nil:
		sp.AdjustAmount(req.Index, *req.Amount)
	default:
		return nil, ErrInvalidAdjustment
	}
	return sp.ToResponse(), nil
}

// Send finalizes the creator's review step and issues the shareable link.
// It is blocked while the participants' shares fail to reconcile against
// the total pot.
func (s *Service) Send(ctx context.Context, splitID string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sp, err := s.get(ctx, splitID)
	if err != nil {
		return "", err
	}
	if ok, remainder := sp.Reconcile(); !ok {
		return "", fmt.Errorf("%w: remainder %.2f", ErrNotReconciled, remainder)
	}
	return "https://maxi.app/s/" + sp.ID, nil
}

// Settlement runs the settlement engine over the approved expenses and
// returns the net positions together with the simplified payment plan.
// Recomputing is idempotent; participant records are refreshed as a side
// effect so both the payer and creator views show the same status strings.
func (s *Service) Settlement(ctx context.Context, splitID string) (*SettlementResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sp, err := s.get(ctx, splitID)
	if err != nil {
		return nil, err
	}
	return s.resettle(sp)
}

// Delete abandons a split before its deadline. The recurring deadline check
// is stopped explicitly so no timer outlives its split.
func (s *Service) Delete(ctx context.Context, splitID string, actor Actor) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sp, err := s.get(ctx, splitID)
	if err != nil {
		return err
	}
	if actor.ID != sp.CreatorID {
		return ErrNotOwner
	}

	s.unwatch(splitID)
	return s.repo.Delete(ctx, splitID)
}

// ListCreatedBy returns splits created by the given user, oldest first.
func (s *Service) ListCreatedBy(ctx context.Context, creatorID string) ([]*SplitResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	all, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	var out []*SplitResponse
	for _, sp := range all {
		if sp.CreatorID == creatorID {
			out = append(out, sp.ToResponse())
		}
	}
	return out, nil
}

// ListByMemberName returns splits where a participant carries the given
// display name and someone else is the creator. Participants are keyed by
// id within a split, but the cross-split "my requests" view matches by
// name, as the product always has.
func (s *Service) ListByMemberName(ctx context.Context, name string) ([]*SplitResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	all, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	var out []*SplitResponse
	for _, sp := range all {
		for _, p := range sp.Participants {
			if p.Name == name && p.Role != RoleOwner {
				out = append(out, sp.ToResponse())
				break
			}
		}
	}
	return out, nil
}

// Close stops every outstanding deadline check.
func (s *Service) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, cancel := range s.timers {
		cancel()
		delete(s.timers, id)
	}
}

// get looks a split up or returns ErrSplitNotFound. Callers hold s.mu.
func (s *Service) get(ctx context.Context, id string) (*Split, error) {
	sp, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if sp == nil {
		return nil, ErrSplitNotFound
	}
	return sp, nil
}

// refresh re-derives everything that depends on the approved list: the
// total pot, the current allocation, and the settlement view.
func (s *Service) refresh(sp *Split) {
	sp.RecomputeTotal()
	if err := sp.ApplyMethod(sp.Method, s.factory); err != nil {
		slog.Warn("share reallocation failed", "split_id", sp.ID, "error", err)
	}
	s.resettle(sp)
}

// resettle runs the settlement engine and mirrors the outcome onto the
// participant records. Callers hold s.mu.
func (s *Service) resettle(sp *Split) (*SettlementResponse, error) {
	expenses := make([]settlement.Expense, len(sp.Approved))
	for i, e := range sp.Approved {
		expenses[i] = settlement.Expense{Payer: e.PayerName, Amount: e.Amount}
	}

	result, err := settlement.Settle(expenses, sp.ParticipantNames())
	if err != nil {
		return nil, err
	}

	net := make(map[string]float64, len(result.Positions))
	for _, pos := range result.Positions {
		net[pos.Name] = pos.Net
	}

	for _, p := range sp.Participants {
		pos, ok := result.Position(p.Name)
		if !ok {
			continue
		}
		p.NetPosition = pos.Net
		// Paid and Promised are participant promises, not derived state;
		// settlement must not erase them.
		if p.Status == "Paid" || p.Status == "Promised" {
			continue
		}
		switch pos.Classification {
		case settlement.Creditor:
			p.Status = "Creditor"
		case settlement.Debtor:
			p.Status = "Pending"
		default:
			p.Status = "Settled"
		}
	}

	metrics.SettlementsComputed.Inc()
	return &SettlementResponse{
		Total:          result.Total,
		SharePerPerson: result.SharePerPerson,
		Positions:      result.Positions,
		Plan:           settlement.SimplifyDebts(net),
	}, nil
}

// watch starts the recurring deadline check for a consolidating split.
// Callers hold s.mu.
func (s *Service) watch(splitID string) {
	if _, exists := s.timers[splitID]; exists {
		return
	}
	s.timers[splitID] = s.sched.Repeat(s.poll, func() {
		s.checkDeadline(splitID)
	})
}

// unwatch stops a split's deadline check. Safe to call for splits that were
// never watched or whose check already fired. Callers hold s.mu.
func (s *Service) unwatch(splitID string) {
	if cancel, ok := s.timers[splitID]; ok {
		cancel()
		delete(s.timers, splitID)
	}
}

// checkDeadline is the per-tick body of the consolidation timer. It must
// never fire the transition early, and it must cope with a split that was
// deleted while its timer was in flight.
func (s *Service) checkDeadline(splitID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sp, err := s.repo.GetByID(context.Background(), splitID)
	if err != nil || sp == nil || sp.Status != StatusConsolidating || sp.Deadline == nil {
		s.unwatch(splitID)
		return
	}
	if s.now().Before(*sp.Deadline) {
		return
	}

	// Consolidating -> Finalized, exactly once.
	s.unwatch(splitID)
	sp.IsConsolidating = false
	sp.Status = StatusFinalized
	if _, err := s.resettle(sp); err != nil {
		slog.Error("settlement at deadline failed", "split_id", splitID, "error", err)
		return
	}

	metrics.SplitsFinalized.Inc()
	slog.Info("split finalized", "split_id", splitID, "total", sp.Total)
}

func removePending(sp *Split, expenseID string) *Expense {
	for i, e := range sp.Pending {
		if e.ID == expenseID {
			sp.Pending = append(sp.Pending[:i], sp.Pending[i+1:]...)
			return e
		}
	}
	return nil
}
