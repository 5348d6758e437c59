package pot

import (
	"context"
	"errors"
	"log/slog"
	"math"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/maxiapp/maxi/internal/metrics"
)

// Common errors
var (
	ErrPotNotFound        = errors.New("pot not found")
	ErrNotAdmin           = errors.New("only the pot admin can perform this action")
	ErrNotMember          = errors.New("only pot members can contribute")
	ErrMissingName        = errors.New("pot name is required")
	ErrInvalidAmount      = errors.New("amount must be positive")
	ErrInvalidFrequency   = errors.New("frequency must be One-Time, Weekly or Monthly")
	ErrMissingDescription = errors.New("expense description is required")
)

// Actor identifies who is performing an operation.
type Actor struct {
	ID   string
	Name string
}

// Service handles pot business logic. The mutex serializes access to the
// in-memory store.
type Service struct {
	mu   sync.Mutex
	repo *Repository
	now  func() time.Time
}

// NewService creates a pot service.
func NewService(repo *Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

// Create builds a new pot with the creator as admin and first member.
func (s *Service) Create(ctx context.Context, actor Actor, req *CreatePotRequest) (PotSummary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return PotSummary{}, ErrMissingName
	}
	if req.Schedule.Amount <= 0 {
		return PotSummary{}, ErrInvalidAmount
	}
	if !validFrequency(req.Schedule.Frequency) {
		return PotSummary{}, ErrInvalidFrequency
	}

	p := &Pot{
		ID:      uuid.NewString(),
		Name:    name,
		AdminID: actor.ID,
		Members: []*Member{{ID: actor.ID, Name: actor.Name}},
		Schedule: Schedule{
			Amount:    req.Schedule.Amount,
			Frequency: req.Schedule.Frequency,
			DueDay:    req.Schedule.DueDay,
		},
		CreatedAt: s.now(),
	}

	if err := s.repo.Create(ctx, p); err != nil {
		return PotSummary{}, err
	}

	slog.Info("pot created", "pot_id", p.ID, "name", p.Name)
	return p.toSummary(), nil
}

// AddMember joins a user to the pot. Already-present members are a no-op.
func (s *Service) AddMember(ctx context.Context, potID string, member Actor) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, err := s.get(ctx, potID)
	if err != nil {
		return err
	}
	if p.IsMember(member.ID) {
		return nil
	}
	p.Members = append(p.Members, &Member{ID: member.ID, Name: member.Name})
	return nil
}

// List returns summary cards for every pot the actor belongs to.
func (s *Service) List(ctx context.Context, actor Actor) ([]PotSummary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	all, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := []PotSummary{}
	for _, p := range all {
		if p.IsMember(actor.ID) {
			out = append(out, p.toSummary())
		}
	}
	return out, nil
}

// Get returns the full dashboard view: balance, schedule, per-member
// contribution tally and the transaction feed.
func (s *Service) Get(ctx context.Context, potID string, actor Actor) (*PotDetail, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, err := s.get(ctx, potID)
	if err != nil {
		return nil, err
	}
	return p.toDetail(actor.ID), nil
}

// Contribute records money in. Any member may contribute any positive
// amount; partial and over-payments are both fine.
func (s *Service) Contribute(ctx context.Context, potID string, actor Actor, req *ContributionRequest) (*TransactionResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, err := s.get(ctx, potID)
	if err != nil {
		return nil, err
	}
	if !p.IsMember(actor.ID) {
		return nil, ErrNotMember
	}
	if req.Amount <= 0 {
		return nil, ErrInvalidAmount
	}

	description := strings.TrimSpace(req.Description)
	if description == "" {
		description = actor.Name + " contributed"
	}

	t := &Transaction{
		ID:          uuid.NewString(),
		Type:        TypeContribution,
		Description: description,
		Amount:      req.Amount,
		UserID:      actor.ID,
		UserName:    actor.Name,
		Date:        s.now(),
	}
	p.Feed = append(p.Feed, t)

	metrics.PotTransactions.Inc()
	return &TransactionResult{
		NewTransaction: toTransactionResponse(t),
		TotalBalance:   p.Balance(),
	}, nil
}

// LogExpense records money out as a negative feed entry. Admin only.
func (s *Service) LogExpense(ctx context.Context, potID string, actor Actor, req *ExpenseRequest) (*TransactionResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, err := s.get(ctx, potID)
	if err != nil {
		return nil, err
	}
	if p.AdminID != actor.ID {
		return nil, ErrNotAdmin
	}
	if req.Amount == 0 {
		return nil, ErrInvalidAmount
	}
	if strings.TrimSpace(req.Description) == "" {
		return nil, ErrMissingDescription
	}

	t := &Transaction{
		ID:          uuid.NewString(),
		Type:        TypeExpense,
		Description: strings.TrimSpace(req.Description),
		Amount:      -math.Abs(req.Amount),
		UserID:      actor.ID,
		UserName:    actor.Name,
		Date:        s.now(),
	}
	p.Feed = append(p.Feed, t)

	metrics.PotTransactions.Inc()
	return &TransactionResult{
		NewTransaction: toTransactionResponse(t),
		TotalBalance:   p.Balance(),
	}, nil
}

// UpdateSchedule replaces the pot's contribution schedule. Admin only.
func (s *Service) UpdateSchedule(ctx context.Context, potID string, actor Actor, req *ScheduleInput) (Schedule, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, err := s.get(ctx, potID)
	if err != nil {
		return Schedule{}, err
	}
	if p.AdminID != actor.ID {
		return Schedule{}, ErrNotAdmin
	}
	if req.Amount <= 0 {
		return Schedule{}, ErrInvalidAmount
	}
	if !validFrequency(req.Frequency) {
		return Schedule{}, ErrInvalidFrequency
	}

	p.Schedule = Schedule{
		Amount:    req.Amount,
		Frequency: req.Frequency,
		DueDay:    req.DueDay,
	}
	return p.Schedule, nil
}

func (s *Service) get(ctx context.Context, id string) (*Pot, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrPotNotFound
	}
	return p, nil
}

func validFrequency(f string) bool {
	switch f {
	case FrequencyOneTime, FrequencyWeekly, FrequencyMonthly:
		return true
	}
	return false
}
