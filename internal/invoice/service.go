package invoice

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/maxiapp/maxi/internal/metrics"
	"github.com/maxiapp/maxi/internal/money"
)

// Common errors
var (
	ErrInvoiceNotFound = errors.New("invoice not found")
	ErrMissingClient   = errors.New("client name is required")
	ErrNoItems         = errors.New("at least one line item is required")
	ErrInvalidItem     = errors.New("line items need a description and a positive amount")
	ErrInvalidVAT      = errors.New("vat percent must not be negative")
)

// Actor identifies who is performing an operation.
type Actor struct {
	ID   string
	Name string
}

// Service handles invoice business logic. The mutex serializes access to
// the in-memory store.
type Service struct {
	mu   sync.Mutex
	repo *Repository
	now  func() time.Time
}

// NewService creates an invoice service.
func NewService(repo *Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

// Create builds an invoice from the composer form. Subtotal, VAT amount and
// grand total are computed here; the client is recorded as the single
// recipient owing the grand total.
func (s *Service) Create(ctx context.Context, actor Actor, req *CreateInvoiceRequest) (*InvoiceResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	client := strings.TrimSpace(req.ClientName)
	if client == "" {
		return nil, ErrMissingClient
	}
	if len(req.Items) == 0 {
		return nil, ErrNoItems
	}
	if req.VATPercent < 0 {
		return nil, ErrInvalidVAT
	}

	var subtotal float64
	items := make([]LineItem, len(req.Items))
	for i, item := range req.Items {
		desc := strings.TrimSpace(item.Description)
		if desc == "" || item.Amount <= 0 {
			return nil, ErrInvalidItem
		}
		items[i] = LineItem{
			ID:          uuid.NewString(),
			Description: desc,
			Amount:      item.Amount,
		}
		subtotal += item.Amount
	}

	vatAmount := money.PercentOf(subtotal, req.VATPercent)
	grandTotal := subtotal + vatAmount

	var dueDate *time.Time
	if strings.TrimSpace(req.DueDate) != "" {
		parsed, err := time.Parse("2006-01-02", req.DueDate)
		if err != nil {
			parsed, err = time.Parse(time.RFC3339, req.DueDate)
		}
		if err == nil {
			dueDate = &parsed
		}
	}

	reminder := req.ReminderProfile
	if reminder == "" {
		reminder = "none"
	}

	inv := &Invoice{
		ID:              uuid.NewString(),
		Number:          "INV-" + uuid.NewString()[:4],
		ClientName:      client,
		CreatorID:       actor.ID,
		CreatorName:     actor.Name,
		Items:           items,
		Subtotal:        subtotal,
		VATPercent:      req.VATPercent,
		VATAmount:       vatAmount,
		GrandTotal:      grandTotal,
		Note:            strings.TrimSpace(req.Note),
		DueDate:         dueDate,
		ReminderProfile: reminder,
		Status:          StatusPending,
		Recipient: Recipient{
			Name:     client,
			Status:   StatusPending,
			Stage:    "Delivered",
			NetShare: -grandTotal,
		},
		CreatedAt: s.now(),
	}

	if err := s.repo.Create(ctx, inv); err != nil {
		return nil, err
	}

	metrics.InvoicesCreated.Inc()
	slog.Info("invoice created",
		"invoice_id", inv.ID,
		"client", inv.ClientName,
		"grand_total", inv.GrandTotal,
	)
	return inv.ToResponse(), nil
}

// GetByID retrieves an invoice as plain response data.
func (s *Service) GetByID(ctx context.Context, id string) (*InvoiceResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	inv, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, ErrInvoiceNotFound
	}
	return inv.ToResponse(), nil
}

// ListCreatedBy returns invoices issued by the given user, oldest first.
func (s *Service) ListCreatedBy(ctx context.Context, creatorID string) ([]*InvoiceResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	all, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	var out []*InvoiceResponse
	for _, inv := range all {
		if inv.CreatorID == creatorID {
			out = append(out, inv.ToResponse())
		}
	}
	return out, nil
}

// ListByClientName returns invoices addressed to the given client name.
func (s *Service) ListByClientName(ctx context.Context, name string) ([]*InvoiceResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	all, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	var out []*InvoiceResponse
	for _, inv := range all {
		if inv.ClientName == name {
			out = append(out, inv.ToResponse())
		}
	}
	return out, nil
}

// Scan parses recognized receipt text into a prefilled invoice draft.
func (s *Service) Scan(ctx context.Context, req *ScanRequest) *ScanResult {
	result := ParseReceipt(req.Text)
	slog.Debug("receipt scanned", "client", result.Client, "total", result.Total)
	return &result
}
