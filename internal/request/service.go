package request

import (
	"context"
	"errors"
	"math"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/maxiapp/maxi/internal/invoice"
	"github.com/maxiapp/maxi/internal/money"
	"github.com/maxiapp/maxi/internal/split"
)

// Common errors
var (
	ErrRequestNotFound = errors.New("request not found")
	ErrEmptyComment    = errors.New("comment text is required")
)

// Actor identifies who is viewing or commenting.
type Actor struct {
	ID   string
	Name string
}

// Service assembles the unified request feed over invoices and splits and
// owns the comment store shared by both kinds. It never touches the other
// features' repositories directly; it goes through their services.
type Service struct {
	mu       sync.Mutex
	invoices *invoice.Service
	splits   *split.Service
	comments map[string][]*Comment
	now      func() time.Time
}

// NewService creates a request feed service on top of the invoice and split
// services.
func NewService(invoices *invoice.Service, splits *split.Service) *Service {
	return &Service{
		invoices: invoices,
		splits:   splits,
		comments: make(map[string][]*Comment),
		now:      time.Now,
	}
}

// Received returns every request where the acting user is on the paying
// side. The amount shown is what the viewer owes or is owed, never the
// request's full total.
func (s *Service) Received(ctx context.Context, actor Actor) ([]RequestSummary, error) {
	out := []RequestSummary{}

	invoices, err := s.invoices.ListByClientName(ctx, actor.Name)
	if err != nil {
		return nil, err
	}
	for _, inv := range invoices {
		out = append(out, RequestSummary{
			ID:       inv.ID,
			Kind:     KindInvoice,
			Title:    inv.CreatorName,
			Subtitle: inv.Number,
			Amount:   math.Abs(inv.Recipient.NetShare),
			Status:   inv.Recipient.Status,
		})
	}

	splits, err := s.splits.ListByMemberName(ctx, actor.Name)
	if err != nil {
		return nil, err
	}
	for _, sp := range splits {
		summary := RequestSummary{
			ID:              sp.ID,
			Kind:            KindSplit,
			Title:           sp.Title,
			Subtitle:        sp.CreatorName,
			Status:          string(sp.Status),
			IsConsolidating: sp.IsConsolidating,
			Deadline:        sp.Deadline,
			Photo:           sp.PhotoURL,
		}
		for _, p := range sp.Participants {
			if p.Name == actor.Name {
				summary.Amount = money.Round(math.Abs(p.NetPosition))
				summary.Status = p.Status
				break
			}
		}
		out = append(out, summary)
	}
	return out, nil
}

// Sent returns every request the acting user created.
func (s *Service) Sent(ctx context.Context, actor Actor) ([]RequestSummary, error) {
	out := []RequestSummary{}

	invoices, err := s.invoices.ListCreatedBy(ctx, actor.ID)
	if err != nil {
		return nil, err
	}
	for _, inv := range invoices {
		out = append(out, RequestSummary{
			ID:       inv.ID,
			Kind:     KindInvoice,
			Title:    inv.ClientName,
			Subtitle: inv.Number,
			Amount:   inv.GrandTotal,
			Status:   inv.Status,
		})
	}

	splits, err := s.splits.ListCreatedBy(ctx, actor.ID)
	if err != nil {
		return nil, err
	}
	for _, sp := range splits {
		out = append(out, RequestSummary{
			ID:              sp.ID,
			Kind:            KindSplit,
			Title:           sp.Title,
			Subtitle:        sp.CreatorName,
			Amount:          sp.Total,
			Status:          string(sp.Status),
			IsConsolidating: sp.IsConsolidating,
			Deadline:        sp.Deadline,
			Photo:           sp.PhotoURL,
		})
	}
	return out, nil
}

// Detail resolves a request id against both stores and returns the full
// document together with its comments, oldest first.
func (s *Service) Detail(ctx context.Context, id string) (*RequestDetail, error) {
	detail := &RequestDetail{ID: id, Comments: s.commentsFor(id)}

	inv, err := s.invoices.GetByID(ctx, id)
	if err == nil {
		detail.Kind = KindInvoice
		detail.Invoice = inv
		return detail, nil
	}
	if !errors.Is(err, invoice.ErrInvoiceNotFound) {
		return nil, err
	}

	sp, err := s.splits.GetByID(ctx, id)
	if err == nil {
		detail.Kind = KindSplit
		detail.Split = sp
		return detail, nil
	}
	if !errors.Is(err, split.ErrSplitNotFound) {
		return nil, err
	}
	return nil, ErrRequestNotFound
}

// AddComment appends to a request's social feed. The request must exist;
// both kinds accept comments.
func (s *Service) AddComment(ctx context.Context, id string, actor Actor, req *CommentRequest) (*CommentResponse, error) {
	text := strings.TrimSpace(req.Text)
	if text == "" {
		return nil, ErrEmptyComment
	}
	if _, err := s.Detail(ctx, id); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	c := &Comment{
		ID:        uuid.NewString(),
		RequestID: id,
		UserID:    actor.ID,
		UserName:  actor.Name,
		Text:      text,
		ImageURL:  req.ImageURL,
		CreatedAt: s.now(),
	}
	s.comments[id] = append(s.comments[id], c)

	resp := toCommentResponse(c)
	return &resp, nil
}

// commentsFor returns a request's comments in posting order.
func (s *Service) commentsFor(id string) []CommentResponse {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]CommentResponse, len(s.comments[id]))
	for i, c := range s.comments[id] {
		out[i] = toCommentResponse(c)
	}
	return out
}
