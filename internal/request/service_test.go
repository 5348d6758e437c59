package request

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/maxiapp/maxi/internal/allocation"
	"github.com/maxiapp/maxi/internal/invoice"
	"github.com/maxiapp/maxi/internal/scheduler"
	"github.com/maxiapp/maxi/internal/split"
)

var (
	you   = Actor{ID: "user-you", Name: "You"}
	sarah = Actor{ID: "user-sarah", Name: "Sarah Williams"}
)

func newFeed(t *testing.T) (*Service, *invoice.Service, *split.Service) {
	t.Helper()
	invoices := invoice.NewService(invoice.NewRepository())
	splits := split.NewService(split.NewRepository(), allocation.NewFactory(), scheduler.NewTicker(), time.Hour)
	t.Cleanup(splits.Close)
	return NewService(invoices, splits), invoices, splits
}

func seedAdidasInvoice(t *testing.T, invoices *invoice.Service) string {
	t.Helper()
	resp, err := invoices.Create(context.Background(), invoice.Actor{ID: "user-adidas", Name: "Adidas"}, &invoice.CreateInvoiceRequest{
		ClientName: "You",
		Items:      []invoice.LineItemInput{{Description: "Design Services", Amount: 2500}},
		VATPercent: 21,
	})
	if err != nil {
		t.Fatalf("invoice Create: %v", err)
	}
	return resp.ID
}

func seedSakuraSplit(t *testing.T, splits *split.Service) string {
	t.Helper()
	resp, err := splits.Create(context.Background(), split.Actor(sarah), &split.CreateSplitRequest{
		Title:        "Dinner at Sakura",
		Participants: []string{"You", "Mike Torres"},
		Expenses: []split.ExpenseInput{
			{Description: "Sushi Platter", Amount: 150},
			{Description: "Sake", Amount: 37.50},
		},
	})
	if err != nil {
		t.Fatalf("split Create: %v", err)
	}
	return resp.ID
}

func TestReceivedMergesBothKinds(t *testing.T) {
	feed, invoices, splits := newFeed(t)
	seedAdidasInvoice(t, invoices)
	seedSakuraSplit(t, splits)

	received, err := feed.Received(context.Background(), you)
	if err != nil {
		t.Fatalf("Received: %v", err)
	}
	if len(received) != 2 {
		t.Fatalf("received = %d cards, want 2", len(received))
	}

	byKind := map[Kind]RequestSummary{}
	for _, card := range received {
		byKind[card.Kind] = card
	}

	inv := byKind[KindInvoice]
	if inv.Amount != 3025 {
		t.Errorf("invoice card amount = %v, want 3025", inv.Amount)
	}
	if inv.Title != "Adidas" {
		t.Errorf("invoice card title = %q, want Adidas", inv.Title)
	}

	// Sarah paid 187.50 for three people: You owe one equal share.
	sp := byKind[KindSplit]
	if sp.Title != "Dinner at Sakura" {
		t.Errorf("split card title = %q", sp.Title)
	}
	if sp.Amount != 62.50 {
		t.Errorf("split card amount = %v, want 62.50", sp.Amount)
	}
	if sp.Subtitle != "Sarah Williams" {
		t.Errorf("split card subtitle = %q, want the creator", sp.Subtitle)
	}
}

func TestSentShowsOnlyOwnRequests(t *testing.T) {
	feed, invoices, splits := newFeed(t)
	seedAdidasInvoice(t, invoices)
	seedSakuraSplit(t, splits)

	yours, err := feed.Sent(context.Background(), you)
	if err != nil {
		t.Fatalf("Sent: %v", err)
	}
	if len(yours) != 0 {
		t.Errorf("sent for You = %d, want 0", len(yours))
	}

	sarahs, _ := feed.Sent(context.Background(), sarah)
	if len(sarahs) != 1 {
		t.Fatalf("sent for Sarah = %d, want 1", len(sarahs))
	}
	if sarahs[0].Amount != 187.50 {
		t.Errorf("sent card amount = %v, want the split total 187.50", sarahs[0].Amount)
	}
}

func TestDetailResolvesEitherStore(t *testing.T) {
	feed, invoices, splits := newFeed(t)
	invID := seedAdidasInvoice(t, invoices)
	splitID := seedSakuraSplit(t, splits)

	detail, err := feed.Detail(context.Background(), invID)
	if err != nil {
		t.Fatalf("Detail invoice: %v", err)
	}
	if detail.Kind != KindInvoice || detail.Invoice == nil || detail.Split != nil {
		t.Errorf("invoice detail = %+v", detail)
	}

	detail, err = feed.Detail(context.Background(), splitID)
	if err != nil {
		t.Fatalf("Detail split: %v", err)
	}
	if detail.Kind != KindSplit || detail.Split == nil {
		t.Errorf("split detail = %+v", detail)
	}

	if _, err := feed.Detail(context.Background(), "nope"); !errors.Is(err, ErrRequestNotFound) {
		t.Errorf("Detail error = %v, want %v", err, ErrRequestNotFound)
	}
}

func TestCommentsOldestFirst(t *testing.T) {
	feed, _, splits := newFeed(t)
	splitID := seedSakuraSplit(t, splits)

	for _, text := range []string{"Great dinner!", "I'll pay tomorrow", "Paid ✔"} {
		if _, err := feed.AddComment(context.Background(), splitID, you, &CommentRequest{Text: text}); err != nil {
			t.Fatalf("AddComment: %v", err)
		}
	}

	detail, _ := feed.Detail(context.Background(), splitID)
	want := []string{"Great dinner!", "I'll pay tomorrow", "Paid ✔"}
	if len(detail.Comments) != len(want) {
		t.Fatalf("comments = %d, want %d", len(detail.Comments), len(want))
	}
	for i, c := range detail.Comments {
		if c.Text != want[i] {
			t.Errorf("comment %d = %q, want %q", i, c.Text, want[i])
		}
		if c.UserName != "You" {
			t.Errorf("comment author = %q, want You", c.UserName)
		}
	}
}

func TestCommentValidation(t *testing.T) {
	feed, _, splits := newFeed(t)
	splitID := seedSakuraSplit(t, splits)

	if _, err := feed.AddComment(context.Background(), splitID, you, &CommentRequest{Text: "  "}); !errors.Is(err, ErrEmptyComment) {
		t.Errorf("AddComment error = %v, want %v", err, ErrEmptyComment)
	}
	if _, err := feed.AddComment(context.Background(), "nope", you, &CommentRequest{Text: "hello"}); !errors.Is(err, ErrRequestNotFound) {
		t.Errorf("AddComment error = %v, want %v", err, ErrRequestNotFound)
	}
}
