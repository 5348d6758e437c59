package main

import (
	"context"

	"github.com/maxiapp/maxi/internal/invoice"
	"github.com/maxiapp/maxi/internal/pot"
	"github.com/maxiapp/maxi/internal/split"
	"github.com/maxiapp/maxi/pkg/middleware"
)

// seed loads the demo dataset through the public services so every derived
// value (totals, shares, net positions, balances) comes out of the same code
// paths real requests use.
func seed(invoices *invoice.Service, splits *split.Service, pots *pot.Service) error {
	ctx := context.Background()
	you := middleware.DefaultUser

	// The Adidas invoice, addressed to the device owner.
	_, err := invoices.Create(ctx, invoice.Actor{ID: "user-adidas", Name: "Adidas"}, &invoice.CreateInvoiceRequest{
		ClientName: you.Name,
		Items: []invoice.LineItemInput{
			{Description: "Design Services", Amount: 2500},
		},
		VATPercent: 21,
		Note:       "Please find attached the invoice regarding the agreed services. Payment is due by the date specified.",
		DueDate:    "2023-10-20",
	})
	if err != nil {
		return err
	}

	// Sarah's dinner split, with the device owner on the paying side.
	sarah := split.Actor{ID: "user-sarah", Name: "Sarah Williams"}
	_, err = splits.Create(ctx, sarah, &split.CreateSplitRequest{
		Title:        "Dinner at Sakura",
		Participants: []string{you.Name, "Mike Torres"},
		Expenses: []split.ExpenseInput{
			{Description: "Sushi Platter", Amount: 150},
			{Description: "Sake", Amount: 37.50},
		},
		PhotoURL: "https://images.unsplash.com/photo-1579027989536-b7b1f875659b?auto=format&fit=crop&w=1000&q=80",
	})
	if err != nil {
		return err
	}

	// The team pot, admined by the device owner.
	teamFees, err := pots.Create(ctx, pot.Actor(you), &pot.CreatePotRequest{
		Name:     "FC Lions Team Fees",
		Schedule: pot.ScheduleInput{Amount: 20, Frequency: pot.FrequencyMonthly, DueDay: 1},
	})
	if err != nil {
		return err
	}

	lisa := pot.Actor{ID: "user-lisa", Name: "Lisa"}
	kevin := pot.Actor{ID: "user-kevin", Name: "Kevin"}
	for _, member := range []pot.Actor{lisa, kevin} {
		if err := pots.AddMember(ctx, teamFees.ID, member); err != nil {
			return err
		}
	}
	for _, c := range []struct {
		actor  pot.Actor
		amount float64
	}{
		{pot.Actor(you), 20}, {lisa, 20}, {kevin, 10},
	} {
		if _, err := pots.Contribute(ctx, teamFees.ID, c.actor, &pot.ContributionRequest{Amount: c.amount}); err != nil {
			return err
		}
	}
	return nil
}
