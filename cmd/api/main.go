package main

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/common-nighthawk/go-figure"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"

	"github.com/maxiapp/maxi/internal/allocation"
	"github.com/maxiapp/maxi/internal/config"
	"github.com/maxiapp/maxi/internal/invoice"
	"github.com/maxiapp/maxi/internal/metrics"
	"github.com/maxiapp/maxi/internal/pot"
	"github.com/maxiapp/maxi/internal/request"
	"github.com/maxiapp/maxi/internal/scheduler"
	"github.com/maxiapp/maxi/internal/split"
	"github.com/maxiapp/maxi/pkg/logging"
	mw "github.com/maxiapp/maxi/pkg/middleware"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		slog.Info("No .env file found, using environment variables")
	}

	logging.Setup()
	cfg := config.Load()

	banner := figure.NewColorFigure("MAXI", "puffy", "green", true)
	banner.Print()

	// Allocation Strategy Factory (Factory Pattern)
	factory := allocation.NewFactory()

	// Split feature, with the consolidation scheduler injected
	splitRepo := split.NewRepository()
	splitService := split.NewService(splitRepo, factory, scheduler.NewTicker(), cfg.ConsolidationPoll)
	splitHandler := split.NewHandler(splitService)
	defer splitService.Close()

	// Invoice feature
	invoiceRepo := invoice.NewRepository()
	invoiceService := invoice.NewService(invoiceRepo)
	invoiceHandler := invoice.NewHandler(invoiceService)

	// Pot feature
	potRepo := pot.NewRepository()
	potService := pot.NewService(potRepo)
	potHandler := pot.NewHandler(potService)

	// Unified request feed on top of invoices and splits
	requestService := request.NewService(invoiceService, splitService)
	requestHandler := request.NewHandler(requestService)

	if cfg.SeedDemoData {
		if err := seed(invoiceService, splitService, potService); err != nil {
			slog.Error("Demo seed failed", "error", err)
			os.Exit(1)
		}
		slog.Info("Demo data seeded")
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.Recoverer)
	r.Use(mw.Identity)
	r.Use(mw.RequestLogger)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})
	r.Handle("/metrics", metrics.Handler())

	// API routes
	r.Route("/api", func(r chi.Router) {
		r.Route("/requests", func(r chi.Router) {
			requestHandler.Register(r)
			invoiceHandler.Register(r)
			splitHandler.Register(r)
		})
		r.Mount("/pots", potHandler.Routes())
		r.Post("/scan-invoice", invoiceHandler.Scan)
	})

	slog.Info("Server starting", "port", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, r); err != nil {
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	}
}
