package main

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/tripsplit/tripsplit/internal/config"
	"github.com/tripsplit/tripsplit/internal/database"
	"github.com/tripsplit/tripsplit/internal/expense"
	expensesplit "github.com/tripsplit/tripsplit/internal/expense/split"
	"github.com/tripsplit/tripsplit/internal/settlement"
	"github.com/tripsplit/tripsplit/internal/trip"
	"github.com/tripsplit/tripsplit/pkg/logging"
	mw "github.com/tripsplit/tripsplit/pkg/middleware"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		slog.Info("No .env file found, using environment variables")
	}

	logging.Setup()

	// Load configuration
	cfg := config.Load()

	// Pick stores: demo mode serves canned in-memory data with no backend.
	var tripStore trip.Store
	var expenseStore expense.Store
	if cfg.DemoMode {
		slog.Info("Demo mode enabled, serving canned data")
		tripStore = trip.NewDemoStore(cfg.BaseCurrency)
		expenseStore = expense.NewDemoStore()
	} else {
		db, err := database.NewPostgresConnection(cfg.DatabaseURL)
		if err != nil {
			slog.Error("Failed to connect to database", "error", err)
			os.Exit(1)
		}
		defer db.Close()

		if err := database.Migrate(db); err != nil {
			slog.Error("Failed to run migrations", "error", err)
			os.Exit(1)
		}
		slog.Info("Connected to database")

		tripStore = trip.NewRepository(db)
		expenseStore = expense.NewRepository(db)
	}

	// Google ID-token verification (falls back to the local allowlist)
	if err := mw.InitializeFirebase(cfg); err != nil {
		slog.Error("Failed to initialize Firebase", "error", err)
		os.Exit(1)
	}

	// Split strategy factory
	splitFactory := expensesplit.NewFactory()

	// Trip feature
	tripService := trip.NewService(tripStore, "TripSplit", cfg.BaseCurrency)
	tripHandler := trip.NewHandler(tripService)

	// Expense feature (with split factory injected)
	expenseService := expense.NewService(expenseStore, tripService, splitFactory)
	expenseHandler := expense.NewHandler(expenseService)

	// Settlement feature
	settlementService := settlement.NewService(expenseStore, tripService)
	settlementHandler := settlement.NewHandler(settlementService)

	r := chi.NewRouter()

	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.RequestID)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	r.Get("/swagger/*", httpSwagger.WrapHandler)

	// API routes
	r.Route("/api/v1", func(r chi.Router) {
		r.Use(mw.Auth(cfg))

		r.Mount("/trip", tripHandler.Routes())
		r.Mount("/expenses", expenseHandler.Routes())
		r.Mount("/settlements", settlementHandler.Routes())
	})

	slog.Info("Server starting", "port", cfg.Port, "base_currency", cfg.BaseCurrency)
	if err := http.ListenAndServe(":"+cfg.Port, r); err != nil {
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	}
}
