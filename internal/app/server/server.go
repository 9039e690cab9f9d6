package server

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"paydesk/internal/domain/auth"
	"paydesk/internal/domain/core"
	"paydesk/internal/domain/payroll"
	"paydesk/internal/domain/receipt"
	"paydesk/internal/domain/reports"
	"paydesk/internal/platform/config"
	"paydesk/internal/platform/db"
	"paydesk/internal/platform/logger"
	authhandler "paydesk/internal/transport/http/handlers/auth"
	employeeshandler "paydesk/internal/transport/http/handlers/employees"
	reportshandler "paydesk/internal/transport/http/handlers/reports"
	salarieshandler "paydesk/internal/transport/http/handlers/salaries"
	"paydesk/internal/transport/http/middleware"
)

// Deps carries everything the router needs, so tests can wire fake
// stores behind the same routes.
type Deps struct {
	AuthService    *auth.Service
	CoreService    *core.Service
	PayrollService *payroll.Service
	ReportsService *reports.Service
	Exporter       *receipt.Exporter
	JWTSecret      string
	Ready          func(ctx context.Context) error
}

func Run() {
	cfg := config.Load()
	logger.Init(cfg.Environment)
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}

	ctx := context.Background()
	pool, err := db.Connect(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("db connect failed")
	}
	defer pool.Close()

	if cfg.RunMigrations {
		if err := db.Migrate(ctx, pool, "migrations"); err != nil {
			log.Fatal().Err(err).Msg("migrations failed")
		}
	}
	if cfg.RunSeed {
		if err := db.Seed(ctx, pool, cfg); err != nil {
			log.Fatal().Err(err).Msg("seed failed")
		}
	}

	payrollStore := payroll.NewStore(pool)
	deps := Deps{
		AuthService:    auth.NewService(auth.NewStore(pool)),
		CoreService:    core.NewService(core.NewStore(pool)),
		PayrollService: payroll.NewService(payrollStore),
		ReportsService: reports.NewService(payrollStore),
		Exporter:       receipt.NewExporter(cfg.ReceiptDir, cfg.OpenExports),
		JWTSecret:      cfg.JWTSecret,
		Ready: func(ctx context.Context) error {
			return pool.Ping(ctx)
		},
	}

	log.Info().Str("addr", cfg.Addr).Msg("paydesk server listening")
	if err := http.ListenAndServe(cfg.Addr, NewRouter(deps)); err != nil {
		log.Fatal().Err(err).Msg("server failed")
	}
}

func NewRouter(deps Deps) http.Handler {
	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(middleware.Auth(deps.JWTSecret))

	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	router.Get("/readyz", func(w http.ResponseWriter, r *http.Request) {
		if deps.Ready != nil {
			ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
			defer cancel()
			if err := deps.Ready(ctx); err != nil {
				http.Error(w, "db not ready", http.StatusServiceUnavailable)
				return
			}
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ready"))
	})

	router.Route("/api/v1", func(r chi.Router) {
		authhandler.NewHandler(deps.AuthService, deps.JWTSecret).RegisterRoutes(r)
		employeeshandler.NewHandler(deps.CoreService).RegisterRoutes(r)
		salarieshandler.NewHandler(deps.PayrollService, deps.Exporter).RegisterRoutes(r)
		reportshandler.NewHandler(deps.ReportsService).RegisterRoutes(r)
	})

	return router
}
