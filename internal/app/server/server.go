package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"fnf/internal/domain/employee"
	"fnf/internal/domain/leave"
	"fnf/internal/domain/payroll"
	"fnf/internal/domain/salary"
	"fnf/internal/domain/settlement"
	"fnf/internal/platform/cache"
	"fnf/internal/platform/config"
	"fnf/internal/platform/db"
	"fnf/internal/platform/metrics"
	"fnf/internal/platform/querier"
	"fnf/internal/transport/http/api"
	settlementhandler "fnf/internal/transport/http/handlers/settlement"
	"fnf/internal/transport/http/middleware"
)

// Pinger reports whether a backing store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

type App struct {
	Config  config.Config
	DB      *pgxpool.Pool
	Redis   *redis.Client
	Metrics *metrics.Collector
	Logger  *zap.Logger
	Router  http.Handler
}

// New connects the stores and builds the router.
func New(ctx context.Context, cfg config.Config, logger *zap.Logger) (*App, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	pool, err := db.Connect(ctx, cfg)
	if err != nil {
		return nil, err
	}
	rdb, err := cache.Connect(ctx, cfg, logger, 3)
	if err != nil {
		// The leave type cache is optional.
		logger.Warn("redis unavailable, leave types read from the database", zap.Error(err))
		rdb = nil
	}

	collector := metrics.New()
	svc := NewSettlementService(pool, rdb, cfg.LeaveTypeCacheTTL, logger)

	var checks []Pinger
	checks = append(checks, pool)
	if rdb != nil {
		checks = append(checks, redisPinger{rdb})
	}

	return &App{
		Config:  cfg,
		DB:      pool,
		Redis:   rdb,
		Metrics: collector,
		Logger:  logger,
		Router:  NewRouter(cfg, svc, collector, logger, checks...),
	}, nil
}

// NewSettlementService wires the Postgres readers and the optional Redis cache into a
// settlement service.
func NewSettlementService(db querier.Querier, rdb *redis.Client, cacheTTL time.Duration, logger *zap.Logger) *settlement.Service {
	leaveStore := leave.NewStore(db)
	return settlement.NewService(
		employee.NewStore(db),
		salary.NewResolver(salary.NewStore(db), logger),
		payroll.NewStore(db),
		leave.NewEngine(leaveStore, leave.NewEligibleTypes(leaveStore, rdb, cacheTTL, logger), logger),
		logger,
	)
}

func NewRouter(cfg config.Config, svc *settlement.Service, collector *metrics.Collector, logger *zap.Logger, checks ...Pinger) http.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Logger(logger))
	router.Use(chimw.Recoverer)
	if cfg.MetricsEnabled {
		router.Use(middleware.Metrics(collector))
	}
	router.Use(middleware.SecureHeaders(cfg.IsProduction()))
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORSAllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", middleware.RequestIDHeader},
		ExposedHeaders:   []string{middleware.RequestIDHeader, "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           300,
	}))
	router.Use(middleware.BodyLimit(cfg.MaxBodyBytes))
	router.Use(middleware.Auth(cfg.JWTSecret, logger))

	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	router.Get("/readyz", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		for _, check := range checks {
			if err := check.Ping(ctx); err != nil {
				logger.Warn("readiness check failed", zap.Error(err))
				http.Error(w, "not ready", http.StatusServiceUnavailable)
				return
			}
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ready"))
	})

	if cfg.MetricsEnabled {
		router.Get("/metrics", func(w http.ResponseWriter, r *http.Request) {
			api.Success(w, collector.Snapshot(), middleware.GetRequestID(r.Context()))
		})
	}

	router.Route("/api/v1", func(r chi.Router) {
		r.Use(chimw.Timeout(cfg.RequestTimeout))
		r.Use(middleware.RateLimit(cfg.RateLimitPerMinute, time.Minute, middleware.WithRateLimitLogger(logger)))

		h := settlementhandler.NewHandler(svc, collector, logger)
		h.AllowedRoles = cfg.AllowedRoles
		h.RequireAuth = cfg.JWTSecret != ""
		h.RegisterRoutes(r)
	})

	return router
}

// Run serves until ctx is cancelled or SIGINT/SIGTERM arrives, then drains in-flight requests
// for at most ShutdownTimeout.
func (a *App) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              a.Config.Addr,
		Handler:           a.Router,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      a.Config.RequestTimeout + 5*time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		a.Logger.Info("settlement server listening", zap.String("addr", a.Config.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case sig := <-quit:
		a.Logger.Info("shutting down", zap.String("signal", sig.String()))
	case <-ctx.Done():
		a.Logger.Info("shutting down", zap.Error(ctx.Err()))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.Config.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}
	return nil
}

func (a *App) Close() {
	if a.Redis != nil {
		if err := a.Redis.Close(); err != nil {
			a.Logger.Warn("redis close failed", zap.Error(err))
		}
	}
	if a.DB != nil {
		a.DB.Close()
	}
}

type redisPinger struct {
	client *redis.Client
}

func (p redisPinger) Ping(ctx context.Context) error {
	return p.client.Ping(ctx).Err()
}
