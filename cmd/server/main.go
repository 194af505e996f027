package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"

	"hrdesk/internal/docstore"
	"hrdesk/internal/domain/auth"
	"hrdesk/internal/domain/directory"
	"hrdesk/internal/domain/records"
	"hrdesk/internal/platform/config"
	"hrdesk/internal/platform/db"
	"hrdesk/internal/platform/metrics"
	"hrdesk/internal/transport/http/api"
	authhandler "hrdesk/internal/transport/http/handlers/auth"
	departmenthandler "hrdesk/internal/transport/http/handlers/departments"
	employeehandler "hrdesk/internal/transport/http/handlers/employees"
	recordshandler "hrdesk/internal/transport/http/handlers/records"
	"hrdesk/internal/transport/http/middleware"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("config invalid: %v", err)
	}

	ctx := context.Background()
	pool, err := db.Connect(ctx, cfg)
	if err != nil {
		log.Fatalf("db connect failed: %v", err)
	}
	defer pool.Close()

	if cfg.RunMigrations {
		if err := db.Migrate(ctx, pool, "migrations"); err != nil {
			log.Fatalf("migrations failed: %v", err)
		}
	}
	if cfg.RunSeed {
		if err := db.Seed(ctx, pool, cfg); err != nil {
			log.Fatalf("seed failed: %v", err)
		}
	}

	docs := docstore.New(pool)

	directoryStore := directory.NewStore(docs)
	authStore := auth.NewStore(docs)
	provisioner := auth.NewProvisioner(authStore)
	directorySvc := directory.NewService(directoryStore, provisioner)
	tokens := auth.NewTokens(cfg.JWTSecret, cfg.TokenTTL)
	authSvc := auth.NewService(authStore, tokens, directorySvc)
	recordsSvc := records.NewService(docs)

	collector := metrics.New()

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Logger(collector))
	router.Use(middleware.Recoverer)
	router.Use(middleware.SecureHeaders(cfg.Environment == "production"))
	router.Use(middleware.BodyLimit(cfg.MaxBodyBytes))
	router.Use(middleware.Auth(tokens))

	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	router.Get("/readyz", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		if err := pool.Ping(ctx); err != nil {
			http.Error(w, "db not ready", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ready"))
	})

	router.Route("/api", func(r chi.Router) {
		loginLimiter := middleware.RateLimit(cfg.LoginRatePerMinute, time.Minute)
		authhandler.NewHandler(authSvc).RegisterRoutes(r, loginLimiter)
		employeehandler.NewHandler(directorySvc, recordsSvc, authSvc).RegisterRoutes(r)
		departmenthandler.NewHandler(directorySvc).RegisterRoutes(r)
		recordshandler.NewHandler(recordsSvc).RegisterRoutes(r)

		if cfg.MetricsEnabled {
			r.With(middleware.RequireAdmin).Get("/metrics", func(w http.ResponseWriter, r *http.Request) {
				api.Success(w, collector.Snapshot(), middleware.GetRequestID(r.Context()))
			})
		}
	})

	log.Printf("hrdesk server listening on %s", cfg.Addr)
	if err := http.ListenAndServe(cfg.Addr, router); err != nil {
		log.Fatalf("server failed: %v", err)
	}
}
