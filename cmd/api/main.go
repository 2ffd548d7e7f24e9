package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"

	"github.com/ocandela/eventpass/internal/app"
	"github.com/ocandela/eventpass/internal/clock"
	"github.com/ocandela/eventpass/internal/seed"
	"github.com/ocandela/eventpass/internal/storage/blob"
	"github.com/ocandela/eventpass/internal/storage/postgres"
	"github.com/ocandela/eventpass/internal/storage/sqlite"
	"github.com/ocandela/eventpass/internal/ticket"
	transporthttp "github.com/ocandela/eventpass/internal/transport/http"
	"github.com/ocandela/eventpass/migrations"
)

const defaultPort = "8080"
const defaultCORSOrigins = "http://localhost:5173,http://127.0.0.1:5173"
const defaultSQLitePath = "eventpass.db"
const shutdownTimeout = 10 * time.Second

func main() {
	logger := log.Default()
	if err := godotenv.Load(); err != nil {
		logger.Printf("WARN: no .env file loaded: %v", err)
	}

	port := os.Getenv("PORT")
	if port == "" {
		logger.Printf("WARN: PORT not set, using default %s", defaultPort)
		port = defaultPort
	}

	corsEnv := os.Getenv("CORS_ORIGINS")
	if corsEnv == "" {
		logger.Printf("WARN: CORS_ORIGINS not set, using default local origins")
		corsEnv = defaultCORSOrigins
	}

	startupCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	store, cleanup, err := openBlobStore(startupCtx, logger)
	if err != nil {
		log.Fatalf("open blob store: %v", err)
	}
	defer cleanup()

	identities, err := seed.Identities()
	if err != nil {
		log.Fatalf("load seed identities: %v", err)
	}
	seedEvents, err := seed.Events()
	if err != nil {
		log.Fatalf("load seed events: %v", err)
	}

	sessionSvc := app.NewSessionService(identities,
		app.WithLoginLatency(envDuration(logger, "LOGIN_LATENCY_MS")),
	)
	catalogSvc, err := app.NewCatalogService(
		startupCtx,
		store,
		ticket.NewQREncoder(),
		clock.NewSystem(),
		seedEvents,
		app.WithCatalogLatency(envDuration(logger, "CATALOG_LATENCY_MS")),
		app.WithPaymentLatency(envDuration(logger, "PAYMENT_LATENCY_MS")),
	)
	if err != nil {
		log.Fatalf("build catalog: %v", err)
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/health", transporthttp.HealthHandler)
	mux.Handle("/session", transporthttp.HandleSession(sessionSvc))
	mux.Handle("/events", transporthttp.HandleEvents(catalogSvc, sessionSvc))
	mux.Handle("/events/", transporthttp.HandleEventTree(catalogSvc, sessionSvc))
	mux.Handle("/me/events", transporthttp.HandleMyEvents(catalogSvc, sessionSvc))
	mux.Handle("/me/reservations", transporthttp.HandleMyReservations(catalogSvc, sessionSvc))
	mux.Handle("/", transporthttp.NotFoundHandler())

	corsOrigins := parseCSV(corsEnv)
	handler := transporthttp.RequestLogger(transporthttp.CORS(corsOrigins, mux), logger)

	server := &http.Server{
		Addr:    ":" + port,
		Handler: handler,
	}

	log.Printf("api listening on :%s", port)

	srvErr := make(chan error, 1)
	go func() {
		srvErr <- server.ListenAndServe()
	}()

	stopCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	select {
	case err := <-srvErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("server error: %v", err)
		}
	case <-stopCtx.Done():
		log.Printf("shutdown signal received, stopping server")
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Printf("server shutdown error: %v", err)
	}
	log.Printf("server stopped")
}

// openBlobStore selects the persistence backend from BLOB_BACKEND:
// memory (default), sqlite, or postgres.
func openBlobStore(ctx context.Context, logger *log.Logger) (blob.Store, func(), error) {
	backend := os.Getenv("BLOB_BACKEND")
	switch backend {
	case "", "memory":
		if backend == "" {
			logger.Printf("WARN: BLOB_BACKEND not set, catalog will not survive restarts")
		}
		return blob.NewMemory(), func() {}, nil
	case "sqlite":
		path := os.Getenv("SQLITE_PATH")
		if path == "" {
			path = defaultSQLitePath
		}
		store, err := sqlite.Open(path)
		if err != nil {
			return nil, nil, err
		}
		return store, func() { _ = store.Close() }, nil
	case "postgres":
		dbURL := os.Getenv("DATABASE_URL")
		if dbURL == "" {
			return nil, nil, errors.New("DATABASE_URL required for postgres backend")
		}
		pool, err := pgxpool.New(ctx, dbURL)
		if err != nil {
			return nil, nil, err
		}
		if err := pool.Ping(ctx); err != nil {
			pool.Close()
			return nil, nil, err
		}
		if err := migrations.Apply(ctx, pool); err != nil {
			pool.Close()
			return nil, nil, err
		}
		return postgres.NewStore(pool), pool.Close, nil
	default:
		return nil, nil, errors.New("unknown BLOB_BACKEND " + backend)
	}
}

func envDuration(logger *log.Logger, name string) time.Duration {
	raw := os.Getenv(name)
	if raw == "" {
		return 0
	}
	ms, err := strconv.Atoi(raw)
	if err != nil || ms < 0 {
		logger.Printf("WARN: invalid %s=%q, using 0", name, raw)
		return 0
	}
	return time.Duration(ms) * time.Millisecond
}

func parseCSV(input string) []string {
	if input == "" {
		return nil
	}
	parts := strings.Split(input, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		out = append(out, part)
	}
	return out
}
