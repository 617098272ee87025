package main

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/sync/errgroup"

	"safesignal/internal/alertlog"
	alerthandler "safesignal/internal/alertlog/handler"
	"safesignal/internal/contacts"
	contacthandler "safesignal/internal/contacts/handler"
	"safesignal/internal/notify"
	"safesignal/internal/platform/config"
	"safesignal/internal/platform/httpserver"
	"safesignal/internal/platform/logger"
	"safesignal/internal/platform/metrics"
	httptransport "safesignal/internal/transport/http"
)

// main wires the alert service: stores, services, notifier, router, and the
// server lifecycle. Business logic lives in the internal packages.
func main() {
	cfg := config.FromEnv()
	log := logger.New()

	if err := run(cfg, log); err != nil {
		log.Error("server exited", "error", err.Error())
		os.Exit(1)
	}
}

func run(cfg config.Server, log *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	m := metrics.New()

	contactStore, alertStore, closeStores, err := buildStores(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer closeStores()

	contactSvc := contacts.NewService(contactStore, log, m)
	if err := contactSvc.SeedDefaults(ctx); err != nil {
		return err
	}

	notifier, closeNotifier, err := buildNotifier(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer closeNotifier()

	alertSvc := alertlog.NewService(alertStore, contactSvc, notifier, log, m)

	router := httptransport.NewRouter(log, m,
		contacthandler.New(contactSvc, log),
		alerthandler.New(alertSvc, log),
	)
	srv := httpserver.New(cfg.Addr, router)

	log.Info("starting alert service", "addr", cfg.Addr)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}

// buildStores selects postgres-backed stores when a DSN is configured and
// in-memory stores otherwise.
func buildStores(ctx context.Context, cfg config.Server, log *slog.Logger) (contacts.Store, alertlog.Store, func(), error) {
	if cfg.PostgresDSN == "" {
		log.Info("using in-memory stores")
		return contacts.NewInMemoryStore(), alertlog.NewInMemoryStore(), func() {}, nil
	}

	db, err := sql.Open("postgres", cfg.PostgresDSN)
	if err != nil {
		return nil, nil, nil, err
	}
	pool, err := pgxpool.New(ctx, cfg.PostgresDSN)
	if err != nil {
		db.Close()
		return nil, nil, nil, err
	}
	closeStores := func() {
		pool.Close()
		db.Close()
	}

	contactStore := contacts.NewPostgresStore(db)
	if err := contactStore.EnsureSchema(ctx); err != nil {
		closeStores()
		return nil, nil, nil, err
	}
	alertStore := alertlog.NewPostgresStore(pool)
	if err := alertStore.EnsureSchema(ctx); err != nil {
		closeStores()
		return nil, nil, nil, err
	}

	log.Info("using postgres stores")
	return contactStore, alertStore, closeStores, nil
}

// buildNotifier publishes alert events to Kafka when brokers are configured
// and falls back to the logging stub otherwise.
func buildNotifier(ctx context.Context, cfg config.Server, log *slog.Logger) (notify.Notifier, func(), error) {
	if len(cfg.KafkaConfig.Brokers) == 0 {
		return notify.NewStub(log), func() {}, nil
	}
	publisher, err := notify.NewKafkaPublisher(ctx, cfg.KafkaConfig, log)
	if err != nil {
		return nil, nil, err
	}
	log.Info("publishing alerts to kafka", "topic", cfg.KafkaConfig.Topic)
	return publisher, publisher.Close, nil
}
