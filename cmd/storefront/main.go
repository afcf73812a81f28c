package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nikolayk812/storefront/internal/config"
	"github.com/nikolayk812/storefront/internal/logging"
	"github.com/nikolayk812/storefront/internal/metrics"
	"github.com/nikolayk812/storefront/internal/outbox"
	"github.com/nikolayk812/storefront/internal/repository"
	"github.com/nikolayk812/storefront/internal/service"
	"github.com/nikolayk812/storefront/internal/transport/httpapi"
	"github.com/nikolayk812/storefront/migrations"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/sirupsen/logrus"
)

func main() {
	configPath := flag.String("config", "", "path to YAML config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		os.Exit(1)
	}

	logger, err := logging.New(os.Stdout, cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger error: %v\n", err)
		os.Exit(1)
	}
	log := logger.WithField("service", logging.Service)

	if err := run(cfg, log); err != nil {
		log.WithError(err).Fatal("storefront stopped")
	}
}

func run(cfg config.Config, log logrus.FieldLogger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := newPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("newPool: %w", err)
	}
	defer pool.Close()

	if err := migrations.Apply(ctx, pool); err != nil {
		return fmt.Errorf("migrations.Apply: %w", err)
	}
	log.WithField("count", len(migrations.Names())).Info("database migrations applied")

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(registry)

	repos := repository.NewRepositories(pool)
	tx := repository.NewTransactor(pool)
	unit := cfg.Currency()

	handler := httpapi.NewHandler(
		service.NewCatalog(repos, tx, unit, log),
		service.NewCart(repos, tx, unit, log),
		service.NewCheckout(tx, cfg.Checkout.Timeout, cfg.Kafka.Topic, log, service.WithCheckoutMetrics(m)),
		service.NewOrder(repos, tx, cfg.Kafka.Topic, log),
		unit,
		log,
	)

	gin.SetMode(gin.ReleaseMode)
	router := httpapi.NewRouter(handler, httpapi.RouterConfig{
		UserHeader: cfg.Identity.UserHeader,
		RoleHeader: cfg.Identity.RoleHeader,
		Metrics:    m,
		Gatherer:   registry,
	})

	srv := &http.Server{
		Addr:              cfg.HTTP.Addr,
		Handler:           router,
		ReadHeaderTimeout: cfg.HTTP.ReadTimeout,
	}

	errCh := make(chan error, 2)

	go func() {
		log.WithField("addr", cfg.HTTP.Addr).Info("http server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("srv.ListenAndServe: %w", err)
		}
	}()

	var publisher *outbox.KafkaPublisher
	if cfg.Kafka.Enabled() {
		publisher = outbox.NewKafkaPublisher(cfg.Kafka.Brokers)
		relay := outbox.NewRelay(tx, publisher, cfg.Outbox.PollInterval, cfg.Outbox.BatchSize, m, log)

		go func() {
			log.WithField("brokers", cfg.Kafka.Brokers).Info("outbox relay started")
			if err := relay.Run(ctx); err != nil {
				errCh <- fmt.Errorf("relay.Run: %w", err)
			}
		}()
	} else {
		log.Warn("kafka brokers not configured, outbox relay disabled")
	}

	select {
	case <-ctx.Done():
		log.Info("shutting down")
	case err := <-errCh:
		stop()
		return err
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()

	var shutdownErr error
	if err := srv.Shutdown(shutdownCtx); err != nil {
		shutdownErr = fmt.Errorf("srv.Shutdown: %w", err)
	}

	if publisher != nil {
		if err := publisher.Close(); err != nil {
			shutdownErr = errors.Join(shutdownErr, fmt.Errorf("publisher.Close: %w", err))
		}
	}

	return shutdownErr
}

func newPool(ctx context.Context, cfg config.DatabaseConfig) (*pgxpool.Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("pgxpool.ParseConfig: %w", err)
	}
	poolCfg.MaxConns = cfg.MaxConns

	connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	pool, err := pgxpool.NewWithConfig(connectCtx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("pgxpool.NewWithConfig: %w", err)
	}

	if err := pool.Ping(connectCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pool.Ping: %w", err)
	}

	return pool, nil
}
