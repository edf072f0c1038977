package application

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/damage-control/damage-service/internal/config"
	"github.com/damage-control/damage-service/internal/handler"
	"github.com/damage-control/damage-service/internal/kafka"
	"github.com/damage-control/damage-service/internal/logging"
	"github.com/damage-control/damage-service/internal/metrics"
	"github.com/damage-control/damage-service/internal/router"
	"github.com/damage-control/damage-service/internal/searchindex"
	"github.com/damage-control/damage-service/internal/store"
	"go.uber.org/zap"
)

// API wires the stores, handlers and HTTP server together.
type API struct {
	cfg      *config.Config
	log      *zap.SugaredLogger
	httpSrv  *http.Server
	producer *kafka.Producer

	Tickets *store.TicketStore
	Orders  *store.OrderStore
}

// NewAPI builds the application. The stores start empty unless
// SEED_SAMPLE_DATA loads the demo dataset.
func NewAPI(cfg *config.Config) (*API, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	log, err := logging.New(cfg.AppEnv, cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("logging: %w", err)
	}

	metrics.Register()

	tickets := store.NewTicketStore()
	orders := store.NewOrderStore()
	if cfg.SeedSampleData {
		seeded, err := tickets.CreateMany(store.SampleTickets())
		if err != nil {
			return nil, fmt.Errorf("seed sample data: %w", err)
		}
		log.Infow("seeded sample tickets", "count", len(seeded))
	}

	producer := kafka.NewProducer(cfg.KafkaBrokers, cfg.KafkaTopicTicket, log)
	searchClient := searchindex.NewClient(cfg.SearchServiceURL, log)

	ticketHandler := handler.NewTicketHandler(tickets, searchClient, producer, log)
	orderHandler := handler.NewOrderHandler(orders, log)

	httpSrv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           router.New(ticketHandler, orderHandler),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	return &API{
		cfg:      cfg,
		log:      log,
		httpSrv:  httpSrv,
		producer: producer,
		Tickets:  tickets,
		Orders:   orders,
	}, nil
}

// Run starts the HTTP server and blocks until ctx is cancelled, then
// shuts down gracefully.
func (a *API) Run(ctx context.Context) error {
	host := a.cfg.AppHost
	if host == "0.0.0.0" {
		host = "localhost"
	}
	base := "http://" + host + ":" + a.cfg.HTTPPort
	a.log.Infof("HTTP server listening on %s", a.httpSrv.Addr)
	a.log.Infof("  Swagger UI:   %s/swagger", base)
	a.log.Infof("  Health:       %s/health", base)
	a.log.Infof("  Metrics:      %s/metrics", base)
	a.log.Infof("  Tickets API:  %s/tickets", base)
	a.log.Infof("  Orders API:   %s/orders", base)

	errCh := make(chan error, 1)
	go func() {
		if err := a.httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := a.httpSrv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http shutdown: %w", err)
	}
	if err := a.producer.Close(); err != nil {
		a.log.Errorw("kafka close", "error", err)
	}
	_ = a.log.Sync()
	return nil
}
