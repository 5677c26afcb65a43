package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/table-reservations/internal/audit"
	"github.com/BruksfildServices01/table-reservations/internal/config"
	dbpkg "github.com/BruksfildServices01/table-reservations/internal/db"
	"github.com/BruksfildServices01/table-reservations/internal/events"
	"github.com/BruksfildServices01/table-reservations/internal/metrics"
	"github.com/BruksfildServices01/table-reservations/internal/notify"
	"github.com/BruksfildServices01/table-reservations/internal/obs"
	"github.com/BruksfildServices01/table-reservations/internal/routes"
	"github.com/BruksfildServices01/table-reservations/internal/timezone"
	ucReservation "github.com/BruksfildServices01/table-reservations/internal/usecase/reservation"
)

const shutdownTimeout = 15 * time.Second

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	loc, err := timezone.Load(cfg.Timezone)
	if err != nil {
		log.Fatalf("timezone: %v", err)
	}

	shutdownTracer, err := obs.InitTracer(ctx, cfg.OTLPEndpoint, cfg.AppEnv)
	if err != nil {
		log.Fatalf("tracing: %v", err)
	}

	// ======================================================
	// INFRA
	// ======================================================
	store, closeStore, err := dbpkg.OpenStore(ctx, cfg, loc, true)
	if err != nil {
		log.Fatalf("store: %v", err)
	}

	auditDispatcher := audit.NewDispatcher(audit.New(store))

	var publisher events.Publisher = events.Nop{}
	if cfg.EventsEnabled() {
		p, err := events.NewAMQPPublisher(cfg.RabbitURL, cfg.EventsExchange)
		if err != nil {
			log.Fatalf("events: %v", err)
		}
		publisher = p
	}

	var sender notify.Sender = notify.LogSender{}
	if cfg.EmailEnabled() {
		sender = notify.NewResendSender(cfg.ResendAPIKey, cfg.EmailFrom)
	}

	m := metrics.New()

	// ======================================================
	// USE CASES + HTTP
	// ======================================================
	reservations := ucReservation.New(store, ucReservation.Deps{
		Location: loc,
		Notifier: notify.NewNotifier(sender, cfg.EmailTimeout),
		Audit:    auditDispatcher,
		Events:   publisher,
		Metrics:  m,
	})

	r := gin.Default()
	if err := routes.RegisterRoutes(r, routes.Dependencies{
		Config:       cfg,
		Location:     loc,
		Now:          func() time.Time { return timezone.NowIn(loc) },
		Reservations: reservations,
		AuditStore:   store,
		Metrics:      m,
	}); err != nil {
		log.Fatalf("routes: %v", err)
	}

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Printf("Server running on %s (store=%s, tz=%s)", cfg.Addr(), cfg.StoreDriver, loc)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("failed to start server: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("http shutdown: %v", err)
	}
	auditDispatcher.Close()
	if err := publisher.Close(); err != nil {
		log.Printf("events close: %v", err)
	}
	if err := closeStore(shutdownCtx); err != nil {
		log.Printf("store close: %v", err)
	}
	if err := shutdownTracer(shutdownCtx); err != nil {
		log.Printf("tracer shutdown: %v", err)
	}
}
