package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/taylor-curran/oshift-demo-all-apps/internal/client"
	"github.com/taylor-curran/oshift-demo-all-apps/internal/config"
	"github.com/taylor-curran/oshift-demo-all-apps/internal/core/port"
	"github.com/taylor-curran/oshift-demo-all-apps/internal/core/service"
	"github.com/taylor-curran/oshift-demo-all-apps/internal/handler"
	"github.com/taylor-curran/oshift-demo-all-apps/internal/infrastructure/amqp"
	"github.com/taylor-curran/oshift-demo-all-apps/internal/probe"
	"github.com/taylor-curran/oshift-demo-all-apps/internal/server"
)

func runCmd(envFile *string) *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Run the checks, announce readiness and serve health endpoints",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(*envFile)
			if err != nil {
				return err
			}
			setupLogger(cfg.LogLevel)
			log.SetOutput(cmd.ErrOrStderr())
			return runWorker(cmd.Context(), cfg)
		},
	}
}

var osHostname = os.Hostname

// workerHostname returns fallback when the host name is unavailable.
func workerHostname(fallback string) string {
	hostname, err := osHostname()
	if err != nil || hostname == "" {
		log.WithError(err).Warn("Host name unavailable, using worker id")
		return fallback
	}
	return hostname
}

func runWorker(ctx context.Context, cfg *config.Config) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	deps, clients, err := openDependencies(ctx, cfg)
	if err != nil {
		return err
	}
	defer deps.Close()

	// The broker may be down; the preflight reports that, so a missing client
	// only disables notifications.
	var notifier port.NotifierClient
	amqpClient, err := amqp.NewClient(ctx, cfg.AMQPURL)
	if err != nil {
		log.WithError(err).Warn("AMQP client unavailable, worker events will not be published")
	} else {
		defer amqpClient.Close()
		if err := amqp.NewTopologyManager(amqpClient).Setup(); err != nil {
			return err
		}
		notifier = client.NewAMQPNotifier(amqp.NewPublisher(amqpClient), validator.New())
	}

	workerID := uuid.New()
	preflight := service.NewPreflightService(workerID, probe.Default(clients),
		service.WithProbeTimeout(cfg.ProbeTimeout),
		service.WithReportStore(deps.store),
	)
	report, err := service.NewWorkerService(preflight, notifier, workerHostname(workerID.String())).Start(ctx)
	if err != nil {
		return err
	}

	httpServer := server.NewHTTPServer(handler.NewPreflightHTTPHandler(preflight, report))
	serverErr := make(chan error, 1)
	go func() {
		serverErr <- httpServer.Start(cfg.HTTPAddr)
	}()

	log.WithField("workerID", preflight.WorkerID()).Info("Fraud detection worker started successfully")

	select {
	case <-ctx.Done():
	case err := <-serverErr:
		if err != nil {
			return err
		}
	}

	log.Info("Shutting down fraud detection worker...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Errorf("Error shutting down HTTP server: %v", err)
	}
	return nil
}
