package main

import (
	"context"
	"encoding/json"
	"io"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/taylor-curran/oshift-demo-all-apps/internal/config"
	"github.com/taylor-curran/oshift-demo-all-apps/internal/core/domain"
	"github.com/taylor-curran/oshift-demo-all-apps/internal/core/service"
	"github.com/taylor-curran/oshift-demo-all-apps/internal/infrastructure/amqp"
	"github.com/taylor-curran/oshift-demo-all-apps/internal/probe"
	"github.com/taylor-curran/oshift-demo-all-apps/internal/storage"
)

func newRootCmd() *cobra.Command {
	var envFile string

	cmd := &cobra.Command{
		Use:           "fraud-detection-worker",
		Short:         "Fraud detection worker",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "optional dotenv file loaded before the environment")
	cmd.AddCommand(checkCmd(&envFile), runCmd(&envFile))
	return cmd
}

func setupLogger(level string) {
	log.SetFormatter(&log.JSONFormatter{})
	lvl, err := log.ParseLevel(level)
	if err != nil {
		lvl = log.InfoLevel
	}
	log.SetLevel(lvl)
}

// dependencies holds the clients the probes exercise.
type dependencies struct {
	store *storage.RedisReportStore
	db    *storage.PostgresDB
}

func (d *dependencies) Close() {
	if d.store != nil {
		_ = d.store.Close()
	}
	if d.db != nil {
		d.db.Close()
	}
}

func openDependencies(ctx context.Context, cfg *config.Config) (*dependencies, probe.Clients, error) {
	deps := &dependencies{
		store: storage.NewRedisReportStore(
			storage.NewRedisClient(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB),
			cfg.ReportTTL,
		),
	}
	clients := probe.Clients{
		Broker: amqp.NewDialer(cfg.AMQPURL),
		Store:  deps.store,
	}

	if cfg.DatabaseEnabled() {
		db, err := storage.NewPostgresDB(ctx, cfg.DatabaseURL)
		if err != nil {
			deps.Close()
			return nil, probe.Clients{}, err
		}
		deps.db = db
		clients.Database = db
	}
	return deps, clients, nil
}

func checkCmd(envFile *string) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Run the sanity and dependency checks once and exit",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(*envFile)
			if err != nil {
				return err
			}
			setupLogger(cfg.LogLevel)
			log.SetOutput(cmd.ErrOrStderr())

			ctx := cmd.Context()
			deps, clients, err := openDependencies(ctx, cfg)
			if err != nil {
				return err
			}
			defer deps.Close()

			preflight := service.NewPreflightService(uuid.New(), probe.Default(clients),
				service.WithProbeTimeout(cfg.ProbeTimeout),
			)
			report, runErr := preflight.Run(ctx)
			if err := writeReport(cmd.OutOrStdout(), report); err != nil {
				return err
			}
			return runErr
		},
	}
}

func writeReport(w io.Writer, report *domain.Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(report)
}
