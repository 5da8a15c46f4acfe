package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-campaigns/internal/handlers/rest"
	"github.com/KirkDiggler/rpg-campaigns/internal/handlers/rest/v1alpha1"
	"github.com/KirkDiggler/rpg-campaigns/internal/jobs/catalogsync"
)

const shutdownTimeout = 30 * time.Second

var httpPort int

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the HTTP server",
	Long:  `Start the rpg-campaigns HTTP API with all configured services.`,
	RunE:  runServer,
}

func init() {
	serverCmd.Flags().IntVar(&httpPort, "port", 8080, "HTTP server port (overrides RPG_HTTP_PORT)")
}

func runServer(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	svc, err := newServices(ctx, cfg)
	if err != nil {
		return err
	}
	defer svc.Close()

	handler, err := v1alpha1.NewHandler(&v1alpha1.HandlerConfig{
		PlayerService:    svc.players,
		CampaignService:  svc.campaigns,
		CharacterService: svc.characters,
		CatalogService:   svc.catalog,
		ReportService:    svc.reports,
	})
	if err != nil {
		return fmt.Errorf("failed to create handler: %w", err)
	}

	app, err := rest.NewApp(&rest.Config{Handler: handler})
	if err != nil {
		return fmt.Errorf("failed to create app: %w", err)
	}

	if cfg.CatalogSyncInterval > 0 {
		job, err := catalogsync.New(&catalogsync.Config{
			CatalogService: svc.catalog,
			Interval:       cfg.CatalogSyncInterval,
		})
		if err != nil {
			return fmt.Errorf("failed to create catalog sync: %w", err)
		}
		if err := job.Start(ctx); err != nil {
			return err
		}
		defer func() {
			if err := job.Stop(); err != nil {
				slog.Warn("Failed to stop catalog sync", "error", err)
			}
		}()
	}

	addr := fmt.Sprintf(":%d", cfg.HTTPPort)
	errChan := make(chan error, 1)
	go func() {
		slog.Info("HTTP server starting", "addr", addr, "db", cfg.DBPath)
		if err := app.Listen(addr); err != nil {
			errChan <- fmt.Errorf("failed to serve: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		slog.Info("Received shutdown signal, gracefully stopping")
		if err := app.ShutdownWithTimeout(shutdownTimeout); err != nil {
			slog.Error("Graceful shutdown failed", "error", err)
			return err
		}
		slog.Info("Server stopped gracefully")
		return nil
	case err := <-errChan:
		return err
	}
}
