package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"go.bug.st/serial"
	_ "modernc.org/sqlite"

	"github.com/discarr/discarr/internal/catalog"
	"github.com/discarr/discarr/internal/config"
	"github.com/discarr/discarr/internal/ingest"
	"github.com/discarr/discarr/internal/migrations"
	"github.com/discarr/discarr/internal/resolve"
	"github.com/discarr/discarr/pkg/radarr"
	"github.com/discarr/discarr/pkg/sonarr"
	"github.com/discarr/discarr/pkg/upcdb"
)

func parseLogLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// runDaemon opens the scanner device and drives the autonomous resolution
// loop until the process is signaled.
func runDaemon(configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if errs := cfg.Validate(); len(errs) > 0 {
		return fmt.Errorf("invalid config:\n  %s", strings.Join(errs, "\n  "))
	}
	if cfg.Scanner.Device == "" {
		return fmt.Errorf("scanner.device: required for the daemon")
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.Server.LogLevel),
	}))

	dbDir := filepath.Dir(cfg.Database.Path)
	if err := os.MkdirAll(dbDir, 0755); err != nil {
		return fmt.Errorf("create db dir: %w", err)
	}

	db, err := sql.Open("sqlite", cfg.Database.Path)
	if err != nil {
		return fmt.Errorf("open db: %w", err)
	}
	defer func() { _ = db.Close() }()

	if _, err := db.Exec(migrations.InitialSQL); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}

	resolver := buildResolver(cfg, catalog.NewStore(db), logger)

	port, err := serial.Open(cfg.Scanner.Device, &serial.Mode{BaudRate: cfg.Scanner.BaudRate})
	if err != nil {
		return fmt.Errorf("open scanner %s: %w", cfg.Scanner.Device, err)
	}
	defer func() { _ = port.Close() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Closing the port on shutdown unblocks the producer's read.
	go func() {
		<-ctx.Done()
		_ = port.Close()
	}()

	logger.Info("listening for barcode scans",
		"device", cfg.Scanner.Device, "baud_rate", cfg.Scanner.BaudRate)

	runner := ingest.NewRunner(port, cfg.Scanner.TerminatorByte(), resolver, logger)
	err = runner.Run(ctx)
	if ctx.Err() != nil {
		logger.Info("shutting down")
		return nil
	}
	return err
}

// buildResolver wires the pipeline from config.
func buildResolver(cfg *config.Config, store *catalog.Store, logger *slog.Logger) *resolve.Resolver {
	upcOpts := []upcdb.Option{
		upcdb.WithLogger(logger),
		upcdb.WithRetryPolicy(upcdb.RetryPolicy{
			MaxAttempts:    cfg.UPC.MaxAttempts,
			RateLimitDelay: cfg.UPC.RateLimitDelay.Std(),
			TransportDelay: cfg.UPC.TransportDelay.Std(),
		}),
	}
	if cfg.UPC.URL != "" {
		upcOpts = append(upcOpts, upcdb.WithBaseURL(cfg.UPC.URL))
	}
	directory := upcdb.NewClient(upcOpts...)

	movies := radarr.NewClient(cfg.Radarr.URL, cfg.Radarr.APIKey, radarr.WithLogger(logger))
	series := sonarr.NewClient(cfg.Sonarr.URL, cfg.Sonarr.APIKey, sonarr.WithLogger(logger))

	return resolve.New(store, directory, movies, series, resolve.Config{
		MovieRoot:     cfg.Radarr.Root,
		SeriesRoot:    cfg.Sonarr.Root,
		MovieProfile:  cfg.Radarr.QualityProfile,
		SeriesProfile: cfg.Sonarr.QualityProfile,
		ConfirmTTL:    cfg.Resolution.ConfirmTTL.Std(),
	}, logger)
}
