package main

import (
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	_ "modernc.org/sqlite"

	"github.com/discarr/discarr/internal/catalog"
	"github.com/discarr/discarr/internal/config"
	"github.com/discarr/discarr/internal/migrations"
)

var version = "dev"

var configPath string

var rootCmd = &cobra.Command{
	Use:   "discarr",
	Short: "Track physical discs against your media catalog",
	Long: `discarr - barcode-driven disc tracking

Scan disc barcodes against a local media catalog backed by Radarr
and Sonarr. Run 'discarrd' to listen on a hardware scanner.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "config.toml", "Path to config file")

	rootCmd.Version = version
	rootCmd.SetVersionTemplate("discarr {{.Version}}\n")
}

// env bundles everything a command needs against the local catalog.
type env struct {
	cfg    *config.Config
	db     *sql.DB
	store  *catalog.Store
	logger *slog.Logger
}

func (e *env) close() {
	_ = e.db.Close()
}

// openEnv loads config and opens the catalog database.
func openEnv() (*env, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, fmt.Errorf("invalid config:\n  %s", strings.Join(errs, "\n  "))
	}

	dbDir := filepath.Dir(cfg.Database.Path)
	if err := os.MkdirAll(dbDir, 0755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}
	db, err := sql.Open("sqlite", cfg.Database.Path)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	if _, err := db.Exec(migrations.InitialSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	// CLI output is for the human; keep the pipeline quiet unless asked.
	level := slog.LevelWarn
	if strings.EqualFold(cfg.Server.LogLevel, "debug") {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	return &env{
		cfg:    cfg,
		db:     db,
		store:  catalog.NewStore(db),
		logger: logger,
	}, nil
}
