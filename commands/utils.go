package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/beesaferoot/rentals/internal/config"
	"github.com/beesaferoot/rentals/internal/database"
	"github.com/beesaferoot/rentals/internal/logging"
	"github.com/beesaferoot/rentals/store"
)

// EnvFiles are loaded, when present, before the environment is parsed.
var EnvFiles = []string{".env", ".env.local"}

type env struct {
	cfg    *config.Config
	logger *zap.Logger
	db     *gorm.DB
	store  *store.GormStore
}

// setup loads configuration and opens the database for one command invocation.
func setup(cmd *cobra.Command) (*env, error) {
	cfg, err := config.Load(EnvFiles...)
	if err != nil {
		return nil, err
	}

	debug, _ := cmd.Flags().GetBool("debug")
	level := cfg.LogLevel
	if debug {
		level = "debug"
	}
	logger, err := logging.New(level, cfg.LogFormat)
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}

	db, err := database.Open(cfg, debug)
	if err != nil {
		_ = logger.Sync()
		return nil, err
	}

	return &env{cfg: cfg, logger: logger, db: db, store: store.NewGormStore(db)}, nil
}

func (e *env) Close() {
	if sqlDB, err := e.db.DB(); err == nil {
		_ = sqlDB.Close()
	}
	_ = e.logger.Sync()
}

// commandContext bounds the command by --timeout, falling back to STATEMENT_TIMEOUT.
func (e *env) commandContext(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	timeout := e.cfg.StatementTimeout
	if t, err := cmd.Flags().GetDuration("timeout"); err == nil && t > 0 {
		timeout = t
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	if timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, timeout)
}

// AddGlobalFlags registers the flags every command understands.
func AddGlobalFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().Bool("debug", false, "Enable debug logging and SQL output")
	cmd.PersistentFlags().Duration("timeout", 0, "Abort database work after this long (default STATEMENT_TIMEOUT)")
}

func formatTime(t time.Time) string {
	return t.Format(time.RFC3339)
}
