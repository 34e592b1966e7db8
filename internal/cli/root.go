package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/noah-isme/timetable-api/internal/app"
	"github.com/noah-isme/timetable-api/pkg/config"
	"github.com/noah-isme/timetable-api/pkg/logger"
)

// Deps lets tests replace configuration loading and application wiring.
type Deps struct {
	LoadConfig func() (*config.Config, error)
	NewLogger  func(cfg *config.Config) (*zap.Logger, error)
	NewApp     func(cfg *config.Config, logger *zap.Logger) (*app.App, error)
}

// DefaultDeps connects to the configured PostgreSQL and Redis instances.
func DefaultDeps() Deps {
	return Deps{
		LoadConfig: config.Load,
		NewLogger:  logger.New,
		NewApp:     app.New,
	}
}

// NewRootCommand builds the timetable command tree.
func NewRootCommand(deps Deps) *cobra.Command {
	root := &cobra.Command{
		Use:           "timetable",
		Short:         "Timetable generation and inspection tool",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newGenerateCommand(deps),
		newViewCommand(deps),
		newCheckCommand(deps),
		newTokenCommand(deps),
		newCacheCommand(deps),
		newMigrateCommand(deps),
	)
	return root
}

// Execute runs the CLI with signal-aware context.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return NewRootCommand(DefaultDeps()).ExecuteContext(ctx)
}

func withApp(cmd *cobra.Command, deps Deps, run func(ctx context.Context, a *app.App) error) error {
	cfg, err := deps.LoadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	logr, err := deps.NewLogger(cfg)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer logr.Sync() //nolint:errcheck

	a, err := deps.NewApp(cfg, logr)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := a.Close(); cerr != nil {
			logr.Warn("failed to close connections", zap.Error(cerr))
		}
	}()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	return run(ctx, a)
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
