// Package commands wires the gosolid command line.
package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/olehluchkiv/gosolid/internal/analyzer"
	"github.com/olehluchkiv/gosolid/internal/config"
	"github.com/olehluchkiv/gosolid/internal/logging"
	"github.com/olehluchkiv/gosolid/internal/resolver"
)

// ErrFindings is returned by check --strict when the analyzer reports anything.
var ErrFindings = errors.New("design findings reported")

type app struct {
	cfg      config.Config
	logLevel string
	logFile  string

	logger  *slog.Logger
	cleanup func()
}

func Execute() error {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	root, a := newRoot(cfg)
	defer a.close()
	return root.ExecuteContext(ctx)
}

func newRoot(cfg config.Config) (*cobra.Command, *app) {
	a := &app{cfg: cfg, cleanup: func() {}}

	root := &cobra.Command{
		Use:          "gosolid",
		Short:        "SOLID principle demonstrations and a design checker for Go packages",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level, err := config.ParseLevel(a.logLevel)
			if err != nil {
				return err
			}
			logger, cleanup, err := logging.Setup(a.logFile, level)
			if err != nil {
				return fmt.Errorf("setting up logging: %w", err)
			}
			a.logger = logger.With("command", cmd.Name())
			a.cleanup = cleanup
			return nil
		},
	}

	root.PersistentFlags().StringVar(&a.logLevel, "log-level", cfg.LogLevel, "log level (debug, info, warn, error)")
	root.PersistentFlags().StringVar(&a.logFile, "log-file", cfg.LogFile, "also write logs to this file")

	root.AddCommand(demoCmd(a), listCmd(), checkCmd(a), diagramCmd(a))
	return root, a
}

func (a *app) close() { a.cleanup() }

// analyze resolves input to a module, narrows the load patterns to input when
// it lies inside the module, then analyzes and filters.
func (a *app) analyze(ctx context.Context, input string, opts analyzer.AnalyzeOptions) (*analyzer.Result, error) {
	dir, err := resolver.Resolve(ctx, input, a.logger)
	if err != nil {
		return nil, fmt.Errorf("resolving %s: %w", input, err)
	}

	if abs, err := filepath.Abs(input); err == nil {
		if rel, err := filepath.Rel(dir, abs); err == nil && rel != "." && !strings.HasPrefix(rel, "..") {
			opts.Patterns = []string{"./" + filepath.ToSlash(rel) + "/..."}
		}
	}

	result, err := analyzer.Analyze(ctx, dir, opts, a.logger)
	if err != nil {
		return nil, fmt.Errorf("analyzing %s: %w", dir, err)
	}
	return analyzer.Filter(result, opts), nil
}

func pathArg(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return "."
}
