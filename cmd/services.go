package cmd

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/xvierd/sprint-cli/internal/adapters/notification"
	"github.com/xvierd/sprint-cli/internal/adapters/storage"
	"github.com/xvierd/sprint-cli/internal/adapters/tui"
	"github.com/xvierd/sprint-cli/internal/config"
	"github.com/xvierd/sprint-cli/internal/gradient"
	"github.com/xvierd/sprint-cli/internal/ports"
	"github.com/xvierd/sprint-cli/internal/services"
)

// appDeps groups all service-layer dependencies initialized at startup.
type appDeps struct {
	config   *config.Config
	logger   *log.Logger
	palette  tui.Palette
	history  ports.HistoryLog
	notifier *notification.Notifier
	prompter *tui.Prompter
	sessions *services.SessionService
	recent   *services.HistoryService
}

// app holds all initialized service dependencies.
// Populated by initializeServices() and accessible to all commands.
var app appDeps

// initializeServices sets up all the required services and adapters.
// Views write to the command's output so tests can capture it.
func initializeServices(cmd *cobra.Command) error {
	app.logger = newLogger(cmd.ErrOrStderr())

	// A broken config file is reported, not fatal
	cfg, err := config.Load()
	if err != nil {
		app.logger.Warn("using default configuration", "err", err)
		cfg = config.DefaultConfig()
	}
	app.config = cfg

	level, err := log.ParseLevel(cfg.Log.Level)
	if err != nil {
		app.logger.Warn("unknown log level, using warn", "level", cfg.Log.Level)
		level = log.WarnLevel
	}
	app.logger.SetLevel(level)

	out := cmd.OutOrStdout()
	renderer := gradient.Detect()
	app.palette = tui.NewPalette(&cfg.Theme)

	app.history = storage.New(cfg.History.LogFile)
	app.notifier = notification.New(&cfg.Notifications)
	app.prompter = tui.NewPrompter(app.palette, tea.WithOutput(out))

	app.sessions = services.NewSessionService(app.history, app.notifier, tui.NewCountdownView(out, app.palette, renderer))
	app.sessions.SetConfig(cfg)
	app.sessions.SetLogger(app.logger)

	app.recent = services.NewHistoryService(app.history, tui.NewHistoryView(out, app.palette, renderer))
	app.recent.SetLimit(cfg.History.Limit)

	app.logger.Debug("services initialized", "log_file", app.history.Path(), "level", level)
	return nil
}

// newLogger creates the diagnostics logger. It stays quiet below warn until
// the configured level is known.
func newLogger(w io.Writer) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		Prefix: "sprint",
		Level:  log.WarnLevel,
	})
}

// setupSignalHandler sets up a context that cancels on interrupt signals.
func setupSignalHandler() (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(context.Background())

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		select {
		case <-sigChan:
			cancel()
		case <-ctx.Done():
		}
		signal.Stop(sigChan)
	}()

	return ctx, cancel
}
