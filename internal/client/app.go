package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/MKhiriev/go-docs-sync/internal/config"
	"github.com/MKhiriev/go-docs-sync/internal/logger"
	"github.com/MKhiriev/go-docs-sync/internal/service"
	"github.com/MKhiriev/go-docs-sync/internal/workers"
)

// onceFetchTimeout bounds the one-shot fetch from dial to first response.
const onceFetchTimeout = 30 * time.Second

// UI is the interactive consumer of the view sync client.
type UI interface {
	Run(ctx context.Context) error
}

// App runs the docs view client either as an interactive terminal view or,
// with [config.ClientConfig.Once] set, as a single fetch that prints the view
// as JSON.
type App struct {
	cfg      *config.ClientConfig
	services *service.ClientServices
	ui       UI
	out      io.Writer
	logger   *logger.Logger

	// errQuit is the error ui returns on a regular user exit.
	errQuit error
}

// NewApp wires services and ui into an [App], which implements [Client].
// quitErr is the sentinel ui returns when the user exits; it is not reported
// as a failure. ui may be nil in one-shot mode.
func NewApp(cfg *config.ClientConfig, services *service.ClientServices, ui UI, quitErr error, log *logger.Logger) (*App, error) {
	if cfg == nil {
		return nil, errors.New("nil client config")
	}
	if services == nil {
		return nil, errors.New("nil client services")
	}
	if ui == nil && !cfg.Once {
		return nil, errors.New("interactive mode requires a ui")
	}

	return &App{
		cfg:      cfg,
		services: services,
		ui:       ui,
		out:      os.Stdout,
		logger:   log.GetChildLogger(),
		errQuit:  quitErr,
	}, nil
}

// Run implements [Client]. It stops on SIGINT or SIGTERM.
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return a.run(ctx)
}

func (a *App) run(ctx context.Context) error {
	defer a.services.Close()

	ctx = a.logger.WithContext(ctx)

	if a.cfg.Once {
		return a.runOnce(ctx)
	}
	return a.runInteractive(ctx)
}

func (a *App) runInteractive(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	ws := workers.New(
		workers.WorkerFunc(func(ctx context.Context) error {
			defer cancel()
			return a.ui.Run(ctx)
		}),
		workers.WorkerFunc(func(ctx context.Context) error {
			<-ctx.Done()
			a.services.ViewSync.Teardown()
			return nil
		}),
	)

	err := ws.Run(ctx)
	if err != nil && a.errQuit != nil && errors.Is(err, a.errQuit) {
		logger.FromContext(ctx).Info().Msg("user quit")
		return nil
	}
	return err
}

func (a *App) runOnce(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, onceFetchTimeout)
	defer cancel()

	log := logger.FromContext(ctx)
	log.Info().Str("org", a.cfg.Sync.Org).Str("view_id", a.cfg.Sync.ViewID).Msg("fetching view once")

	view, err := a.services.Fetcher.Fetch(ctx, a.cfg.Sync.Org, a.cfg.Sync.ViewID)
	if err != nil {
		return fmt.Errorf("fetch view %s/%s: %w", a.cfg.Sync.Org, a.cfg.Sync.ViewID, err)
	}

	enc := json.NewEncoder(a.out)
	enc.SetIndent("", "  ")
	if err = enc.Encode(view); err != nil {
		return fmt.Errorf("write view: %w", err)
	}
	return nil
}
