// Package node wires the inspector components for an embedding application.
package node

import (
	"context"
	"fmt"
	"net"

	"go.uber.org/zap"

	"github.com/spacemeshos/go-inspector/bridge"
	"github.com/spacemeshos/go-inspector/common/types"
	"github.com/spacemeshos/go-inspector/config"
	"github.com/spacemeshos/go-inspector/inspector"
	"github.com/spacemeshos/go-inspector/metrics"
)

// ElementStore resolves elements known to the local tree.
type ElementStore interface {
	RendererID(types.ElementID) (types.RendererID, bool)
	ElementByID(types.ElementID) (*types.Element, bool)
}

// Opt is a type to configure an app.
type Opt func(*App)

// WithConfig overrides the default configuration.
func WithConfig(cfg *config.Config) Opt {
	return func(a *App) {
		a.cfg = cfg
	}
}

// WithLoggers overrides the loggers built from the logging configuration.
func WithLoggers(loggers *config.Loggers) Opt {
	return func(a *App) {
		a.loggers = loggers
	}
}

// WithUpdateHandler is called whenever the displayed snapshot changes.
func WithUpdateHandler(handler func(*inspector.Snapshot)) Opt {
	return func(a *App) {
		a.onUpdate = handler
	}
}

// App owns the bridge, the inspector and the optional metrics endpoint.
type App struct {
	cfg      *config.Config
	loggers  *config.Loggers
	onUpdate func(*inspector.Snapshot)

	mux       *bridge.Mux
	inspector *inspector.Inspector
	metrics   *metrics.Server
}

// New creates an app that talks to the peer through transport.
func New(transport bridge.Transport, store ElementStore, opts ...Opt) (*App, error) {
	a := &App{}
	for _, opt := range opts {
		opt(a)
	}
	if a.cfg == nil {
		cfg := config.DefaultConfig()
		a.cfg = &cfg
	}
	if a.loggers == nil {
		loggers, err := a.cfg.Logging.Build()
		if err != nil {
			return nil, fmt.Errorf("build loggers: %w", err)
		}
		a.loggers = loggers
	}
	a.mux = bridge.New(transport, bridge.WithLogger(a.loggers.Bridge))
	inspectorOpts := []inspector.Opt{
		inspector.WithLogger(a.loggers.Inspector),
		inspector.WithConfig(a.cfg.Inspector),
	}
	if a.onUpdate != nil {
		inspectorOpts = append(inspectorOpts, inspector.WithUpdateHandler(a.onUpdate))
	}
	a.inspector = inspector.New(a.mux, store, inspectorOpts...)
	return a, nil
}

// Bridge returns the mux the transport owner feeds inbound messages to.
func (a *App) Bridge() *bridge.Mux {
	return a.mux
}

// Inspector returns the synchronization loop.
func (a *App) Inspector() *inspector.Inspector {
	return a.inspector
}

// Start starts the metrics endpoint if it is enabled.
func (a *App) Start() error {
	if !a.cfg.Metrics.Enabled {
		return nil
	}
	srv, err := metrics.NewServer(a.cfg.Metrics.Addr, a.loggers.Metrics)
	if err != nil {
		return err
	}
	a.metrics = srv
	a.metrics.Start()
	a.loggers.App.Info("serving metrics", zap.Stringer("addr", srv.Addr()))
	return nil
}

// MetricsAddr returns the address of the metrics endpoint, or nil if it is not running.
func (a *App) MetricsAddr() net.Addr {
	if a.metrics == nil {
		return nil
	}
	return a.metrics.Addr()
}

// Stop deselects the inspected element and stops the metrics endpoint.
func (a *App) Stop(ctx context.Context) error {
	a.inspector.Close()
	if a.metrics == nil {
		return nil
	}
	srv := a.metrics
	a.metrics = nil
	if err := srv.Stop(ctx); err != nil {
		return fmt.Errorf("stop metrics: %w", err)
	}
	return nil
}
