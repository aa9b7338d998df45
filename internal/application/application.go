package application

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/ihworker/custom-authn-mfe/internal/api"
	"github.com/ihworker/custom-authn-mfe/internal/config"
	"github.com/ihworker/custom-authn-mfe/internal/hooks"
	"github.com/ihworker/custom-authn-mfe/internal/mfe"
	"github.com/ihworker/custom-authn-mfe/internal/plugins"
	"github.com/ihworker/custom-authn-mfe/internal/render"
)

// App encapsulates the loaded registry and the HTTP server exposing it.
type App struct {
	cfg      config.Config
	registry *hooks.Registry
	catalog  *plugins.Catalog
	router   http.Handler
	logger   *zap.Logger
	server   *http.Server
}

// New loads the builtin plugins with environment lookups served by lookup and
// builds the server from cfg.
func New(cfg config.Config, logger *zap.Logger, lookup mfe.LookupFunc) (*App, error) {
	return NewWithCatalog(cfg, logger, lookup, plugins.Builtin())
}

// NewWithCatalog is New with an explicit plugin catalog.
func NewWithCatalog(cfg config.Config, logger *zap.Logger, lookup mfe.LookupFunc, catalog *plugins.Catalog) (*App, error) {
	registry := hooks.NewRegistry()
	catalog.Load(registry, lookup, logger)

	if err := checkMFEApps(registry); err != nil {
		return nil, fmt.Errorf("invalid MFE configuration: %w", err)
	}

	handler := api.NewHandler(registry, catalog.Names())
	router := api.NewRouter(handler, logger,
		api.WithLogging(cfg.EnableRequestLogging),
		api.WithRateLimit(cfg.RateLimitRPS, cfg.RateLimitBurst),
	)

	return &App{
		cfg:      cfg,
		registry: registry,
		catalog:  catalog,
		router:   router,
		logger:   logger,
		server:   NewServer(cfg, router),
	}, nil
}

// NewServer creates and configures an HTTP server from the provided configuration.
func NewServer(cfg config.Config, handler http.Handler) *http.Server {
	addr := cfg.Port
	if !strings.Contains(addr, ":") {
		addr = ":" + addr
	}

	return &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
		WriteTimeout:      cfg.WriteTimeout,
		IdleTimeout:       cfg.IdleTimeout,
	}
}

// Plugins lists loaded plugin names in load order.
func (a *App) Plugins() []string {
	return a.catalog.Names()
}

// Registry returns the populated hook registry.
func (a *App) Registry() *hooks.Registry {
	return a.registry
}

// EnvFile renders the environment patches.
func (a *App) EnvFile() string {
	return render.EnvFile(a.registry.EnvPatches.Items())
}

// ConfigYAML renders the merged configuration defaults.
func (a *App) ConfigYAML() ([]byte, error) {
	return render.ConfigYAML(render.MergeDefaults(a.registry.ConfigDefaults.Items()))
}

// Save writes the environment and configuration files under the configured root.
func (a *App) Save(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	envPath := a.cfg.EnvFilePath()
	if err := render.WriteFile(envPath, []byte(a.EnvFile())); err != nil {
		return fmt.Errorf("save env file: %w", err)
	}
	a.logger.Info("env file saved",
		zap.String("path", envPath),
		zap.Int("patches", a.registry.EnvPatches.Len()),
	)

	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := a.ConfigYAML()
	if err != nil {
		return err
	}
	configPath := a.cfg.ConfigFilePath()
	if err := render.WriteFile(configPath, data); err != nil {
		return fmt.Errorf("save config file: %w", err)
	}
	a.logger.Info("config file saved",
		zap.String("path", configPath),
		zap.Int("defaults", a.registry.ConfigDefaults.Len()),
	)
	return nil
}

// Start starts the HTTP server in a goroutine and logs the listening address.
func (a *App) Start() error {
	go func() {
		a.logger.Info("server listening", zap.String("addr", a.server.Addr))
		if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.logger.Fatal("server error", zap.Error(err))
		}
	}()
	return nil
}

// Server returns the HTTP server instance for shutdown handling.
func (a *App) Server() *http.Server {
	return a.server
}

// checkMFEApps verifies the effective MFE_APPS value has positive, unique
// ports. Values of other types are left to the host.
func checkMFEApps(registry *hooks.Registry) error {
	merged := render.MergeDefaults(registry.ConfigDefaults.Items())
	apps, ok := merged[mfe.ConfigKey].(mfe.Apps)
	if !ok {
		return nil
	}
	return mfe.CheckPorts(apps)
}
