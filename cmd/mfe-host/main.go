package main

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alecthomas/kingpin/v2"
	"go.uber.org/zap"

	"github.com/ihworker/custom-authn-mfe/internal/application"
	"github.com/ihworker/custom-authn-mfe/internal/config"
	"github.com/ihworker/custom-authn-mfe/internal/logging"
)

var signalNotify = signal.Notify

func main() {
	kingpinApp := kingpin.New("mfe-host", "Loads MFE plugins and renders their configuration defaults and environment patches")
	configFile := kingpinApp.Flag("config", "Path to YAML configuration file").String()
	root := kingpinApp.Flag("root", "Directory the rendered files are written to").String()
	logLevel := kingpinApp.Flag("log-level", "Log level (debug, info, warn, error)").String()

	pluginsCmd := kingpinApp.Command("plugins", "List loaded plugins")
	configCmd := kingpinApp.Command("config", "Print the merged configuration defaults as YAML")
	envCmd := kingpinApp.Command("env", "Print the rendered environment file")
	saveCmd := kingpinApp.Command("save", "Write the environment and configuration files under the root directory")
	serveCmd := kingpinApp.Command("serve", "Serve a read-only view of the hook registry over HTTP")
	port := serveCmd.Flag("port", "HTTP port exposed by the inspection server").String()
	rateLimitRPSFlag := serveCmd.Flag("rate-limit-rps", "Requests per second allowed (set 0 to disable)").Default("-1").Float64()
	rateLimitBurstFlag := serveCmd.Flag("rate-limit-burst", "Burst capacity for rate limiter (set 0 to disable)").Default("-1").Int()

	command := kingpin.MustParse(kingpinApp.Parse(os.Args[1:]))

	overrides := &config.CLIOverrides{
		ConfigFile: *configFile,
		Root:       root,
		LogLevel:   logLevel,
		Port:       port,
	}
	if *rateLimitRPSFlag >= 0 {
		overrides.RateLimitRPS = rateLimitRPSFlag
	}
	if *rateLimitBurstFlag >= 0 {
		overrides.RateLimitBurst = rateLimitBurstFlag
	}

	cfg, err := config.Load(overrides)
	if err != nil {
		panic(fmt.Sprintf("failed to load configuration: %v", err))
	}

	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		panic(fmt.Sprintf("failed to initialize logger: %v", err))
	}
	defer func() {
		_ = logger.Sync()
	}()

	app, err := application.New(cfg, logger, os.LookupEnv)
	if err != nil {
		logger.Fatal("failed to initialize application", zap.Error(err))
	}

	switch command {
	case pluginsCmd.FullCommand():
		err = printPlugins(os.Stdout, app)
	case configCmd.FullCommand():
		err = printConfig(os.Stdout, app)
	case envCmd.FullCommand():
		_, err = io.WriteString(os.Stdout, app.EnvFile())
	case saveCmd.FullCommand():
		err = app.Save(context.Background())
	case serveCmd.FullCommand():
		if err = app.Start(); err == nil {
			shutdown(app.Server(), cfg.ShutdownGracePeriod, logger)
		}
	}
	if err != nil {
		logger.Fatal("command failed", zap.String("command", command), zap.Error(err))
	}
}

func printPlugins(w io.Writer, app *application.App) error {
	for _, name := range app.Plugins() {
		if _, err := fmt.Fprintln(w, name); err != nil {
			return err
		}
	}
	return nil
}

func printConfig(w io.Writer, app *application.App) error {
	data, err := app.ConfigYAML()
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

func shutdown(server *http.Server, timeout time.Duration, logger *zap.Logger) {
	quit := make(chan os.Signal, 1)
	signalNotify(quit, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	<-quit
	logger.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Warn("graceful shutdown failed", zap.Error(err))
		if closeErr := server.Close(); closeErr != nil {
			logger.Error("forced close failed", zap.Error(closeErr))
		}
	}
}
