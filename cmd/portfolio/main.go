// Command portfolio runs the portfolio content service.
package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	portfolio "github.com/carnelle/portfolio"
	"github.com/carnelle/portfolio/internal/logging"
	"github.com/carnelle/portfolio/internal/logging/gologger"
	"github.com/carnelle/portfolio/pkg/interfaces"
)

func main() {
	configPath := flag.String("config", "config.toml", "path to the configuration file")
	flag.Parse()

	if err := run(*configPath); err != nil {
		os.Exit(1)
	}
}

func run(configPath string) error {
	logger := bootLogger()

	cfg, err := portfolio.LoadConfig(configPath)
	if err != nil {
		logger.Error("load configuration", "error", err)
		return err
	}

	module, err := portfolio.New(cfg)
	if err != nil {
		logger.Error("build module", "error", err)
		return err
	}
	defer module.Close()

	ctx := context.Background()
	if err := module.Load(ctx); err != nil {
		logger.Error("load content", "error", err)
		return err
	}

	mux := http.NewServeMux()
	if err := module.Mount(mux); err != nil {
		logger.Error("mount routes", "error", err)
		return err
	}

	srv := &http.Server{
		Addr:    cfg.Server.Addr,
		Handler: mux,
	}

	shutdownErr := make(chan error)
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeoutDuration())
		defer cancel()
		shutdownErr <- srv.Shutdown(shutdownCtx)
	}()

	logger.Info("server starting", "addr", srv.Addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("server error", "error", err)
		return err
	}
	if err := <-shutdownErr; err != nil {
		logger.Error("shutdown error", "error", err)
		return err
	}
	logger.Info("server stopped")
	return nil
}

// bootLogger reports startup failures before the configured provider exists.
func bootLogger() interfaces.Logger {
	provider, err := gologger.NewProvider(gologger.Config{Level: "info", Format: "console"})
	if err != nil {
		return logging.NoOp()
	}
	return logging.HTTPLogger(provider)
}
