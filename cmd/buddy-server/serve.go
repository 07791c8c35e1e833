package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/bobmcallan/insurancebuddy/internal/app"
	"github.com/bobmcallan/insurancebuddy/internal/common"
	"github.com/bobmcallan/insurancebuddy/internal/server"
)

const shutdownTimeout = 10 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	a, err := app.NewApp(configPath)
	if err != nil {
		return fmt.Errorf("failed to initialize app: %w", err)
	}
	defer a.Close()

	if missing := a.Config.ValidateRequired(); len(missing) > 0 {
		if a.Config.IsProduction() {
			return fmt.Errorf("missing required production settings: %s", strings.Join(missing, ", "))
		}
		a.Logger.Warn().Str("settings", strings.Join(missing, ", ")).Msg("Using development defaults")
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	result, err := app.EnsureSuperuser(ctx, a.Storage.InternalStore(), a.Logger, app.SuperuserRequestFromEnv())
	if err != nil {
		return fmt.Errorf("failed to ensure superuser: %w", err)
	}
	a.Logger.Debug().Str("result", result.String()).Msg("Superuser check")

	srv, err := server.NewServer(a)
	if err != nil {
		return fmt.Errorf("failed to build server: %w", err)
	}

	common.PrintBanner(a.Config, a.Logger)
	a.WarmCatalog()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		a.Logger.Info().Msg("Shutdown signal received")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	err = g.Wait()
	common.PrintShutdownBanner(a.Logger)
	return err
}
