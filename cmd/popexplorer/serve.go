package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"popexplorer/internal/api"
	"popexplorer/internal/logging"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the query API over HTTP",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()
		return serve(ctx)
	},
}

func init() {
	serveCmd.Flags().StringVar(&cfg.Addr, "addr", cfg.Addr, "listen address")
	serveCmd.Flags().IntVar(&cfg.DefaultTopN, "top", cfg.DefaultTopN, "default number of countries for top queries")
	serveCmd.Flags().DurationVar(&cfg.ShutdownTimeout, "shutdown-timeout", cfg.ShutdownTimeout, "graceful shutdown timeout")
	rootCmd.AddCommand(serveCmd)
}

func newEcho() *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.JSONSerializer = api.JSONSerializer{}

	e.Use(middleware.CORS())
	e.Use(middleware.Recover())
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:   true,
		LogURI:      true,
		LogStatus:   true,
		LogLatency:  true,
		LogError:    true,
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			attrs := []any{"method", v.Method, "uri", v.URI, "status", v.Status, "latency", v.Latency}
			if v.Error != nil {
				slog.Warn("request failed", append(attrs, "err", v.Error)...)
				return nil
			}
			slog.Info("request", attrs...)
			return nil
		},
	}))
	return e
}

func serve(ctx context.Context) error {
	// The API is live right away and answers 503 until the dataset is in.
	e := newEcho()
	h := api.NewHandler(nil, cfg.DefaultTopN)
	h.RegisterRoutes(e)

	g, ctx := errgroup.WithContext(ctx)

	// Load in the background
	g.Go(func() error {
		slog.Info("loading dataset")
		t0 := time.Now()
		svc, err := loadService()
		if err != nil {
			return err
		}
		svc.BuildIndex()
		h.SetService(svc)
		slog.Info("dataset loaded, API is fully ready", "countries", svc.Count(), logging.Since(t0))
		return nil
	})

	g.Go(func() error {
		slog.Info("server listening", "addr", cfg.Addr)
		if err := e.Start(cfg.Addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		slog.Info("shutting down")
		return e.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
