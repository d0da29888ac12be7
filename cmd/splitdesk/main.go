package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/mmynk/splitdesk/internal/auth"
	"github.com/mmynk/splitdesk/internal/client"
	"github.com/mmynk/splitdesk/internal/config"
	"github.com/mmynk/splitdesk/internal/dialog"
	"github.com/mmynk/splitdesk/internal/metrics"
	"github.com/mmynk/splitdesk/internal/middleware"
	"github.com/mmynk/splitdesk/internal/service"
	"github.com/mmynk/splitdesk/pkg/logging"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	logging.Setup(cfg.LogLevel)

	if err := run(ctx, cfg, os.Args[1:], os.Stdin, os.Stdout); err != nil {
		if errors.Is(err, service.ErrCancelled) {
			os.Exit(0)
		}
		if errors.Is(err, errUsage) {
			fmt.Fprint(os.Stderr, usage)
			os.Exit(2)
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config.Config, args []string, in io.Reader, out io.Writer) error {
	reg := prometheus.NewRegistry()
	m, err := metrics.NewClient(reg)
	if err != nil {
		return err
	}
	if cfg.Metrics {
		defer func() {
			if err := metrics.WriteText(os.Stderr, reg); err != nil {
				slog.Warn("Failed to dump metrics", "error", err)
			}
		}()
	}

	var token *auth.Token
	if cfg.Token != "" {
		token, err = auth.NewToken(cfg.Token)
		if err != nil {
			return fmt.Errorf("failed to read token: %w", err)
		}
		if claims := token.Claims(); claims != nil {
			exp, _ := token.ExpiresAt()
			slog.Debug("Using bearer token", "user_id", claims.UserID, "email", claims.Email, "expires_at", exp)
		}
	}

	httpClient := &http.Client{
		Timeout: cfg.Timeout,
		Transport: middleware.Chain(m.Instrument(http.DefaultTransport),
			middleware.RequestID(),
			middleware.BearerAuth(token),
			middleware.Logging(),
		),
	}

	backend, err := client.New(cfg.BaseURL, httpClient)
	if err != nil {
		return err
	}

	dlg := dialog.NewConsole(in, out)
	nav := &consoleNavigator{backend: backend, out: out}
	app := &app{
		backend: backend,
		actions: service.NewActions(backend, dlg, nav),
		dialog:  dlg,
		nav:     nav,
		out:     out,
	}

	slog.Debug("splitdesk starting", "base_url", cfg.BaseURL, "args", args)
	return app.dispatch(ctx, args)
}
