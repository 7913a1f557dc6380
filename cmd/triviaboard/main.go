package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/playperu/triviaboard/internal/app"
	"github.com/playperu/triviaboard/internal/config"
	"github.com/playperu/triviaboard/internal/database"
	"github.com/playperu/triviaboard/internal/server"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := newRootCmd(os.Stdout).ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// serve runs the HTTP server and the session reaper until ctx is cancelled.
// A non-empty addr overrides HTTP_ADDR.
func serve(ctx context.Context, stdout io.Writer, addr string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if addr != "" {
		cfg.HTTPAddr = addr
	}

	logger := slog.New(slog.NewJSONHandler(stdout, &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}))

	// --- SQLite ---
	db, err := database.Open(ctx, cfg.DBPath)
	if err != nil {
		return fmt.Errorf("connecting to sqlite: %w", err)
	}
	defer db.Close()

	boards, err := server.NewDocStore(ctx, db)
	if err != nil {
		return fmt.Errorf("initializing board store: %w", err)
	}
	logger.Info("connected to sqlite", "path", cfg.DBPath)

	// --- Sessions ---
	broker := server.NewBroker()
	sessions := server.NewRegistry(logger, broker, cfg.SessionTTL, app.WithDelays(app.Delays{
		Celebration: cfg.CelebrationDelay,
		WinReveal:   cfg.WinRevealDelay,
	}))
	defer sessions.Close()

	// --- HTTP Server ---
	srv := server.New(cfg.HTTPAddr, logger, server.Deps{
		Sessions:  sessions,
		Broker:    broker,
		Boards:    boards,
		Checks:    map[string]server.Checker{"sqlite": server.PingChecker(db)},
		PublicURL: cfg.PublicURL,
		SPADir:    cfg.SPADir,
	})

	// --- Run ---
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("starting http server", "addr", cfg.HTTPAddr)
		return srv.Run(gctx)
	})

	g.Go(func() error {
		logger.Info("starting session reaper", "ttl", cfg.SessionTTL.String())
		return sessions.Run(gctx)
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down http server")
		return srv.Shutdown(context.Background())
	})

	return g.Wait()
}
