package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/michaelolof/vregistry"
	"github.com/michaelolof/vregistry/server"
	"github.com/michaelolof/vregistry/validators"
	"github.com/michaelolof/vregistry/validators/rules"
)

func main() {
	// Use a minimal logger until the configured one is built.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo})))

	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		slog.Warn("could not load .env file", "error", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context, logW io.Writer) error {
	cfg, err := server.LoadConfig()
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	logger := vregistry.NewLogger(cfg.LogLevel, cfg.LogFormat, logW)
	reg := vregistry.New(vregistry.WithLogger(logger))

	if err := reg.From("Hex", rules.IsHexLoose); err != nil {
		return err
	}

	if cfg.Manifest != "" {
		bs, err := os.ReadFile(cfg.Manifest)
		if err != nil {
			return fmt.Errorf("manifest: %w", err)
		}
		if err := reg.LoadManifest(bs); err != nil {
			return err
		}
	}

	if cfg.Preload != "" {
		if err := reg.RegisterDefinitions(validators.ParseDefinitions(cfg.Preload)); err != nil {
			return fmt.Errorf("preload: %w", err)
		}
	}

	ln, err := net.Listen("tcp", cfg.Addr)
	if err != nil {
		return err
	}

	resolved, unresolved := reg.Names()
	logger.Info("serving validators", "addr", ln.Addr().String(), "resolved", len(resolved), "unresolved", len(unresolved))

	return server.New(reg, logger, cfg).Serve(ctx, ln)
}
