// ABOUTME: Entry point for the inkwell GraphQL server
// ABOUTME: Loads config, seeds the store, and serves the API over HTTP

package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/fatih/color"

	"github.com/inkwellhq/inkwell/internal/blog"
	"github.com/inkwellhq/inkwell/internal/config"
	api "github.com/inkwellhq/inkwell/internal/graphql"
	"github.com/inkwellhq/inkwell/internal/ident"
	"github.com/inkwellhq/inkwell/internal/store"
)

// Version is set by goreleaser at build time.
var version = "dev"

const banner = `
  _       _                   _ _
 (_)_ __ | | ____      __ ___| | |
 | | '_ \| |/ /\ \ /\ / / _ \ | |
 | | | | |   <  \ V  V /  __/ | |
 |_|_| |_|_|\_\  \_/\_/ \___|_|_|
`

// getConfigPath returns the path to the inkwell config file.
// Priority: INKWELL_CONFIG env var > XDG_CONFIG_HOME/inkwell/inkwell.yaml >
// ~/.config/inkwell/inkwell.yaml
func getConfigPath() string {
	if envPath := os.Getenv("INKWELL_CONFIG"); envPath != "" {
		return envPath
	}

	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "inkwell.yaml" // fallback
		}
		configDir = filepath.Join(homeDir, ".config")
	}

	return filepath.Join(configDir, "inkwell", "inkwell.yaml")
}

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: inkwell <command>")
		fmt.Println()
		fmt.Println("Commands:")
		fmt.Println("  serve     Start the GraphQL server")
		fmt.Println("  version   Print the version")
		os.Exit(1)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	var err error
	switch os.Args[1] {
	case "serve":
		err = runServe(ctx)
	case "version":
		fmt.Println(version)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", os.Args[1])
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runServe(ctx context.Context) error {
	configPath := getConfigPath()

	// Print banner
	cyan := color.New(color.FgCyan)
	cyan.Print(banner)

	gray := color.New(color.FgHiBlack)
	gray.Printf("    version: %s\n\n", version)

	// Load configuration; a missing file means defaults.
	cfg, err := config.Load(configPath)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("loading config: %w", err)
		}
		cfg = config.Default()
		configPath = "(defaults)"
	}

	logger := setupLogger(cfg.Logging)

	green := color.New(color.FgGreen)
	green.Print("    ▶ ")
	fmt.Printf("Config: %s\n", configPath)
	green.Print("    ▶ ")
	fmt.Printf("HTTP:   %s\n", cfg.Server.HTTPAddr)
	if cfg.Seed.Path != "" {
		green.Print("    ▶ ")
		fmt.Printf("Seed:   %s\n", cfg.Seed.Path)
	}
	fmt.Println()

	logger.Info("starting inkwell",
		"config", configPath,
		"http_addr", cfg.Server.HTTPAddr,
	)

	svc := blog.NewService(store.New(), ident.NewGenerator(), logger)

	if cfg.Seed.Path != "" {
		seed, err := store.LoadSeed(cfg.Seed.Path)
		if err != nil {
			return fmt.Errorf("loading seed: %w", err)
		}
		if err := svc.ApplySeed(ctx, seed); err != nil {
			return fmt.Errorf("applying seed: %w", err)
		}
	}

	schema, err := api.NewSchema(svc)
	if err != nil {
		return fmt.Errorf("building schema: %w", err)
	}

	mux := http.NewServeMux()
	mux.Handle("/", api.NewHandler(&schema))
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		fmt.Fprintln(w, "ok")
	})

	srv := &http.Server{
		Addr:    cfg.Server.HTTPAddr,
		Handler: mux,
	}

	go func() {
		<-ctx.Done()
		logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("shutdown failed", "error", err)
		}
	}()

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("serving http: %w", err)
	}
	return nil
}

func setupLogger(cfg config.LoggingConfig) *slog.Logger {
	var level slog.Level
	switch cfg.Level {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	var handler slog.Handler
	if cfg.Format == "json" {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}

	return slog.New(handler)
}
