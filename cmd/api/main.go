package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/mvero/actiond/pkg/action/schema"
	"github.com/mvero/actiond/pkg/api"
	"github.com/mvero/actiond/pkg/db"
	"github.com/mvero/actiond/pkg/scheduler"
	"github.com/mvero/actiond/pkg/transport"

	_ "github.com/mvero/actiond/docs"
)

// @title           Actiond API
// @version         1.0
// @description     REST API for managing and triggering device actions

// @host      localhost:8080
// @BasePath  /api/v1
// @schemes   http https

func main() {
	// Configure logging
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	// Parse flags
	dbPath := flag.String("db", "", "Path to database file (default: ~/.config/actiond/actiond.db)")
	addr := flag.String("addr", "0.0.0.0:8080", "API listen address")
	serialPort := flag.String("port", "", "Serial port path (overrides the stored link config)")
	flag.Parse()

	ctx := context.Background()

	// Open database
	database, err := db.Open(*dbPath)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to open database")
	}
	defer func() {
		if err := database.Close(); err != nil {
			log.Error().Err(err).Msg("Failed to close database")
		}
	}()

	log.Info().Str("path", database.Path()).Msg("Database opened")

	// Run migrations
	if err := database.Migrate(ctx); err != nil {
		log.Fatal().Err(err).Msg("Failed to run database migrations")
	}

	// Bootstrap if needed (first run)
	needsBootstrap, err := database.NeedsBootstrap(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to check bootstrap status")
	}
	if needsBootstrap {
		log.Info().Msg("First run detected, bootstrapping database...")
		if err := database.Bootstrap(ctx); err != nil {
			log.Fatal().Err(err).Msg("Failed to bootstrap database")
		}
		log.Info().Msg("Database bootstrapped successfully")
	}

	// Load configuration
	cfg, err := database.ActiveConfig(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	port := cfg.SerialPort()
	if *serialPort != "" {
		port = *serialPort
	}

	log.Info().
		Str("project", cfg.Project.Name).
		Str("port", port).
		Int("baud", cfg.BaudRate()).
		Msg("Configuration loaded")

	// Try to open the serial link; fall back to NullSender
	var sender transport.Sender

	serialSender, err := transport.OpenSerial(port, cfg.BaudRate())
	if err != nil {
		log.Warn().Err(err).Str("port", port).Msg("Serial link unavailable, using null sender")
		sender = transport.NewNullSender()
	} else {
		sender = serialSender
	}
	defer func() {
		if err := sender.Close(); err != nil {
			log.Error().Err(err).Msg("Failed to close serial link")
		}
	}()

	store := database.Actions()
	sched := scheduler.New(sender)
	defer sched.StopAll()

	// Apply connection-time behavior: auto-execute actions and AutoStart timers
	if sender.IsConnected() {
		actions, err := store.List(ctx, cfg.Project.ID)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to load actions")
		}
		sched.OnConnect(ctx, actions)
	}

	validator := schema.NewValidator()

	// Create and start API router
	router := api.NewRouter(store, cfg.Project.ID, cfg.Link, sender, sched, validator)

	// Handle shutdown gracefully
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		log.Info().Msg("Shutting down...")
		sched.StopAll()
		if err := sender.Close(); err != nil {
			log.Error().Err(err).Msg("Failed to close serial link")
		}
		if err := database.Close(); err != nil {
			log.Error().Err(err).Msg("Failed to close database")
		}
		os.Exit(0)
	}()

	// Start server
	log.Info().Str("address", *addr).Msg("Starting API server")

	if err := router.Run(*addr); err != nil {
		log.Fatal().Err(err).Msg("Server failed")
	}
}
