package main

import (
	"context"
	"flag"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/mvero/actiond/pkg/db"
	actionmcp "github.com/mvero/actiond/pkg/mcp"
	"github.com/mvero/actiond/pkg/scheduler"
	"github.com/mvero/actiond/pkg/transport"
)

func main() {
	// Logging must go to stderr, stdout is the MCP transport
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	// Parse flags
	dbPath := flag.String("db", "", "Path to database file (default: ~/.config/actiond/actiond.db)")
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

	// Apply connection-time behavior before serving tools
	if sender.IsConnected() {
		actions, err := store.List(ctx, cfg.Project.ID)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to load actions")
		}
		sched.OnConnect(ctx, actions)
	}

	server := actionmcp.NewServer(store, cfg.Project.ID, sender, sched)

	log.Info().Str("project", cfg.Project.Name).Msg("Starting MCP server on stdio")

	if err := server.ServeStdio(); err != nil {
		log.Fatal().Err(err).Msg("MCP server failed")
	}
}
