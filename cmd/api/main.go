package main

import (
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/omada-tools/omada-mcp/pkg/api"
	"github.com/omada-tools/omada-mcp/pkg/config"
	"github.com/omada-tools/omada-mcp/pkg/logger"
	"github.com/omada-tools/omada-mcp/pkg/omada"

	_ "github.com/omada-tools/omada-mcp/docs"
)

// @title           Omada Inventory API
// @version         1.0
// @description     REST API exposing Omada controller sites, devices, and clients

// @host      localhost:8080
// @BasePath  /api/v1
// @schemes   http https

func main() {
	// Configure logging
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	// Parse flags
	configPath := flag.String("config", "", "Path to YAML config file (optional, environment wins)")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	// Apply the configured log level and sink
	if err := logger.Setup(cfg.LogLevel, cfg.LogFile); err != nil {
		log.Fatal().Err(err).Msg("Failed to configure logging")
	}

	log.Info().
		Str("controller", cfg.BaseURL).
		Str("omadac_id", cfg.OmadacID).
		Str("listen_addr", cfg.ListenAddr).
		Msg("Configuration loaded")

	// Build the controller service
	service, err := omada.NewService(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize controller service")
	}

	// Create API router
	router := api.NewRouter(service)

	// Handle shutdown gracefully
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		log.Info().Msg("Shutting down...")
		os.Exit(0)
	}()

	// Start server
	log.Info().Str("address", cfg.ListenAddr).Msg("Starting API server")

	if err := router.Run(cfg.ListenAddr); err != nil {
		log.Fatal().Err(err).Msg("Server failed")
	}
}
