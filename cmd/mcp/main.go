package main

import (
	"flag"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/omada-tools/omada-mcp/pkg/config"
	"github.com/omada-tools/omada-mcp/pkg/logger"
	omadamcp "github.com/omada-tools/omada-mcp/pkg/mcp"
	"github.com/omada-tools/omada-mcp/pkg/omada"
)

func main() {
	// Logging must go to stderr; stdout is the MCP transport
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
		Msg("Configuration loaded")

	// Build the controller service
	service, err := omada.NewService(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize controller service")
	}

	// Create and start MCP server
	mcpServer := omadamcp.NewServer(service)

	log.Info().Msg("Starting MCP server on stdio")

	if err := mcpServer.ServeStdio(); err != nil {
		log.Fatal().Err(err).Msg("MCP server failed")
	}
}
