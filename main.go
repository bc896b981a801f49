package main

import (
	"flag"
	"fmt"
	"os"

	"DrawSolutions/internal/board"
	"DrawSolutions/internal/config"
	"DrawSolutions/internal/logging"
	"DrawSolutions/internal/ui"
)

func main() {
	configPath := flag.String("config", "drawsolutions.toml", "path to the TOML settings file")
	logLevel := flag.String("log-level", "", "override the configured log level")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(2)
	}
	if *logLevel != "" {
		cfg.LogLevel = *logLevel
	}

	log, err := logging.New(cfg.LogLevel, cfg.LogDev)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logging: %v\n", err)
		os.Exit(2)
	}
	defer log.Sync()

	log.Infow("starting",
		"canvas", fmt.Sprintf("%dx%d", cfg.CanvasWidth, cfg.CanvasHeight),
		"pattern", cfg.Pattern().String(),
		"noise_seed", cfg.NoiseSeed,
		"export_phase", cfg.ExportPhase,
	)
	b := board.New(cfg, board.WithLogger(log))
	ui.RunApp(b, log)
}
