package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-analyzer/internal/config"
	"github.com/jonathan/resume-analyzer/internal/logger"
	"github.com/jonathan/resume-analyzer/internal/server"
)

var (
	servePort       int
	serveConfigPath string
	serveUseBrowser bool
	serveVerbose    bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes REST endpoints for storing companies and candidates and running resume analysis.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on")
	serveCmd.Flags().StringVar(&serveConfigPath, "config", "", "Path to JSON config file")
	serveCmd.Flags().BoolVar(&serveUseBrowser, "use-browser", false, "Render JavaScript-heavy job postings in a headless browser")
	serveCmd.Flags().BoolVar(&serveVerbose, "verbose", false, "Enable debug logging")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg := &config.Config{}
	if serveConfigPath != "" {
		loaded, err := config.LoadConfig(serveConfigPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	// Flags win over config file values, environment fills the rest.
	if servePort != 0 {
		cfg.Port = servePort
	}
	merged := cfg.MergeWithDefaults(config.Config{
		DatabaseURL:     os.Getenv("DATABASE_URL"),
		LanguageToolURL: os.Getenv("LANGUAGETOOL_URL"),
	})
	merged.UseBrowser = merged.UseBrowser || serveUseBrowser
	merged.Verbose = merged.Verbose || serveVerbose

	if err := merged.Validate(); err != nil {
		return err
	}

	log, err := logger.New(merged.JSONLogs, merged.Verbose)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	srv, err := server.New(server.Config{
		Port:            merged.Port,
		DatabaseURL:     merged.DatabaseURL,
		LanguageToolURL: merged.LanguageToolURL,
		SchemaPath:      merged.SchemaPath,
		UseBrowser:      merged.UseBrowser,
		FetchTimeout:    time.Duration(merged.FetchTimeout) * time.Second,
		Logger:          log,
	})
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}
