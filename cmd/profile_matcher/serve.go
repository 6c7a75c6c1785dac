package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/profile-matcher/internal/config"
	"github.com/jonathan/profile-matcher/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API server",
	Long: `Starts the REST API. Authentication is enabled when JWT_SECRET is set
(with API_CLIENT_ID and API_CLIENT_SECRET_HASH for the token endpoint);
persistence when a database URL is given; LLM suggestion enrichment when a
Gemini API key is available.`,
	RunE: runServe,
}

var (
	serveConfigPath   string
	servePort         int
	serveTaxonomyPath string
	serveDatabaseURL  string
	serveAPIKey       string
	serveBudgetUSD    float64
	serveUseBrowser   bool
	serveVerbose      bool
)

func init() {
	serveCmd.Flags().StringVar(&serveConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")
	serveCmd.Flags().IntVar(&servePort, "port", 0, "HTTP listen port (default 8080)")
	serveCmd.Flags().StringVar(&serveTaxonomyPath, "taxonomy", "", "Path to a taxonomy JSON file")
	serveCmd.Flags().StringVar(&serveDatabaseURL, "db-url", "", "PostgreSQL connection URL (optional, defaults to DATABASE_URL env var)")
	serveCmd.Flags().StringVar(&serveAPIKey, "api-key", "", "Gemini API key (optional, defaults to GEMINI_API_KEY env var)")
	serveCmd.Flags().Float64Var(&serveBudgetUSD, "budget", 0, "LLM spend budget in USD (0 = unlimited)")
	serveCmd.Flags().BoolVar(&serveUseBrowser, "use-browser", false, "Use headless browser for SPA job pages (requires Chrome)")
	serveCmd.Flags().BoolVarP(&serveVerbose, "verbose", "v", false, "Debug-level logging")

	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	var cfg config.Config
	if serveConfigPath != "" {
		loaded, err := config.LoadConfig(serveConfigPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if err := loaded.Validate(); err != nil {
			return err
		}
		cfg = *loaded
	}

	flags := config.Config{
		Taxonomy:    serveTaxonomyPath,
		Port:        servePort,
		DatabaseURL: serveDatabaseURL,
		APIKey:      serveAPIKey,
		BudgetUSD:   serveBudgetUSD,
	}
	merged := flags.MergeWithDefaults(cfg)

	if merged.Port == 0 {
		merged.Port = 8080
	}
	if merged.DatabaseURL == "" {
		merged.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if merged.APIKey == "" {
		merged.APIKey = os.Getenv("GEMINI_API_KEY")
	}

	logger, err := newLogger(serveVerbose || cfg.Verbose)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	srv, err := server.New(context.Background(), server.Config{
		Port:         merged.Port,
		TaxonomyPath: merged.Taxonomy,
		DatabaseURL:  merged.DatabaseURL,
		APIKey:       merged.APIKey,
		BudgetUSD:    merged.BudgetUSD,
		UseBrowser:   serveUseBrowser || cfg.UseBrowser,
	}, logger)
	if err != nil {
		return err
	}

	return srv.Start()
}
