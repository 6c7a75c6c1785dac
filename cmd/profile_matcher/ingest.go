package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/jonathan/profile-matcher/internal/extraction"
	"github.com/jonathan/profile-matcher/internal/ingestion"
)

var ingestCmd = &cobra.Command{
	Use:   "ingest",
	Short: "Fetch a job posting from a URL and print it as JSON",
	Long:  "Fetches a job posting page, extracts the posting text, and derives a structured posting: title, required skills, stated years of experience, and level.",
	RunE:  runIngest,
}

var (
	ingestURL          string
	ingestTaxonomyPath string
	ingestUseBrowser   bool
	ingestVerbose      bool
)

func init() {
	ingestCmd.Flags().StringVarP(&ingestURL, "url", "u", "", "Job posting URL (required)")
	ingestCmd.Flags().StringVar(&ingestTaxonomyPath, "taxonomy", "", "Path to a taxonomy JSON file")
	ingestCmd.Flags().BoolVar(&ingestUseBrowser, "use-browser", false, "Use headless browser for SPA sites (requires Chrome)")
	ingestCmd.Flags().BoolVarP(&ingestVerbose, "verbose", "v", false, "Debug-level logging")

	_ = ingestCmd.MarkFlagRequired("url")

	rootCmd.AddCommand(ingestCmd)
}

func runIngest(_ *cobra.Command, _ []string) error {
	logger, err := newLogger(ingestVerbose)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	tax, err := loadTaxonomy(ingestTaxonomyPath)
	if err != nil {
		return err
	}

	ingestor := ingestion.New(extraction.New(tax), logger, ingestUseBrowser)
	job, err := ingestor.JobFromURL(context.Background(), ingestURL)
	if err != nil {
		return err
	}

	return printJSON(job)
}
