package main

import (
	"github.com/spf13/cobra"

	"github.com/jonathan/profile-matcher/internal/analysis"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze a profile independent of any job posting",
	Long:  "Produces a standalone profile assessment: completeness and quality sub-scores, a blended strength score, career progression, market competitiveness, and suggested next steps.",
	RunE:  runAnalyze,
}

var (
	analyzeProfilePath  string
	analyzeTaxonomyPath string
	analyzeVerbose      bool
)

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeProfilePath, "profile", "p", "", "Path to a profile JSON file (required)")
	analyzeCmd.Flags().StringVar(&analyzeTaxonomyPath, "taxonomy", "", "Path to a taxonomy JSON file")
	analyzeCmd.Flags().BoolVarP(&analyzeVerbose, "verbose", "v", false, "Debug-level logging")

	_ = analyzeCmd.MarkFlagRequired("profile")

	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(_ *cobra.Command, _ []string) error {
	logger, err := newLogger(analyzeVerbose)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	tax, err := loadTaxonomy(analyzeTaxonomyPath)
	if err != nil {
		return err
	}
	profile, err := loadProfile(analyzeProfilePath)
	if err != nil {
		return err
	}

	result, err := analysis.New(tax, logger).AnalyzeProfile(profile)
	if err != nil {
		return err
	}
	return printJSON(result)
}
