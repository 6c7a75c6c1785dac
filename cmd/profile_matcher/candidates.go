package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/profile-matcher/internal/extraction"
	"github.com/jonathan/profile-matcher/internal/matching"
)

var candidatesCmd = &cobra.Command{
	Use:   "candidates",
	Short: "Rank candidate profiles against a job posting",
	RunE:  runCandidates,
}

var (
	candidatesProfilesPath string
	candidatesJobPath      string
	candidatesTaxonomyPath string
	candidatesTopN         int
	candidatesMinScore     float64
	candidatesVerbose      bool
)

func init() {
	candidatesCmd.Flags().StringVar(&candidatesProfilesPath, "profiles", "", "Path to a JSON array of profiles (required)")
	candidatesCmd.Flags().StringVarP(&candidatesJobPath, "job", "j", "", "Path to a job posting JSON file (required)")
	candidatesCmd.Flags().StringVar(&candidatesTaxonomyPath, "taxonomy", "", "Path to a taxonomy JSON file")
	candidatesCmd.Flags().IntVar(&candidatesTopN, "top-n", 0, "Keep only the N best candidates (0 = all)")
	candidatesCmd.Flags().Float64Var(&candidatesMinScore, "min-score", 0, "Drop candidates scoring below this (0-100)")
	candidatesCmd.Flags().BoolVarP(&candidatesVerbose, "verbose", "v", false, "Debug-level logging")

	_ = candidatesCmd.MarkFlagRequired("profiles")
	_ = candidatesCmd.MarkFlagRequired("job")

	rootCmd.AddCommand(candidatesCmd)
}

func runCandidates(_ *cobra.Command, _ []string) error {
	logger, err := newLogger(candidatesVerbose)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	tax, err := loadTaxonomy(candidatesTaxonomyPath)
	if err != nil {
		return err
	}
	profiles, err := loadProfiles(candidatesProfilesPath)
	if err != nil {
		return err
	}
	if len(profiles) == 0 {
		return fmt.Errorf("no profiles in %s", candidatesProfilesPath)
	}
	job, err := loadJob(candidatesJobPath)
	if err != nil {
		return err
	}

	extractor := extraction.New(tax)
	matcher := matching.New(tax, extractor, logger)

	return printJSON(matcher.FindBestCandidates(context.Background(), profiles, job, candidatesTopN, candidatesMinScore))
}
