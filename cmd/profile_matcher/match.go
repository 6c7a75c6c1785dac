package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/profile-matcher/internal/config"
	"github.com/jonathan/profile-matcher/internal/costs"
	"github.com/jonathan/profile-matcher/internal/extraction"
	"github.com/jonathan/profile-matcher/internal/llm"
	"github.com/jonathan/profile-matcher/internal/matching"
)

var matchCmd = &cobra.Command{
	Use:   "match",
	Short: "Score a profile against one or many job postings",
	Long: `Scores a profile against a single job posting (--job) or ranks it against a
batch of postings (--jobs). Batch results are filtered by --min-score and
truncated to --top-n. With a Gemini API key the improvement suggestions on a
single detailed match are rewritten by the model.`,
	RunE: runMatch,
}

var (
	matchConfigPath   string
	matchProfilePath  string
	matchJobPath      string
	matchJobsPath     string
	matchTaxonomyPath string
	matchTopN         int
	matchMinScore     float64
	matchDetailed     bool
	matchAPIKey       string
	matchBudgetUSD    float64
	matchVerbose      bool
)

func init() {
	matchCmd.Flags().StringVar(&matchConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")
	matchCmd.Flags().StringVarP(&matchProfilePath, "profile", "p", "", "Path to a profile JSON file")
	matchCmd.Flags().StringVarP(&matchJobPath, "job", "j", "", "Path to a job posting JSON file (mutually exclusive with --jobs)")
	matchCmd.Flags().StringVar(&matchJobsPath, "jobs", "", "Path to a JSON array of job postings (mutually exclusive with --job)")
	matchCmd.Flags().StringVar(&matchTaxonomyPath, "taxonomy", "", "Path to a taxonomy JSON file")
	matchCmd.Flags().IntVar(&matchTopN, "top-n", 0, "Keep only the N best batch results (0 = all)")
	matchCmd.Flags().Float64Var(&matchMinScore, "min-score", 0, "Drop batch results scoring below this (0-100)")
	matchCmd.Flags().BoolVarP(&matchDetailed, "detailed", "d", false, "Include strengths, gaps, and suggestions")
	matchCmd.Flags().StringVar(&matchAPIKey, "api-key", "", "Gemini API key (optional, defaults to GEMINI_API_KEY env var)")
	matchCmd.Flags().Float64Var(&matchBudgetUSD, "budget", 0, "LLM spend budget in USD (0 = unlimited)")
	matchCmd.Flags().BoolVarP(&matchVerbose, "verbose", "v", false, "Debug-level logging")

	rootCmd.AddCommand(matchCmd)
}

func runMatch(_ *cobra.Command, _ []string) error {
	ctx := context.Background()

	var cfg config.Config
	if matchConfigPath != "" {
		loaded, err := config.LoadConfig(matchConfigPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if err := loaded.Validate(); err != nil {
			return err
		}
		cfg = *loaded
	}

	flags := config.Config{
		Taxonomy:  matchTaxonomyPath,
		Profile:   matchProfilePath,
		Jobs:      matchJobsPath,
		TopN:      matchTopN,
		MinScore:  matchMinScore,
		APIKey:    matchAPIKey,
		BudgetUSD: matchBudgetUSD,
	}
	merged := flags.MergeWithDefaults(cfg)

	if merged.Profile == "" {
		return fmt.Errorf("--profile is required")
	}
	if matchJobPath == "" && merged.Jobs == "" {
		return fmt.Errorf("either --job or --jobs must be provided")
	}
	if matchJobPath != "" && merged.Jobs != "" {
		return fmt.Errorf("--job and --jobs are mutually exclusive; provide only one")
	}

	logger, err := newLogger(matchVerbose || cfg.Verbose)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	tax, err := loadTaxonomy(merged.Taxonomy)
	if err != nil {
		return err
	}
	profile, err := loadProfile(merged.Profile)
	if err != nil {
		return err
	}

	extractor := extraction.New(tax)
	matcher := matching.New(tax, extractor, logger)

	if merged.Jobs != "" {
		jobs, err := loadJobs(merged.Jobs)
		if err != nil {
			return err
		}
		return printJSON(matcher.MatchProfileToJobs(ctx, profile, jobs, merged.TopN, merged.MinScore))
	}

	job, err := loadJob(matchJobPath)
	if err != nil {
		return err
	}
	score, err := matcher.MatchProfileToJob(profile, job, matchDetailed)
	if err != nil {
		return err
	}

	apiKey := merged.APIKey
	if apiKey == "" {
		apiKey = os.Getenv("GEMINI_API_KEY")
	}
	if matchDetailed && apiKey != "" {
		tracker := costs.NewTracker(merged.BudgetUSD, logger)
		client, err := llm.NewGeminiClient(ctx, llm.DefaultConfig(), apiKey, tracker)
		if err != nil {
			logger.Warn("LLM client unavailable, keeping templated suggestions")
		} else {
			defer func() { _ = client.Close() }()
			if err := llm.NewEnricher(client).EnrichSuggestions(ctx, profile, job, score); err != nil {
				logger.Warn("suggestion enrichment failed, keeping templated suggestions")
			}
		}
	}

	return printJSON(score)
}
