package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/profile-matcher/internal/extraction"
)

var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Recommend skills to learn for a target role",
	Long:  "Lists the target role's expected skills the candidate does not yet hold, skills adjacent to their dominant category first.",
	RunE:  runRecommend,
}

var (
	recommendProfilePath  string
	recommendSkills       []string
	recommendRole         string
	recommendTaxonomyPath string
)

func init() {
	recommendCmd.Flags().StringVarP(&recommendProfilePath, "profile", "p", "", "Path to a profile JSON file (mutually exclusive with --skills)")
	recommendCmd.Flags().StringSliceVar(&recommendSkills, "skills", nil, "Current skills as a comma-separated list")
	recommendCmd.Flags().StringVarP(&recommendRole, "role", "r", "", "Target role, e.g. \"backend engineer\" (required)")
	recommendCmd.Flags().StringVar(&recommendTaxonomyPath, "taxonomy", "", "Path to a taxonomy JSON file")

	_ = recommendCmd.MarkFlagRequired("role")

	rootCmd.AddCommand(recommendCmd)
}

func runRecommend(_ *cobra.Command, _ []string) error {
	if recommendProfilePath != "" && len(recommendSkills) > 0 {
		return fmt.Errorf("--profile and --skills are mutually exclusive; provide only one")
	}

	tax, err := loadTaxonomy(recommendTaxonomyPath)
	if err != nil {
		return err
	}
	extractor := extraction.New(tax)

	currentSkills := recommendSkills
	if recommendProfilePath != "" {
		profile, err := loadProfile(recommendProfilePath)
		if err != nil {
			return err
		}
		currentSkills = profile.SkillNames()
	}

	recommendations := extractor.SkillRecommendations(currentSkills, recommendRole)
	if recommendations == nil {
		return fmt.Errorf("unknown target role: %s", recommendRole)
	}

	return printJSON(map[string]any{
		"target_role":     recommendRole,
		"recommendations": recommendations,
	})
}
