package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/profile-matcher/internal/extraction"
	"github.com/jonathan/profile-matcher/internal/types"
)

var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Extract skills from free text",
	Long:  "Extract canonical skills with confidence and proficiency signals from free text, either given inline or read from a file.",
	RunE:  runExtract,
}

var (
	extractText          string
	extractFile          string
	extractProfilePath   string
	extractTaxonomyPath  string
	extractMinConfidence float64
)

func init() {
	extractCmd.Flags().StringVarP(&extractText, "text", "t", "", "Text to extract skills from")
	extractCmd.Flags().StringVarP(&extractFile, "file", "f", "", "Path to a text file to extract skills from")
	extractCmd.Flags().StringVarP(&extractProfilePath, "profile", "p", "", "Path to a profile JSON file to extract skills from")
	extractCmd.Flags().StringVar(&extractTaxonomyPath, "taxonomy", "", "Path to a taxonomy JSON file (built-in tables when omitted)")
	extractCmd.Flags().Float64Var(&extractMinConfidence, "min-confidence", extraction.DefaultMinConfidence, "Confidence floor for emitted skills (0.0-1.0)")

	rootCmd.AddCommand(extractCmd)
}

func runExtract(_ *cobra.Command, _ []string) error {
	sources := 0
	for _, set := range []bool{extractText != "", extractFile != "", extractProfilePath != ""} {
		if set {
			sources++
		}
	}
	if sources != 1 {
		return fmt.Errorf("exactly one of --text, --file, or --profile must be provided")
	}

	tax, err := loadTaxonomy(extractTaxonomyPath)
	if err != nil {
		return err
	}
	extractor := extraction.New(tax)

	var skills []types.Skill
	switch {
	case extractProfilePath != "":
		profile, err := loadProfile(extractProfilePath)
		if err != nil {
			return err
		}
		skills = extractor.ExtractFromProfile(profile)
	case extractFile != "":
		data, err := os.ReadFile(extractFile)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", extractFile, err)
		}
		skills = extractor.ExtractSkills(string(data), extractMinConfidence)
	default:
		skills = extractor.ExtractSkills(extractText, extractMinConfidence)
	}

	return printJSON(skills)
}
