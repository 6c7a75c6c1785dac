// Package main provides the entry point for the profile matcher CLI and
// HTTP API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "profile_matcher",
	Short: "Profile-to-job matching engine",
	Long:  "Profile Matcher scores professional profiles against job postings: deterministic skill extraction, weighted match scoring, standalone profile analysis, and skill recommendations, available as subcommands or a REST API.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
