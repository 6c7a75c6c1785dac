package main

import (
	"encoding/json"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/jonathan/profile-matcher/internal/logging"
	"github.com/jonathan/profile-matcher/internal/taxonomy"
	"github.com/jonathan/profile-matcher/internal/types"
)

func newLogger(verbose bool) (*zap.Logger, error) {
	return logging.New(false, verbose)
}

func loadTaxonomy(path string) (*taxonomy.Taxonomy, error) {
	if path == "" {
		return taxonomy.Default(), nil
	}
	tax, err := taxonomy.LoadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load taxonomy: %w", err)
	}
	return tax, nil
}

func loadProfile(path string) (*types.Profile, error) {
	var profile types.Profile
	if err := readJSONFile(path, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

func loadProfiles(path string) ([]*types.Profile, error) {
	var profiles []*types.Profile
	if err := readJSONFile(path, &profiles); err != nil {
		return nil, err
	}
	return profiles, nil
}

func loadJob(path string) (*types.JobPosting, error) {
	var job types.JobPosting
	if err := readJSONFile(path, &job); err != nil {
		return nil, err
	}
	return &job, nil
}

func loadJobs(path string) ([]*types.JobPosting, error) {
	var jobs []*types.JobPosting
	if err := readJSONFile(path, &jobs); err != nil {
		return nil, err
	}
	return jobs, nil
}

func readJSONFile(path string, dst any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return nil
}

// printJSON writes indented JSON to stdout; every subcommand's output format.
func printJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}
	fmt.Println(string(data))
	return nil
}
