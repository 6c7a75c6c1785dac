package ingestion

import (
	"context"
	"regexp"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/jonathan/profile-matcher/internal/extraction"
	"github.com/jonathan/profile-matcher/internal/types"
)

// Ingestor builds JobPosting records from job-posting URLs.
type Ingestor struct {
	extractor  *extraction.Extractor
	logger     *zap.Logger
	useBrowser bool
}

// New creates an Ingestor. With useBrowser set, pages that yield too little
// text over plain HTTP are re-rendered in a headless browser.
func New(extractor *extraction.Extractor, logger *zap.Logger, useBrowser bool) *Ingestor {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Ingestor{extractor: extractor, logger: logger, useBrowser: useBrowser}
}

// JobFromURL fetches a posting page and derives a JobPosting from its text:
// required skills via the skill extractor, years and level via text
// heuristics. The posting's ID is the source URL.
func (i *Ingestor) JobFromURL(ctx context.Context, urlStr string) (*types.JobPosting, error) {
	html, err := fetchHTML(ctx, urlStr)
	if err != nil {
		return nil, err
	}

	text, title, err := extractJobText(html)
	if err != nil {
		return nil, err
	}
	i.logger.Debug("fetched job posting",
		zap.String("url", urlStr),
		zap.Int("text_chars", len(text)))

	if i.useBrowser && needsBrowser(text) {
		i.logger.Debug("content too short, rendering with browser", zap.String("url", urlStr))
		rendered, renderErr := renderWithBrowser(ctx, urlStr)
		if renderErr != nil {
			// Keep the HTTP content when the browser is unavailable.
			i.logger.Warn("browser rendering failed", zap.Error(renderErr))
		} else if renderedText, renderedTitle, exErr := extractJobText(rendered); exErr == nil {
			text, title = renderedText, renderedTitle
		}
	}

	return i.jobFromText(urlStr, title, text), nil
}

func (i *Ingestor) jobFromText(urlStr, title, text string) *types.JobPosting {
	job := &types.JobPosting{
		ID:          urlStr,
		Title:       title,
		Description: text,
	}

	for _, skill := range i.extractor.ExtractSkills(text, extraction.DefaultMinConfidence) {
		job.RequiredSkills = append(job.RequiredSkills, skill.Name)
	}
	job.RequiredExperienceYears = requiredYears(text)
	job.ExperienceLevel = levelFromTitle(title)

	return job
}

var requiredYearsPattern = regexp.MustCompile(`(?i)(\d+)\s*\+?\s*years?`)

// requiredYears returns the first stated years figure, 0 when none appears.
func requiredYears(text string) float64 {
	match := requiredYearsPattern.FindStringSubmatch(text)
	if match == nil {
		return 0
	}
	years, err := strconv.ParseFloat(match[1], 64)
	if err != nil {
		return 0
	}
	return years
}

// titleLevels maps title keywords to experience levels, most senior first.
var titleLevels = []struct {
	keyword string
	level   types.ExperienceLevel
}{
	{"principal", types.LevelPrincipal},
	{"staff", types.LevelPrincipal},
	{"lead", types.LevelLead},
	{"senior", types.LevelSenior},
	{"sr.", types.LevelSenior},
	{"junior", types.LevelAssociate},
	{"jr.", types.LevelAssociate},
	{"intern", types.LevelEntry},
	{"graduate", types.LevelEntry},
}

// levelFromTitle guesses the posting's level from its title; empty when no
// keyword appears, which the matcher treats as unstated.
func levelFromTitle(title string) types.ExperienceLevel {
	lower := strings.ToLower(title)
	for _, tl := range titleLevels {
		if strings.Contains(lower, tl.keyword) {
			return tl.level
		}
	}
	return ""
}
