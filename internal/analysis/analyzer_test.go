package analysis

import (
	"strings"
	"testing"

	"github.com/jonathan/profile-matcher/internal/taxonomy"
	"github.com/jonathan/profile-matcher/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAnalyzer(t *testing.T) *Analyzer {
	t.Helper()
	return New(taxonomy.Default(), nil)
}

// richProfile is thorough on every axis the analyzer scores.
func richProfile() *types.Profile {
	return &types.Profile{
		ID:         "p-1",
		FullName:   "Jordan Reyes",
		Headline:   "Engineering Manager, Platform",
		Summary:    strings.Repeat("Building and running distributed platforms for a decade. ", 5),
		Location:   "Austin, TX",
		Industry:   "Software",
		Email:      "jordan@example.com",
		ProfileURL: "https://example.com/in/jordan",
		Skills: []types.Skill{
			{Name: "Python", ProficiencyLevel: 5, Endorsements: 30, Verified: true},
			{Name: "Go", ProficiencyLevel: 5, Endorsements: 25},
			{Name: "SQL", ProficiencyLevel: 4},
			{Name: "AWS", ProficiencyLevel: 4},
			{Name: "Kubernetes", ProficiencyLevel: 4},
			{Name: "Docker", ProficiencyLevel: 4},
			{Name: "Terraform", ProficiencyLevel: 4},
			{Name: "Leadership", ProficiencyLevel: 4},
			{Name: "Communication", ProficiencyLevel: 4},
			{Name: "Project Management", ProficiencyLevel: 4},
		},
		Experiences: []types.Experience{
			{
				Company: "Platform Co", Title: "Engineering Manager",
				StartDate: "2020-01",
				Description: "Run the platform org.", SkillsUsed: []string{"Go", "Kubernetes"},
			},
			{
				Company: "Data Co", Title: "Senior Software Engineer",
				StartDate: "2017-01", EndDate: "2020-01",
				Description: "Built ingestion pipelines.", SkillsUsed: []string{"Python", "SQL"},
			},
			{
				Company: "Startup", Title: "Software Engineer",
				StartDate: "2014-06", EndDate: "2017-01",
				Description: "Full-stack product work.",
			},
		},
		Education: []types.Education{
			{School: "UT Austin", Degree: "Master of Science", Field: "Computer Science"},
			{School: "UT Austin", Degree: "Bachelor of Science", Field: "Computer Science"},
		},
		Certifications: []types.Certification{
			{Name: "CKA", Authority: "CNCF"},
			{Name: "AWS Solutions Architect", Authority: "AWS"},
		},
	}
}

func TestAnalyzeProfile_NilProfile(t *testing.T) {
	a := newTestAnalyzer(t)
	_, err := a.AnalyzeProfile(nil)
	assert.Error(t, err)
}

func TestAnalyzeProfile_RichProfile(t *testing.T) {
	a := newTestAnalyzer(t)

	analysis, err := a.AnalyzeProfile(richProfile())
	require.NoError(t, err)

	assert.Equal(t, "p-1", analysis.ProfileID)
	assert.NotEqual(t, "00000000-0000-0000-0000-000000000000", analysis.ID.String())
	assert.Greater(t, analysis.ProfileStrengthScore, 90.0)
	assert.LessOrEqual(t, analysis.ProfileStrengthScore, 100.0)

	assert.Equal(t, 100.0, analysis.SubScores.Completeness)
	assert.Equal(t, 100.0, analysis.SubScores.ExperienceQuality)
	assert.Equal(t, 100.0, analysis.SubScores.SkillQuality)

	// 11+ years of history maps at least to lead.
	assert.GreaterOrEqual(t, analysis.ExperienceLevel.Index(), types.LevelLead.Index())
	assert.Equal(t, types.ProgressionAscending, analysis.CareerProgression)
	assert.Equal(t, types.CompetitivenessHigh, analysis.MarketCompetitiveness)
	assert.NotEmpty(t, analysis.SalaryRange)

	assert.Contains(t, analysis.Strengths, "Clear upward career trajectory")
	assert.Empty(t, analysis.Weaknesses)
}

func TestAnalyzeProfile_EmptyProfile(t *testing.T) {
	a := newTestAnalyzer(t)

	analysis, err := a.AnalyzeProfile(&types.Profile{})
	require.NoError(t, err)

	assert.Equal(t, 0.0, analysis.ProfileStrengthScore)
	assert.Equal(t, types.SubScores{}, analysis.SubScores)
	assert.Equal(t, types.LevelEntry, analysis.ExperienceLevel)
	assert.Equal(t, types.ProgressionUnknown, analysis.CareerProgression)
	assert.Equal(t, types.CompetitivenessDeveloping, analysis.MarketCompetitiveness)
	assert.Equal(t, "$60,000 - $80,000", analysis.SalaryRange)

	assert.Empty(t, analysis.Strengths)
	assert.Len(t, analysis.Weaknesses, 6)
	assert.NotEmpty(t, analysis.NextSteps)
}

func TestAnalyzeProfile_WeightInvariant(t *testing.T) {
	a := newTestAnalyzer(t)

	analysis, err := a.AnalyzeProfile(richProfile())
	require.NoError(t, err)

	sub := analysis.SubScores
	expected := 0.30*sub.Completeness + 0.25*sub.ExperienceQuality +
		0.20*sub.SkillQuality + 0.10*sub.Education +
		0.10*sub.Certifications + 0.05*sub.Engagement
	assert.InDelta(t, expected, analysis.ProfileStrengthScore, 1e-9)
}

func TestAnalyzeProfile_Deterministic(t *testing.T) {
	a := newTestAnalyzer(t)

	first, err := a.AnalyzeProfile(richProfile())
	require.NoError(t, err)
	second, err := a.AnalyzeProfile(richProfile())
	require.NoError(t, err)

	assert.Equal(t, first.ProfileStrengthScore, second.ProfileStrengthScore)
	assert.Equal(t, first.SubScores, second.SubScores)
	assert.Equal(t, first.MarketCompetitiveness, second.MarketCompetitiveness)
	assert.Equal(t, first.SalaryRange, second.SalaryRange)
}
