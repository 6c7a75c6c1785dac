package matching

import (
	"testing"

	"github.com/jonathan/profile-matcher/internal/extraction"
	"github.com/jonathan/profile-matcher/internal/taxonomy"
	"github.com/jonathan/profile-matcher/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestMatcher(t *testing.T) *Matcher {
	t.Helper()
	tax := taxonomy.Default()
	return New(tax, extraction.New(tax), nil)
}

func skillsNamed(names ...string) []types.Skill {
	skills := make([]types.Skill, 0, len(names))
	for _, name := range names {
		skills = append(skills, types.Skill{Name: name})
	}
	return skills
}

func TestMatchProfileToJob_NilInputs(t *testing.T) {
	m := newTestMatcher(t)

	_, err := m.MatchProfileToJob(nil, &types.JobPosting{}, false)
	assert.Error(t, err)

	_, err = m.MatchProfileToJob(&types.Profile{}, nil, false)
	assert.Error(t, err)
}

func TestMatchProfileToJob_WeightInvariant(t *testing.T) {
	m := newTestMatcher(t)

	profile := &types.Profile{
		Location: "Berlin, Germany",
		Skills:   skillsNamed("Python", "SQL", "Docker"),
		Experiences: []types.Experience{
			{Company: "Acme", Title: "Engineer", StartDate: "2019-01", EndDate: "2023-01", Industry: "Software"},
		},
		Education: []types.Education{{School: "TU", Degree: "Bachelor of Science"}},
	}
	job := &types.JobPosting{
		RequiredSkills:          []string{"Python", "Go"},
		PreferredSkills:         []string{"Docker"},
		RequiredExperienceYears: 3,
		RequiredEducation:       "Bachelor",
		ExperienceLevel:         types.LevelMid,
		Industry:                "Software",
		Location:                "Munich, Germany",
	}

	score, err := m.MatchProfileToJob(profile, job, true)
	require.NoError(t, err)

	expected := types.SkillsWeight*score.SkillsScore +
		types.ExperienceWeight*score.ExperienceScore +
		types.EducationWeight*score.EducationScore +
		types.LocationWeight*score.LocationScore
	assert.InDelta(t, expected, score.OverallScore, 1e-9)

	for _, component := range []float64{score.SkillsScore, score.ExperienceScore, score.EducationScore, score.LocationScore} {
		assert.GreaterOrEqual(t, component, 0.0)
		assert.LessOrEqual(t, component, 100.0)
	}
}

func TestMatchProfileToJob_Idempotent(t *testing.T) {
	m := newTestMatcher(t)

	profile := &types.Profile{
		Skills: skillsNamed("Python", "AWS"),
		Experiences: []types.Experience{
			{Company: "Acme", StartDate: "2018-01", EndDate: "2024-01"},
		},
	}
	job := &types.JobPosting{RequiredSkills: []string{"Python"}, RequiredExperienceYears: 2}

	first, err := m.MatchProfileToJob(profile, job, true)
	require.NoError(t, err)
	second, err := m.MatchProfileToJob(profile, job, true)
	require.NoError(t, err)

	assert.Equal(t, first.OverallScore, second.OverallScore)
	assert.Equal(t, first.SkillsScore, second.SkillsScore)
	assert.Equal(t, first.ExperienceScore, second.ExperienceScore)
	assert.Equal(t, first.EducationScore, second.EducationScore)
	assert.Equal(t, first.LocationScore, second.LocationScore)
	assert.Equal(t, first.Confidence, second.Confidence)
	assert.Equal(t, first.MatchedSkills, second.MatchedSkills)
}

func TestMatchProfileToJob_VacuousSkillRequirements(t *testing.T) {
	m := newTestMatcher(t)

	profile := &types.Profile{Skills: skillsNamed("Knitting")}
	job := &types.JobPosting{}

	score, err := m.MatchProfileToJob(profile, job, false)
	require.NoError(t, err)
	// 0.7*100 + 0.3*100 + bonus for one extra skill, clamped at 100.
	assert.Equal(t, 100.0, score.SkillsScore)
}

func TestMatchProfileToJob_SkillsScoreConcreteScenario(t *testing.T) {
	m := newTestMatcher(t)

	profile := &types.Profile{Skills: skillsNamed("Python", "SQL")}
	job := &types.JobPosting{RequiredSkills: []string{"Python", "AWS"}}

	score, err := m.MatchProfileToJob(profile, job, true)
	require.NoError(t, err)

	// required 1/2 -> 50, preferred vacuous -> 100, plus 2 for the extra
	// skill SQL: 0.7*50 + 0.3*100 + 2 = 67.
	assert.InDelta(t, 67.0, score.SkillsScore, 1e-9)
	assert.Equal(t, []string{"Python"}, score.MatchedSkills)
	assert.Equal(t, []string{"AWS"}, score.MissingSkills)
}

func TestMatchProfileToJob_SkillMonotonicity(t *testing.T) {
	m := newTestMatcher(t)

	job := &types.JobPosting{RequiredSkills: []string{"Python", "AWS", "Go"}}

	base := &types.Profile{Skills: skillsNamed("Python")}
	improved := &types.Profile{Skills: skillsNamed("Python", "AWS")}

	baseScore, err := m.MatchProfileToJob(base, job, false)
	require.NoError(t, err)
	improvedScore, err := m.MatchProfileToJob(improved, job, false)
	require.NoError(t, err)

	assert.GreaterOrEqual(t, improvedScore.SkillsScore, baseScore.SkillsScore)
}

func TestMatchProfileToJob_SynonymResolvesRequirement(t *testing.T) {
	m := newTestMatcher(t)

	profile := &types.Profile{Skills: skillsNamed("Amazon Web Services")}
	job := &types.JobPosting{RequiredSkills: []string{"AWS"}}

	score, err := m.MatchProfileToJob(profile, job, false)
	require.NoError(t, err)
	assert.Equal(t, []string{"AWS"}, score.MatchedSkills)
	assert.Empty(t, score.MissingSkills)
}

func TestMatchProfileToJob_ExperienceConcreteScenario(t *testing.T) {
	m := newTestMatcher(t)

	// 6 years total maps to senior (<8); job declares senior -> level 100.
	// 6 <= 2*3 -> years 100. Empty job industry is vacuous -> 100.
	profile := &types.Profile{
		Experiences: []types.Experience{
			{Company: "Acme", StartDate: "2018-01", EndDate: "2024-01"},
		},
	}
	job := &types.JobPosting{
		RequiredExperienceYears: 3,
		ExperienceLevel:         types.LevelSenior,
	}

	score, err := m.MatchProfileToJob(profile, job, false)
	require.NoError(t, err)
	assert.InDelta(t, 100.0, score.ExperienceScore, 1e-9)
}

func TestMatchProfileToJob_IndustryMismatchScoresFifty(t *testing.T) {
	m := newTestMatcher(t)

	profile := &types.Profile{
		Experiences: []types.Experience{
			{Company: "Acme", StartDate: "2018-01", EndDate: "2024-01", Industry: "Fintech"},
		},
	}
	job := &types.JobPosting{
		RequiredExperienceYears: 3,
		ExperienceLevel:         types.LevelSenior,
		Industry:                "Healthcare",
	}

	score, err := m.MatchProfileToJob(profile, job, false)
	require.NoError(t, err)
	// 0.5*100 + 0.3*100 + 0.2*50 = 90.
	assert.InDelta(t, 90.0, score.ExperienceScore, 1e-9)
}

func TestMatchProfileToJob_ConfidenceDiscounts(t *testing.T) {
	m := newTestMatcher(t)

	complete := &types.Profile{
		Summary:     "Seasoned engineer.",
		Skills:      skillsNamed("Python"),
		Experiences: []types.Experience{{Company: "Acme", StartDate: "2020-01"}},
		Education:   []types.Education{{School: "MIT", Degree: "Bachelor"}},
	}
	fullJob := &types.JobPosting{RequiredSkills: []string{"Python"}, RequiredExperienceYears: 2}

	score, err := m.MatchProfileToJob(complete, fullJob, true)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, score.Confidence, 1e-9)

	empty := &types.Profile{}
	bareJob := &types.JobPosting{}
	score, err = m.MatchProfileToJob(empty, bareJob, true)
	require.NoError(t, err)
	// 0.7 * 0.8 * 0.9 * 0.95 * 0.8 * 0.9
	assert.InDelta(t, 0.7*0.8*0.9*0.95*0.8*0.9, score.Confidence, 1e-9)
}

func TestMatchProfileToJob_DetailedTexts(t *testing.T) {
	m := newTestMatcher(t)

	profile := &types.Profile{
		Skills: skillsNamed("Python"),
		Experiences: []types.Experience{
			{Company: "Acme", Title: "Engineer", StartDate: "2019-01", SkillsUsed: []string{"Python"}},
		},
		Certifications: []types.Certification{{Name: "AWS SA"}},
	}
	job := &types.JobPosting{
		RequiredSkills: []string{"Python", "Go", "Kubernetes", "Terraform", "Rust"},
	}

	score, err := m.MatchProfileToJob(profile, job, true)
	require.NoError(t, err)

	assert.Contains(t, score.Strengths, "Holds active professional certifications")
	assert.Contains(t, score.Strengths, "Current role exercises skills this job requires")

	// 1/5 required -> skills score well under the gap cut.
	require.NotEmpty(t, score.Gaps)
	assert.Contains(t, score.Gaps[0], "Significant gaps")
	// Missing-skill list is capped at three.
	assert.Contains(t, score.Gaps[len(score.Gaps)-1], "Missing required skills: Go, Kubernetes, Terraform")

	assert.NotEmpty(t, score.Suggestions)
}

func TestMatchProfileToJob_NonDetailedOmitsTexts(t *testing.T) {
	m := newTestMatcher(t)

	score, err := m.MatchProfileToJob(&types.Profile{}, &types.JobPosting{}, false)
	require.NoError(t, err)
	assert.Empty(t, score.Strengths)
	assert.Empty(t, score.Gaps)
	assert.Empty(t, score.Suggestions)
	assert.Zero(t, score.Confidence)
}
