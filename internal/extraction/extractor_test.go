package extraction

import (
	"testing"

	"github.com/jonathan/profile-matcher/internal/taxonomy"
	"github.com/jonathan/profile-matcher/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestExtractor(t *testing.T) *Extractor {
	t.Helper()
	return New(taxonomy.Default())
}

func findSkill(skills []types.Skill, name string) *types.Skill {
	for i := range skills {
		if skills[i].Name == name {
			return &skills[i]
		}
	}
	return nil
}

func TestExtractSkills_EmptyText(t *testing.T) {
	e := newTestExtractor(t)

	assert.Empty(t, e.ExtractSkills("", DefaultMinConfidence))
	assert.Empty(t, e.ExtractSkills("   \n\t ", DefaultMinConfidence))
}

func TestExtractSkills_NoMentions(t *testing.T) {
	e := newTestExtractor(t)
	assert.Empty(t, e.ExtractSkills("I enjoy long walks on the beach.", DefaultMinConfidence))
}

func TestExtractSkills_ExactMention(t *testing.T) {
	e := newTestExtractor(t)

	skills := e.ExtractSkills("I write Python every day.", DefaultMinConfidence)
	python := findSkill(skills, "Python")
	require.NotNil(t, python)
	assert.Equal(t, types.CategoryTechnical, python.Category)
	assert.Equal(t, types.ProficiencyIntermediate, python.ProficiencyLevel)
	assert.Equal(t, types.SkillSourceExtracted, python.Source)
}

func TestExtractSkills_YearsPatternOverridesProficiency(t *testing.T) {
	e := newTestExtractor(t)

	skills := e.ExtractSkills("I have 5 years of experience with Python", DefaultMinConfidence)
	python := findSkill(skills, "Python")
	require.NotNil(t, python)
	assert.Equal(t, 5.0, python.YearsExperience)
	assert.Equal(t, types.ProficiencyExpert, python.ProficiencyLevel)
}

func TestExtractSkills_YearsAfterSkill(t *testing.T) {
	e := newTestExtractor(t)

	skills := e.ExtractSkills("Used Kubernetes in production for 3 years.", DefaultMinConfidence)
	k8s := findSkill(skills, "Kubernetes")
	require.NotNil(t, k8s)
	assert.Equal(t, 3.0, k8s.YearsExperience)
	assert.Equal(t, types.ProficiencyExperienced, k8s.ProficiencyLevel)
}

func TestExtractSkills_ProficiencyKeywordSameSentence(t *testing.T) {
	e := newTestExtractor(t)

	skills := e.ExtractSkills("I am an expert in Terraform. I also dabble in Figma.", DefaultMinConfidence)

	terraform := findSkill(skills, "Terraform")
	require.NotNil(t, terraform)
	assert.Equal(t, types.ProficiencyExpert, terraform.ProficiencyLevel)

	// The "expert" cue is confined to its own sentence.
	figma := findSkill(skills, "Figma")
	require.NotNil(t, figma)
	assert.Equal(t, types.ProficiencyIntermediate, figma.ProficiencyLevel)
}

func TestExtractSkills_SynonymEmitsCanonicalName(t *testing.T) {
	e := newTestExtractor(t)

	skills := e.ExtractSkills("Deployed workloads on Amazon Web Services.", DefaultMinConfidence)
	aws := findSkill(skills, "AWS")
	require.NotNil(t, aws)
	assert.Equal(t, types.CategoryTools, aws.Category)
	assert.Nil(t, findSkill(skills, "Amazon Web Services"))
}

func TestExtractSkills_MinConfidenceFiltersSynonymHits(t *testing.T) {
	e := newTestExtractor(t)

	// Synonym-only detection carries confidence 0.7.
	skills := e.ExtractSkills("Deployed workloads on Amazon Web Services.", 0.8)
	assert.Nil(t, findSkill(skills, "AWS"))

	skills = e.ExtractSkills("Deployed workloads on Amazon Web Services.", 0.7)
	assert.NotNil(t, findSkill(skills, "AWS"))
}

func TestExtractSkills_MaxConfidenceAcrossSources(t *testing.T) {
	e := newTestExtractor(t)

	// Both the canonical name and a synonym appear; the canonical-name
	// confidence (0.9) must win over the synonym confidence (0.7).
	extracted := e.extract("AWS, also known as Amazon Web Services.", DefaultMinConfidence)
	require.Len(t, extracted, 1)
	assert.Equal(t, "AWS", extracted[0].Skill.Name)
	assert.GreaterOrEqual(t, extracted[0].Confidence, 0.9)
}

func TestExtractSkills_RepeatMentionsBoostConfidence(t *testing.T) {
	e := newTestExtractor(t)

	once := e.extract("Python.", DefaultMinConfidence)
	thrice := e.extract("Python, python, and more Python.", DefaultMinConfidence)
	require.Len(t, once, 1)
	require.Len(t, thrice, 1)
	assert.InDelta(t, 0.9, once[0].Confidence, 0.001)
	assert.InDelta(t, 1.0, thrice[0].Confidence, 0.001)
}

func TestExtractSkills_CuePatternUnknownSkill(t *testing.T) {
	e := newTestExtractor(t)

	// Cue patterns can surface skills absent from the taxonomy; they default
	// to the soft_skills category.
	skills := e.ExtractSkills("I am skilled in juggling.", DefaultMinConfidence)
	juggling := findSkill(skills, "Juggling")
	require.NotNil(t, juggling)
	assert.Equal(t, types.CategorySoftSkills, juggling.Category)
}

func TestExtractSkills_CuePatternSentenceFinalPunctuation(t *testing.T) {
	e := newTestExtractor(t)

	// The capture class allows "." for dotted names, so a sentence-final
	// capture keeps its period; the emitted name must not.
	skills := e.ExtractSkills("Knowledge of origami.", DefaultMinConfidence)
	require.NotNil(t, findSkill(skills, "Origami"))
	assert.Nil(t, findSkill(skills, "Origami."))

	// Dotted taxonomy names survive the trim.
	skills = e.ExtractSkills("I am proficient in Node.js.", DefaultMinConfidence)
	require.NotNil(t, findSkill(skills, "Node.js"))
	assert.Nil(t, findSkill(skills, "Node.js."))
}

func TestExtractSkills_CuePatternResolvesTaxonomyPhrase(t *testing.T) {
	e := newTestExtractor(t)

	skills := e.ExtractSkills("Experienced in machine learning models.", DefaultMinConfidence)
	ml := findSkill(skills, "Machine Learning")
	require.NotNil(t, ml)
	assert.Equal(t, types.CategoryAnalytics, ml.Category)
}

func TestExtractSkills_OrderedByConfidenceThenName(t *testing.T) {
	e := newTestExtractor(t)

	extracted := e.extract("Python and Docker, plus some Figma via the Figma tutorials.", DefaultMinConfidence)
	require.GreaterOrEqual(t, len(extracted), 3)
	for i := 1; i < len(extracted); i++ {
		prev, cur := extracted[i-1], extracted[i]
		if prev.Confidence == cur.Confidence {
			assert.Less(t, prev.Skill.Name, cur.Skill.Name)
		} else {
			assert.Greater(t, prev.Confidence, cur.Confidence)
		}
	}
}

func TestExtractSkills_Deterministic(t *testing.T) {
	e := newTestExtractor(t)
	text := "Expert in Go, 4 years of Kubernetes, familiar with Terraform and AWS."

	first := e.ExtractSkills(text, DefaultMinConfidence)
	second := e.ExtractSkills(text, DefaultMinConfidence)
	assert.Equal(t, first, second)
}
