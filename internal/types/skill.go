// Package types provides type definitions for structured data used throughout the profile-matcher system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// SkillCategory classifies a skill into one of the taxonomy categories.
type SkillCategory string

// Skill categories recognized by the taxonomy.
const (
	CategoryTechnical       SkillCategory = "technical"
	CategorySoftSkills      SkillCategory = "soft_skills"
	CategoryDomainKnowledge SkillCategory = "domain_knowledge"
	CategoryTools           SkillCategory = "tools"
	CategoryLanguages       SkillCategory = "languages"
	CategoryCertifications  SkillCategory = "certifications"
	CategoryManagement      SkillCategory = "management"
	CategoryDesign          SkillCategory = "design"
	CategoryAnalytics       SkillCategory = "analytics"
	CategoryCommunication   SkillCategory = "communication"
)

// Proficiency levels on the 1-5 scale used across extraction and analysis.
const (
	ProficiencyBeginner     = 1
	ProficiencyFamiliar     = 2
	ProficiencyIntermediate = 3
	ProficiencyExperienced  = 4
	ProficiencyExpert       = 5
)

// Skill represents a single skill in its canonical (extractor-normalized) form.
// Name is never a raw mention; the extractor resolves synonyms and casing
// before a Skill is constructed.
type Skill struct {
	Name             string        `json:"name"`
	Category         SkillCategory `json:"category"`
	ProficiencyLevel int           `json:"proficiency_level,omitempty"` // 1-5, 0 = unknown
	YearsExperience  float64       `json:"years_experience,omitempty"`
	Endorsements     int           `json:"endorsements,omitempty"`
	Verified         bool          `json:"verified,omitempty"`
	LastUsed         string        `json:"last_used,omitempty"` // YYYY-MM
	Source           string        `json:"source,omitempty"`    // e.g. "extracted", "profile"
}

// Skill sources.
const (
	SkillSourceExtracted = "extracted"
	SkillSourceProfile   = "profile"
)
