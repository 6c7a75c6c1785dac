package types

import "strings"

// ExperienceLevel is the 7-point ordinal seniority scale shared by job
// postings and profile analysis.
type ExperienceLevel string

// Experience levels in ascending seniority order.
const (
	LevelEntry     ExperienceLevel = "entry"
	LevelAssociate ExperienceLevel = "associate"
	LevelMid       ExperienceLevel = "mid"
	LevelSenior    ExperienceLevel = "senior"
	LevelLead      ExperienceLevel = "lead"
	LevelPrincipal ExperienceLevel = "principal"
	LevelExecutive ExperienceLevel = "executive"
)

// levelOrder maps each level to its ordinal index on the 7-point scale.
var levelOrder = map[ExperienceLevel]int{
	LevelEntry:     0,
	LevelAssociate: 1,
	LevelMid:       2,
	LevelSenior:    3,
	LevelLead:      4,
	LevelPrincipal: 5,
	LevelExecutive: 6,
}

// Index returns the ordinal position of the level, or -1 if unknown.
func (l ExperienceLevel) Index() int {
	idx, ok := levelOrder[ExperienceLevel(strings.ToLower(string(l)))]
	if !ok {
		return -1
	}
	return idx
}

// LevelFromYears maps total years of experience to an ExperienceLevel using
// fixed breakpoints.
func LevelFromYears(years float64) ExperienceLevel {
	switch {
	case years < 1:
		return LevelEntry
	case years < 2:
		return LevelAssociate
	case years < 5:
		return LevelMid
	case years < 8:
		return LevelSenior
	case years < 12:
		return LevelLead
	case years < 15:
		return LevelPrincipal
	default:
		return LevelExecutive
	}
}

// JobPosting represents a job opening to match profiles against.
// RequiredExperienceYears of 0 means the posting does not state a requirement.
type JobPosting struct {
	ID                      string          `json:"id,omitempty"`
	Title                   string          `json:"title,omitempty"`
	Company                 string          `json:"company,omitempty"`
	Description             string          `json:"description,omitempty"`
	RequiredSkills          []string        `json:"required_skills,omitempty"`
	PreferredSkills         []string        `json:"preferred_skills,omitempty"`
	RequiredExperienceYears float64         `json:"required_experience_years,omitempty"`
	RequiredEducation       string          `json:"required_education,omitempty"`
	ExperienceLevel         ExperienceLevel `json:"experience_level,omitempty"`
	Industry                string          `json:"industry,omitempty"`
	Location                string          `json:"location,omitempty"`
}
