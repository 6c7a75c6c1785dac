package types

import (
	"strings"
	"time"
)

// dateLayout is the YYYY-MM format used for all profile dates.
const dateLayout = "2006-01"

// Experience represents a single position held by a profile owner.
// EndDate empty or "present" means the position is current.
type Experience struct {
	Company        string   `json:"company"`
	Title          string   `json:"title"`
	Location       string   `json:"location,omitempty"`
	StartDate      string   `json:"start_date"`          // YYYY-MM
	EndDate        string   `json:"end_date,omitempty"`  // YYYY-MM, empty = current
	Description    string   `json:"description,omitempty"`
	EmploymentType string   `json:"employment_type,omitempty"`
	Industry       string   `json:"industry,omitempty"`
	SkillsUsed     []string `json:"skills_used,omitempty"`
	Achievements   []string `json:"achievements,omitempty"`
}

// IsCurrent reports whether the position has no end date.
func (e *Experience) IsCurrent() bool {
	end := strings.ToLower(strings.TrimSpace(e.EndDate))
	return end == "" || end == "present"
}

// DurationYears returns the length of the position in years, floored at 0.
// Open-ended positions are measured up to today. Unparseable dates yield 0.
func (e *Experience) DurationYears() float64 {
	return e.durationYearsAt(time.Now())
}

func (e *Experience) durationYearsAt(now time.Time) float64 {
	start, err := time.Parse(dateLayout, strings.TrimSpace(e.StartDate))
	if err != nil {
		return 0
	}

	end := now
	if !e.IsCurrent() {
		parsed, err := time.Parse(dateLayout, strings.TrimSpace(e.EndDate))
		if err != nil {
			return 0
		}
		end = parsed
	}

	months := (end.Year()-start.Year())*12 + int(end.Month()) - int(start.Month())
	if months < 0 {
		months = 0
	}
	return float64(months) / 12.0
}

// Education represents a single education entry.
type Education struct {
	School       string `json:"school"`
	Degree       string `json:"degree,omitempty"` // free text, e.g. "Master of Science"
	Field        string `json:"field,omitempty"`
	StartDate    string `json:"start_date,omitempty"` // YYYY-MM
	EndDate      string `json:"end_date,omitempty"`   // YYYY-MM or "present"
	Grade        string `json:"grade,omitempty"`
	Activities   string `json:"activities,omitempty"`
	Descriptions string `json:"description,omitempty"`
}

// Certification represents a professional certification held by a profile owner.
type Certification struct {
	Name          string `json:"name"`
	Authority     string `json:"authority,omitempty"`
	LicenseNumber string `json:"license_number,omitempty"`
	StartDate     string `json:"start_date,omitempty"` // YYYY-MM
	EndDate       string `json:"end_date,omitempty"`   // YYYY-MM, empty = does not expire
}

// IsActive reports whether the certification has not expired.
func (c *Certification) IsActive() bool {
	return c.isActiveAt(time.Now())
}

func (c *Certification) isActiveAt(now time.Time) bool {
	if strings.TrimSpace(c.EndDate) == "" {
		return true
	}
	end, err := time.Parse(dateLayout, strings.TrimSpace(c.EndDate))
	if err != nil {
		return true
	}
	// Valid through the end of the stated month.
	return end.AddDate(0, 1, 0).After(now)
}

// Profile aggregates everything known about a single person.
// Profiles are value objects: constructed once per analysis call and never
// mutated by the scoring core.
type Profile struct {
	ID             string          `json:"id,omitempty"`
	FullName       string          `json:"full_name,omitempty"`
	Headline       string          `json:"headline,omitempty"`
	Summary        string          `json:"summary,omitempty"`
	Location       string          `json:"location,omitempty"`
	Industry       string          `json:"industry,omitempty"`
	Email          string          `json:"email,omitempty"`
	ProfileURL     string          `json:"profile_url,omitempty"`
	Experiences    []Experience    `json:"experiences,omitempty"`
	Education      []Education     `json:"education,omitempty"`
	Skills         []Skill         `json:"skills,omitempty"`
	Certifications []Certification `json:"certifications,omitempty"`
}

// TotalExperienceYears sums the duration of every experience entry.
// Overlapping positions are double-counted, matching upstream profile data.
func (p *Profile) TotalExperienceYears() float64 {
	total := 0.0
	for i := range p.Experiences {
		total += p.Experiences[i].DurationYears()
	}
	return total
}

// CurrentPosition returns the first experience with no end date, or nil if
// none is current. When several positions are open-ended the first in slice
// order wins.
func (p *Profile) CurrentPosition() *Experience {
	for i := range p.Experiences {
		if p.Experiences[i].IsCurrent() {
			return &p.Experiences[i]
		}
	}
	return nil
}

// SkillNames returns the names of the profile's explicitly listed skills.
func (p *Profile) SkillNames() []string {
	names := make([]string, 0, len(p.Skills))
	for i := range p.Skills {
		names = append(names, p.Skills[i].Name)
	}
	return names
}

// HasActiveCertification reports whether any certification is unexpired.
func (p *Profile) HasActiveCertification() bool {
	for i := range p.Certifications {
		if p.Certifications[i].IsActive() {
			return true
		}
	}
	return false
}
