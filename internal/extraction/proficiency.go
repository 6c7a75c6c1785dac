package extraction

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/jonathan/profile-matcher/internal/types"
)

// cuePattern is a regex cue ("experienced in X") with a pattern-specific
// confidence boost on top of the 0.8 base.
type cuePattern struct {
	re    *regexp.Regexp
	boost float64
}

// skillCapture matches up to three skill-name words after a cue phrase.
const skillCapture = `([A-Za-z][A-Za-z0-9+#./-]*(?:[ ][A-Za-z][A-Za-z0-9+#./-]*){0,2})`

var cuePatterns = []cuePattern{
	{re: regexp.MustCompile(`(?i)\bexpert (?:in|with) ` + skillCapture), boost: 0.15},
	{re: regexp.MustCompile(`(?i)\bexperienced (?:in|with) ` + skillCapture), boost: 0.10},
	{re: regexp.MustCompile(`(?i)\bproficient (?:in|with) ` + skillCapture), boost: 0.10},
	{re: regexp.MustCompile(`(?i)\bskilled (?:in|at) ` + skillCapture), boost: 0.10},
	{re: regexp.MustCompile(`(?i)\bknowledge of ` + skillCapture), boost: 0.05},
}

// proficiencyKeywords maps textual cues to proficiency levels, scanned in
// order so stronger claims win when a sentence contains several.
var proficiencyKeywords = []struct {
	keyword string
	level   int
}{
	{"expert", types.ProficiencyExpert},
	{"advanced", types.ProficiencyExpert},
	{"proficient", types.ProficiencyExperienced},
	{"experienced", types.ProficiencyExperienced},
	{"intermediate", types.ProficiencyIntermediate},
	{"familiar", types.ProficiencyFamiliar},
	{"basic", types.ProficiencyFamiliar},
	{"beginner", types.ProficiencyBeginner},
	{"novice", types.ProficiencyBeginner},
}

var sentenceSplit = regexp.MustCompile(`[.!?\n]+`)

// splitSentences breaks text into lowercased sentences for proximity checks.
func splitSentences(text string) []string {
	parts := sentenceSplit.Split(strings.ToLower(text), -1)
	sentences := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part != "" {
			sentences = append(sentences, part)
		}
	}
	return sentences
}

// estimateProficiency returns the proficiency level suggested by keyword
// cues appearing in the same sentence as any of the skill's search terms,
// defaulting to intermediate when no cue is found.
func estimateProficiency(sentences []string, terms []string) int {
	for _, sentence := range sentences {
		if !containsAny(sentence, terms) {
			continue
		}
		for _, kw := range proficiencyKeywords {
			if strings.Contains(sentence, kw.keyword) {
				return kw.level
			}
		}
	}
	return types.ProficiencyIntermediate
}

// yearsBefore matches "<N> years ... <skill>"; yearsAfter matches
// "<skill> ... <N> years". Both stay within a single sentence.
const (
	yearsNumber = `(\d+(?:\.\d+)?)\s*\+?\s*years?`
	proximity   = `[^.!?\n]{0,60}?`
)

// estimateYears looks for an explicit years-of-experience statement near any
// of the skill's search terms.
func estimateYears(text string, terms []string) (float64, bool) {
	for _, term := range terms {
		quoted := regexp.QuoteMeta(term)

		before := regexp.MustCompile(`(?i)` + yearsNumber + proximity + `\b` + quoted + `\b`)
		if m := before.FindStringSubmatch(text); m != nil {
			if years, err := strconv.ParseFloat(m[1], 64); err == nil {
				return years, true
			}
		}

		after := regexp.MustCompile(`(?i)\b` + quoted + `\b` + proximity + yearsNumber)
		if m := after.FindStringSubmatch(text); m != nil {
			if years, err := strconv.ParseFloat(m[1], 64); err == nil {
				return years, true
			}
		}
	}
	return 0, false
}

// proficiencyFromYears re-derives proficiency from explicit years of
// experience.
func proficiencyFromYears(years float64) int {
	switch {
	case years >= 5:
		return types.ProficiencyExpert
	case years >= 3:
		return types.ProficiencyExperienced
	case years >= 1:
		return types.ProficiencyIntermediate
	default:
		return types.ProficiencyFamiliar
	}
}

// containsAny reports whether s contains any of the lowercased terms.
func containsAny(s string, terms []string) bool {
	for _, term := range terms {
		if strings.Contains(s, term) {
			return true
		}
	}
	return false
}
