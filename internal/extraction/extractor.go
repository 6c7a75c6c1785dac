// Package extraction implements skill extraction from free text and profile
// records: mention detection against the taxonomy and synonym table,
// proficiency and years-of-experience estimation from textual cues, skill-gap
// computation, and role-based skill recommendations.
package extraction

import (
	"sort"
	"strings"

	"github.com/jonathan/profile-matcher/internal/taxonomy"
	"github.com/jonathan/profile-matcher/internal/types"
)

// DefaultMinConfidence is the default confidence cutoff for emitted skills.
const DefaultMinConfidence = 0.5

// Mention confidence levels by detection source.
const (
	exactMatchConfidence   = 0.9
	repeatMentionBonus     = 0.05
	synonymMatchConfidence = 0.7
	cueBaseConfidence      = 0.8
	maxConfidence          = 1.0
)

// Extractor finds skill mentions in free text using an injected taxonomy.
// An Extractor is stateless beyond its immutable tables and is safe for
// concurrent use.
type Extractor struct {
	tax *taxonomy.Taxonomy
}

// New creates an Extractor backed by the given taxonomy.
func New(tax *taxonomy.Taxonomy) *Extractor {
	return &Extractor{tax: tax}
}

// ExtractedSkill pairs a detected skill with the extractor's confidence in
// the detection.
type ExtractedSkill struct {
	Skill      types.Skill
	Confidence float64
}

// ExtractSkills finds skills mentioned in the text and returns them with
// estimated proficiency and years of experience. Empty or whitespace-only
// text yields an empty result, never an error. Results are ordered by
// descending confidence, then by name.
func (e *Extractor) ExtractSkills(text string, minConfidence float64) []types.Skill {
	extracted := e.extract(text, minConfidence)
	skills := make([]types.Skill, 0, len(extracted))
	for _, es := range extracted {
		skills = append(skills, es.Skill)
	}
	return skills
}

// extract runs the full detection pipeline and keeps per-skill confidence.
func (e *Extractor) extract(text string, minConfidence float64) []ExtractedSkill {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	mentions := e.findMentions(text)
	if len(mentions) == 0 {
		return nil
	}

	sentences := splitSentences(text)

	results := make([]ExtractedSkill, 0, len(mentions))
	for name, confidence := range mentions {
		if confidence < minConfidence {
			continue
		}

		terms := e.searchTerms(name)
		proficiency := estimateProficiency(sentences, terms)
		years, hasYears := estimateYears(text, terms)
		if hasYears {
			// Explicit years override the keyword-based estimate.
			proficiency = proficiencyFromYears(years)
		}

		skill := types.Skill{
			Name:             name,
			Category:         e.tax.Category(name),
			ProficiencyLevel: proficiency,
			Source:           types.SkillSourceExtracted,
		}
		if hasYears {
			skill.YearsExperience = years
		}
		results = append(results, ExtractedSkill{Skill: skill, Confidence: confidence})
	}

	sort.SliceStable(results, func(i, j int) bool {
		if results[i].Confidence != results[j].Confidence {
			return results[i].Confidence > results[j].Confidence
		}
		return results[i].Skill.Name < results[j].Skill.Name
	})

	return results
}

// findMentions scans the text for taxonomy names, synonyms, and cue-pattern
// matches. It returns normalized skill names mapped to the maximum confidence
// observed across detection sources. Synonym hits are recorded under the
// canonical taxonomy name, not the literal synonym text.
func (e *Extractor) findMentions(text string) map[string]float64 {
	lower := strings.ToLower(text)
	mentions := make(map[string]float64)

	record := func(name string, confidence float64) {
		if confidence > maxConfidence {
			confidence = maxConfidence
		}
		if existing, ok := mentions[name]; !ok || confidence > existing {
			mentions[name] = confidence
		}
	}

	// Exact taxonomy-name hits: 0.9 plus a small bonus per repeat mention.
	for _, name := range e.tax.SkillNames() {
		count := strings.Count(lower, strings.ToLower(name))
		if count == 0 {
			continue
		}
		record(name, exactMatchConfidence+repeatMentionBonus*float64(count-1))
	}

	// Synonym hits resolve to the canonical name at lower confidence.
	e.tax.EachSynonym(func(synonym, canonical string) {
		if strings.Contains(lower, synonym) {
			record(canonical, synonymMatchConfidence)
		}
	})

	// Cue-pattern hits ("experienced in X", ...) at 0.8 plus a
	// pattern-specific boost.
	for _, cue := range cuePatterns {
		for _, match := range cue.re.FindAllStringSubmatch(text, -1) {
			candidate := e.normalizeCandidate(match[1])
			if candidate == "" {
				continue
			}
			record(candidate, cueBaseConfidence+cue.boost)
		}
	}

	return mentions
}

// normalizeCandidate turns a raw cue-pattern capture into a normalized skill
// name: whitespace collapsed, resolved to its canonical taxonomy form when
// known, title-cased otherwise. Multi-word captures are trimmed from the
// right until they hit a taxonomy entry; failing that, only the first word is
// kept to avoid emitting whole phrase tails as skills.
func (e *Extractor) normalizeCandidate(raw string) string {
	words := strings.Fields(raw)
	if len(words) == 0 {
		return ""
	}

	for end := len(words); end > 0; end-- {
		candidate := strings.Join(words[:end], " ")
		if entry, ok := e.tax.Lookup(candidate); ok {
			return entry.Canonical
		}
		// The capture class allows "." for names like "Node.js", so a
		// sentence-final capture keeps its period. The untrimmed form is
		// checked first to keep dotted taxonomy names intact.
		if trimmed := strings.TrimRight(candidate, trailingPunctuation); trimmed != candidate {
			if entry, ok := e.tax.Lookup(trimmed); ok {
				return entry.Canonical
			}
		}
	}

	word := strings.TrimRight(words[0], trailingPunctuation)
	if word == "" {
		return ""
	}
	return titleCase(word)
}

// trailingPunctuation is stripped from cue-pattern captures that don't
// resolve to a taxonomy entry as-is.
const trailingPunctuation = ".,;:!?"

// searchTerms returns every string that may stand for the skill in text: the
// canonical name plus all registered synonyms, lowercased.
func (e *Extractor) searchTerms(name string) []string {
	terms := []string{strings.ToLower(name)}
	for _, syn := range e.tax.SynonymsOf(name) {
		terms = append(terms, strings.ToLower(syn))
	}
	return terms
}

// titleCase capitalizes the first letter of each whitespace-separated word,
// leaving all-caps words (acronyms) untouched.
func titleCase(s string) string {
	words := strings.Fields(s)
	for i, word := range words {
		if word == strings.ToUpper(word) {
			continue
		}
		words[i] = strings.ToUpper(word[:1]) + strings.ToLower(word[1:])
	}
	return strings.Join(words, " ")
}
