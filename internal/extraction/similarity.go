package extraction

import "strings"

// SameSkill reports whether two skill names refer to the same skill:
// literally equal (case-insensitive) or resolving to the same canonical
// taxonomy name through the synonym table.
func (e *Extractor) SameSkill(a, b string) bool {
	la := strings.ToLower(strings.TrimSpace(a))
	lb := strings.ToLower(strings.TrimSpace(b))
	if la == "" || lb == "" {
		return false
	}
	if la == lb {
		return true
	}
	return strings.EqualFold(e.tax.Canonical(la), e.tax.Canonical(lb))
}
