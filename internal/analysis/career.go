package analysis

import (
	"strings"

	"github.com/jonathan/profile-matcher/internal/types"
)

// seniorityRanks orders title keywords from junior to executive. A title's
// rank is the highest tier containing one of its keywords; titles with no
// recognized keyword carry no rank and are skipped by the progression check.
var seniorityRanks = [][]string{
	{"intern", "trainee"},
	{"junior"},
	{"associate"},
	{"senior"},
	{"staff", "lead"},
	{"principal", "manager"},
	{"director", "head of"},
	{"vice president", "vp"},
	{"chief", "president", "founder"},
}

// titleRank returns the seniority tier of a title, or -1 when no keyword
// matches.
func titleRank(title string) int {
	lower := strings.ToLower(title)
	for tier := len(seniorityRanks) - 1; tier >= 0; tier-- {
		for _, keyword := range seniorityRanks[tier] {
			if strings.Contains(lower, keyword) {
				return tier
			}
		}
	}
	return -1
}

// classifyProgression walks the experience history in chronological order
// (entries arrive most recent first) and compares the seniority ranks of
// recognizable titles: strictly non-decreasing with at least one step up is
// ascending, all equal is lateral, any step down is varied. Fewer than two
// ranked titles is unknown.
func classifyProgression(experiences []types.Experience) types.CareerProgression {
	ranks := make([]int, 0, len(experiences))
	for i := len(experiences) - 1; i >= 0; i-- {
		if rank := titleRank(experiences[i].Title); rank >= 0 {
			ranks = append(ranks, rank)
		}
	}
	if len(ranks) < 2 {
		return types.ProgressionUnknown
	}

	ascended := false
	for i := 1; i < len(ranks); i++ {
		switch {
		case ranks[i] < ranks[i-1]:
			return types.ProgressionVaried
		case ranks[i] > ranks[i-1]:
			ascended = true
		}
	}
	if ascended {
		return types.ProgressionAscending
	}
	return types.ProgressionLateral
}
