package matching

import (
	"strings"

	"github.com/jonathan/profile-matcher/internal/types"
)

// degreeRanks maps degree keywords to ordinal ranks. The list is evaluated
// in order, highest rank first, so "Master of Science" ranks as master even
// though it also contains no lower keyword, and "PhD" is tried before
// "diploma"-class keywords.
var degreeRanks = []struct {
	keyword string
	rank    int
}{
	{"phd", 5},
	{"doctorate", 5},
	{"doctoral", 5},
	{"master", 4},
	{"mba", 4},
	{"bachelor", 3},
	{"associate", 2},
	{"certificate", 1},
	{"diploma", 1},
}

// degreeRank returns the ordinal rank for a degree string, 0 when no keyword
// matches.
func degreeRank(degree string) int {
	lower := strings.ToLower(degree)
	for _, dr := range degreeRanks {
		if strings.Contains(lower, dr.keyword) {
			return dr.rank
		}
	}
	return 0
}

// highestDegreeRank returns the best rank across a profile's education
// entries.
func highestDegreeRank(education []types.Education) int {
	best := 0
	for i := range education {
		if rank := degreeRank(education[i].Degree); rank > best {
			best = rank
		}
	}
	return best
}

// educationScore is 100 without a requirement, 0 when a requirement exists
// but the profile lists no education, 100 when the profile's best degree
// meets the requirement, 70 one rank below, and decays by 20 points per
// additional rank of shortfall from a base of 50.
func educationScore(profile *types.Profile, job *types.JobPosting) float64 {
	if strings.TrimSpace(job.RequiredEducation) == "" {
		return 100
	}
	if len(profile.Education) == 0 {
		return 0
	}

	required := degreeRank(job.RequiredEducation)
	held := highestDegreeRank(profile.Education)

	switch gap := required - held; {
	case gap <= 0:
		return 100
	case gap == 1:
		return 70
	default:
		score := 50 - 20*float64(gap)
		return clamp(score, 0, 100)
	}
}
