package matching

import (
	"context"
	"runtime"
	"sort"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/profile-matcher/internal/types"
)

// MatchProfileToJobs scores one profile against every job independently,
// drops results below minScore, stable-sorts the remainder by descending
// overall score, and truncates to topN (topN <= 0 keeps everything). A
// failure to score one job is logged and skipped; it never aborts the batch.
// Pairings are scored concurrently since each one is pure.
func (m *Matcher) MatchProfileToJobs(ctx context.Context, profile *types.Profile, jobs []*types.JobPosting, topN int, minScore float64) []*types.MatchScore {
	scores := make([]*types.MatchScore, len(jobs))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, job := range jobs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return nil
			}
			score, err := m.MatchProfileToJob(profile, job, true)
			if err != nil {
				m.logger.Warn("skipping job in batch match",
					zap.Int("index", i),
					zap.Error(err))
				return nil
			}
			scores[i] = score
			return nil
		})
	}
	_ = g.Wait() // workers never return errors; failures are skipped

	return filterAndRank(scores, topN, minScore)
}

// FindBestCandidates scores every profile against one job and returns the
// top candidates with their scores, using the same filter, sort, and
// truncation rules as MatchProfileToJobs.
func (m *Matcher) FindBestCandidates(ctx context.Context, profiles []*types.Profile, job *types.JobPosting, topN int, minScore float64) []types.CandidateMatch {
	scores := make([]*types.MatchScore, len(profiles))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, profile := range profiles {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return nil
			}
			score, err := m.MatchProfileToJob(profile, job, true)
			if err != nil {
				m.logger.Warn("skipping candidate in batch match",
					zap.Int("index", i),
					zap.Error(err))
				return nil
			}
			scores[i] = score
			return nil
		})
	}
	_ = g.Wait()

	matches := make([]types.CandidateMatch, 0, len(profiles))
	for i, score := range scores {
		if score == nil || score.OverallScore < minScore {
			continue
		}
		matches = append(matches, types.CandidateMatch{Profile: profiles[i], Score: score})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score.OverallScore > matches[j].Score.OverallScore
	})

	if topN > 0 && len(matches) > topN {
		matches = matches[:topN]
	}
	return matches
}

func filterAndRank(scores []*types.MatchScore, topN int, minScore float64) []*types.MatchScore {
	kept := make([]*types.MatchScore, 0, len(scores))
	for _, score := range scores {
		if score != nil && score.OverallScore >= minScore {
			kept = append(kept, score)
		}
	}

	sort.SliceStable(kept, func(i, j int) bool {
		return kept[i].OverallScore > kept[j].OverallScore
	})

	if topN > 0 && len(kept) > topN {
		kept = kept[:topN]
	}
	return kept
}
