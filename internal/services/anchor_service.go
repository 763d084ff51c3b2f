// Package services – AnchorService
//
// This file implements anchor selection: given a show that needs a matchup,
// pick the existing show that will produce the most useful comparison signal.
// The selector is purely advisory and read-only; a stale read costs at worst
// a slightly less informative pairing, never a correctness violation.
//
// Hard guarantees, independent of the heuristic weights:
//   - never returns the target itself
//   - never returns a show the user does not own
//   - returns "" (null) exactly when the pool, minus the target, is empty
//   - deterministic for identical inputs and seed: all randomness flows from
//     the explicit seed, never from ambient global state
//
// The heuristic prefers candidates the target has never met; among those it
// down-weights shows with no comparisons yet (unstable signal) and shows
// sampled far above the pool median (over-used anchors), with the exact
// multipliers exposed as configuration rather than baked-in constants.
package services

import (
	"context"
	"errors"
	"math/rand"
	"sort"

	"gorm.io/gorm"

	"github.com/encorely/go-rank-backend/internal/repo"
)

// Default heuristic weights, applied when the corresponding field is zero.
const (
	defaultUnratedWeight     = 0.25
	defaultOversampledWeight = 0.5
	defaultOversampleFactor  = 2.0
)

// AnchorService chooses comparison partners. All fields holding heuristic
// weights are multipliers in (0, 1]; lower means "avoid harder".
type AnchorService struct {
	// DB is the read-only database handle.
	DB *gorm.DB
	// UnratedWeight down-weights candidates with zero comparisons.
	UnratedWeight float64
	// OversampledWeight down-weights candidates whose comparison count
	// exceeds OversampleFactor times the pool median.
	OversampledWeight float64
	// OversampleFactor is the multiple of the median at which a candidate
	// counts as over-sampled.
	OversampleFactor float64
}

// Select picks the next comparison partner for targetID within the user's
// pool. It returns "" with a nil error when the pool (excluding the target)
// is empty — the transport layer renders that as null.
func (s *AnchorService) Select(ctx context.Context, userID, targetID string, seed int64) (string, error) {
	if _, err := repo.GetShow(ctx, s.DB, targetID, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrShowNotFound
		}
		return "", err
	}

	shows, err := repo.ListShows(ctx, s.DB, userID)
	if err != nil {
		return "", err
	}
	candidates := make([]string, 0, len(shows))
	for _, sh := range shows {
		if sh.ID != targetID {
			candidates = append(candidates, sh.ID)
		}
	}
	if len(candidates) == 0 {
		return "", nil
	}
	// Stable traversal order so the seeded pick is reproducible regardless
	// of how the listing happened to be sorted.
	sort.Strings(candidates)

	partners, err := repo.ListPartners(ctx, s.DB, userID, targetID)
	if err != nil {
		return "", err
	}
	ratings, err := repo.ListRatings(ctx, s.DB, userID)
	if err != nil {
		return "", err
	}
	counts := make(map[string]int, len(ratings))
	for _, r := range ratings {
		counts[r.ShowID] = r.Comparisons
	}

	rng := rand.New(rand.NewSource(seed))

	fresh := make([]string, 0, len(candidates))
	for _, id := range candidates {
		if _, met := partners[id]; !met {
			fresh = append(fresh, id)
		}
	}
	// Every candidate has already faced the target: fall back to a seeded
	// uniform choice over the full pool.
	if len(fresh) == 0 {
		return candidates[rng.Intn(len(candidates))], nil
	}

	median := medianCount(candidates, counts)
	best := make([]string, 0, len(fresh))
	bestWeight := -1.0
	for _, id := range fresh {
		w := s.weight(counts[id], median)
		switch {
		case w > bestWeight:
			bestWeight = w
			best = append(best[:0], id)
		case w == bestWeight:
			best = append(best, id)
		}
	}
	return best[rng.Intn(len(best))], nil
}

// weight scores one candidate's sampling health: 1.0 for a healthy middle
// ground, scaled down for never-compared and over-sampled shows.
func (s *AnchorService) weight(count int, median float64) float64 {
	w := 1.0
	switch {
	case count == 0:
		w *= s.unratedWeight()
	case median > 0 && float64(count) > s.oversampleFactor()*median:
		w *= s.oversampledWeight()
	}
	return w
}

// medianCount computes the median comparison count across the candidate
// pool. Shows without a rating row count as zero.
func medianCount(candidates []string, counts map[string]int) float64 {
	vals := make([]int, len(candidates))
	for i, id := range candidates {
		vals[i] = counts[id]
	}
	sort.Ints(vals)
	n := len(vals)
	if n == 0 {
		return 0
	}
	if n%2 == 1 {
		return float64(vals[n/2])
	}
	return float64(vals[n/2-1]+vals[n/2]) / 2.0
}

func (s *AnchorService) unratedWeight() float64 {
	if s.UnratedWeight > 0 {
		return s.UnratedWeight
	}
	return defaultUnratedWeight
}

func (s *AnchorService) oversampledWeight() float64 {
	if s.OversampledWeight > 0 {
		return s.OversampledWeight
	}
	return defaultOversampledWeight
}

func (s *AnchorService) oversampleFactor() float64 {
	if s.OversampleFactor > 0 {
		return s.OversampleFactor
	}
	return defaultOversampleFactor
}
