// Package services – RankService
//
// This file implements time-scoped rank and percentile queries. Ranking is a
// pure filter-then-sort over the current rows: scope the user's shows by
// occurrence time against an injectable clock, keep only shows that have a
// rating row (shows never compared are excluded, not defaulted to 1200), sort
// by score descending with id-ascending tie-break, and report the 1-based
// position. Nothing is cached or stored, so year rollovers and edited show
// dates are always reflected immediately.
package services

import (
	"context"
	"errors"
	"sort"
	"time"

	"gorm.io/gorm"

	"github.com/encorely/go-rank-backend/internal/domain"
	"github.com/encorely/go-rank-backend/internal/repo"
)

// Ranking scopes accepted by Compute. An empty scope means ScopeAllTime.
const (
	ScopeAllTime  = "all-time"
	ScopeThisYear = "this-year"
	ScopeLastYear = "last-year"
)

// defaultEstablishedAt is the comparison count at which a rating stops being
// provisional, when not configured.
const defaultEstablishedAt = 5

// Rank is the result of a scoped rank query.
type Rank struct {
	// Position is the 1-based rank within the scoped, rated set; 0 when the
	// show is absent from that set.
	Position int `json:"position"`
	// Total counts the rated shows in scope.
	Total int `json:"total"`
	// Percentile is (total-position+1)/total*100 for a ranked show, else 0.
	Percentile float64 `json:"percentile"`
	// State is the informal confidence classification of the show's rating.
	State string `json:"state"`
	// Scope echoes the normalized scope the query ran under.
	Scope string `json:"scope"`
}

// RankService computes display ranks. Pure read side; safe to call
// arbitrarily often.
type RankService struct {
	// DB is the read-only database handle.
	DB *gorm.DB
	// EstablishedAt is the comparison count for the "established" state;
	// zero means 5.
	EstablishedAt int
	// Now supplies the clock for scope boundaries. Nil means time.Now. Tests
	// pin it to keep year-scoped expectations stable.
	Now func() time.Time
}

// Compute returns the scoped rank of showID for userID. Unknown scopes yield
// ErrInvalidScope; a show that does not exist (or is not the caller's) yields
// ErrShowNotFound. A show outside the scoped rated set ranks as position 0
// with percentile 0 while Total still reflects the scoped set size.
func (s *RankService) Compute(ctx context.Context, userID, showID, scope string) (*Rank, error) {
	normalized, from, to, err := s.scopeBounds(scope)
	if err != nil {
		return nil, err
	}

	if _, err := repo.GetShow(ctx, s.DB, showID, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrShowNotFound
		}
		return nil, err
	}

	shows, err := repo.ListShowsInRange(ctx, s.DB, userID, from, to)
	if err != nil {
		return nil, err
	}
	ids := make([]string, len(shows))
	for i, sh := range shows {
		ids[i] = sh.ID
	}
	rated, err := repo.ListRatingsForShows(ctx, s.DB, userID, ids)
	if err != nil {
		return nil, err
	}

	// Descending score; deterministic tie-break by ascending show id so
	// repeated calls with unchanged data always produce the same order.
	sort.Slice(rated, func(i, j int) bool {
		if rated[i].Score != rated[j].Score {
			return rated[i].Score > rated[j].Score
		}
		return rated[i].ShowID < rated[j].ShowID
	})

	out := &Rank{Total: len(rated), Scope: normalized, State: domain.StateUnrated}
	for i, r := range rated {
		if r.ShowID == showID {
			out.Position = i + 1
			break
		}
	}
	if out.Position > 0 {
		out.Percentile = float64(out.Total-out.Position+1) / float64(out.Total) * 100.0
	}

	// Confidence state reflects the show's rating row regardless of scope.
	rating, err := repo.GetRating(ctx, s.DB, userID, showID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	out.State = rating.State(s.establishedAt())

	return out, nil
}

// scopeBounds translates a scope name into a normalized name and a half-open
// [from, to) window over PerformedAt. Zero times mean unbounded.
func (s *RankService) scopeBounds(scope string) (string, time.Time, time.Time, error) {
	now := time.Now().UTC()
	if s.Now != nil {
		now = s.Now().UTC()
	}
	switch scope {
	case "", ScopeAllTime:
		return ScopeAllTime, time.Time{}, time.Time{}, nil
	case ScopeThisYear:
		from := time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, time.UTC)
		return ScopeThisYear, from, from.AddDate(1, 0, 0), nil
	case ScopeLastYear:
		from := time.Date(now.Year()-1, time.January, 1, 0, 0, 0, 0, time.UTC)
		return ScopeLastYear, from, from.AddDate(1, 0, 0), nil
	default:
		return "", time.Time{}, time.Time{}, ErrInvalidScope
	}
}

func (s *RankService) establishedAt() int {
	if s.EstablishedAt > 0 {
		return s.EstablishedAt
	}
	return defaultEstablishedAt
}
