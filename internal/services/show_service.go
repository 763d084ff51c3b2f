// Package services – ShowService
//
// This file implements the read-side listing that feeds the app's comparison
// picker: the caller's shows, newest first, overlaid with their current
// rating state. Shows that were never compared carry no score (the UI frames
// them as "unrated" rather than pretending they sit at 1200).
package services

import (
	"context"

	"gorm.io/gorm"

	"github.com/encorely/go-rank-backend/internal/domain"
	"github.com/encorely/go-rank-backend/internal/repo"
)

// ShowWithRating is a show joined with its (optional) rating overlay.
type ShowWithRating struct {
	domain.Show
	// Score is nil for shows that never participated in a comparison.
	Score *float64 `json:"score,omitempty"`
	// Comparisons counts the show's ledger participations (0 when unrated).
	Comparisons int `json:"comparisons"`
	// State is the informal confidence classification.
	State string `json:"state"`
}

// ShowService lists shows with rating overlays. Pure read side.
type ShowService struct {
	// DB is the read-only database handle.
	DB *gorm.DB
	// EstablishedAt mirrors RankService's threshold; zero means 5.
	EstablishedAt int
}

// List returns one page of the user's shows, newest performance first, plus
// the total show count for pagination metadata.
func (s *ShowService) List(ctx context.Context, userID string, offset, limit int) ([]ShowWithRating, int64, error) {
	total, err := repo.CountShows(ctx, s.DB, userID)
	if err != nil {
		return nil, 0, err
	}
	if total == 0 {
		return []ShowWithRating{}, 0, nil
	}

	shows, err := repo.ListShowsPage(ctx, s.DB, userID, offset, limit)
	if err != nil {
		return nil, 0, err
	}
	ids := make([]string, len(shows))
	for i, sh := range shows {
		ids[i] = sh.ID
	}
	ratings, err := repo.ListRatingsForShows(ctx, s.DB, userID, ids)
	if err != nil {
		return nil, 0, err
	}
	byShow := make(map[string]domain.Rating, len(ratings))
	for _, r := range ratings {
		byShow[r.ShowID] = r
	}

	threshold := s.EstablishedAt
	if threshold <= 0 {
		threshold = defaultEstablishedAt
	}
	out := make([]ShowWithRating, len(shows))
	for i, sh := range shows {
		row := ShowWithRating{Show: sh, State: domain.StateUnrated}
		if r, ok := byShow[sh.ID]; ok {
			score := r.Score
			row.Score = &score
			row.Comparisons = r.Comparisons
			row.State = r.State(threshold)
		}
		out[i] = row
	}
	return out, total, nil
}
