// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for the Rating
// model.
//
// The repository follows a "thin" approach: it performs persistence and simple
// query composition, leaving the Elo math, retries, and atomicity rules to the
// services package.
//
// Error semantics:
//   - GetRating returns ErrNotFound when no row exists; callers that want the
//     transient 1200/0 default build it themselves (lazy creation).
//   - UpdateRatingGuarded reports zero rows affected as ErrStale so the
//     service layer can drive its optimistic retry loop.
//   - On other DB errors, the raw gorm error is propagated.
package repo

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/encorely/go-rank-backend/internal/domain"
)

// ErrStale indicates that a guarded rating update matched no row: another
// writer advanced the comparisons counter after our snapshot was taken.
var ErrStale = errors.New("rating snapshot is stale")

// GetRating fetches the rating row for (userID, showID), or ErrNotFound when
// the show has never participated in a comparison.
func GetRating(ctx context.Context, db *gorm.DB, userID, showID string) (*domain.Rating, error) {
	var r domain.Rating
	err := db.WithContext(ctx).
		Where("user_id = ? AND show_id = ?", userID, showID).
		First(&r).Error
	if err != nil {
		return nil, err
	}
	return &r, nil
}

// ListRatings returns every rating row owned by userID. Order is by show id
// ascending so traversals are deterministic.
func ListRatings(ctx context.Context, db *gorm.DB, userID string) ([]domain.Rating, error) {
	var out []domain.Rating
	err := db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("show_id asc").
		Find(&out).Error
	return out, err
}

// ListRatingsForShows returns the rating rows for the given show ids (shows
// without a row are simply absent from the result). Order is by show id
// ascending.
func ListRatingsForShows(ctx context.Context, db *gorm.DB, userID string, showIDs []string) ([]domain.Rating, error) {
	if len(showIDs) == 0 {
		return nil, nil
	}
	var out []domain.Rating
	err := db.WithContext(ctx).
		Where("user_id = ? AND show_id IN ?", userID, showIDs).
		Order("show_id asc").
		Find(&out).Error
	return out, err
}

// CreateRating inserts the first rating row for (userID, showID) with the
// given score and a comparison count of 1. The unique (user_id, show_id)
// index makes a racing first write surface as ErrStale, which the service
// retry loop resolves by re-reading.
func CreateRating(ctx context.Context, db *gorm.DB, userID, showID string, score float64) (*domain.Rating, error) {
	r := &domain.Rating{
		ID:          uuid.NewString(),
		UserID:      userID,
		ShowID:      showID,
		Score:       score,
		Comparisons: 1,
		CreatedAt:   time.Now().UTC(),
	}
	if err := db.WithContext(ctx).Create(r).Error; err != nil {
		if isUniqueViolation(err) {
			return nil, ErrStale
		}
		return nil, err
	}
	return r, nil
}

// UpdateRatingGuarded writes a new score for (userID, showID) and increments
// the comparisons counter, but only if the counter still equals prevCount —
// a compare-and-swap keyed on the previously read snapshot. It returns
// ErrStale when the guard misses.
func UpdateRatingGuarded(ctx context.Context, db *gorm.DB, userID, showID string, prevCount int, score float64) error {
	res := db.WithContext(ctx).
		Model(&domain.Rating{}).
		Where("user_id = ? AND show_id = ? AND comparisons = ?", userID, showID, prevCount).
		Updates(map[string]any{
			"score":       score,
			"comparisons": prevCount + 1,
			"updated_at":  time.Now().UTC(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrStale
	}
	return nil
}

// isUniqueViolation detects unique-constraint violations across drivers that
// may not map to gorm.ErrDuplicatedKey.
func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	// glebarez/sqlite typically: "UNIQUE constraint failed"
	// Postgres typically: "duplicate key value violates unique constraint"
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "unique constraint") ||
		strings.Contains(msg, "duplicate key")
}
