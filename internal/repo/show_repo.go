// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides read-side repository functions for the
// Show model.
//
// Shows are created and edited by the host application; the ranking engine
// only consumes them. The repository therefore exposes lookups and scoped
// listings, never writes.
//
// Error semantics:
//   - When a show is not found, functions return gorm.ErrRecordNotFound
//     (also exported here as ErrNotFound for convenience).
//   - On DB errors (connectivity, constraint issues, etc.), the raw gorm
//     error is propagated.
package repo

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/encorely/go-rank-backend/internal/domain"
)

// ErrNotFound is returned when a requested record does not exist.
// It aliases gorm.ErrRecordNotFound for consistency across the service layer
// and handlers.
var ErrNotFound = gorm.ErrRecordNotFound

// GetShow fetches a single show by its ID and owner (userID). If the record
// does not exist, or belongs to another user, it returns ErrNotFound.
func GetShow(ctx context.Context, db *gorm.DB, id, userID string) (*domain.Show, error) {
	var s domain.Show
	err := db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&s).Error
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// ListShows returns all shows belonging to userID, ordered by performance
// time descending (most recent first). It returns an empty slice if the user
// has no shows.
func ListShows(ctx context.Context, db *gorm.DB, userID string) ([]domain.Show, error) {
	var out []domain.Show
	err := db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("performed_at desc").
		Find(&out).Error
	return out, err
}

// ListShowsInRange returns the user's shows whose PerformedAt falls within
// [from, to). A zero `from` means unbounded in the past; a zero `to` means
// unbounded in the future. Results are ordered by id ascending so callers get
// a deterministic traversal.
func ListShowsInRange(ctx context.Context, db *gorm.DB, userID string, from, to time.Time) ([]domain.Show, error) {
	q := db.WithContext(ctx).
		Where("user_id = ?", userID)
	if !from.IsZero() {
		q = q.Where("performed_at >= ?", from)
	}
	if !to.IsZero() {
		q = q.Where("performed_at < ?", to)
	}
	var out []domain.Show
	err := q.Order("id asc").Find(&out).Error
	return out, err
}

// CountShows returns the total number of shows owned by userID.
func CountShows(ctx context.Context, db *gorm.DB, userID string) (int64, error) {
	var total int64
	err := db.WithContext(ctx).
		Model(&domain.Show{}).
		Where("user_id = ?", userID).
		Count(&total).Error
	return total, err
}

// ListShowsPage returns a paginated slice of shows for userID, ordered by
// performance time descending. Use CountShows to obtain the total for
// pagination metadata.
//
// The caller is responsible for computing offset and limit (e.g., (page-1)*pageSize).
func ListShowsPage(ctx context.Context, db *gorm.DB, userID string, offset, limit int) ([]domain.Show, error) {
	var out []domain.Show
	err := db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("performed_at desc").
		Offset(offset).
		Limit(limit).
		Find(&out).Error
	return out, err
}
