// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for the append-only
// Comparison ledger.
//
// Ledger rows are immutable once written: there are create and read helpers
// here but deliberately no update or delete. Normalization of the pair into
// (low, high) happens in the service layer before these functions are called.
package repo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/encorely/go-rank-backend/internal/domain"
)

// CreateComparison appends one decided pair to the ledger. showLowID and
// showHighID must already be in canonical order; winnerID must be one of the
// two (both enforced upstream, backed by a DB check constraint).
func CreateComparison(ctx context.Context, db *gorm.DB, userID, showLowID, showHighID, winnerID string) (*domain.Comparison, error) {
	c := &domain.Comparison{
		ID:         uuid.NewString(),
		UserID:     userID,
		ShowLowID:  showLowID,
		ShowHighID: showHighID,
		WinnerID:   winnerID,
		CreatedAt:  time.Now().UTC(),
	}
	if err := db.WithContext(ctx).Create(c).Error; err != nil {
		return nil, err
	}
	return c, nil
}

// GetComparison fetches a single ledger row by id, scoped to its owner.
// Returns ErrNotFound when absent.
func GetComparison(ctx context.Context, db *gorm.DB, id, userID string) (*domain.Comparison, error) {
	var c domain.Comparison
	err := db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&c).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// ListPartners returns the distinct set of show ids that showID has already
// been compared against, for the given owner. The result is a set because the
// anchor heuristic only cares whether a pair has met, not how often.
func ListPartners(ctx context.Context, db *gorm.DB, userID, showID string) (map[string]struct{}, error) {
	var rows []domain.Comparison
	err := db.WithContext(ctx).
		Select("show_low_id", "show_high_id").
		Where("user_id = ? AND (show_low_id = ? OR show_high_id = ?)", userID, showID, showID).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	partners := make(map[string]struct{}, len(rows))
	for _, row := range rows {
		if row.ShowLowID == showID {
			partners[row.ShowHighID] = struct{}{}
		} else {
			partners[row.ShowLowID] = struct{}{}
		}
	}
	return partners, nil
}

// CountComparisons returns the total number of ledger rows for userID.
func CountComparisons(ctx context.Context, db *gorm.DB, userID string) (int64, error) {
	var total int64
	err := db.WithContext(ctx).
		Model(&domain.Comparison{}).
		Where("user_id = ?", userID).
		Count(&total).Error
	return total, err
}

// ListComparisonsPage returns a paginated slice of the user's ledger, newest
// first. Use CountComparisons for pagination metadata.
func ListComparisonsPage(ctx context.Context, db *gorm.DB, userID string, offset, limit int) ([]domain.Comparison, error) {
	var out []domain.Comparison
	err := db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at desc").
		Offset(offset).
		Limit(limit).
		Find(&out).Error
	return out, err
}

// LedgerStats returns aggregate metadata for a user's ledger: the total
// number of rows and the newest CreatedAt among them. When the ledger is
// empty, the returned count is 0 and latest is nil.
func LedgerStats(ctx context.Context, db *gorm.DB, userID string) (count int64, latest *time.Time, err error) {
	q := db.WithContext(ctx).Model(&domain.Comparison{}).Where("user_id = ?", userID)

	if err = q.Count(&count).Error; err != nil {
		return 0, nil, err
	}
	if count == 0 {
		return 0, nil, nil
	}

	// Get newest created_at (avoid MAX() -> TEXT in SQLite)
	var row struct {
		CreatedAt time.Time
	}
	if err = q.Select("created_at").Order("created_at DESC").Limit(1).Scan(&row).Error; err != nil {
		return 0, nil, err
	}
	return count, &row.CreatedAt, nil
}
