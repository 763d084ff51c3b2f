// Package domain defines the persistence models for shows, ratings, and the
// pairwise comparison ledger. These types are mapped with GORM and form the
// core data layer of the ranking backend.
package domain

import (
	"time"

	"gorm.io/gorm"
)

// Rating confidence states derived from the number of comparisons a show has
// participated in. They are informational only and never gate an operation.
const (
	// StateUnrated means the show has no rating row yet.
	StateUnrated = "unrated"
	// StateProvisional means the show has at least one comparison but fewer
	// than the established threshold.
	StateProvisional = "provisional"
	// StateEstablished means the rating has enough comparisons behind it to
	// be presented without a caveat.
	StateEstablished = "established"
)

// Show represents a single logged concert owned by a user. Shows are created
// and edited by the host application; the ranking engine only reads them.
//
// Fields:
//   - ID: stable UUID primary key (char(36)).
//   - UserID: identifier of the owner; indexed for efficient retrieval.
//   - Artist / Venue: display attributes, opaque to the engine.
//   - PerformedAt: when the show took place; drives time-scoped ranking.
//   - Category: free-form tag (e.g. "festival", "club"), used for filtering.
//   - CreatedAt / UpdatedAt: timestamps managed by GORM.
//   - DeletedAt: soft deletion marker (retains row for audit/history).
type Show struct {
	ID          string         `json:"id"           gorm:"type:char(36);primaryKey"`
	UserID      string         `json:"user_id"      gorm:"type:varchar(64);not null;index:idx_user_shows"`
	Artist      string         `json:"artist"       gorm:"type:varchar(255);not null"`
	Venue       string         `json:"venue"        gorm:"type:varchar(255)"`
	PerformedAt time.Time      `json:"performed_at" gorm:"not null;index:idx_user_shows_performed"`
	Category    string         `json:"category"     gorm:"type:varchar(64);index"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `json:"-"            gorm:"index"`
}

// TableName returns the database table name for Show.
func (Show) TableName() string { return "shows" }

// Rating holds the per-(user, show) Elo state. A row exists only once the
// show has participated in at least one comparison (lazy creation); it is a
// rebuildable materialization of the comparison ledger, mutated exclusively
// through the rating service.
//
// Fields:
//   - ID: UUID primary key (char(36)).
//   - UserID / ShowID: composite unique key; one rating per owner per show.
//   - Score: Elo score, default 1200, rounded to the nearest integer after
//     every update.
//   - Comparisons: how many comparisons the show has participated in. Also
//     serves as the optimistic-concurrency guard for dual-record updates.
//   - CreatedAt / UpdatedAt: timestamps managed by GORM.
//   - Show: FK association; ratings are cascade-deleted with their show.
type Rating struct {
	ID          string    `json:"id"          gorm:"type:char(36);primaryKey"`
	UserID      string    `json:"user_id"     gorm:"type:varchar(64);not null;uniqueIndex:ux_rating_user_show,priority:1"`
	ShowID      string    `json:"show_id"     gorm:"type:char(36);not null;uniqueIndex:ux_rating_user_show,priority:2"`
	Score       float64   `json:"score"       gorm:"not null;default:1200"`
	Comparisons int       `json:"comparisons" gorm:"not null;default:0;check:comparisons >= 0"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// Show is the rated show. Ratings are cascade-deleted if the underlying
	// show is removed.
	Show Show `json:"-" gorm:"foreignKey:ShowID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

// TableName returns the database table name for Rating.
func (Rating) TableName() string { return "ratings" }

// State classifies the rating confidence given the established threshold.
// A nil receiver (no rating row) is StateUnrated.
func (r *Rating) State(establishedAt int) string {
	switch {
	case r == nil || r.Comparisons == 0:
		return StateUnrated
	case r.Comparisons >= establishedAt:
		return StateEstablished
	default:
		return StateProvisional
	}
}

// Comparison is one immutable entry in the append-only pairwise ledger. The
// two show ids are stored in canonical (lexicographic) order so the same pair
// always produces the same (low, high) key regardless of click order. There
// is deliberately no uniqueness constraint: the ledger is a history, not a
// cache, and repeated comparisons of the same pair each get their own row.
//
// Fields:
//   - ID: UUID primary key (char(36)).
//   - UserID: owner of both shows; indexed for history queries.
//   - ShowLowID / ShowHighID: the normalized pair (low < high).
//   - WinnerID: must be one of the two show ids (DB check + service check).
//   - CreatedAt: append time; replay order for rebuilding ratings.
type Comparison struct {
	ID         string    `json:"id"           gorm:"type:char(36);primaryKey"`
	UserID     string    `json:"user_id"      gorm:"type:varchar(64);not null;index:idx_user_comparisons,priority:1"`
	ShowLowID  string    `json:"show_low_id"  gorm:"type:char(36);not null;index"`
	ShowHighID string    `json:"show_high_id" gorm:"type:char(36);not null;index"`
	WinnerID   string    `json:"winner_id"    gorm:"type:char(36);not null;check:winner_id IN (show_low_id, show_high_id)"`
	CreatedAt  time.Time `json:"created_at"   gorm:"index:idx_user_comparisons,priority:2"`

	// FK associations; ledger rows go away with their shows.
	ShowLow  Show `json:"-" gorm:"foreignKey:ShowLowID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	ShowHigh Show `json:"-" gorm:"foreignKey:ShowHighID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

// TableName returns the database table name for Comparison.
func (Comparison) TableName() string { return "comparisons" }

// NormalizePair orders two show ids into the canonical (low, high) form used
// by the ledger. Plain string comparison is the stable total order.
func NormalizePair(a, b string) (low, high string) {
	if a < b {
		return a, b
	}
	return b, a
}
