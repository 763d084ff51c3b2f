package repo

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	sqlite "github.com/glebarez/sqlite" // pure-Go SQLite
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/encorely/go-rank-backend/internal/domain"
)

func newRepoDB(t *testing.T, migrate ...any) *gorm.DB {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), fmt.Sprintf("repo_test_%d.db", time.Now().UnixNano()))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	// Ensure the file handle is released before TempDir cleanup (Windows needs this).
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	if len(migrate) > 0 {
		if err := db.AutoMigrate(migrate...); err != nil {
			t.Fatalf("automigrate: %v", err)
		}
	}
	return db
}

func seedShow(t *testing.T, db *gorm.DB, id, userID string, performedAt time.Time) domain.Show {
	t.Helper()
	s := domain.Show{
		ID:          id,
		UserID:      userID,
		Artist:      "Artist " + id,
		Venue:       "Venue " + id,
		PerformedAt: performedAt,
	}
	if err := db.Create(&s).Error; err != nil {
		t.Fatalf("seed show %s: %v", id, err)
	}
	return s
}

func TestGetShow_FoundAndOwnership(t *testing.T) {
	db := newRepoDB(t, &domain.Show{})
	now := time.Now().UTC()
	seedShow(t, db, "s1", "u1", now)

	got, err := GetShow(context.Background(), db, "s1", "u1")
	if err != nil {
		t.Fatalf("GetShow: %v", err)
	}
	if got.ID != "s1" || got.UserID != "u1" {
		t.Fatalf("unexpected show: %+v", got)
	}

	// wrong owner → not found
	if _, err := GetShow(context.Background(), db, "s1", "u2"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for foreign show, got %v", err)
	}
	// absent id → not found
	if _, err := GetShow(context.Background(), db, "nope", "u1"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for absent show, got %v", err)
	}
}

func TestListShows_OrderNewestFirst(t *testing.T) {
	db := newRepoDB(t, &domain.Show{})
	now := time.Now().UTC()
	seedShow(t, db, "old", "u1", now.AddDate(0, -2, 0))
	seedShow(t, db, "new", "u1", now.AddDate(0, -1, 0))
	seedShow(t, db, "foreign", "u2", now)

	out, err := ListShows(context.Background(), db, "u1")
	if err != nil {
		t.Fatalf("ListShows: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("expected 2 shows, got %d", len(out))
	}
	if out[0].ID != "new" || out[1].ID != "old" {
		t.Fatalf("unexpected order: %s, %s", out[0].ID, out[1].ID)
	}
}

func TestListShowsInRange_HalfOpenWindow(t *testing.T) {
	db := newRepoDB(t, &domain.Show{})

	jan1 := time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)
	seedShow(t, db, "before", "u1", jan1.Add(-time.Hour))
	seedShow(t, db, "start", "u1", jan1) // inclusive lower bound
	seedShow(t, db, "mid", "u1", jan1.AddDate(0, 6, 0))
	seedShow(t, db, "end", "u1", jan1.AddDate(1, 0, 0)) // exclusive upper bound

	out, err := ListShowsInRange(context.Background(), db, "u1", jan1, jan1.AddDate(1, 0, 0))
	if err != nil {
		t.Fatalf("ListShowsInRange: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("expected 2 shows in window, got %d", len(out))
	}
	// ordered by id asc
	if out[0].ID != "mid" || out[1].ID != "start" {
		t.Fatalf("unexpected window/order: %s, %s", out[0].ID, out[1].ID)
	}

	// zero bounds mean unbounded
	all, err := ListShowsInRange(context.Background(), db, "u1", time.Time{}, time.Time{})
	if err != nil {
		t.Fatalf("ListShowsInRange (unbounded): %v", err)
	}
	if len(all) != 4 {
		t.Fatalf("expected all 4 shows, got %d", len(all))
	}
}

func TestCountShows_And_ListShowsPage(t *testing.T) {
	db := newRepoDB(t, &domain.Show{})
	now := time.Now().UTC()
	for i := 0; i < 5; i++ {
		seedShow(t, db, fmt.Sprintf("s%d", i), "u1", now.Add(-time.Duration(i)*time.Hour))
	}

	n, err := CountShows(context.Background(), db, "u1")
	if err != nil {
		t.Fatalf("CountShows: %v", err)
	}
	if n != 5 {
		t.Fatalf("expected 5, got %d", n)
	}

	page, err := ListShowsPage(context.Background(), db, "u1", 2, 2)
	if err != nil {
		t.Fatalf("ListShowsPage: %v", err)
	}
	if len(page) != 2 {
		t.Fatalf("expected 2 items, got %d", len(page))
	}
	// newest first → offset 2 skips s0, s1
	if page[0].ID != "s2" || page[1].ID != "s3" {
		t.Fatalf("unexpected page: %s, %s", page[0].ID, page[1].ID)
	}
}
