package repo

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/encorely/go-rank-backend/internal/domain"
)

func TestCreateComparison_AppendsRow(t *testing.T) {
	db := newRepoDB(t, &domain.Show{}, &domain.Comparison{})
	now := time.Now().UTC()
	seedShow(t, db, "a", "u1", now)
	seedShow(t, db, "b", "u1", now)

	c, err := CreateComparison(context.Background(), db, "u1", "a", "b", "a")
	if err != nil {
		t.Fatalf("CreateComparison: %v", err)
	}
	if c.ID == "" || c.ShowLowID != "a" || c.ShowHighID != "b" || c.WinnerID != "a" {
		t.Fatalf("unexpected row: %+v", c)
	}

	// Repeats of the same pair are allowed; each appends its own row.
	if _, err := CreateComparison(context.Background(), db, "u1", "a", "b", "b"); err != nil {
		t.Fatalf("repeat CreateComparison: %v", err)
	}
	n, err := CountComparisons(context.Background(), db, "u1")
	if err != nil {
		t.Fatalf("CountComparisons: %v", err)
	}
	if n != 2 {
		t.Fatalf("expected 2 rows, got %d", n)
	}
}

func TestGetComparison_Ownership(t *testing.T) {
	db := newRepoDB(t, &domain.Show{}, &domain.Comparison{})
	now := time.Now().UTC()
	seedShow(t, db, "a", "u1", now)
	seedShow(t, db, "b", "u1", now)

	c, err := CreateComparison(context.Background(), db, "u1", "a", "b", "b")
	if err != nil {
		t.Fatalf("CreateComparison: %v", err)
	}

	got, err := GetComparison(context.Background(), db, c.ID, "u1")
	if err != nil {
		t.Fatalf("GetComparison: %v", err)
	}
	if got.ID != c.ID {
		t.Fatalf("id mismatch: %s vs %s", got.ID, c.ID)
	}
	if _, err := GetComparison(context.Background(), db, c.ID, "u2"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for foreign owner, got %v", err)
	}
}

func TestListPartners_BothSidesOfThePair(t *testing.T) {
	db := newRepoDB(t, &domain.Show{}, &domain.Comparison{})
	now := time.Now().UTC()
	for _, id := range []string{"a", "b", "c", "d"} {
		seedShow(t, db, id, "u1", now)
	}

	// b sits on the low side against c and on the high side against a.
	if _, err := CreateComparison(context.Background(), db, "u1", "a", "b", "a"); err != nil {
		t.Fatalf("seed a-b: %v", err)
	}
	if _, err := CreateComparison(context.Background(), db, "u1", "b", "c", "c"); err != nil {
		t.Fatalf("seed b-c: %v", err)
	}

	partners, err := ListPartners(context.Background(), db, "u1", "b")
	if err != nil {
		t.Fatalf("ListPartners: %v", err)
	}
	if len(partners) != 2 {
		t.Fatalf("expected 2 partners, got %d", len(partners))
	}
	for _, want := range []string{"a", "c"} {
		if _, ok := partners[want]; !ok {
			t.Fatalf("missing partner %q in %v", want, partners)
		}
	}
	if _, ok := partners["d"]; ok {
		t.Fatalf("d was never compared against b")
	}
}

func TestListComparisonsPage_NewestFirst(t *testing.T) {
	db := newRepoDB(t, &domain.Show{}, &domain.Comparison{})
	now := time.Now().UTC()
	seedShow(t, db, "a", "u1", now)
	seedShow(t, db, "b", "u1", now)

	// Insert with explicit timestamps so ordering is unambiguous.
	for i := 0; i < 3; i++ {
		row := domain.Comparison{
			ID:         fmt.Sprintf("c%d", i),
			UserID:     "u1",
			ShowLowID:  "a",
			ShowHighID: "b",
			WinnerID:   "a",
			CreatedAt:  now.Add(time.Duration(i) * time.Minute),
		}
		if err := db.Create(&row).Error; err != nil {
			t.Fatalf("seed c%d: %v", i, err)
		}
	}

	page, err := ListComparisonsPage(context.Background(), db, "u1", 0, 2)
	if err != nil {
		t.Fatalf("ListComparisonsPage: %v", err)
	}
	if len(page) != 2 || page[0].ID != "c2" || page[1].ID != "c1" {
		t.Fatalf("unexpected page: %+v", page)
	}
}

func TestLedgerStats_EmptyAndPopulated(t *testing.T) {
	db := newRepoDB(t, &domain.Show{}, &domain.Comparison{})

	count, latest, err := LedgerStats(context.Background(), db, "u1")
	if err != nil {
		t.Fatalf("LedgerStats (empty): %v", err)
	}
	if count != 0 || latest != nil {
		t.Fatalf("expected empty stats, got count=%d latest=%v", count, latest)
	}

	now := time.Now().UTC()
	seedShow(t, db, "a", "u1", now)
	seedShow(t, db, "b", "u1", now)
	if _, err := CreateComparison(context.Background(), db, "u1", "a", "b", "b"); err != nil {
		t.Fatalf("CreateComparison: %v", err)
	}

	count, latest, err = LedgerStats(context.Background(), db, "u1")
	if err != nil {
		t.Fatalf("LedgerStats: %v", err)
	}
	if count != 1 || latest == nil || latest.IsZero() {
		t.Fatalf("unexpected stats: count=%d latest=%v", count, latest)
	}
}
