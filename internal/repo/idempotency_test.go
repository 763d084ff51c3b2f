package repo

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/encorely/go-rank-backend/internal/domain"
)

func TestCreateIdempotency_And_Get(t *testing.T) {
	db := newRepoDB(t, &domain.Idempotency{})

	rec, err := CreateIdempotency(context.Background(), db, "u1", "k1", "cmp-1", 201, time.Hour)
	if err != nil {
		t.Fatalf("CreateIdempotency: %v", err)
	}
	if rec.ID == "" || rec.ComparisonID != "cmp-1" || rec.Status != 201 {
		t.Fatalf("unexpected record: %+v", rec)
	}

	got, err := GetIdempotency(context.Background(), db, "u1", "k1", time.Now().UTC())
	if err != nil {
		t.Fatalf("GetIdempotency: %v", err)
	}
	if got.ComparisonID != "cmp-1" {
		t.Fatalf("comparison id mismatch: %+v", got)
	}
}

func TestGetIdempotency_MissAndExpiry(t *testing.T) {
	db := newRepoDB(t, &domain.Idempotency{})

	if _, err := GetIdempotency(context.Background(), db, "u1", "nope", time.Now().UTC()); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for absent key, got %v", err)
	}

	if _, err := CreateIdempotency(context.Background(), db, "u1", "k1", "cmp-1", 201, time.Minute); err != nil {
		t.Fatalf("CreateIdempotency: %v", err)
	}
	// A "now" past the TTL makes the record invisible.
	future := time.Now().UTC().Add(2 * time.Minute)
	if _, err := GetIdempotency(context.Background(), db, "u1", "k1", future); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound after expiry, got %v", err)
	}
}

func TestCreateIdempotency_DuplicateKey(t *testing.T) {
	db := newRepoDB(t, &domain.Idempotency{})

	if _, err := CreateIdempotency(context.Background(), db, "u1", "k1", "cmp-1", 201, time.Hour); err != nil {
		t.Fatalf("first CreateIdempotency: %v", err)
	}
	if _, err := CreateIdempotency(context.Background(), db, "u1", "k1", "cmp-2", 201, time.Hour); !errors.Is(err, ErrDuplicate) {
		t.Fatalf("expected ErrDuplicate, got %v", err)
	}
	// Same key for a different user is a different tuple.
	if _, err := CreateIdempotency(context.Background(), db, "u2", "k1", "cmp-3", 201, time.Hour); err != nil {
		t.Fatalf("CreateIdempotency for other user: %v", err)
	}
}
