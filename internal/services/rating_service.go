// Package services – RatingService
//
// This file implements the RatingService, the only code path that may mutate
// rating rows. A comparison touches exactly two ratings, and the pair must be
// written as a single atomic unit: both rows move, or neither does. The
// service combines a GORM transaction with a compare-and-swap guard on each
// row's comparisons counter, retried with backoff, so two comparisons sharing
// a show can never lose an update.
package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/encorely/go-rank-backend/internal/domain"
	"github.com/encorely/go-rank-backend/internal/elo"
	"github.com/encorely/go-rank-backend/internal/repo"
)

// Defaults applied when the corresponding RatingService field is zero.
const (
	defaultMaxAttempts = 4
	defaultBackoff     = 20 * time.Millisecond
)

// RatingService owns the durable per-(user, show) Elo state.
//
// Fields:
//   - DB: database handle; may be a plain *gorm.DB or transaction-bound.
//   - K: Elo K factor; zero means elo.DefaultK.
//   - MaxAttempts: total optimistic attempts before escalating; zero means 4.
//   - Backoff: base sleep between attempts, grown linearly; zero means 20ms.
type RatingService struct {
	DB          *gorm.DB
	K           float64
	MaxAttempts int
	Backoff     time.Duration
}

// GetOrCreate returns the persisted rating for (userID, showID), or a
// transient in-memory default {1200, 0} when the show has never been
// compared. The default is NOT written to the database; rows are created
// lazily by the first ApplyComparison involving the show.
func (s *RatingService) GetOrCreate(ctx context.Context, userID, showID string) (*domain.Rating, error) {
	r, err := repo.GetRating(ctx, s.DB, userID, showID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &domain.Rating{
				UserID:      userID,
				ShowID:      showID,
				Score:       elo.DefaultScore,
				Comparisons: 0,
			}, nil
		}
		return nil, err
	}
	return r, nil
}

// ApplyComparison applies one decided outcome to both ratings and persists
// them atomically. It retries internally on optimistic conflicts; once the
// attempt budget is exhausted the error escalates to ErrStoreUnavailable and
// nothing has been written.
//
// Side effect: durable mutation of exactly the two rating rows involved;
// unrelated shows are never touched.
func (s *RatingService) ApplyComparison(ctx context.Context, userID, winnerID, loserID string) (winner, loser *domain.Rating, err error) {
	attempts := s.maxAttempts()
	for attempt := 0; attempt < attempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return nil, nil, err
		}
		txErr := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			var inner error
			winner, loser, inner = s.applyIn(ctx, tx, userID, winnerID, loserID)
			return inner
		})
		if txErr == nil {
			return winner, loser, nil
		}
		if !errors.Is(txErr, ErrRatingConflict) {
			return nil, nil, txErr
		}
		// Conflict: linear backoff, then re-read and retry.
		time.Sleep(s.backoff() * time.Duration(attempt+1))
	}
	return nil, nil, fmt.Errorf("%w: optimistic retries exhausted", ErrStoreUnavailable)
}

// applyIn performs a single attempt inside the provided transaction handle.
// It reads both rating snapshots (building transient defaults for shows with
// no row yet), runs the Elo update, and writes both rows guarded by the
// previously read comparison counts. A missed guard surfaces as
// ErrRatingConflict so the caller can drive its retry loop; any write inside
// a failed attempt is rolled back with the surrounding transaction.
func (s *RatingService) applyIn(ctx context.Context, tx *gorm.DB, userID, winnerID, loserID string) (*domain.Rating, *domain.Rating, error) {
	wSnap, wFound, err := snapshot(ctx, tx, userID, winnerID)
	if err != nil {
		return nil, nil, err
	}
	lSnap, lFound, err := snapshot(ctx, tx, userID, loserID)
	if err != nil {
		return nil, nil, err
	}

	newW, newL := elo.Update(wSnap.Score, lSnap.Score, s.kFactor())

	winner, err := writeSide(ctx, tx, wSnap, wFound, newW)
	if err != nil {
		return nil, nil, err
	}
	loser, err := writeSide(ctx, tx, lSnap, lFound, newL)
	if err != nil {
		return nil, nil, err
	}
	return winner, loser, nil
}

// snapshot loads the current rating row for (userID, showID), or a transient
// default when none exists. The found flag tells writeSide whether to create
// or to update with a guard.
func snapshot(ctx context.Context, tx *gorm.DB, userID, showID string) (*domain.Rating, bool, error) {
	r, err := repo.GetRating(ctx, tx, userID, showID)
	if err == nil {
		return r, true, nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &domain.Rating{
			UserID:      userID,
			ShowID:      showID,
			Score:       elo.DefaultScore,
			Comparisons: 0,
		}, false, nil
	}
	return nil, false, err
}

// writeSide persists one half of the dual update: lazy creation for a first
// comparison, guarded update otherwise. The returned record reflects the
// post-update state.
func writeSide(ctx context.Context, tx *gorm.DB, snap *domain.Rating, found bool, newScore float64) (*domain.Rating, error) {
	if !found {
		r, err := repo.CreateRating(ctx, tx, snap.UserID, snap.ShowID, newScore)
		if errors.Is(err, repo.ErrStale) {
			return nil, ErrRatingConflict
		}
		return r, err
	}
	if err := repo.UpdateRatingGuarded(ctx, tx, snap.UserID, snap.ShowID, snap.Comparisons, newScore); err != nil {
		if errors.Is(err, repo.ErrStale) {
			return nil, ErrRatingConflict
		}
		return nil, err
	}
	updated := *snap
	updated.Score = newScore
	updated.Comparisons = snap.Comparisons + 1
	return &updated, nil
}

func (s *RatingService) kFactor() float64 {
	if s.K > 0 {
		return s.K
	}
	return elo.DefaultK
}

func (s *RatingService) maxAttempts() int {
	if s.MaxAttempts > 0 {
		return s.MaxAttempts
	}
	return defaultMaxAttempts
}

func (s *RatingService) backoff() time.Duration {
	if s.Backoff > 0 {
		return s.Backoff
	}
	return defaultBackoff
}
