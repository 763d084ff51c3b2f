// Package services – ComparisonService
//
// This file implements the ComparisonService, which governs the append-only
// ledger of pairwise decisions ("which show was better?"). It enforces
// business rules (no self-comparison, winner in pair, ownership of both
// shows), normalizes the pair into a canonical order, and writes the ledger
// row and the derived rating update inside one transaction. Once Record
// returns success the ledger entry is durably visible AND both ratings
// reflect it; a failed rating update rolls the ledger write back so the two
// can never silently diverge.
package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/encorely/go-rank-backend/internal/domain"
	"github.com/encorely/go-rank-backend/internal/repo"
)

// ComparisonResult is the outcome of a successfully recorded comparison.
type ComparisonResult struct {
	// ComparisonID identifies the new ledger row.
	ComparisonID string
	// WinnerRating / LoserRating are the post-update Elo scores.
	WinnerRating float64
	LoserRating  float64
	// WinnerComparisons / LoserComparisons are the post-update participation
	// counts, useful for confidence framing in the UI.
	WinnerComparisons int
	LoserComparisons  int
}

// ComparisonService implements the use-cases around the pairwise ledger.
// Ratings carries the Elo configuration and owns the dual-record write; the
// ledger service reuses its transactional single attempt so both concerns
// commit together.
type ComparisonService struct {
	// DB is the database handle used for ledger operations.
	DB *gorm.DB
	// Ratings applies the derived rating change. Required.
	Ratings *RatingService
}

// Record validates, normalizes, and durably applies one pairwise decision on
// behalf of userID.
//
// Semantics and validation:
//   - showA and showB must differ; otherwise ErrSelfComparison.
//   - winnerID must be showA or showB; otherwise ErrWinnerNotInPair.
//   - Both shows must exist and belong to userID; otherwise ErrShowNotFound.
//   - The pair is stored in canonical (low, high) order purely for stable
//     downstream analytics; repeated comparisons of the same pair are always
//     permitted and each appends its own row.
//
// Concurrency & atomicity:
//   - The ledger insert and both rating writes run in a single transaction.
//     An optimistic conflict on either rating rolls everything back and the
//     whole attempt is retried with backoff; after the attempt budget the
//     error escalates to ErrStoreUnavailable with nothing persisted.
func (s *ComparisonService) Record(ctx context.Context, userID, showA, showB, winnerID string) (*ComparisonResult, error) {
	if showA == showB {
		return nil, ErrSelfComparison
	}
	if winnerID != showA && winnerID != showB {
		return nil, ErrWinnerNotInPair
	}

	// Ownership checks up front: both sides must be the caller's shows.
	for _, id := range []string{showA, showB} {
		if _, err := repo.GetShow(ctx, s.DB, id, userID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrShowNotFound
			}
			return nil, err
		}
	}

	loserID := showA
	if winnerID == showA {
		loserID = showB
	}
	low, high := domain.NormalizePair(showA, showB)

	attempts := s.Ratings.maxAttempts()
	for attempt := 0; attempt < attempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		var (
			rec    *domain.Comparison
			winner *domain.Rating
			loser  *domain.Rating
		)
		txErr := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			var err error
			rec, err = repo.CreateComparison(ctx, tx, userID, low, high, winnerID)
			if err != nil {
				return err
			}
			winner, loser, err = s.Ratings.applyIn(ctx, tx, userID, winnerID, loserID)
			return err
		})
		if txErr == nil {
			return &ComparisonResult{
				ComparisonID:      rec.ID,
				WinnerRating:      winner.Score,
				LoserRating:       loser.Score,
				WinnerComparisons: winner.Comparisons,
				LoserComparisons:  loser.Comparisons,
			}, nil
		}
		if !errors.Is(txErr, ErrRatingConflict) {
			return nil, txErr
		}
		time.Sleep(s.Ratings.backoff() * time.Duration(attempt+1))
	}
	return nil, fmt.Errorf("%w: optimistic retries exhausted", ErrStoreUnavailable)
}

// Replay loads a previously recorded comparison together with the current
// ratings of both participants. It backs idempotent retries of POST
// /comparisons: the stored ledger row is authoritative, the ratings are
// whatever they are now.
func (s *ComparisonService) Replay(ctx context.Context, userID, comparisonID string) (*ComparisonResult, error) {
	rec, err := repo.GetComparison(ctx, s.DB, comparisonID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrShowNotFound
		}
		return nil, err
	}
	loserID := rec.ShowLowID
	if rec.WinnerID == rec.ShowLowID {
		loserID = rec.ShowHighID
	}
	winner, err := s.Ratings.GetOrCreate(ctx, userID, rec.WinnerID)
	if err != nil {
		return nil, err
	}
	loser, err := s.Ratings.GetOrCreate(ctx, userID, loserID)
	if err != nil {
		return nil, err
	}
	return &ComparisonResult{
		ComparisonID:      rec.ID,
		WinnerRating:      winner.Score,
		LoserRating:       loser.Score,
		WinnerComparisons: winner.Comparisons,
		LoserComparisons:  loser.Comparisons,
	}, nil
}

// History returns one page of the caller's ledger, newest first, plus the
// total row count for pagination metadata.
func (s *ComparisonService) History(ctx context.Context, userID string, offset, limit int) ([]domain.Comparison, int64, error) {
	total, _, err := repo.LedgerStats(ctx, s.DB, userID)
	if err != nil {
		return nil, 0, err
	}
	if total == 0 {
		return []domain.Comparison{}, 0, nil
	}
	rows, err := repo.ListComparisonsPage(ctx, s.DB, userID, offset, limit)
	if err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}
