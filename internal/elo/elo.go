// Package elo implements the pairwise rating update at the heart of the
// ranking engine. It is pure math: no I/O, no shared state, deterministic for
// finite inputs, and therefore trivially safe to call from anywhere.
//
// The model is classic Elo: each side has an expected score derived from the
// rating gap, and the winner/loser move toward/away from their expectation
// scaled by the K factor. Ratings are rounded to the nearest integer
// independently per side after the update, so the two deltas can miss summing
// to zero by at most one point of combined rounding error.
package elo

import "math"

const (
	// DefaultK is the update magnitude used when no override is configured.
	// 32 is the common "active pool" constant.
	DefaultK = 32.0

	// DefaultScore is the rating every show starts from before its first
	// comparison.
	DefaultScore = 1200.0

	// scale is the rating gap at which the stronger side's expected score
	// reaches ~0.91 (the standard Elo logistic scale).
	scale = 400.0
)

// Expected returns the expected score of a player rated `rating` against an
// opponent rated `opponent`: 1 / (1 + 10^((opponent-rating)/400)).
// The result is in (0, 1) for finite inputs and equals 0.5 when the ratings
// are identical.
func Expected(rating, opponent float64) float64 {
	return 1.0 / (1.0 + math.Pow(10, (opponent-rating)/scale))
}

// Update computes the post-comparison ratings for a decided pair. The caller
// guarantees both ratings are finite; k must be positive.
//
// Each side is rounded independently:
//
//	newWinner = round(winner + k*(1 - E_winner))
//	newLoser  = round(loser  + k*(0 - E_loser))
//
// With equal inputs the deltas are exactly symmetric (both expectations are
// 0.5); in general the deltas sum to within ±1 of zero.
func Update(winner, loser, k float64) (newWinner, newLoser float64) {
	ew := Expected(winner, loser)
	el := Expected(loser, winner)
	newWinner = math.Round(winner + k*(1.0-ew))
	newLoser = math.Round(loser + k*(0.0-el))
	return newWinner, newLoser
}
