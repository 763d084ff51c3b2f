// Package services defines the business logic of the ranking engine: rating
// updates, the comparison ledger, anchor selection, and rank computation.
// This file centralizes common service-level error values so that they can be
// consistently returned by service methods and checked by callers.
//
// These errors are intended for internal use by the service layer; translation
// into user-facing messages or HTTP status codes is performed at the
// handler layer.
package services

import "errors"

var (
	// ErrSelfComparison is returned when a comparison names the same show on
	// both sides.
	ErrSelfComparison = errors.New("a show cannot be compared against itself")

	// ErrWinnerNotInPair is returned when the declared winner is neither of
	// the two compared shows.
	ErrWinnerNotInPair = errors.New("winner must be one of the compared shows")

	// ErrShowNotFound indicates that a referenced show does not exist or is
	// not owned by the current user.
	ErrShowNotFound = errors.New("show not found")

	// ErrInvalidScope is returned when a rank query names an unknown time
	// scope.
	ErrInvalidScope = errors.New("unknown ranking scope")

	// ErrRatingConflict indicates that a rating write lost an optimistic
	// race. It is retryable; the services retry internally before giving up.
	ErrRatingConflict = errors.New("rating update conflicted with a concurrent write")

	// ErrStoreUnavailable is the escalation of repeated conflicts or a
	// failing durable store: the comparison was NOT applied and the caller
	// may retry the whole operation later.
	ErrStoreUnavailable = errors.New("rating store unavailable")
)
