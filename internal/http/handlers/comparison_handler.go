// Comparison HTTP handlers.
//
// This file exposes the REST endpoints around the pairwise ledger:
//   - POST /comparisons  (record a decided pair)
//   - GET  /comparisons  (paginated history)
//
// Idempotency:
// If the client supplies an Idempotency-Key header and a previous successful
// submission with the same key exists, the handler replays the original
// comparison result and sets `Idempotency-Replayed: true` instead of applying
// the outcome a second time.
package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/encorely/go-rank-backend/internal/domain"
	"github.com/encorely/go-rank-backend/internal/http/middleware"
	"github.com/encorely/go-rank-backend/internal/repo"
	"github.com/encorely/go-rank-backend/internal/services"
	"github.com/encorely/go-rank-backend/internal/utils"
)

// RecordComparisonRequest is the JSON payload for recording a comparison.
//
// WinnerID must equal ShowA or ShowB; the pair order carries no meaning (the
// engine normalizes it before persisting).
type RecordComparisonRequest struct {
	ShowA    string `json:"show_a"    binding:"required" example:"0b9dd3a5-6a3f-4e0a-9c87-2f8f013f90a1"`
	ShowB    string `json:"show_b"    binding:"required" example:"4c1f74a2-30c5-4a0e-8f30-4707f62f4f3e"`
	WinnerID string `json:"winner_id" binding:"required" example:"0b9dd3a5-6a3f-4e0a-9c87-2f8f013f90a1"`
}

// RecordComparisonResponse reports the new ledger row and both post-update
// ratings.
type RecordComparisonResponse struct {
	ComparisonID      string  `json:"comparison_id"`
	WinnerRating      float64 `json:"winner_rating"`
	LoserRating       float64 `json:"loser_rating"`
	WinnerComparisons int     `json:"winner_comparisons"`
	LoserComparisons  int     `json:"loser_comparisons"`
}

// ListComparisonsResponse is one page of the caller's ledger history.
type ListComparisonsResponse struct {
	Items    []domain.Comparison `json:"items"`
	Page     int                 `json:"page"`
	PageSize int                 `json:"page_size"`
	Total    int64               `json:"total"`
}

// RecordComparison godoc
// @ID          recordComparison
// @Summary     Record a pairwise comparison
// @Description Applies one "which show was better?" decision: appends it to the ledger and updates both Elo ratings atomically.
// @Description Supports idempotency via the Idempotency-Key header (same key → same result).
// @Tags        Comparisons
// @Accept      json
// @Produce     json
//
// @Param       X-User-ID        header  string  true  "User ID (gateway-injected)"  example(user123)
// @Param       Idempotency-Key  header  string  false "Idempotency key for safe retries (UUID recommended)"  example(7a8d9f4c-1b2a-4c3d-8e9f-0123456789ab)
// @Param       body             body    handlers.RecordComparisonRequest true "Comparison payload"
//
// @Success     201  {object} handlers.RecordComparisonResponse
// @Success     200  {object} handlers.RecordComparisonResponse "Idempotent replay"
// @Failure     400  {object} handlers.ErrorResponse "Invalid payload"
// @Failure     401  {object} handlers.ErrorResponse "No resolvable user"
// @Failure     404  {object} handlers.ErrorResponse "Show not found"
// @Failure     503  {object} handlers.ErrorResponse "Rating store unavailable"
// @Router      /comparisons [post]
func (h *Handlers) RecordComparison(c *gin.Context) {
	ctx := c.Request.Context()

	uid := userID(c)
	if uid == "" {
		fail(c, http.StatusUnauthorized, ErrCodeUnauthorized, "no resolvable user")
		return
	}

	var req RecordComparisonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "show_a, show_b and winner_id are required")
		return
	}

	// Idempotency (replay path) – read validated key if present.
	idemKey, _ := middleware.GetIdempotencyKey(c)
	if idemKey != "" && h.db != nil {
		if rec, err := repo.GetIdempotency(ctx, h.db, uid, idemKey, time.Now().UTC()); err == nil && rec != nil {
			if prev, err2 := h.cmpSvc.Replay(ctx, uid, rec.ComparisonID); err2 == nil {
				c.Header("Idempotency-Replayed", "true")
				ok(c, http.StatusOK, toComparisonResponse(prev))
				return
			}
		}
	}

	res, err := h.cmpSvc.Record(ctx, uid, req.ShowA, req.ShowB, req.WinnerID)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrSelfComparison):
			fail(c, http.StatusBadRequest, ErrCodeBadRequest, "a show cannot be compared against itself")
		case errors.Is(err, services.ErrWinnerNotInPair):
			fail(c, http.StatusBadRequest, ErrCodeBadRequest, "winner_id must be show_a or show_b")
		case errors.Is(err, services.ErrShowNotFound):
			fail(c, http.StatusNotFound, ErrCodeNotFound, "show not found")
		case errors.Is(err, services.ErrStoreUnavailable):
			fail(c, http.StatusServiceUnavailable, ErrCodeStoreUnavailable, "comparison not applied, retry later")
		default:
			fail(c, http.StatusInternalServerError, ErrCodeComparisonFailed, err.Error())
		}
		return
	}

	// Idempotency (store path) – best effort.
	if idemKey != "" && h.db != nil {
		_, _ = repo.CreateIdempotency(ctx, h.db, uid, idemKey, res.ComparisonID, http.StatusCreated, h.idemTTL)
	}

	ok(c, http.StatusCreated, toComparisonResponse(res))
}

// ListComparisons godoc
// @ID          listComparisons
// @Summary     List comparison history
// @Description Returns a paginated slice of the caller's append-only comparison ledger, newest first.
// @Tags        Comparisons
// @Produce     json
//
// @Param       X-User-ID  header  string  true  "User ID (gateway-injected)"  example(user123)
// @Param       page       query   int     false "Page number"     minimum(1) default(1)
// @Param       page_size  query   int     false "Items per page"  minimum(1) maximum(100) default(20)
//
// @Success     200  {object} handlers.ListComparisonsResponse
// @Failure     401  {object} handlers.ErrorResponse "No resolvable user"
// @Failure     500  {object} handlers.ErrorResponse "Internal error"
// @Router      /comparisons [get]
func (h *Handlers) ListComparisons(c *gin.Context) {
	ctx := c.Request.Context()

	uid := userID(c)
	if uid == "" {
		fail(c, http.StatusUnauthorized, ErrCodeUnauthorized, "no resolvable user")
		return
	}

	page := utils.AtoiDefault(c.Query("page"), 1)
	if page < 1 {
		page = 1
	}
	pageSize := utils.AtoiDefault(c.Query("page_size"), 20)
	if pageSize < 1 {
		pageSize = 20
	}
	if pageSize > 100 {
		pageSize = 100
	}

	items, total, err := h.cmpSvc.History(ctx, uid, (page-1)*pageSize, pageSize)
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeListFailed, err.Error())
		return
	}

	ok(c, http.StatusOK, ListComparisonsResponse{
		Items:    items,
		Page:     page,
		PageSize: pageSize,
		Total:    total,
	})
}

// toComparisonResponse maps the service result to the transport DTO.
func toComparisonResponse(r *services.ComparisonResult) RecordComparisonResponse {
	return RecordComparisonResponse{
		ComparisonID:      r.ComparisonID,
		WinnerRating:      r.WinnerRating,
		LoserRating:       r.LoserRating,
		WinnerComparisons: r.WinnerComparisons,
		LoserComparisons:  r.LoserComparisons,
	}
}
