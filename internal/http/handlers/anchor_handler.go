// Anchor HTTP handler.
//
// This file exposes the advisory "next matchup" endpoint:
//   - GET /shows/{id}/anchor
//
// The selection is read-only and deterministic for a given seed; clients that
// care about reproducibility (tests, debugging) pass ?seed=, everyone else
// gets a time-derived seed per request.
package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/encorely/go-rank-backend/internal/services"
)

// AnchorResponse carries the chosen partner, or null when the caller has no
// other shows to compare against.
type AnchorResponse struct {
	// AnchorID is the selected partner show, or null for an empty pool.
	AnchorID *string `json:"anchor_id"`
}

// GetAnchor godoc
// @ID          getAnchor
// @Summary     Pick the next comparison partner
// @Description Chooses the existing show that would produce the most useful comparison signal for the given show.
// @Description Purely advisory: no state is mutated. anchor_id is null when the caller owns no other shows.
// @Tags        Anchors
// @Produce     json
//
// @Param       X-User-ID  header  string  true  "User ID (gateway-injected)"  example(user123)
// @Param       id         path    string  true  "Show ID (UUID)"  format(uuid)
// @Param       seed       query   int     false "Random seed for reproducible selection"
//
// @Success     200  {object} handlers.AnchorResponse
// @Failure     401  {object} handlers.ErrorResponse "No resolvable user"
// @Failure     404  {object} handlers.ErrorResponse "Show not found"
// @Failure     500  {object} handlers.ErrorResponse "Internal error"
// @Router      /shows/{id}/anchor [get]
func (h *Handlers) GetAnchor(c *gin.Context) {
	ctx := c.Request.Context()

	uid := userID(c)
	if uid == "" {
		fail(c, http.StatusUnauthorized, ErrCodeUnauthorized, "no resolvable user")
		return
	}
	showID := c.Param("id")

	seed := time.Now().UTC().UnixNano()
	if raw := c.Query("seed"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			fail(c, http.StatusBadRequest, ErrCodeBadRequest, "seed must be an integer")
			return
		}
		seed = parsed
	}

	anchorID, err := h.anchorSvc.Select(ctx, uid, showID, seed)
	if err != nil {
		if errors.Is(err, services.ErrShowNotFound) {
			fail(c, http.StatusNotFound, ErrCodeNotFound, "show not found")
			return
		}
		fail(c, http.StatusInternalServerError, ErrCodeInternal, err.Error())
		return
	}

	resp := AnchorResponse{}
	if anchorID != "" {
		resp.AnchorID = &anchorID
	}
	ok(c, http.StatusOK, resp)
}
