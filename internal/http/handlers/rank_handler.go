// Rank HTTP handler.
//
// This file exposes the scoped rank/percentile endpoint:
//   - GET /shows/{id}/rank?scope=all-time|this-year|last-year
//
// The response includes a human-friendly label for the scope ("This Year")
// so the mobile UI can render it verbatim.
package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/encorely/go-rank-backend/internal/services"
)

// RankResponse is the scoped rank of one show.
type RankResponse struct {
	Position   int     `json:"position"`
	Total      int     `json:"total"`
	Percentile float64 `json:"percentile"`
	State      string  `json:"state"      example:"established"`
	Scope      string  `json:"scope"      example:"this-year"`
	ScopeLabel string  `json:"scope_label" example:"This Year"`
}

// scopeTitler renders scope slugs as display labels.
var scopeTitler = cases.Title(language.English)

// GetRank godoc
// @ID          getRank
// @Summary     Rank a show within a time scope
// @Description Computes the show's 1-based position and percentile among the caller's rated shows in the requested scope.
// @Description Shows that never participated in a comparison rank as position 0 with percentile 0.
// @Tags        Ranks
// @Produce     json
//
// @Param       X-User-ID  header  string  true   "User ID (gateway-injected)"  example(user123)
// @Param       id         path    string  true   "Show ID (UUID)"  format(uuid)
// @Param       scope      query   string  false  "Time scope"  Enums(all-time, this-year, last-year)  default(all-time)
//
// @Success     200  {object} handlers.RankResponse
// @Failure     400  {object} handlers.ErrorResponse "Unknown scope"
// @Failure     401  {object} handlers.ErrorResponse "No resolvable user"
// @Failure     404  {object} handlers.ErrorResponse "Show not found"
// @Failure     500  {object} handlers.ErrorResponse "Internal error"
// @Router      /shows/{id}/rank [get]
func (h *Handlers) GetRank(c *gin.Context) {
	ctx := c.Request.Context()

	uid := userID(c)
	if uid == "" {
		fail(c, http.StatusUnauthorized, ErrCodeUnauthorized, "no resolvable user")
		return
	}
	showID := c.Param("id")
	scope := c.Query("scope")

	rank, err := h.rankSvc.Compute(ctx, uid, showID, scope)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidScope):
			fail(c, http.StatusBadRequest, ErrCodeBadRequest, "scope must be one of: all-time, this-year, last-year")
		case errors.Is(err, services.ErrShowNotFound):
			fail(c, http.StatusNotFound, ErrCodeNotFound, "show not found")
		default:
			fail(c, http.StatusInternalServerError, ErrCodeInternal, err.Error())
		}
		return
	}

	ok(c, http.StatusOK, RankResponse{
		Position:   rank.Position,
		Total:      rank.Total,
		Percentile: rank.Percentile,
		State:      rank.State,
		Scope:      rank.Scope,
		ScopeLabel: scopeLabel(rank.Scope),
	})
}

// scopeLabel turns a scope slug into a display label, e.g. "this-year" →
// "This Year".
func scopeLabel(scope string) string {
	return scopeTitler.String(strings.ReplaceAll(scope, "-", " "))
}
