// Show HTTP handler.
//
// This file exposes the read-only listing that feeds the app's comparison
// picker:
//   - GET /shows (paginated, with rating overlays)
//
// Show creation and editing live in the host application, not here.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/encorely/go-rank-backend/internal/services"
	"github.com/encorely/go-rank-backend/internal/utils"
)

// ListShowsResponse is one page of the caller's shows with rating overlays.
type ListShowsResponse struct {
	Items    []services.ShowWithRating `json:"items"`
	Page     int                       `json:"page"`
	PageSize int                       `json:"page_size"`
	Total    int64                     `json:"total"`
}

// ListShows godoc
// @ID          listShows
// @Summary     List the caller's shows
// @Description Returns a paginated list of the caller's logged shows, newest performance first, each overlaid with its current rating and confidence state.
// @Tags        Shows
// @Produce     json
//
// @Param       X-User-ID  header  string  true  "User ID (gateway-injected)"  example(user123)
// @Param       page       query   int     false "Page number"     minimum(1) default(1)
// @Param       page_size  query   int     false "Items per page"  minimum(1) maximum(100) default(20)
//
// @Success     200  {object} handlers.ListShowsResponse
// @Failure     401  {object} handlers.ErrorResponse "No resolvable user"
// @Failure     500  {object} handlers.ErrorResponse "Internal error"
// @Router      /shows [get]
func (h *Handlers) ListShows(c *gin.Context) {
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

	items, total, err := h.showSvc.List(ctx, uid, (page-1)*pageSize, pageSize)
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeListFailed, err.Error())
		return
	}

	ok(c, http.StatusOK, ListShowsResponse{
		Items:    items,
		Page:     page,
		PageSize: pageSize,
		Total:    total,
	})
}
