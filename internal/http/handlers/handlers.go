// Package handlers provides HTTP handler implementations for the public API.
//
// Handlers are transport-thin: they resolve the caller, validate input,
// delegate to the engine services, and translate service errors into HTTP
// results. All ranking semantics live in internal/services.
package handlers

import (
	"context"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/encorely/go-rank-backend/internal/domain"
	"github.com/encorely/go-rank-backend/internal/services"
)

// ComparisonService is the slice of services.ComparisonService the handlers
// need. Narrow interfaces keep handler tests independent of the concrete
// service wiring.
type ComparisonService interface {
	Record(ctx context.Context, userID, showA, showB, winnerID string) (*services.ComparisonResult, error)
	Replay(ctx context.Context, userID, comparisonID string) (*services.ComparisonResult, error)
	History(ctx context.Context, userID string, offset, limit int) ([]domain.Comparison, int64, error)
}

// AnchorService selects the next comparison partner for a show.
type AnchorService interface {
	Select(ctx context.Context, userID, targetID string, seed int64) (string, error)
}

// RankService computes scoped rank/percentile results.
type RankService interface {
	Compute(ctx context.Context, userID, showID, scope string) (*services.Rank, error)
}

// ShowService lists the caller's shows with rating overlays.
type ShowService interface {
	List(ctx context.Context, userID string, offset, limit int) ([]services.ShowWithRating, int64, error)
}

// Handlers bundles the API endpoints and their dependencies.
type Handlers struct {
	cmpSvc    ComparisonService
	anchorSvc AnchorService
	rankSvc   RankService
	showSvc   ShowService

	// db and idemTTL back the idempotent-replay path for POST /comparisons.
	db      *gorm.DB
	idemTTL time.Duration
}

// New constructs and returns a Handlers instance bound to the given services.
// db may be nil in tests that do not exercise idempotent replays.
func New(cmpSvc ComparisonService, anchorSvc AnchorService, rankSvc RankService, showSvc ShowService, db *gorm.DB, idemTTL time.Duration) *Handlers {
	if idemTTL <= 0 {
		idemTTL = 24 * time.Hour
	}
	return &Handlers{
		cmpSvc:    cmpSvc,
		anchorSvc: anchorSvc,
		rankSvc:   rankSvc,
		showSvc:   showSvc,
		db:        db,
		idemTTL:   idemTTL,
	}
}

// userID extracts the authenticated user id from the Gin context (set by
// upstream middleware), falling back to the "X-User-ID" header injected by
// the gateway. An empty result means the request has no resolvable owner and
// must be rejected with 401.
func userID(c *gin.Context) string {
	if v, ok := c.Get("userID"); ok {
		if s, ok := v.(string); ok && s != "" {
			return s
		}
	}
	if c != nil && c.Request != nil {
		if h := strings.TrimSpace(c.GetHeader("X-User-ID")); h != "" {
			return h
		}
	}
	return ""
}
