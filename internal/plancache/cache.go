package plancache

import (
	"context"
	"time"

	"mojocode_server/internal/types"
)

// DefaultTTL is how long an unapproved plan is kept.
const DefaultTTL = time.Hour

// Cache parks a parsed plan between the plan step and the user's approval.
// Get and Delete report types.ErrPlanNotFound for unknown, expired or foreign plans.
type Cache interface {
	Put(ctx context.Context, userID string, plan types.ProjectPlan) (types.ProjectPlan, error)
	Get(ctx context.Context, userID, planID string) (types.ProjectPlan, error)
	Delete(ctx context.Context, userID, planID string) error
	// Pending lists the ids of the user's unexpired plans, sorted.
	Pending(ctx context.Context, userID string) ([]string, error)
}

type entry struct {
	UserID    string            `json:"user_id"`
	Plan      types.ProjectPlan `json:"plan"`
	ExpiresAt time.Time         `json:"expires_at"`
}
