package plancache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"mojocode_server/internal/types"
)

const (
	planKeyPrefix   = "plan:"       // plan:{plan_id} -> JSON entry
	userPlansPrefix = "plans:user:" // plans:user:{user_id} -> set of plan ids
)

// Redis keeps plans as JSON values with a TTL.
type Redis struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedis(client *redis.Client, ttl time.Duration) *Redis {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Redis{client: client, ttl: ttl}
}

func (r *Redis) Put(ctx context.Context, userID string, plan types.ProjectPlan) (types.ProjectPlan, error) {
	if plan.ID == "" {
		plan.ID = uuid.New().String()
	}
	data, err := json.Marshal(entry{UserID: userID, Plan: plan})
	if err != nil {
		return types.ProjectPlan{}, fmt.Errorf("failed to marshal plan: %w", err)
	}

	userKey := userPlansPrefix + userID
	pipe := r.client.TxPipeline()
	pipe.Set(ctx, planKeyPrefix+plan.ID, data, r.ttl)
	pipe.SAdd(ctx, userKey, plan.ID)
	pipe.Expire(ctx, userKey, r.ttl)
	if _, err := pipe.Exec(ctx); err != nil {
		return types.ProjectPlan{}, fmt.Errorf("%w: store plan: %w", types.ErrDataStore, err)
	}
	return plan, nil
}

func (r *Redis) Get(ctx context.Context, userID, planID string) (types.ProjectPlan, error) {
	data, err := r.client.Get(ctx, planKeyPrefix+planID).Bytes()
	if errors.Is(err, redis.Nil) {
		return types.ProjectPlan{}, types.ErrPlanNotFound
	}
	if err != nil {
		return types.ProjectPlan{}, fmt.Errorf("%w: get plan: %w", types.ErrDataStore, err)
	}

	var e entry
	if err := json.Unmarshal(data, &e); err != nil {
		return types.ProjectPlan{}, fmt.Errorf("%w: failed to unmarshal plan: %w", types.ErrDataStore, err)
	}
	if e.UserID != userID {
		return types.ProjectPlan{}, types.ErrPlanNotFound
	}
	return e.Plan, nil
}

func (r *Redis) Delete(ctx context.Context, userID, planID string) error {
	if _, err := r.Get(ctx, userID, planID); err != nil {
		return err
	}
	pipe := r.client.TxPipeline()
	pipe.Del(ctx, planKeyPrefix+planID)
	pipe.SRem(ctx, userPlansPrefix+userID, planID)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("%w: delete plan: %w", types.ErrDataStore, err)
	}
	return nil
}

// Pending lists the ids of a user's plans that have not expired yet, dropping
// stale members from the user's set as it goes.
func (r *Redis) Pending(ctx context.Context, userID string) ([]string, error) {
	userKey := userPlansPrefix + userID
	ids, err := r.client.SMembers(ctx, userKey).Result()
	if err != nil {
		return nil, fmt.Errorf("%w: list plans: %w", types.ErrDataStore, err)
	}

	out := make([]string, 0, len(ids))
	for _, id := range ids {
		n, err := r.client.Exists(ctx, planKeyPrefix+id).Result()
		if err != nil {
			return nil, fmt.Errorf("%w: list plans: %w", types.ErrDataStore, err)
		}
		if n == 0 {
			r.client.SRem(ctx, userKey, id)
			continue
		}
		out = append(out, id)
	}
	sort.Strings(out)
	return out, nil
}
