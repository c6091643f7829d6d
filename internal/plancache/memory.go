package plancache

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"mojocode_server/internal/types"
)

// Memory is the in-process Cache used when no redis address is configured.
type Memory struct {
	mu      sync.Mutex
	ttl     time.Duration
	now     func() time.Time
	entries map[string]entry
}

func NewMemory(ttl time.Duration) *Memory {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Memory{ttl: ttl, now: time.Now, entries: make(map[string]entry)}
}

func (m *Memory) Put(_ context.Context, userID string, plan types.ProjectPlan) (types.ProjectPlan, error) {
	if plan.ID == "" {
		plan.ID = uuid.New().String()
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	m.evictLocked()
	m.entries[plan.ID] = entry{UserID: userID, Plan: plan, ExpiresAt: m.now().Add(m.ttl)}
	return plan, nil
}

func (m *Memory) Get(_ context.Context, userID, planID string) (types.ProjectPlan, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	e, ok := m.entries[planID]
	if !ok || e.UserID != userID {
		return types.ProjectPlan{}, types.ErrPlanNotFound
	}
	if !m.now().Before(e.ExpiresAt) {
		delete(m.entries, planID)
		return types.ProjectPlan{}, types.ErrPlanNotFound
	}
	return e.Plan, nil
}

func (m *Memory) Delete(ctx context.Context, userID, planID string) error {
	if _, err := m.Get(ctx, userID, planID); err != nil {
		return err
	}
	m.mu.Lock()
	delete(m.entries, planID)
	m.mu.Unlock()
	return nil
}

// Pending lists the ids of a user's plans that have not expired yet, sorted.
func (m *Memory) Pending(_ context.Context, userID string) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.evictLocked()
	out := make([]string, 0)
	for id, e := range m.entries {
		if e.UserID == userID {
			out = append(out, id)
		}
	}
	sort.Strings(out)
	return out, nil
}

func (m *Memory) evictLocked() {
	now := m.now()
	for id, e := range m.entries {
		if !now.Before(e.ExpiresAt) {
			delete(m.entries, id)
		}
	}
}
