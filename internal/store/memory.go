package store

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"mojocode_server/internal/types"
)

// Memory is a process-local Gateway used when no database is configured.
type Memory struct {
	mu       sync.RWMutex
	projects map[string]types.Project
}

func NewMemory() *Memory {
	return &Memory{projects: make(map[string]types.Project)}
}

func (m *Memory) CreateProject(_ context.Context, p types.Project) (types.Project, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	if _, exists := m.projects[p.ID]; exists {
		return types.Project{}, dataStoreErr("create project", fmt.Errorf("project %s already exists", p.ID))
	}
	now := time.Now().UTC()
	if p.CreatedAt.IsZero() {
		p.CreatedAt = now
	}
	if p.UpdatedAt.IsZero() {
		p.UpdatedAt = p.CreatedAt
	}
	if p.Files == nil {
		p.Files = []types.ProjectFile{}
	}
	m.projects[p.ID] = p.Clone()
	return p.Clone(), nil
}

func (m *Memory) ListProjects(_ context.Context, userID string) ([]types.Project, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]types.Project, 0, 16)
	for _, p := range m.projects {
		if p.UserID == userID {
			out = append(out, p.Clone())
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].UpdatedAt.After(out[j].UpdatedAt)
	})
	return out, nil
}

func (m *Memory) GetProject(_ context.Context, id string) (types.Project, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	p, ok := m.projects[id]
	if !ok {
		return types.Project{}, fmt.Errorf("project %s: %w", id, types.ErrNotFound)
	}
	return p.Clone(), nil
}

func (m *Memory) UpdateProject(_ context.Context, p types.Project) (types.Project, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	stored, ok := m.projects[p.ID]
	if !ok {
		return types.Project{}, fmt.Errorf("project %s: %w", p.ID, types.ErrNotFound)
	}
	stored.Name = p.Name
	stored.Description = p.Description
	stored.Files = p.Files
	if stored.Files == nil {
		stored.Files = []types.ProjectFile{}
	}
	stored.UpdatedAt = p.UpdatedAt
	if stored.UpdatedAt.IsZero() {
		stored.UpdatedAt = time.Now().UTC()
	}
	m.projects[p.ID] = stored.Clone()
	return stored.Clone(), nil
}

func (m *Memory) DeleteProject(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.projects[id]; !ok {
		return fmt.Errorf("project %s: %w", id, types.ErrNotFound)
	}
	delete(m.projects, id)
	return nil
}
