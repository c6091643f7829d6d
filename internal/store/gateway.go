package store

import (
	"context"

	"mojocode_server/internal/types"
)

// Gateway is the remote record store for projects. Implementations wrap every
// backend failure in types.ErrDataStore and report missing rows as types.ErrNotFound.
type Gateway interface {
	CreateProject(ctx context.Context, p types.Project) (types.Project, error)
	ListProjects(ctx context.Context, userID string) ([]types.Project, error)
	GetProject(ctx context.Context, id string) (types.Project, error)
	UpdateProject(ctx context.Context, p types.Project) (types.Project, error)
	DeleteProject(ctx context.Context, id string) error
}
