package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"mojocode_server/internal/types"
)

// Postgres stores projects in the projects table, with files as a JSONB array.
type Postgres struct {
	db *sql.DB
}

func NewPostgres(db *sql.DB) *Postgres {
	return &Postgres{db: db}
}

// Connect opens and pings a postgres connection pool.
func Connect(ctx context.Context, databaseURL string) (*sql.DB, error) {
	db, err := sql.Open("postgres", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	return db, nil
}

// EnsureSchema creates the tables the server reads and writes if they are missing.
func (s *Postgres) EnsureSchema(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, schema); err != nil {
		return dataStoreErr("ensure schema", err)
	}
	return nil
}

const projectColumns = `id, name, description, files, created_at, updated_at, user_id`

func (s *Postgres) CreateProject(ctx context.Context, p types.Project) (types.Project, error) {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	if p.CreatedAt.IsZero() {
		p.CreatedAt = now
	}
	if p.UpdatedAt.IsZero() {
		p.UpdatedAt = p.CreatedAt
	}
	files, err := encodeFiles(p.Files)
	if err != nil {
		return types.Project{}, dataStoreErr("create project", err)
	}

	q := `
INSERT INTO projects (id, name, description, files, created_at, updated_at, user_id)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING ` + projectColumns + `;
`
	row := s.db.QueryRowContext(ctx, q, p.ID, p.Name, nullString(p.Description), files, p.CreatedAt, p.UpdatedAt, p.UserID)
	out, err := scanProject(row)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return types.Project{}, dataStoreErr("create project", fmt.Errorf("project %s already exists", p.ID))
		}
		return types.Project{}, dataStoreErr("create project", err)
	}
	return out, nil
}

func (s *Postgres) ListProjects(ctx context.Context, userID string) ([]types.Project, error) {
	q := `
SELECT ` + projectColumns + `
FROM projects
WHERE user_id = $1
ORDER BY updated_at DESC;
`
	rows, err := s.db.QueryContext(ctx, q, userID)
	if err != nil {
		return nil, dataStoreErr("list projects", err)
	}
	defer rows.Close()

	out := make([]types.Project, 0, 16)
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, dataStoreErr("list projects", err)
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, dataStoreErr("list projects", err)
	}
	return out, nil
}

func (s *Postgres) GetProject(ctx context.Context, id string) (types.Project, error) {
	q := `SELECT ` + projectColumns + ` FROM projects WHERE id = $1;`
	p, err := scanProject(s.db.QueryRowContext(ctx, q, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return types.Project{}, fmt.Errorf("project %s: %w", id, types.ErrNotFound)
		}
		return types.Project{}, dataStoreErr("get project", err)
	}
	return p, nil
}

// UpdateProject overwrites name, description, files and updated_at of the row with p.ID.
func (s *Postgres) UpdateProject(ctx context.Context, p types.Project) (types.Project, error) {
	files, err := encodeFiles(p.Files)
	if err != nil {
		return types.Project{}, dataStoreErr("update project", err)
	}
	if p.UpdatedAt.IsZero() {
		p.UpdatedAt = time.Now().UTC()
	}

	q := `
UPDATE projects
SET name = $2, description = $3, files = $4, updated_at = $5
WHERE id = $1
RETURNING ` + projectColumns + `;
`
	out, err := scanProject(s.db.QueryRowContext(ctx, q, p.ID, p.Name, nullString(p.Description), files, p.UpdatedAt))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return types.Project{}, fmt.Errorf("project %s: %w", p.ID, types.ErrNotFound)
		}
		return types.Project{}, dataStoreErr("update project", err)
	}
	return out, nil
}

func (s *Postgres) DeleteProject(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM projects WHERE id = $1;`, id)
	if err != nil {
		return dataStoreErr("delete project", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return dataStoreErr("delete project", err)
	}
	if n == 0 {
		return fmt.Errorf("project %s: %w", id, types.ErrNotFound)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProject(row rowScanner) (types.Project, error) {
	var (
		p           types.Project
		description sql.NullString
		files       []byte
	)
	if err := row.Scan(&p.ID, &p.Name, &description, &files, &p.CreatedAt, &p.UpdatedAt, &p.UserID); err != nil {
		return types.Project{}, err
	}
	if description.Valid {
		d := description.String
		p.Description = &d
	}
	p.Files = []types.ProjectFile{}
	if len(files) > 0 {
		if err := json.Unmarshal(files, &p.Files); err != nil {
			return types.Project{}, fmt.Errorf("decode files of project %s: %w", p.ID, err)
		}
	}
	return p, nil
}

func encodeFiles(files []types.ProjectFile) ([]byte, error) {
	if files == nil {
		files = []types.ProjectFile{}
	}
	return json.Marshal(files)
}

func nullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

func dataStoreErr(op string, err error) error {
	return fmt.Errorf("%w: %s: %w", types.ErrDataStore, op, err)
}
