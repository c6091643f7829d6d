package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mojocode_server/internal/types"
)

func setupPostgres(t *testing.T) (*Postgres, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	return NewPostgres(db), mock, db
}

var projectRowColumns = []string{"id", "name", "description", "files", "created_at", "updated_at", "user_id"}

const filesJSON = `[{"id":"html-1","name":"index.html","content":"<html></html>","language":"html","path":"/index.html"}]`

func TestPostgres_CreateProject(t *testing.T) {
	gw, mock, db := setupPostgres(t)
	defer db.Close()
	ctx := context.Background()

	t.Run("inserts and returns the stored row", func(t *testing.T) {
		desc := "Find pets"
		created := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

		mock.ExpectQuery(`INSERT INTO projects`).
			WithArgs(
				sqlmock.AnyArg(), // id
				"Pet Finder",
				"Find pets",
				sqlmock.AnyArg(), // files JSONB
				sqlmock.AnyArg(), // created_at
				sqlmock.AnyArg(), // updated_at
				"user-1",
			).
			WillReturnRows(sqlmock.NewRows(projectRowColumns).
				AddRow("p-1", "Pet Finder", "Find pets", []byte(filesJSON), created, created, "user-1"))

		p, err := gw.CreateProject(ctx, types.Project{
			Name:        "Pet Finder",
			Description: &desc,
			UserID:      "user-1",
			Files: []types.ProjectFile{
				{ID: "html-1", Name: "index.html", Content: "<html></html>", Language: "html", Path: "/index.html"},
			},
		})
		require.NoError(t, err)
		assert.Equal(t, "p-1", p.ID)
		require.NotNil(t, p.Description)
		assert.Equal(t, "Find pets", *p.Description)
		require.Len(t, p.Files, 1)
		assert.Equal(t, "<html></html>", p.Files[0].Content)
		assert.Equal(t, created, p.CreatedAt)

		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("nil description is stored as NULL", func(t *testing.T) {
		now := time.Now()
		mock.ExpectQuery(`INSERT INTO projects`).
			WithArgs(sqlmock.AnyArg(), "Blank", nil, sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), "user-1").
			WillReturnRows(sqlmock.NewRows(projectRowColumns).
				AddRow("p-2", "Blank", nil, []byte(`[]`), now, now, "user-1"))

		p, err := gw.CreateProject(ctx, types.Project{Name: "Blank", UserID: "user-1"})
		require.NoError(t, err)
		assert.Nil(t, p.Description)
		assert.NotNil(t, p.Files)
		assert.Empty(t, p.Files)

		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unique violation", func(t *testing.T) {
		mock.ExpectQuery(`INSERT INTO projects`).
			WillReturnError(&pq.Error{Code: "23505"})

		_, err := gw.CreateProject(ctx, types.Project{ID: "dup", Name: "x", UserID: "user-1"})
		require.Error(t, err)
		assert.ErrorIs(t, err, types.ErrDataStore)
		assert.Contains(t, err.Error(), "already exists")

		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("driver error", func(t *testing.T) {
		mock.ExpectQuery(`INSERT INTO projects`).
			WillReturnError(errors.New("connection reset"))

		_, err := gw.CreateProject(ctx, types.Project{Name: "x", UserID: "user-1"})
		assert.ErrorIs(t, err, types.ErrDataStore)

		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestPostgres_ListProjects(t *testing.T) {
	gw, mock, db := setupPostgres(t)
	defer db.Close()

	t.Run("returns rows in query order", func(t *testing.T) {
		newer := time.Now()
		older := newer.Add(-time.Hour)
		mock.ExpectQuery(`SELECT (.+) FROM projects WHERE user_id = \$1 ORDER BY updated_at DESC`).
			WithArgs("user-1").
			WillReturnRows(sqlmock.NewRows(projectRowColumns).
				AddRow("p-2", "Second", nil, []byte(`[]`), older, newer, "user-1").
				AddRow("p-1", "First", "d", []byte(filesJSON), older, older, "user-1"))

		out, err := gw.ListProjects(context.Background(), "user-1")
		require.NoError(t, err)
		require.Len(t, out, 2)
		assert.Equal(t, "p-2", out[0].ID)
		assert.Equal(t, "p-1", out[1].ID)
		assert.Len(t, out[1].Files, 1)

		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("no projects", func(t *testing.T) {
		mock.ExpectQuery(`SELECT (.+) FROM projects`).
			WithArgs("nobody").
			WillReturnRows(sqlmock.NewRows(projectRowColumns))

		out, err := gw.ListProjects(context.Background(), "nobody")
		require.NoError(t, err)
		assert.NotNil(t, out)
		assert.Empty(t, out)

		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("corrupt files column", func(t *testing.T) {
		now := time.Now()
		mock.ExpectQuery(`SELECT (.+) FROM projects`).
			WithArgs("user-1").
			WillReturnRows(sqlmock.NewRows(projectRowColumns).
				AddRow("p-1", "First", nil, []byte(`{not json`), now, now, "user-1"))

		_, err := gw.ListProjects(context.Background(), "user-1")
		assert.ErrorIs(t, err, types.ErrDataStore)

		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestPostgres_GetProject(t *testing.T) {
	gw, mock, db := setupPostgres(t)
	defer db.Close()

	t.Run("found", func(t *testing.T) {
		now := time.Now()
		mock.ExpectQuery(`SELECT (.+) FROM projects WHERE id = \$1`).
			WithArgs("p-1").
			WillReturnRows(sqlmock.NewRows(projectRowColumns).
				AddRow("p-1", "First", nil, []byte(filesJSON), now, now, "user-1"))

		p, err := gw.GetProject(context.Background(), "p-1")
		require.NoError(t, err)
		assert.Equal(t, "First", p.Name)

		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery(`SELECT (.+) FROM projects WHERE id = \$1`).
			WithArgs("missing").
			WillReturnError(sql.ErrNoRows)

		_, err := gw.GetProject(context.Background(), "missing")
		assert.ErrorIs(t, err, types.ErrNotFound)
		assert.NotErrorIs(t, err, types.ErrDataStore)

		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestPostgres_UpdateProject(t *testing.T) {
	gw, mock, db := setupPostgres(t)
	defer db.Close()

	t.Run("updates name, description, files and updated_at", func(t *testing.T) {
		updated := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
		mock.ExpectQuery(`UPDATE projects SET name = \$2, description = \$3, files = \$4, updated_at = \$5 WHERE id = \$1`).
			WithArgs("p-1", "Renamed", nil, sqlmock.AnyArg(), updated).
			WillReturnRows(sqlmock.NewRows(projectRowColumns).
				AddRow("p-1", "Renamed", nil, []byte(`[]`), updated.Add(-time.Hour), updated, "user-1"))

		p, err := gw.UpdateProject(context.Background(), types.Project{ID: "p-1", Name: "Renamed", UpdatedAt: updated})
		require.NoError(t, err)
		assert.Equal(t, "Renamed", p.Name)
		assert.Equal(t, updated, p.UpdatedAt)

		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing row", func(t *testing.T) {
		mock.ExpectQuery(`UPDATE projects`).
			WillReturnError(sql.ErrNoRows)

		_, err := gw.UpdateProject(context.Background(), types.Project{ID: "gone", Name: "x"})
		assert.ErrorIs(t, err, types.ErrNotFound)

		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestPostgres_DeleteProject(t *testing.T) {
	gw, mock, db := setupPostgres(t)
	defer db.Close()

	t.Run("deleted", func(t *testing.T) {
		mock.ExpectExec(`DELETE FROM projects WHERE id = \$1`).
			WithArgs("p-1").
			WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, gw.DeleteProject(context.Background(), "p-1"))
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("nothing to delete", func(t *testing.T) {
		mock.ExpectExec(`DELETE FROM projects`).
			WithArgs("p-1").
			WillReturnResult(sqlmock.NewResult(0, 0))

		assert.ErrorIs(t, gw.DeleteProject(context.Background(), "p-1"), types.ErrNotFound)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("driver error", func(t *testing.T) {
		mock.ExpectExec(`DELETE FROM projects`).
			WillReturnError(errors.New("timeout"))

		assert.ErrorIs(t, gw.DeleteProject(context.Background(), "p-1"), types.ErrDataStore)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestPostgres_EnsureSchema(t *testing.T) {
	gw, mock, db := setupPostgres(t)
	defer db.Close()

	mock.ExpectExec(`CREATE TABLE IF NOT EXISTS profiles`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, gw.EnsureSchema(context.Background()))
	require.NoError(t, mock.ExpectationsWereMet())
}
