package postgres

import (
	"context"
	"database/sql"
	"errors"

	"chimichangapp/internal/model"
	"chimichangapp/internal/repository"
)

// DirectoryPostgres is a PostgreSQL implementation of repository.UserDirectory.
// It uses database/sql with parameterized queries and contains no business logic.
type DirectoryPostgres struct {
	db *sql.DB
}

// NewDirectoryPostgres creates a new DirectoryPostgres repository.
func NewDirectoryPostgres(db *sql.DB) *DirectoryPostgres {
	return &DirectoryPostgres{db: db}
}

var _ repository.UserDirectory = (*DirectoryPostgres)(nil)

// FindByID fetches a single directory entry by its id.
func (r *DirectoryPostgres) FindByID(ctx context.Context, id string) (*model.DirectoryUser, error) {
	const q = `
		SELECT id, name
		FROM directory_users
		WHERE id = $1
	`
	row := r.db.QueryRowContext(ctx, q, id)
	var u model.DirectoryUser
	if err := row.Scan(&u.ID, &u.Name); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}
