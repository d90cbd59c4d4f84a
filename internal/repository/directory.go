package repository

import (
	"context"

	"chimichangapp/internal/model"
)

// UserDirectory defines data access for the demo user directory.
// The reserved-id policy belongs to the service layer, so every backend
// stays a plain lookup.
type UserDirectory interface {
	// FindByID returns the directory entry for the given id.
	// A missing entry is reported as ErrNotFound.
	FindByID(ctx context.Context, id string) (*model.DirectoryUser, error)
}
