// Package memory provides the default in-memory user directory backed by a
// fixed five-entry table. The postgres migration seeds the same rows, so
// both backends answer identically.
package memory

import (
	"context"

	"chimichangapp/internal/model"
	"chimichangapp/internal/repository"
)

// DefaultEntries is the demo directory content: id → display name.
var DefaultEntries = map[string]string{
	"001": "Wai Foong",
	"002": "Jane",
	"003": "Jessie",
	"004": "Hardy",
	"005": "Emily",
}

// UserDirectory is an in-memory repository.UserDirectory. The table is
// fixed after construction, so lookups need no locking.
type UserDirectory struct {
	entries map[string]string
}

// NewUserDirectory builds a directory over the given table.
// Passing nil selects DefaultEntries.
func NewUserDirectory(entries map[string]string) *UserDirectory {
	if entries == nil {
		entries = DefaultEntries
	}
	return &UserDirectory{entries: entries}
}

var _ repository.UserDirectory = (*UserDirectory)(nil)

// FindByID looks up a single entry by id.
func (r *UserDirectory) FindByID(_ context.Context, id string) (*model.DirectoryUser, error) {
	name, ok := r.entries[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &model.DirectoryUser{ID: id, Name: name}, nil
}
