package service

import (
	"context"
	"errors"

	"chimichangapp/internal/model"
	"chimichangapp/internal/repository"
)

var (
	ErrIDRequired   = errors.New("id is required")
	ErrReservedID   = errors.New("id is reserved")
	ErrUserNotFound = errors.New("user not found")
)

// reservedIDs are ids the directory refuses to expose.
var reservedIDs = map[string]struct{}{
	"007": {},
}

// DirectoryService defines the use cases for the demo user directory.
type DirectoryService interface {
	// Lookup resolves a directory id to its entry.
	// Empty id → ErrIDRequired; reserved id → ErrReservedID; unknown id →
	// ErrUserNotFound. Everything else passes through from the repository.
	Lookup(ctx context.Context, id string) (*model.DirectoryUser, error)
}

// directoryService is a concrete implementation of DirectoryService.
type directoryService struct {
	repo repository.UserDirectory
}

// NewDirectoryService constructs a new DirectoryService.
func NewDirectoryService(repo repository.UserDirectory) DirectoryService {
	return &directoryService{repo: repo}
}

func (s *directoryService) Lookup(ctx context.Context, id string) (*model.DirectoryUser, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	// Reserved ids are refused before the repository is consulted.
	if _, reserved := reservedIDs[id]; reserved {
		return nil, ErrReservedID
	}
	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return u, nil
}
