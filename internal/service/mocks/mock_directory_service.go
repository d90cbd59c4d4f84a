package mocks

import (
	"context"

	"chimichangapp/internal/model"
	"github.com/stretchr/testify/mock"
)

type MockDirectoryService struct {
	mock.Mock
}

func (m *MockDirectoryService) Lookup(ctx context.Context, id string) (*model.DirectoryUser, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.DirectoryUser), args.Error(1)
}
