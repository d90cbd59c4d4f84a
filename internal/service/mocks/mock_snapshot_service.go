package mocks

import (
	"context"
	"io"

	"chimichangapp/internal/model"
	"chimichangapp/internal/storage"
	"github.com/stretchr/testify/mock"
)

type MockSnapshotService struct {
	mock.Mock
}

func (m *MockSnapshotService) Publish(ctx context.Context) (*model.SpecSnapshot, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.SpecSnapshot), args.Error(1)
}

func (m *MockSnapshotService) Open(ctx context.Context) (io.ReadCloser, storage.ObjectInfo, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Get(1).(storage.ObjectInfo), args.Error(2)
	}
	return args.Get(0).(io.ReadCloser), args.Get(1).(storage.ObjectInfo), args.Error(2)
}
