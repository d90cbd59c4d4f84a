package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"chimichangapp/internal/model"
	"chimichangapp/internal/storage"
)

// ErrSnapshotUnavailable is returned when snapshot publishing is disabled or
// no snapshot has been published yet.
var ErrSnapshotUnavailable = errors.New("spec snapshot unavailable")

// SnapshotService publishes the generated OpenAPI document to object storage
// so portals can fetch versioned specs without hitting the service.
type SnapshotService interface {
	// Publish renders the registered OpenAPI document, uploads it, and
	// returns the snapshot metadata including a presigned download URL.
	Publish(ctx context.Context) (*model.SpecSnapshot, error)

	// Open streams the published snapshot back from storage.
	Open(ctx context.Context) (io.ReadCloser, storage.ObjectInfo, error)
}

// snapshotService is a concrete implementation of SnapshotService.
// A nil store means publishing is disabled and both methods report
// ErrSnapshotUnavailable.
type snapshotService struct {
	store   storage.Storage
	readDoc func() (string, error)
	version string
	urlTTL  time.Duration
}

// NewSnapshotService constructs a new SnapshotService. readDoc renders the
// OpenAPI document; wire it to swag.ReadDoc so the published artifact is the
// same document the swagger UI serves.
func NewSnapshotService(store storage.Storage, readDoc func() (string, error), version string, urlTTL time.Duration) SnapshotService {
	return &snapshotService{
		store:   store,
		readDoc: readDoc,
		version: version,
		urlTTL:  urlTTL,
	}
}

// key is the storage location of the snapshot for the current API version.
func (s *snapshotService) key() string {
	return "specs/chimichangapp-" + s.version + ".json"
}

func (s *snapshotService) Publish(ctx context.Context) (*model.SpecSnapshot, error) {
	if s.store == nil {
		return nil, ErrSnapshotUnavailable
	}

	key := s.key()

	tracer := otel.Tracer("chimichangapp/internal/service")
	ctx, span := tracer.Start(ctx, "snapshot.publish",
		trace.WithAttributes(attribute.String("snapshot.key", key)))
	defer span.End()

	doc, err := s.readDoc()
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "render spec")
		return nil, fmt.Errorf("render spec: %w", err)
	}

	span.SetAttributes(attribute.Int("snapshot.bytes", len(doc)))

	info, err := s.store.Put(ctx, key, strings.NewReader(doc), storage.PutObjectOptions{
		Size:        int64(len(doc)),
		ContentType: "application/json",
		Metadata: map[string]string{
			"api-version": s.version,
		},
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "upload snapshot")
		return nil, fmt.Errorf("upload snapshot: %w", err)
	}

	url, err := s.store.PresignGet(ctx, key, s.urlTTL)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "presign snapshot url")
		return nil, fmt.Errorf("presign snapshot url: %w", err)
	}

	return &model.SpecSnapshot{
		Key:         key,
		Size:        info.Size,
		ETag:        info.ETag,
		URL:         url,
		PublishedAt: time.Now().UTC(),
	}, nil
}

// Open streams the stored snapshot. A missing object is reported as
// ErrSnapshotUnavailable so callers can answer 404 without knowing the
// storage backend.
func (s *snapshotService) Open(ctx context.Context) (io.ReadCloser, storage.ObjectInfo, error) {
	if s.store == nil {
		return nil, storage.ObjectInfo{}, ErrSnapshotUnavailable
	}

	rc, info, err := s.store.Get(ctx, s.key())
	if err != nil {
		if errors.Is(err, storage.ErrNotExist) {
			return nil, storage.ObjectInfo{}, ErrSnapshotUnavailable
		}
		return nil, storage.ObjectInfo{}, err
	}
	return rc, info, nil
}
