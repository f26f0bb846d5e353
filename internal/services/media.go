package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"invitepages/internal/domain"
)

type mediaService struct {
	storage        domain.MediaStorage
	contextTimeout time.Duration
}

// NewMediaService creates a MediaService backed by the given storage.
func NewMediaService(storage domain.MediaStorage, timeout time.Duration) domain.MediaService {
	return &mediaService{storage: storage, contextTimeout: timeout}
}

// Upload validates the payload locally and, only if it passes, stores it
// and returns the public URL. Oversized or wrong-type payloads are
// rejected before any network call.
func (s *mediaService) Upload(ctx context.Context, upload *domain.MediaUpload) (string, error) {
	if upload == nil {
		return "", domain.NewValidationError("file", "is required")
	}
	ext, ok := domain.AllowedMediaTypes[upload.ContentType]
	if !ok {
		return "", domain.NewValidationError("content_type", fmt.Sprintf("%q is not an accepted image type", upload.ContentType))
	}
	if upload.Size > domain.MaxMediaSizeBytes || int64(len(upload.Data)) > domain.MaxMediaSizeBytes {
		return "", domain.NewValidationError("file", "exceeds the 5 MiB limit")
	}
	if len(upload.Data) == 0 {
		return "", domain.NewValidationError("file", "is empty")
	}

	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	key := uuid.NewString() + ext
	url, err := s.storage.Put(ctx, key, upload.ContentType, upload.Data)
	if err != nil {
		return "", fmt.Errorf("store media: %w", err)
	}
	return url, nil
}
