package domain

import "context"

// Media upload limits. Violations are rejected before any network call.
const (
	MaxMediaSizeBytes = 5 << 20 // 5 MiB
)

// AllowedMediaTypes maps accepted MIME types to their object-key file
// extensions.
var AllowedMediaTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
}

// MediaUpload is a binary payload submitted for storage.
type MediaUpload struct {
	Filename    string
	ContentType string
	Size        int64
	Data        []byte
}

// MediaStorage stores a media object and returns its publicly resolvable
// URL (infrastructure port, e.g. S3).
type MediaStorage interface {
	Put(ctx context.Context, key, contentType string, data []byte) (url string, err error)
}

// MediaService validates and stores uploaded media.
type MediaService interface {
	// Upload returns the public URL of the stored object, or
	// *ValidationError for oversized or wrong-type payloads.
	Upload(ctx context.Context, upload *MediaUpload) (string, error)
}
