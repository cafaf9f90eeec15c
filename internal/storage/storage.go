package storage

import (
	"context"
	"errors"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Default expiry duration for presigned URLs
const DefaultPresignedURLExpiry = 15 * time.Minute

// FileStorage defines the interface for object storage operations.
type FileStorage interface {
	// GeneratePresignedUploadURL creates a temporary URL that allows PUT requests
	// for uploading an object directly to the storage provider.
	GeneratePresignedUploadURL(ctx context.Context, objectKey string, contentType string, expires time.Duration) (string, error)

	// GeneratePresignedDownloadURL creates a temporary URL that allows GET requests
	// for downloading/viewing an object directly from the storage provider.
	GeneratePresignedDownloadURL(ctx context.Context, objectKey string, expires time.Duration) (string, error)

	// StatObject returns metadata of a stored object, or ErrObjectNotFound.
	StatObject(ctx context.Context, objectKey string) (*ObjectMetadata, error)

	// DeleteObject removes an object from the storage provider.
	DeleteObject(ctx context.Context, objectKey string) error
}

// ObjectMetadata describes an object already present in the bucket.
type ObjectMetadata struct {
	Size         int64
	ContentType  string
	LastModified time.Time
}

var (
	ErrObjectNotFound = errors.New("object not found in storage")
)

// ProgressPhotoKey builds the object key of a new progress photo:
// progress/<userID>/<yyyy-mm-dd>/<uuid><ext>. The extension comes from fileName, lowercased.
func ProgressPhotoKey(userID string, day time.Time, fileName string) string {
	ext := strings.ToLower(path.Ext(fileName))
	return fmt.Sprintf("progress/%s/%s/%s%s", userID, day.UTC().Format("2006-01-02"), uuid.NewString(), ext)
}

// OwnsKey reports whether objectKey lies under the user's progress prefix.
func OwnsKey(userID, objectKey string) bool {
	return strings.HasPrefix(objectKey, "progress/"+userID+"/") && !strings.Contains(objectKey, "..")
}
