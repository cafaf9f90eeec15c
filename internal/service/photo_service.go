package service

import (
	"alcyxob/fittrack/internal/domain"
	"alcyxob/fittrack/internal/repository"
	"alcyxob/fittrack/internal/stats"
	"alcyxob/fittrack/internal/storage"
	"context"
	"errors"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	ErrPhotoNotFound            = errors.New("photo not found")
	ErrPhotoAccessDenied        = errors.New("photo does not belong to this user")
	ErrUploadURLError           = errors.New("failed to generate upload URL")
	ErrUploadNotFound           = errors.New("uploaded object not found in storage")
	ErrUploadConfirmationFailed = errors.New("failed to confirm upload")
)

// PhotoUploadRequest asks for a presigned URL to upload one progress photo.
type PhotoUploadRequest struct {
	Day         time.Time
	FileName    string `validate:"required,max=200"`
	ContentType string `validate:"required,oneof=image/jpeg image/png image/heic image/webp"`
}

// UploadURLResponse structure for returning URL and object key
type UploadURLResponse struct {
	UploadURL string    `json:"uploadUrl"`
	ObjectKey string    `json:"objectKey"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// PhotoWithURL is stored photo metadata plus a temporary download link.
type PhotoWithURL struct {
	domain.ProgressPhoto
	DownloadURL string `json:"downloadUrl"`
}

type PhotoService interface {
	RequestUploadURL(ctx context.Context, userID primitive.ObjectID, req PhotoUploadRequest) (*UploadURLResponse, error)
	// ConfirmUpload records metadata once the client has PUT the object.
	ConfirmUpload(ctx context.Context, userID primitive.ObjectID, objectKey, fileName string) (*domain.ProgressPhoto, error)
	ListPhotos(ctx context.Context, userID primitive.ObjectID) ([]PhotoWithURL, error)
	DeletePhoto(ctx context.Context, userID, photoID primitive.ObjectID) error
}

type photoService struct {
	photoRepo   repository.PhotoRepository
	fileStorage storage.FileStorage
	now         func() time.Time
}

// NewPhotoService creates a new PhotoService.
func NewPhotoService(photoRepo repository.PhotoRepository, fileStorage storage.FileStorage) PhotoService {
	return &photoService{photoRepo: photoRepo, fileStorage: fileStorage, now: time.Now}
}

func (s *photoService) RequestUploadURL(ctx context.Context, userID primitive.ObjectID, req PhotoUploadRequest) (*UploadURLResponse, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	now := s.now().UTC()
	day := req.Day
	if day.IsZero() {
		day = now
	}
	if stats.Day(day.UTC()).After(stats.Day(now)) {
		return nil, invalidf("cannot upload a photo for a future day")
	}

	objectKey := storage.ProgressPhotoKey(userID.Hex(), day, req.FileName)
	uploadURL, err := s.fileStorage.GeneratePresignedUploadURL(ctx, objectKey, req.ContentType, storage.DefaultPresignedURLExpiry)
	if err != nil {
		log.Error().Err(err).Str("user_id", userID.Hex()).Msg("failed to presign photo upload")
		return nil, ErrUploadURLError
	}
	return &UploadURLResponse{
		UploadURL: uploadURL,
		ObjectKey: objectKey,
		ExpiresAt: now.Add(storage.DefaultPresignedURLExpiry),
	}, nil
}

func (s *photoService) ConfirmUpload(ctx context.Context, userID primitive.ObjectID, objectKey, fileName string) (*domain.ProgressPhoto, error) {
	// 1. The key must be one we handed out to this user
	if !storage.OwnsKey(userID.Hex(), objectKey) {
		return nil, ErrPhotoAccessDenied
	}
	day, err := dayFromPhotoKey(objectKey)
	if err != nil {
		return nil, err
	}

	// 2. The object must exist in storage
	meta, err := s.fileStorage.StatObject(ctx, objectKey)
	if err != nil {
		if errors.Is(err, storage.ErrObjectNotFound) {
			return nil, ErrUploadNotFound
		}
		log.Error().Err(err).Str("user_id", userID.Hex()).Str("key", objectKey).Msg("failed to stat uploaded photo")
		return nil, ErrUploadConfirmationFailed
	}

	// 3. Save metadata
	photo := &domain.ProgressPhoto{
		UserID:      userID,
		Date:        day,
		S3ObjectKey: objectKey,
		FileName:    fileName,
		ContentType: meta.ContentType,
		Size:        meta.Size,
	}
	id, err := s.photoRepo.Create(ctx, photo)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, invalidf("upload already confirmed")
		}
		log.Error().Err(err).Str("user_id", userID.Hex()).Msg("failed to save photo metadata")
		return nil, ErrUploadConfirmationFailed
	}
	photo.ID = id
	return photo, nil
}

// dayFromPhotoKey extracts the calendar day from progress/<user>/<day>/<file>.
func dayFromPhotoKey(objectKey string) (time.Time, error) {
	parts := strings.Split(objectKey, "/")
	if len(parts) != 4 {
		return time.Time{}, invalidf("malformed object key")
	}
	day, err := time.Parse(stats.DateFormat, parts[2])
	if err != nil {
		return time.Time{}, invalidf("malformed object key")
	}
	return day, nil
}

func (s *photoService) ListPhotos(ctx context.Context, userID primitive.ObjectID) ([]PhotoWithURL, error) {
	photos, err := s.photoRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	out := make([]PhotoWithURL, 0, len(photos))
	for _, p := range photos {
		url, err := s.fileStorage.GeneratePresignedDownloadURL(ctx, p.S3ObjectKey, storage.DefaultPresignedURLExpiry)
		if err != nil {
			// Skip the link, keep the metadata.
			log.Warn().Err(err).Str("user_id", userID.Hex()).Str("key", p.S3ObjectKey).Msg("failed to presign photo download")
		}
		out = append(out, PhotoWithURL{ProgressPhoto: p, DownloadURL: url})
	}
	return out, nil
}

// DeletePhoto removes the stored object and then its metadata. A storage
// failure is logged and the metadata is still removed.
func (s *photoService) DeletePhoto(ctx context.Context, userID, photoID primitive.ObjectID) error {
	photo, err := s.photoRepo.GetByID(ctx, photoID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrPhotoNotFound
		}
		return err
	}
	if photo.UserID != userID {
		return ErrPhotoAccessDenied
	}

	if err := s.fileStorage.DeleteObject(ctx, photo.S3ObjectKey); err != nil && !errors.Is(err, storage.ErrObjectNotFound) {
		log.Warn().Err(err).Str("user_id", userID.Hex()).Str("key", photo.S3ObjectKey).Msg("failed to delete photo object")
	}

	if err := s.photoRepo.Delete(ctx, photoID, userID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrPhotoNotFound
		}
		return err
	}
	return nil
}
