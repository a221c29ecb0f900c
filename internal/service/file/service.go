package file

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/emscore/ems-backend-go/internal/pkg/facematch"
	"github.com/emscore/ems-backend-go/internal/pkg/storage"
)

type FileService interface {
	// UploadReferencePhoto stores an employee face photo in the reference
	// photo store and returns the object key
	UploadReferencePhoto(ctx context.Context, employeeID string, file io.Reader, filename string) (string, error)

	// UploadDocument stores an onboarding document and returns its path
	UploadDocument(ctx context.Context, employeeID string, file io.Reader, filename string, documentType string) (string, error)

	// DeleteReferencePhoto removes a face photo from the reference store
	DeleteReferencePhoto(ctx context.Context, key string) error

	// DeleteFile removes an uploaded document
	DeleteFile(ctx context.Context, path string) error

	// GetFileURL resolves a stored document path to a URL
	GetFileURL(ctx context.Context, path string, expiry time.Duration) (string, error)
}

type fileServiceImpl struct {
	storage     storage.FileStorage
	photos      *facematch.ObjectStore
	photoPrefix string
}

func NewFileService(fileStorage storage.FileStorage, photos *facematch.ObjectStore, photoPrefix string) FileService {
	return &fileServiceImpl{
		storage:     fileStorage,
		photos:      photos,
		photoPrefix: photoPrefix,
	}
}

func validateExt(filename string, allowed []string) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	for _, a := range allowed {
		if ext == a {
			return ext, nil
		}
	}
	return "", fmt.Errorf("invalid file type %q: only %s allowed", ext, strings.Join(allowed, ", "))
}

// UploadReferencePhoto stores a face photo under the prefix the attendance
// validator scans. The key embeds the badge ID so photos can be removed
// when the employee leaves.
func (s *fileServiceImpl) UploadReferencePhoto(ctx context.Context, employeeID string, file io.Reader, filename string) (string, error) {
	ext, err := validateExt(filename, []string{".jpg", ".jpeg", ".png"})
	if err != nil {
		return "", err
	}

	data, err := io.ReadAll(file)
	if err != nil {
		return "", fmt.Errorf("failed to read photo: %w", err)
	}

	contentType := "image/jpeg"
	if ext == ".png" {
		contentType = "image/png"
	}

	key := fmt.Sprintf("%s/%s-%s%s", s.photoPrefix, employeeID, uuid.New().String(), ext)
	if _, err := s.photos.PutObject(ctx, key, data, contentType); err != nil {
		return "", err
	}

	return key, nil
}

// DeleteReferencePhoto removes a face photo. Only keys under the scanned
// prefix are deletable through this path.
func (s *fileServiceImpl) DeleteReferencePhoto(ctx context.Context, key string) error {
	if !strings.HasPrefix(key, s.photoPrefix+"/") {
		return fmt.Errorf("invalid reference photo key %q", key)
	}
	return s.photos.RemoveObject(ctx, key)
}

// UploadDocument uploads an onboarding document
func (s *fileServiceImpl) UploadDocument(ctx context.Context, employeeID string, file io.Reader, filename string, documentType string) (string, error) {
	ext, err := validateExt(filename, []string{".jpg", ".jpeg", ".png", ".pdf"})
	if err != nil {
		return "", err
	}

	contentType := "application/pdf"
	switch ext {
	case ".jpg", ".jpeg":
		contentType = "image/jpeg"
	case ".png":
		contentType = "image/png"
	}

	newFilename := fmt.Sprintf("%s-%s%s", documentType, uuid.New().String(), ext)
	path := filepath.Join("documents", employeeID, newFilename)

	uploadedPath, err := s.storage.Upload(ctx, file, path, contentType)
	if err != nil {
		return "", fmt.Errorf("failed to upload document: %w", err)
	}

	return uploadedPath, nil
}

// DeleteFile removes a document
func (s *fileServiceImpl) DeleteFile(ctx context.Context, path string) error {
	return s.storage.Delete(ctx, path)
}

// GetFileURL resolves a document path to a URL
func (s *fileServiceImpl) GetFileURL(ctx context.Context, path string, expiry time.Duration) (string, error) {
	return s.storage.GetURL(ctx, path, expiry)
}
