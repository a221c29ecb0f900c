package facematch

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/emscore/ems-backend-go/internal/config"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// ObjectStore is an S3-compatible reference photo store. It also carries the
// onboarding upload/delete lifecycle for reference photos, so employee
// removal can clean up the photos the evaluator reads.
type ObjectStore struct {
	client *minio.Client
	bucket string
}

func NewObjectStore(cfg config.FaceStoreConfig) (*ObjectStore, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create face store client: %w", err)
	}

	return &ObjectStore{
		client: client,
		bucket: cfg.Bucket,
	}, nil
}

// ListKeys implements ReferenceStore.
func (s *ObjectStore) ListKeys(ctx context.Context, prefix string) ([]string, error) {
	if prefix != "" && !strings.HasSuffix(prefix, "/") {
		prefix += "/"
	}

	var keys []string
	for object := range s.client.ListObjects(ctx, s.bucket, minio.ListObjectsOptions{
		Prefix:    prefix,
		Recursive: true,
	}) {
		if object.Err != nil {
			return nil, fmt.Errorf("failed to list reference photos: %w", object.Err)
		}
		keys = append(keys, object.Key)
	}

	return keys, nil
}

// FetchObject implements ReferenceStore.
func (s *ObjectStore) FetchObject(ctx context.Context, key string) ([]byte, error) {
	object, err := s.client.GetObject(ctx, s.bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to get reference photo %s: %w", key, err)
	}
	defer object.Close()

	data, err := io.ReadAll(object)
	if err != nil {
		return nil, fmt.Errorf("failed to read reference photo %s: %w", key, err)
	}

	return data, nil
}

// PutObject uploads a reference photo and returns its key.
func (s *ObjectStore) PutObject(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	_, err := s.client.PutObject(ctx, s.bucket, key, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload reference photo %s: %w", key, err)
	}
	return key, nil
}

// RemoveObject deletes a reference photo.
func (s *ObjectStore) RemoveObject(ctx context.Context, key string) error {
	if err := s.client.RemoveObject(ctx, s.bucket, key, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("failed to delete reference photo %s: %w", key, err)
	}
	return nil
}

// RemovePrefix deletes every reference photo under prefix. Used when an
// employee is removed.
func (s *ObjectStore) RemovePrefix(ctx context.Context, prefix string) error {
	keys, err := s.ListKeys(ctx, prefix)
	if err != nil {
		return err
	}
	for _, key := range keys {
		if err := s.RemoveObject(ctx, key); err != nil {
			return err
		}
	}
	return nil
}
