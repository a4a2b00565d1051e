package minio

import (
	"context"
	"io"
	"net/http"
	"os"
	"path"
	"strings"
	"time"

	"github.com/bornholm/maven/internal/core/port"
	"github.com/bornholm/maven/internal/filesystem"
	"github.com/minio/minio-go/v7"
	"github.com/pkg/errors"
)

// AvatarStore stores avatars as objects of a minio (or any S3 compatible)
// bucket.
type AvatarStore struct {
	basePath string
	bucket   string
	client   *minio.Client
}

// PutAvatar implements port.AvatarStore.
func (s *AvatarStore) PutAvatar(ctx context.Context, filename string, r io.Reader, size int64, contentType string) error {
	key, err := s.objectKey(filename)
	if err != nil {
		return errors.WithStack(err)
	}

	_, err = s.client.PutObject(ctx, s.bucket, key, r, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return nil
}

// OpenAvatar implements port.AvatarStore.
func (s *AvatarStore) OpenAvatar(ctx context.Context, filename string) (port.AvatarFile, error) {
	key, err := s.objectKey(filename)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	object, err := s.client.GetObject(ctx, s.bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, errors.WithStack(translateError(err))
	}

	// GetObject is lazy, errors only surface on the first request
	info, err := object.Stat()
	if err != nil {
		object.Close()
		return nil, errors.WithStack(translateError(err))
	}

	return &avatarFile{Object: object, modTime: info.LastModified}, nil
}

// DeleteAvatar implements port.AvatarStore.
func (s *AvatarStore) DeleteAvatar(ctx context.Context, filename string) error {
	key, err := s.objectKey(filename)
	if err != nil {
		return errors.WithStack(err)
	}

	// RemoveObject does not fail on missing objects
	if err := s.client.RemoveObject(ctx, s.bucket, key, minio.RemoveObjectOptions{}); err != nil {
		return errors.WithStack(translateError(err))
	}

	return nil
}

func (s *AvatarStore) objectKey(filename string) (string, error) {
	filename, err := filesystem.CleanPath(filename)
	if err != nil {
		return "", errors.WithStack(err)
	}

	if s.basePath == "" {
		return filename, nil
	}

	return path.Join(s.basePath, filename), nil
}

func (s *AvatarStore) ensureBucket(ctx context.Context, region string) error {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return errors.WithStack(err)
	}

	if exists {
		return nil
	}

	if err := s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{Region: region}); err != nil {
		return errors.Wrapf(err, "could not create bucket '%s'", s.bucket)
	}

	return nil
}

func translateError(err error) error {
	if minio.ToErrorResponse(err).StatusCode == http.StatusNotFound {
		return port.ErrNotFound
	}

	return err
}

func NewAvatarStore(client *minio.Client, bucket string, basePath string) *AvatarStore {
	return &AvatarStore{
		bucket:   bucket,
		client:   client,
		basePath: strings.Trim(basePath, string(os.PathSeparator)),
	}
}

var _ port.AvatarStore = &AvatarStore{}

type avatarFile struct {
	*minio.Object
	modTime time.Time
}

func (f *avatarFile) ModTime() time.Time {
	return f.modTime
}

var _ port.AvatarFile = &avatarFile{}
