package filesystem

import (
	"context"
	"io"
	"os"
	"path"
	"time"

	"github.com/bornholm/maven/internal/core/port"
	"github.com/pkg/errors"
	"github.com/spf13/afero"
)

// AvatarStore stores avatars on an afero filesystem.
type AvatarStore struct {
	fs afero.Fs
}

// PutAvatar implements port.AvatarStore.
func (s *AvatarStore) PutAvatar(ctx context.Context, filename string, r io.Reader, size int64, contentType string) error {
	filename, err := CleanPath(filename)
	if err != nil {
		return errors.WithStack(err)
	}

	if err := s.fs.MkdirAll(path.Dir(filename), 0o755); err != nil {
		return errors.WithStack(err)
	}

	// Write to a temporary file first so that readers never observe a
	// partially written avatar
	tmp := filename + ".tmp"

	file, err := s.fs.OpenFile(tmp, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return errors.WithStack(err)
	}

	if _, err := io.Copy(file, r); err != nil {
		file.Close()
		s.fs.Remove(tmp)
		return errors.WithStack(err)
	}

	if err := file.Close(); err != nil {
		s.fs.Remove(tmp)
		return errors.WithStack(err)
	}

	if err := s.fs.Rename(tmp, filename); err != nil {
		s.fs.Remove(tmp)
		return errors.WithStack(err)
	}

	return nil
}

// OpenAvatar implements port.AvatarStore.
func (s *AvatarStore) OpenAvatar(ctx context.Context, filename string) (port.AvatarFile, error) {
	filename, err := CleanPath(filename)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	file, err := s.fs.Open(filename)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, errors.WithStack(port.ErrNotFound)
		}

		return nil, errors.WithStack(err)
	}

	stat, err := file.Stat()
	if err != nil {
		file.Close()
		return nil, errors.WithStack(err)
	}

	if stat.IsDir() {
		file.Close()
		return nil, errors.WithStack(port.ErrNotFound)
	}

	return &avatarFile{File: file, modTime: stat.ModTime()}, nil
}

// DeleteAvatar implements port.AvatarStore.
func (s *AvatarStore) DeleteAvatar(ctx context.Context, filename string) error {
	filename, err := CleanPath(filename)
	if err != nil {
		return errors.WithStack(err)
	}

	if err := s.fs.Remove(filename); err != nil && !errors.Is(err, os.ErrNotExist) {
		return errors.WithStack(err)
	}

	return nil
}

func NewAvatarStore(fs afero.Fs) *AvatarStore {
	return &AvatarStore{fs: fs}
}

var _ port.AvatarStore = &AvatarStore{}

type avatarFile struct {
	afero.File
	modTime time.Time
}

func (f *avatarFile) ModTime() time.Time {
	return f.modTime
}

var _ port.AvatarFile = &avatarFile{}
