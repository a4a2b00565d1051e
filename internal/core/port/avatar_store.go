package port

import (
	"context"
	"io"
	"time"
)

type AvatarFile interface {
	io.ReadSeekCloser
	ModTime() time.Time
}

type AvatarStore interface {
	// PutAvatar writes (or overwrites) the avatar stored at the given path
	PutAvatar(ctx context.Context, path string, r io.Reader, size int64, contentType string) error

	// OpenAvatar opens the avatar stored at the given path, or returns ErrNotFound
	OpenAvatar(ctx context.Context, path string) (AvatarFile, error)

	// DeleteAvatar removes the avatar stored at the given path. Deleting a
	// missing avatar is not an error.
	DeleteAvatar(ctx context.Context, path string) error
}
