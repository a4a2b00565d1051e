package service

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"path"
	"strings"

	"github.com/bornholm/go-x/slogx"
	"github.com/bornholm/maven/internal/core/model"
	"github.com/bornholm/maven/internal/core/port"
	"github.com/bornholm/maven/internal/workflow"
	"github.com/dustin/go-humanize"
	"github.com/gabriel-vasile/mimetype"
	"github.com/pkg/errors"
)

const DefaultMaxAvatarSize int64 = 1 << 20

var allowedAvatarTypes = []string{"image/png", "image/jpeg", "image/gif", "image/webp"}

// ValidationError reports an input the user can fix. Its message is meant
// to be displayed as is.
type ValidationError struct {
	message string
}

func (e *ValidationError) Error() string {
	return e.message
}

func NewValidationError(message string) *ValidationError {
	return &ValidationError{message}
}

type ProfileManagerOptions struct {
	MaxAvatarSize   int64
	AvatarURLPrefix string
}

type ProfileManagerOptionFunc func(opts *ProfileManagerOptions)

func WithProfileManagerMaxAvatarSize(size int64) ProfileManagerOptionFunc {
	return func(opts *ProfileManagerOptions) {
		opts.MaxAvatarSize = size
	}
}

// WithProfileManagerAvatarURLPrefix sets the public path avatars are
// served from.
func WithProfileManagerAvatarURLPrefix(prefix string) ProfileManagerOptionFunc {
	return func(opts *ProfileManagerOptions) {
		opts.AvatarURLPrefix = prefix
	}
}

func NewProfileManagerOptions(funcs ...ProfileManagerOptionFunc) *ProfileManagerOptions {
	opts := &ProfileManagerOptions{
		MaxAvatarSize:   DefaultMaxAvatarSize,
		AvatarURLPrefix: "/avatars/",
	}
	for _, fn := range funcs {
		fn(opts)
	}
	return opts
}

type ProfileManager struct {
	profiles port.ProfileStore
	avatars  port.AvatarStore

	maxAvatarSize   int64
	avatarURLPrefix string
}

type ProfileUpdate struct {
	FullName string
	Bio      string
	Settings model.ProfileSettings

	// Avatar holds the content of the new avatar. A nil reader keeps the
	// current one.
	Avatar io.Reader
}

func (m *ProfileManager) GetProfile(ctx context.Context, userID model.UserID) (*model.Profile, error) {
	profile, err := m.profiles.GetProfile(ctx, userID)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return profile, nil
}

// UpdateProfile replaces the profile of the given user. When a new avatar
// is provided it is written first, and restored to its previous state if
// the profile could not be saved.
func (m *ProfileManager) UpdateProfile(ctx context.Context, userID model.UserID, update ProfileUpdate) (*model.Profile, error) {
	if !update.Settings.Theme.Valid() {
		return nil, errors.WithStack(NewValidationError("Unknown theme"))
	}

	current, err := m.profiles.GetProfile(ctx, userID)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	updated := *current
	updated.UserID = userID
	updated.FullName = strings.TrimSpace(update.FullName)
	updated.Bio = strings.TrimSpace(update.Bio)
	updated.Settings = update.Settings

	steps := make([]workflow.Step, 0, 2)

	var previousAvatarPath string

	if update.Avatar != nil {
		avatar, err := m.readAvatar(update.Avatar)
		if err != nil {
			return nil, errors.WithStack(err)
		}

		avatarPath := string(userID) + "/avatar" + avatar.mime.Extension()
		previousAvatarPath = m.avatarPath(current.AvatarURL)

		updated.AvatarURL = m.avatarURLPrefix + avatarPath

		steps = append(steps, m.putAvatarStep(avatarPath, avatar))
	}

	steps = append(steps, workflow.StepFunc("save-profile",
		func(ctx context.Context) error {
			if err := m.profiles.SaveProfile(ctx, &updated); err != nil {
				return errors.WithStack(err)
			}

			return nil
		},
		nil,
	))

	if err := workflow.New(steps...).Execute(ctx); err != nil {
		return nil, errors.WithStack(err)
	}

	// The avatar extension changed, the previous file is now orphaned
	if previousAvatarPath != "" && m.avatarURLPrefix+previousAvatarPath != updated.AvatarURL {
		if err := m.avatars.DeleteAvatar(ctx, previousAvatarPath); err != nil {
			slog.WarnContext(ctx, "could not delete previous avatar", slog.String("path", previousAvatarPath), slogx.Error(err))
		}
	}

	return &updated, nil
}

func (m *ProfileManager) OpenAvatar(ctx context.Context, avatarPath string) (port.AvatarFile, error) {
	file, err := m.avatars.OpenAvatar(ctx, avatarPath)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return file, nil
}

type avatarData struct {
	data []byte
	mime *mimetype.MIME
}

func (m *ProfileManager) readAvatar(r io.Reader) (*avatarData, error) {
	data, err := io.ReadAll(io.LimitReader(r, m.maxAvatarSize+1))
	if err != nil {
		return nil, errors.WithStack(err)
	}

	if int64(len(data)) > m.maxAvatarSize {
		return nil, errors.WithStack(NewValidationError("Avatar must not exceed " + humanize.IBytes(uint64(m.maxAvatarSize))))
	}

	if len(data) == 0 {
		return nil, errors.WithStack(NewValidationError("Avatar is empty"))
	}

	mime := mimetype.Detect(data)
	if !strings.HasPrefix(mime.String(), "image/") {
		return nil, errors.WithStack(NewValidationError("Avatar must be an image"))
	}

	// Vector images may embed scripts
	if !mimetype.EqualsAny(mime.String(), allowedAvatarTypes...) {
		return nil, errors.WithStack(NewValidationError("Avatar must be a PNG, JPEG, GIF or WebP image"))
	}

	return &avatarData{data: data, mime: mime}, nil
}

// putAvatarStep writes the avatar at the given path. Its compensation puts
// back whatever was stored there before.
func (m *ProfileManager) putAvatarStep(avatarPath string, avatar *avatarData) workflow.Step {
	var previous []byte

	return workflow.StepFunc("put-avatar",
		func(ctx context.Context) error {
			existing, err := m.readStoredAvatar(ctx, avatarPath)
			if err != nil && !errors.Is(err, port.ErrNotFound) {
				return errors.WithStack(err)
			}

			previous = existing

			if err := m.avatars.PutAvatar(ctx, avatarPath, bytes.NewReader(avatar.data), int64(len(avatar.data)), avatar.mime.String()); err != nil {
				return errors.WithStack(err)
			}

			return nil
		},
		func(ctx context.Context) error {
			if previous == nil {
				if err := m.avatars.DeleteAvatar(ctx, avatarPath); err != nil {
					return errors.WithStack(err)
				}

				return nil
			}

			contentType := mimetype.Detect(previous).String()

			if err := m.avatars.PutAvatar(ctx, avatarPath, bytes.NewReader(previous), int64(len(previous)), contentType); err != nil {
				return errors.WithStack(err)
			}

			return nil
		},
	)
}

func (m *ProfileManager) readStoredAvatar(ctx context.Context, avatarPath string) ([]byte, error) {
	file, err := m.avatars.OpenAvatar(ctx, avatarPath)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, m.maxAvatarSize+1))
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return data, nil
}

// avatarPath returns the storage path of an avatar from its public URL, or
// an empty string if the URL does not point to a stored avatar.
func (m *ProfileManager) avatarPath(avatarURL string) string {
	if !strings.HasPrefix(avatarURL, m.avatarURLPrefix) {
		return ""
	}

	return path.Clean(strings.TrimPrefix(avatarURL, m.avatarURLPrefix))
}

func NewProfileManager(profiles port.ProfileStore, avatars port.AvatarStore, funcs ...ProfileManagerOptionFunc) *ProfileManager {
	opts := NewProfileManagerOptions(funcs...)

	return &ProfileManager{
		profiles:        profiles,
		avatars:         avatars,
		maxAvatarSize:   opts.MaxAvatarSize,
		avatarURLPrefix: opts.AvatarURLPrefix,
	}
}
