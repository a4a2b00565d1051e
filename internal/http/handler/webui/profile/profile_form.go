package profile

import (
	"io"
	"log/slog"
	"net/http"

	"github.com/bornholm/go-x/slogx"
	"github.com/bornholm/maven/internal/core/model"
	"github.com/bornholm/maven/internal/core/service"
	httpCtx "github.com/bornholm/maven/internal/http/context"
	"github.com/bornholm/maven/internal/http/handler/webui/common"
	"github.com/pkg/errors"
)

const (
	UpdatedTitle   = "Profile updated"
	UpdatedMessage = "Your profile has been successfully updated."
	ErrorTitle     = "Error"
)

// multipartOverhead leaves room for the text fields around the avatar
const multipartOverhead = 64 << 10

func (h *Handler) handleProfileForm(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user := httpCtx.User(ctx)

	r.Body = http.MaxBytesReader(w, r.Body, h.maxAvatarSize+multipartOverhead)

	if err := r.ParseMultipartForm(h.maxAvatarSize + multipartOverhead); err != nil && !errors.Is(err, http.ErrNotMultipart) {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			common.RedirectWithFlash(w, r, "/profile/", model.NewErrorNotification(ErrorTitle, "The submitted avatar is too large."))
			return
		}

		common.HandleError(w, r, common.NewError(err, "The submitted form is invalid.", http.StatusBadRequest))
		return
	}

	profileForm := newProfileForm()

	if err := profileForm.Handle(r); err != nil {
		slog.ErrorContext(ctx, "could not parse form", slogx.Error(err))
		common.HandleError(w, r, common.NewError(err, "The submitted form is invalid.", http.StatusBadRequest))
		return
	}

	if !profileForm.IsValid(ctx) {
		common.RedirectWithFlash(w, r, "/profile/", model.NewErrorNotification(ErrorTitle, "Please choose a theme."))
		return
	}

	fullName, _ := profileForm.GetFieldValue(fieldFullName)
	bio, _ := profileForm.GetFieldValue(fieldBio)
	theme, _ := profileForm.GetFieldValue(fieldTheme)
	rawEmailNotifications, _ := profileForm.GetFieldValue(fieldEmailNotifications)

	update := service.ProfileUpdate{
		FullName: fullName,
		Bio:      bio,
		Settings: model.ProfileSettings{
			Theme:              model.Theme(theme),
			EmailNotifications: rawEmailNotifications == "on",
		},
	}

	avatar, err := openAvatar(r)
	if err != nil {
		common.HandleError(w, r, errors.WithStack(err))
		return
	}

	if avatar != nil {
		defer avatar.Close()
		update.Avatar = avatar
	}

	if _, err := h.profileManager.UpdateProfile(ctx, user.ID(), update); err != nil {
		var validationErr *service.ValidationError
		if errors.As(err, &validationErr) {
			common.RedirectWithFlash(w, r, "/profile/", model.NewErrorNotification(ErrorTitle, validationErr.Error()))
			return
		}

		slog.ErrorContext(ctx, "could not update profile", slogx.Error(err))
		common.RedirectWithFlash(w, r, "/profile/", model.NewErrorNotification(ErrorTitle, "Your profile could not be updated. Please try again later."))
		return
	}

	common.RedirectWithFlash(w, r, "/profile/", model.NewSuccessNotification(UpdatedTitle, UpdatedMessage))
}

// openAvatar returns the uploaded avatar, or nil if the user did not choose
// a file.
func openAvatar(r *http.Request) (io.ReadCloser, error) {
	if r.MultipartForm == nil {
		return nil, nil
	}

	file, header, err := r.FormFile(fieldAvatar)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return nil, nil
		}

		return nil, errors.WithStack(err)
	}

	if header.Filename == "" && header.Size == 0 {
		file.Close()
		return nil, nil
	}

	return file, nil
}
