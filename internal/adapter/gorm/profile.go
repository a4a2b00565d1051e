package gorm

import (
	"time"

	"github.com/bornholm/maven/internal/core/model"
)

type Profile struct {
	UserID string `gorm:"primaryKey;autoIncrement:false"`

	CreatedAt time.Time
	UpdatedAt time.Time

	FullName  string
	Bio       string
	AvatarURL string

	EmailNotifications bool
	Theme              string
}

func fromProfile(p *model.Profile) *Profile {
	return &Profile{
		UserID:             string(p.UserID),
		FullName:           p.FullName,
		Bio:                p.Bio,
		AvatarURL:          p.AvatarURL,
		EmailNotifications: p.Settings.EmailNotifications,
		Theme:              string(p.Settings.Theme),
	}
}

func toProfile(p *Profile) *model.Profile {
	profile := model.NewProfile(model.UserID(p.UserID))

	profile.FullName = p.FullName
	profile.Bio = p.Bio
	profile.AvatarURL = p.AvatarURL
	profile.Settings.EmailNotifications = p.EmailNotifications

	if theme := model.Theme(p.Theme); theme.Valid() {
		profile.Settings.Theme = theme
	}

	return profile
}
