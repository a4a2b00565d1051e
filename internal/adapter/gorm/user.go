package gorm

import (
	"time"

	"github.com/bornholm/maven/internal/core/model"
)

type User struct {
	ID string `gorm:"primaryKey;autoIncrement:false"`

	CreatedAt time.Time
	UpdatedAt time.Time

	Subject  string `gorm:"index:user_identity_index,unique"`
	Provider string `gorm:"index:user_identity_index,unique"`

	DisplayName string
	Email       string `gorm:"index"`

	Profile *Profile `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE;"`

	Active bool
}

type wrappedUser struct {
	u *User
}

// Active implements model.User.
func (w *wrappedUser) Active() bool {
	return w.u.Active
}

// DisplayName implements model.User.
func (w *wrappedUser) DisplayName() string {
	return w.u.DisplayName
}

// Email implements model.User.
func (w *wrappedUser) Email() string {
	return w.u.Email
}

// ID implements model.User.
func (w *wrappedUser) ID() model.UserID {
	return model.UserID(w.u.ID)
}

// Provider implements model.User.
func (w *wrappedUser) Provider() string {
	return w.u.Provider
}

// Subject implements model.User.
func (w *wrappedUser) Subject() string {
	return w.u.Subject
}

var _ model.User = &wrappedUser{}

func fromUser(u model.User) *User {
	return &User{
		ID:          string(u.ID()),
		Subject:     u.Subject(),
		Provider:    u.Provider(),
		DisplayName: u.DisplayName(),
		Email:       u.Email(),
		Active:      u.Active(),
	}
}
