package model

import "github.com/rs/xid"

type UserID string

func NewUserID() UserID {
	return UserID(xid.New().String())
}

type User interface {
	WithID[UserID]

	Subject() string
	Provider() string
	DisplayName() string
	Email() string
	Active() bool
}

type BaseUser struct {
	id          UserID
	displayName string
	email       string
	subject     string
	provider    string
	active      bool
}

// ID implements User.
func (u *BaseUser) ID() UserID {
	return u.id
}

// Active implements User.
func (u *BaseUser) Active() bool {
	return u.active
}

// Email implements User.
func (u *BaseUser) Email() string {
	return u.email
}

// DisplayName implements User.
func (u *BaseUser) DisplayName() string {
	return u.displayName
}

// Provider implements User.
func (u *BaseUser) Provider() string {
	return u.provider
}

// Subject implements User.
func (u *BaseUser) Subject() string {
	return u.subject
}

func (u *BaseUser) SetDisplayName(displayName string) {
	u.displayName = displayName
}

func (u *BaseUser) SetEmail(email string) {
	u.email = email
}

func (u *BaseUser) SetActive(active bool) {
	u.active = active
}

var _ User = &BaseUser{}

func NewUser(provider, subject, email, displayName string) *BaseUser {
	return &BaseUser{
		id:          NewUserID(),
		displayName: displayName,
		email:       email,
		subject:     subject,
		provider:    provider,
		active:      true,
	}
}

// CopyUser returns a mutable copy of the given user, keeping its identifier.
func CopyUser(u User) *BaseUser {
	return &BaseUser{
		id:          u.ID(),
		displayName: u.DisplayName(),
		email:       u.Email(),
		subject:     u.Subject(),
		provider:    u.Provider(),
		active:      u.Active(),
	}
}

func UserString(u User) string {
	if u == nil {
		return "anonymous"
	}

	return u.Provider() + "/" + u.Subject()
}
