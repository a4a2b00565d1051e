package model

type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

func (t Theme) Valid() bool {
	return t == ThemeLight || t == ThemeDark
}

type ProfileSettings struct {
	EmailNotifications bool
	Theme              Theme
}

// Profile is the editable public face of a user. It is always read and
// written as a whole.
type Profile struct {
	UserID    UserID
	FullName  string
	Bio       string
	AvatarURL string
	Settings  ProfileSettings
}

func NewProfile(userID UserID) *Profile {
	return &Profile{
		UserID: userID,
		Settings: ProfileSettings{
			Theme: ThemeLight,
		},
	}
}

// Initial returns the first letter of the profile full name, used as an
// avatar fallback.
func (p *Profile) Initial() string {
	for _, r := range p.FullName {
		return string(r)
	}

	return "?"
}
