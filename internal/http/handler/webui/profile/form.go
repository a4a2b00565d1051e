package profile

import (
	"github.com/bornholm/go-x/templx/form"
	formx "github.com/bornholm/go-x/templx/form"
	"github.com/bornholm/go-x/templx/form/renderer/bulma"
	"github.com/bornholm/maven/internal/core/model"
)

const (
	fieldFullName           = "full_name"
	fieldBio                = "bio"
	fieldTheme              = "theme"
	fieldEmailNotifications = "email_notifications"
	fieldAvatar             = "avatar"
)

func newProfileForm() *form.Form {
	form := formx.New([]form.Field{
		formx.NewField(fieldFullName,
			formx.WithLabel("Full Name"),
		),
		formx.NewField(fieldBio,
			formx.WithLabel("Bio"),
			formx.WithType("textarea"),
			formx.WithPlaceholder("Tell us about yourself..."),
		),
		formx.NewField(fieldTheme,
			formx.WithLabel("Theme"),
			formx.WithType("select"),
			formx.WithRequired(true),
			formx.WithValidation(formx.RequiredRule{}),
			formx.WithSelectOptions(
				formx.SelectOption{
					Label: "Light",
					Value: string(model.ThemeLight),
				},
				formx.SelectOption{
					Label: "Dark",
					Value: string(model.ThemeDark),
				},
			),
		),
		formx.NewField(fieldEmailNotifications,
			formx.WithLabel("Email notifications"),
			formx.WithType("checkbox"),
			formx.WithDescription("Receive email notifications about your tasks"),
		),
	}, form.WithDefaultRenderer(bulma.NewFieldRenderer()))

	return form
}
