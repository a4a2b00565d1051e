package context

import (
	"context"

	"github.com/bornholm/maven/internal/core/model"
)

const keyUser contextKey = "user"

func User(ctx context.Context) model.User {
	user, ok := ctx.Value(keyUser).(model.User)
	if !ok {
		return nil
	}

	return user
}

func SetUser(ctx context.Context, user model.User) context.Context {
	return context.WithValue(ctx, keyUser, user)
}

const keyTheme contextKey = "theme"

// Theme returns the display theme chosen by the current user, if any.
func Theme(ctx context.Context) model.Theme {
	theme, ok := ctx.Value(keyTheme).(model.Theme)
	if !ok {
		return ""
	}

	return theme
}

func SetTheme(ctx context.Context, theme model.Theme) context.Context {
	return context.WithValue(ctx, keyTheme, theme)
}
