package authn

import (
	"context"
	"encoding/gob"
)

// User is the identity asserted by an authenticator, before it is mapped
// to an application user.
type User struct {
	Subject     string
	Provider    string
	Email       string
	DisplayName string
}

type contextKey string

const keyUser contextKey = "user"

func ContextUser(ctx context.Context) *User {
	user, ok := ctx.Value(keyUser).(*User)
	if !ok {
		return nil
	}

	return user
}

func setContextUser(ctx context.Context, user *User) context.Context {
	return context.WithValue(ctx, keyUser, user)
}

func init() {
	gob.Register(&User{})
}
