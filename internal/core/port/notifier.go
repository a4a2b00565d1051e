package port

import (
	"context"

	"github.com/bornholm/maven/internal/core/model"
)

// Notifier delivers user-visible messages. Delivery is fire-and-forget:
// implementations must not block nor report failures to the caller.
type Notifier interface {
	Notify(ctx context.Context, notification model.Notification)
}

type NotifierFunc func(ctx context.Context, notification model.Notification)

func (fn NotifierFunc) Notify(ctx context.Context, notification model.Notification) {
	fn(ctx, notification)
}
