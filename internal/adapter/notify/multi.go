package notify

import (
	"context"

	"github.com/bornholm/maven/internal/core/model"
	"github.com/bornholm/maven/internal/core/port"
)

type Multi []port.Notifier

func (m Multi) Notify(ctx context.Context, notification model.Notification) {
	for _, n := range m {
		if n == nil {
			continue
		}

		n.Notify(ctx, notification)
	}
}

var _ port.Notifier = Multi{}
