package notify

import (
	"context"
	"log/slog"

	"github.com/bornholm/maven/internal/core/model"
	"github.com/bornholm/maven/internal/core/port"
)

// Log writes notifications to the default logger.
type Log struct{}

func (Log) Notify(ctx context.Context, notification model.Notification) {
	level := slog.LevelInfo
	if notification.Kind == model.NotificationError {
		level = slog.LevelWarn
	}

	slog.Log(ctx, level, "notification",
		slog.String("kind", string(notification.Kind)),
		slog.String("title", notification.Title),
		slog.String("message", notification.Message),
	)
}

var _ port.Notifier = Log{}
