package notify

import (
	"context"
	"sync"

	"github.com/bornholm/maven/internal/core/model"
	"github.com/bornholm/maven/internal/core/port"
)

type contextKey string

const keyCollector contextKey = "collector"

// Collector keeps the notifications emitted on behalf of a single caller,
// typically an HTTP request or a CLI command.
type Collector struct {
	mutex         sync.Mutex
	notifications []model.Notification
}

func (c *Collector) Notify(ctx context.Context, notification model.Notification) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	c.notifications = append(c.notifications, notification)
}

func (c *Collector) Notifications() []model.Notification {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	notifications := make([]model.Notification, len(c.notifications))
	copy(notifications, c.notifications)

	return notifications
}

func NewCollector() *Collector {
	return &Collector{
		notifications: make([]model.Notification, 0),
	}
}

var _ port.Notifier = &Collector{}

func WithCollector(ctx context.Context, collector *Collector) context.Context {
	return context.WithValue(ctx, keyCollector, collector)
}

// Contextual returns a notifier forwarding notifications to the collector
// attached to the given context, if any.
func Contextual() port.Notifier {
	return port.NotifierFunc(func(ctx context.Context, notification model.Notification) {
		collector, ok := ctx.Value(keyCollector).(*Collector)
		if !ok || collector == nil {
			return
		}

		collector.Notify(ctx, notification)
	})
}
