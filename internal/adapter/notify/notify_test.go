package notify

import (
	"context"
	"sync"
	"testing"

	"github.com/bornholm/maven/internal/core/model"
	"github.com/davecgh/go-spew/spew"
)

func TestContextual(t *testing.T) {
	ctx := context.Background()

	notifier := Multi{Log{}, Contextual(), nil}

	// Without collector, notifications are only logged
	notifier.Notify(ctx, model.NewSuccessNotification("Success", "ignored"))

	collector := NewCollector()
	ctx = WithCollector(ctx, collector)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			notifier.Notify(context.WithoutCancel(ctx), model.NewErrorNotification("Error", "network error"))
		}()
	}

	wg.Wait()

	notifications := collector.Notifications()

	if e, g := 10, len(notifications); e != g {
		t.Fatalf("len(notifications): expected %d, got %d", e, g)
	}

	for _, n := range notifications {
		if e, g := model.NotificationError, n.Kind; e != g {
			t.Errorf("notification.Kind: expected '%s', got '%s': %s", e, g, spew.Sdump(n))
		}
	}
}
