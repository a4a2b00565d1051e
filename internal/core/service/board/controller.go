package board

import (
	"context"
	"log/slog"

	"github.com/bornholm/go-x/slogx"
	"github.com/bornholm/maven/internal/core/model"
	"github.com/bornholm/maven/internal/core/port"
	"github.com/bornholm/maven/internal/metrics"
	"github.com/pkg/errors"
)

const (
	SuccessTitle   = "Success"
	SuccessMessage = "Task status updated"
	ErrorTitle     = "Error"
)

// Snapshot is the caller-owned view of the tasks the board renders from.
type Snapshot struct {
	Tasks     []model.Task
	IsLoading bool
}

type View struct {
	Loading bool
	Buckets Buckets
}

// RefreshFunc asks the owner of the snapshot to replace it.
type RefreshFunc func(ctx context.Context)

// Controller turns board gestures into task status updates.
//
// Each intent is dispatched on its own: there is no queue and no lock
// between concurrent mutations, and their completions may be observed in
// any order. The controller never modifies a snapshot; on success it emits a
// refresh event and the owner of the snapshot decides how to replace it.
type Controller struct {
	store    port.TaskStore
	notifier port.Notifier
	refresh  RefreshFunc
}

func (c *Controller) Render(snapshot Snapshot) View {
	if snapshot.IsLoading {
		return View{Loading: true}
	}

	return View{
		Buckets: Partition(snapshot.Tasks),
	}
}

// HandleGesture resolves the gesture against the snapshot and dispatches the
// resulting intent. It returns nil when the gesture is ignored.
func (c *Controller) HandleGesture(ctx context.Context, snapshot Snapshot, gesture Gesture) *Mutation {
	if snapshot.IsLoading {
		metrics.TaskGestures.WithLabelValues(metrics.ResultIgnored).Inc()
		return nil
	}

	intent, ok := ResolveIntent(snapshot.Tasks, gesture)
	if !ok {
		slog.DebugContext(ctx, "ignoring gesture", slog.String("source", string(gesture.SourceID)), slog.String("target", gesture.TargetID))
		metrics.TaskGestures.WithLabelValues(metrics.ResultIgnored).Inc()
		return nil
	}

	metrics.TaskGestures.WithLabelValues(metrics.ResultDispatched).Inc()

	return c.Dispatch(ctx, intent)
}

// Dispatch issues the status update described by the intent. The returned
// mutation is pending until the store answers. The update is detached from
// the cancellation of ctx: once issued it always runs to completion.
func (c *Controller) Dispatch(ctx context.Context, intent Intent) *Mutation {
	ctx = context.WithoutCancel(ctx)
	ctx = slogx.WithAttrs(ctx,
		slog.String("taskID", string(intent.TaskID)),
		slog.String("newStatus", string(intent.NewStatus)),
	)

	mutation := newMutation(intent)

	metrics.TaskStatusMutations.Inc()

	go func() {
		var err error

		defer func() {
			metrics.TaskStatusMutations.Dec()
			mutation.settle(err)
		}()

		defer func() {
			recovered := recover()
			if recovered == nil {
				return
			}

			panicErr, ok := recovered.(error)
			if !ok {
				panicErr = errors.Errorf("%+v", recovered)
			}

			slog.ErrorContext(ctx, "recovered panic while updating task status", slogx.Error(panicErr))

			err = panicErr
			c.failed(ctx, intent, err)
		}()

		slog.DebugContext(ctx, "updating task status")

		if err = c.store.UpdateTaskStatus(ctx, intent.TaskID, intent.NewStatus); err != nil {
			c.failed(ctx, intent, err)
			return
		}

		c.succeeded(ctx, intent)
	}()

	return mutation
}

func (c *Controller) succeeded(ctx context.Context, intent Intent) {
	metrics.TaskStatusUpdates.WithLabelValues(string(intent.NewStatus), metrics.ResultSucceeded).Inc()

	if c.refresh != nil {
		c.refresh(ctx)
	}

	c.notifier.Notify(ctx, model.NewSuccessNotification(SuccessTitle, SuccessMessage))
}

func (c *Controller) failed(ctx context.Context, intent Intent, err error) {
	metrics.TaskStatusUpdates.WithLabelValues(string(intent.NewStatus), metrics.ResultFailed).Inc()

	slog.WarnContext(ctx, "could not update task status", slogx.Error(err))

	c.notifier.Notify(ctx, model.NewErrorNotification(ErrorTitle, err.Error()))
}

func NewController(store port.TaskStore, notifier port.Notifier, funcs ...OptionFunc) *Controller {
	opts := NewOptions(funcs...)

	if notifier == nil {
		notifier = port.NotifierFunc(func(ctx context.Context, n model.Notification) {})
	}

	return &Controller{
		store:    store,
		notifier: notifier,
		refresh:  opts.Refresh,
	}
}
