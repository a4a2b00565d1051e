package flash

import (
	"context"
	"net/http"

	"github.com/bornholm/maven/internal/core/model"
	"github.com/gorilla/sessions"
	"github.com/pkg/errors"
)

const DefaultSessionName = "maven_flash"

var ErrStoreNotFound = errors.New("flash store not found in context")

// Store persists notifications in a session until the next rendered page
// pops them.
type Store struct {
	sessions    sessions.Store
	sessionName string
}

func (s *Store) Add(w http.ResponseWriter, r *http.Request, notifications ...model.Notification) error {
	if len(notifications) == 0 {
		return nil
	}

	sess, err := s.sessions.Get(r, s.sessionName)
	if err != nil {
		return errors.WithStack(err)
	}

	for _, n := range notifications {
		sess.AddFlash(n)
	}

	if err := sess.Save(r, w); err != nil {
		return errors.WithStack(err)
	}

	return nil
}

func (s *Store) Pop(w http.ResponseWriter, r *http.Request) ([]model.Notification, error) {
	sess, err := s.sessions.Get(r, s.sessionName)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	flashes := sess.Flashes()
	if len(flashes) == 0 {
		return []model.Notification{}, nil
	}

	if err := sess.Save(r, w); err != nil {
		return nil, errors.WithStack(err)
	}

	notifications := make([]model.Notification, 0, len(flashes))
	for _, f := range flashes {
		n, ok := f.(model.Notification)
		if !ok {
			continue
		}

		notifications = append(notifications, n)
	}

	return notifications, nil
}

// Middleware makes the store available to the handlers through the request
// context.
func (s *Store) Middleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := context.WithValue(r.Context(), keyStore, s)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func NewStore(sessions sessions.Store, sessionName string) *Store {
	if sessionName == "" {
		sessionName = DefaultSessionName
	}

	return &Store{
		sessions:    sessions,
		sessionName: sessionName,
	}
}

type contextKey string

const keyStore contextKey = "store"

func contextStore(ctx context.Context) (*Store, error) {
	store, ok := ctx.Value(keyStore).(*Store)
	if !ok || store == nil {
		return nil, errors.WithStack(ErrStoreNotFound)
	}

	return store, nil
}

// Add stores the given notifications with the store attached to the request.
func Add(w http.ResponseWriter, r *http.Request, notifications ...model.Notification) error {
	store, err := contextStore(r.Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return store.Add(w, r, notifications...)
}

// Pop retrieves and removes the pending notifications of the request session.
// Requests served without a store have no notifications.
func Pop(w http.ResponseWriter, r *http.Request) ([]model.Notification, error) {
	store, err := contextStore(r.Context())
	if err != nil {
		if errors.Is(err, ErrStoreNotFound) {
			return []model.Notification{}, nil
		}

		return nil, errors.WithStack(err)
	}

	return store.Pop(w, r)
}
