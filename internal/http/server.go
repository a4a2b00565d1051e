package http

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/bornholm/go-x/slogx"
	httpCtx "github.com/bornholm/maven/internal/http/context"
	"github.com/pkg/errors"
	sloghttp "github.com/samber/slog-http"
)

type Server struct {
	opts *Options
}

func (s *Server) Run(ctx context.Context) error {
	handler, err := s.Handler()
	if err != nil {
		return errors.WithStack(err)
	}

	server := &http.Server{
		Addr:              s.opts.Address,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errs := make(chan error, 1)

	go func() {
		defer close(errs)

		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errs <- errors.WithStack(err)
		}
	}()

	select {
	case err := <-errs:
		return err

	case <-ctx.Done():
		slog.InfoContext(ctx, "shutting down server")

		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.opts.ShutdownTimeout)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			return errors.WithStack(err)
		}

		return nil
	}
}

// Handler returns the root handler of the server, with its mounts and
// middlewares.
func (s *Server) Handler() (http.Handler, error) {
	baseURL, err := url.Parse(s.opts.BaseURL)
	if err != nil {
		return nil, errors.Wrapf(err, "could not parse base url '%s'", s.opts.BaseURL)
	}

	mux := http.NewServeMux()

	for prefix, handler := range s.opts.Mounts {
		for i := len(s.opts.Middlewares) - 1; i >= 0; i-- {
			handler = s.opts.Middlewares[i](handler)
		}

		mount(mux, prefix, handler)
	}

	var handler http.Handler = mux

	handler = sloghttp.Recovery(handler)
	handler = sloghttp.NewWithConfig(slog.Default(), sloghttp.Config{
		DefaultLevel:     slog.LevelInfo,
		ClientErrorLevel: slog.LevelWarn,
		ServerErrorLevel: slog.LevelError,
		WithRequestID:    true,
	})(handler)
	handler = withRequestContext(baseURL)(handler)

	return handler, nil
}

func withRequestContext(baseURL *url.URL) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			currentURL := *r.URL

			ctx = httpCtx.SetBaseURL(ctx, baseURL)
			ctx = httpCtx.SetCurrentURL(ctx, &currentURL)
			ctx = slogx.WithAttrs(ctx,
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
			)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func mount(mux *http.ServeMux, prefix string, handler http.Handler) {
	trimmed := strings.TrimSuffix(prefix, "/")

	if len(trimmed) > 0 {
		mux.Handle(prefix, http.StripPrefix(trimmed, handler))
	} else {
		mux.Handle(prefix, handler)
	}
}

func NewServer(funcs ...OptionFunc) *Server {
	opts := NewOptions(funcs...)
	return &Server{
		opts: opts,
	}
}
