package url

import (
	"net/url"
	"path"
	"strings"
)

type MutationFunc func(u *url.URL)

// Mutate applies the given mutations to a copy of u.
func Mutate(u *url.URL, funcs ...MutationFunc) *url.URL {
	clone := *u

	for _, fn := range funcs {
		fn(&clone)
	}

	return &clone
}

// WithPath joins the given segments to the URL path, keeping a trailing
// slash if the last segment has one.
func WithPath(segments ...string) MutationFunc {
	return func(u *url.URL) {
		if len(segments) == 0 {
			return
		}

		joined := path.Join(append([]string{"/", u.Path}, segments...)...)

		if strings.HasSuffix(segments[len(segments)-1], "/") && !strings.HasSuffix(joined, "/") {
			joined += "/"
		}

		u.Path = joined
	}
}

func WithValues(key string, values ...string) MutationFunc {
	return func(u *url.URL) {
		query := u.Query()
		for _, v := range values {
			query.Add(key, v)
		}
		u.RawQuery = query.Encode()
	}
}

func WithoutValues(key string) MutationFunc {
	return func(u *url.URL) {
		query := u.Query()
		query.Del(key)
		u.RawQuery = query.Encode()
	}
}

func WithValuesReset() MutationFunc {
	return func(u *url.URL) {
		u.RawQuery = ""
	}
}
