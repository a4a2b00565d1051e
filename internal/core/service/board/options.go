package board

type Options struct {
	Refresh RefreshFunc
}

type OptionFunc func(opts *Options)

func NewOptions(funcs ...OptionFunc) *Options {
	opts := &Options{}

	for _, fn := range funcs {
		fn(opts)
	}

	return opts
}

// WithRefreshFunc registers the function called after each successful
// update, so that the snapshot owner can replace its snapshot.
func WithRefreshFunc(fn RefreshFunc) OptionFunc {
	return func(opts *Options) {
		opts.Refresh = fn
	}
}
