package slidetree

import "log/slog"

// options holds the configuration applied when a part is wrapped.
type options struct {
	logger *slog.Logger
}

// Option configures a part created by NewSlideMaster, NewSlideLayout,
// NewSlide or one of the Read functions.
type Option func(*options)

// WithLogger sets the logger used for resolution diagnostics. A layout or
// slide created without one shares the logger of the part it is linked to.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

func buildOptions(inherited *slog.Logger, opts []Option) *options {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}
	if o.logger == nil {
		o.logger = inherited
	}
	if o.logger == nil {
		o.logger = slog.New(slog.DiscardHandler)
	}
	return o
}
