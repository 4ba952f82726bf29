package runtime

import (
	"log/slog"
	"time"

	"github.com/vcrobe/elmish/dom"
	"github.com/vcrobe/elmish/vdom"
)

// Option configures a Program.
type Option func(*options)

type options struct {
	logger     *slog.Logger
	scheduler  dom.Scheduler
	focusDelay time.Duration
}

func defaultOptions() options {
	return options{
		logger:     slog.Default(),
		focusDelay: vdom.DefaultFocusDelay,
	}
}

// WithLogger sets the logger. A nil logger is ignored.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithScheduler sets the scheduler used for the deferred autofocus. Without
// one, autofocus elements are focused once, right after mount.
func WithScheduler(s dom.Scheduler) Option {
	return func(o *options) {
		o.scheduler = s
	}
}

// WithFocusDelay overrides vdom.DefaultFocusDelay. Negative values are ignored.
func WithFocusDelay(d time.Duration) Option {
	return func(o *options) {
		if d >= 0 {
			o.focusDelay = d
		}
	}
}
