package lazyevents

type (
	// Option configures an Emitter at attach time.
	Option func(*config)

	// ListenOption configures a single registration.
	ListenOption func(*listenConfig)

	config struct {
		logger Logger
	}

	listenConfig struct {
		lazy bool
	}
)

// WithLogger sets the logger used for debug output. Nil keeps the no-op logger.
func WithLogger(l Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

// Lazy controls whether a listener registered after its label has emitted is
// replayed the most recent arguments. Listeners are lazy by default.
func Lazy(lazy bool) ListenOption {
	return func(c *listenConfig) { c.lazy = lazy }
}

// NonLazy is Lazy(false): the listener only sees emits that happen after it
// was registered.
func NonLazy() ListenOption {
	return Lazy(false)
}

func newConfig(opts []Option) config {
	c := config{logger: NewNoopLogger()}
	for _, o := range opts {
		o(&c)
	}
	return c
}

func newListenConfig(opts []ListenOption) listenConfig {
	c := listenConfig{lazy: true}
	for _, o := range opts {
		o(&c)
	}
	return c
}
