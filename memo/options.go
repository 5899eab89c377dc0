package memo

import (
	"fmt"

	"go.uber.org/zap"
)

// Option configures a memoizer at construction time.
type Option func(*config)

type config struct {
	keyFns    []KeyFunc
	logger    *zap.Logger
	loggerSet bool
}

// WithKeyFunc maps the captured argument list of every call to a key value.
// The string form of that value (see KeyString) is the cache key.
// At most one key function may be given.
func WithKeyFunc(keyFn KeyFunc) Option {
	return func(c *config) {
		c.keyFns = append(c.keyFns, keyFn)
	}
}

// WithLogger makes the memoizer emit debug events to logger.
func WithLogger(logger *zap.Logger) Option {
	return func(c *config) {
		c.logger = logger
		c.loggerSet = true
	}
}

func newConfig(opts []Option) (config, error) {
	c := config{}
	for _, opt := range opts {
		opt(&c)
	}
	if c.loggerSet && c.logger == nil {
		return config{}, fmt.Errorf("%w: logger must not be nil", ErrInvalidArgument)
	}
	if c.logger == nil {
		c.logger = zap.NewNop()
	}
	return c, nil
}

// keyFunc flattens the optional key function into a single callable.
//
// Accepts either 0 or 1 key functions, and the one given must not be nil.
func (c config) keyFunc() (KeyFunc, error) {
	switch len(c.keyFns) {
	case 0:
		return IdentityKey, nil
	case 1:
		if c.keyFns[0] == nil {
			return nil, fmt.Errorf("%w: key function must be a function, got nil", ErrInvalidArgument)
		}
		return c.keyFns[0], nil
	default:
		return nil, fmt.Errorf("%w: only one key function allowed, got %d", ErrInvalidArgument, len(c.keyFns))
	}
}
