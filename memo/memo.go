package memo

import (
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// Memoized wraps a function returning a single value.
// It is safe for concurrent use.
type Memoized[R any] struct {
	*memoizer[R]
}

// New returns a memoized version of fn.
//
// Calls are keyed by the string form of their arguments, or of the value
// returned by the function given with WithKeyFunc. The target runs at most
// once per key; a panicking call stores nothing and is retried next time.
//
// New fails with ErrInvalidArgument if fn is nil or an option is unusable.
func New[R any](fn func(args ...any) R, opts ...Option) (*Memoized[R], error) {
	if fn == nil {
		return nil, fmt.Errorf("%w: function to memoize must not be nil", ErrInvalidArgument)
	}
	m, err := newMemoizer(func(args ...any) (R, error) {
		return fn(args...), nil
	}, opts)
	if err != nil {
		return nil, err
	}
	return &Memoized[R]{memoizer: m}, nil
}

// Call returns the cached result for args, computing it on a miss.
func (w *Memoized[R]) Call(args ...any) R {
	v, _ := w.call(args)
	return v
}

// Func returns Call as a plain function value.
func (w *Memoized[R]) Func() func(args ...any) R {
	return w.Call
}

// Fallible wraps a function that can fail. Errors are returned to the caller
// as is and never cached.
type Fallible[R any] struct {
	*memoizer[R]
}

// NewFallible is New for functions returning an error alongside their result.
// Only successful results are stored.
func NewFallible[R any](fn func(args ...any) (R, error), opts ...Option) (*Fallible[R], error) {
	if fn == nil {
		return nil, fmt.Errorf("%w: function to memoize must not be nil", ErrInvalidArgument)
	}
	m, err := newMemoizer(fn, opts)
	if err != nil {
		return nil, err
	}
	return &Fallible[R]{memoizer: m}, nil
}

// Call returns the cached result for args, computing it on a miss.
func (w *Fallible[R]) Call(args ...any) (R, error) {
	return w.call(args)
}

// Func returns Call as a plain function value.
func (w *Fallible[R]) Func() func(args ...any) (R, error) {
	return w.Call
}

type memoizer[R any] struct {
	id     string
	fn     func(args ...any) (R, error)
	keyFn  KeyFunc
	table  *table[R]
	flight singleflight.Group
	logger *zap.Logger
}

func newMemoizer[R any](fn func(args ...any) (R, error), opts []Option) (*memoizer[R], error) {
	cfg, err := newConfig(opts)
	if err != nil {
		return nil, err
	}
	keyFn, err := cfg.keyFunc()
	if err != nil {
		return nil, err
	}
	m := &memoizer[R]{
		id:     uuid.New().String(),
		fn:     fn,
		keyFn:  keyFn,
		table:  newTable[R](),
		logger: cfg.logger,
	}
	m.logger.Debug("memoize: created", zap.String("id", m.id))
	return m, nil
}

// outcome carries a computation through the singleflight group, including a
// recovered panic that every waiter has to re-raise.
type outcome[R any] struct {
	value    R
	panicked bool
	panicVal any
}

func (m *memoizer[R]) call(args []any) (R, error) {
	captured := make([]any, len(args))
	copy(captured, args)
	key := KeyString(m.keyFn(captured))

	if v, ok := m.table.load(key); ok {
		m.logger.Debug("memoize: cache hit", zap.String("id", m.id), zap.String("key", key))
		return v, nil
	}

	res, err, _ := m.flight.Do(key, func() (any, error) {
		return m.compute(key, captured)
	})
	out := res.(outcome[R])
	if out.panicked {
		panic(out.panicVal)
	}
	if err != nil {
		var zero R
		return zero, err
	}
	return out.value, nil
}

func (m *memoizer[R]) compute(key string, args []any) (out outcome[R], err error) {
	// a flight that finished between our lookup and Do already stored the key
	if v, ok := m.table.load(key); ok {
		return outcome[R]{value: v}, nil
	}
	m.logger.Debug("memoize: cache miss", zap.String("id", m.id), zap.String("key", key))

	defer func() {
		if r := recover(); r != nil {
			m.logger.Debug("memoize: computation panicked",
				zap.String("id", m.id), zap.String("key", key), zap.Any("panic", r), zap.Stack("stack"))
			out, err = outcome[R]{panicked: true, panicVal: r}, nil
		}
	}()

	v, err := m.fn(args...)
	if err != nil {
		m.logger.Debug("memoize: computation failed",
			zap.String("id", m.id), zap.String("key", key), zap.Error(err))
		return outcome[R]{}, err
	}
	return outcome[R]{value: m.table.storeIfAbsent(key, v)}, nil
}

// ID identifies this memoizer in log output.
func (m *memoizer[R]) ID() string {
	return m.id
}

// Cache returns a copy of the cached results by key. Changing the copy does
// not affect the memoizer.
func (m *memoizer[R]) Cache() map[string]R {
	return m.table.snapshot()
}

// Has reports whether key has a cached result.
func (m *memoizer[R]) Has(key string) bool {
	_, ok := m.table.load(key)
	return ok
}

// Lookup returns the cached result for key, if any.
func (m *memoizer[R]) Lookup(key string) (R, bool) {
	return m.table.load(key)
}

// Len returns the number of cached results.
func (m *memoizer[R]) Len() int {
	return m.table.len()
}
