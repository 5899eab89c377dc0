// Package memo memoizes functions of any arity.
//
// A memoized function caches its results keyed by its arguments. The first
// call for a key runs the target function and stores what it returned; every
// later call for that key returns the stored result without running it.
//
// Keys are strings. By default the argument list is converted with KeyString:
// elements are stringified and joined with commas, nested lists are flattened
// and nil becomes the empty string.
//
//	fib, _ := memo.New(func(args ...any) int { ... })
//	fib.Call(30)
//
// # Key collisions
//
// The default key is textual, not structural. 1 and "1" share a key, so do
// the argument lists (1, 2) and ("1,2"), and pointers key by address rather
// than by the value they point to. When arguments need to be told apart by
// more than their printed form, or when some arguments should not take part
// in the key at all, supply a key function:
//
//	sum, _ := memo.New(add, memo.WithKeyFunc(memo.JoinKey("|")))
//
// # Failures
//
// Nothing is stored for a call that panics, or for a Fallible call that
// returns an error. The next call with the same key computes again.
//
// # Growth
//
// The cache is unbounded and entries are never evicted or replaced. Only
// memoize pure functions over a bounded set of keys.
package memo
