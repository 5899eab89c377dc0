// Package memofn provides typed memoizers for functions of fixed arity.
//
// Memoizing is not just a way to skip work. It makes the developer ask:
//
//	→ "Is this function really pure?"
//	→ "Can this computation be treated as a lazy table?"
//
// Every wrapper here runs the target at most once per key and then answers
// from its table for the lifetime of the wrapper. That is only sound when
// the target depends on nothing but its arguments.
//
// Features:
//   - MemoizeI1O1 to MemoizeI4O1: typed memoizers for one to four arguments.
//   - MemoizeI1E to MemoizeI4E: the same for functions returning an error.
//     Errors are returned as is and never cached.
//   - Keys and options come from package memo, so memo.WithKeyFunc and
//     memo.WithLogger apply unchanged.
//
// See memofn_test.go and memofn_bench_test.go for usage and benchmarks.
//
// WARNING: Do not memoize impure functions (e.g., those depending on time, I/O, etc).
package memofn
