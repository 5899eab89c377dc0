package memofn_test

import (
	"testing"

	"github.com/on-the-ground/memoize_go/memo"
	"github.com/on-the-ground/memoize_go/memofn"
)

func naiveFib(n int) int {
	if n <= 1 {
		return n
	}
	return naiveFib(n-1) + naiveFib(n-2)
}

func BenchmarkNaiveFib20(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = naiveFib(20)
	}
}

func BenchmarkMemoizedFib20(b *testing.B) {
	var fib memofn.Func1[int, int]
	fib, _ = memofn.MemoizeI1O1(func(n int) int {
		if n <= 1 {
			return n
		}
		return fib.Call(n-1) + fib.Call(n-2)
	})

	for i := 0; i < b.N; i++ {
		_ = fib.Call(20)
	}
}

func naiveLevenshtein(a, b string) int {
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}
	if a[0] == b[0] {
		return naiveLevenshtein(a[1:], b[1:])
	}
	return 1 + min(
		naiveLevenshtein(a[1:], b),
		naiveLevenshtein(a, b[1:]),
		naiveLevenshtein(a[1:], b[1:]),
	)
}

func BenchmarkNaiveLevenshtein(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = naiveLevenshtein("kitten", "sitting")
	}
}

func BenchmarkMemoizedLevenshtein(b *testing.B) {
	keyFns := map[string]memo.KeyFunc{
		"DefaultKey": memo.IdentityKey,
		"JoinKey":    memo.JoinKey("\x00"),
		"HashKey":    memo.HashKey,
	}
	for name, keyFn := range keyFns {
		b.Run(name, func(b *testing.B) {
			var lev memofn.Func2[string, string, int]
			lev, _ = memofn.MemoizeI2O1(func(a, b string) int {
				if len(a) == 0 {
					return len(b)
				}
				if len(b) == 0 {
					return len(a)
				}
				if a[0] == b[0] {
					return lev.Call(a[1:], b[1:])
				}
				return 1 + min(
					lev.Call(a[1:], b),
					lev.Call(a, b[1:]),
					lev.Call(a[1:], b[1:]),
				)
			}, memo.WithKeyFunc(keyFn))

			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				_ = lev.Call("kitten", "sitting")
			}
		})
	}
}

type Point struct {
	X, Y float64
}

func naiveDist(p1, p2 Point) float64 {
	dx := p1.X - p2.X
	dy := p1.Y - p2.Y
	return dx*dx + dy*dy
}

func BenchmarkNaiveDist(b *testing.B) {
	p1 := Point{1.5, 2.5}
	p2 := Point{3.0, 4.0}
	for i := 0; i < b.N; i++ {
		_ = naiveDist(p1, p2)
	}
}

func BenchmarkMemoizedDist(b *testing.B) {
	dist, _ := memofn.MemoizeI2O1(naiveDist)

	p1 := Point{1.5, 2.5}
	p2 := Point{3.0, 4.0}
	for i := 0; i < b.N; i++ {
		_ = dist.Call(p1, p2)
	}
}
