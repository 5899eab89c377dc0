package memofn

import (
	"github.com/on-the-ground/memoize_go/memo"
	"github.com/on-the-ground/memoize_go/shared/helper"
)

// Fallible1 is a memoized func(I1) (O1, error).
type Fallible1[I1, O1 any] struct{ *memo.Fallible[O1] }

func (f Fallible1[I1, O1]) Call(i1 I1) (O1, error) { return f.Fallible.Call(i1) }
func (f Fallible1[I1, O1]) Func() func(I1) (O1, error) { return f.Call }

// Fallible2 is a memoized func(I1, I2) (O1, error).
type Fallible2[I1, I2, O1 any] struct{ *memo.Fallible[O1] }

func (f Fallible2[I1, I2, O1]) Call(i1 I1, i2 I2) (O1, error) { return f.Fallible.Call(i1, i2) }
func (f Fallible2[I1, I2, O1]) Func() func(I1, I2) (O1, error) { return f.Call }

// Fallible3 is a memoized func(I1, I2, I3) (O1, error).
type Fallible3[I1, I2, I3, O1 any] struct{ *memo.Fallible[O1] }

func (f Fallible3[I1, I2, I3, O1]) Call(i1 I1, i2 I2, i3 I3) (O1, error) {
	return f.Fallible.Call(i1, i2, i3)
}
func (f Fallible3[I1, I2, I3, O1]) Func() func(I1, I2, I3) (O1, error) { return f.Call }

// Fallible4 is a memoized func(I1, I2, I3, I4) (O1, error).
type Fallible4[I1, I2, I3, I4, O1 any] struct{ *memo.Fallible[O1] }

func (f Fallible4[I1, I2, I3, I4, O1]) Call(i1 I1, i2 I2, i3 I3, i4 I4) (O1, error) {
	return f.Fallible.Call(i1, i2, i3, i4)
}
func (f Fallible4[I1, I2, I3, I4, O1]) Func() func(I1, I2, I3, I4) (O1, error) { return f.Call }

func MemoizeI1E[I1, O1 any](
	fallibleFn func(I1) (O1, error),
	opts ...memo.Option,
) (Fallible1[I1, O1], error) {
	if fallibleFn == nil {
		return Fallible1[I1, O1]{}, errNilFunc
	}
	m, err := memo.NewFallible(func(args ...any) (O1, error) {
		return fallibleFn(helper.ArgAt[I1](args, 0))
	}, opts...)
	return Fallible1[I1, O1]{m}, err
}

func MemoizeI2E[I1, I2, O1 any](
	fallibleFn func(I1, I2) (O1, error),
	opts ...memo.Option,
) (Fallible2[I1, I2, O1], error) {
	if fallibleFn == nil {
		return Fallible2[I1, I2, O1]{}, errNilFunc
	}
	m, err := memo.NewFallible(func(args ...any) (O1, error) {
		return fallibleFn(helper.ArgAt[I1](args, 0), helper.ArgAt[I2](args, 1))
	}, opts...)
	return Fallible2[I1, I2, O1]{m}, err
}

func MemoizeI3E[I1, I2, I3, O1 any](
	fallibleFn func(I1, I2, I3) (O1, error),
	opts ...memo.Option,
) (Fallible3[I1, I2, I3, O1], error) {
	if fallibleFn == nil {
		return Fallible3[I1, I2, I3, O1]{}, errNilFunc
	}
	m, err := memo.NewFallible(func(args ...any) (O1, error) {
		return fallibleFn(helper.ArgAt[I1](args, 0), helper.ArgAt[I2](args, 1), helper.ArgAt[I3](args, 2))
	}, opts...)
	return Fallible3[I1, I2, I3, O1]{m}, err
}

func MemoizeI4E[I1, I2, I3, I4, O1 any](
	fallibleFn func(I1, I2, I3, I4) (O1, error),
	opts ...memo.Option,
) (Fallible4[I1, I2, I3, I4, O1], error) {
	if fallibleFn == nil {
		return Fallible4[I1, I2, I3, I4, O1]{}, errNilFunc
	}
	m, err := memo.NewFallible(func(args ...any) (O1, error) {
		return fallibleFn(
			helper.ArgAt[I1](args, 0),
			helper.ArgAt[I2](args, 1),
			helper.ArgAt[I3](args, 2),
			helper.ArgAt[I4](args, 3),
		)
	}, opts...)
	return Fallible4[I1, I2, I3, I4, O1]{m}, err
}
