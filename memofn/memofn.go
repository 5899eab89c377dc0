package memofn

import (
	"fmt"

	"github.com/on-the-ground/memoize_go/memo"
	"github.com/on-the-ground/memoize_go/shared/helper"
)

// Func1 is a memoized func(I1) O1.
type Func1[I1, O1 any] struct{ *memo.Memoized[O1] }

func (f Func1[I1, O1]) Call(i1 I1) O1 { return f.Memoized.Call(i1) }
func (f Func1[I1, O1]) Func() func(I1) O1 { return f.Call }

// Func2 is a memoized func(I1, I2) O1.
type Func2[I1, I2, O1 any] struct{ *memo.Memoized[O1] }

func (f Func2[I1, I2, O1]) Call(i1 I1, i2 I2) O1 { return f.Memoized.Call(i1, i2) }
func (f Func2[I1, I2, O1]) Func() func(I1, I2) O1 { return f.Call }

// Func3 is a memoized func(I1, I2, I3) O1.
type Func3[I1, I2, I3, O1 any] struct{ *memo.Memoized[O1] }

func (f Func3[I1, I2, I3, O1]) Call(i1 I1, i2 I2, i3 I3) O1 { return f.Memoized.Call(i1, i2, i3) }
func (f Func3[I1, I2, I3, O1]) Func() func(I1, I2, I3) O1 { return f.Call }

// Func4 is a memoized func(I1, I2, I3, I4) O1.
type Func4[I1, I2, I3, I4, O1 any] struct{ *memo.Memoized[O1] }

func (f Func4[I1, I2, I3, I4, O1]) Call(i1 I1, i2 I2, i3 I3, i4 I4) O1 {
	return f.Memoized.Call(i1, i2, i3, i4)
}
func (f Func4[I1, I2, I3, I4, O1]) Func() func(I1, I2, I3, I4) O1 { return f.Call }

func MemoizeI1O1[I1, O1 any](
	pureFn func(I1) O1,
	opts ...memo.Option,
) (Func1[I1, O1], error) {
	if pureFn == nil {
		return Func1[I1, O1]{}, errNilFunc
	}
	m, err := memo.New(func(args ...any) O1 {
		return pureFn(helper.ArgAt[I1](args, 0))
	}, opts...)
	return Func1[I1, O1]{m}, err
}

func MemoizeI2O1[I1, I2, O1 any](
	pureFn func(I1, I2) O1,
	opts ...memo.Option,
) (Func2[I1, I2, O1], error) {
	if pureFn == nil {
		return Func2[I1, I2, O1]{}, errNilFunc
	}
	m, err := memo.New(func(args ...any) O1 {
		return pureFn(helper.ArgAt[I1](args, 0), helper.ArgAt[I2](args, 1))
	}, opts...)
	return Func2[I1, I2, O1]{m}, err
}

func MemoizeI3O1[I1, I2, I3, O1 any](
	pureFn func(I1, I2, I3) O1,
	opts ...memo.Option,
) (Func3[I1, I2, I3, O1], error) {
	if pureFn == nil {
		return Func3[I1, I2, I3, O1]{}, errNilFunc
	}
	m, err := memo.New(func(args ...any) O1 {
		return pureFn(helper.ArgAt[I1](args, 0), helper.ArgAt[I2](args, 1), helper.ArgAt[I3](args, 2))
	}, opts...)
	return Func3[I1, I2, I3, O1]{m}, err
}

func MemoizeI4O1[I1, I2, I3, I4, O1 any](
	pureFn func(I1, I2, I3, I4) O1,
	opts ...memo.Option,
) (Func4[I1, I2, I3, I4, O1], error) {
	if pureFn == nil {
		return Func4[I1, I2, I3, I4, O1]{}, errNilFunc
	}
	m, err := memo.New(func(args ...any) O1 {
		return pureFn(
			helper.ArgAt[I1](args, 0),
			helper.ArgAt[I2](args, 1),
			helper.ArgAt[I3](args, 2),
			helper.ArgAt[I4](args, 3),
		)
	}, opts...)
	return Func4[I1, I2, I3, I4, O1]{m}, err
}

var errNilFunc = fmt.Errorf("%w: function to memoize must not be nil", memo.ErrInvalidArgument)
