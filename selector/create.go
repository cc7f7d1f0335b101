package selector

import "fmt"

// Identity returns an input function that hands the argument through unchanged.
// A selector over Identity alone hits only when called with the very same argument.
func Identity[S any]() func(S) S {
	return func(s S) S { return s }
}

// IdentityE is the fallible form of Identity, for Create1E to Create4E.
func IdentityE[S any]() func(S) (S, error) {
	return infallible(Identity[S]())
}

func Create1[S, I1, O any](
	in1 func(S) I1,
	resultFn func(I1) O,
	opts ...Option,
) *Selector[S, O] {
	return Create1E[S, I1, O](infallible(in1), func(i1 I1) (O, error) {
		return resultFn(i1), nil
	}, opts...)
}

func Create2[S, I1, I2, O any](
	in1 func(S) I1,
	in2 func(S) I2,
	resultFn func(I1, I2) O,
	opts ...Option,
) *Selector[S, O] {
	return Create2E[S, I1, I2, O](infallible(in1), infallible(in2), func(i1 I1, i2 I2) (O, error) {
		return resultFn(i1, i2), nil
	}, opts...)
}

func Create3[S, I1, I2, I3, O any](
	in1 func(S) I1,
	in2 func(S) I2,
	in3 func(S) I3,
	resultFn func(I1, I2, I3) O,
	opts ...Option,
) *Selector[S, O] {
	return Create3E[S, I1, I2, I3, O](infallible(in1), infallible(in2), infallible(in3), func(i1 I1, i2 I2, i3 I3) (O, error) {
		return resultFn(i1, i2, i3), nil
	}, opts...)
}

func Create4[S, I1, I2, I3, I4, O any](
	in1 func(S) I1,
	in2 func(S) I2,
	in3 func(S) I3,
	in4 func(S) I4,
	resultFn func(I1, I2, I3, I4) O,
	opts ...Option,
) *Selector[S, O] {
	return Create4E[S, I1, I2, I3, I4, O](infallible(in1), infallible(in2), infallible(in3), infallible(in4), func(i1 I1, i2 I2, i3 I3, i4 I4) (O, error) {
		return resultFn(i1, i2, i3, i4), nil
	}, opts...)
}

func Create1E[S, I1, O any](
	in1 func(S) (I1, error),
	resultFn func(I1) (O, error),
	opts ...Option,
) *Selector[S, O] {
	return New[S, O](
		[]InputFunc[S]{erase(in1)},
		func(args []any) (O, error) {
			return resultFn(as[I1](args[0]))
		},
		opts...,
	)
}

func Create2E[S, I1, I2, O any](
	in1 func(S) (I1, error),
	in2 func(S) (I2, error),
	resultFn func(I1, I2) (O, error),
	opts ...Option,
) *Selector[S, O] {
	return New[S, O](
		[]InputFunc[S]{erase(in1), erase(in2)},
		func(args []any) (O, error) {
			return resultFn(as[I1](args[0]), as[I2](args[1]))
		},
		opts...,
	)
}

func Create3E[S, I1, I2, I3, O any](
	in1 func(S) (I1, error),
	in2 func(S) (I2, error),
	in3 func(S) (I3, error),
	resultFn func(I1, I2, I3) (O, error),
	opts ...Option,
) *Selector[S, O] {
	return New[S, O](
		[]InputFunc[S]{erase(in1), erase(in2), erase(in3)},
		func(args []any) (O, error) {
			return resultFn(as[I1](args[0]), as[I2](args[1]), as[I3](args[2]))
		},
		opts...,
	)
}

func Create4E[S, I1, I2, I3, I4, O any](
	in1 func(S) (I1, error),
	in2 func(S) (I2, error),
	in3 func(S) (I3, error),
	in4 func(S) (I4, error),
	resultFn func(I1, I2, I3, I4) (O, error),
	opts ...Option,
) *Selector[S, O] {
	return New[S, O](
		[]InputFunc[S]{erase(in1), erase(in2), erase(in3), erase(in4)},
		func(args []any) (O, error) {
			return resultFn(as[I1](args[0]), as[I2](args[1]), as[I3](args[2]), as[I4](args[3]))
		},
		opts...,
	)
}

func infallible[S, I any](fn func(S) I) func(S) (I, error) {
	return func(s S) (I, error) {
		return fn(s), nil
	}
}

func erase[S, I any](fn func(S) (I, error)) InputFunc[S] {
	return func(s S) (any, error) {
		return fn(s)
	}
}

// as recovers the typed value of an erased input. A nil interface maps to the zero
// value, which is what an input returning a nil map or pointer produced.
func as[T any](v any) T {
	if v == nil {
		var zero T
		return zero
	}
	t, ok := v.(T)
	if !ok {
		panic(fmt.Errorf("selector: unexpected input type: %T", v))
	}
	return t
}
