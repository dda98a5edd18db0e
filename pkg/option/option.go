package option

import "fmt"

// Option holds either a present value (Some) or nothing (None).
// The zero value is None.
type Option[T any] struct {
	value   T
	present bool
}

// Some wraps a value into a present Option.
func Some[T any](v T) Option[T] {
	return Option[T]{value: v, present: true}
}

// None returns the absent Option for T.
func None[T any]() Option[T] {
	return Option[T]{}
}

// IsSome reports whether a value is present.
func (o Option[T]) IsSome() bool { return o.present }

// IsNone reports whether the option is absent.
func (o Option[T]) IsNone() bool { return !o.present }

// Get returns the value and whether it is present.
func (o Option[T]) Get() (T, bool) {
	return o.value, o.present
}

// Unwrap returns the value. It panics on None.
func (o Option[T]) Unwrap() T {
	if !o.present {
		panic("option: unwrap: expected Some, got None")
	}
	return o.value
}

// UnwrapOr returns the value, or fallback on None.
func (o Option[T]) UnwrapOr(fallback T) T {
	if !o.present {
		return fallback
	}
	return o.value
}

// UnwrapOrElse returns the value, or the result of produce on None.
// produce is not called when a value is present.
func (o Option[T]) UnwrapOrElse(produce func() T) T {
	if !o.present {
		return produce()
	}
	return o.value
}

func (o Option[T]) String() string {
	if !o.present {
		return "None"
	}
	return fmt.Sprintf("Some(%v)", o.value)
}

// Map applies f to the contained value, if any.
func Map[T, U any](o Option[T], f func(T) U) Option[U] {
	if !o.present {
		return None[U]()
	}
	return Some(f(o.value))
}
