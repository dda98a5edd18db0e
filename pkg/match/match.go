// Package match evaluates a value against an ordered list of arms,
// returning the result of the first arm that accepts it.
//
//	greeting := match.Eval(age,
//		match.Case(18, "hi"),
//		match.Case(25, "oh well hello"),
//		match.Case(37, "see ya"),
//	)
//
// No arm matching is a normal outcome, not an error: Eval returns None
// and callers either branch on absence or append a final Otherwise arm.
package match

import (
	"github.com/funvibe/prelude/pkg/option"
	"github.com/funvibe/prelude/pkg/types"
)

// Arm pairs a predicate over the scrutinee with a producer for the
// arm's result. Arms are built with Case, When, Otherwise and their Fn
// variants; the zero Arm never matches.
type Arm[T, R any] struct {
	accepts func(T) bool
	produce func() R
}

// Case builds an arm that fires when the scrutinee equals value.
func Case[T types.Eq, R any](value T, result R) Arm[T, R] {
	return CaseFn(value, func() R { return result })
}

// CaseFn is Case with a deferred result: produce runs only if this arm
// is selected.
func CaseFn[T types.Eq, R any](value T, produce func() R) Arm[T, R] {
	return Arm[T, R]{
		accepts: func(s T) bool { return s == value },
		produce: produce,
	}
}

// When builds an arm from an arbitrary predicate.
func When[T, R any](pred func(T) bool, result R) Arm[T, R] {
	return WhenFn(pred, func() R { return result })
}

// WhenFn is When with a deferred result.
func WhenFn[T, R any](pred func(T) bool, produce func() R) Arm[T, R] {
	return Arm[T, R]{accepts: pred, produce: produce}
}

// Otherwise builds an arm that accepts any scrutinee. Placed last, it
// makes a match exhaustive.
func Otherwise[T, R any](result R) Arm[T, R] {
	return OtherwiseFn[T](func() R { return result })
}

// OtherwiseFn is Otherwise with a deferred result.
func OtherwiseFn[T, R any](produce func() R) Arm[T, R] {
	return Arm[T, R]{
		accepts: func(T) bool { return true },
		produce: produce,
	}
}

// Eval scans arms in argument order and returns the result of the
// first arm whose predicate accepts scrutinee. Predicates after the
// first accepting one are not called, and at most one producer runs.
// If no arm accepts, Eval returns None. Panics inside caller-supplied
// predicates or producers propagate unmodified.
func Eval[T, R any](scrutinee T, arms ...Arm[T, R]) option.Option[R] {
	for _, arm := range arms {
		if arm.accepts == nil || !arm.accepts(scrutinee) {
			continue
		}
		return option.Some(arm.produce())
	}
	return option.None[R]()
}
