// Package ranges provides interval value types with the membership
// semantics of the `..` (half-open), `..=` (closed) and prefix `..<`
// constructs, plus ascending iteration over integer bounds.
package ranges

import (
	"fmt"
	"iter"

	"golang.org/x/exp/constraints"
)

// Range is the half-open interval [Start, End).
type Range[T constraints.Ordered] struct {
	Start T
	End   T
}

// ClosedRange is the closed interval [Start, End].
type ClosedRange[T constraints.Ordered] struct {
	Start T
	End   T
}

// RangeTo covers every value strictly below End.
type RangeTo[T constraints.Ordered] struct {
	End T
}

// RangeFrom covers every value at or above Start.
type RangeFrom[T constraints.Ordered] struct {
	Start T
}

// Until returns the half-open interval [start, end).
func Until[T constraints.Ordered](start, end T) Range[T] {
	return Range[T]{Start: start, End: end}
}

// Through returns the closed interval [start, end].
func Through[T constraints.Ordered](start, end T) ClosedRange[T] {
	return ClosedRange[T]{Start: start, End: end}
}

// Below returns the prefix interval covering everything under end.
func Below[T constraints.Ordered](end T) RangeTo[T] {
	return RangeTo[T]{End: end}
}

// From returns the suffix interval covering start and everything
// above it.
func From[T constraints.Ordered](start T) RangeFrom[T] {
	return RangeFrom[T]{Start: start}
}

func (r Range[T]) Contains(v T) bool {
	return r.Start <= v && v < r.End
}

func (r Range[T]) IsEmpty() bool {
	return r.Start >= r.End
}

func (r Range[T]) String() string {
	return fmt.Sprintf("%v..%v", r.Start, r.End)
}

func (r ClosedRange[T]) Contains(v T) bool {
	return r.Start <= v && v <= r.End
}

func (r ClosedRange[T]) IsEmpty() bool {
	return r.Start > r.End
}

func (r ClosedRange[T]) String() string {
	return fmt.Sprintf("%v..=%v", r.Start, r.End)
}

func (r RangeTo[T]) Contains(v T) bool {
	return v < r.End
}

func (r RangeTo[T]) String() string {
	return fmt.Sprintf("..%v", r.End)
}

func (r RangeFrom[T]) Contains(v T) bool {
	return v >= r.Start
}

func (r RangeFrom[T]) String() string {
	return fmt.Sprintf("%v..", r.Start)
}

// Values yields the members of r in ascending order.
func Values[T constraints.Integer](r Range[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for v := r.Start; v < r.End; v++ {
			if !yield(v) {
				return
			}
		}
	}
}

// ClosedValues yields the members of r in ascending order, End
// included.
func ClosedValues[T constraints.Integer](r ClosedRange[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		if r.Start > r.End {
			return
		}
		// End may be the maximum of T, so stop before incrementing
		// past it.
		for v := r.Start; ; v++ {
			if !yield(v) || v == r.End {
				return
			}
		}
	}
}
