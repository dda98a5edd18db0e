// Package types provides short aliases for the fixed-width numeric
// types and the capability constraints the rest of the library builds
// on.
package types

import "golang.org/x/exp/constraints"

// Short names for the built-in fixed-width numeric types.
type (
	I8  = int8
	I16 = int16
	I32 = int32
	I64 = int64
	U8  = uint8
	U16 = uint16
	U32 = uint32
	U64 = uint64
	F32 = float32
	F64 = float64
)

// Eq is satisfied by types usable with == and !=.
type Eq interface {
	comparable
}

// Ord is satisfied by types usable with the ordering operators.
type Ord = constraints.Ordered

// Num is satisfied by any built-in integer or float type.
type Num interface {
	constraints.Integer | constraints.Float
}

// Hashable is implemented by values that can produce a 32-bit hash of
// themselves.
type Hashable interface {
	Hash() uint32
}
