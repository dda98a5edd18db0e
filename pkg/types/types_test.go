package types

import "testing"

// The aliases must be interchangeable with the underlying built-ins,
// not distinct defined types.
func TestAliasesAreTransparent(t *testing.T) {
	var i8 I8 = int8(-128)
	var u64 U64 = uint64(1) << 63
	var f32 F32 = float32(0.5)

	if int8(i8) != -128 {
		t.Errorf("I8 round-trip = %d, want -128", i8)
	}
	if uint64(u64) != 1<<63 {
		t.Errorf("U64 round-trip = %d, want 1<<63", u64)
	}
	if float64(f32) != 0.5 {
		t.Errorf("F32 round-trip = %v, want 0.5", f32)
	}
}

func equalOf[T Eq](a, b T) bool { return a == b }

func maxOf[T Ord](a, b T) T {
	if a > b {
		return a
	}
	return b
}

func sum[T Num](vs ...T) T {
	var total T
	for _, v := range vs {
		total += v
	}
	return total
}

func TestCapabilityConstraints(t *testing.T) {
	if !equalOf("a", "a") || equalOf(1, 2) {
		t.Errorf("Eq constraint gave wrong equality results")
	}
	if got := maxOf(3, 7); got != 7 {
		t.Errorf("maxOf(3, 7) = %d, want 7", got)
	}
	if got := maxOf("a", "b"); got != "b" {
		t.Errorf("maxOf(a, b) = %q, want %q", got, "b")
	}
	if got := sum[I32](1, 2, 3); got != 6 {
		t.Errorf("sum(1, 2, 3) = %d, want 6", got)
	}
	if got := sum(1.5, 2.5); got != 4.0 {
		t.Errorf("sum(1.5, 2.5) = %v, want 4.0", got)
	}
}

type constHash struct{ h uint32 }

func (c constHash) Hash() uint32 { return c.h }

func TestHashable(t *testing.T) {
	var h Hashable = constHash{h: 7}
	if got := h.Hash(); got != 7 {
		t.Errorf("Hash() = %d, want 7", got)
	}
}
