package serial

import (
	"golang.org/x/exp/constraints"
)

// Ordering represents the result of comparing two serial numbers.
// The relation defined by RFC 1982 is partial: besides the familiar
// three outcomes there is a fourth, Undefined, and the relation is
// not transitive in general.
type Ordering int8

const (
	// Less indicates that the first number is behind the second:
	// wrapping forward from the first to the second takes strictly
	// less than half the counter space.
	Less Ordering = iota - 1

	// Equal indicates that both numbers hold the same value.
	Equal

	// Greater indicates that the first number is ahead of the second:
	// wrapping forward from the second to the first takes strictly
	// less than half the counter space.
	Greater

	// Undefined indicates that the numbers are exactly half the
	// counter space apart, where RFC 1982 declares the ordering
	// undefined. It is an expected outcome, not an error, and callers
	// must handle it explicitly.
	Undefined
)

// String returns string representation of the Ordering.
func (o Ordering) String() string {
	switch o {
	case Less:
		return "less"
	case Equal:
		return "equal"
	case Greater:
		return "greater"
	case Undefined:
		return "undefined"
	}
	return "unknown"
}

// Reverse returns the ordering as seen with the operands swapped:
// Less and Greater exchange places, Equal and Undefined are fixed.
func (o Ordering) Reverse() Ordering {
	switch o {
	case Less:
		return Greater
	case Greater:
		return Less
	}
	return o
}

// Compare returns the RFC 1982 ordering of n relative to other.
// A number is ahead of another if reaching it from the other by
// wrapping forward takes strictly less than half the counter space,
// and behind otherwise; at exactly half the result is Undefined.
//
// The relation is not transitive near the half distance. Three
// numbers can form a cycle, e.g. at 8 bits 64 > 0 and 128 > 64 while
// 128 and 0 are Undefined; never assume transitivity.
func (n Number[T]) Compare(other Number[T]) Ordering {
	half := half[T]()
	switch {
	case n.value == other.value:
		return Equal
	case n.value < other.value:
		if d := other.value - n.value; d != half {
			if d < half {
				return Less
			}
			return Greater
		}
	default:
		if d := n.value - other.value; d != half {
			if d > half {
				return Less
			}
			return Greater
		}
	}
	return Undefined
}

// CompareValue returns the RFC 1982 ordering of n relative to a raw
// value. It is equivalent to n.Compare(New(v)); the raw-on-left form
// New(v).Compare(n) yields the Reverse of this result.
func (n Number[T]) CompareValue(v T) Ordering {
	return n.Compare(Number[T]{value: v})
}

// half returns 2^(W-1), the midpoint of the counter space of T.
func half[T constraints.Unsigned]() T {
	return ^T(0)>>1 + 1
}
