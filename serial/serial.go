// Package serial implements serial number arithmetic as defined by
// RFC 1982 (https://tools.ietf.org/html/rfc1982).
//
// A serial number is a value on a circular counter: addition wraps
// modulo 2^W, where W is the bit width of the underlying unsigned
// integer type, and the ordering of two numbers is decided by which
// direction around the circle is shorter. When both directions are
// exactly half the counter space, the ordering is Undefined; see
// chapter 3.2 of RFC 1982 before relying on comparison results.
//
// Go has no operator overloading, so the named methods are the
// contract. Operations where the left operand is a raw integer are
// spelled by lifting it first: New(v).Add(n), New(v).Equals(n),
// New(v).Compare(n).
package serial

import (
	"golang.org/x/exp/constraints"
)

// Number represents an RFC 1982 serial number backed by the unsigned
// integer type T. It occupies one of the 2^W points on a circular
// counter, where W is the bit width of T.
//
// A Number is an immutable comparable value; every operation returns
// a new Number and none mutates its operands.
type Number[T constraints.Unsigned] struct {
	value T
}

// New returns the Number holding the given raw value.
func New[T constraints.Unsigned](value T) Number[T] {
	return Number[T]{value: value}
}

// Value returns the underlying raw value unchanged.
func (n Number[T]) Value() T {
	return n.value
}

// Add returns the sum of the two serial numbers modulo 2^W.
// Overflow wraps around zero; that is the defined behavior of a
// serial number, not an error condition.
func (n Number[T]) Add(other Number[T]) Number[T] {
	return Number[T]{value: n.value + other.value}
}

// AddValue returns the sum of the serial number and a raw value
// modulo 2^W. It is equivalent to n.Add(New(v)).
func (n Number[T]) AddValue(v T) Number[T] {
	return Number[T]{value: n.value + v}
}

// Advance rebinds n to n.AddValue(v). It is the compound form of
// addition and touches no state beyond the receiver itself.
func (n *Number[T]) Advance(v T) {
	n.value += v
}

// Equals indicates whether some other Number holds the same value as
// this one. Equality is plain value equality with no wraparound
// adjustment, unlike Compare.
func (n Number[T]) Equals(other Number[T]) bool {
	return n.value == other.value
}

// EqualsValue indicates whether the serial number holds the given raw
// value. It is equivalent to n.Equals(New(v)).
func (n Number[T]) EqualsValue(v T) bool {
	return n.value == v
}
