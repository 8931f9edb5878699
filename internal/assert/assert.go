// Package assert provides minimal test assertion helpers.
package assert

import (
	"reflect"
	"testing"
)

// Equal fails the test if a and b are not deeply equal.
func Equal[T any](t *testing.T, a T, b T) {
	t.Helper()
	if !reflect.DeepEqual(a, b) {
		t.Fatalf("%v != %v", a, b)
	}
}

// NotEqual fails the test if a and b are deeply equal.
func NotEqual[T any](t *testing.T, a T, b T) {
	t.Helper()
	if reflect.DeepEqual(a, b) {
		t.Fatalf("%v == %v", a, b)
	}
}

// True fails the test if the condition does not hold.
func True(t *testing.T, condition bool) {
	t.Helper()
	if !condition {
		t.Fatal("condition does not hold")
	}
}
