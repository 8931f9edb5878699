package serial

import (
	"fmt"
	"strconv"
	"strings"
)

// String returns the decimal representation of the raw value.
func (n Number[T]) String() string {
	return strconv.FormatUint(uint64(n.value), 10)
}

// Format implements fmt.Formatter. The verb and any flags, width, and
// precision are forwarded to the raw value, so a Number renders
// exactly like the unsigned integer it wraps under every directive
// (%d, %v, %b, %o, %x, %X, and their flagged forms).
func (n Number[T]) Format(f fmt.State, verb rune) {
	var directive strings.Builder
	directive.WriteByte('%')
	for _, flag := range "-+# 0" {
		if f.Flag(int(flag)) {
			directive.WriteRune(flag)
		}
	}
	if width, ok := f.Width(); ok {
		directive.WriteString(strconv.Itoa(width))
	}
	if precision, ok := f.Precision(); ok {
		directive.WriteByte('.')
		directive.WriteString(strconv.Itoa(precision))
	}
	directive.WriteRune(verb)
	fmt.Fprintf(f, directive.String(), n.value)
}
