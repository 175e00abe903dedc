package stringify

import (
	"strconv"
	"strings"
)

// Binary renders value as a 0b prefixed binary number that is zero padded to width bits.
func Binary(value uint64, width int) string {
	digits := strconv.FormatUint(value, 2)
	if padding := width - len(digits); padding > 0 {
		digits = strings.Repeat("0", padding) + digits
	}

	return "0b" + digits
}
