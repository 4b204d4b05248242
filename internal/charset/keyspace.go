package charset

import (
	"errors"
	"fmt"
	"math/bits"
	"strings"
)

var ErrKeyspaceOverflow = errors.New("keyspace does not fit in 64 bits")

// KeyspaceSize returns base^length.
func KeyspaceSize(base, length int) (uint64, error) {
	if base < 0 || length < 0 {
		return 0, fmt.Errorf("invalid keyspace %d^%d", base, length)
	}
	size := uint64(1)
	for i := 0; i < length; i++ {
		hi, lo := bits.Mul64(size, uint64(base))
		if hi != 0 {
			return 0, fmt.Errorf("%w: %d^%d", ErrKeyspaceOverflow, base, length)
		}
		size = lo
	}
	return size, nil
}

// IndexToPassword maps ordinal in [0, len(chars)^length) to a password.
// Digit p (least significant first) selects chars[ordinal/base^p % base] and
// is written at position p, so the mapping is a bijection but string order
// does not follow numeric order.
func IndexToPassword(ordinal uint64, chars []rune, length int) string {
	base := uint64(len(chars))
	var b strings.Builder
	b.Grow(length * 4)
	for i := 0; i < length; i++ {
		b.WriteRune(chars[ordinal%base])
		ordinal /= base
	}
	return b.String()
}
