package present

import "github.com/dromara/present/internal/keys"

// Key is a PRESENT master key capable of expanding itself into the 32
// round keys the block engine needs. It is implemented by Key80 and
// Key128; nothing else should implement it.
type Key = keys.Schedule

// Key80 is an 80-bit PRESENT master key, most-significant byte first.
type Key80 = keys.Key80

// Key128 is a 128-bit PRESENT master key, most-significant byte first.
type Key128 = keys.Key128

// NewKey80 builds an 80-bit key from a 10-byte slice. The slice is copied;
// the returned Key80 is immutable.
func NewKey80(b []byte) (Key80, error) {
	var k Key80
	if len(b) != len(k) {
		return k, KeySizeError(len(b))
	}
	copy(k[:], b)
	return k, nil
}

// NewKey128 builds a 128-bit key from a 16-byte slice. The slice is
// copied; the returned Key128 is immutable.
func NewKey128(b []byte) (Key128, error) {
	var k Key128
	if len(b) != len(k) {
		return k, KeySizeError(len(b))
	}
	copy(k[:], b)
	return k, nil
}
