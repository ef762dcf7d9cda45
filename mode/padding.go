package mode

// Pad adds PKCS#5/7-style padding to src so its length becomes a multiple
// of blockSize. Padding is always added — even when len(src) is already a
// multiple of blockSize, a full block of padding is appended — because
// decryption must be able to tell padded data from an unpadded block.
func Pad(src []byte, blockSize int) []byte {
	padLen := blockSize - len(src)%blockSize
	padded := make([]byte, len(src)+padLen)
	copy(padded, src)
	for i := len(src); i < len(padded); i++ {
		padded[i] = byte(padLen)
	}
	return padded
}

// Unpad removes and validates PKCS#5/7-style padding. The last byte p of
// src must satisfy 1 <= p <= blockSize, and the last p bytes of src must
// all equal p; any other shape is rejected as InvalidPaddingError rather
// than silently truncated. A src shorter than one block is a caller bug,
// not a recoverable condition, so it panics.
func Unpad(src []byte, blockSize int) ([]byte, error) {
	if len(src) < blockSize {
		panic("mode: unpad buffer shorter than one block")
	}

	padLen := int(src[len(src)-1])
	if padLen < 1 || padLen > blockSize || padLen > len(src) {
		return nil, InvalidPaddingError{}
	}
	for i := len(src) - padLen; i < len(src); i++ {
		if src[i] != byte(padLen) {
			return nil, InvalidPaddingError{}
		}
	}
	return src[:len(src)-padLen], nil
}
