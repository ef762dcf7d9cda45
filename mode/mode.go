// Package mode implements the block-framing layer that adapts PRESENT's
// single-block cipher.Block engine to arbitrary-length byte strings: ECB
// and CBC, built directly over the standard library's crypto/cipher.Block
// interface.
package mode

import "crypto/cipher"

// BlockMode names a supported block cipher mode.
type BlockMode string

// Supported block cipher modes.
const (
	ECB BlockMode = "ECB"
	CBC BlockMode = "CBC"
)

// Encrypt encrypts paddedSrc (whose length must already be a multiple of
// block.BlockSize()) under the given mode. CBC requires a non-empty iv
// sized to the block; ECB ignores iv entirely.
func Encrypt(mode BlockMode, paddedSrc, iv []byte, block cipher.Block) (dst []byte, err error) {
	blockSize := block.BlockSize()
	if len(paddedSrc)%blockSize != 0 {
		return nil, InvalidPlaintextError{Mode: mode, Length: len(paddedSrc), BlockSize: blockSize}
	}

	switch mode {
	case ECB:
		return cryptBlocks(paddedSrc, blockSize, block.Encrypt), nil
	case CBC:
		if len(iv) == 0 {
			return nil, EmptyIVError{Mode: mode}
		}
		if len(iv) != blockSize {
			return nil, InvalidIVError{Mode: mode, Length: len(iv), BlockSize: blockSize}
		}
		return cbcEncrypt(paddedSrc, iv, blockSize, block), nil
	default:
		return nil, UnsupportedModeError{Mode: mode}
	}
}

// Decrypt decrypts src (whose length must already be a multiple of
// block.BlockSize()) under the given mode, returning the still-padded
// plaintext. Callers strip padding separately.
func Decrypt(mode BlockMode, src, iv []byte, block cipher.Block) (dst []byte, err error) {
	blockSize := block.BlockSize()
	if len(src)%blockSize != 0 {
		return nil, InvalidCiphertextError{Mode: mode, Length: len(src), BlockSize: blockSize}
	}

	switch mode {
	case ECB:
		return cryptBlocks(src, blockSize, block.Decrypt), nil
	case CBC:
		if len(iv) == 0 {
			return nil, EmptyIVError{Mode: mode}
		}
		if len(iv) != blockSize {
			return nil, InvalidIVError{Mode: mode, Length: len(iv), BlockSize: blockSize}
		}
		return cbcDecrypt(src, iv, blockSize, block), nil
	default:
		return nil, UnsupportedModeError{Mode: mode}
	}
}

// cryptBlocks applies op (Encrypt or Decrypt) independently to each block
// of src, which is how ECB is defined: every block is an island.
func cryptBlocks(src []byte, blockSize int, op func(dst, src []byte)) []byte {
	dst := make([]byte, len(src))
	for i := 0; i < len(src); i += blockSize {
		op(dst[i:i+blockSize], src[i:i+blockSize])
	}
	return dst
}

// cbcEncrypt chains blocks forward: c[i] = E_K(p[i] XOR c[i-1]), c[-1] = iv.
func cbcEncrypt(src, iv []byte, blockSize int, block cipher.Block) []byte {
	dst := make([]byte, len(src))
	prev := iv
	buf := make([]byte, blockSize)
	for i := 0; i < len(src); i += blockSize {
		xorInto(buf, src[i:i+blockSize], prev)
		block.Encrypt(dst[i:i+blockSize], buf)
		prev = dst[i : i+blockSize]
	}
	return dst
}

// cbcDecrypt chains blocks backward: p[i] = D_K(c[i]) XOR c[i-1], c[-1] = iv.
//
// The incoming ciphertext block is copied into cur *before* decrypting
// into dst and only becomes prev after the XOR, so an in-place src==dst call (or any overlap) can never clobber
// the "previous ciphertext" the next iteration needs.
func cbcDecrypt(src, iv []byte, blockSize int, block cipher.Block) []byte {
	dst := make([]byte, len(src))
	prev := make([]byte, blockSize)
	copy(prev, iv)
	cur := make([]byte, blockSize)
	for i := 0; i < len(src); i += blockSize {
		copy(cur, src[i:i+blockSize])
		block.Decrypt(dst[i:i+blockSize], cur)
		xorInto(dst[i:i+blockSize], dst[i:i+blockSize], prev)
		copy(prev, cur)
	}
	return dst
}

func xorInto(dst, a, b []byte) {
	for i := range dst {
		dst[i] = a[i] ^ b[i]
	}
}
