// Package block implements the PRESENT cipher's 31-round SPN block
// transformation over a 64-bit state. Cipher satisfies the standard
// library's crypto/cipher.Block interface, so the mode layer above it
// (present/mode) can drive ECB/CBC framing without knowing anything
// about S-boxes, P-boxes, or round keys.
package block

import (
	"fmt"

	"github.com/dromara/present/internal/keys"
	"github.com/dromara/present/internal/pbox"
	"github.com/dromara/present/internal/sbox"
)

// Size is the PRESENT block size in bytes (64 bits).
const Size = 8

// Cipher holds the 32 round keys derived from a master key. It has no
// other mutable state: Encrypt/Decrypt work on caller-supplied buffers
// and never retain a reference to them.
type Cipher struct {
	roundKeys [32]uint64
}

// New derives round keys from key and returns a Cipher ready to encrypt
// or decrypt 8-byte blocks.
func New(key keys.Schedule) *Cipher {
	return &Cipher{roundKeys: key.RoundKeys()}
}

// BlockSize returns the PRESENT block size in bytes, satisfying
// crypto/cipher.Block.
func (c *Cipher) BlockSize() int {
	return Size
}

// Encrypt encrypts the first block of src into dst using the PRESENT
// round function: 31 rounds of (key add, substitute, permute) followed
// by a final key-only whitening add.
func (c *Cipher) Encrypt(dst, src []byte) {
	requireBlock(dst, src)

	state := fromBytes(src)
	for r := 0; r <= 30; r++ {
		state ^= c.roundKeys[r]
		state = substitute(state, sbox.ApplyEnc)
		state = pbox.ApplyEnc(state)
	}
	state ^= c.roundKeys[31]

	toBytes(dst, state)
}

// Decrypt decrypts the first block of src into dst, reversing Encrypt:
// descending key add, inverse permute, inverse substitute, ending in a
// final add of round key 0.
func (c *Cipher) Decrypt(dst, src []byte) {
	requireBlock(dst, src)

	state := fromBytes(src)
	for r := 31; r >= 1; r-- {
		state ^= c.roundKeys[r]
		state = pbox.ApplyDec(state)
		state = substitute(state, sbox.ApplyDec)
	}
	state ^= c.roundKeys[0]

	toBytes(dst, state)
}

func requireBlock(dst, src []byte) {
	if len(src) < Size || len(dst) < Size {
		panic(fmt.Sprintf("block: buffers must be at least %d bytes", Size))
	}
}

// substitute splits state into sixteen 4-bit nibbles and maps each one
// independently through apply. All sixteen nibbles are substituted, never
// fifteen — a state with any untouched nibble is not a valid substitution
// layer output.
func substitute(state uint64, apply func(byte) byte) uint64 {
	var out uint64
	for n := 0; n < 16; n++ {
		shift := uint(4 * n)
		nibble := byte(state>>shift) & 0x0F
		out |= uint64(apply(nibble)) << shift
	}
	return out
}

// fromBytes loads an 8-byte big-endian block into a 64-bit state.
func fromBytes(b []byte) uint64 {
	var state uint64
	for i := 0; i < Size; i++ {
		state = state<<8 | uint64(b[i])
	}
	return state
}

// toBytes stores a 64-bit state into an 8-byte big-endian block.
func toBytes(dst []byte, state uint64) {
	for i := Size - 1; i >= 0; i-- {
		dst[i] = byte(state)
		state >>= 8
	}
}
