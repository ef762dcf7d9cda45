// Package keys implements the PRESENT cipher's two master-key schedules.
// Both the 80-bit and 128-bit variants mutate a working register through
// 31 rounds of rotate/substitute/counter-XOR to produce 32 round keys; the
// two widths differ only in register size, how many top nibbles the
// S-box touches, and which bits the round counter lands on.
package keys

import "github.com/dromara/present/internal/sbox"

// Schedule is anything that can expand a master key into the 32 round
// keys PRESENT's block engine needs. It is implemented by Key80 and
// Key128.
type Schedule interface {
	RoundKeys() [32]uint64
}

// Key80 is an 80-bit PRESENT master key, most-significant byte first.
type Key80 [10]byte

// RoundKeys expands the key into 32 round keys.
func (k Key80) RoundKeys() [32]uint64 {
	reg := k // copy: the schedule must not mutate the caller's key
	return generate(reg[:], false, 1, 7)
}

// Key128 is a 128-bit PRESENT master key, most-significant byte first.
type Key128 [16]byte

// RoundKeys expands the key into 32 round keys.
func (k Key128) RoundKeys() [32]uint64 {
	reg := k // copy: the schedule must not mutate the caller's key
	return generate(reg[:], true, 2, 6)
}

// generate runs the shared rotate/substitute/counter-XOR schedule over reg
// (a 10- or 16-byte working register) for 31 rounds, emitting 32 round
// keys. sboxBothNibbles selects the 128-bit S-box step (both nibbles of
// byte 0) over the 80-bit step (top nibble only). counterShiftHi/Lo are
// the per-width shift amounts used to fold the round counter into bytes
// 7 and 8 of the register.
func generate(reg []byte, sboxBothNibbles bool, counterShiftHi, counterShiftLo uint) [32]uint64 {
	var out [32]uint64
	for r := 1; r <= 31; r++ {
		out[r-1] = topBits(reg)

		rotateLeft61(reg)

		if sboxBothNibbles {
			hi := sbox.ApplyEnc(reg[0] >> 4)
			lo := sbox.ApplyEnc(reg[0] & 0x0F)
			reg[0] = hi<<4 | lo
		} else {
			hi := sbox.ApplyEnc(reg[0] >> 4)
			reg[0] = hi<<4 | (reg[0] & 0x0F)
		}

		reg[7] ^= byte(r) >> counterShiftHi
		reg[8] ^= byte(r) << counterShiftLo
	}
	out[31] = topBits(reg)
	return out
}

// topBits reads the top 64 bits (first 8 bytes) of reg, big-endian.
func topBits(reg []byte) uint64 {
	var v uint64
	for i := 0; i < 8; i++ {
		v = v<<8 | uint64(reg[i])
	}
	return v
}

// rotateLeft61 rotates the whole register left by 61 bits in place: each
// new byte is built from the low 3 bits of the byte 7 positions ahead and
// the high 5 bits of the byte 8 positions ahead (wrapping modulo the
// register length).
func rotateLeft61(reg []byte) {
	n := len(reg)
	rotated := make([]byte, n)
	for b := 0; b < n; b++ {
		rotated[b] = reg[(b+7)%n]<<5 | reg[(b+8)%n]>>3
	}
	copy(reg, rotated)
}
