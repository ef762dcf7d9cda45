// Package sbox implements the PRESENT cipher's 4-bit substitution box and
// its inverse. Both tables are fixed, process-wide constants: there is no
// per-call allocation and no mutable state to guard.
package sbox

import "fmt"

// enc is the forward S-box, indexed by input nibble.
var enc = [16]byte{0xC, 0x5, 0x6, 0xB, 0x9, 0x0, 0xA, 0xD, 0x3, 0xE, 0xF, 0x8, 0x4, 0x7, 0x1, 0x2}

// dec is the inverse S-box, derived once at package init as the inverse
// permutation of enc (dec[enc[n]] == n for every n).
var dec [16]byte

func init() {
	for n, v := range enc {
		dec[v] = byte(n)
	}
}

// ApplyEnc maps a nibble (0..15) through the forward S-box. A value outside
// that range is a caller bug, not a recoverable condition, so it panics.
func ApplyEnc(n byte) byte {
	if n > 0x0F {
		panic(fmt.Sprintf("sbox: invalid input nibble %#x, must be 0..15", n))
	}
	return enc[n]
}

// ApplyDec maps a nibble (0..15) through the inverse S-box. A value outside
// that range is a caller bug, not a recoverable condition, so it panics.
func ApplyDec(n byte) byte {
	if n > 0x0F {
		panic(fmt.Sprintf("sbox: invalid input nibble %#x, must be 0..15", n))
	}
	return dec[n]
}
