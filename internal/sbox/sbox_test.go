package sbox

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApplyEnc(t *testing.T) {
	want := []byte{0xC, 0x5, 0x6, 0xB, 0x9, 0x0, 0xA, 0xD, 0x3, 0xE, 0xF, 0x8, 0x4, 0x7, 0x1, 0x2}
	for n, w := range want {
		assert.Equal(t, w, ApplyEnc(byte(n)))
	}
}

func TestApplyDec(t *testing.T) {
	want := []byte{0x5, 0xE, 0xF, 0x8, 0xC, 0x1, 0x2, 0xD, 0xB, 0x4, 0x6, 0x3, 0x0, 0x7, 0x9, 0xA}
	for n, w := range want {
		assert.Equal(t, w, ApplyDec(byte(n)))
	}
}

func TestInvolution(t *testing.T) {
	for n := byte(0); n < 16; n++ {
		assert.Equal(t, n, ApplyDec(ApplyEnc(n)))
		assert.Equal(t, n, ApplyEnc(ApplyDec(n)))
	}
}

func TestApplyEncPanicsOnInvalidInput(t *testing.T) {
	assert.Panics(t, func() { ApplyEnc(16) })
}

func TestApplyDecPanicsOnInvalidInput(t *testing.T) {
	assert.Panics(t, func() { ApplyDec(42) })
}
