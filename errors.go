package present

import (
	"fmt"

	"github.com/dromara/present/internal/block"
	"github.com/dromara/present/mode"
)

// CiphertextTooShortError indicates ciphertext shorter than a single
// block was handed to DecryptBytes/DecryptString.
type CiphertextTooShortError struct {
	Length int
}

func (e CiphertextTooShortError) Error() string {
	return fmt.Sprintf("present: ciphertext too short: got %d bytes, need at least %d", e.Length, block.Size)
}

// CiphertextNotAlignedError indicates ciphertext whose length is not a
// multiple of the block size was handed to DecryptBytes/DecryptString.
type CiphertextNotAlignedError struct {
	Length int
}

func (e CiphertextNotAlignedError) Error() string {
	return fmt.Sprintf("present: ciphertext length %d is not a multiple of block size %d", e.Length, block.Size)
}

// InvalidPaddingError indicates the padding bytes recovered at the end of
// decryption are missing or corrupted.
type InvalidPaddingError struct{}

func (e InvalidPaddingError) Error() string {
	return "present: invalid padding"
}

// IVMissingError indicates a mode that requires an IV (CBC) was asked to
// decrypt without one.
type IVMissingError struct {
	Mode mode.BlockMode
}

func (e IVMissingError) Error() string {
	return fmt.Sprintf("present: initialization vector required for %s mode", e.Mode)
}

// InvalidIVError indicates an IV was supplied but its length does not
// match the block size.
type InvalidIVError struct {
	Length int
}

func (e InvalidIVError) Error() string {
	return fmt.Sprintf("present: iv length %d must equal block size %d", e.Length, block.Size)
}

// Utf8DecodeError indicates decrypted, unpadded plaintext is not valid
// UTF-8 — only returned by DecryptString, never DecryptBytes.
type Utf8DecodeError struct{}

func (e Utf8DecodeError) Error() string {
	return "present: decrypted plaintext is not valid utf-8"
}

// KeySizeError indicates a key constructor was given a slice of the
// wrong length. Valid lengths are 10 bytes (80-bit) and 16 bytes
// (128-bit).
type KeySizeError int

func (e KeySizeError) Error() string {
	return fmt.Sprintf("present: invalid key size %d, must be 10 (80-bit) or 16 (128-bit) bytes", int(e))
}

// UnsupportedModeError indicates a BlockMode value other than ECB or CBC.
type UnsupportedModeError struct {
	Mode mode.BlockMode
}

func (e UnsupportedModeError) Error() string {
	return fmt.Sprintf("present: unsupported block mode '%s'", e.Mode)
}

// fromModeError translates the mode package's lower-level errors into
// this package's closed, caller-facing error set.
func fromModeError(err error) error {
	switch e := err.(type) {
	case mode.EmptyIVError:
		return IVMissingError{Mode: e.Mode}
	case mode.InvalidIVError:
		return InvalidIVError{Length: e.Length}
	case mode.InvalidPaddingError:
		return InvalidPaddingError{}
	case mode.UnsupportedModeError:
		return UnsupportedModeError{Mode: e.Mode}
	default:
		return err
	}
}
