package mode

import "fmt"

// EmptyIVError indicates a mode that requires an IV (CBC) was not given
// one.
type EmptyIVError struct {
	Mode BlockMode
}

func (e EmptyIVError) Error() string {
	return fmt.Sprintf("mode: iv cannot be empty in '%s' mode", e.Mode)
}

// InvalidIVError indicates an IV was given but does not match the block
// size.
type InvalidIVError struct {
	Mode      BlockMode
	Length    int
	BlockSize int
}

func (e InvalidIVError) Error() string {
	return fmt.Sprintf("mode: iv length %d must equal block size %d in '%s' mode", e.Length, e.BlockSize, e.Mode)
}

// InvalidPlaintextError indicates padded plaintext handed to Encrypt is
// not a multiple of the block size. This is an internal-consistency
// error: the padding layer above mode is responsible for ensuring it
// never happens.
type InvalidPlaintextError struct {
	Mode      BlockMode
	Length    int
	BlockSize int
}

func (e InvalidPlaintextError) Error() string {
	return fmt.Sprintf("mode: padded plaintext length %d must be a multiple of block size %d in '%s' mode", e.Length, e.BlockSize, e.Mode)
}

// InvalidCiphertextError indicates ciphertext handed to Decrypt is not a
// multiple of the block size.
type InvalidCiphertextError struct {
	Mode      BlockMode
	Length    int
	BlockSize int
}

func (e InvalidCiphertextError) Error() string {
	return fmt.Sprintf("mode: ciphertext length %d must be a multiple of block size %d in '%s' mode", e.Length, e.BlockSize, e.Mode)
}

// InvalidPaddingError indicates the trailing padding bytes of a decrypted
// block are missing or corrupted.
type InvalidPaddingError struct{}

func (e InvalidPaddingError) Error() string {
	return "mode: invalid padding"
}

// UnsupportedModeError indicates a BlockMode value other than ECB or CBC.
type UnsupportedModeError struct {
	Mode BlockMode
}

func (e UnsupportedModeError) Error() string {
	return fmt.Sprintf("mode: unsupported block mode '%s'", e.Mode)
}
