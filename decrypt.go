package present

import (
	"unicode/utf8"

	"github.com/dromara/present/internal/block"
	"github.com/dromara/present/mode"
	"github.com/dromara/present/utils"
)

// DecryptBytes decrypts ciphertext produced by EncryptBytes under key and
// the given mode. CBC requires the iv EncryptBytes returned; ECB ignores
// iv. Decryption either returns the complete original plaintext or one of
// this package's closed error types — never a partial result alongside an
// error.
func DecryptBytes(ciphertext []byte, key Key, m BlockMode, iv []byte) (plaintext []byte, err error) {
	if len(ciphertext) < block.Size {
		return nil, CiphertextTooShortError{Length: len(ciphertext)}
	}
	if len(ciphertext)%block.Size != 0 {
		return nil, CiphertextNotAlignedError{Length: len(ciphertext)}
	}

	c := block.New(key)
	padded, err := mode.Decrypt(m, ciphertext, iv, c)
	if err != nil {
		return nil, fromModeError(err)
	}

	plaintext, err = mode.Unpad(padded, block.Size)
	if err != nil {
		return nil, fromModeError(err)
	}
	return plaintext, nil
}

// DecryptString decrypts ciphertext produced by EncryptBytes/EncryptString
// and validates the recovered plaintext as UTF-8, returning
// Utf8DecodeError if it is not.
func DecryptString(ciphertext []byte, key Key, m BlockMode, iv []byte) (plaintext string, err error) {
	raw, err := DecryptBytes(ciphertext, key, m, iv)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(raw) {
		return "", Utf8DecodeError{}
	}
	return utils.Bytes2String(raw), nil
}
