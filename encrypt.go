package present

import (
	"crypto/rand"

	"github.com/dromara/present/internal/block"
	"github.com/dromara/present/mode"
	"github.com/dromara/present/utils"
)

// EncryptBytes encrypts plaintext of any length under key and the given
// mode. It returns the ciphertext and, for CBC, a freshly generated IV
// that must be supplied back to DecryptBytes/DecryptString; ECB returns a
// nil IV. The only error returned is UnsupportedModeError for a mode
// other than ECB or CBC; an RNG fault is fatal and surfaces as a panic
// rather than an error.
func EncryptBytes(plaintext []byte, key Key, m BlockMode) (ciphertext, iv []byte, err error) {
	c := block.New(key)
	padded := mode.Pad(plaintext, block.Size)

	if m == CBC {
		iv = make([]byte, block.Size)
		if _, err := rand.Read(iv); err != nil {
			panic("present: failed to read IV from system RNG: " + err.Error())
		}
	}

	ciphertext, err = mode.Encrypt(m, padded, iv, c)
	if err != nil {
		return nil, nil, fromModeError(err)
	}
	return ciphertext, iv, nil
}

// EncryptString is EncryptBytes over a UTF-8 string's bytes.
func EncryptString(plaintext string, key Key, m BlockMode) (ciphertext, iv []byte, err error) {
	return EncryptBytes(utils.String2Bytes(plaintext), key, m)
}
