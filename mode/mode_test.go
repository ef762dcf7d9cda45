package mode

import (
	"testing"

	"github.com/dromara/present/internal/block"
	"github.com/dromara/present/internal/keys"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCipher() *block.Cipher {
	return block.New(keys.Key80{0x0A, 0xC0, 0xA6, 0xE7, 0x63, 0x26, 0xBC, 0x7E, 0x82, 0x80})
}

func TestECBRoundTrip(t *testing.T) {
	c := testCipher()
	plaintext := Pad([]byte("this is a test!!"), block.Size)

	ciphertext, err := Encrypt(ECB, plaintext, nil, c)
	require.NoError(t, err)
	assert.Len(t, ciphertext, len(plaintext))

	decrypted, err := Decrypt(ECB, ciphertext, nil, c)
	require.NoError(t, err)
	assert.Equal(t, plaintext, decrypted)
}

func TestCBCRoundTrip(t *testing.T) {
	c := testCipher()
	plaintext := Pad([]byte("this is a test!!"), block.Size)
	iv := []byte{1, 2, 3, 4, 5, 6, 7, 8}

	ciphertext, err := Encrypt(CBC, plaintext, iv, c)
	require.NoError(t, err)

	decrypted, err := Decrypt(CBC, ciphertext, iv, c)
	require.NoError(t, err)
	assert.Equal(t, plaintext, decrypted)
}

func TestCBCRequiresIV(t *testing.T) {
	c := testCipher()
	plaintext := Pad([]byte("hello"), block.Size)

	_, err := Encrypt(CBC, plaintext, nil, c)
	assert.ErrorAs(t, err, &EmptyIVError{})

	ciphertext, err := Encrypt(CBC, plaintext, []byte{0, 0, 0, 0, 0, 0, 0, 0}, c)
	require.NoError(t, err)

	_, err = Decrypt(CBC, ciphertext, nil, c)
	assert.ErrorAs(t, err, &EmptyIVError{})
}

func TestCBCRejectsWrongSizedIV(t *testing.T) {
	c := testCipher()
	plaintext := Pad([]byte("hello"), block.Size)

	_, err := Encrypt(CBC, plaintext, []byte{1, 2, 3}, c)
	assert.ErrorAs(t, err, &InvalidIVError{})
}

func TestEncryptRejectsUnalignedPlaintext(t *testing.T) {
	c := testCipher()
	_, err := Encrypt(ECB, []byte("not aligned"), nil, c)
	assert.ErrorAs(t, err, &InvalidPlaintextError{})
}

func TestDecryptRejectsUnalignedCiphertext(t *testing.T) {
	c := testCipher()
	_, err := Decrypt(ECB, []byte("not aligned!"), nil, c)
	assert.ErrorAs(t, err, &InvalidCiphertextError{})
}

func TestUnsupportedMode(t *testing.T) {
	c := testCipher()
	_, err := Encrypt(BlockMode("GCM"), Pad([]byte("hi"), block.Size), nil, c)
	assert.ErrorAs(t, err, &UnsupportedModeError{})
}

func TestCBCWrongIVCorruptsOnlyFirstBlock(t *testing.T) {
	c := testCipher()
	plaintext := Pad([]byte("this is a test!!"), block.Size) // 3 blocks
	iv := []byte{1, 2, 3, 4, 5, 6, 7, 8}
	wrongIV := []byte{9, 9, 9, 9, 9, 9, 9, 9}

	ciphertext, err := Encrypt(CBC, plaintext, iv, c)
	require.NoError(t, err)

	decrypted, err := Decrypt(CBC, ciphertext, wrongIV, c)
	require.NoError(t, err)

	assert.NotEqual(t, plaintext[:block.Size], decrypted[:block.Size])
	assert.Equal(t, plaintext[block.Size:], decrypted[block.Size:])
}

func TestPadAlwaysAddsPadding(t *testing.T) {
	full := make([]byte, 16)
	padded := Pad(full, 8)
	assert.Len(t, padded, 24)
	for _, b := range padded[16:] {
		assert.Equal(t, byte(8), b)
	}
}

func TestPadUnpadRoundTrip(t *testing.T) {
	for _, s := range [][]byte{{}, []byte("a"), []byte("exactly8"), []byte("more than one block of data")} {
		padded := Pad(s, 8)
		assert.Equal(t, 0, len(padded)%8)
		unpadded, err := Unpad(padded, 8)
		require.NoError(t, err)
		assert.Equal(t, s, unpadded)
	}
}

func TestUnpadRejectsInvalidPadding(t *testing.T) {
	_, err := Unpad([]byte{1, 2, 3, 4, 5, 6, 7, 0}, 8)
	assert.ErrorAs(t, err, &InvalidPaddingError{})

	_, err = Unpad([]byte{1, 2, 3, 4, 5, 6, 7, 9}, 8)
	assert.ErrorAs(t, err, &InvalidPaddingError{})

	_, err = Unpad([]byte{1, 1, 1, 1, 1, 3, 2, 3}, 8)
	assert.ErrorAs(t, err, &InvalidPaddingError{})
}
