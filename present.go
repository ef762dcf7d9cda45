// Package present implements the PRESENT lightweight block cipher
// (Bogdanov et al., CHES 2007): a 31-round SPN over a 64-bit block, with
// 80-bit and 128-bit key schedules, adapted to arbitrary-length byte
// strings through ECB and CBC block modes with PKCS#5/7-style padding.
//
// The cipher itself is unauthenticated. Building an AEAD construction on
// top of it (encrypt-then-MAC or similar) is the caller's responsibility
// and outside this package's scope, as is sourcing cryptographically
// secure randomness for anything other than the CBC IV this package
// already generates internally via crypto/rand.
package present

import "github.com/dromara/present/mode"

// BlockMode selects how EncryptBytes/EncryptString chain PRESENT across
// multiple blocks.
type BlockMode = mode.BlockMode

// Supported block cipher modes.
const (
	ECB = mode.ECB
	CBC = mode.CBC
)
