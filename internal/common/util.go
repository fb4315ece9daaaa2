// Package common contains small helpers for random bytes and secure memory
// wiping shared across jrn components.
package common

import "crypto/rand"

// GenerateRandByteArray returns size cryptographically secure random bytes.
// The process cannot meaningfully continue if the system RNG fails, so the
// error from crypto/rand is treated as fatal.
func GenerateRandByteArray(size int) []byte {
	b := make([]byte, size)
	if _, err := rand.Read(b); err != nil {
		panic(err)
	}
	return b
}

// WipeByteArray overwrites the contents of the provided byte slice with
// zeros. Useful for removing passwords and derived keys from memory after
// use.
//
// If the slice is nil, the function does nothing.
func WipeByteArray(b []byte) {
	if b == nil {
		return
	}
	for i := range b {
		b[i] = 0
	}
}
