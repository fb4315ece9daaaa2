// Package cryptox wraps the cryptographic primitives jrn is built on:
// bcrypt for password hashing, PBKDF2 for key derivation, and AES-256-GCM
// for authenticated entry encryption.
package cryptox

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/sha256"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
	"golang.org/x/crypto/pbkdf2"

	"github.com/dmitrijs2005/jrn/internal/common"
)

const (
	// KeySize is the AES-256 key length in bytes.
	KeySize = 32

	// SaltSize is the PBKDF2 salt length in bytes.
	SaltSize = 32

	// NonceSize is the AES-GCM nonce length in bytes.
	NonceSize = 12

	// kdfIterations is the PBKDF2 iteration count.
	kdfIterations = 300_000
)

// ErrAuthentication indicates an AEAD integrity check failure: the
// ciphertext was produced under a different key or has been tampered with.
var ErrAuthentication = errors.New("ciphertext authentication failed")

// HashPassword returns the bcrypt hash of password. The hash string embeds
// the scheme's own salt and cost factor, so it is self-contained for later
// verification.
func HashPassword(password string) (string, error) {
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("bcrypt: %w", err)
	}
	return string(h), nil
}

// VerifyPassword reports whether candidate matches the bcrypt hash.
func VerifyPassword(hash, candidate string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(candidate)) == nil
}

// MakeSalt returns a fresh random PBKDF2 salt.
func MakeSalt() []byte {
	return common.GenerateRandByteArray(SaltSize)
}

// DeriveKey stretches password into a KeySize symmetric key using
// PBKDF2-HMAC-SHA256 over the given salt. Same password and salt always
// yield the same key.
func DeriveKey(password string, salt []byte) []byte {
	return pbkdf2.Key([]byte(password), salt, kdfIterations, KeySize, sha256.New)
}

// Seal encrypts plaintext with AES-256-GCM under key, generating a fresh
// random nonce for this single call. The nonce is returned alongside the
// ciphertext and must be kept with it for decryption.
//
// A nonce must never repeat under one key. That is guaranteed here by
// drawing it from crypto/rand on every call rather than deriving it from
// anything that could collide across calls.
func Seal(key []byte, plaintext []byte) (ciphertext, nonce []byte, err error) {
	aesgcm, err := newGCM(key)
	if err != nil {
		return nil, nil, err
	}

	nonce = common.GenerateRandByteArray(NonceSize)
	ciphertext = aesgcm.Seal(nil, nonce, plaintext, nil)
	return ciphertext, nonce, nil
}

// Open decrypts an AES-256-GCM ciphertext produced by Seal. It returns
// ErrAuthentication when the integrity tag does not verify; no plaintext is
// ever returned in that case.
func Open(key, nonce, ciphertext []byte) ([]byte, error) {
	aesgcm, err := newGCM(key)
	if err != nil {
		return nil, err
	}

	plaintext, err := aesgcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAuthentication, err)
	}
	return plaintext, nil
}

func newGCM(key []byte) (cipher.AEAD, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("aes: %w", err)
	}
	aesgcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("gcm: %w", err)
	}
	return aesgcm, nil
}
