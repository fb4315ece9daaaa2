// Package encryptor provides the two journal.Encryptor implementations: the
// production Secure one and a deliberately transparent Insecure one for
// tests.
package encryptor

import (
	"github.com/dmitrijs2005/jrn/internal/cryptox"
	"github.com/dmitrijs2005/jrn/internal/date"
	"github.com/dmitrijs2005/jrn/internal/journal"
)

// Secure implements journal.Encryptor with bcrypt password hashing,
// PBKDF2-HMAC-SHA256 key derivation and AES-256-GCM entry encryption.
type Secure struct{}

// HashPassword hashes the password with bcrypt. The result embeds the
// scheme's own salt and cost, so no external salt is needed for
// verification.
func (Secure) HashPassword(password string) (string, error) {
	return cryptox.HashPassword(password)
}

// VerifyPassword reports whether candidate matches the bcrypt hash.
func (Secure) VerifyPassword(hash, candidate string) bool {
	return cryptox.VerifyPassword(hash, candidate)
}

// MakeKDFSalt returns a fresh 32-byte random salt.
func (Secure) MakeKDFSalt() []byte {
	return cryptox.MakeSalt()
}

// DeriveKey stretches the password into a 32-byte AES key.
func (Secure) DeriveKey(password string, salt []byte) []byte {
	return cryptox.DeriveKey(password, salt)
}

// EncryptEntry seals the plaintext under key with a nonce drawn fresh for
// this call. The date stays in the clear.
func (Secure) EncryptEntry(key []byte, d date.Date, plaintext string) (journal.EncryptedEntry, error) {
	digest, nonce, err := cryptox.Seal(key, []byte(plaintext))
	if err != nil {
		return journal.EncryptedEntry{}, err
	}
	return journal.EncryptedEntry{Date: d, Nonce: nonce, Digest: digest}, nil
}

// DecryptEntry opens the digest under key. A failed integrity check
// surfaces as cryptox.ErrAuthentication; no unverified plaintext is ever
// returned.
func (Secure) DecryptEntry(key []byte, e journal.EncryptedEntry) (date.Date, string, error) {
	plaintext, err := cryptox.Open(key, e.Nonce, e.Digest)
	if err != nil {
		return date.Date{}, "", err
	}
	return e.Date, string(plaintext), nil
}
