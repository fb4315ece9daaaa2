package encryptor

import (
	"github.com/dmitrijs2005/jrn/internal/cryptox"
	"github.com/dmitrijs2005/jrn/internal/date"
	"github.com/dmitrijs2005/jrn/internal/journal"
)

// Insecure implements journal.Encryptor with no protection whatsoever: the
// "hash" is the password itself, the salt and key are all zeros, and the
// "ciphertext" is the plaintext verbatim under a zero nonce.
//
// It exists so the journal pipeline can be tested without paying for bcrypt
// and PBKDF2, and to make explicit what the pipeline looks like without
// cryptography. Never use it for a real journal.
type Insecure struct{}

// HashPassword returns the password unchanged.
func (Insecure) HashPassword(password string) (string, error) {
	return password, nil
}

// VerifyPassword is plain string equality.
func (Insecure) VerifyPassword(hash, candidate string) bool {
	return hash == candidate
}

// MakeKDFSalt returns 32 zero bytes.
func (Insecure) MakeKDFSalt() []byte {
	return make([]byte, cryptox.SaltSize)
}

// DeriveKey returns 32 zero bytes regardless of input.
func (Insecure) DeriveKey(string, []byte) []byte {
	return make([]byte, cryptox.KeySize)
}

// EncryptEntry stores the plaintext bytes verbatim with a zero nonce.
func (Insecure) EncryptEntry(_ []byte, d date.Date, plaintext string) (journal.EncryptedEntry, error) {
	return journal.EncryptedEntry{
		Date:   d,
		Nonce:  make([]byte, cryptox.NonceSize),
		Digest: []byte(plaintext),
	}, nil
}

// DecryptEntry returns the stored bytes as the plaintext.
func (Insecure) DecryptEntry(_ []byte, e journal.EncryptedEntry) (date.Date, string, error) {
	return e.Date, string(e.Digest), nil
}
