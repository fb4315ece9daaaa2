package journal

import (
	"fmt"

	"github.com/dmitrijs2005/jrn/internal/date"
)

// Encryptor is the capability the journal needs for password hashing and
// per-entry authenticated encryption. There are two implementations in
// internal/encryptor: a secure one (bcrypt + PBKDF2 + AES-256-GCM) and an
// insecure pass-through for tests.
//
// Contracts:
//   - HashPassword is one-way; the produced hash must be verifiable by
//     VerifyPassword of the same implementation.
//   - MakeKDFSalt returns a 32-byte salt; DeriveKey returns a 32-byte key
//     and is deterministic in (password, salt).
//   - EncryptEntry must use a fresh nonce on every call; two encryptions of
//     the same content must not share a nonce.
//   - DecryptEntry must fail rather than return unverified plaintext.
type Encryptor interface {
	HashPassword(password string) (string, error)
	VerifyPassword(hash, candidate string) bool
	MakeKDFSalt() []byte
	DeriveKey(password string, salt []byte) []byte
	EncryptEntry(key []byte, d date.Date, plaintext string) (EncryptedEntry, error)
	DecryptEntry(key []byte, e EncryptedEntry) (date.Date, string, error)
}

// EncryptedEntry is a single journal entry in binary encrypted form. The
// date stays in the clear; it is the entry's identity.
type EncryptedEntry struct {
	Date   date.Date
	Nonce  []byte
	Digest []byte
}

// EncryptedJournal is the whole journal in binary encrypted form. It is a
// transient value: produced by EncryptJournal and immediately converted to
// the stored form, or parsed from the stored form and immediately decrypted.
//
// Entries are keyed by date, which structurally guarantees at most one
// entry per date.
type EncryptedJournal struct {
	PasswordHash string
	KDFSalt      []byte
	Entries      map[date.Date]EncryptedEntry
}

// EncryptJournal converts decrypted state into an encrypted journal: the
// password is hashed once, one fresh salt is drawn, one key is derived, and
// every entry is encrypted independently under that key (each with its own
// nonce, per the Encryptor contract).
func EncryptJournal(enc Encryptor, s *State) (*EncryptedJournal, error) {
	hash, err := enc.HashPassword(s.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	salt := enc.MakeKDFSalt()
	key := enc.DeriveKey(s.Password, salt)

	entries := make(map[date.Date]EncryptedEntry, len(s.Entries))
	for d, text := range s.Entries {
		e, err := enc.EncryptEntry(key, d, text)
		if err != nil {
			return nil, fmt.Errorf("encrypt entry %s: %w", d, err)
		}
		entries[d] = e
	}

	return &EncryptedJournal{PasswordHash: hash, KDFSalt: salt, Entries: entries}, nil
}

// DecryptJournal turns an encrypted journal back into state. The password
// is verified against the stored hash before any entry is touched; on a
// mismatch it returns ErrIncorrectPassword without doing further work. Only
// after verification is the key derived from the stored salt and every
// entry decrypted.
func DecryptJournal(enc Encryptor, ej *EncryptedJournal, password string) (*State, error) {
	if !enc.VerifyPassword(ej.PasswordHash, password) {
		return nil, ErrIncorrectPassword
	}

	key := enc.DeriveKey(password, ej.KDFSalt)

	s := &State{Password: password, Entries: make(map[date.Date]string, len(ej.Entries))}
	for _, e := range ej.Entries {
		d, text, err := enc.DecryptEntry(key, e)
		if err != nil {
			return nil, fmt.Errorf("decrypt entry %s: %w", e.Date, err)
		}
		s.Entries[d] = text
	}

	return s, nil
}
