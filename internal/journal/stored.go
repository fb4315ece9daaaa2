package journal

import (
	"encoding/base64"
	"fmt"
	"sort"

	"github.com/dmitrijs2005/jrn/internal/cryptox"
	"github.com/dmitrijs2005/jrn/internal/date"
)

// StoredJournal is the text-safe on-disk mirror of EncryptedJournal. Binary
// fields are standard padded base64; the whole document serializes to JSON.
type StoredJournal struct {
	PasswordHash string        `json:"password_hash"`
	KDFSalt      string        `json:"kdf_salt"`
	Entries      []StoredEntry `json:"entries"`
}

// StoredEntry mirrors EncryptedEntry with base64-encoded binary fields.
type StoredEntry struct {
	Date   date.Date `json:"date"`
	Nonce  string    `json:"nonce"`
	Digest string    `json:"digest"`
}

// Stored converts the encrypted journal to its text-safe form. The
// conversion is total and deterministic: entries are emitted in date order.
func (ej *EncryptedJournal) Stored() *StoredJournal {
	entries := make([]StoredEntry, 0, len(ej.Entries))
	for _, e := range ej.Entries {
		entries = append(entries, StoredEntry{
			Date:   e.Date,
			Nonce:  base64.StdEncoding.EncodeToString(e.Nonce),
			Digest: base64.StdEncoding.EncodeToString(e.Digest),
		})
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Date.Before(entries[j].Date)
	})

	return &StoredJournal{
		PasswordHash: ej.PasswordHash,
		KDFSalt:      base64.StdEncoding.EncodeToString(ej.KDFSalt),
		Entries:      entries,
	}
}

// Encrypted converts the stored journal back to binary form. The salt must
// decode to exactly 32 bytes and every nonce to exactly 12; a digest may
// have any length. Failures are reported as ErrInvalidBase64 or
// ErrInvalidLength wrapped with the offending field. No entry is merged or
// dropped; should the document contain several entries for one date, the
// last one wins.
func (sj *StoredJournal) Encrypted() (*EncryptedJournal, error) {
	salt, err := decodeFixed("kdf_salt", sj.KDFSalt, cryptox.SaltSize)
	if err != nil {
		return nil, err
	}

	entries := make(map[date.Date]EncryptedEntry, len(sj.Entries))
	for _, e := range sj.Entries {
		nonce, err := decodeFixed(fmt.Sprintf("nonce of %s", e.Date), e.Nonce, cryptox.NonceSize)
		if err != nil {
			return nil, err
		}
		digest, err := decodeAny(fmt.Sprintf("digest of %s", e.Date), e.Digest)
		if err != nil {
			return nil, err
		}
		entries[e.Date] = EncryptedEntry{Date: e.Date, Nonce: nonce, Digest: digest}
	}

	return &EncryptedJournal{PasswordHash: sj.PasswordHash, KDFSalt: salt, Entries: entries}, nil
}

// decodeFixed base64-decodes s and requires the result to be exactly n
// bytes.
func decodeFixed(field, s string, n int) ([]byte, error) {
	b, err := decodeAny(field, s)
	if err != nil {
		return nil, err
	}
	if len(b) != n {
		return nil, fmt.Errorf("%w: %s must decode to %d bytes, got %d", ErrInvalidLength, field, n, len(b))
	}
	return b, nil
}

func decodeAny(field, s string) ([]byte, error) {
	b, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidBase64, field)
	}
	return b, nil
}
