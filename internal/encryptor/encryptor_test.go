package encryptor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/jrn/internal/cryptox"
	"github.com/dmitrijs2005/jrn/internal/date"
	"github.com/dmitrijs2005/jrn/internal/journal"
)

var (
	_ journal.Encryptor = Secure{}
	_ journal.Encryptor = Insecure{}
)

func TestSecure_JournalEncryptDecryptInverse(t *testing.T) {
	enc := Secure{}
	d := date.Date{Year: 2024, Month: 1, Day: 1}

	s := journal.New()
	s.ChangePassword("abc")
	s.SetEntry(d, "hello")
	s.SetEntry(date.Date{Year: 2024, Month: 1, Day: 2}, "second日記 with unicode\nand newlines")

	ej, err := journal.EncryptJournal(enc, s)
	require.NoError(t, err)

	// ciphertext differs from plaintext
	require.NotEqual(t, []byte("hello"), ej.Entries[d].Digest)
	require.NotEqual(t, s.Password, ej.PasswordHash)

	got, err := journal.DecryptJournal(enc, ej, "abc")
	require.NoError(t, err)
	assert.Equal(t, s, got)
}

func TestSecure_WrongPasswordRejected(t *testing.T) {
	enc := Secure{}

	s := journal.New()
	s.ChangePassword("abc")
	s.SetToday("private")

	ej, err := journal.EncryptJournal(enc, s)
	require.NoError(t, err)

	_, err = journal.DecryptJournal(enc, ej, "abd")
	require.ErrorIs(t, err, journal.ErrIncorrectPassword)
}

func TestSecure_NonceUniqueness(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping 10k-encryption nonce sweep in -short mode")
	}

	enc := Secure{}
	key := make([]byte, cryptox.KeySize)
	d := date.Date{Year: 2024, Month: 1, Day: 1}

	const n = 10_000
	seen := make(map[string]struct{}, n)
	for i := 0; i < n; i++ {
		e, err := enc.EncryptEntry(key, d, "same plaintext every time")
		require.NoError(t, err)
		require.Len(t, e.Nonce, cryptox.NonceSize)

		_, dup := seen[string(e.Nonce)]
		require.False(t, dup, "nonce collision after %d encryptions", i)
		seen[string(e.Nonce)] = struct{}{}
	}
}

func TestSecure_EntryRoundTrip(t *testing.T) {
	enc := Secure{}
	key := cryptox.DeriveKey("pw", []byte("salt"))
	d := date.Date{Year: 2024, Month: 2, Day: 29}

	e, err := enc.EncryptEntry(key, d, "leap day entry")
	require.NoError(t, err)
	assert.Equal(t, d, e.Date, "the date stays in the clear")

	gotDate, gotText, err := enc.DecryptEntry(key, e)
	require.NoError(t, err)
	assert.Equal(t, d, gotDate)
	assert.Equal(t, "leap day entry", gotText)
}

func TestSecure_DecryptEntryAuthFailure(t *testing.T) {
	enc := Secure{}
	key := cryptox.DeriveKey("pw", []byte("salt"))

	e, err := enc.EncryptEntry(key, date.Today(), "text")
	require.NoError(t, err)

	e.Digest[len(e.Digest)-1] ^= 0x01
	_, _, err = enc.DecryptEntry(key, e)
	require.ErrorIs(t, err, cryptox.ErrAuthentication)
}

func TestInsecure_IsTransparent(t *testing.T) {
	enc := Insecure{}
	d := date.Date{Year: 2024, Month: 1, Day: 1}

	hash, err := enc.HashPassword("abc")
	require.NoError(t, err)
	assert.Equal(t, "abc", hash, "the \"hash\" is the password itself")

	assert.Equal(t, make([]byte, cryptox.SaltSize), enc.MakeKDFSalt())
	assert.Equal(t, make([]byte, cryptox.KeySize), enc.DeriveKey("anything", []byte("any salt")))

	e, err := enc.EncryptEntry(nil, d, "hello")
	require.NoError(t, err)
	assert.Equal(t, []byte("hello"), e.Digest, "plaintext is stored verbatim")
	assert.Equal(t, make([]byte, cryptox.NonceSize), e.Nonce)

	gotDate, gotText, err := enc.DecryptEntry(nil, e)
	require.NoError(t, err)
	assert.Equal(t, d, gotDate)
	assert.Equal(t, "hello", gotText)
}

func TestInsecure_JournalRoundTrip(t *testing.T) {
	enc := Insecure{}

	s := journal.New()
	s.ChangePassword("pw")
	s.SetEntry(date.Date{Year: 2024, Month: 1, Day: 1}, "a")
	s.SetEntry(date.Date{Year: 2024, Month: 1, Day: 2}, "b")

	ej, err := journal.EncryptJournal(enc, s)
	require.NoError(t, err)

	got, err := journal.DecryptJournal(enc, ej, "pw")
	require.NoError(t, err)
	assert.Equal(t, s, got)
}
