package cryptox

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeriveKey_Deterministic(t *testing.T) {
	salt := []byte("0123456789abcdef0123456789abcdef")

	key1 := DeriveKey("secret-password", salt)
	key2 := DeriveKey("secret-password", salt)

	// same inputs -> same key
	if !bytes.Equal(key1, key2) {
		t.Errorf("expected same result for same inputs, got different")
	}
	if len(key1) != KeySize {
		t.Errorf("expected %d-byte key, got %d", KeySize, len(key1))
	}
}

func TestDeriveKey_DifferentInputs(t *testing.T) {
	key1 := DeriveKey("secret-password", []byte("salt-1"))
	key2 := DeriveKey("secret-password", []byte("salt-2"))
	key3 := DeriveKey("other-password", []byte("salt-1"))

	// different salts or passwords must give different keys
	if bytes.Equal(key1, key2) {
		t.Errorf("expected different results for different salts, got same")
	}
	if bytes.Equal(key1, key3) {
		t.Errorf("expected different results for different passwords, got same")
	}
}

func TestMakeSalt_SizeAndEntropy(t *testing.T) {
	a := MakeSalt()
	b := MakeSalt()

	require.Len(t, a, SaltSize)
	require.Len(t, b, SaltSize)
	assert.NotEqual(t, a, b)
}

func TestHashVerifyPassword(t *testing.T) {
	hash, err := HashPassword("abc")
	require.NoError(t, err)
	require.NotEqual(t, "abc", hash)

	assert.True(t, VerifyPassword(hash, "abc"))
	assert.False(t, VerifyPassword(hash, "abd"))
	assert.False(t, VerifyPassword("not even a bcrypt hash", "abc"))
}

func TestHashPassword_SaltedPerCall(t *testing.T) {
	h1, err := HashPassword("abc")
	require.NoError(t, err)
	h2, err := HashPassword("abc")
	require.NoError(t, err)

	// bcrypt salts internally, so two hashes of one password differ
	assert.NotEqual(t, h1, h2)
	assert.True(t, VerifyPassword(h1, "abc"))
	assert.True(t, VerifyPassword(h2, "abc"))
}

func TestSealOpen_RoundTrip(t *testing.T) {
	key := DeriveKey("pw", []byte("salt"))
	plaintext := []byte("dear diary")

	ciphertext, nonce, err := Seal(key, plaintext)
	require.NoError(t, err)
	require.Len(t, nonce, NonceSize)
	require.NotEqual(t, plaintext, ciphertext)

	got, err := Open(key, nonce, ciphertext)
	require.NoError(t, err)
	assert.Equal(t, plaintext, got)
}

func TestOpen_WrongKeyFails(t *testing.T) {
	key := DeriveKey("pw", []byte("salt"))
	ciphertext, nonce, err := Seal(key, []byte("dear diary"))
	require.NoError(t, err)

	other := DeriveKey("pw2", []byte("salt"))
	_, err = Open(other, nonce, ciphertext)
	require.ErrorIs(t, err, ErrAuthentication)
}

func TestOpen_TamperedCiphertextFails(t *testing.T) {
	key := DeriveKey("pw", []byte("salt"))
	ciphertext, nonce, err := Seal(key, []byte("dear diary"))
	require.NoError(t, err)

	ciphertext[0] ^= 0xff
	_, err = Open(key, nonce, ciphertext)
	require.ErrorIs(t, err, ErrAuthentication)
}

func TestSeal_FreshNoncePerCall(t *testing.T) {
	key := DeriveKey("pw", []byte("salt"))

	_, n1, err := Seal(key, []byte("x"))
	require.NoError(t, err)
	_, n2, err := Seal(key, []byte("x"))
	require.NoError(t, err)

	assert.NotEqual(t, n1, n2)
}
