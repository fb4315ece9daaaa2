// Package journal implements the encrypted-at-rest journal store: decrypted
// in-memory state, its binary encrypted form, the text-safe stored form, and
// the load/save pipeline between them.
//
// The store assumes exclusive single-process ownership of the journal file
// for the duration of a run. Concurrent modification of the file by another
// process is unsupported.
package journal

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/dmitrijs2005/jrn/internal/date"
	"github.com/dmitrijs2005/jrn/internal/filex"
)

// State is the decrypted application model: the cleartext password and the
// entries keyed by date. The password lives in memory only; it reaches disk
// solely as a hash, and entries solely as ciphertext, both via
// EncryptJournal.
type State struct {
	Password string
	Entries  map[date.Date]string
}

// New returns an empty journal with no password set.
func New() *State {
	return &State{Entries: make(map[date.Date]string)}
}

// Entry returns the entry text for the given date. The second result is
// false when no entry exists for that date.
func (s *State) Entry(d date.Date) (string, bool) {
	text, ok := s.Entries[d]
	return text, ok
}

// SetEntry creates or overwrites the entry for the given date.
func (s *State) SetEntry(d date.Date, text string) {
	s.Entries[d] = text
}

// TodayEntry returns today's entry, if any.
func (s *State) TodayEntry() (string, bool) {
	return s.Entry(date.Today())
}

// SetToday creates or overwrites today's entry.
func (s *State) SetToday(text string) {
	s.SetEntry(date.Today(), text)
}

// Dates returns every entry date in ascending order.
func (s *State) Dates() []date.Date {
	dates := make([]date.Date, 0, len(s.Entries))
	for d := range s.Entries {
		dates = append(dates, d)
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })
	return dates
}

// ChangePassword replaces the in-memory password. The change takes effect
// cryptographically on the next Save, which re-derives the salt, hash and
// key and re-encrypts every entry.
func (s *State) ChangePassword(newPassword string) {
	s.Password = newPassword
}

// Load reads the journal file at path, decodes it and decrypts it with the
// supplied password.
//
// The pipeline is: read (ErrNotAccessible) -> JSON parse (ErrMalformed) ->
// stored-to-binary conversion (ErrInvalidBase64/ErrInvalidLength) -> decrypt
// (ErrIncorrectPassword). On success the receiver is replaced wholesale; on
// any failure it is left untouched, so a caller may retry a wrong password
// without side effects.
func (s *State) Load(path, password string, enc Encryptor) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrNotAccessible, err)
	}

	var sj StoredJournal
	if err := json.Unmarshal(data, &sj); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	ej, err := sj.Encrypted()
	if err != nil {
		return err
	}

	loaded, err := DecryptJournal(enc, ej, password)
	if err != nil {
		return err
	}

	*s = *loaded
	return nil
}

// Save encrypts the current state and writes it to path. Every save is a
// full rewrite under a fresh salt, hash, key and per-entry nonces, so a
// password changed via ChangePassword becomes effective here.
//
// Serialization failure is reported as ErrSerialize rather than treated as
// unreachable; I/O failure as ErrFileWrite.
func (s *State) Save(path string, enc Encryptor) error {
	ej, err := EncryptJournal(enc, s)
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(ej.Stored(), "", "  ")
	if err != nil {
		return fmt.Errorf("%w: %v", ErrSerialize, err)
	}

	if _, err := filex.EnsureParentDir(path); err != nil {
		return fmt.Errorf("%w: %v", ErrFileWrite, err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("%w: %v", ErrFileWrite, err)
	}
	return nil
}
