package journal

import "errors"

// Sentinel errors for the load/save pipeline. Callers should use errors.Is
// to match these values; every fallible operation in this package wraps one
// of them. None of them ever terminates the process.
var (
	// ErrNotAccessible indicates the journal file is missing or unreadable.
	ErrNotAccessible = errors.New("journal file not accessible")

	// ErrMalformed indicates the journal file is not a valid stored journal
	// document.
	ErrMalformed = errors.New("journal file malformed")

	// ErrInvalidBase64 indicates a stored binary field is not valid base64.
	ErrInvalidBase64 = errors.New("invalid base64")

	// ErrInvalidLength indicates a stored binary field decoded to the wrong
	// number of bytes.
	ErrInvalidLength = errors.New("invalid field length")

	// ErrIncorrectPassword indicates password verification failed against
	// the stored hash. Retryable: a failed attempt mutates neither the
	// in-memory state nor the file.
	ErrIncorrectPassword = errors.New("incorrect password")

	// ErrSerialize indicates the stored document could not be serialized.
	// Should not happen for a well-formed state, but is surfaced rather
	// than treated as unreachable.
	ErrSerialize = errors.New("serialization failed")

	// ErrFileWrite indicates the journal file could not be written.
	ErrFileWrite = errors.New("journal file not writable")
)
