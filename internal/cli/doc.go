// Package cli provides the interactive jrn command-line client.
//
// It wires configuration, the encrypted journal store, and an interactive
// REPL: unlock (or create) the journal, then list, view and edit entries,
// change the password, and save on exit when something changed.
package cli
