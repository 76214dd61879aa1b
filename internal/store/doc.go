// Package store provides file-based persistence for hrtrack's local state.
//
// Only two things live on this machine: the login session (bearer token and
// the staff member it belongs to) and a few non-secret preferences. The
// session is sealed with a passphrase-derived key (scrypt +
// ChaCha20-Poly1305) before it touches disk; preferences are plain JSON.
// Writes go through a temp file and rename. All methods are safe for
// concurrent use. Files live under the configured home directory.
package store
