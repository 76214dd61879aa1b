// Package auth logs staff in and out and keeps the bearer token in sync with
// the sealed session on disk.
package auth
