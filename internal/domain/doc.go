// Package domain defines core data models and interfaces shared across the app.
// It contains plain types (wire/state) and contracts (interfaces) only.
//
// The records mirror the backend's JSON responses. Relations are carried as
// identifier lists and are never checked on the client side: the backend owns
// lifecycle and consistency rules.
package domain
