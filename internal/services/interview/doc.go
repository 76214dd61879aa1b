// Package interview is the repository for interviews.
//
// It rejects obviously bad edits (zero dates, unknown statuses, inverted
// windows) before they reach the backend; everything else, including which
// status transitions are legal, is decided server-side.
package interview
