// Package track is the repository for tracks, a candidate's pipeline through
// a vacancy. Progression rules belong to the backend.
package track
