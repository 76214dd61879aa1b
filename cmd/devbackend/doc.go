// Command devbackend runs the in-memory HR backend used by hrtrack during
// development. It serves the same JSON API as the real backend, seeded with
// a handful of staff, vacancies, candidates and one track in progress.
//
// Usage
//
//	devbackend [-addr :8080] [-seed=true]
//
// Log in with the demo account printed at startup. All state is held in
// memory and lost on process exit. A lightweight access log records method,
// path, remote, status, bytes and duration for each request.
package main
