// Package devbackend is an in-memory stand-in for the HR backend, used during
// development and by tests.
//
// It serves the same JSON endpoints the client calls (auth, candidates,
// vacancies, interviews, tracks, staff, tags, resumes) from maps guarded by a
// single lock. Pipeline rules are deliberately small:
//
//   - approving an application moves a track from APPLICATION to IN_PROGRESS
//     and opens a first, unscheduled interview with the vacancy's staff;
//   - a track can be rejected while it is APPLICATION or IN_PROGRESS;
//   - only an IN_PROGRESS track can be hired;
//   - setting a date on an unscheduled interview marks it SCHEDULED.
//
// Illegal transitions answer 409, unknown ids 404, malformed bodies 400 and
// missing or unknown tokens 401. Tests can queue failures for a path with
// FailNext to exercise the client's rollback paths.
//
// All state is lost on process exit.
package devbackend
