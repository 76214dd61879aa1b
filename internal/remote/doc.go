// Package remote provides the HTTP data sources that talk to the HR backend.
//
// A single Client carries the base URL, bearer token, request pacing and
// logging. Thin per-entity sources (AuthAPI, CandidateAPI, VacancyAPI,
// InterviewAPI, TrackAPI, StaffAPI) build requests on top of it and implement
// the domain source interfaces.
//
// All requests are JSON over HTTP and accept a context for cancellation and
// deadlines. Every failure, whether a transport error, a non-2xx status or an
// undecodable body, wraps domain.ErrRequestFailed together with the method,
// path and status text to aid diagnostics. There is no finer error taxonomy:
// callers show a generic retry prompt.
package remote
