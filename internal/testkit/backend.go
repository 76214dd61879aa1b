// Package testkit starts a seeded in-memory backend for tests and hands back
// a signed-in client with every repository wired to it.
package testkit

import (
	"context"
	"net/http/httptest"
	"testing"

	"hrtrack/internal/devbackend"
	"hrtrack/internal/domain"
	"hrtrack/internal/remote"
	"hrtrack/internal/services/candidate"
	"hrtrack/internal/services/interview"
	"hrtrack/internal/services/staff"
	"hrtrack/internal/services/track"
	"hrtrack/internal/services/vacancy"
)

// Services are the repositories screens depend on.
type Services struct {
	Candidates *candidate.Service
	Vacancies  *vacancy.Service
	Interviews *interview.Service
	Tracks     *track.Service
	Staff      *staff.Service
}

// Backend is a running test backend.
type Backend struct {
	Demo     devbackend.Demo
	Store    *devbackend.Store
	Server   *devbackend.Server
	URL      string
	Client   *remote.Client
	Services Services
}

// StartBackend seeds a store, serves it over httptest and signs in as the
// demo recruiter. Everything is torn down with t.
func StartBackend(t testing.TB) *Backend {
	t.Helper()
	return StartBackendWith(t, remote.Options{})
}

// StartBackendWith is StartBackend with custom client options.
func StartBackendWith(t testing.TB, opts remote.Options) *Backend {
	t.Helper()

	store := devbackend.NewStore()
	demo := devbackend.Seed(store)
	srv := devbackend.New(store, nil)
	hs := httptest.NewServer(srv.Handler())
	t.Cleanup(hs.Close)

	if opts.HTTP == nil {
		opts.HTTP = hs.Client()
	}
	client := remote.New(hs.URL, opts)
	res, err := remote.NewAuthAPI(client).Login(context.Background(), domain.Credentials{
		Email:    devbackend.DemoEmail,
		Password: devbackend.DemoPassword,
	})
	if err != nil {
		t.Fatalf("login to test backend: %v", err)
	}
	client.SetToken(res.Token)

	return &Backend{
		Demo:     demo,
		Store:    store,
		Server:   srv,
		URL:      hs.URL,
		Client:   client,
		Services: NewServices(client, domain.DefaultPageSize),
	}
}

// NewServices wires every repository to client.
func NewServices(client *remote.Client, pageSize int) Services {
	return Services{
		Candidates: candidate.New(remote.NewCandidateAPI(client), pageSize),
		Vacancies:  vacancy.New(remote.NewVacancyAPI(client), pageSize),
		Interviews: interview.New(remote.NewInterviewAPI(client)),
		Tracks:     track.New(remote.NewTrackAPI(client)),
		Staff:      staff.New(remote.NewStaffAPI(client), remote.NewAuthAPI(client), pageSize),
	}
}
