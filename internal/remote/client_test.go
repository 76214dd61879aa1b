package remote_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"

	"hrtrack/internal/domain"
	"hrtrack/internal/remote"
	"hrtrack/internal/testkit"
)

func TestClient_SendsHeaders(t *testing.T) {
	var got http.Header
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Clone()
		_ = json.NewEncoder(w).Encode(domain.Staff{ID: 1, FirstName: "Ada"})
	}))
	defer srv.Close()

	c := remote.New(srv.URL+"/", remote.Options{HTTP: srv.Client()})
	c.SetToken("tok")
	me, err := remote.NewAuthAPI(c).Me(context.Background())
	if err != nil {
		t.Fatalf("Me: %v", err)
	}
	if me.FirstName != "Ada" {
		t.Fatalf("unexpected body %+v", me)
	}
	if got.Get("Authorization") != "Bearer tok" {
		t.Fatalf("missing bearer token: %q", got.Get("Authorization"))
	}
	if _, err := uuid.Parse(got.Get(remote.RequestIDHeader)); err != nil {
		t.Fatalf("request id is not a uuid: %q", got.Get(remote.RequestIDHeader))
	}
	if c.BaseURL() != srv.URL {
		t.Fatalf("trailing slash kept: %q", c.BaseURL())
	}
}

func TestClient_RetriesOnlyTooManyRequests(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	c := remote.New(srv.URL, remote.Options{
		HTTP: srv.Client(), Retries: 2, BaseDelay: time.Millisecond, MaxDelay: 5 * time.Millisecond,
	})
	if _, err := remote.NewVacancyAPI(c).ListTags(context.Background()); err != nil {
		t.Fatalf("ListTags: %v", err)
	}
	if calls.Load() != 3 {
		t.Fatalf("want 3 attempts, got %d", calls.Load())
	}
}

func TestClient_GivesUpAfterRetries(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	c := remote.New(srv.URL, remote.Options{HTTP: srv.Client(), Retries: 1, BaseDelay: time.Millisecond})
	_, err := remote.NewVacancyAPI(c).ListTags(context.Background())
	if !errors.Is(err, domain.ErrRequestFailed) || !remote.IsStatus(err, http.StatusTooManyRequests) {
		t.Fatalf("want 429 request failure, got %v", err)
	}
	if calls.Load() != 2 {
		t.Fatalf("want 2 attempts, got %d", calls.Load())
	}
}

func TestClient_NoRetryOnServerError(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := remote.New(srv.URL, remote.Options{HTTP: srv.Client(), Retries: 3, BaseDelay: time.Millisecond})
	_, err := remote.NewVacancyAPI(c).ListTags(context.Background())
	if !errors.Is(err, domain.ErrRequestFailed) {
		t.Fatalf("want ErrRequestFailed, got %v", err)
	}
	var se *remote.StatusError
	if !errors.As(err, &se) || se.Code != http.StatusInternalServerError || se.Path != "/tag/list" {
		t.Fatalf("unexpected status error %#v", err)
	}
	if calls.Load() != 1 {
		t.Fatalf("500 must not be retried, got %d attempts", calls.Load())
	}
}

func TestClient_BadJSONIsRequestFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"id":`))
	}))
	defer srv.Close()

	c := remote.New(srv.URL, remote.Options{HTTP: srv.Client()})
	_, err := remote.NewCandidateAPI(c).GetCandidate(context.Background(), 1)
	if !errors.Is(err, domain.ErrRequestFailed) {
		t.Fatalf("want ErrRequestFailed, got %v", err)
	}
}

func TestClient_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	c := remote.New(url, remote.Options{})
	_, err := remote.NewVacancyAPI(c).ListTags(context.Background())
	if !errors.Is(err, domain.ErrRequestFailed) {
		t.Fatalf("want ErrRequestFailed, got %v", err)
	}
}

func TestClient_CancelledContext(t *testing.T) {
	b := testkit.StartBackend(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := remote.NewVacancyAPI(b.Client).ListTags(ctx)
	if !errors.Is(err, domain.ErrRequestFailed) || !errors.Is(err, context.Canceled) {
		t.Fatalf("want both ErrRequestFailed and Canceled, got %v", err)
	}
}

func TestAPIs_AgainstBackend(t *testing.T) {
	b := testkit.StartBackend(t)
	ctx := context.Background()

	if _, err := remote.NewAuthAPI(b.Client).Login(ctx, domain.Credentials{Email: "nobody@example.com", Password: "x"}); !remote.IsStatus(err, http.StatusUnauthorized) {
		t.Fatalf("bad login: want 401, got %v", err)
	}

	cand, err := remote.NewCandidateAPI(b.Client).GetCandidate(ctx, b.Demo.Alice.ID)
	if err != nil {
		t.Fatalf("GetCandidate: %v", err)
	}
	if cand.Email != "alice@example.com" || len(cand.TrackIDs) != 1 {
		t.Fatalf("unexpected candidate %+v", cand)
	}

	if _, err := remote.NewTrackAPI(b.Client).GetTrack(ctx, 4242); !remote.IsStatus(err, http.StatusNotFound) {
		t.Fatalf("missing track: want 404, got %v", err)
	}

	b.Server.FailNext("/staff/get", http.StatusBadGateway)
	if _, err := remote.NewStaffAPI(b.Client).GetStaff(ctx, b.Demo.Lead.ID); !errors.Is(err, domain.ErrRequestFailed) {
		t.Fatalf("injected failure: want ErrRequestFailed, got %v", err)
	}
	if _, err := remote.NewStaffAPI(b.Client).GetStaff(ctx, b.Demo.Lead.ID); err != nil {
		t.Fatalf("failure should affect one request only: %v", err)
	}

	b.Client.SetToken("")
	if _, err := remote.NewAuthAPI(b.Client).Me(ctx); !remote.IsStatus(err, http.StatusUnauthorized) {
		t.Fatalf("no token: want 401, got %v", err)
	}
}

func TestResumeDownload(t *testing.T) {
	b := testkit.StartBackend(t)
	r := b.Store.AddResume(b.Demo.Bob.ID, domain.Resume{FileName: "bob.txt", ContentType: "text/plain"}, []byte("hello"))

	api := remote.NewCandidateAPI(b.Client)
	meta, err := api.GetResume(context.Background(), r.ID)
	if err != nil {
		t.Fatalf("GetResume: %v", err)
	}
	if meta.CandidateID != b.Demo.Bob.ID {
		t.Fatalf("unexpected metadata %+v", meta)
	}
	data, err := api.DownloadResume(context.Background(), r.ID)
	if err != nil {
		t.Fatalf("DownloadResume: %v", err)
	}
	if string(data) != "hello" {
		t.Fatalf("unexpected body %q", data)
	}
}
