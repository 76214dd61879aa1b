package devbackend_test

import (
	"bytes"
	"encoding/json"
	"math"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"hrtrack/internal/devbackend"
	"hrtrack/internal/domain"
)

type harness struct {
	t     *testing.T
	url   string
	srv   *devbackend.Server
	demo  devbackend.Demo
	token string
}

func start(t *testing.T) *harness {
	t.Helper()
	store := devbackend.NewStore()
	demo := devbackend.Seed(store)
	srv := devbackend.New(store, nil)
	hs := httptest.NewServer(srv.Handler())
	t.Cleanup(hs.Close)

	h := &harness{t: t, url: hs.URL, srv: srv, demo: demo}
	var res domain.LoginResult
	if code := h.post("/auth/login", domain.Credentials{Email: devbackend.DemoEmail, Password: devbackend.DemoPassword}, &res); code != http.StatusOK {
		t.Fatalf("login: status %d", code)
	}
	h.token = res.Token
	return h
}

func (h *harness) do(method, path string, in, out any) int {
	h.t.Helper()
	var body bytes.Buffer
	if in != nil {
		if err := json.NewEncoder(&body).Encode(in); err != nil {
			h.t.Fatalf("encode: %v", err)
		}
	}
	req, err := http.NewRequest(method, h.url+path, &body)
	if err != nil {
		h.t.Fatalf("new request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if h.token != "" {
		req.Header.Set("Authorization", "Bearer "+h.token)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		h.t.Fatalf("%s %s: %v", method, path, err)
	}
	defer resp.Body.Close()
	if out != nil && resp.StatusCode == http.StatusOK {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			h.t.Fatalf("decode %s: %v", path, err)
		}
	}
	return resp.StatusCode
}

func (h *harness) post(path string, in, out any) int { return h.do(http.MethodPost, path, in, out) }
func (h *harness) get(path string, out any) int     { return h.do(http.MethodGet, path, nil, out) }

func TestAuth(t *testing.T) {
	h := start(t)
	token := h.token

	h.token = ""
	if code := h.post("/auth/login", domain.Credentials{Email: devbackend.DemoEmail, Password: "nope"}, nil); code != http.StatusUnauthorized {
		t.Fatalf("bad password: want 401, got %d", code)
	}
	if code := h.get("/auth/me", nil); code != http.StatusUnauthorized {
		t.Fatalf("no token: want 401, got %d", code)
	}

	h.token = token
	var me domain.Staff
	if code := h.get("/auth/me", &me); code != http.StatusOK || me.ID != h.demo.Recruiter.ID {
		t.Fatalf("me: status %d, %+v", code, me)
	}
}

func TestCandidateSearch_Paginates(t *testing.T) {
	h := start(t)
	var page domain.Page[domain.Candidate]
	if code := h.post("/candidate/search", domain.CandidateFilter{Page: 1, PageSize: 2}, &page); code != http.StatusOK {
		t.Fatalf("status %d", code)
	}
	if page.Total != 3 || len(page.Items) != 1 || page.Items[0].ID != h.demo.Carla.ID {
		t.Fatalf("unexpected page %+v", page)
	}

	if code := h.post("/candidate/search", domain.CandidateFilter{Page: 5, PageSize: 2}, &page); code != http.StatusOK {
		t.Fatalf("status %d", code)
	}
	if page.Items == nil || len(page.Items) != 0 {
		t.Fatalf("want an empty, non-null page, got %+v", page.Items)
	}
}

func TestInterviewSearch_WindowEndIsExclusive(t *testing.T) {
	h := start(t)
	when := time.Date(2026, 5, 4, 10, 0, 0, 0, time.UTC)
	if code := h.post("/interview/set-date", map[string]any{"interviewId": h.demo.Screening.ID, "date": when}, nil); code != http.StatusOK {
		t.Fatalf("set-date: status %d", code)
	}

	var out []domain.Interview
	from := when.Add(-time.Hour)
	if code := h.post("/interview/search", domain.InterviewFilter{From: &from, To: &when}, &out); code != http.StatusOK {
		t.Fatalf("status %d", code)
	}
	if len(out) != 0 {
		t.Fatalf("interview at the window end matched: %+v", out)
	}
	if code := h.post("/interview/search", domain.InterviewFilter{From: &when}, &out); code != http.StatusOK {
		t.Fatalf("status %d", code)
	}
	if len(out) != 1 {
		t.Fatalf("interview at the window start missing: %+v", out)
	}
}

func TestApprove_OpensScreening(t *testing.T) {
	h := start(t)
	var tr domain.Track
	if code := h.post("/track/approve-application", map[string]any{"trackId": h.demo.BobTrack.ID}, &tr); code != http.StatusOK {
		t.Fatalf("approve: status %d", code)
	}
	if tr.Status != domain.TrackInProgress || len(tr.InterviewIDs) != 1 {
		t.Fatalf("unexpected track %+v", tr)
	}

	var iv domain.Interview
	if code := h.get("/interview/get?id="+tr.InterviewIDs[0].String(), &iv); code != http.StatusOK {
		t.Fatalf("get interview: status %d", code)
	}
	if iv.Status != domain.InterviewNotScheduled || len(iv.InterviewerIDs) != 2 {
		t.Fatalf("unexpected screening %+v", iv)
	}

	if code := h.post("/track/approve-application", map[string]any{"trackId": h.demo.BobTrack.ID}, nil); code != http.StatusConflict {
		t.Fatalf("second approve: want 409, got %d", code)
	}
}

func TestFailNext(t *testing.T) {
	h := start(t)
	h.srv.FailNext("/tag/list", http.StatusServiceUnavailable)
	h.srv.FailNext("/tag/list", http.StatusTooManyRequests)

	for _, want := range []int{http.StatusServiceUnavailable, http.StatusTooManyRequests, http.StatusOK} {
		if code := h.get("/tag/list", nil); code != want {
			t.Fatalf("want %d, got %d", want, code)
		}
	}
}

func TestBadRequests(t *testing.T) {
	h := start(t)
	if code := h.get("/vacancy/get?id=abc", nil); code != http.StatusBadRequest {
		t.Fatalf("bad id: want 400, got %d", code)
	}
	if code := h.post("/interview/set-status", map[string]any{"interviewId": h.demo.Screening.ID, "status": "MAYBE"}, nil); code != http.StatusBadRequest {
		t.Fatalf("bad status: want 400, got %d", code)
	}
	req, _ := http.NewRequest(http.MethodPost, h.url+"/candidate/create", strings.NewReader("{"))
	req.Header.Set("Authorization", "Bearer "+h.token)
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("malformed body: want 400, got %d", resp.StatusCode)
	}
}

func TestCandidateSearch_HugePageIsEmpty(t *testing.T) {
	h := start(t)
	var page domain.Page[domain.Candidate]
	if code := h.post("/candidate/search", domain.CandidateFilter{Page: math.MaxInt64 / 2, PageSize: 10}, &page); code != http.StatusOK {
		t.Fatalf("status %d", code)
	}
	if len(page.Items) != 0 || page.Total != 3 {
		t.Fatalf("want an empty page past the end, got %+v", page)
	}
}
