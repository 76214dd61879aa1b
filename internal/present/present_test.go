package present_test

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"

	"hrtrack/internal/domain"
	"hrtrack/internal/present"
	"hrtrack/internal/screens"
	"hrtrack/internal/state"
)

func init() { color.NoColor = true }

func TestSalary(t *testing.T) {
	cases := []struct {
		v    domain.Vacancy
		want string
	}{
		{domain.Vacancy{SalaryFrom: 70000, SalaryTo: 90000, Currency: "EUR"}, "70000-90000 EUR"},
		{domain.Vacancy{SalaryFrom: 50000}, "from 50000"},
		{domain.Vacancy{SalaryTo: 60000, Currency: "USD"}, "up to 60000 USD"},
		{domain.Vacancy{}, "-"},
	}
	for _, tc := range cases {
		if got := present.Salary(tc.v); got != tc.want {
			t.Fatalf("Salary(%+v) = %q, want %q", tc.v, got, tc.want)
		}
	}
}

func TestCandidates_Footer(t *testing.T) {
	var buf bytes.Buffer
	p := state.Pages[domain.Candidate]{
		Items: []domain.Candidate{{ID: 7, FirstName: "Alice", LastName: "Moreau", Email: "a@example.com"}},
		Total: 3,
	}
	if err := present.Candidates(&buf, p); err != nil {
		t.Fatalf("Candidates: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "Alice Moreau") || !strings.Contains(out, "1 of 3 shown, more available") {
		t.Fatalf("unexpected output:\n%s", out)
	}
}

func TestSchedule_UndatedLast(t *testing.T) {
	when := time.Date(2026, 3, 2, 9, 30, 0, 0, time.UTC)
	days, undated := screens.GroupByDay([]domain.Interview{
		{ID: 1, Title: "Screening", Status: domain.InterviewNotScheduled},
		{ID: 2, Title: "Tech", Date: &when, Status: domain.InterviewScheduled},
	}, time.UTC)

	var buf bytes.Buffer
	s := screens.Schedule{Staff: domain.Staff{FirstName: "Ada"}, Days: days, Undated: undated}
	if err := present.Schedule(&buf, s, time.UTC); err != nil {
		t.Fatalf("Schedule: %v", err)
	}
	out := buf.String()
	dated, unscheduled := strings.Index(out, "09:30"), strings.Index(out, "Unscheduled")
	if dated < 0 || unscheduled < 0 || dated > unscheduled {
		t.Fatalf("undated interviews should follow the days:\n%s", out)
	}
}

func TestApplications_NamesCandidates(t *testing.T) {
	var buf bytes.Buffer
	l := screens.ApplicationList{
		Tracks:     []domain.Track{{ID: 3, CandidateID: 9}, {ID: 4, CandidateID: 10}},
		Candidates: map[domain.ID]domain.Candidate{9: {ID: 9, FirstName: "Bob"}},
	}
	if err := present.Applications(&buf, l); err != nil {
		t.Fatalf("Applications: %v", err)
	}
	if out := buf.String(); !strings.Contains(out, "Bob") || !strings.Contains(out, "candidate 10") {
		t.Fatalf("unexpected output:\n%s", out)
	}
}

func TestFailure_Hints(t *testing.T) {
	cases := []struct {
		err  error
		hint string
	}{
		{fmt.Errorf("get: %w", domain.ErrRequestFailed), "try again"},
		{domain.ErrNoSession, "hrtrack login"},
		{errors.New("other"), ""},
	}
	for _, tc := range cases {
		var buf bytes.Buffer
		present.Failure(&buf, tc.err)
		out := buf.String()
		if !strings.HasPrefix(out, "error: ") {
			t.Fatalf("missing prefix: %q", out)
		}
		if tc.hint != "" && !strings.Contains(out, tc.hint) {
			t.Fatalf("want hint %q in %q", tc.hint, out)
		}
		if tc.hint == "" && strings.Count(out, "\n") != 1 {
			t.Fatalf("unexpected hint for plain error: %q", out)
		}
	}
}

func TestStatus_PlainWithoutColor(t *testing.T) {
	if got := present.Status(domain.TrackHired); got != "HIRED" {
		t.Fatalf("got %q", got)
	}
	if got := present.Status(domain.InterviewCanceled); got != "CANCELED" {
		t.Fatalf("got %q", got)
	}
}
