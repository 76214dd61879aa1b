package screens_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"hrtrack/internal/domain"
	"hrtrack/internal/screens"
	"hrtrack/internal/testkit"
)

func at(s string) *time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return &t
}

func TestGroupByDay(t *testing.T) {
	items := []domain.Interview{
		{ID: 1, Date: at("2026-03-02T15:00:00Z")},
		{ID: 2},
		{ID: 3, Date: at("2026-03-01T09:00:00Z")},
		{ID: 4, Date: at("2026-03-02T08:30:00Z")},
		{ID: 5, Date: &time.Time{}},
	}

	days, undated := screens.GroupByDay(items, time.UTC)
	if len(days) != 2 {
		t.Fatalf("want 2 days, got %d", len(days))
	}
	if !days[0].Date.Equal(time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)) || len(days[0].Interviews) != 1 {
		t.Fatalf("unexpected first day %+v", days[0])
	}
	if ids := []domain.ID{days[1].Interviews[0].ID, days[1].Interviews[1].ID}; ids[0] != 4 || ids[1] != 1 {
		t.Fatalf("second day not ordered by time: %v", ids)
	}
	if len(undated) != 2 || undated[0].ID != 2 || undated[1].ID != 5 {
		t.Fatalf("unexpected undated %+v", undated)
	}
}

func TestGroupByDay_UsesLocation(t *testing.T) {
	east := time.FixedZone("east", 10*60*60)
	items := []domain.Interview{{ID: 1, Date: at("2026-03-01T20:00:00Z")}}

	days, _ := screens.GroupByDay(items, east)
	if len(days) != 1 || days[0].Date.Day() != 2 {
		t.Fatalf("want the interview on the 2nd in east, got %+v", days)
	}
}

func TestInterviewSchedule_SignedInUser(t *testing.T) {
	b := testkit.StartBackend(t)
	ctx := context.Background()
	when := time.Date(2026, 3, 10, 14, 0, 0, 0, time.UTC)
	if _, err := b.Services.Interviews.SetDate(ctx, b.Demo.Screening.ID, when); err != nil {
		t.Fatalf("SetDate: %v", err)
	}

	s := screens.NewInterviewSchedule(newScope(t), b.Services.Interviews, b.Services.Staff, time.UTC)
	from, to := when.Add(-24*time.Hour), when.Add(24*time.Hour)
	if err := s.Load(ctx, 0, &from, &to); err != nil {
		t.Fatalf("Load: %v", err)
	}
	v := s.State().Value
	if v.Staff.ID != b.Demo.Recruiter.ID {
		t.Fatalf("want signed-in recruiter, got %+v", v.Staff)
	}
	if len(v.Days) != 1 || len(v.Days[0].Interviews) != 1 || v.Days[0].Interviews[0].ID != b.Demo.Screening.ID {
		t.Fatalf("unexpected schedule %+v", v)
	}

	// Outside the window nothing is listed.
	later := when.Add(48 * time.Hour)
	if err := s.Load(ctx, b.Demo.Lead.ID, &later, nil); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if v := s.State().Value; len(v.Days) != 0 || len(v.Undated) != 0 {
		t.Fatalf("want empty schedule, got %+v", v)
	}
}

func TestInterviewDetails_Edits(t *testing.T) {
	b := testkit.StartBackend(t)
	ctx := context.Background()
	d := screens.NewInterviewDetails(newScope(t), b.Services.Interviews)
	if err := d.Load(ctx, b.Demo.Screening.ID); err != nil {
		t.Fatalf("Load: %v", err)
	}

	when := time.Date(2026, 4, 1, 9, 0, 0, 0, time.UTC)
	if err := d.SetDate(ctx, when); err != nil {
		t.Fatalf("SetDate: %v", err)
	}
	iv := d.State().Value
	if iv.Status != domain.InterviewScheduled || iv.Date == nil || !iv.Date.Equal(when) {
		t.Fatalf("unexpected interview after SetDate %+v", iv)
	}

	b.Server.FailNext("/interview/set-status", http.StatusInternalServerError)
	if err := d.SetStatus(ctx, domain.InterviewPassed); !errors.Is(err, domain.ErrRequestFailed) {
		t.Fatalf("want ErrRequestFailed, got %v", err)
	}
	if got := d.State().Value.Status; got != domain.InterviewScheduled {
		t.Fatalf("want rollback to SCHEDULED, got %s", got)
	}

	if err := d.SetFeedback(ctx, "  strong on systems  "); err != nil {
		t.Fatalf("SetFeedback: %v", err)
	}
	if got := d.State().Value.Feedback; got != "strong on systems" {
		t.Fatalf("want trimmed feedback from the server, got %q", got)
	}

	if err := d.SetInterviewers(ctx, []domain.ID{b.Demo.Lead.ID}); err != nil {
		t.Fatalf("SetInterviewers: %v", err)
	}
	if got := d.State().Value.InterviewerIDs; len(got) != 1 || got[0] != b.Demo.Lead.ID {
		t.Fatalf("unexpected interviewers %v", got)
	}
}
