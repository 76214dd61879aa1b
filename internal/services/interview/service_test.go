package interview_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"hrtrack/internal/domain"
	"hrtrack/internal/testkit"
)

func TestValidation(t *testing.T) {
	b := testkit.StartBackend(t)
	ctx := context.Background()
	svc := b.Services.Interviews
	id := b.Demo.Screening.ID
	from := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	to := from.Add(-time.Hour)

	checks := map[string]error{}
	_, checks["inverted window"] = svc.Search(ctx, domain.InterviewFilter{From: &from, To: &to})
	_, checks["zero date"] = svc.SetDate(ctx, id, time.Time{})
	_, checks["unknown status"] = svc.SetStatus(ctx, id, "MAYBE")
	_, checks["bad staff id"] = svc.SetInterviewers(ctx, id, []domain.ID{0})
	_, checks["bad interview id"] = svc.Get(ctx, 0)
	for name, err := range checks {
		if !errors.Is(err, domain.ErrInvalidArgument) {
			t.Fatalf("%s: want ErrInvalidArgument, got %v", name, err)
		}
	}
}

func TestSetDate_SchedulesInUTC(t *testing.T) {
	b := testkit.StartBackend(t)
	berlin := time.FixedZone("CET", 3600)
	when := time.Date(2026, 3, 2, 10, 0, 0, 0, berlin)

	iv, err := b.Services.Interviews.SetDate(context.Background(), b.Demo.Screening.ID, when)
	if err != nil {
		t.Fatalf("SetDate: %v", err)
	}
	if iv.Status != domain.InterviewScheduled || !iv.Date.Equal(when) || iv.Date.Location() != time.UTC {
		t.Fatalf("unexpected interview %+v", iv)
	}
}

func TestSetInterviewers_Dedupes(t *testing.T) {
	b := testkit.StartBackend(t)
	lead := b.Demo.Lead.ID

	iv, err := b.Services.Interviews.SetInterviewers(context.Background(), b.Demo.Screening.ID, []domain.ID{lead, lead})
	if err != nil {
		t.Fatalf("SetInterviewers: %v", err)
	}
	if len(iv.InterviewerIDs) != 1 || iv.InterviewerIDs[0] != lead {
		t.Fatalf("unexpected interviewers %v", iv.InterviewerIDs)
	}
}

func TestSearch_WindowSkipsUndated(t *testing.T) {
	b := testkit.StartBackend(t)
	ctx := context.Background()
	from := time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)

	all, err := b.Services.Interviews.Search(ctx, domain.InterviewFilter{TrackID: b.Demo.AliceTrack.ID})
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(all) != 1 {
		t.Fatalf("want the screening without a window, got %d", len(all))
	}
	windowed, err := b.Services.Interviews.Search(ctx, domain.InterviewFilter{TrackID: b.Demo.AliceTrack.ID, From: &from})
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(windowed) != 0 {
		t.Fatalf("undated interview matched a window: %+v", windowed)
	}
}
