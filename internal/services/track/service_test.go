package track_test

import (
	"context"
	"errors"
	"testing"

	"hrtrack/internal/domain"
	"hrtrack/internal/remote"
	"hrtrack/internal/testkit"
)

func TestApply_Conflicts(t *testing.T) {
	b := testkit.StartBackend(t)
	ctx := context.Background()
	svc := b.Services.Tracks

	tr, err := svc.Apply(ctx, b.Demo.Carla.ID, b.Demo.Platform.ID)
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if tr.Status != domain.TrackApplication {
		t.Fatalf("want APPLICATION, got %s", tr.Status)
	}

	_, err = svc.Apply(ctx, b.Demo.Carla.ID, b.Demo.Platform.ID)
	if !errors.Is(err, domain.ErrRequestFailed) || !remote.IsStatus(err, 409) {
		t.Fatalf("duplicate apply: want 409, got %v", err)
	}
	_, err = svc.Apply(ctx, b.Demo.Bob.ID, b.Demo.QA.ID)
	if !remote.IsStatus(err, 409) {
		t.Fatalf("apply to archived vacancy: want 409, got %v", err)
	}
	if _, err := svc.Apply(ctx, 0, b.Demo.QA.ID); !errors.Is(err, domain.ErrInvalidArgument) {
		t.Fatalf("want ErrInvalidArgument, got %v", err)
	}
}

func TestLifecycle(t *testing.T) {
	b := testkit.StartBackend(t)
	ctx := context.Background()
	svc := b.Services.Tracks
	id := b.Demo.BobTrack.ID

	if _, err := svc.Hire(ctx, id); !remote.IsStatus(err, 409) {
		t.Fatalf("hire from APPLICATION: want 409, got %v", err)
	}
	tr, err := svc.ApproveApplication(ctx, id)
	if err != nil {
		t.Fatalf("ApproveApplication: %v", err)
	}
	if tr.Status != domain.TrackInProgress || len(tr.InterviewIDs) != 1 {
		t.Fatalf("unexpected track after approve %+v", tr)
	}
	if tr, err = svc.Hire(ctx, id); err != nil || tr.Status != domain.TrackHired {
		t.Fatalf("Hire: %+v, %v", tr, err)
	}
	if _, err := svc.Reject(ctx, id); !remote.IsStatus(err, 409) {
		t.Fatalf("reject after hire: want 409, got %v", err)
	}
}

func TestSearch_ByStatus(t *testing.T) {
	b := testkit.StartBackend(t)
	ts, err := b.Services.Tracks.Search(context.Background(), domain.TrackFilter{Status: domain.TrackApplication})
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(ts) != 2 {
		t.Fatalf("want 2 open applications, got %d", len(ts))
	}
}
