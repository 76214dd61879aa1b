package state_test

import (
	"context"
	"errors"
	"slices"
	"sync"
	"testing"

	"hrtrack/internal/state"
)

var errBoom = errors.New("boom")

func TestLoad_SuccessMarksLoaded(t *testing.T) {
	h := state.NewHolder(0)

	var seen []state.State[int]
	h.Subscribe(func(s state.State[int]) { seen = append(seen, s) })

	err := h.Load(context.Background(), func(context.Context) (int, error) {
		if got := h.Snapshot(); !got.IsLoading {
			t.Fatalf("want loading while fetch runs, got %+v", got)
		}
		return 42, nil
	})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	got := h.Snapshot()
	if !got.IsLoaded || got.IsLoading || got.IsFailed || got.Value != 42 {
		t.Fatalf("unexpected state %+v", got)
	}
	if len(seen) != 2 {
		t.Fatalf("want 2 notifications (loading, loaded), got %d", len(seen))
	}
}

func TestLoad_FailureKeepsPreviousValue(t *testing.T) {
	h := state.NewHolder("old")
	h.Set("kept")

	err := h.Load(context.Background(), func(context.Context) (string, error) {
		return "", errBoom
	})
	if !errors.Is(err, errBoom) {
		t.Fatalf("want errBoom, got %v", err)
	}
	got := h.Snapshot()
	if !got.IsFailed || got.IsLoading || got.Value != "kept" || !errors.Is(got.Err, errBoom) {
		t.Fatalf("unexpected state %+v", got)
	}

	// A later success clears the failure.
	if err := h.Load(context.Background(), func(context.Context) (string, error) { return "new", nil }); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got := h.Snapshot(); got.IsFailed || got.Err != nil || got.Value != "new" {
		t.Fatalf("failure not cleared: %+v", got)
	}
}

func TestLoad_OnlyLatestPublishes(t *testing.T) {
	h := state.NewHolder(0)
	release := make(chan struct{})
	started := make(chan struct{})

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		_ = h.Load(context.Background(), func(context.Context) (int, error) {
			close(started)
			<-release
			return 1, nil
		})
	}()
	<-started

	if err := h.Load(context.Background(), func(context.Context) (int, error) { return 2, nil }); err != nil {
		t.Fatalf("Load: %v", err)
	}
	close(release)
	wg.Wait()

	if got := h.Snapshot().Value; got != 2 {
		t.Fatalf("stale load overwrote newer value: got %d", got)
	}
}

func TestMutate_OptimisticThenReconciled(t *testing.T) {
	h := state.NewHolder([]string{"a", "b"})

	err := h.Mutate(context.Background(),
		func(v []string) []string { return append([]string(nil), v[1:]...) },
		nil,
		func(context.Context) (func([]string) []string, error) {
			if got := h.Snapshot().Value; len(got) != 1 || got[0] != "b" {
				t.Fatalf("optimistic value not visible during call: %v", got)
			}
			return func([]string) []string { return []string{"b", "server"} }, nil
		},
	)
	if err != nil {
		t.Fatalf("Mutate: %v", err)
	}
	if got := h.Snapshot().Value; len(got) != 2 || got[1] != "server" {
		t.Fatalf("reconcile not applied: %v", got)
	}
}

func TestMutate_RollsBackOnFailure(t *testing.T) {
	h := state.NewHolder(10)
	h.Set(10)

	err := h.Mutate(context.Background(),
		func(v int) int { return v + 1 },
		nil,
		func(context.Context) (func(int) int, error) { return nil, errBoom },
	)
	if !errors.Is(err, errBoom) {
		t.Fatalf("want errBoom, got %v", err)
	}
	got := h.Snapshot()
	if got.Value != 10 {
		t.Fatalf("want rollback to 10, got %d", got.Value)
	}
	if !got.IsLoaded || got.IsFailed || !errors.Is(got.Err, errBoom) {
		t.Fatalf("unexpected flags after rollback: %+v", got)
	}
}

func TestMutate_NewerChangeSurvivesRollback(t *testing.T) {
	h := state.NewHolder(1)

	err := h.Mutate(context.Background(),
		func(v int) int { return v * 10 },
		nil,
		func(context.Context) (func(int) int, error) {
			h.Set(99)
			return nil, errBoom
		},
	)
	if !errors.Is(err, errBoom) {
		t.Fatalf("want errBoom, got %v", err)
	}
	if got := h.Snapshot().Value; got != 99 {
		t.Fatalf("rollback clobbered a newer change: got %d", got)
	}
}

func TestMutate_UndoKeepsOverlappingChange(t *testing.T) {
	h := state.NewHolder([]string{"a", "b", "c"})
	without := func(name string) func([]string) []string {
		return func(v []string) []string {
			return slices.DeleteFunc(slices.Clone(v), func(s string) bool { return s == name })
		}
	}

	err := h.Mutate(context.Background(),
		without("a"),
		func(v []string) []string { return append([]string{"a"}, v...) },
		func(context.Context) (func([]string) []string, error) {
			// Another edit to the same list finishes while this one is in flight.
			if err := h.Mutate(context.Background(), without("c"), nil,
				func(context.Context) (func([]string) []string, error) { return nil, nil },
			); err != nil {
				t.Fatalf("inner Mutate: %v", err)
			}
			return nil, errBoom
		},
	)
	if !errors.Is(err, errBoom) {
		t.Fatalf("want errBoom, got %v", err)
	}
	if got := h.Snapshot().Value; !slices.Equal(got, []string{"a", "b"}) {
		t.Fatalf("want only the failed edit undone, got %v", got)
	}
}

func TestSubscribe_Unsubscribe(t *testing.T) {
	h := state.NewHolder(0)
	calls := 0
	unsubscribe := h.Subscribe(func(state.State[int]) { calls++ })

	h.Set(1)
	unsubscribe()
	h.Set(2)

	if calls != 1 {
		t.Fatalf("want 1 call, got %d", calls)
	}
}
