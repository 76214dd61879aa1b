package state

import (
	"context"
	"sync"
)

// State is the UI-facing snapshot of a screen.
type State[T any] struct {
	Value     T
	IsLoading bool
	IsLoaded  bool
	IsFailed  bool
	Err       error
}

// Holder guards a State and fans changes out to subscribers.
type Holder[T any] struct {
	mu      sync.Mutex
	state   State[T]
	version uint64
	loadSeq uint64
	subs    map[int]func(State[T])
	nextSub int

	// deliverMu orders deliveries; stale snapshots are dropped.
	deliverMu sync.Mutex
	delivered uint64
}

// NewHolder returns a Holder whose value starts at initial.
func NewHolder[T any](initial T) *Holder[T] {
	return &Holder[T]{
		state: State[T]{Value: initial},
		subs:  make(map[int]func(State[T])),
	}
}

// Snapshot returns the current state.
func (h *Holder[T]) Snapshot() State[T] {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.state
}

// Subscribe registers fn for every subsequent change and returns a func
// that unregisters it. fn receives snapshots in order; a snapshot that is
// already older than one delivered is skipped. fn must not change the
// holder it is subscribed to.
func (h *Holder[T]) Subscribe(fn func(State[T])) (unsubscribe func()) {
	h.mu.Lock()
	id := h.nextSub
	h.nextSub++
	h.subs[id] = fn
	h.mu.Unlock()
	return func() {
		h.mu.Lock()
		delete(h.subs, id)
		h.mu.Unlock()
	}
}

// Set replaces the value and marks the state loaded.
func (h *Holder[T]) Set(v T) {
	h.update(func(s *State[T]) {
		s.Value = v
		s.IsLoaded = true
		s.IsFailed = false
		s.Err = nil
	})
}

// Update applies fn to the current value.
func (h *Holder[T]) Update(fn func(T) T) {
	h.update(func(s *State[T]) { s.Value = fn(s.Value) })
}

// Load sets the loading flag, awaits fetch and copies its result in. On
// failure the previous value is kept and the state is marked failed. When
// Loads overlap only the most recently started one may publish its result.
func (h *Holder[T]) Load(ctx context.Context, fetch func(context.Context) (T, error)) error {
	h.mu.Lock()
	h.loadSeq++
	seq := h.loadSeq
	h.mu.Unlock()

	h.update(func(s *State[T]) {
		s.IsLoading = true
		s.IsFailed = false
		s.Err = nil
	})

	v, err := fetch(ctx)

	applied := h.updateIf(func() bool { return h.loadSeq == seq }, func(s *State[T]) {
		s.IsLoading = false
		if err != nil {
			s.IsFailed = true
			s.Err = err
			return
		}
		s.Value = v
		s.IsLoaded = true
	})
	if !applied {
		return nil
	}
	return err
}

// Mutate applies an optimistic change and then runs call.
//
// apply's result is published before call starts. If call fails and undo is
// non-nil, undo is applied to the then-current value so that only this
// change is reverted and edits that landed meanwhile are kept. With a nil
// undo the previous value is restored, unless another change landed in the
// meantime, in which case that newer state wins. The error is recorded in
// Err and returned; IsLoaded is left as it was. If call succeeds and returns
// a non-nil reconcile func, it is applied to the then-current value so the
// server's answer replaces the guess.
func (h *Holder[T]) Mutate(
	ctx context.Context,
	apply func(T) T,
	undo func(T) T,
	call func(context.Context) (reconcile func(T) T, err error),
) error {
	var before T
	var mine uint64
	h.update(func(s *State[T]) {
		before = s.Value
		s.Value = apply(s.Value)
		s.Err = nil
		mine = h.version + 1
	})

	reconcile, err := call(ctx)
	if err != nil {
		h.update(func(s *State[T]) {
			switch {
			case undo != nil:
				s.Value = undo(s.Value)
			case h.version == mine:
				s.Value = before
			}
			s.Err = err
		})
		return err
	}
	if reconcile != nil {
		h.update(func(s *State[T]) { s.Value = reconcile(s.Value) })
	}
	return nil
}

func (h *Holder[T]) update(fn func(*State[T])) {
	h.updateIf(nil, fn)
}

// updateIf runs fn under the lock when cond (if any) holds, bumps the
// version and notifies subscribers outside the lock.
func (h *Holder[T]) updateIf(cond func() bool, fn func(*State[T])) bool {
	h.mu.Lock()
	if cond != nil && !cond() {
		h.mu.Unlock()
		return false
	}
	fn(&h.state)
	h.version++
	snap, ver := h.state, h.version
	subs := make([]func(State[T]), 0, len(h.subs))
	for _, sub := range h.subs {
		subs = append(subs, sub)
	}
	h.mu.Unlock()

	h.deliverMu.Lock()
	defer h.deliverMu.Unlock()
	if ver <= h.delivered {
		return true
	}
	h.delivered = ver
	for _, sub := range subs {
		sub(snap)
	}
	return true
}
