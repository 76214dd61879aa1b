package state

import (
	"context"
	"sync"
)

// Scope ties work to a screen's lifetime. Closing it cancels everything
// bound to or launched in it.
type Scope struct {
	ctx    context.Context
	cancel context.CancelFunc

	mu     sync.Mutex
	closed bool
	wg     sync.WaitGroup
}

// NewScope returns a Scope that also ends when parent is done.
func NewScope(parent context.Context) *Scope {
	ctx, cancel := context.WithCancel(parent)
	return &Scope{ctx: ctx, cancel: cancel}
}

// Context is done once the scope is closed.
func (s *Scope) Context() context.Context { return s.ctx }

// Bind derives a context from ctx that is also cancelled when the scope
// closes. Call release when the work is done.
func (s *Scope) Bind(ctx context.Context) (bound context.Context, release func()) {
	bound, cancel := context.WithCancel(ctx)
	if s.ctx.Err() != nil {
		cancel()
	}
	stop := context.AfterFunc(s.ctx, cancel)
	return bound, func() {
		stop()
		cancel()
	}
}

// Launch runs fn in its own goroutine with the scope's context. It reports
// false, without running fn, if the scope is already closed.
func (s *Scope) Launch(fn func(ctx context.Context)) bool {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return false
	}
	s.wg.Add(1)
	s.mu.Unlock()

	go func() {
		defer s.wg.Done()
		fn(s.ctx)
	}()
	return true
}

// Close cancels the scope and waits for launched work to return.
func (s *Scope) Close() {
	s.mu.Lock()
	s.closed = true
	s.mu.Unlock()
	s.cancel()
	s.wg.Wait()
}
