package state

import (
	"context"
	"sync"
	"sync/atomic"
)

// PageFetcher loads page (zero-based) of size pageSize and reports the total
// number of items when the backend knows it (0 otherwise).
type PageFetcher[T any] func(ctx context.Context, page, pageSize int) (items []T, total int, err error)

// Pages is the value a Pager publishes.
type Pages[T any] struct {
	Items      []T
	NextPage   int
	Total      int
	EndReached bool
}

// Pager accumulates pages from a PageFetcher into a Holder.
type Pager[T any] struct {
	holder   *Holder[Pages[T]]
	fetch    PageFetcher[T]
	pageSize int

	mu       sync.Mutex
	inflight bool
	gen      atomic.Uint64
}

// NewPager returns a Pager that requests pageSize items at a time.
func NewPager[T any](pageSize int, fetch PageFetcher[T]) *Pager[T] {
	if pageSize <= 0 {
		pageSize = 1
	}
	return &Pager[T]{
		holder:   NewHolder(Pages[T]{}),
		fetch:    fetch,
		pageSize: pageSize,
	}
}

// Holder exposes the underlying state, e.g. for optimistic edits of items.
func (p *Pager[T]) Holder() *Holder[Pages[T]] { return p.holder }

// Snapshot returns the current state.
func (p *Pager[T]) Snapshot() State[Pages[T]] { return p.holder.Snapshot() }

// LoadNext fetches the next page and appends it. It is a no-op while
// another page is in flight or once the end has been reached.
func (p *Pager[T]) LoadNext(ctx context.Context) error {
	p.mu.Lock()
	cur := p.holder.Snapshot().Value
	if p.inflight || cur.EndReached {
		p.mu.Unlock()
		return nil
	}
	p.inflight = true
	gen := p.gen.Load()
	page := cur.NextPage
	p.mu.Unlock()

	p.holder.update(func(s *State[Pages[T]]) {
		s.IsLoading = true
		s.IsFailed = false
		s.Err = nil
	})

	items, total, err := p.fetch(ctx, page, p.pageSize)

	// Checked under the holder's lock: a page fetched before a Refresh
	// never lands in the refreshed list.
	applied := p.holder.updateIf(func() bool { return p.gen.Load() == gen }, func(s *State[Pages[T]]) {
		s.IsLoading = false
		if err != nil {
			s.IsFailed = true
			s.Err = err
			return
		}
		v := s.Value
		merged := make([]T, 0, len(v.Items)+len(items))
		merged = append(merged, v.Items...)
		merged = append(merged, items...)
		v.Items = merged
		v.NextPage = page + 1
		v.Total = total
		v.EndReached = len(items) < p.pageSize || (total > 0 && len(merged) >= total)
		s.Value = v
		s.IsLoaded = true
	})
	if !applied {
		return nil
	}
	p.mu.Lock()
	if p.gen.Load() == gen {
		p.inflight = false
	}
	p.mu.Unlock()
	return err
}

// Refresh drops everything loaded so far, including any page still in
// flight, and loads the first page again.
func (p *Pager[T]) Refresh(ctx context.Context) error {
	p.mu.Lock()
	p.gen.Add(1)
	p.inflight = false
	p.holder.update(func(s *State[Pages[T]]) {
		*s = State[Pages[T]]{}
	})
	p.mu.Unlock()
	return p.LoadNext(ctx)
}

// LoadAll keeps loading pages until the end is reached or max pages have
// been fetched (max <= 0 means no limit).
func (p *Pager[T]) LoadAll(ctx context.Context, max int) error {
	for n := 0; max <= 0 || n < max; n++ {
		before := p.Snapshot().Value.NextPage
		if err := p.LoadNext(ctx); err != nil {
			return err
		}
		after := p.Snapshot().Value
		if after.EndReached || after.NextPage == before {
			return nil
		}
	}
	return nil
}
