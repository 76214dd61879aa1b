package screens

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"

	"hrtrack/internal/domain"
	"hrtrack/internal/state"
)

// CandidateSearch is the paged candidate list with a query and tag filter.
type CandidateSearch struct {
	scope      *state.Scope
	candidates domain.CandidateService
	pager      *state.Pager[domain.Candidate]

	mu     sync.Mutex
	filter domain.CandidateFilter
}

// NewCandidateSearch builds the screen; nothing is loaded until Search.
func NewCandidateSearch(scope *state.Scope, candidates domain.CandidateService, pageSize int) *CandidateSearch {
	s := &CandidateSearch{scope: scope, candidates: candidates}
	s.pager = state.NewPager(domain.ClampPageSize(pageSize), s.fetch)
	return s
}

func (s *CandidateSearch) fetch(ctx context.Context, page, size int) ([]domain.Candidate, int, error) {
	s.mu.Lock()
	f := s.filter
	f.TagIDs = append([]domain.ID(nil), s.filter.TagIDs...)
	s.mu.Unlock()

	f.Page, f.PageSize = page, size
	res, err := s.candidates.Search(ctx, f)
	if err != nil {
		return nil, 0, err
	}
	return res.Items, res.Total, nil
}

// State returns the loaded pages.
func (s *CandidateSearch) State() state.State[state.Pages[domain.Candidate]] {
	return s.pager.Snapshot()
}

// Subscribe forwards every state change to fn.
func (s *CandidateSearch) Subscribe(fn func(state.State[state.Pages[domain.Candidate]])) func() {
	return s.pager.Holder().Subscribe(fn)
}

// Search replaces the filter and reloads from the first page.
func (s *CandidateSearch) Search(ctx context.Context, query string, tagIDs []domain.ID) error {
	s.mu.Lock()
	s.filter = domain.CandidateFilter{Query: query, TagIDs: append([]domain.ID(nil), tagIDs...)}
	s.mu.Unlock()
	return run(ctx, s.scope, s.pager.Refresh)
}

// LoadMore appends the next page.
func (s *CandidateSearch) LoadMore(ctx context.Context) error {
	return run(ctx, s.scope, s.pager.LoadNext)
}

// LoadPages keeps loading until the end or until n more pages arrived.
func (s *CandidateSearch) LoadPages(ctx context.Context, n int) error {
	return run(ctx, s.scope, func(ctx context.Context) error {
		return s.pager.LoadAll(ctx, n)
	})
}

// CandidateView is everything the candidate card shows.
type CandidateView struct {
	Candidate domain.Candidate
	Tags      []domain.Tag
	Resumes   []domain.Resume
	Tracks    []domain.Track
}

// CandidateDetails is the candidate card.
type CandidateDetails struct {
	scope      *state.Scope
	candidates domain.CandidateService
	vacancies  domain.VacancyService
	tracks     domain.TrackService
	holder     *state.Holder[CandidateView]
}

// NewCandidateDetails builds the screen. Tags are looked up through the
// vacancy service, which owns the tag dictionary.
func NewCandidateDetails(
	scope *state.Scope,
	candidates domain.CandidateService,
	vacancies domain.VacancyService,
	tracks domain.TrackService,
) *CandidateDetails {
	return &CandidateDetails{
		scope:      scope,
		candidates: candidates,
		vacancies:  vacancies,
		tracks:     tracks,
		holder:     state.NewHolder(CandidateView{}),
	}
}

// State returns the current card.
func (d *CandidateDetails) State() state.State[CandidateView] { return d.holder.Snapshot() }

// Subscribe forwards every state change to fn.
func (d *CandidateDetails) Subscribe(fn func(state.State[CandidateView])) func() {
	return d.holder.Subscribe(fn)
}

// Load fetches the candidate and then its tags, resumes and tracks in
// parallel.
func (d *CandidateDetails) Load(ctx context.Context, id domain.ID) error {
	return run(ctx, d.scope, func(ctx context.Context) error {
		return d.holder.Load(ctx, func(ctx context.Context) (CandidateView, error) {
			c, err := d.candidates.Get(ctx, id)
			if err != nil {
				return CandidateView{}, err
			}
			view := CandidateView{Candidate: c}

			g, gctx := errgroup.WithContext(ctx)
			g.Go(func() error {
				if len(c.TagIDs) == 0 {
					return nil
				}
				all, err := d.vacancies.Tags(gctx)
				if err != nil {
					return err
				}
				view.Tags = pickTags(all, c.TagIDs)
				return nil
			})
			g.Go(func() error {
				rs, err := d.candidates.Resumes(gctx, c)
				view.Resumes = rs
				return err
			})
			g.Go(func() error {
				ts, err := d.tracks.Search(gctx, domain.TrackFilter{CandidateID: c.ID})
				view.Tracks = ts
				return err
			})
			if err := g.Wait(); err != nil {
				return CandidateView{}, err
			}
			return view, nil
		})
	})
}

// Save stores edits to the candidate. The card shows them right away and
// reverts if the backend refuses.
func (d *CandidateDetails) Save(ctx context.Context, c domain.Candidate) error {
	return run(ctx, d.scope, func(ctx context.Context) error {
		return d.holder.Mutate(ctx,
			func(v CandidateView) CandidateView {
				v.Candidate = c
				return v
			},
			nil,
			func(ctx context.Context) (func(CandidateView) CandidateView, error) {
				saved, err := d.candidates.Update(ctx, c)
				if err != nil {
					return nil, err
				}
				return func(v CandidateView) CandidateView {
					v.Candidate = saved
					return v
				}, nil
			})
	})
}

// ResumeText extracts the text of one of the candidate's resumes.
func (d *CandidateDetails) ResumeText(ctx context.Context, resumeID domain.ID) (string, error) {
	var text string
	err := run(ctx, d.scope, func(ctx context.Context) error {
		var err error
		text, err = d.candidates.ResumeText(ctx, resumeID)
		return err
	})
	return text, err
}
