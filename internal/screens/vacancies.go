package screens

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"

	"hrtrack/internal/domain"
	"hrtrack/internal/state"
)

// VacancyFilter narrows an already loaded vacancy list without another
// request. Zero salary bounds are open.
type VacancyFilter struct {
	SalaryFrom      int64
	SalaryTo        int64
	TagIDs          []domain.ID
	IncludeArchived bool
}

// FilterVacancies keeps the vacancies matching f, in order.
func FilterVacancies(items []domain.Vacancy, f VacancyFilter) []domain.Vacancy {
	out := make([]domain.Vacancy, 0, len(items))
	for _, v := range items {
		if v.Archived && !f.IncludeArchived {
			continue
		}
		if !v.SalaryOverlaps(f.SalaryFrom, f.SalaryTo) {
			continue
		}
		if !hasAllTags(v.TagIDs, f.TagIDs) {
			continue
		}
		out = append(out, v)
	}
	return out
}

// VacancyList is the paged vacancy search with local filters.
type VacancyList struct {
	scope     *state.Scope
	vacancies domain.VacancyService
	pager     *state.Pager[domain.Vacancy]

	mu           sync.Mutex
	query        string
	local        VacancyFilter
	withArchived bool
}

// NewVacancyList builds the screen; nothing is loaded until Search.
func NewVacancyList(scope *state.Scope, vacancies domain.VacancyService, pageSize int) *VacancyList {
	l := &VacancyList{scope: scope, vacancies: vacancies}
	l.pager = state.NewPager(domain.ClampPageSize(pageSize), l.fetch)
	return l
}

func (l *VacancyList) fetch(ctx context.Context, page, size int) ([]domain.Vacancy, int, error) {
	l.mu.Lock()
	f := domain.VacancyFilter{Query: l.query, IncludeArchived: l.withArchived, Page: page, PageSize: size}
	l.mu.Unlock()

	res, err := l.vacancies.Search(ctx, f)
	if err != nil {
		return nil, 0, err
	}
	return res.Items, res.Total, nil
}

// State returns every loaded vacancy, before local filtering.
func (l *VacancyList) State() state.State[state.Pages[domain.Vacancy]] {
	return l.pager.Snapshot()
}

// Subscribe forwards every state change to fn.
func (l *VacancyList) Subscribe(fn func(state.State[state.Pages[domain.Vacancy]])) func() {
	return l.pager.Holder().Subscribe(fn)
}

// Visible returns the loaded vacancies that pass the local filter.
func (l *VacancyList) Visible() []domain.Vacancy {
	l.mu.Lock()
	f := l.local
	l.mu.Unlock()
	return FilterVacancies(l.pager.Snapshot().Value.Items, f)
}

// SetFilter replaces the local filter. No request is made.
func (l *VacancyList) SetFilter(f VacancyFilter) {
	f.TagIDs = append([]domain.ID(nil), f.TagIDs...)
	l.mu.Lock()
	l.local = f
	l.mu.Unlock()
}

// Search reloads the list from the first page. Archived vacancies are
// requested only when includeArchived is set.
func (l *VacancyList) Search(ctx context.Context, query string, includeArchived bool) error {
	l.mu.Lock()
	l.query = query
	l.withArchived = includeArchived
	l.local.IncludeArchived = includeArchived
	l.mu.Unlock()
	return run(ctx, l.scope, l.pager.Refresh)
}

// LoadMore appends the next page.
func (l *VacancyList) LoadMore(ctx context.Context) error {
	return run(ctx, l.scope, l.pager.LoadNext)
}

// LoadPages keeps loading until the end or until n more pages arrived.
func (l *VacancyList) LoadPages(ctx context.Context, n int) error {
	return run(ctx, l.scope, func(ctx context.Context) error {
		return l.pager.LoadAll(ctx, n)
	})
}

// SetArchived flips the archive flag of a listed vacancy. The list shows the
// new flag at once and reverts it if the backend refuses.
func (l *VacancyList) SetArchived(ctx context.Context, id domain.ID, archived bool) error {
	var was bool
	return run(ctx, l.scope, func(ctx context.Context) error {
		return l.pager.Holder().Mutate(ctx,
			func(p state.Pages[domain.Vacancy]) state.Pages[domain.Vacancy] {
				return replaceVacancy(p, id, func(v domain.Vacancy) domain.Vacancy {
					was = v.Archived
					v.Archived = archived
					return v
				})
			},
			func(p state.Pages[domain.Vacancy]) state.Pages[domain.Vacancy] {
				return replaceVacancy(p, id, func(v domain.Vacancy) domain.Vacancy {
					if v.Archived == archived {
						v.Archived = was
					}
					return v
				})
			},
			func(ctx context.Context) (func(state.Pages[domain.Vacancy]) state.Pages[domain.Vacancy], error) {
				saved, err := l.vacancies.SetArchived(ctx, id, archived)
				if err != nil {
					return nil, err
				}
				return func(p state.Pages[domain.Vacancy]) state.Pages[domain.Vacancy] {
					return replaceVacancy(p, id, replaceWith(saved))
				}, nil
			})
	})
}

func replaceVacancy(p state.Pages[domain.Vacancy], id domain.ID, fn func(domain.Vacancy) domain.Vacancy) state.Pages[domain.Vacancy] {
	items := make([]domain.Vacancy, len(p.Items))
	for i, v := range p.Items {
		if v.ID == id {
			v = fn(v)
		}
		items[i] = v
	}
	p.Items = items
	return p
}

// VacancyView is everything the vacancy card shows.
type VacancyView struct {
	Vacancy domain.Vacancy
	Staff   []domain.Staff
	Tags    []domain.Tag
	Tracks  []domain.Track
}

// VacancyDetails is the vacancy card.
type VacancyDetails struct {
	scope     *state.Scope
	vacancies domain.VacancyService
	staff     domain.StaffService
	tracks    domain.TrackService
	holder    *state.Holder[VacancyView]
}

// NewVacancyDetails builds the screen.
func NewVacancyDetails(
	scope *state.Scope,
	vacancies domain.VacancyService,
	staff domain.StaffService,
	tracks domain.TrackService,
) *VacancyDetails {
	return &VacancyDetails{
		scope:     scope,
		vacancies: vacancies,
		staff:     staff,
		tracks:    tracks,
		holder:    state.NewHolder(VacancyView{}),
	}
}

// State returns the current card.
func (d *VacancyDetails) State() state.State[VacancyView] { return d.holder.Snapshot() }

// Subscribe forwards every state change to fn.
func (d *VacancyDetails) Subscribe(fn func(state.State[VacancyView])) func() {
	return d.holder.Subscribe(fn)
}

// Load fetches the vacancy and then its staff, tags and tracks in parallel.
func (d *VacancyDetails) Load(ctx context.Context, id domain.ID) error {
	return run(ctx, d.scope, func(ctx context.Context) error {
		return d.holder.Load(ctx, func(ctx context.Context) (VacancyView, error) {
			v, err := d.vacancies.Get(ctx, id)
			if err != nil {
				return VacancyView{}, err
			}
			view := VacancyView{Vacancy: v, Staff: make([]domain.Staff, len(v.StaffIDs))}

			g, gctx := errgroup.WithContext(ctx)
			g.SetLimit(fanOut)
			for i, sid := range v.StaffIDs {
				g.Go(func() error {
					st, err := d.staff.Get(gctx, sid)
					view.Staff[i] = st
					return err
				})
			}
			g.Go(func() error {
				if len(v.TagIDs) == 0 {
					return nil
				}
				all, err := d.vacancies.Tags(gctx)
				if err != nil {
					return err
				}
				view.Tags = pickTags(all, v.TagIDs)
				return nil
			})
			g.Go(func() error {
				ts, err := d.tracks.Search(gctx, domain.TrackFilter{VacancyID: v.ID})
				view.Tracks = ts
				return err
			})
			if err := g.Wait(); err != nil {
				return VacancyView{}, err
			}
			return view, nil
		})
	})
}

// SetArchived flips the archive flag optimistically.
func (d *VacancyDetails) SetArchived(ctx context.Context, archived bool) error {
	id := d.holder.Snapshot().Value.Vacancy.ID
	return run(ctx, d.scope, func(ctx context.Context) error {
		return d.holder.Mutate(ctx,
			func(v VacancyView) VacancyView {
				v.Vacancy.Archived = archived
				return v
			},
			nil,
			func(ctx context.Context) (func(VacancyView) VacancyView, error) {
				saved, err := d.vacancies.SetArchived(ctx, id, archived)
				if err != nil {
					return nil, err
				}
				return func(v VacancyView) VacancyView {
					v.Vacancy = saved
					return v
				}, nil
			})
	})
}
