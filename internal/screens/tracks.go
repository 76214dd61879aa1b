package screens

import (
	"context"
	"slices"

	"golang.org/x/sync/errgroup"

	"hrtrack/internal/domain"
	"hrtrack/internal/state"
)

// TrackView is everything the track card shows.
type TrackView struct {
	Track      domain.Track
	Candidate  domain.Candidate
	Vacancy    domain.Vacancy
	Interviews []domain.Interview
}

// TrackDetails is the track card with its interview stages.
type TrackDetails struct {
	scope      *state.Scope
	tracks     domain.TrackService
	interviews domain.InterviewService
	candidates domain.CandidateService
	vacancies  domain.VacancyService
	holder     *state.Holder[TrackView]
}

// NewTrackDetails builds the screen.
func NewTrackDetails(
	scope *state.Scope,
	tracks domain.TrackService,
	interviews domain.InterviewService,
	candidates domain.CandidateService,
	vacancies domain.VacancyService,
) *TrackDetails {
	return &TrackDetails{
		scope:      scope,
		tracks:     tracks,
		interviews: interviews,
		candidates: candidates,
		vacancies:  vacancies,
		holder:     state.NewHolder(TrackView{}),
	}
}

// State returns the current card.
func (d *TrackDetails) State() state.State[TrackView] { return d.holder.Snapshot() }

// Subscribe forwards every state change to fn.
func (d *TrackDetails) Subscribe(fn func(state.State[TrackView])) func() {
	return d.holder.Subscribe(fn)
}

// Load fetches the track and then its candidate, vacancy and interviews in
// parallel.
func (d *TrackDetails) Load(ctx context.Context, id domain.ID) error {
	return run(ctx, d.scope, func(ctx context.Context) error {
		return d.holder.Load(ctx, func(ctx context.Context) (TrackView, error) {
			t, err := d.tracks.Get(ctx, id)
			if err != nil {
				return TrackView{}, err
			}
			view := TrackView{Track: t}

			g, gctx := errgroup.WithContext(ctx)
			g.Go(func() error {
				c, err := d.candidates.Get(gctx, t.CandidateID)
				view.Candidate = c
				return err
			})
			g.Go(func() error {
				v, err := d.vacancies.Get(gctx, t.VacancyID)
				view.Vacancy = v
				return err
			})
			g.Go(func() error {
				ivs, err := d.trackInterviews(gctx, t.ID)
				view.Interviews = ivs
				return err
			})
			if err := g.Wait(); err != nil {
				return TrackView{}, err
			}
			return view, nil
		})
	})
}

func (d *TrackDetails) trackInterviews(ctx context.Context, trackID domain.ID) ([]domain.Interview, error) {
	return d.interviews.Search(ctx, domain.InterviewFilter{TrackID: trackID})
}

// Approve lets the application into the interview stages. The backend
// opens the first interview, so the stages are reloaded afterwards.
func (d *TrackDetails) Approve(ctx context.Context) error {
	return d.transition(ctx, domain.TrackInProgress, d.tracks.ApproveApplication, true)
}

// Reject closes the track without a hire.
func (d *TrackDetails) Reject(ctx context.Context) error {
	return d.transition(ctx, domain.TrackRejected, d.tracks.Reject, false)
}

// Hire closes the track with a hire.
func (d *TrackDetails) Hire(ctx context.Context) error {
	return d.transition(ctx, domain.TrackHired, d.tracks.Hire, false)
}

func (d *TrackDetails) transition(
	ctx context.Context,
	guess domain.TrackStatus,
	call func(context.Context, domain.ID) (domain.Track, error),
	reloadStages bool,
) error {
	id := d.holder.Snapshot().Value.Track.ID
	return run(ctx, d.scope, func(ctx context.Context) error {
		return d.holder.Mutate(ctx,
			func(v TrackView) TrackView {
				v.Track.Status = guess
				return v
			},
			nil,
			func(ctx context.Context) (func(TrackView) TrackView, error) {
				saved, err := call(ctx, id)
				if err != nil {
					return nil, err
				}
				var stages []domain.Interview
				fresh := false
				if reloadStages {
					// A failed reload keeps the old stages; the transition itself stands.
					if ivs, err := d.trackInterviews(ctx, id); err == nil {
						stages, fresh = ivs, true
					}
				}
				return func(v TrackView) TrackView {
					v.Track = saved
					if fresh {
						v.Interviews = stages
					}
					return v
				}, nil
			})
	})
}

// ApplicationList is the inbox of applications to a vacancy.
type ApplicationList struct {
	VacancyID  domain.ID
	Tracks     []domain.Track
	Candidates map[domain.ID]domain.Candidate
}

// Applications lists the tracks of a vacancy still in APPLICATION.
// Approving or rejecting one removes it from the list at once and puts it
// back if the backend refuses.
type Applications struct {
	scope      *state.Scope
	tracks     domain.TrackService
	candidates domain.CandidateService
	holder     *state.Holder[ApplicationList]
}

// NewApplications builds the screen.
func NewApplications(scope *state.Scope, tracks domain.TrackService, candidates domain.CandidateService) *Applications {
	return &Applications{
		scope:      scope,
		tracks:     tracks,
		candidates: candidates,
		holder:     state.NewHolder(ApplicationList{}),
	}
}

// State returns the current list.
func (a *Applications) State() state.State[ApplicationList] { return a.holder.Snapshot() }

// Subscribe forwards every state change to fn.
func (a *Applications) Subscribe(fn func(state.State[ApplicationList])) func() {
	return a.holder.Subscribe(fn)
}

// Load fetches the open applications of vacancyID and their candidates.
func (a *Applications) Load(ctx context.Context, vacancyID domain.ID) error {
	return run(ctx, a.scope, func(ctx context.Context) error {
		return a.holder.Load(ctx, func(ctx context.Context) (ApplicationList, error) {
			ts, err := a.tracks.Search(ctx, domain.TrackFilter{VacancyID: vacancyID, Status: domain.TrackApplication})
			if err != nil {
				return ApplicationList{}, err
			}
			people := make([]domain.Candidate, len(ts))
			g, gctx := errgroup.WithContext(ctx)
			g.SetLimit(fanOut)
			for i, t := range ts {
				g.Go(func() error {
					c, err := a.candidates.Get(gctx, t.CandidateID)
					people[i] = c
					return err
				})
			}
			if err := g.Wait(); err != nil {
				return ApplicationList{}, err
			}
			byID := make(map[domain.ID]domain.Candidate, len(people))
			for _, c := range people {
				byID[c.ID] = c
			}
			return ApplicationList{VacancyID: vacancyID, Tracks: ts, Candidates: byID}, nil
		})
	})
}

// Approve moves the application into the interview stages.
func (a *Applications) Approve(ctx context.Context, trackID domain.ID) error {
	return a.resolve(ctx, trackID, a.tracks.ApproveApplication)
}

// Reject turns the application down.
func (a *Applications) Reject(ctx context.Context, trackID domain.ID) error {
	return a.resolve(ctx, trackID, a.tracks.Reject)
}

func (a *Applications) resolve(
	ctx context.Context,
	trackID domain.ID,
	call func(context.Context, domain.ID) (domain.Track, error),
) error {
	var (
		removed   domain.Track
		at        = -1
		vacancyID domain.ID
	)
	return run(ctx, a.scope, func(ctx context.Context) error {
		return a.holder.Mutate(ctx,
			func(l ApplicationList) ApplicationList {
				vacancyID = l.VacancyID
				at = slices.IndexFunc(l.Tracks, func(t domain.Track) bool { return t.ID == trackID })
				if at < 0 {
					return l
				}
				removed = l.Tracks[at]
				l.Tracks = slices.Delete(slices.Clone(l.Tracks), at, at+1)
				return l
			},
			func(l ApplicationList) ApplicationList {
				if at < 0 || l.VacancyID != vacancyID || slices.ContainsFunc(l.Tracks, func(t domain.Track) bool { return t.ID == trackID }) {
					return l
				}
				l.Tracks = slices.Insert(slices.Clone(l.Tracks), min(at, len(l.Tracks)), removed)
				return l
			},
			func(ctx context.Context) (func(ApplicationList) ApplicationList, error) {
				_, err := call(ctx, trackID)
				return nil, err
			})
	})
}
