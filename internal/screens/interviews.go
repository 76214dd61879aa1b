package screens

import (
	"cmp"
	"context"
	"slices"
	"time"

	"hrtrack/internal/domain"
	"hrtrack/internal/state"
)

// Day is one calendar day of a schedule.
type Day struct {
	Date       time.Time
	Interviews []domain.Interview
}

// Schedule is a staff member's interviews grouped by day.
type Schedule struct {
	Staff   domain.Staff
	Days    []Day
	Undated []domain.Interview
}

// GroupByDay buckets interviews by calendar day in loc. Days are ascending,
// interviews within a day are ordered by time, and interviews without a
// date are returned separately in id order.
func GroupByDay(items []domain.Interview, loc *time.Location) (days []Day, undated []domain.Interview) {
	if loc == nil {
		loc = time.Local
	}
	dated := make([]domain.Interview, 0, len(items))
	for _, iv := range items {
		if iv.Scheduled() {
			dated = append(dated, iv)
		} else {
			undated = append(undated, iv)
		}
	}
	slices.SortStableFunc(dated, func(a, b domain.Interview) int {
		if c := a.Date.Compare(*b.Date); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})
	slices.SortStableFunc(undated, func(a, b domain.Interview) int { return cmp.Compare(a.ID, b.ID) })

	for _, iv := range dated {
		t := iv.Date.In(loc)
		day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
		if n := len(days); n > 0 && days[n-1].Date.Equal(day) {
			days[n-1].Interviews = append(days[n-1].Interviews, iv)
			continue
		}
		days = append(days, Day{Date: day, Interviews: []domain.Interview{iv}})
	}
	return days, undated
}

// InterviewSchedule lists a staff member's interviews within a window.
type InterviewSchedule struct {
	scope      *state.Scope
	interviews domain.InterviewService
	staff      domain.StaffService
	loc        *time.Location
	holder     *state.Holder[Schedule]
}

// NewInterviewSchedule builds the screen. Days are cut in loc (local time
// when nil).
func NewInterviewSchedule(
	scope *state.Scope,
	interviews domain.InterviewService,
	staff domain.StaffService,
	loc *time.Location,
) *InterviewSchedule {
	if loc == nil {
		loc = time.Local
	}
	return &InterviewSchedule{
		scope:      scope,
		interviews: interviews,
		staff:      staff,
		loc:        loc,
		holder:     state.NewHolder(Schedule{}),
	}
}

// State returns the current schedule.
func (s *InterviewSchedule) State() state.State[Schedule] { return s.holder.Snapshot() }

// Subscribe forwards every state change to fn.
func (s *InterviewSchedule) Subscribe(fn func(state.State[Schedule])) func() {
	return s.holder.Subscribe(fn)
}

// Load fetches the interviews of staffID in [from, to). A zero staffID means
// the signed-in user. A nil bound leaves that side open.
func (s *InterviewSchedule) Load(ctx context.Context, staffID domain.ID, from, to *time.Time) error {
	return run(ctx, s.scope, func(ctx context.Context) error {
		return s.holder.Load(ctx, func(ctx context.Context) (Schedule, error) {
			var (
				who domain.Staff
				err error
			)
			if staffID == 0 {
				who, err = s.staff.Me(ctx)
			} else {
				who, err = s.staff.Get(ctx, staffID)
			}
			if err != nil {
				return Schedule{}, err
			}
			items, err := s.interviews.Search(ctx, domain.InterviewFilter{StaffID: who.ID, From: from, To: to})
			if err != nil {
				return Schedule{}, err
			}
			days, undated := GroupByDay(items, s.loc)
			return Schedule{Staff: who, Days: days, Undated: undated}, nil
		})
	})
}

// InterviewDetails is the interview card. Every edit is shown at once and
// reverted if the backend refuses it.
type InterviewDetails struct {
	scope      *state.Scope
	interviews domain.InterviewService
	holder     *state.Holder[domain.Interview]
}

// NewInterviewDetails builds the screen.
func NewInterviewDetails(scope *state.Scope, interviews domain.InterviewService) *InterviewDetails {
	return &InterviewDetails{
		scope:      scope,
		interviews: interviews,
		holder:     state.NewHolder(domain.Interview{}),
	}
}

// State returns the current interview.
func (d *InterviewDetails) State() state.State[domain.Interview] { return d.holder.Snapshot() }

// Subscribe forwards every state change to fn.
func (d *InterviewDetails) Subscribe(fn func(state.State[domain.Interview])) func() {
	return d.holder.Subscribe(fn)
}

// Load fetches the interview.
func (d *InterviewDetails) Load(ctx context.Context, id domain.ID) error {
	return run(ctx, d.scope, func(ctx context.Context) error {
		return d.holder.Load(ctx, func(ctx context.Context) (domain.Interview, error) {
			return d.interviews.Get(ctx, id)
		})
	})
}

// SetDate schedules the interview at date.
func (d *InterviewDetails) SetDate(ctx context.Context, date time.Time) error {
	return d.edit(ctx,
		func(iv domain.Interview) domain.Interview {
			at := date.UTC()
			iv.Date = &at
			if iv.Status == domain.InterviewNotScheduled {
				iv.Status = domain.InterviewScheduled
			}
			return iv
		},
		func(ctx context.Context, id domain.ID) (domain.Interview, error) {
			return d.interviews.SetDate(ctx, id, date)
		})
}

// SetStatus records the outcome of the interview.
func (d *InterviewDetails) SetStatus(ctx context.Context, status domain.InterviewStatus) error {
	return d.edit(ctx,
		func(iv domain.Interview) domain.Interview {
			iv.Status = status
			return iv
		},
		func(ctx context.Context, id domain.ID) (domain.Interview, error) {
			return d.interviews.SetStatus(ctx, id, status)
		})
}

// SetFeedback replaces the interviewers' notes.
func (d *InterviewDetails) SetFeedback(ctx context.Context, feedback string) error {
	return d.edit(ctx,
		func(iv domain.Interview) domain.Interview {
			iv.Feedback = feedback
			return iv
		},
		func(ctx context.Context, id domain.ID) (domain.Interview, error) {
			return d.interviews.SetFeedback(ctx, id, feedback)
		})
}

// SetInterviewers replaces the interview panel.
func (d *InterviewDetails) SetInterviewers(ctx context.Context, staffIDs []domain.ID) error {
	ids := append([]domain.ID(nil), staffIDs...)
	return d.edit(ctx,
		func(iv domain.Interview) domain.Interview {
			iv.InterviewerIDs = ids
			return iv
		},
		func(ctx context.Context, id domain.ID) (domain.Interview, error) {
			return d.interviews.SetInterviewers(ctx, id, ids)
		})
}

func (d *InterviewDetails) edit(
	ctx context.Context,
	guess func(domain.Interview) domain.Interview,
	call func(context.Context, domain.ID) (domain.Interview, error),
) error {
	id := d.holder.Snapshot().Value.ID
	return run(ctx, d.scope, func(ctx context.Context) error {
		return d.holder.Mutate(ctx, guess, nil, func(ctx context.Context) (func(domain.Interview) domain.Interview, error) {
			saved, err := call(ctx, id)
			if err != nil {
				return nil, err
			}
			return replaceWith(saved), nil
		})
	})
}
