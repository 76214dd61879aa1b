package app

import (
	"time"

	"hrtrack/internal/screens"
	"hrtrack/internal/state"
)

// App builds screens over the wired services.
type App struct {
	*Wire
	Location *time.Location
}

// New returns an App whose schedules are cut in local time.
func New(w *Wire) *App {
	return &App{Wire: w, Location: time.Local}
}

func (a *App) CandidateSearch(scope *state.Scope) *screens.CandidateSearch {
	return screens.NewCandidateSearch(scope, a.Candidates, a.Config.PageSize)
}

func (a *App) CandidateDetails(scope *state.Scope) *screens.CandidateDetails {
	return screens.NewCandidateDetails(scope, a.Candidates, a.Vacancies, a.Tracks)
}

func (a *App) VacancyList(scope *state.Scope) *screens.VacancyList {
	return screens.NewVacancyList(scope, a.Vacancies, a.Config.PageSize)
}

func (a *App) VacancyDetails(scope *state.Scope) *screens.VacancyDetails {
	return screens.NewVacancyDetails(scope, a.Vacancies, a.Staff, a.Tracks)
}

func (a *App) InterviewSchedule(scope *state.Scope) *screens.InterviewSchedule {
	return screens.NewInterviewSchedule(scope, a.Interviews, a.Staff, a.Location)
}

func (a *App) InterviewDetails(scope *state.Scope) *screens.InterviewDetails {
	return screens.NewInterviewDetails(scope, a.Interviews)
}

func (a *App) TrackDetails(scope *state.Scope) *screens.TrackDetails {
	return screens.NewTrackDetails(scope, a.Tracks, a.Interviews, a.Candidates, a.Vacancies)
}

func (a *App) Applications(scope *state.Scope) *screens.Applications {
	return screens.NewApplications(scope, a.Tracks, a.Candidates)
}
