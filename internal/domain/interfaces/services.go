package interfaces

import (
	"context"
	"time"

	domaintypes "hrtrack/internal/domain/types"
)

// AuthService logs in and out and exposes the stored session.
type AuthService interface {
	Login(ctx context.Context, passphrase string, creds domaintypes.Credentials) (domaintypes.Session, error)
	Logout() error
	Current(passphrase string) (domaintypes.Session, error)
}

// CandidateService is the candidate repository used by screens.
type CandidateService interface {
	Search(
		ctx context.Context,
		filter domaintypes.CandidateFilter,
	) (domaintypes.Page[domaintypes.Candidate], error)
	Get(ctx context.Context, id domaintypes.ID) (domaintypes.Candidate, error)
	Create(ctx context.Context, c domaintypes.Candidate) (domaintypes.Candidate, error)
	Update(ctx context.Context, c domaintypes.Candidate) (domaintypes.Candidate, error)
	Resumes(ctx context.Context, c domaintypes.Candidate) ([]domaintypes.Resume, error)
	ResumeText(ctx context.Context, resumeID domaintypes.ID) (string, error)
}

// VacancyService is the vacancy repository used by screens.
type VacancyService interface {
	Search(
		ctx context.Context,
		filter domaintypes.VacancyFilter,
	) (domaintypes.Page[domaintypes.Vacancy], error)
	Get(ctx context.Context, id domaintypes.ID) (domaintypes.Vacancy, error)
	SetArchived(ctx context.Context, id domaintypes.ID, archived bool) (domaintypes.Vacancy, error)
	Tags(ctx context.Context) ([]domaintypes.Tag, error)
}

// InterviewService is the interview repository used by screens.
type InterviewService interface {
	Search(ctx context.Context, filter domaintypes.InterviewFilter) ([]domaintypes.Interview, error)
	Get(ctx context.Context, id domaintypes.ID) (domaintypes.Interview, error)
	SetDate(ctx context.Context, id domaintypes.ID, date time.Time) (domaintypes.Interview, error)
	SetStatus(
		ctx context.Context,
		id domaintypes.ID,
		status domaintypes.InterviewStatus,
	) (domaintypes.Interview, error)
	SetFeedback(ctx context.Context, id domaintypes.ID, feedback string) (domaintypes.Interview, error)
	SetInterviewers(ctx context.Context, id domaintypes.ID, staffIDs []domaintypes.ID) (domaintypes.Interview, error)
}

// TrackService is the track repository used by screens.
type TrackService interface {
	Search(ctx context.Context, filter domaintypes.TrackFilter) ([]domaintypes.Track, error)
	Get(ctx context.Context, id domaintypes.ID) (domaintypes.Track, error)
	Apply(ctx context.Context, candidateID, vacancyID domaintypes.ID) (domaintypes.Track, error)
	ApproveApplication(ctx context.Context, id domaintypes.ID) (domaintypes.Track, error)
	Reject(ctx context.Context, id domaintypes.ID) (domaintypes.Track, error)
	Hire(ctx context.Context, id domaintypes.ID) (domaintypes.Track, error)
}

// StaffService is the staff repository used by screens.
type StaffService interface {
	Search(
		ctx context.Context,
		filter domaintypes.StaffFilter,
	) (domaintypes.Page[domaintypes.Staff], error)
	Get(ctx context.Context, id domaintypes.ID) (domaintypes.Staff, error)
	Me(ctx context.Context) (domaintypes.Staff, error)
}
