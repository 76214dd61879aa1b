package interfaces

import (
	"context"
	"time"

	domaintypes "hrtrack/internal/domain/types"
)

// AuthSource talks to the backend's auth endpoints.
type AuthSource interface {
	Login(ctx context.Context, creds domaintypes.Credentials) (domaintypes.LoginResult, error)
	Me(ctx context.Context) (domaintypes.Staff, error)
}

// CandidateSource reads and writes candidates and their resumes.
type CandidateSource interface {
	SearchCandidates(
		ctx context.Context,
		filter domaintypes.CandidateFilter,
	) (domaintypes.Page[domaintypes.Candidate], error)
	GetCandidate(ctx context.Context, id domaintypes.ID) (domaintypes.Candidate, error)
	CreateCandidate(ctx context.Context, c domaintypes.Candidate) (domaintypes.Candidate, error)
	UpdateCandidate(ctx context.Context, c domaintypes.Candidate) (domaintypes.Candidate, error)

	GetResume(ctx context.Context, id domaintypes.ID) (domaintypes.Resume, error)
	DownloadResume(ctx context.Context, id domaintypes.ID) ([]byte, error)
}

// VacancySource reads vacancies and tags.
type VacancySource interface {
	SearchVacancies(
		ctx context.Context,
		filter domaintypes.VacancyFilter,
	) (domaintypes.Page[domaintypes.Vacancy], error)
	GetVacancy(ctx context.Context, id domaintypes.ID) (domaintypes.Vacancy, error)
	ArchiveVacancy(ctx context.Context, id domaintypes.ID, archived bool) (domaintypes.Vacancy, error)
	ListTags(ctx context.Context) ([]domaintypes.Tag, error)
}

// InterviewSource reads and edits interviews.
type InterviewSource interface {
	SearchInterviews(
		ctx context.Context,
		filter domaintypes.InterviewFilter,
	) ([]domaintypes.Interview, error)
	GetInterview(ctx context.Context, id domaintypes.ID) (domaintypes.Interview, error)
	SetInterviewDate(ctx context.Context, id domaintypes.ID, date time.Time) (domaintypes.Interview, error)
	SetInterviewStatus(
		ctx context.Context,
		id domaintypes.ID,
		status domaintypes.InterviewStatus,
	) (domaintypes.Interview, error)
	SetInterviewFeedback(ctx context.Context, id domaintypes.ID, feedback string) (domaintypes.Interview, error)
	SetInterviewers(ctx context.Context, id domaintypes.ID, staffIDs []domaintypes.ID) (domaintypes.Interview, error)
}

// TrackSource reads tracks and drives them through the pipeline.
type TrackSource interface {
	SearchTracks(ctx context.Context, filter domaintypes.TrackFilter) ([]domaintypes.Track, error)
	GetTrack(ctx context.Context, id domaintypes.ID) (domaintypes.Track, error)
	Apply(ctx context.Context, candidateID, vacancyID domaintypes.ID) (domaintypes.Track, error)
	ApproveApplication(ctx context.Context, id domaintypes.ID) (domaintypes.Track, error)
	RejectTrack(ctx context.Context, id domaintypes.ID) (domaintypes.Track, error)
	HireTrack(ctx context.Context, id domaintypes.ID) (domaintypes.Track, error)
}

// StaffSource reads staff members.
type StaffSource interface {
	SearchStaff(
		ctx context.Context,
		filter domaintypes.StaffFilter,
	) (domaintypes.Page[domaintypes.Staff], error)
	GetStaff(ctx context.Context, id domaintypes.ID) (domaintypes.Staff, error)
}
