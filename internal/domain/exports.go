package domain

import (
	interfaces "hrtrack/internal/domain/interfaces"
	types "hrtrack/internal/domain/types"
)

// Type aliases expose domain types from the types subpackage for compact imports.
type (
	ID              = types.ID
	Candidate       = types.Candidate
	Vacancy         = types.Vacancy
	Interview       = types.Interview
	InterviewStatus = types.InterviewStatus
	Track           = types.Track
	TrackStatus     = types.TrackStatus
	Staff           = types.Staff
	Tag             = types.Tag
	Resume          = types.Resume
	CandidateFilter = types.CandidateFilter
	VacancyFilter   = types.VacancyFilter
	InterviewFilter = types.InterviewFilter
	TrackFilter     = types.TrackFilter
	StaffFilter     = types.StaffFilter
	Session         = types.Session
	Credentials     = types.Credentials
	LoginResult     = types.LoginResult
	Profile         = types.Profile
)

// Page is one slice of a paged search response.
type Page[T any] = types.Page[T]

const (
	InterviewNotScheduled = types.InterviewNotScheduled
	InterviewScheduled    = types.InterviewScheduled
	InterviewPassed       = types.InterviewPassed
	InterviewFailed       = types.InterviewFailed
	InterviewCanceled     = types.InterviewCanceled

	TrackApplication = types.TrackApplication
	TrackInProgress  = types.TrackInProgress
	TrackHired       = types.TrackHired
	TrackRejected    = types.TrackRejected

	DefaultPageSize = types.DefaultPageSize
	MaxPageSize     = types.MaxPageSize
)

var (
	ParseID       = types.ParseID
	ContainsID    = types.ContainsID
	ClampPageSize = types.ClampPageSize
	ClampPage     = types.ClampPage
)

// Interface aliases expose domain interfaces from the interfaces subpackage.
type (
	AuthSource       = interfaces.AuthSource
	CandidateSource  = interfaces.CandidateSource
	VacancySource    = interfaces.VacancySource
	InterviewSource  = interfaces.InterviewSource
	TrackSource      = interfaces.TrackSource
	StaffSource      = interfaces.StaffSource
	SessionStore     = interfaces.SessionStore
	ProfileStore     = interfaces.ProfileStore
	TokenHolder      = interfaces.TokenHolder
	AuthService      = interfaces.AuthService
	CandidateService = interfaces.CandidateService
	VacancyService   = interfaces.VacancyService
	InterviewService = interfaces.InterviewService
	TrackService     = interfaces.TrackService
	StaffService     = interfaces.StaffService
)
