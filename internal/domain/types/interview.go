package types

import "time"

// InterviewStatus is the backend-owned lifecycle state of an interview.
type InterviewStatus string

const (
	InterviewNotScheduled InterviewStatus = "NOT_SCHEDULED"
	InterviewScheduled    InterviewStatus = "SCHEDULED"
	InterviewPassed       InterviewStatus = "PASSED"
	InterviewFailed       InterviewStatus = "FAILED"
	InterviewCanceled     InterviewStatus = "CANCELED"
)

// Valid reports whether s is one of the known statuses.
func (s InterviewStatus) Valid() bool {
	switch s {
	case InterviewNotScheduled, InterviewScheduled, InterviewPassed, InterviewFailed, InterviewCanceled:
		return true
	}
	return false
}

// Interview is a single interview within a track.
type Interview struct {
	ID              ID              `json:"id"`
	TrackID         ID              `json:"trackId"`
	CandidateID     ID              `json:"candidateId"`
	VacancyID       ID              `json:"vacancyId"`
	Title           string          `json:"title"`
	Date            *time.Time      `json:"date,omitempty"`
	DurationMinutes int             `json:"durationMinutes,omitempty"`
	Status          InterviewStatus `json:"status"`
	Feedback        string          `json:"feedback,omitempty"`
	InterviewerIDs  []ID            `json:"interviewerIds"`
}

// Scheduled reports whether the interview has a date.
func (i Interview) Scheduled() bool { return i.Date != nil && !i.Date.IsZero() }
