package types

import "time"

// TrackStatus is the backend-owned state of a candidate's pipeline.
type TrackStatus string

const (
	TrackApplication TrackStatus = "APPLICATION"
	TrackInProgress  TrackStatus = "IN_PROGRESS"
	TrackHired       TrackStatus = "HIRED"
	TrackRejected    TrackStatus = "REJECTED"
)

// Track is a candidate's pipeline through a vacancy's interview stages.
type Track struct {
	ID           ID          `json:"id"`
	CandidateID  ID          `json:"candidateId"`
	VacancyID    ID          `json:"vacancyId"`
	Status       TrackStatus `json:"status"`
	CreatedAt    time.Time   `json:"createdAt"`
	InterviewIDs []ID        `json:"interviewIds"`
}
