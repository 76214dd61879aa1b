package types

import "time"

// Tag labels candidates and vacancies.
type Tag struct {
	ID   ID     `json:"id"`
	Name string `json:"name"`
}

// Resume is a file attached to a candidate.
type Resume struct {
	ID          ID        `json:"id"`
	CandidateID ID        `json:"candidateId"`
	FileName    string    `json:"fileName"`
	ContentType string    `json:"contentType,omitempty"`
	UploadedAt  time.Time `json:"uploadedAt"`
}
