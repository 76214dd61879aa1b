package types

import "time"

// Page is one slice of a paged search response.
type Page[T any] struct {
	Items    []T `json:"items"`
	Page     int `json:"page"`
	PageSize int `json:"pageSize"`
	Total    int `json:"total"`
}

// CandidateFilter is the body of a candidate search.
type CandidateFilter struct {
	Query    string `json:"query,omitempty"`
	TagIDs   []ID   `json:"tagIds,omitempty"`
	Page     int    `json:"page"`
	PageSize int    `json:"pageSize"`
}

// VacancyFilter is the body of a vacancy search.
type VacancyFilter struct {
	Query           string `json:"query,omitempty"`
	TagIDs          []ID   `json:"tagIds,omitempty"`
	SalaryFrom      int64  `json:"salaryFrom,omitempty"`
	SalaryTo        int64  `json:"salaryTo,omitempty"`
	IncludeArchived bool   `json:"includeArchived,omitempty"`
	Page            int    `json:"page"`
	PageSize        int    `json:"pageSize"`
}

// InterviewFilter narrows an interview search. Zero fields are ignored.
type InterviewFilter struct {
	StaffID ID         `json:"staffId,omitempty"`
	TrackID ID         `json:"trackId,omitempty"`
	From    *time.Time `json:"from,omitempty"`
	To      *time.Time `json:"to,omitempty"`
}

// TrackFilter narrows a track search. Zero fields are ignored.
type TrackFilter struct {
	CandidateID ID          `json:"candidateId,omitempty"`
	VacancyID   ID          `json:"vacancyId,omitempty"`
	Status      TrackStatus `json:"status,omitempty"`
}

// StaffFilter is the body of a staff search.
type StaffFilter struct {
	Query    string `json:"query,omitempty"`
	Page     int    `json:"page"`
	PageSize int    `json:"pageSize"`
}

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// ClampPageSize applies the default and upper limit to a requested size.
func ClampPageSize(size int) int {
	if size <= 0 {
		size = DefaultPageSize
	}
	if size > MaxPageSize {
		size = MaxPageSize
	}
	return size
}

// ClampPage keeps page indexes non-negative.
func ClampPage(page int) int {
	if page < 0 {
		return 0
	}
	return page
}
