package types

// Vacancy is a job opening with its staff, tags and salary range.
type Vacancy struct {
	ID          ID     `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	City        string `json:"city,omitempty"`
	SalaryFrom  int64  `json:"salaryFrom,omitempty"`
	SalaryTo    int64  `json:"salaryTo,omitempty"`
	Currency    string `json:"currency,omitempty"`
	Archived    bool   `json:"archived"`
	StaffIDs    []ID   `json:"staffIds"`
	TagIDs      []ID   `json:"tagIds"`
	TrackIDs    []ID   `json:"trackIds"`
}

// SalaryOverlaps reports whether the vacancy's salary range intersects
// [from, to]. Zero bounds are open on either side.
func (v Vacancy) SalaryOverlaps(from, to int64) bool {
	lo, hi := v.SalaryFrom, v.SalaryTo
	if to > 0 && lo > 0 && lo > to {
		return false
	}
	if from > 0 && hi > 0 && hi < from {
		return false
	}
	return true
}
