package types

// Candidate is a person tracked by the platform.
type Candidate struct {
	ID          ID     `json:"id"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Email       string `json:"email"`
	Phone       string `json:"phone,omitempty"`
	City        string `json:"city,omitempty"`
	Description string `json:"description,omitempty"`
	TagIDs      []ID   `json:"tagIds"`
	ResumeIDs   []ID   `json:"resumeIds"`
	TrackIDs    []ID   `json:"trackIds"`
}

// FullName joins first and last name.
func (c Candidate) FullName() string { return joinName(c.FirstName, c.LastName) }

func joinName(first, last string) string {
	switch {
	case first == "":
		return last
	case last == "":
		return first
	}
	return first + " " + last
}
