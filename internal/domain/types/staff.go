package types

// Staff is a recruiter, hiring manager or interviewer.
type Staff struct {
	ID           ID     `json:"id"`
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	Email        string `json:"email"`
	Position     string `json:"position,omitempty"`
	VacancyIDs   []ID   `json:"vacancyIds"`
	InterviewIDs []ID   `json:"interviewIds"`
}

// FullName joins first and last name.
func (s Staff) FullName() string { return joinName(s.FirstName, s.LastName) }
