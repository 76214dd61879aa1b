package devbackend

import (
	"time"

	"hrtrack/internal/domain"
)

// Demo credentials created by Seed.
const (
	DemoEmail    = "recruiter@example.com"
	DemoPassword = "secret"
)

// Demo names the records Seed creates.
type Demo struct {
	Recruiter, Lead       domain.Staff
	Go, Remote, Senior    domain.Tag
	Backend, Platform, QA domain.Vacancy
	Alice, Bob, Carla     domain.Candidate
	AliceResume           domain.Resume
	AliceTrack            domain.Track
	BobTrack, CarlaTrack  domain.Track
	Screening             domain.Interview
}

// Seed fills s with a small, consistent data set: one track in progress
// with an unscheduled screening, and two open applications to the backend
// vacancy.
func Seed(s *Store) Demo {
	recruiter := s.AddStaff(domain.Staff{
		FirstName: "Ada", LastName: "Lind", Email: DemoEmail, Position: "Recruiter",
	}, DemoPassword)
	lead := s.AddStaff(domain.Staff{
		FirstName: "Boris", LastName: "Kim", Email: "lead@example.com", Position: "Engineering lead",
	}, "secret")

	goTag := s.AddTag("go")
	remote := s.AddTag("remote")
	senior := s.AddTag("senior")

	backend := s.AddVacancy(domain.Vacancy{
		Title: "Backend engineer", City: "Berlin", Description: "Services in Go",
		SalaryFrom: 70000, SalaryTo: 90000, Currency: "EUR",
		StaffIDs: []domain.ID{recruiter.ID, lead.ID},
		TagIDs:   []domain.ID{goTag.ID, remote.ID},
	})
	platform := s.AddVacancy(domain.Vacancy{
		Title: "Staff engineer", City: "Remote", Description: "Platform team",
		SalaryFrom: 110000, SalaryTo: 140000, Currency: "EUR",
		StaffIDs: []domain.ID{lead.ID},
		TagIDs:   []domain.ID{goTag.ID, senior.ID},
	})
	qa := s.AddVacancy(domain.Vacancy{
		Title: "QA engineer", City: "Lisbon", Archived: true,
		SalaryFrom: 40000, SalaryTo: 55000, Currency: "EUR",
		StaffIDs: []domain.ID{recruiter.ID},
	})

	alice := s.AddCandidate(domain.Candidate{
		FirstName: "Alice", LastName: "Moreau", Email: "alice@example.com", City: "Paris",
		TagIDs: []domain.ID{goTag.ID, senior.ID},
	})
	bob := s.AddCandidate(domain.Candidate{
		FirstName: "Bob", LastName: "Singh", Email: "bob@example.com", City: "Berlin",
		TagIDs: []domain.ID{goTag.ID},
	})
	carla := s.AddCandidate(domain.Candidate{
		FirstName: "Carla", LastName: "Diaz", Email: "carla@example.com", City: "Madrid",
		TagIDs: []domain.ID{remote.ID},
	})
	resume := s.AddResume(alice.ID, domain.Resume{
		FileName: "alice.pdf", ContentType: "application/pdf", UploadedAt: time.Date(2026, 1, 5, 9, 0, 0, 0, time.UTC),
	}, nil)

	s.mu.Lock()
	defer s.mu.Unlock()
	applied := time.Date(2026, 2, 1, 10, 0, 0, 0, time.UTC)
	aliceTrack, _ := s.applyLocked(alice.ID, backend.ID, applied)
	aliceTrack, _ = s.approveLocked(aliceTrack.ID)
	bobTrack, _ := s.applyLocked(bob.ID, backend.ID, applied.Add(24*time.Hour))
	carlaTrack, _ := s.applyLocked(carla.ID, backend.ID, applied.Add(48*time.Hour))

	return Demo{
		Recruiter: s.staff[recruiter.ID], Lead: s.staff[lead.ID],
		Go: goTag, Remote: remote, Senior: senior,
		Backend: s.vacancies[backend.ID], Platform: s.vacancies[platform.ID], QA: s.vacancies[qa.ID],
		Alice: s.candidates[alice.ID], Bob: s.candidates[bob.ID], Carla: s.candidates[carla.ID],
		AliceResume: resume,
		AliceTrack:  aliceTrack, BobTrack: bobTrack, CarlaTrack: carlaTrack,
		Screening: s.interviews[aliceTrack.InterviewIDs[0]],
	}
}
