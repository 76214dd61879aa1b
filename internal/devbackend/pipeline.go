package devbackend

import (
	"errors"
	"time"

	"hrtrack/internal/domain"
)

var (
	errNotFound = errors.New("not found")
	errConflict = errors.New("conflict")
	errInvalid  = errors.New("invalid request")
)

func (s *Store) applyLocked(candidateID, vacancyID domain.ID, now time.Time) (domain.Track, error) {
	c, ok := s.candidates[candidateID]
	if !ok {
		return domain.Track{}, errNotFound
	}
	v, ok := s.vacancies[vacancyID]
	if !ok {
		return domain.Track{}, errNotFound
	}
	if v.Archived {
		return domain.Track{}, errConflict
	}
	for _, tid := range c.TrackIDs {
		if t := s.tracks[tid]; t.VacancyID == vacancyID {
			return domain.Track{}, errConflict
		}
	}
	t := domain.Track{
		ID:          s.newID(),
		CandidateID: candidateID,
		VacancyID:   vacancyID,
		Status:      domain.TrackApplication,
		CreatedAt:   now.UTC(),
	}
	s.tracks[t.ID] = t
	c.TrackIDs = append(c.TrackIDs, t.ID)
	s.candidates[c.ID] = c
	v.TrackIDs = append(v.TrackIDs, t.ID)
	s.vacancies[v.ID] = v
	return t, nil
}

func (s *Store) approveLocked(trackID domain.ID) (domain.Track, error) {
	t, ok := s.tracks[trackID]
	if !ok {
		return domain.Track{}, errNotFound
	}
	if t.Status != domain.TrackApplication {
		return domain.Track{}, errConflict
	}
	v := s.vacancies[t.VacancyID]
	iv := domain.Interview{
		ID:             s.newID(),
		TrackID:        t.ID,
		CandidateID:    t.CandidateID,
		VacancyID:      t.VacancyID,
		Title:          "Screening",
		Status:         domain.InterviewNotScheduled,
		InterviewerIDs: append([]domain.ID(nil), v.StaffIDs...),
	}
	s.interviews[iv.ID] = iv
	for _, sid := range iv.InterviewerIDs {
		if st, ok := s.staff[sid]; ok {
			st.InterviewIDs = append(st.InterviewIDs, iv.ID)
			s.staff[sid] = st
		}
	}
	t.Status = domain.TrackInProgress
	t.InterviewIDs = append(t.InterviewIDs, iv.ID)
	s.tracks[t.ID] = t
	return t, nil
}

func (s *Store) rejectLocked(trackID domain.ID) (domain.Track, error) {
	t, ok := s.tracks[trackID]
	if !ok {
		return domain.Track{}, errNotFound
	}
	if t.Status != domain.TrackApplication && t.Status != domain.TrackInProgress {
		return domain.Track{}, errConflict
	}
	t.Status = domain.TrackRejected
	s.tracks[t.ID] = t
	return t, nil
}

func (s *Store) hireLocked(trackID domain.ID) (domain.Track, error) {
	t, ok := s.tracks[trackID]
	if !ok {
		return domain.Track{}, errNotFound
	}
	if t.Status != domain.TrackInProgress {
		return domain.Track{}, errConflict
	}
	t.Status = domain.TrackHired
	s.tracks[t.ID] = t
	return t, nil
}

func (s *Store) editInterviewLocked(id domain.ID, edit func(*domain.Interview) error) (domain.Interview, error) {
	iv, ok := s.interviews[id]
	if !ok {
		return domain.Interview{}, errNotFound
	}
	if err := edit(&iv); err != nil {
		return domain.Interview{}, err
	}
	s.interviews[id] = iv
	return iv, nil
}

func setDate(date time.Time) func(*domain.Interview) error {
	return func(iv *domain.Interview) error {
		if date.IsZero() {
			return errInvalid
		}
		d := date.UTC()
		iv.Date = &d
		if iv.Status == domain.InterviewNotScheduled {
			iv.Status = domain.InterviewScheduled
		}
		return nil
	}
}

func setStatus(status domain.InterviewStatus) func(*domain.Interview) error {
	return func(iv *domain.Interview) error {
		if !status.Valid() {
			return errInvalid
		}
		iv.Status = status
		return nil
	}
}
