package devbackend

import (
	"time"

	"github.com/gin-gonic/gin"

	"hrtrack/internal/domain"
)

type trackRequest struct {
	TrackID domain.ID `json:"trackId"`
}

func (s *Server) searchInterviews(c *gin.Context) {
	var f domain.InterviewFilter
	if !bind(c, &f) {
		return
	}
	windowed := f.From != nil || f.To != nil
	s.store.mu.RLock()
	out := make([]domain.Interview, 0)
	for _, id := range sortedIDs(s.store.interviews) {
		iv := s.store.interviews[id]
		if f.StaffID != 0 && !domain.ContainsID(iv.InterviewerIDs, f.StaffID) {
			continue
		}
		if f.TrackID != 0 && iv.TrackID != f.TrackID {
			continue
		}
		if windowed {
			if !iv.Scheduled() {
				continue
			}
			if f.From != nil && iv.Date.Before(*f.From) {
				continue
			}
			if f.To != nil && !iv.Date.Before(*f.To) {
				continue
			}
		}
		out = append(out, iv)
	}
	s.store.mu.RUnlock()
	reply(c, out, nil)
}

func (s *Server) getInterview(c *gin.Context) {
	id, ok := queryID(c)
	if !ok {
		return
	}
	s.store.mu.RLock()
	iv, found := s.store.interviews[id]
	s.store.mu.RUnlock()
	if !found {
		reply(c, nil, errNotFound)
		return
	}
	reply(c, iv, nil)
}

func (s *Server) editInterview(c *gin.Context, id domain.ID, edit func(*domain.Interview) error) {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	iv, err := s.store.editInterviewLocked(id, edit)
	reply(c, iv, err)
}

func (s *Server) setInterviewDate(c *gin.Context) {
	var req struct {
		InterviewID domain.ID `json:"interviewId"`
		Date        time.Time `json:"date"`
	}
	if !bind(c, &req) {
		return
	}
	s.editInterview(c, req.InterviewID, setDate(req.Date))
}

func (s *Server) setInterviewStatus(c *gin.Context) {
	var req struct {
		InterviewID domain.ID              `json:"interviewId"`
		Status      domain.InterviewStatus `json:"status"`
	}
	if !bind(c, &req) {
		return
	}
	s.editInterview(c, req.InterviewID, setStatus(req.Status))
}

func (s *Server) setInterviewFeedback(c *gin.Context) {
	var req struct {
		InterviewID domain.ID `json:"interviewId"`
		Feedback    string    `json:"feedback"`
	}
	if !bind(c, &req) {
		return
	}
	s.editInterview(c, req.InterviewID, func(iv *domain.Interview) error {
		iv.Feedback = req.Feedback
		return nil
	})
}

func (s *Server) setInterviewers(c *gin.Context) {
	var req struct {
		InterviewID domain.ID   `json:"interviewId"`
		StaffIDs    []domain.ID `json:"staffIds"`
	}
	if !bind(c, &req) {
		return
	}
	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	for _, sid := range req.StaffIDs {
		if _, ok := s.store.staff[sid]; !ok {
			reply(c, nil, errNotFound)
			return
		}
	}
	iv, err := s.store.editInterviewLocked(req.InterviewID, func(iv *domain.Interview) error {
		iv.InterviewerIDs = append([]domain.ID(nil), req.StaffIDs...)
		return nil
	})
	reply(c, iv, err)
}

func (s *Server) searchTracks(c *gin.Context) {
	var f domain.TrackFilter
	if !bind(c, &f) {
		return
	}
	s.store.mu.RLock()
	out := make([]domain.Track, 0)
	for _, id := range sortedIDs(s.store.tracks) {
		t := s.store.tracks[id]
		if f.CandidateID != 0 && t.CandidateID != f.CandidateID {
			continue
		}
		if f.VacancyID != 0 && t.VacancyID != f.VacancyID {
			continue
		}
		if f.Status != "" && t.Status != f.Status {
			continue
		}
		out = append(out, t)
	}
	s.store.mu.RUnlock()
	reply(c, out, nil)
}

func (s *Server) getTrack(c *gin.Context) {
	id, ok := queryID(c)
	if !ok {
		return
	}
	s.store.mu.RLock()
	t, found := s.store.tracks[id]
	s.store.mu.RUnlock()
	if !found {
		reply(c, nil, errNotFound)
		return
	}
	reply(c, t, nil)
}

func (s *Server) applyTrack(c *gin.Context) {
	var req struct {
		CandidateID domain.ID `json:"candidateId"`
		VacancyID   domain.ID `json:"vacancyId"`
	}
	if !bind(c, &req) {
		return
	}
	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	t, err := s.store.applyLocked(req.CandidateID, req.VacancyID, s.now())
	reply(c, t, err)
}

func (s *Server) transition(c *gin.Context, fn func(domain.ID) (domain.Track, error)) {
	var req trackRequest
	if !bind(c, &req) {
		return
	}
	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	t, err := fn(req.TrackID)
	reply(c, t, err)
}

func (s *Server) approveApplication(c *gin.Context) { s.transition(c, s.store.approveLocked) }

func (s *Server) rejectTrack(c *gin.Context) { s.transition(c, s.store.rejectLocked) }

func (s *Server) hireTrack(c *gin.Context) { s.transition(c, s.store.hireLocked) }
