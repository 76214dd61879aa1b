package devbackend

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hrtrack/internal/domain"
)

func (s *Server) searchCandidates(c *gin.Context) {
	var f domain.CandidateFilter
	if !bind(c, &f) {
		return
	}
	s.store.mu.RLock()
	matched := make([]domain.Candidate, 0)
	for _, id := range sortedIDs(s.store.candidates) {
		cand := s.store.candidates[id]
		if !containsFold(f.Query, cand.FirstName, cand.LastName, cand.Email, cand.City) {
			continue
		}
		if !hasAllTags(cand.TagIDs, f.TagIDs) {
			continue
		}
		matched = append(matched, cand)
	}
	s.store.mu.RUnlock()
	reply(c, paginate(matched, f.Page, f.PageSize), nil)
}

func (s *Server) getCandidate(c *gin.Context) {
	id, ok := queryID(c)
	if !ok {
		return
	}
	s.store.mu.RLock()
	cand, found := s.store.candidates[id]
	s.store.mu.RUnlock()
	if !found {
		reply(c, nil, errNotFound)
		return
	}
	reply(c, cand, nil)
}

func (s *Server) createCandidate(c *gin.Context) {
	var cand domain.Candidate
	if !bind(c, &cand) {
		return
	}
	if cand.FirstName == "" && cand.LastName == "" {
		reply(c, nil, errInvalid)
		return
	}
	cand.ResumeIDs = nil
	reply(c, s.store.AddCandidate(cand), nil)
}

func (s *Server) updateCandidate(c *gin.Context) {
	var in domain.Candidate
	if !bind(c, &in) {
		return
	}
	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	cur, ok := s.store.candidates[in.ID]
	if !ok {
		reply(c, nil, errNotFound)
		return
	}
	// Relations are owned by the backend.
	in.ResumeIDs = cur.ResumeIDs
	in.TrackIDs = cur.TrackIDs
	s.store.candidates[in.ID] = in
	reply(c, in, nil)
}

func (s *Server) searchStaff(c *gin.Context) {
	var f domain.StaffFilter
	if !bind(c, &f) {
		return
	}
	s.store.mu.RLock()
	matched := make([]domain.Staff, 0)
	for _, id := range sortedIDs(s.store.staff) {
		st := s.store.staff[id]
		if containsFold(f.Query, st.FirstName, st.LastName, st.Email, st.Position) {
			matched = append(matched, st)
		}
	}
	s.store.mu.RUnlock()
	reply(c, paginate(matched, f.Page, f.PageSize), nil)
}

func (s *Server) getStaff(c *gin.Context) {
	id, ok := queryID(c)
	if !ok {
		return
	}
	s.store.mu.RLock()
	st, found := s.store.staff[id]
	s.store.mu.RUnlock()
	if !found {
		reply(c, nil, errNotFound)
		return
	}
	reply(c, st, nil)
}

func (s *Server) getResume(c *gin.Context) {
	id, ok := queryID(c)
	if !ok {
		return
	}
	s.store.mu.RLock()
	r, found := s.store.resumes[id]
	s.store.mu.RUnlock()
	if !found {
		reply(c, nil, errNotFound)
		return
	}
	reply(c, r, nil)
}

func (s *Server) downloadResume(c *gin.Context) {
	id, ok := queryID(c)
	if !ok {
		return
	}
	s.store.mu.RLock()
	r, found := s.store.resumes[id]
	data := s.store.files[id]
	s.store.mu.RUnlock()
	if !found {
		reply(c, nil, errNotFound)
		return
	}
	contentType := r.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	c.Data(http.StatusOK, contentType, data)
}
