package devbackend

import (
	"github.com/gin-gonic/gin"

	"hrtrack/internal/domain"
)

func (s *Server) searchVacancies(c *gin.Context) {
	var f domain.VacancyFilter
	if !bind(c, &f) {
		return
	}
	s.store.mu.RLock()
	matched := make([]domain.Vacancy, 0)
	for _, id := range sortedIDs(s.store.vacancies) {
		v := s.store.vacancies[id]
		if v.Archived && !f.IncludeArchived {
			continue
		}
		if !containsFold(f.Query, v.Title, v.City, v.Description) {
			continue
		}
		if !hasAllTags(v.TagIDs, f.TagIDs) || !v.SalaryOverlaps(f.SalaryFrom, f.SalaryTo) {
			continue
		}
		matched = append(matched, v)
	}
	s.store.mu.RUnlock()
	reply(c, paginate(matched, f.Page, f.PageSize), nil)
}

func (s *Server) getVacancy(c *gin.Context) {
	id, ok := queryID(c)
	if !ok {
		return
	}
	s.store.mu.RLock()
	v, found := s.store.vacancies[id]
	s.store.mu.RUnlock()
	if !found {
		reply(c, nil, errNotFound)
		return
	}
	reply(c, v, nil)
}

func (s *Server) archiveVacancy(c *gin.Context) {
	var req struct {
		VacancyID domain.ID `json:"vacancyId"`
		Archived  bool      `json:"archived"`
	}
	if !bind(c, &req) {
		return
	}
	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	v, ok := s.store.vacancies[req.VacancyID]
	if !ok {
		reply(c, nil, errNotFound)
		return
	}
	v.Archived = req.Archived
	s.store.vacancies[v.ID] = v
	reply(c, v, nil)
}

func (s *Server) listTags(c *gin.Context) {
	s.store.mu.RLock()
	out := make([]domain.Tag, 0, len(s.store.tags))
	for _, id := range sortedIDs(s.store.tags) {
		out = append(out, s.store.tags[id])
	}
	s.store.mu.RUnlock()
	reply(c, out, nil)
}
