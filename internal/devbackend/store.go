package devbackend

import (
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"

	"hrtrack/internal/domain"
)

type account struct {
	Password string
	StaffID  domain.ID
}

// Store holds all backend records in memory.
type Store struct {
	mu sync.RWMutex

	nextID     domain.ID
	candidates map[domain.ID]domain.Candidate
	vacancies  map[domain.ID]domain.Vacancy
	interviews map[domain.ID]domain.Interview
	tracks     map[domain.ID]domain.Track
	staff      map[domain.ID]domain.Staff
	tags       map[domain.ID]domain.Tag
	resumes    map[domain.ID]domain.Resume
	files      map[domain.ID][]byte
	accounts   map[string]account
	tokens     map[string]domain.ID
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{
		nextID:     1,
		candidates: make(map[domain.ID]domain.Candidate),
		vacancies:  make(map[domain.ID]domain.Vacancy),
		interviews: make(map[domain.ID]domain.Interview),
		tracks:     make(map[domain.ID]domain.Track),
		staff:      make(map[domain.ID]domain.Staff),
		tags:       make(map[domain.ID]domain.Tag),
		resumes:    make(map[domain.ID]domain.Resume),
		files:      make(map[domain.ID][]byte),
		accounts:   make(map[string]account),
		tokens:     make(map[string]domain.ID),
	}
}

// newID must be called with mu held.
func (s *Store) newID() domain.ID {
	id := s.nextID
	s.nextID++
	return id
}

// AddStaff registers a staff member who can log in with email and password.
func (s *Store) AddStaff(st domain.Staff, password string) domain.Staff {
	s.mu.Lock()
	defer s.mu.Unlock()
	st.ID = s.newID()
	s.staff[st.ID] = st
	s.accounts[strings.ToLower(st.Email)] = account{Password: password, StaffID: st.ID}
	return st
}

// AddTag stores a tag.
func (s *Store) AddTag(name string) domain.Tag {
	s.mu.Lock()
	defer s.mu.Unlock()
	t := domain.Tag{ID: s.newID(), Name: name}
	s.tags[t.ID] = t
	return t
}

// AddCandidate stores a candidate with a fresh id.
func (s *Store) AddCandidate(c domain.Candidate) domain.Candidate {
	s.mu.Lock()
	defer s.mu.Unlock()
	c.ID = s.newID()
	c.TrackIDs = nil
	s.candidates[c.ID] = c
	return c
}

// AddVacancy stores a vacancy and links it to its staff.
func (s *Store) AddVacancy(v domain.Vacancy) domain.Vacancy {
	s.mu.Lock()
	defer s.mu.Unlock()
	v.ID = s.newID()
	v.TrackIDs = nil
	s.vacancies[v.ID] = v
	for _, sid := range v.StaffIDs {
		if st, ok := s.staff[sid]; ok {
			st.VacancyIDs = append(st.VacancyIDs, v.ID)
			s.staff[sid] = st
		}
	}
	return v
}

// AddResume attaches a file to a candidate.
func (s *Store) AddResume(candidateID domain.ID, r domain.Resume, data []byte) domain.Resume {
	s.mu.Lock()
	defer s.mu.Unlock()
	r.ID = s.newID()
	r.CandidateID = candidateID
	s.resumes[r.ID] = r
	s.files[r.ID] = append([]byte(nil), data...)
	if c, ok := s.candidates[candidateID]; ok {
		c.ResumeIDs = append(c.ResumeIDs, r.ID)
		s.candidates[candidateID] = c
	}
	return r
}

// Login returns a fresh token for valid credentials.
func (s *Store) Login(email, password string) (string, domain.Staff, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	acc, ok := s.accounts[strings.ToLower(email)]
	if !ok || acc.Password != password {
		return "", domain.Staff{}, false
	}
	token := uuid.NewString()
	s.tokens[token] = acc.StaffID
	return token, s.staff[acc.StaffID], true
}

// Authenticate resolves a token to its staff id.
func (s *Store) Authenticate(token string) (domain.ID, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	id, ok := s.tokens[token]
	return id, ok
}

func sortedIDs[T any](m map[domain.ID]T) []domain.ID {
	ids := make([]domain.ID, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

func hasAllTags(have, want []domain.ID) bool {
	for _, t := range want {
		if !domain.ContainsID(have, t) {
			return false
		}
	}
	return true
}

func containsFold(query string, fields ...string) bool {
	if query == "" {
		return true
	}
	q := strings.ToLower(query)
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), q) {
			return true
		}
	}
	return false
}

func paginate[T any](items []T, page, pageSize int) domain.Page[T] {
	page = domain.ClampPage(page)
	pageSize = domain.ClampPageSize(pageSize)
	out := domain.Page[T]{Page: page, PageSize: pageSize, Total: len(items), Items: []T{}}
	if page >= (len(items)+pageSize-1)/pageSize {
		return out
	}
	start := page * pageSize
	end := min(start+pageSize, len(items))
	out.Items = items[start:end]
	return out
}
