package devbackend

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"hrtrack/internal/domain"
)

const staffIDKey = "staff_id"

// Server exposes a Store over the backend's HTTP API.
type Server struct {
	store  *Store
	logger *slog.Logger
	now    func() time.Time

	faultMu sync.Mutex
	faults  map[string][]int
}

// New returns a Server over store. A nil logger discards logs.
func New(store *Store, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Server{
		store:  store,
		logger: logger,
		now:    time.Now,
		faults: make(map[string][]int),
	}
}

// FailNext makes the next request to path answer with status instead of
// being served. Calls queue up in order.
func (s *Server) FailNext(path string, status int) {
	s.faultMu.Lock()
	defer s.faultMu.Unlock()
	s.faults[path] = append(s.faults[path], status)
}

func (s *Server) takeFault(path string) (int, bool) {
	s.faultMu.Lock()
	defer s.faultMu.Unlock()
	q := s.faults[path]
	if len(q) == 0 {
		return 0, false
	}
	s.faults[path] = q[1:]
	return q[0], true
}

// Handler builds the gin engine serving every endpoint.
func (s *Server) Handler() http.Handler {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery(), s.accessLog(), s.injectFaults())

	r.POST("/auth/login", s.login)

	api := r.Group("/", s.requireToken())
	api.GET("/auth/me", s.me)

	api.POST("/candidate/search", s.searchCandidates)
	api.GET("/candidate/get", s.getCandidate)
	api.POST("/candidate/create", s.createCandidate)
	api.POST("/candidate/update", s.updateCandidate)

	api.POST("/vacancy/search", s.searchVacancies)
	api.GET("/vacancy/get", s.getVacancy)
	api.POST("/vacancy/archive", s.archiveVacancy)
	api.GET("/tag/list", s.listTags)

	api.POST("/interview/search", s.searchInterviews)
	api.GET("/interview/get", s.getInterview)
	api.POST("/interview/set-date", s.setInterviewDate)
	api.POST("/interview/set-status", s.setInterviewStatus)
	api.POST("/interview/set-feedback", s.setInterviewFeedback)
	api.POST("/interview/set-interviewers", s.setInterviewers)

	api.POST("/track/search", s.searchTracks)
	api.GET("/track/get", s.getTrack)
	api.POST("/track/apply", s.applyTrack)
	api.POST("/track/approve-application", s.approveApplication)
	api.POST("/track/reject", s.rejectTrack)
	api.POST("/track/hire", s.hireTrack)

	api.POST("/staff/search", s.searchStaff)
	api.GET("/staff/get", s.getStaff)

	api.GET("/resume/get", s.getResume)
	api.GET("/resume/download", s.downloadResume)
	return r
}

func (s *Server) accessLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		requestID := c.GetHeader("X-Request-ID")
		if requestID != "" {
			c.Header("X-Request-ID", requestID)
		}
		c.Next()
		s.logger.Info("request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"remote", c.ClientIP(),
			"status", c.Writer.Status(),
			"bytes", c.Writer.Size(),
			"duration", time.Since(start),
			"request_id", requestID,
		)
	}
}

func (s *Server) injectFaults() gin.HandlerFunc {
	return func(c *gin.Context) {
		if status, ok := s.takeFault(c.Request.URL.Path); ok {
			c.AbortWithStatusJSON(status, gin.H{"error": "injected failure"})
			return
		}
		c.Next()
	}
}

func (s *Server) requireToken() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer ")
		if !ok || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing token"})
			return
		}
		staffID, ok := s.store.Authenticate(token)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unknown token"})
			return
		}
		c.Set(staffIDKey, staffID)
		c.Next()
	}
}

func queryID(c *gin.Context) (domain.ID, bool) {
	n, err := strconv.ParseInt(c.Query("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return domain.ID(n), true
}

func bind(c *gin.Context, out any) bool {
	if err := c.ShouldBindJSON(out); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return false
	}
	return true
}

// reply writes v, or maps err to its status code.
func reply(c *gin.Context, v any, err error) {
	switch {
	case err == nil:
		c.JSON(http.StatusOK, v)
	case errors.Is(err, errNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, errConflict):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, errInvalid):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

func (s *Server) login(c *gin.Context) {
	var creds domain.Credentials
	if !bind(c, &creds) {
		return
	}
	token, staff, ok := s.store.Login(creds.Email, creds.Password)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
		return
	}
	c.JSON(http.StatusOK, domain.LoginResult{Token: token, Staff: staff})
}

func (s *Server) me(c *gin.Context) {
	id := c.MustGet(staffIDKey).(domain.ID)
	s.store.mu.RLock()
	st, ok := s.store.staff[id]
	s.store.mu.RUnlock()
	if !ok {
		reply(c, nil, errNotFound)
		return
	}
	reply(c, st, nil)
}
