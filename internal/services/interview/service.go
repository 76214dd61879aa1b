package interview

import (
	"context"
	"fmt"
	"strings"
	"time"

	"hrtrack/internal/domain"
)

// Service wraps an InterviewSource.
type Service struct {
	source domain.InterviewSource
}

// New constructs an interview Service.
func New(source domain.InterviewSource) *Service {
	return &Service{source: source}
}

// Search lists interviews matching filter.
func (s *Service) Search(ctx context.Context, filter domain.InterviewFilter) ([]domain.Interview, error) {
	if filter.From != nil && filter.To != nil && filter.To.Before(*filter.From) {
		return nil, fmt.Errorf("%w: window ends before it starts", domain.ErrInvalidArgument)
	}
	return s.source.SearchInterviews(ctx, filter)
}

// Get loads one interview.
func (s *Service) Get(ctx context.Context, id domain.ID) (domain.Interview, error) {
	if err := checkID(id); err != nil {
		return domain.Interview{}, err
	}
	return s.source.GetInterview(ctx, id)
}

// SetDate schedules the interview at date.
func (s *Service) SetDate(ctx context.Context, id domain.ID, date time.Time) (domain.Interview, error) {
	if err := checkID(id); err != nil {
		return domain.Interview{}, err
	}
	if date.IsZero() {
		return domain.Interview{}, fmt.Errorf("%w: interview date required", domain.ErrInvalidArgument)
	}
	return s.source.SetInterviewDate(ctx, id, date.UTC())
}

// SetStatus moves the interview to status.
func (s *Service) SetStatus(ctx context.Context, id domain.ID, status domain.InterviewStatus) (domain.Interview, error) {
	if err := checkID(id); err != nil {
		return domain.Interview{}, err
	}
	if !status.Valid() {
		return domain.Interview{}, fmt.Errorf("%w: unknown interview status %q", domain.ErrInvalidArgument, status)
	}
	return s.source.SetInterviewStatus(ctx, id, status)
}

// SetFeedback stores the interviewer's feedback.
func (s *Service) SetFeedback(ctx context.Context, id domain.ID, feedback string) (domain.Interview, error) {
	if err := checkID(id); err != nil {
		return domain.Interview{}, err
	}
	return s.source.SetInterviewFeedback(ctx, id, strings.TrimSpace(feedback))
}

// SetInterviewers replaces the interviewer list. Duplicates are dropped.
func (s *Service) SetInterviewers(ctx context.Context, id domain.ID, staffIDs []domain.ID) (domain.Interview, error) {
	if err := checkID(id); err != nil {
		return domain.Interview{}, err
	}
	unique := make([]domain.ID, 0, len(staffIDs))
	for _, sid := range staffIDs {
		if sid <= 0 {
			return domain.Interview{}, fmt.Errorf("%w: staff id %d", domain.ErrInvalidArgument, sid)
		}
		if !domain.ContainsID(unique, sid) {
			unique = append(unique, sid)
		}
	}
	return s.source.SetInterviewers(ctx, id, unique)
}

func checkID(id domain.ID) error {
	if id <= 0 {
		return fmt.Errorf("%w: interview id %d", domain.ErrInvalidArgument, id)
	}
	return nil
}

// Compile-time assertion that Service implements domain.InterviewService.
var _ domain.InterviewService = (*Service)(nil)
