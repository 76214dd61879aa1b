package vacancy

import (
	"context"
	"fmt"
	"strings"

	"hrtrack/internal/domain"
)

// Service wraps a VacancySource.
type Service struct {
	source   domain.VacancySource
	pageSize int
}

// New constructs a vacancy Service.
func New(source domain.VacancySource, pageSize int) *Service {
	return &Service{source: source, pageSize: pageSize}
}

// Search runs a paged vacancy search. An inverted salary range is rejected.
func (s *Service) Search(ctx context.Context, filter domain.VacancyFilter) (domain.Page[domain.Vacancy], error) {
	if filter.SalaryFrom < 0 || filter.SalaryTo < 0 {
		return domain.Page[domain.Vacancy]{}, fmt.Errorf("%w: negative salary bound", domain.ErrInvalidArgument)
	}
	if filter.SalaryTo > 0 && filter.SalaryFrom > filter.SalaryTo {
		return domain.Page[domain.Vacancy]{}, fmt.Errorf("%w: salary range %d..%d", domain.ErrInvalidArgument, filter.SalaryFrom, filter.SalaryTo)
	}
	filter.Query = strings.TrimSpace(filter.Query)
	filter.Page = domain.ClampPage(filter.Page)
	if filter.PageSize <= 0 {
		filter.PageSize = s.pageSize
	}
	filter.PageSize = domain.ClampPageSize(filter.PageSize)
	return s.source.SearchVacancies(ctx, filter)
}

// Get loads one vacancy.
func (s *Service) Get(ctx context.Context, id domain.ID) (domain.Vacancy, error) {
	if id <= 0 {
		return domain.Vacancy{}, fmt.Errorf("%w: vacancy id %d", domain.ErrInvalidArgument, id)
	}
	return s.source.GetVacancy(ctx, id)
}

// SetArchived archives or restores a vacancy.
func (s *Service) SetArchived(ctx context.Context, id domain.ID, archived bool) (domain.Vacancy, error) {
	if id <= 0 {
		return domain.Vacancy{}, fmt.Errorf("%w: vacancy id %d", domain.ErrInvalidArgument, id)
	}
	return s.source.ArchiveVacancy(ctx, id, archived)
}

// Tags lists every tag known to the backend.
func (s *Service) Tags(ctx context.Context) ([]domain.Tag, error) {
	return s.source.ListTags(ctx)
}

// Compile-time assertion that Service implements domain.VacancyService.
var _ domain.VacancyService = (*Service)(nil)
