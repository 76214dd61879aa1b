package staff

import (
	"context"
	"fmt"
	"strings"

	"hrtrack/internal/domain"
)

// Service wraps a StaffSource and the auth endpoint for the current user.
type Service struct {
	source   domain.StaffSource
	auth     domain.AuthSource
	pageSize int
}

// New constructs a staff Service.
func New(source domain.StaffSource, auth domain.AuthSource, pageSize int) *Service {
	return &Service{source: source, auth: auth, pageSize: pageSize}
}

// Search runs a paged staff search.
func (s *Service) Search(ctx context.Context, filter domain.StaffFilter) (domain.Page[domain.Staff], error) {
	filter.Query = strings.TrimSpace(filter.Query)
	filter.Page = domain.ClampPage(filter.Page)
	if filter.PageSize <= 0 {
		filter.PageSize = s.pageSize
	}
	filter.PageSize = domain.ClampPageSize(filter.PageSize)
	return s.source.SearchStaff(ctx, filter)
}

// Get loads one staff member.
func (s *Service) Get(ctx context.Context, id domain.ID) (domain.Staff, error) {
	if id <= 0 {
		return domain.Staff{}, fmt.Errorf("%w: staff id %d", domain.ErrInvalidArgument, id)
	}
	return s.source.GetStaff(ctx, id)
}

// Me returns the logged-in staff member.
func (s *Service) Me(ctx context.Context) (domain.Staff, error) {
	return s.auth.Me(ctx)
}

// Compile-time assertion that Service implements domain.StaffService.
var _ domain.StaffService = (*Service)(nil)
