package remote

import (
	"context"

	"hrtrack/internal/domain"
)

// StaffAPI is the HTTP implementation of domain.StaffSource.
type StaffAPI struct{ c *Client }

// NewStaffAPI returns a StaffAPI on top of c.
func NewStaffAPI(c *Client) *StaffAPI { return &StaffAPI{c: c} }

func (a *StaffAPI) SearchStaff(ctx context.Context, filter domain.StaffFilter) (domain.Page[domain.Staff], error) {
	var out domain.Page[domain.Staff]
	if err := a.c.postJSON(ctx, "/staff/search", filter, &out); err != nil {
		return domain.Page[domain.Staff]{}, err
	}
	return out, nil
}

func (a *StaffAPI) GetStaff(ctx context.Context, id domain.ID) (domain.Staff, error) {
	var out domain.Staff
	if err := a.c.getJSON(ctx, "/staff/get", idQuery(id), &out); err != nil {
		return domain.Staff{}, err
	}
	return out, nil
}

var _ domain.StaffSource = (*StaffAPI)(nil)
