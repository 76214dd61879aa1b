package remote

import (
	"context"

	"hrtrack/internal/domain"
)

// VacancyAPI is the HTTP implementation of domain.VacancySource.
type VacancyAPI struct{ c *Client }

// NewVacancyAPI returns a VacancyAPI on top of c.
func NewVacancyAPI(c *Client) *VacancyAPI { return &VacancyAPI{c: c} }

func (a *VacancyAPI) SearchVacancies(ctx context.Context, filter domain.VacancyFilter) (domain.Page[domain.Vacancy], error) {
	var out domain.Page[domain.Vacancy]
	if err := a.c.postJSON(ctx, "/vacancy/search", filter, &out); err != nil {
		return domain.Page[domain.Vacancy]{}, err
	}
	return out, nil
}

func (a *VacancyAPI) GetVacancy(ctx context.Context, id domain.ID) (domain.Vacancy, error) {
	var out domain.Vacancy
	if err := a.c.getJSON(ctx, "/vacancy/get", idQuery(id), &out); err != nil {
		return domain.Vacancy{}, err
	}
	return out, nil
}

func (a *VacancyAPI) ArchiveVacancy(ctx context.Context, id domain.ID, archived bool) (domain.Vacancy, error) {
	var out domain.Vacancy
	req := struct {
		VacancyID domain.ID `json:"vacancyId"`
		Archived  bool      `json:"archived"`
	}{VacancyID: id, Archived: archived}
	if err := a.c.postJSON(ctx, "/vacancy/archive", req, &out); err != nil {
		return domain.Vacancy{}, err
	}
	return out, nil
}

func (a *VacancyAPI) ListTags(ctx context.Context) ([]domain.Tag, error) {
	var out []domain.Tag
	if err := a.c.getJSON(ctx, "/tag/list", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

var _ domain.VacancySource = (*VacancyAPI)(nil)
