package remote

import (
	"context"

	"hrtrack/internal/domain"
)

// CandidateAPI is the HTTP implementation of domain.CandidateSource.
type CandidateAPI struct{ c *Client }

// NewCandidateAPI returns a CandidateAPI on top of c.
func NewCandidateAPI(c *Client) *CandidateAPI { return &CandidateAPI{c: c} }

func (a *CandidateAPI) SearchCandidates(ctx context.Context, filter domain.CandidateFilter) (domain.Page[domain.Candidate], error) {
	var out domain.Page[domain.Candidate]
	if err := a.c.postJSON(ctx, "/candidate/search", filter, &out); err != nil {
		return domain.Page[domain.Candidate]{}, err
	}
	return out, nil
}

func (a *CandidateAPI) GetCandidate(ctx context.Context, id domain.ID) (domain.Candidate, error) {
	var out domain.Candidate
	if err := a.c.getJSON(ctx, "/candidate/get", idQuery(id), &out); err != nil {
		return domain.Candidate{}, err
	}
	return out, nil
}

func (a *CandidateAPI) CreateCandidate(ctx context.Context, c domain.Candidate) (domain.Candidate, error) {
	var out domain.Candidate
	if err := a.c.postJSON(ctx, "/candidate/create", c, &out); err != nil {
		return domain.Candidate{}, err
	}
	return out, nil
}

func (a *CandidateAPI) UpdateCandidate(ctx context.Context, c domain.Candidate) (domain.Candidate, error) {
	var out domain.Candidate
	if err := a.c.postJSON(ctx, "/candidate/update", c, &out); err != nil {
		return domain.Candidate{}, err
	}
	return out, nil
}

func (a *CandidateAPI) GetResume(ctx context.Context, id domain.ID) (domain.Resume, error) {
	var out domain.Resume
	if err := a.c.getJSON(ctx, "/resume/get", idQuery(id), &out); err != nil {
		return domain.Resume{}, err
	}
	return out, nil
}

// DownloadResume returns the raw resume file.
func (a *CandidateAPI) DownloadResume(ctx context.Context, id domain.ID) ([]byte, error) {
	return a.c.getBytes(ctx, "/resume/download", idQuery(id))
}

var _ domain.CandidateSource = (*CandidateAPI)(nil)
