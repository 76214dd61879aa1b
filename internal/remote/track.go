package remote

import (
	"context"

	"hrtrack/internal/domain"
)

// TrackAPI is the HTTP implementation of domain.TrackSource.
type TrackAPI struct{ c *Client }

// NewTrackAPI returns a TrackAPI on top of c.
func NewTrackAPI(c *Client) *TrackAPI { return &TrackAPI{c: c} }

type trackRequest struct {
	TrackID domain.ID `json:"trackId"`
}

func (a *TrackAPI) SearchTracks(ctx context.Context, filter domain.TrackFilter) ([]domain.Track, error) {
	var out []domain.Track
	if err := a.c.postJSON(ctx, "/track/search", filter, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (a *TrackAPI) GetTrack(ctx context.Context, id domain.ID) (domain.Track, error) {
	var out domain.Track
	if err := a.c.getJSON(ctx, "/track/get", idQuery(id), &out); err != nil {
		return domain.Track{}, err
	}
	return out, nil
}

func (a *TrackAPI) Apply(ctx context.Context, candidateID, vacancyID domain.ID) (domain.Track, error) {
	return a.post(ctx, "/track/apply", struct {
		CandidateID domain.ID `json:"candidateId"`
		VacancyID   domain.ID `json:"vacancyId"`
	}{candidateID, vacancyID})
}

func (a *TrackAPI) ApproveApplication(ctx context.Context, id domain.ID) (domain.Track, error) {
	return a.post(ctx, "/track/approve-application", trackRequest{id})
}

func (a *TrackAPI) RejectTrack(ctx context.Context, id domain.ID) (domain.Track, error) {
	return a.post(ctx, "/track/reject", trackRequest{id})
}

func (a *TrackAPI) HireTrack(ctx context.Context, id domain.ID) (domain.Track, error) {
	return a.post(ctx, "/track/hire", trackRequest{id})
}

func (a *TrackAPI) post(ctx context.Context, path string, req any) (domain.Track, error) {
	var out domain.Track
	if err := a.c.postJSON(ctx, path, req, &out); err != nil {
		return domain.Track{}, err
	}
	return out, nil
}

var _ domain.TrackSource = (*TrackAPI)(nil)
