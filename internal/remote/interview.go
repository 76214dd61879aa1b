package remote

import (
	"context"
	"time"

	"hrtrack/internal/domain"
)

// InterviewAPI is the HTTP implementation of domain.InterviewSource.
type InterviewAPI struct{ c *Client }

// NewInterviewAPI returns an InterviewAPI on top of c.
func NewInterviewAPI(c *Client) *InterviewAPI { return &InterviewAPI{c: c} }

func (a *InterviewAPI) SearchInterviews(ctx context.Context, filter domain.InterviewFilter) ([]domain.Interview, error) {
	var out []domain.Interview
	if err := a.c.postJSON(ctx, "/interview/search", filter, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (a *InterviewAPI) GetInterview(ctx context.Context, id domain.ID) (domain.Interview, error) {
	var out domain.Interview
	if err := a.c.getJSON(ctx, "/interview/get", idQuery(id), &out); err != nil {
		return domain.Interview{}, err
	}
	return out, nil
}

func (a *InterviewAPI) SetInterviewDate(ctx context.Context, id domain.ID, date time.Time) (domain.Interview, error) {
	return a.edit(ctx, "/interview/set-date", struct {
		InterviewID domain.ID `json:"interviewId"`
		Date        time.Time `json:"date"`
	}{id, date})
}

func (a *InterviewAPI) SetInterviewStatus(ctx context.Context, id domain.ID, status domain.InterviewStatus) (domain.Interview, error) {
	return a.edit(ctx, "/interview/set-status", struct {
		InterviewID domain.ID              `json:"interviewId"`
		Status      domain.InterviewStatus `json:"status"`
	}{id, status})
}

func (a *InterviewAPI) SetInterviewFeedback(ctx context.Context, id domain.ID, feedback string) (domain.Interview, error) {
	return a.edit(ctx, "/interview/set-feedback", struct {
		InterviewID domain.ID `json:"interviewId"`
		Feedback    string    `json:"feedback"`
	}{id, feedback})
}

func (a *InterviewAPI) SetInterviewers(ctx context.Context, id domain.ID, staffIDs []domain.ID) (domain.Interview, error) {
	return a.edit(ctx, "/interview/set-interviewers", struct {
		InterviewID domain.ID   `json:"interviewId"`
		StaffIDs    []domain.ID `json:"staffIds"`
	}{id, staffIDs})
}

func (a *InterviewAPI) edit(ctx context.Context, path string, req any) (domain.Interview, error) {
	var out domain.Interview
	if err := a.c.postJSON(ctx, path, req, &out); err != nil {
		return domain.Interview{}, err
	}
	return out, nil
}

var _ domain.InterviewSource = (*InterviewAPI)(nil)
