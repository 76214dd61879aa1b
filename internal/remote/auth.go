package remote

import (
	"context"

	"hrtrack/internal/domain"
)

// AuthAPI is the HTTP implementation of domain.AuthSource.
type AuthAPI struct{ c *Client }

// NewAuthAPI returns an AuthAPI on top of c.
func NewAuthAPI(c *Client) *AuthAPI { return &AuthAPI{c: c} }

// Login exchanges credentials for a bearer token.
func (a *AuthAPI) Login(ctx context.Context, creds domain.Credentials) (domain.LoginResult, error) {
	var out domain.LoginResult
	if err := a.c.postJSON(ctx, "/auth/login", creds, &out); err != nil {
		return domain.LoginResult{}, err
	}
	return out, nil
}

// Me returns the staff member the current token belongs to.
func (a *AuthAPI) Me(ctx context.Context) (domain.Staff, error) {
	var out domain.Staff
	if err := a.c.getJSON(ctx, "/auth/me", nil, &out); err != nil {
		return domain.Staff{}, err
	}
	return out, nil
}

var _ domain.AuthSource = (*AuthAPI)(nil)
