package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"hrtrack/internal/domain"
)

// Service exchanges credentials for a session and restores it on later runs.
//
// This service handles:
//   - Logging in against the backend and sealing the session with a passphrase.
//   - Restoring the session and installing its token on the transport.
//   - Remembering the last email used (non-secret, plain profile).
type Service struct {
	source   domain.AuthSource
	sessions domain.SessionStore
	profiles domain.ProfileStore
	tokens   domain.TokenHolder
	baseURL  string
	now      func() time.Time
}

// New constructs an auth Service.
func New(
	source domain.AuthSource,
	sessions domain.SessionStore,
	profiles domain.ProfileStore,
	tokens domain.TokenHolder,
	baseURL string,
) *Service {
	return &Service{
		source:   source,
		sessions: sessions,
		profiles: profiles,
		tokens:   tokens,
		baseURL:  baseURL,
		now:      time.Now,
	}
}

// Login authenticates creds and persists the resulting session sealed with
// passphrase.
func (s *Service) Login(ctx context.Context, passphrase string, creds domain.Credentials) (domain.Session, error) {
	creds.Email = strings.TrimSpace(creds.Email)
	if creds.Email == "" || creds.Password == "" {
		return domain.Session{}, fmt.Errorf("%w: email and password required", domain.ErrInvalidArgument)
	}
	if passphrase == "" {
		return domain.Session{}, fmt.Errorf("%w: passphrase required", domain.ErrInvalidArgument)
	}

	res, err := s.source.Login(ctx, creds)
	if err != nil {
		return domain.Session{}, err
	}
	session := domain.Session{
		Token:     res.Token,
		Staff:     res.Staff,
		BaseURL:   s.baseURL,
		CreatedAt: s.now().UTC(),
	}
	if err := s.sessions.SaveSession(passphrase, session); err != nil {
		return domain.Session{}, fmt.Errorf("save session: %w", err)
	}
	s.tokens.SetToken(session.Token)

	profile, err := s.profiles.LoadProfile()
	if err != nil {
		return session, fmt.Errorf("load profile: %w", err)
	}
	profile.LastEmail = creds.Email
	if s.baseURL != "" {
		profile.APIURL = s.baseURL
	}
	if err := s.profiles.SaveProfile(profile); err != nil {
		return session, fmt.Errorf("save profile: %w", err)
	}
	return session, nil
}

// Logout forgets the stored session and the in-memory token.
func (s *Service) Logout() error {
	s.tokens.SetToken("")
	return s.sessions.ClearSession()
}

// Current opens the stored session and installs its token. A session that
// was created against a different backend is treated as absent.
func (s *Service) Current(passphrase string) (domain.Session, error) {
	session, err := s.sessions.LoadSession(passphrase)
	if err != nil {
		return domain.Session{}, err
	}
	if s.baseURL != "" && session.BaseURL != "" && !sameBase(session.BaseURL, s.baseURL) {
		return domain.Session{}, fmt.Errorf("%w: session belongs to %s", domain.ErrNoSession, session.BaseURL)
	}
	s.tokens.SetToken(session.Token)
	return session, nil
}

// IsLoggedOut reports whether err means there is no usable session.
func IsLoggedOut(err error) bool { return errors.Is(err, domain.ErrNoSession) }

func sameBase(a, b string) bool {
	return strings.TrimRight(a, "/") == strings.TrimRight(b, "/")
}

// Compile-time assertion that Service implements domain.AuthService.
var _ domain.AuthService = (*Service)(nil)
