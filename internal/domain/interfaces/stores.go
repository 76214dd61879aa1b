package interfaces

import domaintypes "hrtrack/internal/domain/types"

// SessionStore persists the login session, encrypted with a passphrase.
type SessionStore interface {
	SaveSession(passphrase string, session domaintypes.Session) error
	LoadSession(passphrase string) (domaintypes.Session, error)
	ClearSession() error
}

// ProfileStore persists non-secret preferences.
type ProfileStore interface {
	SaveProfile(profile domaintypes.Profile) error
	LoadProfile() (domaintypes.Profile, error)
}

// TokenHolder supplies the bearer token attached to outbound requests.
type TokenHolder interface {
	SetToken(token string)
	Token() string
}
