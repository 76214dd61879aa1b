package store

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"sync"

	"hrtrack/internal/domain"
)

const sessionFilename = "session.json.enc"

// SessionFileStore persists the login session, sealed with a passphrase.
type SessionFileStore struct {
	dir    string
	params kdf
	mu     sync.Mutex
}

// NewSessionFileStore returns a SessionFileStore rooted at dir.
func NewSessionFileStore(dir string) *SessionFileStore {
	return &SessionFileStore{dir: dir, params: defaultKDF}
}

// SaveSession seals and writes session.
func (s *SessionFileStore) SaveSession(passphrase string, session domain.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := json.Marshal(session)
	if err != nil {
		return err
	}
	defer wipe(raw)
	sealed, err := sealSession(passphrase, raw, s.params)
	if err != nil {
		return fmt.Errorf("seal session: %w", err)
	}
	return replaceFile(s.path(), sealed)
}

// LoadSession reads and opens the stored session. It returns
// domain.ErrNoSession when nothing was saved.
func (s *SessionFileStore) LoadSession(passphrase string) (domain.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, ok, err := readIfExists(s.path())
	if err != nil {
		return domain.Session{}, err
	}
	if !ok {
		return domain.Session{}, domain.ErrNoSession
	}
	raw, err := openSession(passphrase, b)
	if err != nil {
		return domain.Session{}, err
	}
	defer wipe(raw)
	var session domain.Session
	if err := json.Unmarshal(raw, &session); err != nil {
		return domain.Session{}, fmt.Errorf("%w: %v", ErrCorruptSession, err)
	}
	if session.Token == "" {
		return domain.Session{}, fmt.Errorf("%w: no token", ErrCorruptSession)
	}
	return session, nil
}

// ClearSession removes the stored session.
func (s *SessionFileStore) ClearSession() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return removeIfExists(s.path())
}

func (s *SessionFileStore) path() string { return filepath.Join(s.dir, sessionFilename) }

// Compile-time assertion that SessionFileStore implements domain.SessionStore.
var _ domain.SessionStore = (*SessionFileStore)(nil)
