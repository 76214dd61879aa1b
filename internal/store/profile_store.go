package store

import (
	"path/filepath"
	"sync"

	"hrtrack/internal/domain"
)

const profileFilename = "profile.json"

// ProfileFileStore persists non-secret preferences as plain JSON.
type ProfileFileStore struct {
	dir string
	mu  sync.Mutex
}

// NewProfileFileStore returns a ProfileFileStore rooted at dir.
func NewProfileFileStore(dir string) *ProfileFileStore {
	return &ProfileFileStore{dir: dir}
}

// SaveProfile writes profile.
func (s *ProfileFileStore) SaveProfile(profile domain.Profile) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return saveJSON(filepath.Join(s.dir, profileFilename), profile)
}

// LoadProfile returns the stored profile, or the zero profile if none exists.
func (s *ProfileFileStore) LoadProfile() (domain.Profile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var p domain.Profile
	if err := loadJSON(filepath.Join(s.dir, profileFilename), &p); err != nil {
		return domain.Profile{}, err
	}
	return p, nil
}

// Compile-time assertion that ProfileFileStore implements domain.ProfileStore.
var _ domain.ProfileStore = (*ProfileFileStore)(nil)
