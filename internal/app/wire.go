package app

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"hrtrack/internal/domain"
	"hrtrack/internal/remote"
	authsvc "hrtrack/internal/services/auth"
	candidatesvc "hrtrack/internal/services/candidate"
	interviewsvc "hrtrack/internal/services/interview"
	staffsvc "hrtrack/internal/services/staff"
	tracksvc "hrtrack/internal/services/track"
	vacancysvc "hrtrack/internal/services/vacancy"
	"hrtrack/internal/store"
)

// Wire bundles all stores, services, and clients for the CLI.
type Wire struct {
	Config   Config
	Logger   *slog.Logger
	Client   *remote.Client
	Sessions domain.SessionStore
	Profiles domain.ProfileStore

	Auth       domain.AuthService
	Candidates domain.CandidateService
	Vacancies  domain.VacancyService
	Interviews domain.InterviewService
	Tracks     domain.TrackService
	Staff      domain.StaffService
}

// NewWire constructs the dependency graph from cfg. The backend URL and page
// size fall back to the stored profile when cfg leaves them unset.
func NewWire(cfg Config, logger *slog.Logger) (*Wire, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	if err := os.MkdirAll(cfg.Home, 0o700); err != nil {
		return nil, fmt.Errorf("create home %s: %w", cfg.Home, err)
	}

	// File-based stores
	sessions := store.NewSessionFileStore(cfg.Home)
	profiles := store.NewProfileFileStore(cfg.Home)

	profile, err := profiles.LoadProfile()
	if err != nil {
		return nil, fmt.Errorf("load profile: %w", err)
	}
	if cfg.APIURL == "" {
		cfg.APIURL = profile.APIURL
	}
	if cfg.APIURL == "" {
		cfg.APIURL = DefaultAPIURL
	}
	if cfg.PageSize <= 0 {
		cfg.PageSize = profile.PageSize
	}
	cfg.PageSize = domain.ClampPageSize(cfg.PageSize)

	// Shared transport
	client := remote.New(cfg.APIURL, remote.Options{
		HTTP:      &http.Client{Timeout: cfg.Timeout},
		RateLimit: cfg.RateLimit,
		Burst:     cfg.RateBurst,
		Retries:   cfg.Retries,
		Logger:    logger.With("component", "remote"),
	})
	authAPI := remote.NewAuthAPI(client)

	// High-level services
	return &Wire{
		Config:     cfg,
		Logger:     logger,
		Client:     client,
		Sessions:   sessions,
		Profiles:   profiles,
		Auth:       authsvc.New(authAPI, sessions, profiles, client, client.BaseURL()),
		Candidates: candidatesvc.New(remote.NewCandidateAPI(client), cfg.PageSize),
		Vacancies:  vacancysvc.New(remote.NewVacancyAPI(client), cfg.PageSize),
		Interviews: interviewsvc.New(remote.NewInterviewAPI(client)),
		Tracks:     tracksvc.New(remote.NewTrackAPI(client)),
		Staff:      staffsvc.New(remote.NewStaffAPI(client), authAPI, cfg.PageSize),
	}, nil
}

// Restore installs the stored session's token on the client.
func (w *Wire) Restore() (domain.Session, error) {
	return w.Auth.Current(w.Config.Passphrase)
}

// RememberPageSize stores size in the profile. Later runs page by it when
// neither a flag nor the environment sets a page size.
func (w *Wire) RememberPageSize(size int) error {
	if size <= 0 {
		return fmt.Errorf("%w: page size must be positive", domain.ErrInvalidArgument)
	}
	profile, err := w.Profiles.LoadProfile()
	if err != nil {
		return fmt.Errorf("load profile: %w", err)
	}
	profile.PageSize = domain.ClampPageSize(size)
	if err := w.Profiles.SaveProfile(profile); err != nil {
		return fmt.Errorf("save profile: %w", err)
	}
	return nil
}
