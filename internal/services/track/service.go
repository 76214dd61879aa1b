package track

import (
	"context"
	"fmt"

	"hrtrack/internal/domain"
)

// Service wraps a TrackSource.
type Service struct {
	source domain.TrackSource
}

// New constructs a track Service.
func New(source domain.TrackSource) *Service {
	return &Service{source: source}
}

// Search lists tracks matching filter.
func (s *Service) Search(ctx context.Context, filter domain.TrackFilter) ([]domain.Track, error) {
	return s.source.SearchTracks(ctx, filter)
}

// Get loads one track.
func (s *Service) Get(ctx context.Context, id domain.ID) (domain.Track, error) {
	if err := checkID("track", id); err != nil {
		return domain.Track{}, err
	}
	return s.source.GetTrack(ctx, id)
}

// Apply opens a track for candidateID on vacancyID.
func (s *Service) Apply(ctx context.Context, candidateID, vacancyID domain.ID) (domain.Track, error) {
	if err := checkID("candidate", candidateID); err != nil {
		return domain.Track{}, err
	}
	if err := checkID("vacancy", vacancyID); err != nil {
		return domain.Track{}, err
	}
	return s.source.Apply(ctx, candidateID, vacancyID)
}

// ApproveApplication lets an application into the interview stages.
func (s *Service) ApproveApplication(ctx context.Context, id domain.ID) (domain.Track, error) {
	if err := checkID("track", id); err != nil {
		return domain.Track{}, err
	}
	return s.source.ApproveApplication(ctx, id)
}

// Reject closes the track without a hire.
func (s *Service) Reject(ctx context.Context, id domain.ID) (domain.Track, error) {
	if err := checkID("track", id); err != nil {
		return domain.Track{}, err
	}
	return s.source.RejectTrack(ctx, id)
}

// Hire closes the track with a hire.
func (s *Service) Hire(ctx context.Context, id domain.ID) (domain.Track, error) {
	if err := checkID("track", id); err != nil {
		return domain.Track{}, err
	}
	return s.source.HireTrack(ctx, id)
}

func checkID(kind string, id domain.ID) error {
	if id <= 0 {
		return fmt.Errorf("%w: %s id %d", domain.ErrInvalidArgument, kind, id)
	}
	return nil
}

// Compile-time assertion that Service implements domain.TrackService.
var _ domain.TrackService = (*Service)(nil)
