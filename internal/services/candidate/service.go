package candidate

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/ledongthuc/pdf"
	"golang.org/x/sync/errgroup"

	"hrtrack/internal/domain"
)

// resumeFetchLimit bounds concurrent resume metadata requests.
const resumeFetchLimit = 4

// Service wraps a CandidateSource.
type Service struct {
	source   domain.CandidateSource
	pageSize int
}

// New constructs a candidate Service. pageSize is used when a filter leaves
// it unset.
func New(source domain.CandidateSource, pageSize int) *Service {
	return &Service{source: source, pageSize: pageSize}
}

// Search runs a paged candidate search.
func (s *Service) Search(ctx context.Context, filter domain.CandidateFilter) (domain.Page[domain.Candidate], error) {
	filter.Query = strings.TrimSpace(filter.Query)
	filter.Page = domain.ClampPage(filter.Page)
	if filter.PageSize <= 0 {
		filter.PageSize = s.pageSize
	}
	filter.PageSize = domain.ClampPageSize(filter.PageSize)
	return s.source.SearchCandidates(ctx, filter)
}

// Get loads one candidate.
func (s *Service) Get(ctx context.Context, id domain.ID) (domain.Candidate, error) {
	if id <= 0 {
		return domain.Candidate{}, fmt.Errorf("%w: candidate id %d", domain.ErrInvalidArgument, id)
	}
	return s.source.GetCandidate(ctx, id)
}

// Create registers a new candidate. A first or last name is required; an
// email alone is not enough.
func (s *Service) Create(ctx context.Context, c domain.Candidate) (domain.Candidate, error) {
	c.FirstName = strings.TrimSpace(c.FirstName)
	c.LastName = strings.TrimSpace(c.LastName)
	c.Email = strings.TrimSpace(c.Email)
	if c.FirstName == "" && c.LastName == "" {
		return domain.Candidate{}, fmt.Errorf("%w: candidate name required", domain.ErrInvalidArgument)
	}
	c.ID = 0
	return s.source.CreateCandidate(ctx, c)
}

// Update saves changes to an existing candidate.
func (s *Service) Update(ctx context.Context, c domain.Candidate) (domain.Candidate, error) {
	if c.ID <= 0 {
		return domain.Candidate{}, fmt.Errorf("%w: candidate id %d", domain.ErrInvalidArgument, c.ID)
	}
	return s.source.UpdateCandidate(ctx, c)
}

// Resumes loads the metadata of every resume attached to c, in c's order.
func (s *Service) Resumes(ctx context.Context, c domain.Candidate) ([]domain.Resume, error) {
	out := make([]domain.Resume, len(c.ResumeIDs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(resumeFetchLimit)
	for i, id := range c.ResumeIDs {
		g.Go(func() error {
			r, err := s.source.GetResume(gctx, id)
			if err != nil {
				return err
			}
			out[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// ResumeText downloads a PDF resume and returns its plain text.
func (s *Service) ResumeText(ctx context.Context, resumeID domain.ID) (string, error) {
	if resumeID <= 0 {
		return "", fmt.Errorf("%w: resume id %d", domain.ErrInvalidArgument, resumeID)
	}
	meta, err := s.source.GetResume(ctx, resumeID)
	if err != nil {
		return "", err
	}
	if !isPDF(meta) {
		return "", fmt.Errorf("%w: resume %q is not a PDF", domain.ErrInvalidArgument, meta.FileName)
	}
	data, err := s.source.DownloadResume(ctx, resumeID)
	if err != nil {
		return "", err
	}
	return extractText(data)
}

func isPDF(r domain.Resume) bool {
	return r.ContentType == "application/pdf" || strings.EqualFold(path.Ext(r.FileName), ".pdf")
}

func extractText(data []byte) (string, error) {
	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("read pdf: %w", err)
	}
	b, err := r.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("extract pdf text: %w", err)
	}
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, b); err != nil {
		return "", err
	}
	return strings.TrimSpace(buf.String()), nil
}

// Compile-time assertion that Service implements domain.CandidateService.
var _ domain.CandidateService = (*Service)(nil)
