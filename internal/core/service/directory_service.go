package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/campushire/recruitment-system/internal/core/domain"
	"github.com/campushire/recruitment-system/internal/core/ports"
)

// DirectoryCache abstracts the college-directory cache (Redis). Both calls
// are best-effort: any cache failure falls back to the store.
type DirectoryCache interface {
	Get(ctx context.Context) ([]ports.CollegeSummary, bool)
	Set(ctx context.Context, colleges []ports.CollegeSummary)
}

// DirectoryService serves the public college directory backing the
// registration dropdown. Reads go cache-first.
type DirectoryService struct {
	repo  ports.AccountRepository
	cache DirectoryCache
	log   zerolog.Logger
}

func NewDirectoryService(repo ports.AccountRepository, cache DirectoryCache, log zerolog.Logger) *DirectoryService {
	return &DirectoryService{repo: repo, cache: cache, log: log}
}

func (s *DirectoryService) ListColleges(ctx context.Context) ([]ports.CollegeSummary, error) {
	if s.cache != nil {
		if colleges, ok := s.cache.Get(ctx); ok {
			return colleges, nil
		}
	}

	accounts, err := s.repo.FindByRole(ctx, domain.RoleCollege)
	if err != nil {
		return nil, err
	}

	colleges := make([]ports.CollegeSummary, len(accounts))
	for i, a := range accounts {
		colleges[i] = ports.CollegeSummary{ID: a.ID, Name: a.Name}
	}

	if s.cache != nil {
		s.cache.Set(ctx, colleges)
	}
	return colleges, nil
}
