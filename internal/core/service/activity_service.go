package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/campushire/recruitment-system/internal/core/domain"
	"github.com/campushire/recruitment-system/internal/core/ports"
)

type activityService struct {
	repo ports.ActivityRepository
	log  zerolog.Logger
}

// NewActivityService returns the audit-trail writer run by the dispatcher
// workers.
func NewActivityService(repo ports.ActivityRepository, log zerolog.Logger) ports.ActivityService {
	return &activityService{repo: repo, log: log}
}

// Process persists one audit entry. Failures surface to the worker, which
// logs them; they never reach the request that emitted the entry.
func (s *activityService) Process(ctx context.Context, in ports.ActivityInput) error {
	entry := &domain.Activity{
		ActorID:   in.ActorID,
		Action:    in.Action,
		SubjectID: in.SubjectID,
		ScopeID:   in.ScopeID,
		Detail:    in.Detail,
		Timestamp: in.Timestamp,
	}
	if err := s.repo.Insert(ctx, entry); err != nil {
		return fmt.Errorf("record activity: %w", err)
	}

	s.log.Debug().
		Str("action", in.Action).
		Str("scope_id", in.ScopeID).
		Msg("activity recorded")
	return nil
}
