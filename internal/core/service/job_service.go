package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/campushire/recruitment-system/internal/core/domain"
	"github.com/campushire/recruitment-system/internal/core/ports"
)

// partnerChecker is the slice of NetworkService job creation depends on.
type partnerChecker interface {
	IsActivePartner(ctx context.Context, idA, idB string) (bool, error)
}

// JobService creates job drives behind the partnership gate and serves the
// scoped listings.
type JobService struct {
	jobs     ports.JobRepository
	accounts ports.AccountRepository
	partners partnerChecker
	activity ports.ActivityRecorder
	log      zerolog.Logger
}

func NewJobService(jobs ports.JobRepository, accounts ports.AccountRepository, partners partnerChecker, activity ports.ActivityRecorder, log zerolog.Logger) *JobService {
	return &JobService{jobs: jobs, accounts: accounts, partners: partners, activity: activity, log: log}
}

// Create opens a job drive. The partnership gate is evaluated once, here;
// revoking the partnership later does not close the job.
func (s *JobService) Create(ctx context.Context, input ports.CreateJobInput) (*domain.Job, error) {
	if input.CompanyID == "" || input.CollegeID == "" || input.Title == "" {
		return nil, domain.ErrInvalidInput
	}

	active, err := s.partners.IsActivePartner(ctx, input.CompanyID, input.CollegeID)
	if err != nil {
		return nil, err
	}
	if !active {
		return nil, domain.ErrNotPartnered
	}

	job := &domain.Job{
		CompanyID:   input.CompanyID,
		CollegeID:   input.CollegeID,
		Title:       input.Title,
		Description: input.Description,
		Location:    input.Location,
		CTC:         input.CTC,
		Deadline:    input.Deadline,
		Criteria: domain.Criteria{
			MinCGPA:  input.MinCGPA,
			Branches: input.Branches,
		},
		Rounds:    input.Rounds,
		Status:    domain.JobOpen,
		CreatedAt: time.Now().UTC(),
	}

	created, err := s.jobs.Create(ctx, job)
	if err != nil {
		s.log.Error().Err(err).Str("company_id", input.CompanyID).Msg("failed to create job")
		return nil, err
	}

	if s.activity != nil {
		s.activity.Enqueue(ports.ActivityInput{
			ActorID:   input.CompanyID,
			Action:    domain.ActivityJobCreated,
			SubjectID: created.ID,
			ScopeID:   input.CollegeID,
			Detail:    created.Title,
			Timestamp: time.Now().UTC(),
		})
	}
	s.log.Info().
		Str("job_id", created.ID).
		Str("company_id", input.CompanyID).
		Str("college_id", input.CollegeID).
		Msg("job created")

	return created, nil
}

// ListForCompany returns the company's jobs, newest first, with the target
// college's display name resolved.
func (s *JobService) ListForCompany(ctx context.Context, companyID string) ([]ports.JobView, error) {
	jobs, err := s.jobs.FindByCompany(ctx, companyID)
	if err != nil {
		return nil, err
	}

	names := map[string]string{}
	views := make([]ports.JobView, len(jobs))
	for i, job := range jobs {
		name, ok := names[job.CollegeID]
		if !ok {
			if college, err := s.accounts.FindByID(ctx, job.CollegeID); err == nil {
				name = college.Name
			}
			names[job.CollegeID] = name
		}
		views[i] = ports.JobView{Job: *job, CollegeName: name}
	}
	return views, nil
}

// ListForCollegeFeed returns the college's Open jobs, newest first, with the
// posting company's name and email resolved. A malformed college id is
// rejected before any query runs.
func (s *JobService) ListForCollegeFeed(ctx context.Context, collegeID string) ([]ports.JobView, error) {
	if !domain.ValidID(collegeID) {
		return nil, domain.ErrInvalidInput
	}

	jobs, err := s.jobs.FindOpenByCollege(ctx, collegeID)
	if err != nil {
		return nil, err
	}

	companies := map[string]*domain.Account{}
	views := make([]ports.JobView, len(jobs))
	for i, job := range jobs {
		company, ok := companies[job.CompanyID]
		if !ok {
			company, _ = s.accounts.FindByID(ctx, job.CompanyID)
			companies[job.CompanyID] = company
		}
		view := ports.JobView{Job: *job}
		if company != nil {
			view.CompanyName = company.Name
			view.CompanyEmail = company.Email
		}
		views[i] = view
	}
	return views, nil
}
