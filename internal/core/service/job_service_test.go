package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/campushire/recruitment-system/internal/core/domain"
	"github.com/campushire/recruitment-system/internal/core/ports"
)

type jobFixture struct {
	jobs      *JobService
	network   *NetworkService
	accounts  *stubAccountRepo
	jobRepo   *stubJobRepo
	companyID string
	collegeID string
}

func newJobFixture(t *testing.T) *jobFixture {
	t.Helper()
	accounts := newStubAccountRepo()
	company, _ := accounts.Create(context.Background(), &domain.Account{
		Name: "Acme", Email: "hr@acme.com", Role: domain.RoleCompany,
	})
	college, _ := accounts.Create(context.Background(), &domain.Account{
		Name: "NIT Trichy", Email: "tpo@nitt.edu", Role: domain.RoleCollege,
	})

	network := NewNetworkService(newStubPartnershipRepo(), accounts, &recorderStub{}, discardLogger)
	jobRepo := newStubJobRepo()
	jobs := NewJobService(jobRepo, accounts, network, &recorderStub{}, discardLogger)

	return &jobFixture{
		jobs: jobs, network: network, accounts: accounts, jobRepo: jobRepo,
		companyID: company.ID, collegeID: college.ID,
	}
}

func (f *jobFixture) partnerUp(t *testing.T) {
	t.Helper()
	p, err := f.network.Request(context.Background(), f.companyID, f.collegeID)
	if err != nil {
		t.Fatalf("partner request: %v", err)
	}
	if _, err := f.network.Respond(context.Background(), f.collegeID, p.ID, ports.DecisionAccept); err != nil {
		t.Fatalf("partner accept: %v", err)
	}
}

func jobInput(companyID, collegeID string) ports.CreateJobInput {
	return ports.CreateJobInput{
		CompanyID:   companyID,
		CollegeID:   collegeID,
		Title:       "SDE I",
		Description: "Backend services",
		Location:    "Bangalore",
		CTC:         1200000,
		Deadline:    time.Now().UTC().AddDate(0, 1, 0),
		MinCGPA:     7.5,
		Branches:    []string{"CSE", "ECE"},
		Rounds:      []string{"Online Assessment", "Technical", "HR"},
	}
}

func TestJobService_Create_RequiresActivePartnership(t *testing.T) {
	f := newJobFixture(t)

	_, err := f.jobs.Create(context.Background(), jobInput(f.companyID, f.collegeID))
	if !errors.Is(err, domain.ErrNotPartnered) {
		t.Fatalf("expected ErrNotPartnered without a partnership, got %v", err)
	}

	f.partnerUp(t)

	job, err := f.jobs.Create(context.Background(), jobInput(f.companyID, f.collegeID))
	if err != nil {
		t.Fatalf("create failed with active partnership: %v", err)
	}
	if job.Status != domain.JobOpen {
		t.Fatalf("new job must be Open, got %s", job.Status)
	}
	if len(job.Rounds) != 3 || job.Rounds[0] != "Online Assessment" {
		t.Fatalf("round order lost: %+v", job.Rounds)
	}
}

func TestJobService_Create_ReversedRequesterStillCounts(t *testing.T) {
	f := newJobFixture(t)

	// College initiates; once Active the direction is irrelevant.
	p, _ := f.network.Request(context.Background(), f.collegeID, f.companyID)
	_, _ = f.network.Respond(context.Background(), f.companyID, p.ID, ports.DecisionAccept)

	if _, err := f.jobs.Create(context.Background(), jobInput(f.companyID, f.collegeID)); err != nil {
		t.Fatalf("create must succeed regardless of request direction: %v", err)
	}
}

func TestJobService_Create_RejectedPartnershipForbidden(t *testing.T) {
	f := newJobFixture(t)

	p, _ := f.network.Request(context.Background(), f.companyID, f.collegeID)
	_, _ = f.network.Respond(context.Background(), f.collegeID, p.ID, ports.DecisionReject)

	_, err := f.jobs.Create(context.Background(), jobInput(f.companyID, f.collegeID))
	if !errors.Is(err, domain.ErrNotPartnered) {
		t.Fatalf("rejected partnership must not authorize job creation, got %v", err)
	}
	if len(f.jobRepo.jobs) != 0 {
		t.Fatal("no job must be stored")
	}
}

func TestJobService_ListForCompany_ResolvesCollegeName(t *testing.T) {
	f := newJobFixture(t)
	f.partnerUp(t)

	if _, err := f.jobs.Create(context.Background(), jobInput(f.companyID, f.collegeID)); err != nil {
		t.Fatal(err)
	}

	views, err := f.jobs.ListForCompany(context.Background(), f.companyID)
	if err != nil {
		t.Fatal(err)
	}
	if len(views) != 1 {
		t.Fatalf("expected 1 job, got %d", len(views))
	}
	if views[0].CollegeName != "NIT Trichy" {
		t.Fatalf("college name not resolved: %+v", views[0])
	}
}

func TestJobService_Feed_OpenOnlyNewestFirst(t *testing.T) {
	f := newJobFixture(t)

	older := &domain.Job{
		CompanyID: f.companyID, CollegeID: f.collegeID, Title: "Old",
		Status: domain.JobOpen, CreatedAt: time.Now().UTC().Add(-2 * time.Hour),
	}
	newer := &domain.Job{
		CompanyID: f.companyID, CollegeID: f.collegeID, Title: "New",
		Status: domain.JobOpen, CreatedAt: time.Now().UTC(),
	}
	closed := &domain.Job{
		CompanyID: f.companyID, CollegeID: f.collegeID, Title: "Closed",
		Status: domain.JobClosed, CreatedAt: time.Now().UTC().Add(-time.Hour),
	}
	for _, j := range []*domain.Job{older, newer, closed} {
		if _, err := f.jobRepo.Create(context.Background(), j); err != nil {
			t.Fatal(err)
		}
	}

	views, err := f.jobs.ListForCollegeFeed(context.Background(), f.collegeID)
	if err != nil {
		t.Fatal(err)
	}
	if len(views) != 2 {
		t.Fatalf("closed jobs must not appear in the feed: got %d items", len(views))
	}
	if views[0].Job.Title != "New" || views[1].Job.Title != "Old" {
		t.Fatalf("feed must be newest first: %q then %q", views[0].Job.Title, views[1].Job.Title)
	}
	if views[0].CompanyName != "Acme" || views[0].CompanyEmail != "hr@acme.com" {
		t.Fatalf("company display fields not resolved: %+v", views[0])
	}
}

func TestJobService_Feed_RejectsMalformedCollegeID(t *testing.T) {
	f := newJobFixture(t)

	for _, bad := range []string{"", "not-an-id", "ABCDEF0123456789ABCDEF01", "00000000000000000000aaa"} {
		if _, err := f.jobs.ListForCollegeFeed(context.Background(), bad); !errors.Is(err, domain.ErrInvalidInput) {
			t.Fatalf("collegeID %q: expected ErrInvalidInput, got %v", bad, err)
		}
	}
}
