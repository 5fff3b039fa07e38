package service

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/campushire/recruitment-system/internal/core/domain"
	"github.com/campushire/recruitment-system/internal/core/ports"
)

// ---------------------------------------------------------------------------
// In-memory stubs shared by the service tests
// ---------------------------------------------------------------------------

type stubAccountRepo struct {
	byID      map[string]*domain.Account
	seq       int
	createErr error
}

func newStubAccountRepo() *stubAccountRepo {
	return &stubAccountRepo{byID: make(map[string]*domain.Account)}
}

func (r *stubAccountRepo) nextID() string {
	r.seq++
	// store-shaped ids: 24 hex characters
	return fmt.Sprintf("%024x", r.seq)
}

func cloneAccount(a *domain.Account) *domain.Account {
	if a == nil {
		return nil
	}
	clone := *a
	return &clone
}

func (r *stubAccountRepo) Create(_ context.Context, a *domain.Account) (*domain.Account, error) {
	if r.createErr != nil {
		return nil, r.createErr
	}
	for _, existing := range r.byID {
		if existing.Email == a.Email {
			return nil, domain.ErrEmailExists
		}
	}
	clone := cloneAccount(a)
	if clone.ID == "" {
		clone.ID = r.nextID()
	}
	r.byID[clone.ID] = clone
	return cloneAccount(clone), nil
}

func (r *stubAccountRepo) FindByID(_ context.Context, id string) (*domain.Account, error) {
	a, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrAccountNotFound
	}
	return cloneAccount(a), nil
}

func (r *stubAccountRepo) FindByEmail(_ context.Context, email string) (*domain.Account, error) {
	for _, a := range r.byID {
		if a.Email == email {
			return cloneAccount(a), nil
		}
	}
	return nil, domain.ErrAccountNotFound
}

func (r *stubAccountRepo) FindByRole(_ context.Context, role string) ([]*domain.Account, error) {
	var out []*domain.Account
	for _, a := range r.byID {
		if a.Role == role {
			out = append(out, cloneAccount(a))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *stubAccountRepo) FindByCollege(_ context.Context, collegeID, role string) ([]*domain.Account, error) {
	var out []*domain.Account
	for _, a := range r.byID {
		if a.CollegeID == collegeID && a.Role == role {
			clone := cloneAccount(a)
			clone.PasswordHash = "" // projection drops the hash
			out = append(out, clone)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *stubAccountRepo) SearchColleges(_ context.Context, query string) ([]*domain.Account, error) {
	var out []*domain.Account
	for _, a := range r.byID {
		if a.Role != domain.RoleCollege {
			continue
		}
		if query != "" && !strings.Contains(strings.ToLower(a.Name), strings.ToLower(query)) {
			continue
		}
		out = append(out, cloneAccount(a))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *stubAccountRepo) UpdateProfile(_ context.Context, id string, patch ports.ProfilePatch) (*domain.Account, error) {
	a, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrAccountNotFound
	}
	if patch.Name != "" {
		a.Name = patch.Name
	}
	if patch.Phone != "" {
		a.Phone = patch.Phone
	}
	if patch.Branch != "" {
		a.Branch = patch.Branch
	}
	if patch.CGPA != "" {
		a.CGPA = patch.CGPA
	}
	if patch.Skills != "" {
		a.Skills = patch.Skills
	}
	return cloneAccount(a), nil
}

func (r *stubAccountRepo) UpdatePassword(_ context.Context, email, hash string) error {
	for _, a := range r.byID {
		if a.Email == email {
			a.PasswordHash = hash
			a.FirstLogin = false
			return nil
		}
	}
	return domain.ErrAccountNotFound
}

func (r *stubAccountRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.byID[id]; !ok {
		return domain.ErrAccountNotFound
	}
	delete(r.byID, id)
	return nil
}

type stubPartnershipRepo struct {
	byID map[string]*domain.Partnership
	seq  int
}

func newStubPartnershipRepo() *stubPartnershipRepo {
	return &stubPartnershipRepo{byID: make(map[string]*domain.Partnership)}
}

func (r *stubPartnershipRepo) Create(_ context.Context, p *domain.Partnership) (*domain.Partnership, error) {
	clone := *p
	r.seq++
	clone.ID = fmt.Sprintf("%024x", 0x900000+r.seq)
	r.byID[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubPartnershipRepo) FindByID(_ context.Context, id string) (*domain.Partnership, error) {
	p, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrPartnershipNotFound
	}
	clone := *p
	return &clone, nil
}

func (r *stubPartnershipRepo) FindByParty(_ context.Context, accountID string) ([]*domain.Partnership, error) {
	var out []*domain.Partnership
	for _, p := range r.byID {
		if p.RequesterID == accountID || p.RecipientID == accountID {
			clone := *p
			out = append(out, &clone)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *stubPartnershipRepo) FindBetween(_ context.Context, idA, idB string, statuses ...domain.PartnershipStatus) ([]*domain.Partnership, error) {
	var out []*domain.Partnership
	for _, p := range r.byID {
		if !p.Connects(idA, idB) {
			continue
		}
		if len(statuses) > 0 {
			matched := false
			for _, s := range statuses {
				if p.Status == s {
					matched = true
					break
				}
			}
			if !matched {
				continue
			}
		}
		clone := *p
		out = append(out, &clone)
	}
	return out, nil
}

func (r *stubPartnershipRepo) UpdateStatus(_ context.Context, id string, status domain.PartnershipStatus) (*domain.Partnership, error) {
	p, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrPartnershipNotFound
	}
	p.Status = status
	clone := *p
	return &clone, nil
}

type stubJobRepo struct {
	jobs []*domain.Job
	seq  int
}

func newStubJobRepo() *stubJobRepo {
	return &stubJobRepo{}
}

func (r *stubJobRepo) Create(_ context.Context, j *domain.Job) (*domain.Job, error) {
	clone := *j
	r.seq++
	clone.ID = fmt.Sprintf("%024x", 0xa0000+r.seq)
	r.jobs = append(r.jobs, &clone)
	out := clone
	return &out, nil
}

func (r *stubJobRepo) FindByCompany(_ context.Context, companyID string) ([]*domain.Job, error) {
	var out []*domain.Job
	for _, j := range r.jobs {
		if j.CompanyID == companyID {
			clone := *j
			out = append(out, &clone)
		}
	}
	sort.Slice(out, func(i, k int) bool { return out[i].CreatedAt.After(out[k].CreatedAt) })
	return out, nil
}

func (r *stubJobRepo) FindOpenByCollege(_ context.Context, collegeID string) ([]*domain.Job, error) {
	var out []*domain.Job
	for _, j := range r.jobs {
		if j.CollegeID == collegeID && j.Status == domain.JobOpen {
			clone := *j
			out = append(out, &clone)
		}
	}
	sort.Slice(out, func(i, k int) bool { return out[i].CreatedAt.After(out[k].CreatedAt) })
	return out, nil
}

// recorderStub collects enqueued activity entries.
type recorderStub struct {
	entries []ports.ActivityInput
}

func (r *recorderStub) Enqueue(in ports.ActivityInput) {
	r.entries = append(r.entries, in)
}
