package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/campushire/recruitment-system/internal/core/domain"
	"github.com/campushire/recruitment-system/internal/core/ports"
)

// RosterService manages a college's students and staff, including the bulk
// onboarding reconciler.
type RosterService struct {
	repo     ports.AccountRepository
	activity ports.ActivityRecorder
	log      zerolog.Logger
}

func NewRosterService(repo ports.AccountRepository, activity ports.ActivityRecorder, log zerolog.Logger) *RosterService {
	return &RosterService{repo: repo, activity: activity, log: log}
}

// AddStudent creates a single student account on behalf of a college. Role,
// credential, and first-login flag are never caller-controlled.
func (s *RosterService) AddStudent(ctx context.Context, actor ports.Actor, input ports.AddStudentInput) (*ports.AccountView, error) {
	if !domain.CanManageRoster(actor.Role, actor.ScopeID, input.CollegeID) {
		return nil, domain.ErrForbidden
	}
	if input.Name == "" || input.Email == "" {
		return nil, domain.ErrInvalidInput
	}

	created, err := s.createDefaultAccount(ctx, defaultAccountSpec{
		name:      input.Name,
		email:     input.Email,
		role:      domain.RoleStudent,
		password:  domain.DefaultStudentPassword,
		collegeID: input.CollegeID,
		branch:    input.Branch,
		cgpa:      input.CGPA,
		phone:     input.Phone,
	})
	if err != nil {
		return nil, err
	}

	s.record(actor.ID, domain.ActivityStudentAdded, created.ID, input.CollegeID, created.Email)
	s.log.Info().Str("student_id", created.ID).Str("college_id", input.CollegeID).Msg("student added")

	view := toAccountView(created)
	return &view, nil
}

// AddStaff creates a college_member account with the staff default credential.
func (s *RosterService) AddStaff(ctx context.Context, actor ports.Actor, input ports.AddStaffInput) (*ports.AccountView, error) {
	if !domain.CanManageRoster(actor.Role, actor.ScopeID, input.CollegeID) {
		return nil, domain.ErrForbidden
	}
	if input.Name == "" || input.Email == "" {
		return nil, domain.ErrInvalidInput
	}

	created, err := s.createDefaultAccount(ctx, defaultAccountSpec{
		name:      input.Name,
		email:     input.Email,
		role:      domain.RoleCollegeMember,
		password:  domain.DefaultStaffPassword,
		collegeID: input.CollegeID,
	})
	if err != nil {
		return nil, err
	}

	s.record(actor.ID, domain.ActivityStaffAdded, created.ID, input.CollegeID, created.Email)
	s.log.Info().Str("staff_id", created.ID).Str("college_id", input.CollegeID).Msg("staff member added")

	view := toAccountView(created)
	return &view, nil
}

// ImportStudents reconciles decoded spreadsheet rows in input order. Each
// row is independent: a malformed or duplicate row increments the failed
// count and the batch continues. Rows committed before a crash stay
// committed; the unique email index in the store is the authoritative guard
// against concurrent duplicate imports.
func (s *RosterService) ImportStudents(ctx context.Context, actor ports.Actor, collegeID string, rows []ports.ImportRow) (*ports.ImportSummary, error) {
	if !domain.CanManageRoster(actor.Role, actor.ScopeID, collegeID) {
		return nil, domain.ErrForbidden
	}

	summary := &ports.ImportSummary{}
	for i, row := range rows {
		fields := normalizeRow(row)

		name := fields["name"]
		email := fields["email"]
		if name == "" || email == "" {
			summary.Failed++
			continue
		}

		if _, err := s.repo.FindByEmail(ctx, email); err == nil {
			summary.Failed++
			continue
		} else if !errors.Is(err, domain.ErrAccountNotFound) {
			return nil, err
		}

		_, err := s.createDefaultAccount(ctx, defaultAccountSpec{
			name:      name,
			email:     email,
			role:      domain.RoleStudent,
			password:  domain.DefaultStudentPassword,
			collegeID: collegeID,
			branch:    fields["branch"],
			cgpa:      fields["cgpa"],
			phone:     fields["phone"],
		})
		if err != nil {
			// Lost the race against a concurrent import of the same
			// email: the unique index rejected the insert.
			if errors.Is(err, domain.ErrEmailExists) {
				summary.Failed++
				continue
			}
			return nil, fmt.Errorf("import row %d: %w", i, err)
		}
		summary.Created++
	}

	s.record(actor.ID, domain.ActivityBulkImport, "", collegeID,
		fmt.Sprintf("created=%d failed=%d", summary.Created, summary.Failed))
	s.log.Info().
		Int("created", summary.Created).
		Int("failed", summary.Failed).
		Str("college_id", collegeID).
		Msg("bulk import complete")

	return summary, nil
}

// ListStudents returns the college's student roster, without credential hashes.
func (s *RosterService) ListStudents(ctx context.Context, actor ports.Actor, collegeID string) ([]ports.AccountView, error) {
	if !domain.CanManageRoster(actor.Role, actor.ScopeID, collegeID) {
		return nil, domain.ErrForbidden
	}
	accounts, err := s.repo.FindByCollege(ctx, collegeID, domain.RoleStudent)
	if err != nil {
		return nil, err
	}
	return toAccountViews(accounts), nil
}

// ListTeam returns the college's staff roster.
func (s *RosterService) ListTeam(ctx context.Context, actor ports.Actor, collegeID string) ([]ports.AccountView, error) {
	if !domain.CanManageRoster(actor.Role, actor.ScopeID, collegeID) {
		return nil, domain.ErrForbidden
	}
	accounts, err := s.repo.FindByCollege(ctx, collegeID, domain.RoleCollegeMember)
	if err != nil {
		return nil, err
	}
	return toAccountViews(accounts), nil
}

// RemoveStudent deletes a student owned by the actor's college.
func (s *RosterService) RemoveStudent(ctx context.Context, actor ports.Actor, studentID string) error {
	student, err := s.repo.FindByID(ctx, studentID)
	if err != nil {
		return err
	}
	if student.Role != domain.RoleStudent {
		return domain.ErrForbidden
	}
	if !domain.CanManageRoster(actor.Role, actor.ScopeID, student.CollegeID) {
		return domain.ErrForbidden
	}

	if err := s.repo.Delete(ctx, studentID); err != nil {
		return err
	}

	s.record(actor.ID, domain.ActivityStudentRemoved, studentID, student.CollegeID, student.Email)
	s.log.Info().Str("student_id", studentID).Msg("student removed")
	return nil
}

// UpdateProfile merges non-empty patch fields into the caller's account.
// An empty incoming field never clears stored data.
func (s *RosterService) UpdateProfile(ctx context.Context, actorID string, patch ports.ProfilePatch) (*ports.AccountView, error) {
	updated, err := s.repo.UpdateProfile(ctx, actorID, patch)
	if err != nil {
		return nil, err
	}
	view := toAccountView(updated)
	return &view, nil
}

type defaultAccountSpec struct {
	name      string
	email     string
	role      string
	password  string
	collegeID string
	branch    string
	cgpa      string
	phone     string
}

func (s *RosterService) createDefaultAccount(ctx context.Context, spec defaultAccountSpec) (*domain.Account, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(spec.password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	return s.repo.Create(ctx, &domain.Account{
		Name:         spec.name,
		Email:        spec.email,
		PasswordHash: string(hash),
		Role:         spec.role,
		CollegeID:    spec.collegeID,
		FirstLogin:   true,
		Branch:       spec.branch,
		CGPA:         spec.cgpa,
		Phone:        spec.phone,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
}

func (s *RosterService) record(actorID, action, subjectID, scopeID, detail string) {
	if s.activity == nil {
		return
	}
	s.activity.Enqueue(ports.ActivityInput{
		ActorID:   actorID,
		Action:    action,
		SubjectID: subjectID,
		ScopeID:   scopeID,
		Detail:    detail,
		Timestamp: time.Now().UTC(),
	})
}

// normalizeRow lower-cases and trims every key, then coerces each value to
// its string form. "Branch " and "CGPA" both land on the fields the typed
// extraction expects.
func normalizeRow(row ports.ImportRow) map[string]string {
	fields := make(map[string]string, len(row))
	for k, v := range row {
		key := strings.ToLower(strings.TrimSpace(k))
		if key == "" {
			continue
		}
		fields[key] = stringValue(v)
	}
	return fields
}

// stringValue renders a decoded cell value. Numeric CGPA cells arrive as
// float64 from JSON decoding and are kept in their shortest exact form, so
// 8.5 stores as "8.5".
func stringValue(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(val)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case int:
		return strconv.Itoa(val)
	case bool:
		return strconv.FormatBool(val)
	default:
		return fmt.Sprintf("%v", val)
	}
}

func toAccountViews(accounts []*domain.Account) []ports.AccountView {
	views := make([]ports.AccountView, len(accounts))
	for i, a := range accounts {
		views[i] = toAccountView(a)
	}
	return views
}
