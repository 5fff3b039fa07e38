package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/campushire/recruitment-system/internal/core/domain"
	"github.com/campushire/recruitment-system/internal/core/ports"
)

const testCollegeID = "68f000000000000000000099"

type stubRosterService struct {
	addStudentFn func(ctx context.Context, actor ports.Actor, input ports.AddStudentInput) (*ports.AccountView, error)
	addStaffFn   func(ctx context.Context, actor ports.Actor, input ports.AddStaffInput) (*ports.AccountView, error)
	importFn     func(ctx context.Context, actor ports.Actor, collegeID string, rows []ports.ImportRow) (*ports.ImportSummary, error)
	listFn       func(ctx context.Context, actor ports.Actor, collegeID string) ([]ports.AccountView, error)
	removeFn     func(ctx context.Context, actor ports.Actor, studentID string) error
	updateFn     func(ctx context.Context, actorID string, patch ports.ProfilePatch) (*ports.AccountView, error)
}

func (s *stubRosterService) AddStudent(ctx context.Context, actor ports.Actor, input ports.AddStudentInput) (*ports.AccountView, error) {
	return s.addStudentFn(ctx, actor, input)
}

func (s *stubRosterService) AddStaff(ctx context.Context, actor ports.Actor, input ports.AddStaffInput) (*ports.AccountView, error) {
	return s.addStaffFn(ctx, actor, input)
}

func (s *stubRosterService) ImportStudents(ctx context.Context, actor ports.Actor, collegeID string, rows []ports.ImportRow) (*ports.ImportSummary, error) {
	return s.importFn(ctx, actor, collegeID, rows)
}

func (s *stubRosterService) ListStudents(ctx context.Context, actor ports.Actor, collegeID string) ([]ports.AccountView, error) {
	return s.listFn(ctx, actor, collegeID)
}

func (s *stubRosterService) ListTeam(ctx context.Context, actor ports.Actor, collegeID string) ([]ports.AccountView, error) {
	return s.listFn(ctx, actor, collegeID)
}

func (s *stubRosterService) RemoveStudent(ctx context.Context, actor ports.Actor, studentID string) error {
	return s.removeFn(ctx, actor, studentID)
}

func (s *stubRosterService) UpdateProfile(ctx context.Context, actorID string, patch ports.ProfilePatch) (*ports.AccountView, error) {
	return s.updateFn(ctx, actorID, patch)
}

func asCollegeActor(c echo.Context) {
	c.Set("account_id", testCollegeID)
	c.Set("role", domain.RoleCollege)
	c.Set("college_id", testCollegeID)
}

func TestRosterHandler_AddStudent_DefaultsToActorScope(t *testing.T) {
	stub := &stubRosterService{
		addStudentFn: func(ctx context.Context, actor ports.Actor, input ports.AddStudentInput) (*ports.AccountView, error) {
			if input.CollegeID != testCollegeID {
				t.Fatalf("expected college id from actor scope, got %q", input.CollegeID)
			}
			return &ports.AccountView{ID: "abc", Name: input.Name, Role: domain.RoleStudent, CollegeID: input.CollegeID}, nil
		},
	}
	h := NewRosterHandler(stub)

	c, rec := newTestContext(t, http.MethodPost, "/api/auth/add-student",
		`{"name":"Alice","email":"alice@uni.edu","branch":"CS","cgpa":"8.5"}`)
	asCollegeActor(c)

	if err := h.AddStudent(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
}

func TestRosterHandler_AddStudent_NoClaims(t *testing.T) {
	h := NewRosterHandler(&stubRosterService{})

	c, _ := newTestContext(t, http.MethodPost, "/api/auth/add-student",
		`{"name":"Alice","email":"alice@uni.edu"}`)

	err := h.AddStudent(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}

func TestRosterHandler_ImportStudents(t *testing.T) {
	stub := &stubRosterService{
		importFn: func(ctx context.Context, actor ports.Actor, collegeID string, rows []ports.ImportRow) (*ports.ImportSummary, error) {
			if len(rows) != 2 {
				t.Fatalf("expected 2 rows, got %d", len(rows))
			}
			return &ports.ImportSummary{Created: 1, Failed: 1}, nil
		},
	}
	h := NewRosterHandler(stub)

	c, rec := newTestContext(t, http.MethodPost, "/api/auth/add-students-bulk",
		`{"students":[{"Name":"A","Email":"a@x.com","CGPA":8.5},{"Name":"","Email":"b@x.com"}]}`)
	asCollegeActor(c)

	if err := h.ImportStudents(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var summary ports.ImportSummary
	if err := json.Unmarshal(rec.Body.Bytes(), &summary); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if summary.Created != 1 || summary.Failed != 1 {
		t.Fatalf("unexpected summary: %+v", summary)
	}
}

func TestRosterHandler_ImportStudents_EmptyBatch(t *testing.T) {
	h := NewRosterHandler(&stubRosterService{})

	c, _ := newTestContext(t, http.MethodPost, "/api/auth/add-students-bulk", `{"students":[]}`)
	asCollegeActor(c)

	err := h.ImportStudents(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestRosterHandler_ListStudents_ForwardsForbidden(t *testing.T) {
	stub := &stubRosterService{
		listFn: func(ctx context.Context, actor ports.Actor, collegeID string) ([]ports.AccountView, error) {
			return nil, domain.ErrForbidden
		},
	}
	h := NewRosterHandler(stub)

	c, _ := newTestContext(t, http.MethodGet, "/", "")
	c.SetParamNames("collegeId")
	c.SetParamValues("68f000000000000000000001")
	asCollegeActor(c)

	if err := h.ListStudents(c); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestRosterHandler_RemoveStudent(t *testing.T) {
	var removed string
	stub := &stubRosterService{
		removeFn: func(ctx context.Context, actor ports.Actor, studentID string) error {
			removed = studentID
			return nil
		},
	}
	h := NewRosterHandler(stub)

	c, rec := newTestContext(t, http.MethodDelete, "/", "")
	c.SetParamNames("studentId")
	c.SetParamValues("68f000000000000000000042")
	asCollegeActor(c)

	if err := h.RemoveStudent(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if removed != "68f000000000000000000042" {
		t.Fatalf("unexpected student id: %s", removed)
	}
}

func TestRosterHandler_UpdateProfile(t *testing.T) {
	stub := &stubRosterService{
		updateFn: func(ctx context.Context, actorID string, patch ports.ProfilePatch) (*ports.AccountView, error) {
			if patch.Skills != "go,sql" || patch.Name != "" {
				t.Fatalf("unexpected patch: %+v", patch)
			}
			return &ports.AccountView{ID: actorID, Skills: patch.Skills}, nil
		},
	}
	h := NewRosterHandler(stub)

	c, rec := newTestContext(t, http.MethodPut, "/api/auth/update-profile", `{"skills":"go,sql"}`)
	asCollegeActor(c)

	if err := h.UpdateProfile(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}
