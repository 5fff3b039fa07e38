package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/campushire/recruitment-system/internal/api/metrics"
	"github.com/campushire/recruitment-system/internal/core/ports"
)

// RosterHandler serves the roster management routes a college (or its staff)
// uses to onboard and maintain students and team members.
type RosterHandler struct {
	service ports.RosterService
}

func NewRosterHandler(service ports.RosterService) *RosterHandler {
	return &RosterHandler{service: service}
}

// resolveCollegeID falls back to the actor's own scope when the request does
// not name a college explicitly.
func resolveCollegeID(requested string, actor ports.Actor) string {
	if requested != "" {
		return requested
	}
	return actor.ScopeID
}

// AddStudent creates a single student account under the actor's college with
// the default credential and a set first-login flag.
//
// @Summary      Add a student to the roster
// @Tags         roster
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      addStudentRequest  true  "Student details"
// @Success      201   {object}  ports.AccountView
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /api/auth/add-student [post]
func (h *RosterHandler) AddStudent(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	var req addStudentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	view, err := h.service.AddStudent(c.Request().Context(), actor, ports.AddStudentInput{
		Name:      req.Name,
		Email:     req.Email,
		Branch:    req.Branch,
		CGPA:      req.CGPA,
		Phone:     req.Phone,
		CollegeID: resolveCollegeID(req.CollegeID, actor),
	})
	if err != nil {
		return err
	}

	metrics.AccountsRegisteredTotal.WithLabelValues(view.Role, "roster").Inc()
	return c.JSON(http.StatusCreated, view)
}

// AddStaff creates a college_member account with the default staff credential.
//
// @Summary      Add a staff member
// @Tags         roster
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      addStaffRequest  true  "Staff details"
// @Success      201   {object}  ports.AccountView
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /api/auth/add-staff [post]
func (h *RosterHandler) AddStaff(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	var req addStaffRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	view, err := h.service.AddStaff(c.Request().Context(), actor, ports.AddStaffInput{
		Name:      req.Name,
		Email:     req.Email,
		CollegeID: resolveCollegeID(req.CollegeID, actor),
	})
	if err != nil {
		return err
	}

	metrics.AccountsRegisteredTotal.WithLabelValues(view.Role, "roster").Inc()
	return c.JSON(http.StatusCreated, view)
}

// ImportStudents reconciles a batch of decoded spreadsheet rows into the
// roster. Rows are independent; the summary reports created and failed
// counts only.
//
// @Summary      Bulk-import students
// @Tags         roster
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      bulkImportRequest  true  "Decoded rows"
// @Success      200   {object}  ports.ImportSummary
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Router       /api/auth/add-students-bulk [post]
func (h *RosterHandler) ImportStudents(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	var req bulkImportRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	summary, err := h.service.ImportStudents(c.Request().Context(), actor, resolveCollegeID(req.CollegeID, actor), req.Students)
	if err != nil {
		return err
	}

	metrics.ImportRowsTotal.WithLabelValues("created").Add(float64(summary.Created))
	metrics.ImportRowsTotal.WithLabelValues("failed").Add(float64(summary.Failed))
	return c.JSON(http.StatusOK, summary)
}

// ListStudents returns the students owned by the given college.
//
// @Summary      List a college's students
// @Tags         roster
// @Produce      json
// @Security     BearerAuth
// @Param        collegeId  path      string  true  "College id"
// @Success      200        {array}   ports.AccountView
// @Failure      403        {object}  errorResponse
// @Router       /api/auth/students/{collegeId} [get]
func (h *RosterHandler) ListStudents(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	students, err := h.service.ListStudents(c.Request().Context(), actor, c.Param("collegeId"))
	if err != nil {
		return err
	}
	if students == nil {
		students = []ports.AccountView{}
	}
	return c.JSON(http.StatusOK, students)
}

// ListTeam returns the staff members of the given college.
//
// @Summary      List a college's team
// @Tags         roster
// @Produce      json
// @Security     BearerAuth
// @Param        collegeId  path      string  true  "College id"
// @Success      200        {array}   ports.AccountView
// @Failure      403        {object}  errorResponse
// @Router       /api/auth/team/{collegeId} [get]
func (h *RosterHandler) ListTeam(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	team, err := h.service.ListTeam(c.Request().Context(), actor, c.Param("collegeId"))
	if err != nil {
		return err
	}
	if team == nil {
		team = []ports.AccountView{}
	}
	return c.JSON(http.StatusOK, team)
}

// RemoveStudent deletes a student account from the actor's roster.
//
// @Summary      Remove a student
// @Tags         roster
// @Produce      json
// @Security     BearerAuth
// @Param        studentId  path      string  true  "Student id"
// @Success      200        {object}  messageResponse
// @Failure      403        {object}  errorResponse
// @Failure      404        {object}  errorResponse
// @Router       /api/auth/students/{studentId} [delete]
func (h *RosterHandler) RemoveStudent(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	if err := h.service.RemoveStudent(c.Request().Context(), actor, c.Param("studentId")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "student removed"})
}

// UpdateProfile merges non-empty fields into the caller's own account.
//
// @Summary      Update own profile
// @Tags         roster
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      updateProfileRequest  true  "Profile fields"
// @Success      200   {object}  ports.AccountView
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /api/auth/update-profile [put]
func (h *RosterHandler) UpdateProfile(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	var req updateProfileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	view, err := h.service.UpdateProfile(c.Request().Context(), actor.ID, ports.ProfilePatch{
		Name:   req.Name,
		Phone:  req.Phone,
		Branch: req.Branch,
		CGPA:   req.CGPA,
		Skills: req.Skills,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, view)
}
