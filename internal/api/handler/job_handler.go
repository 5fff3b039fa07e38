package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/campushire/recruitment-system/internal/api/metrics"
	"github.com/campushire/recruitment-system/internal/core/ports"
)

// JobHandler serves job drive creation and the scoped listings.
type JobHandler struct {
	service ports.JobService
}

func NewJobHandler(service ports.JobService) *JobHandler {
	return &JobHandler{service: service}
}

// Create opens a job drive at a college. The caller must be a company with
// an Active partnership with that college.
//
// @Summary      Create a job drive
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createJobRequest  true  "Job details"
// @Success      201   {object}  jobResponse
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Router       /api/jobs/create [post]
func (h *JobHandler) Create(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	var req createJobRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	var deadline time.Time
	if req.Deadline != "" {
		deadline, err = time.Parse(time.RFC3339, req.Deadline)
		if err != nil {
			// Date-only form from spreadsheet-driven clients.
			deadline, err = time.Parse("2006-01-02", req.Deadline)
			if err != nil {
				return echo.NewHTTPError(http.StatusBadRequest, "deadline must be RFC3339 or YYYY-MM-DD")
			}
		}
	}

	job, err := h.service.Create(c.Request().Context(), ports.CreateJobInput{
		CompanyID:   actor.ID,
		CollegeID:   req.CollegeID,
		Title:       req.Title,
		Description: req.Description,
		Location:    req.Location,
		CTC:         req.CTC,
		Deadline:    deadline,
		MinCGPA:     req.MinCGPA,
		Branches:    req.Branches,
		Rounds:      req.Rounds,
	})
	if err != nil {
		return err
	}

	metrics.JobsCreatedTotal.Inc()
	return c.JSON(http.StatusCreated, toJobResponse(job))
}

// ListForCompany returns the company's own postings with college names
// resolved.
//
// @Summary      List a company's jobs
// @Tags         jobs
// @Produce      json
// @Security     BearerAuth
// @Param        companyId  path     string  true  "Company id"
// @Success      200        {array}  jobResponse
// @Router       /api/jobs/company/{companyId} [get]
func (h *JobHandler) ListForCompany(c echo.Context) error {
	if _, err := ctxActor(c); err != nil {
		return err
	}

	views, err := h.service.ListForCompany(c.Request().Context(), c.Param("companyId"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toJobViewResponses(views))
}

// Feed returns the college's Open jobs, newest first, with company contact
// fields resolved.
//
// @Summary      College job feed
// @Tags         jobs
// @Produce      json
// @Security     BearerAuth
// @Param        collegeId  path      string  true  "College id"
// @Success      200        {array}   jobResponse
// @Failure      400        {object}  errorResponse
// @Router       /api/jobs/feed/{collegeId} [get]
func (h *JobHandler) Feed(c echo.Context) error {
	if _, err := ctxActor(c); err != nil {
		return err
	}

	views, err := h.service.ListForCollegeFeed(c.Request().Context(), c.Param("collegeId"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toJobViewResponses(views))
}
