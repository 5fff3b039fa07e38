package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/campushire/recruitment-system/internal/api/metrics"
	"github.com/campushire/recruitment-system/internal/core/ports"
)

// NetworkHandler serves the partnership routes connecting companies and
// colleges.
type NetworkHandler struct {
	service ports.NetworkService
}

func NewNetworkHandler(service ports.NetworkService) *NetworkHandler {
	return &NetworkHandler{service: service}
}

// Connect sends a partnership request from the caller to the recipient.
//
// @Summary      Request a partnership
// @Tags         network
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      connectRequest  true  "Recipient id"
// @Success      201   {object}  partnershipResponse
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /api/network/connect [post]
func (h *NetworkHandler) Connect(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	var req connectRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	partnership, err := h.service.Request(c.Request().Context(), actor.ID, req.RecipientID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, toPartnershipResponse(partnership))
}

// Respond accepts or rejects a pending partnership request. The caller must
// be the recipient of the request.
//
// @Summary      Respond to a partnership request
// @Tags         network
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      respondRequest  true  "Partnership id and decision"
// @Success      200   {object}  partnershipResponse
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /api/network/respond [put]
func (h *NetworkHandler) Respond(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	var req respondRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	partnership, err := h.service.Respond(c.Request().Context(), actor.ID, req.PartnershipID, req.Decision)
	if err != nil {
		return err
	}

	metrics.PartnershipResponsesTotal.WithLabelValues(req.Decision).Inc()
	return c.JSON(http.StatusOK, toPartnershipResponse(partnership))
}

// ListNetwork returns the partnerships of the given account with the
// counterparty resolved.
//
// @Summary      List an account's partnerships
// @Tags         network
// @Produce      json
// @Security     BearerAuth
// @Param        userId  path     string  true  "Account id"
// @Success      200     {array}  ports.PartnershipView
// @Router       /api/network/requests/{userId} [get]
func (h *NetworkHandler) ListNetwork(c echo.Context) error {
	if _, err := ctxActor(c); err != nil {
		return err
	}

	views, err := h.service.ListNetwork(c.Request().Context(), c.Param("userId"))
	if err != nil {
		return err
	}
	if views == nil {
		views = []ports.PartnershipView{}
	}
	return c.JSON(http.StatusOK, views)
}

// SearchColleges matches college accounts by case-insensitive substring on
// name. An empty query returns every college.
//
// @Summary      Search colleges by name
// @Tags         network
// @Produce      json
// @Security     BearerAuth
// @Param        q    query    string  false  "Name fragment"
// @Success      200  {array}  ports.CollegeSummary
// @Router       /api/network/search-colleges [get]
func (h *NetworkHandler) SearchColleges(c echo.Context) error {
	if _, err := ctxActor(c); err != nil {
		return err
	}

	colleges, err := h.service.SearchColleges(c.Request().Context(), c.QueryParam("q"))
	if err != nil {
		return err
	}
	if colleges == nil {
		colleges = []ports.CollegeSummary{}
	}
	return c.JSON(http.StatusOK, colleges)
}
