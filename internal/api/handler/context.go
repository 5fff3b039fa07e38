package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/campushire/recruitment-system/internal/core/domain"
	"github.com/campushire/recruitment-system/internal/core/ports"
)

// ctxActor recovers the authenticated caller injected by the Auth middleware
// and fast-fails before any service call:
//   - account_id and role must be non-empty (presence proves the middleware
//     ran).
//   - college roles require a scope id; without it the token is structurally
//     valid but operationally unusable, so reject with 401.
func ctxActor(c echo.Context) (ports.Actor, error) {
	id, _ := c.Get("account_id").(string)
	role, _ := c.Get("role").(string)
	if id == "" || role == "" {
		return ports.Actor{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}

	scopeID, _ := c.Get("college_id").(string)
	if scopeID == "" && (role == domain.RoleCollege || role == domain.RoleCollegeMember) {
		return ports.Actor{}, echo.NewHTTPError(http.StatusUnauthorized, "missing college scope claim")
	}
	return ports.Actor{ID: id, Role: role, ScopeID: scopeID}, nil
}
