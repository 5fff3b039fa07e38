package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/campushire/recruitment-system/internal/api/metrics"
	"github.com/campushire/recruitment-system/internal/core/ports"
)

// AuthHandler serves registration, login, the first-login password reset,
// and the public college directory.
type AuthHandler struct {
	authService ports.AuthService
	directory   ports.DirectoryService
}

func NewAuthHandler(authService ports.AuthService, directory ports.DirectoryService) *AuthHandler {
	return &AuthHandler{authService: authService, directory: directory}
}

// Register creates a new account and returns it with a signed token.
//
// @Summary      Register a new account
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "Account details"
// @Success      201   {object}  authResponse
// @Failure      400   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /api/auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	result, err := h.authService.Register(c.Request().Context(), ports.RegisterInput{
		Name:      req.Name,
		Email:     req.Email,
		Password:  req.Password,
		Role:      req.Role,
		CollegeID: req.CollegeID,
	})
	if err != nil {
		return err
	}

	metrics.AccountsRegisteredTotal.WithLabelValues(result.Account.Role, "self").Inc()
	return c.JSON(http.StatusCreated, authResponse{Token: result.Token, User: result.Account})
}

// Login authenticates an account and returns a JWT token.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  authResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	result, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, authResponse{Token: result.Token, User: result.Account})
}

// ChangePassword replaces the credential and clears the first-login flag.
// It backs the forced reset after logging in with a system-issued default
// password, so it takes no old password and no token.
//
// @Summary      Change password (first-login reset)
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      changePasswordRequest  true  "Email and new password"
// @Success      200   {object}  messageResponse
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /api/auth/change-password [put]
func (h *AuthHandler) ChangePassword(c echo.Context) error {
	var req changePasswordRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.authService.ChangePassword(c.Request().Context(), req.Email, req.NewPassword); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, messageResponse{Message: "password updated"})
}

// ListColleges returns the public college directory for the registration
// dropdown: id and name only.
//
// @Summary      List colleges
// @Tags         auth
// @Produce      json
// @Success      200  {array}  ports.CollegeSummary
// @Router       /api/auth/colleges [get]
func (h *AuthHandler) ListColleges(c echo.Context) error {
	colleges, err := h.directory.ListColleges(c.Request().Context())
	if err != nil {
		return err
	}
	if colleges == nil {
		colleges = []ports.CollegeSummary{}
	}
	return c.JSON(http.StatusOK, colleges)
}
