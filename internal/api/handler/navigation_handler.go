package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/lamare/creator-studio/internal/api/metrics"
	"github.com/lamare/creator-studio/internal/core/domain"
	"github.com/lamare/creator-studio/internal/core/service"
)

// NavigationHandler exposes the current view and the navigation intents
// that carry no session side effects.
type NavigationHandler struct {
	nav *service.Navigator
}

func NewNavigationHandler(nav *service.Navigator) *NavigationHandler {
	return &NavigationHandler{nav: nav}
}

type navigateRequest struct {
	View string `json:"view" validate:"required"`
}

type viewResponse struct {
	View domain.View `json:"view"`
}

// Current returns the active view.
//
// @Summary      Get the active view
// @Tags         navigation
// @Produce      json
// @Success      200  {object}  viewResponse
// @Router       /v1/view [get]
func (h *NavigationHandler) Current(c echo.Context) error {
	return c.JSON(http.StatusOK, viewResponse{View: h.nav.Current()})
}

// Navigate moves to the requested view. A blocked or unknown target
// leaves the view unchanged; the response always carries the resulting
// view.
//
// @Summary      Navigate to a view
// @Tags         navigation
// @Accept       json
// @Produce      json
// @Param        body  body      navigateRequest  true  "Target view"
// @Success      200   {object}  viewResponse
// @Failure      400   {object}  map[string]string
// @Router       /v1/navigate [post]
func (h *NavigationHandler) Navigate(c echo.Context) error {
	var req navigateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	target := domain.View(req.View)
	result := h.nav.Navigate(target)

	switch {
	case !target.Valid():
		metrics.NavigationIntentsTotal.WithLabelValues(req.View, "invalid").Inc()
	case result != target:
		metrics.NavigationIntentsTotal.WithLabelValues(req.View, "blocked").Inc()
	default:
		metrics.NavigationIntentsTotal.WithLabelValues(req.View, "applied").Inc()
	}

	return c.JSON(http.StatusOK, viewResponse{View: result})
}

// StartLogin opens the login form, or the dashboard when a session is
// already live.
//
// @Summary      Open the login form
// @Tags         navigation
// @Produce      json
// @Success      200  {object}  viewResponse
// @Router       /v1/navigate/login [post]
func (h *NavigationHandler) StartLogin(c echo.Context) error {
	return c.JSON(http.StatusOK, viewResponse{View: h.nav.StartLogin()})
}

// StartSignUp opens the signup form.
//
// @Summary      Open the signup form
// @Tags         navigation
// @Produce      json
// @Success      200  {object}  viewResponse
// @Router       /v1/navigate/signup [post]
func (h *NavigationHandler) StartSignUp(c echo.Context) error {
	return c.JSON(http.StatusOK, viewResponse{View: h.nav.StartSignUp()})
}

// ForgotPassword opens the password-recovery form.
//
// @Summary      Open password recovery
// @Tags         navigation
// @Produce      json
// @Success      200  {object}  viewResponse
// @Router       /v1/navigate/forgot-password [post]
func (h *NavigationHandler) ForgotPassword(c echo.Context) error {
	return c.JSON(http.StatusOK, viewResponse{View: h.nav.ForgotPassword()})
}

// BackToLogin returns to the login form from recovery or signup.
//
// @Summary      Return to the login form
// @Tags         navigation
// @Produce      json
// @Success      200  {object}  viewResponse
// @Router       /v1/navigate/back-to-login [post]
func (h *NavigationHandler) BackToLogin(c echo.Context) error {
	return c.JSON(http.StatusOK, viewResponse{View: h.nav.BackToLogin()})
}
