package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/lamare/creator-studio/internal/api/metrics"
	"github.com/lamare/creator-studio/internal/core/domain"
	"github.com/lamare/creator-studio/internal/core/service"
)

// SessionHandler handles the session lifecycle: login, demo login,
// signup with 2FA verification, logout, and profile reads.
type SessionHandler struct {
	nav      *service.Navigator
	sessions *service.SessionManager
}

func NewSessionHandler(nav *service.Navigator, sessions *service.SessionManager) *SessionHandler {
	return &SessionHandler{nav: nav, sessions: sessions}
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type signupRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type verifyRequest struct {
	Code string `json:"code" validate:"required,len=6"`
}

type sessionResponse struct {
	Authenticated bool                 `json:"authenticated"`
	User          *domain.UserIdentity `json:"user,omitempty"`
	View          domain.View          `json:"view"`
}

// Current returns the session and active view.
//
// @Summary      Get current session
// @Tags         session
// @Produce      json
// @Success      200  {object}  sessionResponse
// @Router       /v1/session [get]
func (h *SessionHandler) Current(c echo.Context) error {
	return c.JSON(http.StatusOK, h.state())
}

// Login authenticates with email and password and lands on the dashboard.
//
// @Summary      Login
// @Tags         session
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  sessionResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /v1/session/login [post]
func (h *SessionHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.sessions.Authenticate(req.Email, req.Password)
	if err != nil {
		return err
	}
	if err := h.nav.Login(c.Request().Context(), *user); err != nil {
		return err
	}

	metrics.SessionEventsTotal.WithLabelValues("login").Inc()
	return c.JSON(http.StatusOK, h.state())
}

// DemoLogin signs in with the built-in demo identity.
//
// @Summary      Demo login
// @Tags         session
// @Produce      json
// @Success      200  {object}  sessionResponse
// @Router       /v1/session/demo [post]
func (h *SessionHandler) DemoLogin(c echo.Context) error {
	if err := h.nav.DemoLogin(c.Request().Context()); err != nil {
		return err
	}
	metrics.SessionEventsTotal.WithLabelValues("demo_login").Inc()
	return c.JSON(http.StatusOK, h.state())
}

// SignUp stores the submitted identity as pending and moves to the 2FA
// screen. The session is not authenticated until the code is verified.
//
// @Summary      Sign up
// @Tags         session
// @Accept       json
// @Produce      json
// @Param        body  body      signupRequest  true  "New account details"
// @Success      202   {object}  sessionResponse
// @Failure      400   {object}  map[string]string
// @Router       /v1/session/signup [post]
func (h *SessionHandler) SignUp(c echo.Context) error {
	var req signupRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	pending := domain.UserIdentity{
		ID:        "user_" + uuid.NewString(),
		Name:      req.Name,
		Email:     req.Email,
		AvatarURL: "https://api.dicebear.com/7.x/avataaars/svg?seed=" + req.Email,
		Role:      domain.RoleMember,
	}
	if err := h.nav.CompleteSignUp(c.Request().Context(), pending); err != nil {
		return err
	}

	metrics.SessionEventsTotal.WithLabelValues("signup").Inc()
	return c.JSON(http.StatusAccepted, h.state())
}

// Verify checks the 2FA code and promotes the pending identity.
//
// @Summary      Verify 2FA code
// @Tags         session
// @Accept       json
// @Produce      json
// @Param        body  body      verifyRequest  true  "Verification code"
// @Success      200   {object}  sessionResponse
// @Failure      401   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /v1/session/verify [post]
func (h *SessionHandler) Verify(c echo.Context) error {
	var req verifyRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	promoted, err := h.nav.VerifySuccess(c.Request().Context(), req.Code)
	if err != nil {
		return err
	}
	if !promoted {
		return echo.NewHTTPError(http.StatusConflict, "no registration pending")
	}

	metrics.SessionEventsTotal.WithLabelValues("verified").Inc()
	return c.JSON(http.StatusOK, h.state())
}

// BackToSignUp abandons the pending registration and reopens the form.
//
// @Summary      Return to the signup form
// @Tags         session
// @Produce      json
// @Success      200  {object}  sessionResponse
// @Router       /v1/session/back-to-signup [post]
func (h *SessionHandler) BackToSignUp(c echo.Context) error {
	h.nav.BackToSignUp()
	return c.JSON(http.StatusOK, h.state())
}

// Logout clears the session and returns to the landing page. Planner
// tasks are untouched.
//
// @Summary      Logout
// @Tags         session
// @Produce      json
// @Success      200  {object}  sessionResponse
// @Router       /v1/session/logout [post]
func (h *SessionHandler) Logout(c echo.Context) error {
	if err := h.nav.Logout(c.Request().Context()); err != nil {
		return err
	}
	metrics.SessionEventsTotal.WithLabelValues("logout").Inc()
	return c.JSON(http.StatusOK, h.state())
}

func (h *SessionHandler) state() sessionResponse {
	return sessionResponse{
		Authenticated: h.sessions.Authenticated(),
		User:          h.sessions.CurrentUser(),
		View:          h.nav.Current(),
	}
}
