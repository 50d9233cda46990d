package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/lamare/creator-studio/internal/core/service"
)

// AccountHandler handles the account view: the biometric identity check
// and profile editing behind it.
type AccountHandler struct {
	accounts *service.AccountService
	sessions *service.SessionManager
}

func NewAccountHandler(accounts *service.AccountService, sessions *service.SessionManager) *AccountHandler {
	return &AccountHandler{accounts: accounts, sessions: sessions}
}

type updateProfileRequest struct {
	Name      string `json:"name"`
	AvatarURL string `json:"avatar_url"`
}

type verificationResponse struct {
	Verified bool `json:"verified"`
}

// VerifyBiometric runs the camera-based identity check. Denial leaves
// the gate locked; a later retry may succeed.
//
// @Summary      Run the biometric identity check
// @Tags         account
// @Produce      json
// @Success      200  {object}  verificationResponse
// @Failure      403  {object}  map[string]string
// @Router       /v1/account/verify [post]
func (h *AccountHandler) VerifyBiometric(c echo.Context) error {
	if err := h.accounts.VerifyBiometric(c.Request().Context()); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, verificationResponse{Verified: true})
}

// VerificationStatus reports whether the edit gate is open.
//
// @Summary      Get biometric verification status
// @Tags         account
// @Produce      json
// @Success      200  {object}  verificationResponse
// @Router       /v1/account/verify [get]
func (h *AccountHandler) VerificationStatus(c echo.Context) error {
	return c.JSON(http.StatusOK, verificationResponse{Verified: h.accounts.IdentityVerified()})
}

// UpdateProfile rewrites the signed-in identity's editable fields. The
// route sits behind the verified-identity middleware.
//
// @Summary      Update the profile
// @Tags         account
// @Accept       json
// @Produce      json
// @Param        body  body      updateProfileRequest  true  "Fields to change; empty fields are kept"
// @Success      200   {object}  domain.UserIdentity
// @Failure      401   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Router       /v1/account/profile [put]
func (h *AccountHandler) UpdateProfile(c echo.Context) error {
	var req updateProfileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	if err := h.sessions.UpdateProfile(c.Request().Context(), req.Name, req.AvatarURL); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, h.sessions.CurrentUser())
}
