package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/lamare/creator-studio/internal/core/domain"
	"github.com/lamare/creator-studio/internal/core/service"
)

// ContextHandler serves the shared workspace context: the selected
// product and the social account set.
type ContextHandler struct {
	workspace *service.Workspace
}

func NewContextHandler(workspace *service.Workspace) *ContextHandler {
	return &ContextHandler{workspace: workspace}
}

type accountListResponse struct {
	Accounts []domain.SocialAccount `json:"accounts"`
}

// SelectedProduct returns the product currently in focus.
//
// @Summary      Get the selected product
// @Tags         workspace
// @Produce      json
// @Success      200  {object}  domain.Product
// @Router       /v1/workspace/product [get]
func (h *ContextHandler) SelectedProduct(c echo.Context) error {
	return c.JSON(http.StatusOK, h.workspace.Selected())
}

// Accounts returns the social account set.
//
// @Summary      List social accounts
// @Tags         workspace
// @Produce      json
// @Success      200  {object}  accountListResponse
// @Router       /v1/accounts [get]
func (h *ContextHandler) Accounts(c echo.Context) error {
	return c.JSON(http.StatusOK, accountListResponse{Accounts: h.workspace.Accounts()})
}

// Toggle flips the connection state of one platform.
//
// @Summary      Toggle a social account connection
// @Tags         workspace
// @Produce      json
// @Param        platform  path      string  true  "Platform name (e.g. TikTok)"
// @Success      200       {object}  accountListResponse
// @Failure      404       {object}  map[string]string
// @Router       /v1/accounts/{platform}/toggle [post]
func (h *ContextHandler) Toggle(c echo.Context) error {
	platform := c.Param("platform")
	if !h.workspace.ToggleAccount(platform) {
		return echo.NewHTTPError(http.StatusNotFound, "unknown platform")
	}
	return c.JSON(http.StatusOK, accountListResponse{Accounts: h.workspace.Accounts()})
}
