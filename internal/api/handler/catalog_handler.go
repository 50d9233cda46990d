package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/lamare/creator-studio/internal/core/domain"
	"github.com/lamare/creator-studio/internal/core/service"
)

// CatalogHandler serves the trending product catalog and the push-to-
// studio shortcut.
type CatalogHandler struct {
	catalog   *service.CatalogService
	workspace *service.Workspace
	nav       *service.Navigator
}

func NewCatalogHandler(catalog *service.CatalogService, workspace *service.Workspace, nav *service.Navigator) *CatalogHandler {
	return &CatalogHandler{catalog: catalog, workspace: workspace, nav: nav}
}

type productListResponse struct {
	Products   []domain.Product `json:"products"`
	Categories []string         `json:"categories"`
}

type pushResponse struct {
	Product domain.Product `json:"product"`
	View    domain.View    `json:"view"`
}

// List returns the catalog, optionally filtered by category.
//
// @Summary      List trending products
// @Tags         catalog
// @Produce      json
// @Param        category  query     string  false  "Category filter; omit or \"All\" for everything"
// @Success      200       {object}  productListResponse
// @Router       /v1/products [get]
func (h *CatalogHandler) List(c echo.Context) error {
	products := h.catalog.List(c.Request().Context(), c.QueryParam("category"))
	return c.JSON(http.StatusOK, productListResponse{
		Products:   products,
		Categories: domain.Categories,
	})
}

// Get returns a single product.
//
// @Summary      Get a product
// @Tags         catalog
// @Produce      json
// @Param        id   path      string  true  "Product id"
// @Success      200  {object}  domain.Product
// @Failure      404  {object}  map[string]string
// @Router       /v1/products/{id} [get]
func (h *CatalogHandler) Get(c echo.Context) error {
	p, err := h.catalog.Find(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, p)
}

// Push selects the product as the working subject and opens the content
// studio.
//
// @Summary      Push a product to the content studio
// @Tags         catalog
// @Produce      json
// @Param        id   path      string  true  "Product id"
// @Success      200  {object}  pushResponse
// @Failure      404  {object}  map[string]string
// @Router       /v1/products/{id}/push [post]
func (h *CatalogHandler) Push(c echo.Context) error {
	p, err := h.catalog.Find(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}

	h.workspace.SelectProduct(*p)
	view := h.nav.Navigate(domain.ViewContentStudio)
	return c.JSON(http.StatusOK, pushResponse{Product: *p, View: view})
}
