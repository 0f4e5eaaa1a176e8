package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/cargopanel/dashboard-gateway/internal/core/ports"
)

type ProductHandler struct {
	resources ports.ResourceService
}

func NewProductHandler(resources ports.ResourceService) *ProductHandler {
	return &ProductHandler{resources: resources}
}

type productListResponse struct {
	*ports.ProductList
	Links pageLinks `json:"links"`
}

// List returns one page of products.
//
// @Summary      List products
// @Tags         products
// @Produce      json
// @Security     BearerAuth
// @Param        search  query     string  false  "Name filter"
// @Param        page    query     int     false  "Page number"
// @Param        limit   query     int     false  "Page size"
// @Success      200     {object}  productListResponse
// @Router       /products [get]
func (h *ProductHandler) List(c echo.Context) error {
	list, err := h.resources.ListProducts(c.Request().Context(), listInput(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, productListResponse{
		ProductList: list,
		Links:       links(c, list.Page, list.TotalPages),
	})
}
