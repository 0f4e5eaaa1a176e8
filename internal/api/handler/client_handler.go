package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/cargopanel/dashboard-gateway/internal/core/ports"
)

type ClientHandler struct {
	resources ports.ResourceService
}

func NewClientHandler(resources ports.ResourceService) *ClientHandler {
	return &ClientHandler{resources: resources}
}

type clientListResponse struct {
	*ports.ClientList
	Links pageLinks `json:"links"`
}

// List returns one page of clients. Admin only.
//
// @Summary      List clients
// @Tags         clients
// @Produce      json
// @Security     BearerAuth
// @Param        search  query     string  false  "Code or name filter"
// @Param        page    query     int     false  "Page number"
// @Param        limit   query     int     false  "Page size"
// @Success      200     {object}  clientListResponse
// @Router       /clients [get]
func (h *ClientHandler) List(c echo.Context) error {
	list, err := h.resources.ListClients(c.Request().Context(), listInput(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, clientListResponse{
		ClientList: list,
		Links:      links(c, list.Page, list.TotalPages),
	})
}
