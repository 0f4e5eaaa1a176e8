package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/cargopanel/dashboard-gateway/internal/core/domain"
	"github.com/cargopanel/dashboard-gateway/internal/core/ports"
)

type PacketHandler struct {
	resources ports.ResourceService
}

func NewPacketHandler(resources ports.ResourceService) *PacketHandler {
	return &PacketHandler{resources: resources}
}

type packetListResponse struct {
	*ports.PacketList
	Links pageLinks `json:"links"`
}

type packetStatusRequest struct {
	// "ReadyToInvocie" is the backend's own spelling.
	Status string `json:"status" validate:"required,oneof=Ready ReadyToInvocie"`
}

// List returns one page of packets, filterable by invoicing status.
//
// @Summary      List packets
// @Tags         packets
// @Produce      json
// @Security     BearerAuth
// @Param        search  query     string  false  "Client code filter"
// @Param        status  query     string  false  "Invoicing status filter"
// @Param        page    query     int     false  "Page number"
// @Param        limit   query     int     false  "Page size"
// @Success      200     {object}  packetListResponse
// @Router       /packets [get]
func (h *PacketHandler) List(c echo.Context) error {
	list, err := h.resources.ListPackets(c.Request().Context(), listInput(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, packetListResponse{
		PacketList: list,
		Links:      links(c, list.Page, list.TotalPages),
	})
}

// Get returns a packet with its product line items.
//
// @Summary      View a packet
// @Tags         packets
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Packet ID"
// @Success      200  {object}  domain.Packet
// @Failure      404  {object}  map[string]string
// @Router       /packets/{id} [get]
func (h *PacketHandler) Get(c echo.Context) error {
	packet, err := h.resources.GetPacket(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, packet)
}

// UpdateStatus moves a packet between invoicing states.
//
// @Summary      Update packet status
// @Tags         packets
// @Accept       json
// @Security     BearerAuth
// @Param        id    path  string               true  "Packet ID"
// @Param        body  body  packetStatusRequest  true  "New status"
// @Success      204
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /packets/{id}/status [put]
func (h *PacketHandler) UpdateStatus(c echo.Context) error {
	var req packetStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.resources.UpdatePacketStatus(c.Request().Context(), c.Param("id"), domain.PacketStatus(req.Status)); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
