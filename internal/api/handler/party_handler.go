package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/cargopanel/dashboard-gateway/internal/core/domain"
	"github.com/cargopanel/dashboard-gateway/internal/core/ports"
)

type PartyHandler struct {
	resources ports.ResourceService
}

func NewPartyHandler(resources ports.ResourceService) *PartyHandler {
	return &PartyHandler{resources: resources}
}

type partyListResponse struct {
	*ports.PartyList
	Links pageLinks `json:"links"`
}

type partyRequest struct {
	Name   string `json:"name" validate:"required"`
	Status string `json:"status" validate:"required,oneof=collecting on_the_way on_customs local_on_the_way shipment_on_customers"`
}

// List returns one page of parties. Search, status, page and limit are
// forwarded to the backend; results are served from cache when fresh.
//
// @Summary      List parties
// @Tags         parties
// @Produce      json
// @Security     BearerAuth
// @Param        search  query     string  false  "Name filter"
// @Param        status  query     string  false  "Status filter"
// @Param        page    query     int     false  "Page number"
// @Param        limit   query     int     false  "Page size"
// @Success      200     {object}  partyListResponse
// @Router       /parties [get]
func (h *PartyHandler) List(c echo.Context) error {
	list, err := h.resources.ListParties(c.Request().Context(), listInput(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, partyListResponse{
		PartyList: list,
		Links:     links(c, list.Page, list.TotalPages),
	})
}

// Get returns a single party.
//
// @Summary      Get a party
// @Tags         parties
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Party ID"
// @Success      200  {object}  domain.Party
// @Failure      404  {object}  map[string]string
// @Router       /parties/{id} [get]
func (h *PartyHandler) Get(c echo.Context) error {
	party, err := h.resources.GetParty(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, party)
}

// Create registers a new party on the backend and invalidates cached party
// listings.
//
// @Summary      Create a party
// @Tags         parties
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      partyRequest  true  "Party details"
// @Success      201   {object}  domain.Party
// @Failure      400   {object}  map[string]string
// @Router       /parties [post]
func (h *PartyHandler) Create(c echo.Context) error {
	in, err := h.bind(c)
	if err != nil {
		return err
	}
	party, err := h.resources.CreateParty(c.Request().Context(), in)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, party)
}

// Update replaces a party's mutable fields.
//
// @Summary      Update a party
// @Tags         parties
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string        true  "Party ID"
// @Param        body  body      partyRequest  true  "Party details"
// @Success      200   {object}  domain.Party
// @Failure      404   {object}  map[string]string
// @Router       /parties/{id} [put]
func (h *PartyHandler) Update(c echo.Context) error {
	in, err := h.bind(c)
	if err != nil {
		return err
	}
	party, err := h.resources.UpdateParty(c.Request().Context(), c.Param("id"), in)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, party)
}

// Delete removes a party. Admin only.
//
// @Summary      Delete a party
// @Tags         parties
// @Security     BearerAuth
// @Param        id  path  string  true  "Party ID"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Router       /parties/{id} [delete]
func (h *PartyHandler) Delete(c echo.Context) error {
	if err := h.resources.DeleteParty(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *PartyHandler) bind(c echo.Context) (ports.PartyInput, error) {
	var req partyRequest
	if err := c.Bind(&req); err != nil {
		return ports.PartyInput{}, echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return ports.PartyInput{}, echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return ports.PartyInput{Name: req.Name, Status: domain.PartyStatus(req.Status)}, nil
}
