package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/jtcsoft/ems-backend/internal/api/metrics"
	"github.com/jtcsoft/ems-backend/internal/core/domain"
	"github.com/jtcsoft/ems-backend/internal/core/ports"
)

// ClientHandler handles HTTP requests for client and contact person
// operations, including the client self-service surface.
type ClientHandler struct {
	service ports.ClientService
}

func NewClientHandler(service ports.ClientService) *ClientHandler {
	return &ClientHandler{service: service}
}

// Save creates a client together with its contact persons.
//
// @Summary      Save a new client
// @Tags         clients
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      saveClientRequest  true  "Client and contact persons"
// @Success      201   {object}  apiResponse
// @Failure      400   {object}  apiResponse
// @Failure      409   {object}  apiResponse
// @Router       /admin/saveClient [post]
func (h *ClientHandler) Save(c echo.Context) error {
	var req saveClientRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	cl, err := h.service.Save(c.Request().Context(), req.toDomain())
	if err != nil {
		return err
	}

	metrics.EntitiesCreatedTotal.WithLabelValues("client").Inc()
	return respond(c, http.StatusCreated, "client saved successfully", cl)
}

// GetByID returns a single client with its contact persons.
//
// @Summary      Get a client by id
// @Tags         clients
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Client id (e.g. CLIENT-001)"
// @Success      200  {object}  apiResponse
// @Failure      404  {object}  apiResponse
// @Router       /admin/getClientById/{id} [get]
func (h *ClientHandler) GetByID(c echo.Context) error {
	cl, err := h.service.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "client found", cl)
}

// Delete removes a client, its contact persons, their credentials, and its
// projects; employees on those projects go back on bench.
//
// @Summary      Delete a client
// @Tags         clients
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Client id"
// @Success      202  {object}  apiResponse
// @Failure      404  {object}  apiResponse
// @Router       /admin/deleteClient/{id} [delete]
func (h *ClientHandler) Delete(c echo.Context) error {
	cl, err := h.service.Delete(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}

	metrics.EntitiesDeletedTotal.WithLabelValues("client").Inc()
	return respond(c, http.StatusAccepted, "client deleted successfully", cl)
}

// List returns every client; an empty book reads as not found.
//
// @Summary      List all clients
// @Tags         clients
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  apiResponse
// @Failure      404  {object}  apiResponse
// @Router       /admin/getAllClients [get]
func (h *ClientHandler) List(c echo.Context) error {
	clients, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "clients fetched successfully", clients)
}

// AddContact links an additional contact person to an existing client.
//
// @Summary      Add a contact person to a client
// @Tags         clients
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        clientId  path      string                true  "Client id"
// @Param        body      body      contactPersonRequest  true  "Contact person details"
// @Success      201       {object}  apiResponse
// @Failure      404       {object}  apiResponse
// @Failure      409       {object}  apiResponse
// @Router       /admin/addContact/{clientId} [post]
func (h *ClientHandler) AddContact(c echo.Context) error {
	var req contactPersonRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	cp, err := h.service.AddContact(c.Request().Context(), c.Param("clientId"), &domain.ContactPerson{
		Name:        req.Name,
		Email:       req.Email,
		Designation: req.Designation,
	})
	if err != nil {
		return err
	}
	return respond(c, http.StatusCreated, "contact added successfully", cp)
}

// SetPassword applies one password to every contact person of a client.
//
// @Summary      Set a client's password
// @Tags         credentials
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      setPasswordRequest  true  "Client id and new password"
// @Success      200   {object}  apiResponse
// @Failure      404   {object}  apiResponse
// @Router       /admin/setClientPassword [put]
func (h *ClientHandler) SetPassword(c echo.Context) error {
	var req setPasswordRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	cl, err := h.service.SetPassword(c.Request().Context(), req.ID, req.Password)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "password updated successfully", cl)
}

// Details returns the client record the authenticated contact belongs to.
//
// @Summary      Get my client details
// @Tags         self-service
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  apiResponse
// @Failure      404  {object}  apiResponse
// @Router       /client/details [get]
func (h *ClientHandler) Details(c echo.Context) error {
	email, _, err := ctxClaims(c)
	if err != nil {
		return err
	}

	cl, err := h.service.GetByContactEmail(c.Request().Context(), email)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "client found", cl)
}

// Projects returns the projects of the authenticated contact's client.
//
// @Summary      Get my client's projects
// @Tags         self-service
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  apiResponse
// @Failure      404  {object}  apiResponse
// @Router       /client/projects [get]
func (h *ClientHandler) Projects(c echo.Context) error {
	email, _, err := ctxClaims(c)
	if err != nil {
		return err
	}

	projects, err := h.service.ProjectsByContactEmail(c.Request().Context(), email)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "projects fetched successfully", projects)
}
