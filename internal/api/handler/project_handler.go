package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/jtcsoft/ems-backend/internal/api/metrics"
	"github.com/jtcsoft/ems-backend/internal/core/ports"
)

// ProjectHandler handles HTTP requests for project operations.
type ProjectHandler struct {
	service ports.ProjectService
}

func NewProjectHandler(service ports.ProjectService) *ProjectHandler {
	return &ProjectHandler{service: service}
}

// Save creates a project under a client.
//
// @Summary      Save a new project
// @Tags         projects
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        clientId  path      string              true  "Client id"
// @Param        body      body      saveProjectRequest  true  "Project details"
// @Success      201       {object}  apiResponse
// @Failure      400       {object}  apiResponse
// @Failure      404       {object}  apiResponse
// @Failure      409       {object}  apiResponse
// @Router       /admin/saveProject/{clientId} [post]
func (h *ProjectHandler) Save(c echo.Context) error {
	var req saveProjectRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	p, err := h.service.Save(c.Request().Context(), c.Param("clientId"), req.toDomain())
	if err != nil {
		return err
	}

	metrics.EntitiesCreatedTotal.WithLabelValues("project").Inc()
	return respond(c, http.StatusCreated, "project saved successfully", p)
}

// GetByID returns a single project.
//
// @Summary      Get a project by id
// @Tags         projects
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Project id (e.g. PROJECT-001)"
// @Success      200  {object}  apiResponse
// @Failure      404  {object}  apiResponse
// @Router       /admin/getProjectById/{id} [get]
func (h *ProjectHandler) GetByID(c echo.Context) error {
	p, err := h.service.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "project found", p)
}

// Update applies a partial update; a new deadline must lie in the future.
//
// @Summary      Update a project
// @Tags         projects
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                true  "Project id"
// @Param        body  body      updateProjectRequest  true  "Fields to update"
// @Success      200   {object}  apiResponse
// @Failure      404   {object}  apiResponse
// @Failure      409   {object}  apiResponse
// @Router       /admin/updateProject/{id} [put]
func (h *ProjectHandler) Update(c echo.Context) error {
	var req updateProjectRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	p, err := h.service.Update(c.Request().Context(), c.Param("id"), ports.UpdateProjectInput{
		ProjectName:     req.ProjectName,
		UpdatedDeadline: req.UpdatedDeadline,
	})
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "project updated successfully", p)
}

// Delete removes a project; its employees go back on bench.
//
// @Summary      Delete a project
// @Tags         projects
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Project id"
// @Success      202  {object}  apiResponse
// @Failure      404  {object}  apiResponse
// @Router       /admin/deleteProject/{id} [delete]
func (h *ProjectHandler) Delete(c echo.Context) error {
	p, err := h.service.Delete(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}

	metrics.EntitiesDeletedTotal.WithLabelValues("project").Inc()
	return respond(c, http.StatusAccepted, "project deleted successfully", p)
}

// List returns every project; an empty portfolio reads as not found.
//
// @Summary      List all projects
// @Tags         projects
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  apiResponse
// @Failure      404  {object}  apiResponse
// @Router       /admin/getAllProjects [get]
func (h *ProjectHandler) List(c echo.Context) error {
	projects, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "projects fetched successfully", projects)
}

// ListByClient returns the projects of one client.
//
// @Summary      List projects by client
// @Tags         projects
// @Produce      json
// @Security     BearerAuth
// @Param        clientId  path      string  true  "Client id"
// @Success      200       {object}  apiResponse
// @Failure      404       {object}  apiResponse
// @Router       /admin/getProjectsByClient/{clientId} [get]
func (h *ProjectHandler) ListByClient(c echo.Context) error {
	projects, err := h.service.ListByClient(c.Request().Context(), c.Param("clientId"))
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "projects fetched successfully", projects)
}

// ClientByProject returns the client a project belongs to.
//
// @Summary      Get the client of a project
// @Tags         projects
// @Produce      json
// @Security     BearerAuth
// @Param        projectId  path      string  true  "Project id"
// @Success      200        {object}  apiResponse
// @Failure      404        {object}  apiResponse
// @Router       /admin/getClientByProject/{projectId} [get]
func (h *ProjectHandler) ClientByProject(c echo.Context) error {
	cl, err := h.service.ClientByProject(c.Request().Context(), c.Param("projectId"))
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "client found", cl)
}
