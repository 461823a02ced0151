package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/jtcsoft/ems-backend/internal/api/metrics"
	"github.com/jtcsoft/ems-backend/internal/core/ports"
)

// EmployeeHandler handles HTTP requests for employee operations, the
// assignment endpoints included.
type EmployeeHandler struct {
	service ports.EmployeeService
}

func NewEmployeeHandler(service ports.EmployeeService) *EmployeeHandler {
	return &EmployeeHandler{service: service}
}

// Save creates a new employee record.
//
// @Summary      Save a new employee
// @Tags         employees
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      saveEmployeeRequest  true  "Employee details"
// @Success      201   {object}  apiResponse
// @Failure      400   {object}  apiResponse
// @Failure      409   {object}  apiResponse
// @Router       /admin/saveEmployee [post]
func (h *EmployeeHandler) Save(c echo.Context) error {
	var req saveEmployeeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	e, err := h.service.Save(c.Request().Context(), req.toDomain())
	if err != nil {
		return err
	}

	metrics.EntitiesCreatedTotal.WithLabelValues("employee").Inc()
	return respond(c, http.StatusCreated, "employee saved successfully", e)
}

// GetByID returns a single employee.
//
// @Summary      Get an employee by id
// @Tags         employees
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Employee id (e.g. JTC-001)"
// @Success      200  {object}  apiResponse
// @Failure      404  {object}  apiResponse
// @Router       /admin/getEmployeeById/{id} [get]
func (h *EmployeeHandler) GetByID(c echo.Context) error {
	e, err := h.service.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "employee found", e)
}

// GetByEmail returns a single employee resolved by email.
//
// @Summary      Get an employee by email
// @Tags         employees
// @Produce      json
// @Security     BearerAuth
// @Param        email  path      string  true  "Employee email"
// @Success      200    {object}  apiResponse
// @Failure      404    {object}  apiResponse
// @Router       /admin/getEmployeeByEmail/{email} [get]
func (h *EmployeeHandler) GetByEmail(c echo.Context) error {
	e, err := h.service.GetByEmail(c.Request().Context(), c.Param("email"))
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "employee found", e)
}

// Update applies a partial update; only the fields present in the body change.
//
// @Summary      Update an employee
// @Tags         employees
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                 true  "Employee id"
// @Param        body  body      updateEmployeeRequest  true  "Fields to update"
// @Success      200   {object}  apiResponse
// @Failure      404   {object}  apiResponse
// @Router       /admin/updateEmployee/{id} [put]
func (h *EmployeeHandler) Update(c echo.Context) error {
	var req updateEmployeeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	e, err := h.service.Update(c.Request().Context(), c.Param("id"), ports.UpdateEmployeeInput{
		Name:       req.Name,
		Phone:      req.Phone,
		Department: req.Department,
	})
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "employee updated successfully", e)
}

// Delete removes an employee and its login credentials.
//
// @Summary      Delete an employee
// @Tags         employees
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Employee id"
// @Success      202  {object}  apiResponse
// @Failure      404  {object}  apiResponse
// @Router       /admin/deleteEmployee/{id} [delete]
func (h *EmployeeHandler) Delete(c echo.Context) error {
	e, err := h.service.Delete(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}

	metrics.EntitiesDeletedTotal.WithLabelValues("employee").Inc()
	return respond(c, http.StatusAccepted, "employee deleted successfully", e)
}

// List returns every employee; an empty roster reads as not found.
//
// @Summary      List all employees
// @Tags         employees
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  apiResponse
// @Failure      404  {object}  apiResponse
// @Router       /admin/getAllEmployees [get]
func (h *EmployeeHandler) List(c echo.Context) error {
	employees, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "employees fetched successfully", employees)
}

// AssignProject puts an employee on a project.
//
// @Summary      Assign a project to an employee
// @Tags         assignments
// @Produce      json
// @Security     BearerAuth
// @Param        employeeId  path      string  true  "Employee id"
// @Param        projectId   path      string  true  "Project id"
// @Success      200         {object}  apiResponse
// @Failure      404         {object}  apiResponse
// @Failure      409         {object}  apiResponse
// @Router       /admin/assignProject/employee/{employeeId}/project/{projectId} [put]
func (h *EmployeeHandler) AssignProject(c echo.Context) error {
	e, err := h.service.AssignProject(c.Request().Context(), c.Param("employeeId"), c.Param("projectId"))
	if err != nil {
		return err
	}

	metrics.AssignmentsTotal.WithLabelValues("assign").Inc()
	return respond(c, http.StatusOK, "project assigned successfully", e)
}

// Unassign releases an employee back to the bench.
//
// @Summary      Release an employee from its project
// @Tags         assignments
// @Produce      json
// @Security     BearerAuth
// @Param        employeeId  path      string  true  "Employee id"
// @Success      200         {object}  apiResponse
// @Failure      404         {object}  apiResponse
// @Failure      409         {object}  apiResponse
// @Router       /admin/unassignProject/employee/{employeeId} [put]
func (h *EmployeeHandler) Unassign(c echo.Context) error {
	e, err := h.service.ReleaseFromProject(c.Request().Context(), c.Param("employeeId"))
	if err != nil {
		return err
	}

	metrics.AssignmentsTotal.WithLabelValues("release").Inc()
	return respond(c, http.StatusOK, "employee released successfully", e)
}

// ListByProject returns the employees on-boarded on a project.
//
// @Summary      List employees by project
// @Tags         assignments
// @Produce      json
// @Security     BearerAuth
// @Param        projectId  path      string  true  "Project id"
// @Success      200        {object}  apiResponse
// @Failure      404        {object}  apiResponse
// @Router       /admin/getEmployeesByProject/{projectId} [get]
func (h *EmployeeHandler) ListByProject(c echo.Context) error {
	employees, err := h.service.ListByProject(c.Request().Context(), c.Param("projectId"))
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "employees fetched successfully", employees)
}

// ProjectByEmployee returns the project an employee is currently on.
//
// @Summary      Get the project of an employee
// @Tags         assignments
// @Produce      json
// @Security     BearerAuth
// @Param        employeeId  path      string  true  "Employee id"
// @Success      200         {object}  apiResponse
// @Failure      404         {object}  apiResponse
// @Router       /admin/getProjectByEmployee/{employeeId} [get]
func (h *EmployeeHandler) ProjectByEmployee(c echo.Context) error {
	p, err := h.service.ProjectByEmployeeID(c.Request().Context(), c.Param("employeeId"))
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "project found", p)
}

// SetPassword creates or rotates an employee's login credentials.
//
// @Summary      Set an employee's password
// @Tags         credentials
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      setPasswordRequest  true  "Employee id and new password"
// @Success      200   {object}  apiResponse
// @Failure      404   {object}  apiResponse
// @Router       /admin/setEmployeePassword [put]
func (h *EmployeeHandler) SetPassword(c echo.Context) error {
	var req setPasswordRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	e, err := h.service.SetPassword(c.Request().Context(), req.ID, req.Password)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "password updated successfully", e)
}

// MyDetails returns the record of the authenticated employee.
//
// @Summary      Get my employee details
// @Tags         self-service
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  apiResponse
// @Failure      404  {object}  apiResponse
// @Router       /employee/myDetails [get]
func (h *EmployeeHandler) MyDetails(c echo.Context) error {
	email, _, err := ctxClaims(c)
	if err != nil {
		return err
	}

	e, err := h.service.GetByEmail(c.Request().Context(), email)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "employee found", e)
}

// MyProject returns the current project of the authenticated employee.
//
// @Summary      Get my current project
// @Tags         self-service
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  apiResponse
// @Failure      404  {object}  apiResponse
// @Router       /employee/myProject [get]
func (h *EmployeeHandler) MyProject(c echo.Context) error {
	email, _, err := ctxClaims(c)
	if err != nil {
		return err
	}

	p, err := h.service.ProjectByEmployeeEmail(c.Request().Context(), email)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "project found", p)
}
