package handler

import "github.com/jtcsoft/ems-backend/internal/core/domain"

// --- Request types ---
// Dates travel as dd-MM-yyyy strings; domain.Date handles the codec.

type saveEmployeeRequest struct {
	EmployeeID  string      `json:"employeeId"`
	Name        string      `json:"name"       validate:"required"`
	Email       string      `json:"email"      validate:"required,email"`
	Phone       string      `json:"phone"`
	Department  string      `json:"department"`
	JoiningDate domain.Date `json:"joiningDate"`
}

func (r saveEmployeeRequest) toDomain() *domain.Employee {
	return &domain.Employee{
		ID:          r.EmployeeID,
		Name:        r.Name,
		Email:       r.Email,
		Phone:       r.Phone,
		Department:  r.Department,
		JoiningDate: r.JoiningDate,
	}
}

type updateEmployeeRequest struct {
	Name       *string `json:"name"`
	Phone      *string `json:"phone"`
	Department *string `json:"department"`
}

type contactPersonRequest struct {
	Name        string `json:"name"        validate:"required"`
	Email       string `json:"email"       validate:"required,email"`
	Designation string `json:"designation"`
}

type saveClientRequest struct {
	ClientID         string                 `json:"clientId"`
	CompanyName      string                 `json:"companyName" validate:"required"`
	RelationshipDate domain.Date            `json:"relationshipDate"`
	ContactPersons   []contactPersonRequest `json:"contactPersons" validate:"dive"`
}

func (r saveClientRequest) toDomain() *domain.Client {
	c := &domain.Client{
		ID:               r.ClientID,
		CompanyName:      r.CompanyName,
		RelationshipDate: r.RelationshipDate,
	}
	for _, cp := range r.ContactPersons {
		c.ContactPersons = append(c.ContactPersons, domain.ContactPerson{
			Name:        cp.Name,
			Email:       cp.Email,
			Designation: cp.Designation,
		})
	}
	return c
}

type saveProjectRequest struct {
	ProjectID   string      `json:"projectId"`
	ProjectName string      `json:"projectName" validate:"required"`
	StartDate   domain.Date `json:"startDate"`
	EndDate     domain.Date `json:"endDate"`
}

func (r saveProjectRequest) toDomain() *domain.Project {
	return &domain.Project{
		ID:          r.ProjectID,
		ProjectName: r.ProjectName,
		StartDate:   r.StartDate,
		EndDate:     r.EndDate,
	}
}

type updateProjectRequest struct {
	ProjectName     *string      `json:"projectName"`
	UpdatedDeadline *domain.Date `json:"updatedDeadline"`
}

type setPasswordRequest struct {
	ID       string `json:"id"       validate:"required"`
	Password string `json:"password" validate:"required,min=8"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type loginData struct {
	Token string `json:"token"`
	Email string `json:"email"`
	Role  string `json:"role"`
}
