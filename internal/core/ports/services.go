package ports

import (
	"context"

	"github.com/jtcsoft/ems-backend/internal/core/domain"
)

// UpdateEmployeeInput is a partial update: nil fields are left unchanged.
type UpdateEmployeeInput struct {
	Name       *string
	Phone      *string
	Department *string
}

// UpdateProjectInput is a partial update: nil fields are left unchanged.
// UpdatedDeadline, when present, must be strictly after today.
type UpdateProjectInput struct {
	ProjectName     *string
	UpdatedDeadline *domain.Date
}

// EmployeeService covers employee CRUD, the employee side of the assignment
// engine, and employee credential management. All id parameters are
// case-insensitive.
type EmployeeService interface {
	Save(ctx context.Context, e *domain.Employee) (*domain.Employee, error)
	GetByID(ctx context.Context, id string) (*domain.Employee, error)
	GetByEmail(ctx context.Context, email string) (*domain.Employee, error)
	Update(ctx context.Context, id string, patch UpdateEmployeeInput) (*domain.Employee, error)
	Delete(ctx context.Context, id string) (*domain.Employee, error)
	List(ctx context.Context) ([]domain.Employee, error)

	AssignProject(ctx context.Context, employeeID, projectID string) (*domain.Employee, error)
	ReleaseFromProject(ctx context.Context, employeeID string) (*domain.Employee, error)
	ListByProject(ctx context.Context, projectID string) ([]domain.Employee, error)
	ProjectByEmployeeID(ctx context.Context, employeeID string) (*domain.Project, error)
	ProjectByEmployeeEmail(ctx context.Context, email string) (*domain.Project, error)

	SetPassword(ctx context.Context, employeeID, password string) (*domain.Employee, error)
}

// ClientService covers client CRUD, contact persons, and client credential
// management. SetPassword applies the same password to every contact person
// under the client.
type ClientService interface {
	Save(ctx context.Context, c *domain.Client) (*domain.Client, error)
	GetByID(ctx context.Context, id string) (*domain.Client, error)
	Delete(ctx context.Context, id string) (*domain.Client, error)
	List(ctx context.Context) ([]domain.Client, error)

	AddContact(ctx context.Context, clientID string, cp *domain.ContactPerson) (*domain.ContactPerson, error)
	SetPassword(ctx context.Context, clientID, password string) (*domain.Client, error)

	GetByContactEmail(ctx context.Context, email string) (*domain.Client, error)
	ProjectsByContactEmail(ctx context.Context, email string) ([]domain.Project, error)
}

// ProjectService covers project CRUD and the client side of the assignment
// engine.
type ProjectService interface {
	Save(ctx context.Context, clientID string, p *domain.Project) (*domain.Project, error)
	GetByID(ctx context.Context, id string) (*domain.Project, error)
	Update(ctx context.Context, id string, patch UpdateProjectInput) (*domain.Project, error)
	Delete(ctx context.Context, id string) (*domain.Project, error)
	List(ctx context.Context) ([]domain.Project, error)

	ListByClient(ctx context.Context, clientID string) ([]domain.Project, error)
	ClientByProject(ctx context.Context, projectID string) (*domain.Client, error)
}

// AuthService resolves credentials to a signed token carrying the caller's
// identity and role.
type AuthService interface {
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
}
