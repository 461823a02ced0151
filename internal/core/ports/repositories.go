package ports

import (
	"context"

	"github.com/jtcsoft/ems-backend/internal/core/domain"
)

// Repositories abstract the entity store. Implementations translate missing
// documents into domain.ErrRecordNotFound and unique-index violations into
// domain.ErrDuplicateKey; services attach entity-specific messages.

// EmployeeRepository persists employees. Delete also removes the employee's
// linked user record in the same transaction.
type EmployeeRepository interface {
	Save(ctx context.Context, e *domain.Employee) error
	FindByID(ctx context.Context, id string) (*domain.Employee, error)
	FindByEmail(ctx context.Context, email string) (*domain.Employee, error)
	FindAll(ctx context.Context) ([]domain.Employee, error)
	FindByProjectID(ctx context.Context, projectID string) ([]domain.Employee, error)
	Delete(ctx context.Context, e *domain.Employee) error
}

// ClientRepository persists clients. Create inserts the client together with
// its contact persons atomically. Delete cascades to the client's contact
// persons (and their users) and projects (releasing any employees assigned
// to those projects), all inside one transaction.
type ClientRepository interface {
	Create(ctx context.Context, c *domain.Client) error
	FindByID(ctx context.Context, id string) (*domain.Client, error)
	FindAll(ctx context.Context) ([]domain.Client, error)
	Delete(ctx context.Context, c *domain.Client) error
}

// ContactRepository persists contact persons.
type ContactRepository interface {
	Save(ctx context.Context, cp *domain.ContactPerson) error
	FindByEmail(ctx context.Context, email string) (*domain.ContactPerson, error)
	FindByClientID(ctx context.Context, clientID string) ([]domain.ContactPerson, error)
}

// ProjectRepository persists projects. Delete releases every employee
// assigned to the project before removing it (employees are a back-reference
// and are never deleted with the project).
type ProjectRepository interface {
	Save(ctx context.Context, p *domain.Project) error
	FindByID(ctx context.Context, id string) (*domain.Project, error)
	FindAll(ctx context.Context) ([]domain.Project, error)
	FindByClientID(ctx context.Context, clientID string) ([]domain.Project, error)
	Delete(ctx context.Context, p *domain.Project) error
}

// UserRepository persists credential records.
type UserRepository interface {
	Save(ctx context.Context, u *domain.User) error
	FindByID(ctx context.Context, id int64) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
}

// IDGenerator produces entity identifiers: formatted human-readable ids for
// employees, clients and projects, numeric ids for contacts and users. Ids
// are strictly increasing per kind and assigned exactly once at creation.
type IDGenerator interface {
	NextEmployeeID(ctx context.Context) (string, error)
	NextClientID(ctx context.Context) (string, error)
	NextProjectID(ctx context.Context) (string, error)
	NextContactID(ctx context.Context) (int64, error)
	NextUserID(ctx context.Context) (int64, error)
}
