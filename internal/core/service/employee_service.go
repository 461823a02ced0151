package service

import (
	"context"
	"errors"
	"strings"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/jtcsoft/ems-backend/internal/core/domain"
	"github.com/jtcsoft/ems-backend/internal/core/ports"
)

// EmployeeService implements employee CRUD, the employee side of project
// assignment, and employee credential management.
type EmployeeService struct {
	employees ports.EmployeeRepository
	projects  ports.ProjectRepository
	users     ports.UserRepository
	ids       ports.IDGenerator
	logger    zerolog.Logger
}

func NewEmployeeService(
	employees ports.EmployeeRepository,
	projects ports.ProjectRepository,
	users ports.UserRepository,
	ids ports.IDGenerator,
	logger zerolog.Logger,
) *EmployeeService {
	return &EmployeeService{
		employees: employees,
		projects:  projects,
		users:     users,
		ids:       ids,
		logger:    logger,
	}
}

// Save creates an employee. Email must be unique; an explicitly supplied id
// is respected verbatim, otherwise one is generated.
func (s *EmployeeService) Save(ctx context.Context, e *domain.Employee) (*domain.Employee, error) {
	if _, err := s.employees.FindByEmail(ctx, e.Email); err == nil {
		return nil, domain.Conflictf("email already exists: %s", e.Email)
	} else if !errors.Is(err, domain.ErrRecordNotFound) {
		return nil, err
	}

	if e.ID == "" {
		id, err := s.ids.NextEmployeeID(ctx)
		if err != nil {
			return nil, err
		}
		e.ID = id
	}
	if e.JoiningDate.IsZero() {
		e.JoiningDate = domain.Today()
	}

	if err := s.employees.Save(ctx, e); err != nil {
		if errors.Is(err, domain.ErrDuplicateKey) {
			return nil, domain.Conflictf("email already exists: %s", e.Email)
		}
		return nil, err
	}

	s.logger.Info().Str("employee_id", e.ID).Msg("employee created")
	return e, nil
}

func (s *EmployeeService) GetByID(ctx context.Context, id string) (*domain.Employee, error) {
	e, err := s.employees.FindByID(ctx, normalizeID(id))
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return nil, domain.NotFoundf("employee not found with id: %s", id)
		}
		return nil, err
	}
	return e, nil
}

func (s *EmployeeService) GetByEmail(ctx context.Context, email string) (*domain.Employee, error) {
	e, err := s.employees.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return nil, domain.NotFoundf("employee not found with email: %s", email)
		}
		return nil, err
	}
	return e, nil
}

// Update merges the non-nil fields of patch onto the stored employee.
// Absent fields are left unchanged; the id and email are immutable here.
func (s *EmployeeService) Update(ctx context.Context, id string, patch ports.UpdateEmployeeInput) (*domain.Employee, error) {
	e, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if patch.Name != nil {
		e.Name = *patch.Name
	}
	if patch.Phone != nil {
		e.Phone = *patch.Phone
	}
	if patch.Department != nil {
		e.Department = *patch.Department
	}

	if err := s.employees.Save(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

// Delete removes the employee together with its linked user record.
func (s *EmployeeService) Delete(ctx context.Context, id string) (*domain.Employee, error) {
	e, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.employees.Delete(ctx, e); err != nil {
		return nil, err
	}
	s.logger.Info().Str("employee_id", e.ID).Msg("employee deleted")
	return e, nil
}

func (s *EmployeeService) List(ctx context.Context) ([]domain.Employee, error) {
	employees, err := s.employees.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	if len(employees) == 0 {
		return nil, domain.NotFoundf("no employees available")
	}
	return employees, nil
}

// AssignProject puts the employee on the project. An employee already on a
// project is never silently reassigned; the caller must release first.
func (s *EmployeeService) AssignProject(ctx context.Context, employeeID, projectID string) (*domain.Employee, error) {
	e, err := s.GetByID(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	p, err := s.projects.FindByID(ctx, normalizeID(projectID))
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return nil, domain.NotFoundf("project not found with id: %s", projectID)
		}
		return nil, err
	}

	if !e.OnBench() {
		return nil, domain.Conflictf("employee %s is already assigned to a project and cannot be reassigned", e.ID)
	}

	e.ProjectID = p.ID
	if err := s.employees.Save(ctx, e); err != nil {
		return nil, err
	}

	s.logger.Info().Str("employee_id", e.ID).Str("project_id", p.ID).Msg("project assigned")
	return e, nil
}

// ReleaseFromProject clears the employee's project reference.
func (s *EmployeeService) ReleaseFromProject(ctx context.Context, employeeID string) (*domain.Employee, error) {
	e, err := s.GetByID(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	if e.OnBench() {
		return nil, domain.Conflictf("employee %s is already on bench", e.ID)
	}

	released := e.ProjectID
	e.ProjectID = ""
	if err := s.employees.Save(ctx, e); err != nil {
		return nil, err
	}

	s.logger.Info().Str("employee_id", e.ID).Str("project_id", released).Msg("employee released")
	return e, nil
}

// ListByProject returns the employees on-boarded on the project. An empty
// list is reported as not found, matching the API-wide convention.
func (s *EmployeeService) ListByProject(ctx context.Context, projectID string) ([]domain.Employee, error) {
	id := normalizeID(projectID)
	if _, err := s.projects.FindByID(ctx, id); err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return nil, domain.NotFoundf("project not found with id: %s", projectID)
		}
		return nil, err
	}

	employees, err := s.employees.FindByProjectID(ctx, id)
	if err != nil {
		return nil, err
	}
	if len(employees) == 0 {
		return nil, domain.NotFoundf("no employees on-boarded on project: %s", id)
	}
	return employees, nil
}

func (s *EmployeeService) ProjectByEmployeeID(ctx context.Context, employeeID string) (*domain.Project, error) {
	e, err := s.GetByID(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	return s.projectOf(ctx, e)
}

func (s *EmployeeService) ProjectByEmployeeEmail(ctx context.Context, email string) (*domain.Project, error) {
	e, err := s.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	return s.projectOf(ctx, e)
}

func (s *EmployeeService) projectOf(ctx context.Context, e *domain.Employee) (*domain.Project, error) {
	if e.OnBench() {
		return nil, domain.NotFoundf("employee on bench: %s", e.ID)
	}
	p, err := s.projects.FindByID(ctx, e.ProjectID)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return nil, domain.NotFoundf("project not found with id: %s", e.ProjectID)
		}
		return nil, err
	}
	return p, nil
}

// SetPassword creates the employee's user record on first use (email copied
// from the employee, role EMPLOYEE) and overwrites the digest.
func (s *EmployeeService) SetPassword(ctx context.Context, employeeID, password string) (*domain.Employee, error) {
	e, err := s.GetByID(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	var user *domain.User
	if e.UserID != 0 {
		user, err = s.users.FindByID(ctx, e.UserID)
		if err != nil && !errors.Is(err, domain.ErrRecordNotFound) {
			return nil, err
		}
	}
	if user == nil {
		id, err := s.ids.NextUserID(ctx)
		if err != nil {
			return nil, err
		}
		user = &domain.User{ID: id, Email: e.Email, Role: domain.RoleEmployee}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	user.PasswordHash = string(hash)

	if err := s.users.Save(ctx, user); err != nil {
		return nil, err
	}
	if e.UserID != user.ID {
		e.UserID = user.ID
		if err := s.employees.Save(ctx, e); err != nil {
			return nil, err
		}
	}

	s.logger.Info().Str("employee_id", e.ID).Msg("employee password set")
	return e, nil
}

// normalizeID makes supplied ids case-insensitive by folding them to the
// casing generated ids use.
func normalizeID(id string) string {
	return strings.ToUpper(strings.TrimSpace(id))
}
