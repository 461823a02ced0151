package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/jtcsoft/ems-backend/internal/core/domain"
	"github.com/jtcsoft/ems-backend/internal/core/ports"
)

// ProjectService implements project CRUD and the client side of the
// assignment engine.
type ProjectService struct {
	projects ports.ProjectRepository
	clients  ports.ClientRepository
	ids      ports.IDGenerator
	logger   zerolog.Logger
}

func NewProjectService(
	projects ports.ProjectRepository,
	clients ports.ClientRepository,
	ids ports.IDGenerator,
	logger zerolog.Logger,
) *ProjectService {
	return &ProjectService{
		projects: projects,
		clients:  clients,
		ids:      ids,
		logger:   logger,
	}
}

// Save creates a project under the client. The end date must be strictly
// after today; nothing is persisted otherwise.
func (s *ProjectService) Save(ctx context.Context, clientID string, p *domain.Project) (*domain.Project, error) {
	c, err := s.clients.FindByID(ctx, normalizeID(clientID))
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return nil, domain.NotFoundf("client not found with id: %s", clientID)
		}
		return nil, err
	}

	if p.EndDate.IsZero() {
		return nil, domain.Validationf("endDate is required")
	}
	if !p.EndDate.After(domain.Today()) {
		return nil, domain.Conflictf("end date must be after today")
	}

	if p.ID == "" {
		id, err := s.ids.NextProjectID(ctx)
		if err != nil {
			return nil, err
		}
		p.ID = id
	}
	if p.StartDate.IsZero() {
		p.StartDate = domain.Today()
	}
	p.ClientID = c.ID

	if err := s.projects.Save(ctx, p); err != nil {
		return nil, err
	}

	s.logger.Info().Str("project_id", p.ID).Str("client_id", c.ID).Msg("project created")
	return p, nil
}

func (s *ProjectService) GetByID(ctx context.Context, id string) (*domain.Project, error) {
	p, err := s.projects.FindByID(ctx, normalizeID(id))
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return nil, domain.NotFoundf("project not found with id: %s", id)
		}
		return nil, err
	}
	return p, nil
}

// Update merges the non-nil fields of patch onto the stored project. An
// updated deadline must be strictly after today at the time it is set; a
// rejected patch leaves the stored record untouched.
func (s *ProjectService) Update(ctx context.Context, id string, patch ports.UpdateProjectInput) (*domain.Project, error) {
	p, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if patch.UpdatedDeadline != nil && !patch.UpdatedDeadline.After(domain.Today()) {
		return nil, domain.Conflictf("updated deadline must be after today")
	}

	if patch.ProjectName != nil {
		p.ProjectName = *patch.ProjectName
	}
	if patch.UpdatedDeadline != nil {
		p.UpdatedDeadline = patch.UpdatedDeadline
	}

	if err := s.projects.Save(ctx, p); err != nil {
		return nil, err
	}

	s.logger.Info().Str("project_id", p.ID).Msg("project updated")
	return p, nil
}

// Delete removes the project; employees assigned to it go back on bench.
func (s *ProjectService) Delete(ctx context.Context, id string) (*domain.Project, error) {
	p, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.projects.Delete(ctx, p); err != nil {
		return nil, err
	}
	s.logger.Info().Str("project_id", p.ID).Msg("project deleted")
	return p, nil
}

func (s *ProjectService) List(ctx context.Context) ([]domain.Project, error) {
	projects, err := s.projects.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	if len(projects) == 0 {
		return nil, domain.NotFoundf("no projects available")
	}
	return projects, nil
}

func (s *ProjectService) ListByClient(ctx context.Context, clientID string) ([]domain.Project, error) {
	id := normalizeID(clientID)
	if _, err := s.clients.FindByID(ctx, id); err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return nil, domain.NotFoundf("client not found with id: %s", clientID)
		}
		return nil, err
	}

	projects, err := s.projects.FindByClientID(ctx, id)
	if err != nil {
		return nil, err
	}
	if len(projects) == 0 {
		return nil, domain.NotFoundf("no projects available for client: %s", id)
	}
	return projects, nil
}

func (s *ProjectService) ClientByProject(ctx context.Context, projectID string) (*domain.Client, error) {
	p, err := s.GetByID(ctx, projectID)
	if err != nil {
		return nil, err
	}

	c, err := s.clients.FindByID(ctx, p.ClientID)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return nil, domain.NotFoundf("client not found with id: %s", p.ClientID)
		}
		return nil, err
	}
	return c, nil
}
