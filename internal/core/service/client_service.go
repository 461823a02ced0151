package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/jtcsoft/ems-backend/internal/core/domain"
	"github.com/jtcsoft/ems-backend/internal/core/ports"
)

// ClientService implements client CRUD, contact person management, and the
// bulk credential operation for a client's contact persons.
type ClientService struct {
	clients  ports.ClientRepository
	contacts ports.ContactRepository
	projects ports.ProjectRepository
	users    ports.UserRepository
	ids      ports.IDGenerator
	logger   zerolog.Logger
}

func NewClientService(
	clients ports.ClientRepository,
	contacts ports.ContactRepository,
	projects ports.ProjectRepository,
	users ports.UserRepository,
	ids ports.IDGenerator,
	logger zerolog.Logger,
) *ClientService {
	return &ClientService{
		clients:  clients,
		contacts: contacts,
		projects: projects,
		users:    users,
		ids:      ids,
		logger:   logger,
	}
}

// Save creates a client together with its contact persons. Every contact
// email is checked before anything is persisted: a single duplicate aborts
// the whole batch.
func (s *ClientService) Save(ctx context.Context, c *domain.Client) (*domain.Client, error) {
	seen := make(map[string]struct{}, len(c.ContactPersons))
	for _, cp := range c.ContactPersons {
		if _, dup := seen[cp.Email]; dup {
			return nil, domain.Conflictf("email already exists: %s", cp.Email)
		}
		seen[cp.Email] = struct{}{}

		if _, err := s.contacts.FindByEmail(ctx, cp.Email); err == nil {
			return nil, domain.Conflictf("email already exists: %s", cp.Email)
		} else if !errors.Is(err, domain.ErrRecordNotFound) {
			return nil, err
		}
	}

	if c.ID == "" {
		id, err := s.ids.NextClientID(ctx)
		if err != nil {
			return nil, err
		}
		c.ID = id
	}
	if c.RelationshipDate.IsZero() {
		c.RelationshipDate = domain.Today()
	}

	for i := range c.ContactPersons {
		cp := &c.ContactPersons[i]
		if cp.ID == 0 {
			id, err := s.ids.NextContactID(ctx)
			if err != nil {
				return nil, err
			}
			cp.ID = id
		}
		cp.ClientID = c.ID
	}

	if err := s.clients.Create(ctx, c); err != nil {
		if errors.Is(err, domain.ErrDuplicateKey) {
			return nil, domain.Conflictf("client could not be saved, duplicate contact email")
		}
		return nil, err
	}

	s.logger.Info().Str("client_id", c.ID).Int("contacts", len(c.ContactPersons)).Msg("client created")
	return c, nil
}

func (s *ClientService) GetByID(ctx context.Context, id string) (*domain.Client, error) {
	c, err := s.clients.FindByID(ctx, normalizeID(id))
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return nil, domain.NotFoundf("client not found with id: %s", id)
		}
		return nil, err
	}
	return c, nil
}

// Delete removes the client and cascades to its contact persons (and their
// users) and projects; employees on those projects go back on bench.
func (s *ClientService) Delete(ctx context.Context, id string) (*domain.Client, error) {
	c, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.clients.Delete(ctx, c); err != nil {
		return nil, err
	}
	s.logger.Info().Str("client_id", c.ID).Msg("client deleted")
	return c, nil
}

func (s *ClientService) List(ctx context.Context) ([]domain.Client, error) {
	clients, err := s.clients.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	if len(clients) == 0 {
		return nil, domain.NotFoundf("no clients available")
	}
	return clients, nil
}

// AddContact links a new contact person to an existing client.
func (s *ClientService) AddContact(ctx context.Context, clientID string, cp *domain.ContactPerson) (*domain.ContactPerson, error) {
	c, err := s.GetByID(ctx, clientID)
	if err != nil {
		return nil, err
	}

	if _, err := s.contacts.FindByEmail(ctx, cp.Email); err == nil {
		return nil, domain.Conflictf("email already exists: %s", cp.Email)
	} else if !errors.Is(err, domain.ErrRecordNotFound) {
		return nil, err
	}

	if cp.ID == 0 {
		id, err := s.ids.NextContactID(ctx)
		if err != nil {
			return nil, err
		}
		cp.ID = id
	}
	cp.ClientID = c.ID

	if err := s.contacts.Save(ctx, cp); err != nil {
		if errors.Is(err, domain.ErrDuplicateKey) {
			return nil, domain.Conflictf("email already exists: %s", cp.Email)
		}
		return nil, err
	}

	s.logger.Info().Str("client_id", c.ID).Int64("contact_id", cp.ID).Msg("contact added")
	return cp, nil
}

// SetPassword applies the same password to every contact person under the
// client, creating user records (role CLIENT) on first use.
func (s *ClientService) SetPassword(ctx context.Context, clientID, password string) (*domain.Client, error) {
	c, err := s.GetByID(ctx, clientID)
	if err != nil {
		return nil, err
	}

	for i := range c.ContactPersons {
		cp := &c.ContactPersons[i]

		var user *domain.User
		if cp.UserID != 0 {
			user, err = s.users.FindByID(ctx, cp.UserID)
			if err != nil && !errors.Is(err, domain.ErrRecordNotFound) {
				return nil, err
			}
		}
		if user == nil {
			id, err := s.ids.NextUserID(ctx)
			if err != nil {
				return nil, err
			}
			user = &domain.User{ID: id, Email: cp.Email, Role: domain.RoleClient}
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = string(hash)

		if err := s.users.Save(ctx, user); err != nil {
			return nil, err
		}
		if cp.UserID != user.ID {
			cp.UserID = user.ID
			if err := s.contacts.Save(ctx, cp); err != nil {
				return nil, err
			}
		}
	}

	s.logger.Info().Str("client_id", c.ID).Int("contacts", len(c.ContactPersons)).Msg("client password set")
	return c, nil
}

// GetByContactEmail resolves the client a contact person's email belongs to.
// Used by the client self-service surface.
func (s *ClientService) GetByContactEmail(ctx context.Context, email string) (*domain.Client, error) {
	cp, err := s.contacts.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return nil, domain.NotFoundf("contact not found with email: %s", email)
		}
		return nil, err
	}
	return s.GetByID(ctx, cp.ClientID)
}

func (s *ClientService) ProjectsByContactEmail(ctx context.Context, email string) ([]domain.Project, error) {
	c, err := s.GetByContactEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	projects, err := s.projects.FindByClientID(ctx, c.ID)
	if err != nil {
		return nil, err
	}
	if len(projects) == 0 {
		return nil, domain.NotFoundf("no projects available for client: %s", c.ID)
	}
	return projects, nil
}
