package service

import (
	"context"
	"fmt"
	"sort"
	"testing"

	"github.com/rs/zerolog"

	"github.com/jtcsoft/ems-backend/internal/core/domain"
)

var discardLogger = zerolog.Nop()

func assertStatus(t *testing.T, err error, want int) {
	t.Helper()
	domErr, ok := domain.AsError(err)
	if !ok {
		t.Fatalf("expected a domain error, got %v", err)
	}
	if domErr.Status != want {
		t.Fatalf("expected status %d, got %d (%s)", want, domErr.Status, domErr.Message)
	}
}

// ---------------------------------------------------------------------------
// In-memory store shared by the stub repositories. The stubs mirror the
// behavior of the Mongo implementations, cascades included, so the service
// tests exercise the same contracts.
// ---------------------------------------------------------------------------

type memDB struct {
	employees map[string]*domain.Employee
	clients   map[string]*domain.Client
	contacts  map[int64]*domain.ContactPerson
	projects  map[string]*domain.Project
	users     map[int64]*domain.User
}

func newMemDB() *memDB {
	return &memDB{
		employees: make(map[string]*domain.Employee),
		clients:   make(map[string]*domain.Client),
		contacts:  make(map[int64]*domain.ContactPerson),
		projects:  make(map[string]*domain.Project),
		users:     make(map[int64]*domain.User),
	}
}

func (db *memDB) contactsOf(clientID string) []domain.ContactPerson {
	var out []domain.ContactPerson
	for _, cp := range db.contacts {
		if cp.ClientID == clientID {
			out = append(out, *cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (db *memDB) releaseEmployeesOf(projectID string) {
	for _, e := range db.employees {
		if e.ProjectID == projectID {
			e.ProjectID = ""
		}
	}
}

// --- employees ---

type stubEmployeeRepo struct{ db *memDB }

func (r *stubEmployeeRepo) Save(_ context.Context, e *domain.Employee) error {
	clone := *e
	r.db.employees[e.ID] = &clone
	return nil
}

func (r *stubEmployeeRepo) FindByID(_ context.Context, id string) (*domain.Employee, error) {
	e, ok := r.db.employees[id]
	if !ok {
		return nil, domain.ErrRecordNotFound
	}
	clone := *e
	return &clone, nil
}

func (r *stubEmployeeRepo) FindByEmail(_ context.Context, email string) (*domain.Employee, error) {
	for _, e := range r.db.employees {
		if e.Email == email {
			clone := *e
			return &clone, nil
		}
	}
	return nil, domain.ErrRecordNotFound
}

func (r *stubEmployeeRepo) FindAll(_ context.Context) ([]domain.Employee, error) {
	var out []domain.Employee
	for _, e := range r.db.employees {
		out = append(out, *e)
	}
	return out, nil
}

func (r *stubEmployeeRepo) FindByProjectID(_ context.Context, projectID string) ([]domain.Employee, error) {
	var out []domain.Employee
	for _, e := range r.db.employees {
		if e.ProjectID == projectID {
			out = append(out, *e)
		}
	}
	return out, nil
}

func (r *stubEmployeeRepo) Delete(_ context.Context, e *domain.Employee) error {
	delete(r.db.employees, e.ID)
	if e.UserID != 0 {
		delete(r.db.users, e.UserID)
	}
	return nil
}

// --- clients ---

type stubClientRepo struct{ db *memDB }

func (r *stubClientRepo) Create(_ context.Context, c *domain.Client) error {
	clone := *c
	clone.ContactPersons = nil
	r.db.clients[c.ID] = &clone
	for _, cp := range c.ContactPersons {
		cpClone := cp
		r.db.contacts[cp.ID] = &cpClone
	}
	return nil
}

func (r *stubClientRepo) FindByID(_ context.Context, id string) (*domain.Client, error) {
	c, ok := r.db.clients[id]
	if !ok {
		return nil, domain.ErrRecordNotFound
	}
	clone := *c
	clone.ContactPersons = r.db.contactsOf(id)
	return &clone, nil
}

func (r *stubClientRepo) FindAll(_ context.Context) ([]domain.Client, error) {
	var out []domain.Client
	for id, c := range r.db.clients {
		clone := *c
		clone.ContactPersons = r.db.contactsOf(id)
		out = append(out, clone)
	}
	return out, nil
}

func (r *stubClientRepo) Delete(_ context.Context, c *domain.Client) error {
	for id, cp := range r.db.contacts {
		if cp.ClientID == c.ID {
			if cp.UserID != 0 {
				delete(r.db.users, cp.UserID)
			}
			delete(r.db.contacts, id)
		}
	}
	for id, p := range r.db.projects {
		if p.ClientID == c.ID {
			r.db.releaseEmployeesOf(id)
			delete(r.db.projects, id)
		}
	}
	delete(r.db.clients, c.ID)
	return nil
}

// --- contacts ---

type stubContactRepo struct{ db *memDB }

func (r *stubContactRepo) Save(_ context.Context, cp *domain.ContactPerson) error {
	clone := *cp
	r.db.contacts[cp.ID] = &clone
	return nil
}

func (r *stubContactRepo) FindByEmail(_ context.Context, email string) (*domain.ContactPerson, error) {
	for _, cp := range r.db.contacts {
		if cp.Email == email {
			clone := *cp
			return &clone, nil
		}
	}
	return nil, domain.ErrRecordNotFound
}

func (r *stubContactRepo) FindByClientID(_ context.Context, clientID string) ([]domain.ContactPerson, error) {
	return r.db.contactsOf(clientID), nil
}

// --- projects ---

type stubProjectRepo struct{ db *memDB }

func (r *stubProjectRepo) Save(_ context.Context, p *domain.Project) error {
	clone := *p
	r.db.projects[p.ID] = &clone
	return nil
}

func (r *stubProjectRepo) FindByID(_ context.Context, id string) (*domain.Project, error) {
	p, ok := r.db.projects[id]
	if !ok {
		return nil, domain.ErrRecordNotFound
	}
	clone := *p
	return &clone, nil
}

func (r *stubProjectRepo) FindAll(_ context.Context) ([]domain.Project, error) {
	var out []domain.Project
	for _, p := range r.db.projects {
		out = append(out, *p)
	}
	return out, nil
}

func (r *stubProjectRepo) FindByClientID(_ context.Context, clientID string) ([]domain.Project, error) {
	var out []domain.Project
	for _, p := range r.db.projects {
		if p.ClientID == clientID {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *stubProjectRepo) Delete(_ context.Context, p *domain.Project) error {
	r.db.releaseEmployeesOf(p.ID)
	delete(r.db.projects, p.ID)
	return nil
}

// --- users ---

type stubUserRepo struct{ db *memDB }

func (r *stubUserRepo) Save(_ context.Context, u *domain.User) error {
	clone := *u
	r.db.users[u.ID] = &clone
	return nil
}

func (r *stubUserRepo) FindByID(_ context.Context, id int64) (*domain.User, error) {
	u, ok := r.db.users[id]
	if !ok {
		return nil, domain.ErrRecordNotFound
	}
	clone := *u
	return &clone, nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range r.db.users {
		if u.Email == email {
			clone := *u
			return &clone, nil
		}
	}
	return nil, domain.ErrRecordNotFound
}

// --- id generation ---

type stubIDGen struct {
	counters map[string]int64
}

func newStubIDGen() *stubIDGen {
	return &stubIDGen{counters: make(map[string]int64)}
}

func (g *stubIDGen) next(name string) int64 {
	g.counters[name]++
	return g.counters[name]
}

func (g *stubIDGen) NextEmployeeID(_ context.Context) (string, error) {
	return fmt.Sprintf("JTC-%03d", g.next("employee")), nil
}

func (g *stubIDGen) NextClientID(_ context.Context) (string, error) {
	return fmt.Sprintf("CLIENT-%03d", g.next("client")), nil
}

func (g *stubIDGen) NextProjectID(_ context.Context) (string, error) {
	return fmt.Sprintf("PROJECT-%03d", g.next("project")), nil
}

func (g *stubIDGen) NextContactID(_ context.Context) (int64, error) { return g.next("contact"), nil }
func (g *stubIDGen) NextUserID(_ context.Context) (int64, error)    { return g.next("user"), nil }
