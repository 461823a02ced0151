package service

import (
	"context"
	"net/http"
	"testing"

	"github.com/jtcsoft/ems-backend/internal/core/domain"
	"github.com/jtcsoft/ems-backend/internal/core/ports"
)

func newProjectFixture() (*ProjectService, *memDB) {
	db := newMemDB()
	svc := NewProjectService(
		&stubProjectRepo{db: db},
		&stubClientRepo{db: db},
		newStubIDGen(),
		discardLogger,
	)
	return svc, db
}

func futureDate(days int) domain.Date {
	return domain.NewDate(domain.Today().AddDate(0, 0, days))
}

func TestProjectService_SaveGeneratesIDAndDefaults(t *testing.T) {
	svc, db := newProjectFixture()
	db.clients["CLIENT-001"] = &domain.Client{ID: "CLIENT-001", CompanyName: "Acme Corp"}

	p, err := svc.Save(context.Background(), "client-001", &domain.Project{
		ProjectName: "Apollo",
		EndDate:     futureDate(30),
	})
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if p.ID != "PROJECT-001" {
		t.Errorf("expected PROJECT-001, got %q", p.ID)
	}
	if p.StartDate.IsZero() {
		t.Error("expected a default start date")
	}
	if p.ClientID != "CLIENT-001" {
		t.Errorf("project not linked to client, got %q", p.ClientID)
	}
}

func TestProjectService_SaveUnknownClient(t *testing.T) {
	svc, _ := newProjectFixture()
	_, err := svc.Save(context.Background(), "CLIENT-404", &domain.Project{
		ProjectName: "Apollo",
		EndDate:     futureDate(30),
	})
	assertStatus(t, err, http.StatusNotFound)
}

func TestProjectService_SaveEndDateValidation(t *testing.T) {
	svc, db := newProjectFixture()
	db.clients["CLIENT-001"] = &domain.Client{ID: "CLIENT-001", CompanyName: "Acme Corp"}
	ctx := context.Background()

	_, err := svc.Save(ctx, "CLIENT-001", &domain.Project{ProjectName: "Apollo"})
	assertStatus(t, err, http.StatusBadRequest)

	// Today is not after today.
	_, err = svc.Save(ctx, "CLIENT-001", &domain.Project{ProjectName: "Apollo", EndDate: domain.Today()})
	assertStatus(t, err, http.StatusConflict)

	_, err = svc.Save(ctx, "CLIENT-001", &domain.Project{ProjectName: "Apollo", EndDate: futureDate(-1)})
	assertStatus(t, err, http.StatusConflict)

	if len(db.projects) != 0 {
		t.Fatalf("rejected projects must not be persisted, got %d", len(db.projects))
	}

	if _, err := svc.Save(ctx, "CLIENT-001", &domain.Project{ProjectName: "Apollo", EndDate: futureDate(1)}); err != nil {
		t.Fatalf("tomorrow must be accepted: %v", err)
	}
}

func TestProjectService_UpdateDeadline(t *testing.T) {
	svc, db := newProjectFixture()
	db.clients["CLIENT-001"] = &domain.Client{ID: "CLIENT-001", CompanyName: "Acme Corp"}
	ctx := context.Background()

	p, err := svc.Save(ctx, "CLIENT-001", &domain.Project{ProjectName: "Apollo", EndDate: futureDate(30)})
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	past := futureDate(-1)
	_, err = svc.Update(ctx, p.ID, ports.UpdateProjectInput{UpdatedDeadline: &past})
	assertStatus(t, err, http.StatusConflict)
	if db.projects[p.ID].UpdatedDeadline != nil {
		t.Fatal("rejected deadline must not be stored")
	}

	future := futureDate(60)
	got, err := svc.Update(ctx, p.ID, ports.UpdateProjectInput{UpdatedDeadline: &future})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if got.UpdatedDeadline == nil || !got.UpdatedDeadline.Equal(future.Time) {
		t.Errorf("deadline not applied: %+v", got.UpdatedDeadline)
	}
	if got.ProjectName != "Apollo" {
		t.Errorf("absent fields must be preserved, got %q", got.ProjectName)
	}
}

func TestProjectService_UpdateName(t *testing.T) {
	svc, db := newProjectFixture()
	db.clients["CLIENT-001"] = &domain.Client{ID: "CLIENT-001", CompanyName: "Acme Corp"}
	ctx := context.Background()

	p, err := svc.Save(ctx, "CLIENT-001", &domain.Project{ProjectName: "Apollo", EndDate: futureDate(30)})
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	name := "Apollo v2"
	got, err := svc.Update(ctx, p.ID, ports.UpdateProjectInput{ProjectName: &name})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if got.ProjectName != "Apollo v2" {
		t.Errorf("name not updated, got %q", got.ProjectName)
	}
	if got.UpdatedDeadline != nil {
		t.Error("deadline must stay unset")
	}
}

func TestProjectService_DeleteReleasesEmployees(t *testing.T) {
	svc, db := newProjectFixture()
	db.clients["CLIENT-001"] = &domain.Client{ID: "CLIENT-001", CompanyName: "Acme Corp"}
	ctx := context.Background()

	p, err := svc.Save(ctx, "CLIENT-001", &domain.Project{ProjectName: "Apollo", EndDate: futureDate(30)})
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	db.employees["JTC-001"] = &domain.Employee{ID: "JTC-001", Name: "A", Email: "a@jtcsoft.local", ProjectID: p.ID}

	if _, err := svc.Delete(ctx, p.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if len(db.projects) != 0 {
		t.Error("project still present after delete")
	}
	e := db.employees["JTC-001"]
	if e == nil {
		t.Fatal("employee must survive project deletion")
	}
	if !e.OnBench() {
		t.Errorf("employee must be released, still on %q", e.ProjectID)
	}
}

func TestProjectService_ListByClient(t *testing.T) {
	svc, db := newProjectFixture()
	db.clients["CLIENT-001"] = &domain.Client{ID: "CLIENT-001", CompanyName: "Acme Corp"}
	ctx := context.Background()

	_, err := svc.ListByClient(ctx, "CLIENT-404")
	assertStatus(t, err, http.StatusNotFound)

	_, err = svc.ListByClient(ctx, "CLIENT-001")
	assertStatus(t, err, http.StatusNotFound)

	if _, err := svc.Save(ctx, "CLIENT-001", &domain.Project{ProjectName: "Apollo", EndDate: futureDate(30)}); err != nil {
		t.Fatalf("save: %v", err)
	}
	projects, err := svc.ListByClient(ctx, "CLIENT-001")
	if err != nil {
		t.Fatalf("list by client: %v", err)
	}
	if len(projects) != 1 {
		t.Fatalf("expected 1 project, got %d", len(projects))
	}
}

func TestProjectService_ClientByProject(t *testing.T) {
	svc, db := newProjectFixture()
	db.clients["CLIENT-001"] = &domain.Client{ID: "CLIENT-001", CompanyName: "Acme Corp"}
	ctx := context.Background()

	p, err := svc.Save(ctx, "CLIENT-001", &domain.Project{ProjectName: "Apollo", EndDate: futureDate(30)})
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	c, err := svc.ClientByProject(ctx, p.ID)
	if err != nil {
		t.Fatalf("client by project: %v", err)
	}
	if c.ID != "CLIENT-001" {
		t.Errorf("expected CLIENT-001, got %q", c.ID)
	}
}
