package mongo

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/jtcsoft/ems-backend/internal/core/domain"
)

const collectionProjects = "projects"

type ProjectRepository struct {
	col       *mongo.Collection
	employees *mongo.Collection
}

func NewProjectRepository(db *mongo.Database) *ProjectRepository {
	return &ProjectRepository{
		col:       db.Collection(collectionProjects),
		employees: db.Collection(collectionEmployees),
	}
}

// Save upserts the project document keyed by its id.
func (r *ProjectRepository) Save(ctx context.Context, p *domain.Project) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.col.ReplaceOne(ctx, bson.M{"_id": p.ID}, p, options.Replace().SetUpsert(true))
	return err
}

func (r *ProjectRepository) FindByID(ctx context.Context, id string) (*domain.Project, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var p domain.Project
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&p); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrRecordNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *ProjectRepository) FindAll(ctx context.Context) ([]domain.Project, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	var projects []domain.Project
	if err := cur.All(ctx, &projects); err != nil {
		return nil, err
	}
	return projects, nil
}

func (r *ProjectRepository) FindByClientID(ctx context.Context, clientID string) ([]domain.Project, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, bson.M{"client_id": clientID})
	if err != nil {
		return nil, err
	}
	var projects []domain.Project
	if err := cur.All(ctx, &projects); err != nil {
		return nil, err
	}
	return projects, nil
}

// Delete removes the project and releases its employees back to the bench in
// one transaction. Employees are never deleted here.
func (r *ProjectRepository) Delete(ctx context.Context, p *domain.Project) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	return runTxn(ctx, r.col.Database().Client(), func(sc mongo.SessionContext) error {
		filter := bson.M{"project_id": p.ID}
		if _, err := r.employees.UpdateMany(sc, filter, bson.M{"$unset": bson.M{"project_id": ""}}); err != nil {
			return err
		}
		_, err := r.col.DeleteOne(sc, bson.M{"_id": p.ID})
		return err
	})
}
