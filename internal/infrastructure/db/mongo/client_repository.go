package mongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/jtcsoft/ems-backend/internal/core/domain"
)

const collectionClients = "clients"

type ClientRepository struct {
	col       *mongo.Collection
	contacts  *mongo.Collection
	projects  *mongo.Collection
	employees *mongo.Collection
	users     *mongo.Collection
}

func NewClientRepository(db *mongo.Database) *ClientRepository {
	return &ClientRepository{
		col:       db.Collection(collectionClients),
		contacts:  db.Collection(collectionContacts),
		projects:  db.Collection(collectionProjects),
		employees: db.Collection(collectionEmployees),
		users:     db.Collection(collectionUsers),
	}
}

// Create inserts the client and its contact persons in one transaction, so a
// duplicate contact email rolls back the whole batch.
func (r *ClientRepository) Create(ctx context.Context, c *domain.Client) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	err := runTxn(ctx, r.col.Database().Client(), func(sc mongo.SessionContext) error {
		if _, err := r.col.InsertOne(sc, c); err != nil {
			return err
		}
		if len(c.ContactPersons) == 0 {
			return nil
		}
		docs := make([]interface{}, 0, len(c.ContactPersons))
		for i := range c.ContactPersons {
			docs = append(docs, c.ContactPersons[i])
		}
		_, err := r.contacts.InsertMany(sc, docs)
		return err
	})
	if mongo.IsDuplicateKeyError(err) {
		return domain.ErrDuplicateKey
	}
	return err
}

// FindByID loads the client and assembles its contact persons.
func (r *ClientRepository) FindByID(ctx context.Context, id string) (*domain.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var c domain.Client
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&c); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrRecordNotFound
		}
		return nil, err
	}

	contacts, err := r.contactsOf(ctx, id)
	if err != nil {
		return nil, err
	}
	c.ContactPersons = contacts
	return &c, nil
}

func (r *ClientRepository) FindAll(ctx context.Context) ([]domain.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	var clients []domain.Client
	if err := cur.All(ctx, &clients); err != nil {
		return nil, err
	}

	for i := range clients {
		contacts, err := r.contactsOf(ctx, clients[i].ID)
		if err != nil {
			return nil, err
		}
		clients[i].ContactPersons = contacts
	}
	return clients, nil
}

// Delete removes the client, its contact persons and their user records, and
// its projects; employees on those projects are put back on bench. The whole
// cascade runs in one transaction.
func (r *ClientRepository) Delete(ctx context.Context, c *domain.Client) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	return runTxn(ctx, r.col.Database().Client(), func(sc mongo.SessionContext) error {
		contacts, err := r.contactsOf(sc, c.ID)
		if err != nil {
			return err
		}
		userIDs := make([]int64, 0, len(contacts))
		for _, cp := range contacts {
			if cp.UserID != 0 {
				userIDs = append(userIDs, cp.UserID)
			}
		}
		if len(userIDs) > 0 {
			if _, err := r.users.DeleteMany(sc, bson.M{"_id": bson.M{"$in": userIDs}}); err != nil {
				return err
			}
		}
		if _, err := r.contacts.DeleteMany(sc, bson.M{"client_id": c.ID}); err != nil {
			return err
		}

		cur, err := r.projects.Find(sc, bson.M{"client_id": c.ID})
		if err != nil {
			return err
		}
		var projects []domain.Project
		if err := cur.All(sc, &projects); err != nil {
			return err
		}
		if len(projects) > 0 {
			projectIDs := make([]string, 0, len(projects))
			for _, p := range projects {
				projectIDs = append(projectIDs, p.ID)
			}
			filter := bson.M{"project_id": bson.M{"$in": projectIDs}}
			if _, err := r.employees.UpdateMany(sc, filter, bson.M{"$unset": bson.M{"project_id": ""}}); err != nil {
				return err
			}
			if _, err := r.projects.DeleteMany(sc, bson.M{"client_id": c.ID}); err != nil {
				return err
			}
		}

		_, err = r.col.DeleteOne(sc, bson.M{"_id": c.ID})
		return err
	})
}

func (r *ClientRepository) contactsOf(ctx context.Context, clientID string) ([]domain.ContactPerson, error) {
	cur, err := r.contacts.Find(ctx, bson.M{"client_id": clientID})
	if err != nil {
		return nil, err
	}
	var contacts []domain.ContactPerson
	if err := cur.All(ctx, &contacts); err != nil {
		return nil, err
	}
	return contacts, nil
}
