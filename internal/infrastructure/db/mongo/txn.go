package mongo

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"
)

// runTxn executes fn inside a single multi-document transaction. Cascading
// deletes rely on this so a partial cascade never becomes visible.
func runTxn(ctx context.Context, client *mongo.Client, fn func(ctx mongo.SessionContext) error) error {
	session, err := client.StartSession()
	if err != nil {
		return err
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		return nil, fn(sc)
	})
	return err
}
