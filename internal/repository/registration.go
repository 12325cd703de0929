package repository

import (
	"context"

	"github.com/wb-go/wbf/retry"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/rakibhassannayem/clubSphere-server/internal/domain"
)

type RegistrationRepository struct {
	col      *mongo.Collection
	strategy retry.Strategy
}

func NewRegistrationRepo(db *mongo.Database) *RegistrationRepository {
	return &RegistrationRepository{
		col:      db.Collection(colRegistrations),
		strategy: defaultStrategy(),
	}
}

func (r *RegistrationRepository) GrantIfAbsent(ctx context.Context, grant *domain.RegistrationGrant) (bool, error) {
	_, err := r.col.InsertOne(ctx, grant)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return false, nil
		}
		return false, storeErr("insert registration", err)
	}
	return true, nil
}

func (r *RegistrationRepository) ListByEvent(ctx context.Context, eventID string) ([]*domain.RegistrationGrant, error) {
	var grants []*domain.RegistrationGrant
	err := retry.Do(func() error {
		grants = nil
		cur, err := r.col.Find(ctx, bson.M{"eventId": eventID},
			options.Find().SetSort(bson.D{{Key: "registeredAt", Value: -1}}),
		)
		if err != nil {
			return err
		}
		return cur.All(ctx, &grants)
	}, r.strategy)
	if err != nil {
		return nil, storeErr("list registrations by event", err)
	}

	return grants, nil
}
