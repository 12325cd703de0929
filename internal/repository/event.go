package repository

import (
	"context"
	"errors"

	"github.com/wb-go/wbf/retry"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/rakibhassannayem/clubSphere-server/internal/domain"
)

type EventRepository struct {
	col      *mongo.Collection
	strategy retry.Strategy
}

func NewEventRepo(db *mongo.Database) *EventRepository {
	return &EventRepository{
		col:      db.Collection(colEvents),
		strategy: defaultStrategy(),
	}
}

func (r *EventRepository) Create(ctx context.Context, event *domain.Event) error {
	res, err := r.col.InsertOne(ctx, event)
	if err != nil {
		return storeErr("insert event", err)
	}
	if id, ok := res.InsertedID.(primitive.ObjectID); ok {
		event.ID = id
	}
	return nil
}

func (r *EventRepository) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrEventNotFound
	}

	var event domain.Event
	var findErr error
	err = retry.Do(func() error {
		findErr = r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&event)
		if errors.Is(findErr, mongo.ErrNoDocuments) {
			return nil // a miss is final, don't retry it
		}
		return findErr
	}, r.strategy)
	if err != nil {
		return nil, storeErr("get event", err)
	}
	if errors.Is(findErr, mongo.ErrNoDocuments) {
		return nil, domain.ErrEventNotFound
	}

	return &event, nil
}

func (r *EventRepository) List(ctx context.Context, clubID string) ([]*domain.Event, error) {
	query := bson.M{}
	if clubID != "" {
		query["clubId"] = clubID
	}

	var events []*domain.Event
	err := retry.Do(func() error {
		events = nil
		cur, err := r.col.Find(ctx, query,
			options.Find().SetSort(bson.D{{Key: "eventDate", Value: -1}}),
		)
		if err != nil {
			return err
		}
		return cur.All(ctx, &events)
	}, r.strategy)
	if err != nil {
		return nil, storeErr("list events", err)
	}

	return events, nil
}

// IncrementRegistrations bumps the denormalized registrationCount by one.
// Same at-most-once rule as club member counts: no retry.
func (r *EventRepository) IncrementRegistrations(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrEventNotFound
	}

	res, err := r.col.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$inc": bson.M{"registrationCount": 1}})
	if err != nil {
		return storeErr("increment event registrations", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrEventNotFound
	}
	return nil
}
