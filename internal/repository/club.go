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

type ClubRepository struct {
	col      *mongo.Collection
	strategy retry.Strategy
}

func NewClubRepo(db *mongo.Database) *ClubRepository {
	return &ClubRepository{
		col:      db.Collection(colClubs),
		strategy: defaultStrategy(),
	}
}

func (r *ClubRepository) Create(ctx context.Context, club *domain.Club) error {
	res, err := r.col.InsertOne(ctx, club)
	if err != nil {
		return storeErr("insert club", err)
	}
	if id, ok := res.InsertedID.(primitive.ObjectID); ok {
		club.ID = id
	}
	return nil
}

func (r *ClubRepository) GetByID(ctx context.Context, id string) (*domain.Club, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrClubNotFound
	}

	var club domain.Club
	var findErr error
	err = retry.Do(func() error {
		findErr = r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&club)
		if errors.Is(findErr, mongo.ErrNoDocuments) {
			return nil // a miss is final, don't retry it
		}
		return findErr
	}, r.strategy)
	if err != nil {
		return nil, storeErr("get club", err)
	}
	if errors.Is(findErr, mongo.ErrNoDocuments) {
		return nil, domain.ErrClubNotFound
	}

	return &club, nil
}

func (r *ClubRepository) List(ctx context.Context, filter domain.ClubFilter) ([]*domain.Club, error) {
	query := bson.M{"status": domain.ClubStatusApproved}
	if filter.Category != "" {
		query["category"] = filter.Category
	}

	var clubs []*domain.Club
	err := retry.Do(func() error {
		clubs = nil
		cur, err := r.col.Find(ctx, query,
			options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}),
		)
		if err != nil {
			return err
		}
		return cur.All(ctx, &clubs)
	}, r.strategy)
	if err != nil {
		return nil, storeErr("list clubs", err)
	}

	return clubs, nil
}

func (r *ClubRepository) UpdateStatus(ctx context.Context, id string, status domain.ClubStatus) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrClubNotFound
	}

	res, err := r.col.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": bson.M{"status": status}})
	if err != nil {
		return storeErr("update club status", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrClubNotFound
	}
	return nil
}

// IncrementMembers bumps the denormalized memberCount by one. Not retried:
// the counter must move at most once per grant, and an ambiguous retry could
// apply it twice.
func (r *ClubRepository) IncrementMembers(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrClubNotFound
	}

	res, err := r.col.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$inc": bson.M{"memberCount": 1}})
	if err != nil {
		return storeErr("increment club members", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrClubNotFound
	}
	return nil
}
