package repository

import (
	"context"
	"errors"

	"github.com/wb-go/wbf/retry"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/rakibhassannayem/clubSphere-server/internal/domain"
)

type UserRepository struct {
	col      *mongo.Collection
	strategy retry.Strategy
}

func NewUserRepo(db *mongo.Database) *UserRepository {
	return &UserRepository{
		col:      db.Collection(colUsers),
		strategy: defaultStrategy(),
	}
}

// CreateIfAbsent registers a user once per e-mail (unique index). A repeated
// sign-in is not an error; it reports created=false.
func (r *UserRepository) CreateIfAbsent(ctx context.Context, user *domain.User) (bool, error) {
	_, err := r.col.InsertOne(ctx, user)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return false, nil
		}
		return false, storeErr("insert user", err)
	}
	return true, nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	var user domain.User
	var findErr error
	err := retry.Do(func() error {
		findErr = r.col.FindOne(ctx, bson.M{"email": email}).Decode(&user)
		if errors.Is(findErr, mongo.ErrNoDocuments) {
			return nil // a miss is final, don't retry it
		}
		return findErr
	}, r.strategy)
	if err != nil {
		return nil, storeErr("get user", err)
	}
	if errors.Is(findErr, mongo.ErrNoDocuments) {
		return nil, domain.ErrUserNotFound
	}

	return &user, nil
}

func (r *UserRepository) SetRole(ctx context.Context, email string, role domain.Role) error {
	res, err := r.col.UpdateOne(ctx, bson.M{"email": email}, bson.M{"$set": bson.M{"role": role}})
	if err != nil {
		return storeErr("set user role", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}
