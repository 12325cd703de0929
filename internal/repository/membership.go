package repository

import (
	"context"

	"github.com/wb-go/wbf/retry"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/rakibhassannayem/clubSphere-server/internal/domain"
)

type MembershipRepository struct {
	col      *mongo.Collection
	strategy retry.Strategy
}

func NewMembershipRepo(db *mongo.Database) *MembershipRepository {
	return &MembershipRepository{
		col:      db.Collection(colMemberships),
		strategy: defaultStrategy(),
	}
}

// GrantIfAbsent has the same contract as the ledger insert: the unique
// transactionId index decides races, losers see inserted=false and must skip
// the dependent counter increment.
func (r *MembershipRepository) GrantIfAbsent(ctx context.Context, grant *domain.MembershipGrant) (bool, error) {
	_, err := r.col.InsertOne(ctx, grant)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return false, nil
		}
		return false, storeErr("insert membership", err)
	}
	return true, nil
}

func (r *MembershipRepository) ListByBuyer(ctx context.Context, email string) ([]*domain.MembershipGrant, error) {
	var grants []*domain.MembershipGrant
	err := retry.Do(func() error {
		grants = nil
		cur, err := r.col.Find(ctx, bson.M{"memberEmail": email},
			options.Find().SetSort(bson.D{{Key: "joinedAt", Value: -1}}),
		)
		if err != nil {
			return err
		}
		return cur.All(ctx, &grants)
	}, r.strategy)
	if err != nil {
		return nil, storeErr("list memberships by buyer", err)
	}

	return grants, nil
}
