package repository

import (
	"context"
	"time"

	"github.com/wb-go/wbf/retry"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/rakibhassannayem/clubSphere-server/internal/domain"
)

type PaymentRepository struct {
	col      *mongo.Collection
	strategy retry.Strategy
}

func NewPaymentRepo(db *mongo.Database) *PaymentRepository {
	return &PaymentRepository{
		col:      db.Collection(colPayments),
		strategy: defaultStrategy(),
	}
}

// RecordIfAbsent appends a ledger entry keyed by transaction id. The unique
// index on transactionId makes concurrent same-key inserts race safely: one
// wins, the rest observe a duplicate key and report inserted=false. The
// insert is deliberately not retried so an ambiguous failure cannot be
// mistaken for a fresh insert.
func (r *PaymentRepository) RecordIfAbsent(ctx context.Context, entry *domain.LedgerEntry) (bool, error) {
	_, err := r.col.InsertOne(ctx, entry)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return false, nil
		}
		return false, storeErr("insert payment", err)
	}
	return true, nil
}

func (r *PaymentRepository) ListByBuyer(ctx context.Context, email string) ([]*domain.LedgerEntry, error) {
	var entries []*domain.LedgerEntry
	err := retry.Do(func() error {
		entries = nil
		cur, err := r.col.Find(ctx, bson.M{"memberEmail": email},
			options.Find().SetSort(bson.D{{Key: "paidAt", Value: -1}}),
		)
		if err != nil {
			return err
		}
		return cur.All(ctx, &entries)
	}, r.strategy)
	if err != nil {
		return nil, storeErr("list payments by buyer", err)
	}

	return entries, nil
}

func (r *PaymentRepository) ListSince(ctx context.Context, since time.Time) ([]*domain.LedgerEntry, error) {
	var entries []*domain.LedgerEntry
	err := retry.Do(func() error {
		entries = nil
		cur, err := r.col.Find(ctx, bson.M{"paidAt": bson.M{"$gte": since}})
		if err != nil {
			return err
		}
		return cur.All(ctx, &entries)
	}, r.strategy)
	if err != nil {
		return nil, storeErr("list payments since", err)
	}

	return entries, nil
}
