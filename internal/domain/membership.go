package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const MembershipStatusActive = "active"

// MembershipGrant records that a paid membership exists. One per
// TransactionID, enforced by a unique index on the memberShips collection.
type MembershipGrant struct {
	ID            primitive.ObjectID `bson:"_id,omitempty"`
	TransactionID string             `bson:"transactionId"`
	ClubID        string             `bson:"clubId"`
	ClubName      string             `bson:"clubName"`
	MemberEmail   string             `bson:"memberEmail"`
	MemberName    string             `bson:"memberName"`
	ManagerEmail  string             `bson:"managerEmail"`
	Status        string             `bson:"status"`
	JoinedAt      time.Time          `bson:"joinedAt"`
}
