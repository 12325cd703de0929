package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const RegistrationStatusRegistered = "registered"

// RegistrationGrant records a paid event registration. One per TransactionID,
// enforced by a unique index on the eventRegistrations collection.
type RegistrationGrant struct {
	ID            primitive.ObjectID `bson:"_id,omitempty"`
	TransactionID string             `bson:"transactionId"`
	EventID       string             `bson:"eventId"`
	EventTitle    string             `bson:"eventTitle"`
	ClubID        string             `bson:"clubId"`
	ClubName      string             `bson:"clubName"`
	MemberEmail   string             `bson:"memberEmail"`
	MemberName    string             `bson:"memberName"`
	ManagerEmail  string             `bson:"managerEmail"`
	Status        string             `bson:"status"`
	RegisteredAt  time.Time          `bson:"registeredAt"`
}
