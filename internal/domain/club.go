package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ClubStatus string

const (
	ClubStatusPending  ClubStatus = "pending"
	ClubStatusApproved ClubStatus = "approved"
	ClubStatusRejected ClubStatus = "rejected"
)

type Club struct {
	ID            primitive.ObjectID `bson:"_id,omitempty"`
	ClubName      string             `bson:"clubName"`
	Category      string             `bson:"category"`
	Description   string             `bson:"description"`
	BannerImage   string             `bson:"bannerImage,omitempty"`
	MembershipFee int64              `bson:"membershipFee"`
	ManagerEmail  string             `bson:"managerEmail"`
	Status        ClubStatus         `bson:"status"`
	MemberCount   int64              `bson:"memberCount"`
	CreatedAt     time.Time          `bson:"createdAt"`
}

type CreateClubInput struct {
	ClubName      string
	Category      string
	Description   string
	BannerImage   string
	MembershipFee int64
	ManagerEmail  string
}

// ClubFilter narrows public club listings. Listings only ever expose
// approved clubs; Category is an optional equality filter.
type ClubFilter struct {
	Category string
}
