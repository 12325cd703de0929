package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Event struct {
	ID                primitive.ObjectID `bson:"_id,omitempty"`
	ClubID            string             `bson:"clubId"`
	ClubName          string             `bson:"clubName"`
	Title             string             `bson:"eventTitle"`
	Description       string             `bson:"description"`
	BannerImage       string             `bson:"bannerImage,omitempty"`
	Location          string             `bson:"location"`
	EventDate         time.Time          `bson:"eventDate"`
	EventFee          int64              `bson:"eventFee"`
	ManagerEmail      string             `bson:"managerEmail"`
	RegistrationCount int64              `bson:"registrationCount"`
	CreatedAt         time.Time          `bson:"createdAt"`
}

type CreateEventInput struct {
	ClubID       string
	Title        string
	Description  string
	BannerImage  string
	Location     string
	EventDate    time.Time
	EventFee     int64
	ManagerEmail string
}
