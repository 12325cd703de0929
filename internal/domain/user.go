package domain

import "time"

type Role string

const (
	RoleAdmin   Role = "admin"
	RoleManager Role = "manager"
	RoleMember  Role = "member"
)

type User struct {
	Email     string    `bson:"email"`
	Name      string    `bson:"name"`
	PhotoURL  string    `bson:"photoURL,omitempty"`
	Role      Role      `bson:"role"`
	CreatedAt time.Time `bson:"createdAt"`
}

type CreateUserInput struct {
	Email    string
	Name     string
	PhotoURL string
}
