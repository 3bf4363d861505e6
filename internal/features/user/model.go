package user

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Role string

const (
	RoleResearcher Role = "researcher"
	RoleAdmin      Role = "admin"
)

// User mirrors the profiles table of the managed store.
type User struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name       string             `bson:"name" json:"name"`
	Email      string             `bson:"email" json:"email"`
	Position   string             `bson:"position,omitempty" json:"position,omitempty"`
	Department string             `bson:"department,omitempty" json:"department,omitempty"`
	Role       Role               `bson:"role" json:"role"`
	CreatedAt  time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt  time.Time          `bson:"updated_at" json:"updated_at"`
}
