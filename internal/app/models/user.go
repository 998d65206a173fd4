package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// User represents an API account in the users collection. Only the
// bcrypt digest of the password is ever stored; it is excluded from
// JSON serialization entirely.
type User struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Username       string             `bson:"username" json:"username"`
	Email          string             `bson:"email" json:"email"`
	HashedPassword string             `bson:"hashed_password" json:"-"`
	IsActive       bool               `bson:"is_active" json:"is_active"`
	IsAdmin        bool               `bson:"is_admin" json:"is_admin"`
}
