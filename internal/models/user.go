package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// User is an account record in the users collection. The username is the
// stable identifier; Password holds the argon2id digest, never plaintext.
type User struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	Username string             `bson:"username" json:"username"`
	Password string             `bson:"password" json:"-"`
}
