package user

import "go.mongodb.org/mongo-driver/bson/primitive"

// User represents a document in the users collection.
// Password holds the bcrypt hash, never the plaintext.
type User struct {
	ID       primitive.ObjectID `bson:"_id,omitempty"`
	Name     string             `bson:"name"`
	Email    string             `bson:"email"`
	Password string             `bson:"password"`
	Image    string             `bson:"image"`
	Places   string             `bson:"places"`
}
