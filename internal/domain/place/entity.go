package place

import "go.mongodb.org/mongo-driver/bson/primitive"

// Place represents a document in the places collection
type Place struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Title       string             `bson:"title"`
	Description string             `bson:"description"`
	Image       string             `bson:"image"`
	Address     string             `bson:"address"`
	Location    Location           `bson:"location"`
	Creator     string             `bson:"creator"`
}

// Location is the geographic point of a place
type Location struct {
	Lat float64 `bson:"lat"`
	Lng float64 `bson:"lng"`
}
