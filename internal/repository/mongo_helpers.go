package repository

import (
	"errors"
	"fmt"

	places_errors "places-api/pkg/errors"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// parseObjectID converts a path id into an ObjectID. A malformed id is a
// lookup failure, not a miss.
func parseObjectID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%w %q: %v", places_errors.ErrInvalidID, id, err)
	}
	return oid, nil
}

func isDuplicateKey(err error) bool {
	return mongo.IsDuplicateKeyError(err)
}

// countableError reports whether err should count as a store failure in
// metrics. Misses are normal results.
func countableError(err error) error {
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil
	}
	return err
}
