package repository

import (
	"context"
	"errors"
	"time"

	"places-api/internal/domain/place"
	"places-api/internal/metrics"
	places_errors "places-api/pkg/errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type MongoPlaceRepository struct {
	coll *mongo.Collection
}

func NewPlaceRepository(db *mongo.Database) PlaceRepository {
	return &MongoPlaceRepository{coll: db.Collection(PlacesCollection)}
}

func (r *MongoPlaceRepository) Create(ctx context.Context, p *place.Place) error {
	start := time.Now()
	res, err := r.coll.InsertOne(ctx, p)
	metrics.ObserveStore(PlacesCollection, "insert", start, err)
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		p.ID = oid
	}
	return nil
}

func (r *MongoPlaceRepository) GetByID(ctx context.Context, id string) (place.Place, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return place.Place{}, err
	}

	start := time.Now()
	var p place.Place
	err = r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&p)
	metrics.ObserveStore(PlacesCollection, "find_one", start, countableError(err))
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return place.Place{}, places_errors.ErrNotFound
		}
		return place.Place{}, err
	}
	return p, nil
}

func (r *MongoPlaceRepository) GetByCreator(ctx context.Context, creator string) ([]place.Place, error) {
	start := time.Now()
	cursor, err := r.coll.Find(ctx, bson.M{"creator": creator})
	if err != nil {
		metrics.ObserveStore(PlacesCollection, "find", start, err)
		return nil, err
	}
	defer cursor.Close(ctx)

	places := []place.Place{}
	err = cursor.All(ctx, &places)
	metrics.ObserveStore(PlacesCollection, "find", start, err)
	if err != nil {
		return nil, err
	}
	return places, nil
}

// UpdateDetails writes title and description only; every other field of p
// is ignored.
func (r *MongoPlaceRepository) UpdateDetails(ctx context.Context, p place.Place) error {
	start := time.Now()
	res, err := r.coll.UpdateOne(ctx,
		bson.M{"_id": p.ID},
		bson.M{"$set": bson.M{"title": p.Title, "description": p.Description}},
	)
	metrics.ObserveStore(PlacesCollection, "update", start, err)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return places_errors.ErrNotFound
	}
	return nil
}

func (r *MongoPlaceRepository) Delete(ctx context.Context, id string) error {
	oid, err := parseObjectID(id)
	if err != nil {
		return err
	}

	start := time.Now()
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	metrics.ObserveStore(PlacesCollection, "delete", start, err)
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return places_errors.ErrNotFound
	}
	return nil
}
