package repository

import (
	"context"
	"errors"
	"time"

	"places-api/internal/domain/user"
	"places-api/internal/metrics"
	places_errors "places-api/pkg/errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type MongoUserRepository struct {
	coll *mongo.Collection
}

func NewUserRepository(db *mongo.Database) UserRepository {
	return &MongoUserRepository{coll: db.Collection(UsersCollection)}
}

// Create inserts u. The unique index on email rejects duplicates at write
// time, which is reported as ErrAlreadyExists.
func (r *MongoUserRepository) Create(ctx context.Context, u *user.User) error {
	start := time.Now()
	res, err := r.coll.InsertOne(ctx, u)
	if err != nil {
		if isDuplicateKey(err) {
			metrics.ObserveStore(UsersCollection, "insert", start, nil)
			return places_errors.ErrAlreadyExists
		}
		metrics.ObserveStore(UsersCollection, "insert", start, err)
		return err
	}
	metrics.ObserveStore(UsersCollection, "insert", start, nil)
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		u.ID = oid
	}
	return nil
}

func (r *MongoUserRepository) GetAll(ctx context.Context) ([]user.User, error) {
	start := time.Now()
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		metrics.ObserveStore(UsersCollection, "find", start, err)
		return nil, err
	}
	defer cursor.Close(ctx)

	users := []user.User{}
	err = cursor.All(ctx, &users)
	metrics.ObserveStore(UsersCollection, "find", start, err)
	if err != nil {
		return nil, err
	}
	return users, nil
}

func (r *MongoUserRepository) GetByEmail(ctx context.Context, email string) (user.User, error) {
	start := time.Now()
	var u user.User
	err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&u)
	metrics.ObserveStore(UsersCollection, "find_one", start, countableError(err))
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return user.User{}, places_errors.ErrNotFound
		}
		return user.User{}, err
	}
	return u, nil
}
