package database

import (
	"context"
	"errors"
	"fmt"
	"log"

	"places-api/internal/domain/place"
	"places-api/internal/domain/user"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"
)

// SeedConfig holds configuration for seeding the database
type SeedConfig struct {
	UserName         string
	UserEmail        string
	UserPassword     string
	PlaceholderImage string
}

// DefaultSeedConfig returns default seed configuration
func DefaultSeedConfig(placeholderImage string) *SeedConfig {
	return &SeedConfig{
		UserName:         "Matthew Nguyen",
		UserEmail:        "test@test.com",
		UserPassword:     "testers",
		PlaceholderImage: placeholderImage,
	}
}

// SeedResult holds the result of the seeding operation
type SeedResult struct {
	User         user.User
	Place        place.Place
	UserCreated  bool
	PlaceCreated bool
}

// Seed inserts one sample user and one sample place owned by that user.
// Running it twice does not duplicate anything.
func Seed(ctx context.Context, db *mongo.Database, cfg *SeedConfig) (*SeedResult, error) {
	result := &SeedResult{}

	u, created, err := seedUser(ctx, db, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to seed user: %w", err)
	}
	result.User, result.UserCreated = u, created

	p, created, err := seedPlace(ctx, db, cfg, u.ID.Hex())
	if err != nil {
		return nil, fmt.Errorf("failed to seed place: %w", err)
	}
	result.Place, result.PlaceCreated = p, created

	log.Println("Database seeding completed successfully!")
	return result, nil
}

func seedUser(ctx context.Context, db *mongo.Database, cfg *SeedConfig) (user.User, bool, error) {
	coll := db.Collection(usersCollection)

	var existing user.User
	err := coll.FindOne(ctx, bson.M{"email": cfg.UserEmail}).Decode(&existing)
	if err == nil {
		return existing, false, nil
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return user.User{}, false, err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(cfg.UserPassword), bcrypt.DefaultCost)
	if err != nil {
		return user.User{}, false, fmt.Errorf("failed to hash password: %w", err)
	}

	u := user.User{
		Name:     cfg.UserName,
		Email:    cfg.UserEmail,
		Password: string(hashedPassword),
		Image:    cfg.PlaceholderImage,
		Places:   "",
	}
	res, err := coll.InsertOne(ctx, u)
	if err != nil {
		return user.User{}, false, err
	}
	u.ID = res.InsertedID.(primitive.ObjectID)
	return u, true, nil
}

func seedPlace(ctx context.Context, db *mongo.Database, cfg *SeedConfig, creator string) (place.Place, bool, error) {
	coll := db.Collection(placesCollection)

	p := place.Place{
		Title:       "Empire State Building",
		Description: "One of the most famous skyscrapers in the world!",
		Image:       cfg.PlaceholderImage,
		Address:     "20 W 34th St, New York, NY 10001",
		Location:    place.Location{Lat: 40.7484474, Lng: -73.9871516},
		Creator:     creator,
	}

	var existing place.Place
	err := coll.FindOne(ctx, bson.M{"title": p.Title, "creator": creator}).Decode(&existing)
	if err == nil {
		return existing, false, nil
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return place.Place{}, false, err
	}

	res, err := coll.InsertOne(ctx, p)
	if err != nil {
		return place.Place{}, false, err
	}
	p.ID = res.InsertedID.(primitive.ObjectID)
	return p, true, nil
}
