package repository

import (
	"context"

	"places-api/internal/domain/place"
	"places-api/internal/domain/user"
)

// Collection names
const (
	PlacesCollection = "places"
	UsersCollection  = "users"
)

type PlaceRepository interface {
	Create(ctx context.Context, p *place.Place) error
	GetByID(ctx context.Context, id string) (place.Place, error)
	GetByCreator(ctx context.Context, creator string) ([]place.Place, error)
	UpdateDetails(ctx context.Context, p place.Place) error
	Delete(ctx context.Context, id string) error
}

type UserRepository interface {
	Create(ctx context.Context, u *user.User) error
	GetAll(ctx context.Context) ([]user.User, error)
	GetByEmail(ctx context.Context, email string) (user.User, error)
}
