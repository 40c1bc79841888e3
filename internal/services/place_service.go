package services

import (
	"context"
	"errors"
	"fmt"

	"places-api/internal/domain/place"
	"places-api/internal/repository"
	places_errors "places-api/pkg/errors"
)

// PlaceService implements the place operations on top of a PlaceRepository.
type PlaceService struct {
	repo             repository.PlaceRepository
	placeholderImage string
}

// NewPlaceService creates a place service. Every created place gets
// placeholderImage as its image.
func NewPlaceService(repo repository.PlaceRepository, placeholderImage string) *PlaceService {
	return &PlaceService{repo: repo, placeholderImage: placeholderImage}
}

// CreatePlaceInput is a validated create request.
type CreatePlaceInput struct {
	Title       string
	Description string
	Address     string
	Lat         float64
	Lng         float64
	Creator     string
}

// UpdatePlaceInput carries the only mutable fields of a place.
type UpdatePlaceInput struct {
	Title       string
	Description string
}

// GetByID returns ErrNotFound for a missing place and ErrInvalidID for a
// malformed id.
func (s *PlaceService) GetByID(ctx context.Context, id string) (place.Place, error) {
	return s.repo.GetByID(ctx, id)
}

// GetByCreator returns ErrNotFound when the creator owns no places.
func (s *PlaceService) GetByCreator(ctx context.Context, creator string) ([]place.Place, error) {
	places, err := s.repo.GetByCreator(ctx, creator)
	if err != nil {
		return nil, err
	}
	if len(places) == 0 {
		return nil, places_errors.ErrNotFound
	}
	return places, nil
}

// Create stores a new place. Write failures are wrapped in ErrSaveFailed.
func (s *PlaceService) Create(ctx context.Context, input CreatePlaceInput) (place.Place, error) {
	p := place.Place{
		Title:       input.Title,
		Description: input.Description,
		Image:       s.placeholderImage,
		Address:     input.Address,
		Location:    place.Location{Lat: input.Lat, Lng: input.Lng},
		Creator:     input.Creator,
	}
	if err := s.repo.Create(ctx, &p); err != nil {
		return place.Place{}, fmt.Errorf("%w: %w", places_errors.ErrSaveFailed, err)
	}
	return p, nil
}

// Update changes title and description only.
func (s *PlaceService) Update(ctx context.Context, id string, input UpdatePlaceInput) (place.Place, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return place.Place{}, err
	}

	p.Title = input.Title
	p.Description = input.Description

	if err := s.repo.UpdateDetails(ctx, p); err != nil {
		return place.Place{}, fmt.Errorf("%w: %w", places_errors.ErrSaveFailed, err)
	}
	return p, nil
}

// Delete removes a place after checking it exists.
func (s *PlaceService) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, places_errors.ErrNotFound) {
			// removed by a concurrent request between fetch and delete
			return err
		}
		return fmt.Errorf("%w: %w", places_errors.ErrSaveFailed, err)
	}
	return nil
}
