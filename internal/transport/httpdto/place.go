package httpdto

import "places-api/internal/domain/place"

// CoordinatesDTO uses pointers so that a zero coordinate is still "present".
type CoordinatesDTO struct {
	Lat *float64 `json:"lat" binding:"required"`
	Lng *float64 `json:"lng" binding:"required"`
}

// CreatePlaceRequest is used for POST /api/places
type CreatePlaceRequest struct {
	Title       string          `json:"title" binding:"required,notblank"`
	Description string          `json:"description" binding:"required,notblank"`
	Coordinates *CoordinatesDTO `json:"coordinates" binding:"required"`
	Address     string          `json:"address" binding:"required,notblank"`
	Creator     string          `json:"creator" binding:"required,notblank"`
}

// UpdatePlaceRequest is used for PATCH /api/places/:pid
type UpdatePlaceRequest struct {
	Title       string `json:"title" binding:"required,notblank"`
	Description string `json:"description" binding:"required,notblank"`
}

type LocationDTO struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// PlaceDTO exposes the store id as a plain hex string.
type PlaceDTO struct {
	ID          string      `json:"id"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Image       string      `json:"image"`
	Address     string      `json:"address"`
	Location    LocationDTO `json:"location"`
	Creator     string      `json:"creator"`
}

type PlaceResponse struct {
	Place PlaceDTO `json:"place"`
}

type PlacesResponse struct {
	Places []PlaceDTO `json:"places"`
}

func FromPlace(p place.Place) PlaceDTO {
	return PlaceDTO{
		ID:          p.ID.Hex(),
		Title:       p.Title,
		Description: p.Description,
		Image:       p.Image,
		Address:     p.Address,
		Location:    LocationDTO{Lat: p.Location.Lat, Lng: p.Location.Lng},
		Creator:     p.Creator,
	}
}

func FromPlaceSlice(items []place.Place) []PlaceDTO {
	out := make([]PlaceDTO, 0, len(items))
	for _, p := range items {
		out = append(out, FromPlace(p))
	}
	return out
}
