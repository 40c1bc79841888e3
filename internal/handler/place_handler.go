package handler

import (
	"errors"
	"net/http"

	"places-api/internal/services"
	"places-api/internal/transport/httpdto"
	places_errors "places-api/pkg/errors"

	"github.com/gin-gonic/gin"
)

const placeNotFoundMessage = "Could not find a place for the provided id."

// PlaceHandler handles the /api/places endpoints.
type PlaceHandler struct {
	service *services.PlaceService
}

// NewPlaceHandler creates a place handler.
func NewPlaceHandler(service *services.PlaceService) *PlaceHandler {
	return &PlaceHandler{service: service}
}

// GetByID handles GET /api/places/:pid.
func (h *PlaceHandler) GetByID(c *gin.Context) {
	p, err := h.service.GetByID(c.Request.Context(), c.Param("pid"))
	if err != nil {
		if errors.Is(err, places_errors.ErrNotFound) {
			_ = c.Error(places_errors.NotFound(placeNotFoundMessage))
			return
		}
		_ = c.Error(places_errors.StoreFailure(err, "Something went wrong, could not find a place with that ID."))
		return
	}

	c.JSON(http.StatusOK, httpdto.PlaceResponse{Place: httpdto.FromPlace(p)})
}

// GetByUserID handles GET /api/places/user/:uid. A user without places is a
// 404, not an empty list.
func (h *PlaceHandler) GetByUserID(c *gin.Context) {
	places, err := h.service.GetByCreator(c.Request.Context(), c.Param("uid"))
	if err != nil {
		if errors.Is(err, places_errors.ErrNotFound) {
			_ = c.Error(places_errors.NotFound("Could not find places for the provided user id."))
			return
		}
		_ = c.Error(places_errors.StoreFailure(err, "Fetching places failed, please try again later."))
		return
	}

	c.JSON(http.StatusOK, httpdto.PlacesResponse{Places: httpdto.FromPlaceSlice(places)})
}

// Create handles POST /api/places.
func (h *PlaceHandler) Create(c *gin.Context) {
	var req httpdto.CreatePlaceRequest
	if !bindJSON(c, &req) {
		return
	}

	p, err := h.service.Create(c.Request.Context(), services.CreatePlaceInput{
		Title:       req.Title,
		Description: req.Description,
		Address:     req.Address,
		Lat:         *req.Coordinates.Lat,
		Lng:         *req.Coordinates.Lng,
		Creator:     req.Creator,
	})
	if err != nil {
		_ = c.Error(places_errors.StoreFailure(err, "Creating place failed, please try again."))
		return
	}

	c.JSON(http.StatusCreated, httpdto.PlaceResponse{Place: httpdto.FromPlace(p)})
}

// Update handles PATCH /api/places/:pid.
func (h *PlaceHandler) Update(c *gin.Context) {
	var req httpdto.UpdatePlaceRequest
	if !bindJSON(c, &req) {
		return
	}

	p, err := h.service.Update(c.Request.Context(), c.Param("pid"), services.UpdatePlaceInput{
		Title:       req.Title,
		Description: req.Description,
	})
	if err != nil {
		if errors.Is(err, places_errors.ErrNotFound) {
			_ = c.Error(places_errors.NotFound(placeNotFoundMessage))
			return
		}
		_ = c.Error(places_errors.StoreFailure(err, "Something went wrong, could not update place."))
		return
	}

	c.JSON(http.StatusOK, httpdto.PlaceResponse{Place: httpdto.FromPlace(p)})
}

// Delete handles DELETE /api/places/:pid.
func (h *PlaceHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("pid")); err != nil {
		if errors.Is(err, places_errors.ErrNotFound) {
			_ = c.Error(places_errors.NotFound(placeNotFoundMessage))
			return
		}
		_ = c.Error(places_errors.StoreFailure(err, "Something went wrong, could not delete place."))
		return
	}

	c.JSON(http.StatusOK, httpdto.NewMessageResponse("Deleted place."))
}
