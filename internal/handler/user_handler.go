package handler

import (
	"net/http"

	"places-api/internal/services"
	"places-api/internal/transport/httpdto"
	places_errors "places-api/pkg/errors"

	"github.com/gin-gonic/gin"
)

// UserHandler handles GET /api/users.
type UserHandler struct {
	service *services.UserService
}

// NewUserHandler creates a user handler.
func NewUserHandler(service *services.UserService) *UserHandler {
	return &UserHandler{service: service}
}

// List handles GET /api/users. Password hashes are never rendered.
func (h *UserHandler) List(c *gin.Context) {
	items, err := h.service.List(c.Request.Context())
	if err != nil {
		_ = c.Error(places_errors.StoreFailure(err, "Fetching users failed, please try again later."))
		return
	}

	c.JSON(http.StatusOK, httpdto.UsersResponse{Users: httpdto.FromUserSlice(items)})
}
