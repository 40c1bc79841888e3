package handler

import (
	"errors"
	"net/http"

	"places-api/internal/services"
	"places-api/internal/transport/httpdto"
	places_errors "places-api/pkg/errors"

	"github.com/gin-gonic/gin"
)

// AuthHandler handles signup and login.
type AuthHandler struct {
	service *services.AuthService
}

// NewAuthHandler creates an auth handler.
func NewAuthHandler(service *services.AuthService) *AuthHandler {
	return &AuthHandler{service: service}
}

// Signup handles POST /api/users/signup.
func (h *AuthHandler) Signup(c *gin.Context) {
	var req httpdto.SignupRequest
	if !bindJSON(c, &req) {
		return
	}

	u, err := h.service.Signup(c.Request.Context(), services.SignupInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Places:   req.Places,
	})
	if err != nil {
		switch {
		case errors.Is(err, places_errors.ErrInvalidInput):
			_ = c.Error(places_errors.ValidationError(err))
		case errors.Is(err, places_errors.ErrAlreadyExists):
			_ = c.Error(places_errors.Conflict("User exists already, please login instead."))
		case errors.Is(err, places_errors.ErrSaveFailed):
			_ = c.Error(places_errors.StoreFailure(err, "Signing up failed at saving, please try again later."))
		default:
			_ = c.Error(places_errors.StoreFailure(err, "Signing up failed, please try again later."))
		}
		return
	}

	c.JSON(http.StatusCreated, httpdto.UserResponse{User: httpdto.FromUser(u)})
}

// Login handles POST /api/users/login. Nothing is issued on success.
func (h *AuthHandler) Login(c *gin.Context) {
	var req httpdto.LoginRequest
	if !bindJSON(c, &req) {
		return
	}

	err := h.service.Login(c.Request.Context(), services.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		if errors.Is(err, places_errors.ErrUnauthorized) {
			_ = c.Error(places_errors.Unauthorized("Invalid credentials, could not log you in."))
			return
		}
		_ = c.Error(places_errors.StoreFailure(err, "Logging in failed, please try again later."))
		return
	}

	c.JSON(http.StatusOK, httpdto.NewMessageResponse("Logged in!"))
}
