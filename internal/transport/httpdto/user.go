package httpdto

import "places-api/internal/domain/user"

// UserDTO represents a user in API responses. The password hash is never
// rendered.
type UserDTO struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Image  string `json:"image"`
	Places string `json:"places"`
}

type UserResponse struct {
	User UserDTO `json:"user"`
}

type UsersResponse struct {
	Users []UserDTO `json:"users"`
}

func FromUser(u user.User) UserDTO {
	return UserDTO{
		ID:     u.ID.Hex(),
		Name:   u.Name,
		Email:  u.Email,
		Image:  u.Image,
		Places: u.Places,
	}
}

func FromUserSlice(items []user.User) []UserDTO {
	out := make([]UserDTO, 0, len(items))
	for _, u := range items {
		out = append(out, FromUser(u))
	}
	return out
}
