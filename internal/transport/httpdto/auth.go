package httpdto

// SignupRequest is used for POST /api/users/signup
type SignupRequest struct {
	Name     string `json:"name" binding:"required,notblank"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6,bcryptmax"`
	Places   string `json:"places" binding:"required"`
}

// LoginRequest is used for POST /api/users/login
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
