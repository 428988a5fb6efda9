package auth

// RegisterRequest represents the registration request payload.
// `validate` tags are checked by the validation package; `example` tags feed Swagger.
type RegisterRequest struct {
	Name     string `json:"name" validate:"required,min=1,max=100" example:"John Doe"`
	Email    string `json:"email" validate:"required,email" example:"john@example.com"`
	Password string `json:"password" validate:"required,min=6,max=72" example:"password123"`
}

// LoginRequest represents the login request payload.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email" example:"john@example.com"`
	Password string `json:"password" validate:"required" example:"password123"`
}

// TokenResponse is returned by both register and login.
type TokenResponse struct {
	Token string `json:"token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
}
