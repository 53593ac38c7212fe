package models

// RegisterRequest is the body of POST /api/register.
type RegisterRequest struct {
	UserName    string  `json:"user_name"`
	Email       string  `json:"email"`
	PhoneNumber *string `json:"phone_number,omitempty"`
	Password    string  `json:"password"`
}

// LoginRequest is the body of POST /api/login.
type LoginRequest struct {
	UserName string `json:"user_name"`
	Password string `json:"password"`
}

// RegisterResponse is returned with 201 Created after a successful
// registration.
type RegisterResponse struct {
	Success bool       `json:"success"`
	Message string     `json:"message,omitempty"`
	User    PublicUser `json:"user"`
}

// LoginResponse is returned with 200 OK after a successful login.
type LoginResponse struct {
	Success bool       `json:"success"`
	Message string     `json:"message,omitempty"`
	Token   string     `json:"token"`
	User    PublicUser `json:"user"`
}

// VerifyResponse is returned by GET /api/verify for a valid token.
type VerifyResponse struct {
	Success bool       `json:"success"`
	User    PublicUser `json:"user"`
}

// MoviesResponse wraps one catalog list.
type MoviesResponse struct {
	Success bool    `json:"success"`
	Movies  []Movie `json:"movies"`
}

// MovieResponse wraps the details of a single movie.
type MovieResponse struct {
	Success bool         `json:"success"`
	Movie   MovieDetails `json:"movie"`
}

// ErrorResponse is the body of every non-2xx API response.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
