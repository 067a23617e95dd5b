package model

// User is a row in the users table. PasswordHash holds the argon2id PHC
// string, never the submitted password.
type User struct {
	ID           int64
	Username     string
	Mail         string
	PasswordHash string
}

// RegisterRequest represents a user registration request.
type RegisterRequest struct {
	Username string `json:"username"`
	Mail     string `json:"mail"`
	Password string `json:"password"`
}

// LoginRequest represents a user login request.
type LoginRequest struct {
	Mail     string `json:"mail"`
	Password string `json:"password"`
}

// UserResponse represents user data safe for API responses (no credential
// fields).
type UserResponse struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Mail     string `json:"mail"`
}

// RegisterResponse is returned on successful registration.
type RegisterResponse struct {
	Message string       `json:"message"`
	User    UserResponse `json:"user"`
	Token   string       `json:"token"`
}

// LoginResponse is returned on successful login.
type LoginResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
}
