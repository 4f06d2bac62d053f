package model

import "time"

// User represents a user in the database. Blogs is the denormalized index
// of blog ids the user created, in insertion order.
type User struct {
	ID           string
	Username     string
	Name         string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// CreateUserRequest represents a user registration request.
type CreateUserRequest struct {
	Username string `json:"username"`
	Name     string `json:"name"`
	Password string `json:"password"`
}

// LoginRequest represents a user login request.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse carries the issued token together with the public identity
// fields the client displays.
type LoginResponse struct {
	Token    string `json:"token"`
	Username string `json:"username"`
	Name     string `json:"name"`
}

// UserResponse represents user data safe for API responses. The password
// hash is never serialized.
type UserResponse struct {
	ID       string   `json:"id"`
	Username string   `json:"username"`
	Name     string   `json:"name"`
	Blogs    []string `json:"blogs"`
}

// UserRef is the minimal owner projection embedded in blog responses.
type UserRef struct {
	Username string `json:"username"`
	Name     string `json:"name"`
}
