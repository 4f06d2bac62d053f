package service

import (
	"context"
	"errors"
	"time"

	"github.com/bloglist/bloglist-go/internal/crypto"
	"github.com/bloglist/bloglist-go/internal/model"
	"github.com/bloglist/bloglist-go/internal/repository"
)

var (
	// ErrInvalidCredentials covers both unknown username and wrong
	// password; login failures never reveal which.
	ErrInvalidCredentials  = errors.New("invalid username or password")
	ErrCredentialsTooShort = errors.New("Username or password must be at least 3 characters long")
	ErrUsernameTaken       = errors.New("expected `username` to be unique")
)

const minCredentialLength = 3

// AuthService handles registration, login and user lookups.
type AuthService struct {
	users       UserStore
	jwtSecret   string
	tokenExpiry time.Duration
}

// NewAuthService creates a new AuthService.
func NewAuthService(users UserStore, secret string, expiry time.Duration) *AuthService {
	return &AuthService{
		users:       users,
		jwtSecret:   secret,
		tokenExpiry: expiry,
	}
}

// Register creates a new user account. Username and password must both be
// at least three characters; the username must be unique. The password is
// hashed before the store ever sees it.
func (s *AuthService) Register(ctx context.Context, req model.CreateUserRequest) (model.UserResponse, error) {
	if len(req.Username) < minCredentialLength || len(req.Password) < minCredentialLength {
		return model.UserResponse{}, ErrCredentialsTooShort
	}

	hash, err := crypto.HashPassword(req.Password)
	if err != nil {
		return model.UserResponse{}, err
	}

	user := &model.User{
		Username:     req.Username,
		Name:         req.Name,
		PasswordHash: hash,
	}

	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateUsername) {
			return model.UserResponse{}, ErrUsernameTaken
		}
		return model.UserResponse{}, err
	}

	return model.UserResponse{
		ID:       user.ID,
		Username: user.Username,
		Name:     user.Name,
		Blogs:    []string{},
	}, nil
}

// Login verifies credentials and issues a signed identity token. When the
// username does not resolve, a dummy hash comparison runs anyway so the
// response time does not distinguish unknown users from wrong passwords.
func (s *AuthService) Login(ctx context.Context, req model.LoginRequest) (model.LoginResponse, error) {
	user, err := s.users.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			crypto.VerifyDummy(req.Password)
			return model.LoginResponse{}, ErrInvalidCredentials
		}
		return model.LoginResponse{}, err
	}

	if !crypto.VerifyPassword(req.Password, user.PasswordHash) {
		return model.LoginResponse{}, ErrInvalidCredentials
	}

	token, err := crypto.GenerateToken(user.ID, user.Username, s.jwtSecret, s.tokenExpiry)
	if err != nil {
		return model.LoginResponse{}, err
	}

	return model.LoginResponse{
		Token:    token,
		Username: user.Username,
		Name:     user.Name,
	}, nil
}

// GetUser retrieves a user by id with their owned-blog index.
func (s *AuthService) GetUser(ctx context.Context, userID string) (model.UserResponse, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return model.UserResponse{}, err
	}
	return s.toResponse(ctx, user)
}

// ListUsers retrieves all users with their owned-blog indexes.
func (s *AuthService) ListUsers(ctx context.Context) ([]model.UserResponse, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]model.UserResponse, 0, len(users))
	for i := range users {
		resp, err := s.toResponse(ctx, &users[i])
		if err != nil {
			return nil, err
		}
		result = append(result, resp)
	}

	return result, nil
}

func (s *AuthService) toResponse(ctx context.Context, user *model.User) (model.UserResponse, error) {
	blogIDs, err := s.users.ListBlogIDs(ctx, user.ID)
	if err != nil {
		return model.UserResponse{}, err
	}
	if blogIDs == nil {
		blogIDs = []string{}
	}

	return model.UserResponse{
		ID:       user.ID,
		Username: user.Username,
		Name:     user.Name,
		Blogs:    blogIDs,
	}, nil
}
