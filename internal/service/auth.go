package service

import (
	"context"
	"errors"
	"time"

	"github.com/snapvault/snapvault-go/internal/crypto"
	"github.com/snapvault/snapvault-go/internal/model"
	"github.com/snapvault/snapvault-go/internal/repository"
)

var (
	ErrInvalidCredentials = errors.New("invalid mail or password")
	ErrUsernameRequired   = errors.New("username is required")
	ErrMailRequired       = errors.New("mail is required")
	ErrPasswordRequired   = errors.New("password is required")
	ErrMailTaken          = errors.New("email is already taken")
)

// UserStore is the persistence surface the auth service needs.
type UserStore interface {
	Create(ctx context.Context, user *model.User) error
	GetByMail(ctx context.Context, mail string) (*model.User, error)
	GetByID(ctx context.Context, id int64) (*model.User, error)
	List(ctx context.Context) ([]model.User, error)
}

// AuthService handles registration, login and user lookups.
type AuthService struct {
	users     UserStore
	jwtSecret string
	jwtExpiry time.Duration
}

// NewAuthService creates a new AuthService.
func NewAuthService(users UserStore, secret string, expiry time.Duration) *AuthService {
	return &AuthService{
		users:     users,
		jwtSecret: secret,
		jwtExpiry: expiry,
	}
}

// Register creates a new user account and returns the created identity with
// a fresh token. The password is stored as an argon2id hash only.
func (s *AuthService) Register(ctx context.Context, req model.RegisterRequest) (model.RegisterResponse, error) {
	if req.Username == "" {
		return model.RegisterResponse{}, ErrUsernameRequired
	}
	if req.Mail == "" {
		return model.RegisterResponse{}, ErrMailRequired
	}
	if req.Password == "" {
		return model.RegisterResponse{}, ErrPasswordRequired
	}

	// Pre-check gives the common duplicate a clean answer; the UNIQUE
	// constraint still catches the concurrent-registration race on insert.
	if _, err := s.users.GetByMail(ctx, req.Mail); err == nil {
		return model.RegisterResponse{}, ErrMailTaken
	} else if !errors.Is(err, repository.ErrUserNotFound) {
		return model.RegisterResponse{}, err
	}

	hash, err := crypto.HashPassword(req.Password)
	if err != nil {
		return model.RegisterResponse{}, err
	}

	user := &model.User{
		Username:     req.Username,
		Mail:         req.Mail,
		PasswordHash: hash,
	}

	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateMail) {
			return model.RegisterResponse{}, ErrMailTaken
		}
		return model.RegisterResponse{}, err
	}

	token, err := crypto.GenerateToken(user.ID, user.Username, user.Mail, s.jwtSecret, s.jwtExpiry)
	if err != nil {
		return model.RegisterResponse{}, err
	}

	return model.RegisterResponse{
		Message: "Successfully registered",
		User: model.UserResponse{
			ID:       user.ID,
			Username: user.Username,
			Mail:     user.Mail,
		},
		Token: token,
	}, nil
}

// Login authenticates a user and returns a fresh token. Unknown mail and a
// wrong password produce the same error so accounts cannot be enumerated.
func (s *AuthService) Login(ctx context.Context, req model.LoginRequest) (model.LoginResponse, error) {
	user, err := s.users.GetByMail(ctx, req.Mail)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return model.LoginResponse{}, ErrInvalidCredentials
		}
		return model.LoginResponse{}, err
	}

	match, err := crypto.VerifyPassword(req.Password, user.PasswordHash)
	if err != nil {
		return model.LoginResponse{}, err
	}
	if !match {
		return model.LoginResponse{}, ErrInvalidCredentials
	}

	token, err := crypto.GenerateToken(user.ID, user.Username, user.Mail, s.jwtSecret, s.jwtExpiry)
	if err != nil {
		return model.LoginResponse{}, err
	}

	return model.LoginResponse{Message: "Success", Token: token}, nil
}

// ListUsers returns all users with credential fields excluded.
func (s *AuthService) ListUsers(ctx context.Context) ([]model.UserResponse, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, err
	}

	resp := make([]model.UserResponse, 0, len(users))
	for _, u := range users {
		resp = append(resp, model.UserResponse{ID: u.ID, Username: u.Username, Mail: u.Mail})
	}

	return resp, nil
}

// GetUser retrieves a single user by ID with credential fields excluded.
func (s *AuthService) GetUser(ctx context.Context, id int64) (model.UserResponse, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return model.UserResponse{}, err
	}

	return model.UserResponse{ID: user.ID, Username: user.Username, Mail: user.Mail}, nil
}
