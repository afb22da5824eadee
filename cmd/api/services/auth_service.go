package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.mongodb.org/mongo-driver/mongo"

	"portfolio-api/cmd/api/auth"
	"portfolio-api/cmd/api/dto"
	"portfolio-api/models"
	"portfolio-api/repositories"
)

type AuthService struct {
	users *repositories.UserRepository
	jwt   *auth.JWTManager
}

func NewAuthService(users *repositories.UserRepository, jwt *auth.JWTManager) *AuthService {
	return &AuthService{users: users, jwt: jwt}
}

// Register creates an account with a hashed password. Duplicate email or
// phone surfaces as a typed conflict.
func (s *AuthService) Register(ctx context.Context, req dto.RegisterRequest) error {
	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	user := &models.User{
		Name:         req.Name,
		Email:        req.Email,
		Phone:        req.Phone,
		PasswordHash: hash,
	}
	if _, err := s.users.Insert(ctx, user); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			if strings.Contains(err.Error(), "phone") {
				return ErrPhoneTaken
			}
			return ErrEmailTaken
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// Login resolves the identifier against email and phone, checks the
// password and issues an access token. Unknown identifier and wrong
// password are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, identifier, password string) (*models.User, string, error) {
	user, err := s.users.FindByEmailOrPhone(ctx, identifier)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", err
	}

	if !auth.VerifyPassword(user.PasswordHash, password) {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.jwt.Sign(user.ID.Hex(), user.Name)
	if err != nil {
		return nil, "", fmt.Errorf("sign token: %w", err)
	}
	return user, token, nil
}

// ParseAccessToken verifies a token and returns its subject user id.
func (s *AuthService) ParseAccessToken(token string) (string, error) {
	return s.jwt.Parse(token)
}
