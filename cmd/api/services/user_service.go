package services

import (
	"context"
	"errors"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"portfolio-api/cmd/api/dto"
	"portfolio-api/models"
	"portfolio-api/repositories"
)

type UserService struct {
	users *repositories.UserRepository
}

func NewUserService(users *repositories.UserRepository) *UserService {
	return &UserService{users: users}
}

// GetInfo returns the caller's own account document.
func (s *UserService) GetInfo(ctx context.Context, userID string) (*models.User, error) {
	user, err := s.users.FindProfile(ctx, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

// GetPublicInfo returns the sanitized public view of a portfolio owner.
func (s *UserService) GetPublicInfo(ctx context.Context, id string) (*dto.PublicUserDTO, error) {
	user, err := s.GetInfo(ctx, id)
	if err != nil {
		return nil, err
	}
	return &dto.PublicUserDTO{
		Name:     user.Name,
		Email:    user.Email,
		Phone:    user.Phone,
		Bio:      user.Bio,
		Title:    user.Title,
		SubTitle: user.SubTitle,
		Location: user.Location,
		PhotoURL: user.PhotoURL,
	}, nil
}

// UpdateBasicInfo applies the non-nil fields of the request.
func (s *UserService) UpdateBasicInfo(ctx context.Context, userID string, req dto.UpdateBasicInfoRequest) error {
	oid, err := parseUserID(userID)
	if err != nil {
		return err
	}

	set := bson.M{}
	if req.Name != nil {
		set["name"] = *req.Name
	}
	if req.Email != nil {
		set["email"] = *req.Email
	}
	if req.Phone != nil {
		set["phone"] = *req.Phone
	}
	if req.Bio != nil {
		set["bio"] = *req.Bio
	}
	if req.Title != nil {
		set["title"] = *req.Title
	}
	if req.SubTitle != nil {
		set["sub_title"] = *req.SubTitle
	}
	if req.Location != nil {
		set["location"] = *req.Location
	}
	if req.HostURL != nil {
		set["host_url"] = *req.HostURL
	}
	if len(set) == 0 {
		return nil
	}

	if err := s.users.UpdateBasicInfo(ctx, oid, set); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrUserNotFound
		}
		if mongo.IsDuplicateKeyError(err) {
			if strings.Contains(err.Error(), "phone") {
				return ErrPhoneTaken
			}
			return ErrEmailTaken
		}
		return err
	}
	return nil
}
