package services

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"

	"portfolio-api/cmd/api/dto"
	"portfolio-api/models"
	"portfolio-api/repositories"
)

type SocialLinkService struct {
	repo *repositories.SocialLinkRepository
}

func NewSocialLinkService(repo *repositories.SocialLinkRepository) *SocialLinkService {
	return &SocialLinkService{repo: repo}
}

func (s *SocialLinkService) Create(ctx context.Context, userID string, req dto.CreateSocialLinkRequest) error {
	oid, err := parseUserID(userID)
	if err != nil {
		return err
	}
	link := &models.SocialLink{
		UserID:       oid,
		Name:         req.Name,
		RedirectLink: req.RedirectLink,
	}
	if err := s.repo.Insert(ctx, link); err != nil {
		return fmt.Errorf("create social link: %w", err)
	}
	return nil
}

func (s *SocialLinkService) verifyOwnership(ctx context.Context, userID, id string) (*models.SocialLink, error) {
	oid, err := parseUserID(userID)
	if err != nil {
		return nil, err
	}
	link, err := s.repo.FindByIDForUser(ctx, id, oid)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrForbidden
		}
		return nil, err
	}
	return link, nil
}

func (s *SocialLinkService) Update(ctx context.Context, userID, id string, req dto.UpdateSocialLinkRequest) error {
	link, err := s.verifyOwnership(ctx, userID, id)
	if err != nil {
		return err
	}

	set := bson.M{}
	if req.Name != nil {
		set["name"] = *req.Name
	}
	if req.RedirectLink != nil {
		set["redirect_link"] = *req.RedirectLink
	}
	if len(set) == 0 {
		return nil
	}
	return s.repo.Update(ctx, link.ID, set)
}

func (s *SocialLinkService) Hide(ctx context.Context, userID, id string) error {
	link, err := s.verifyOwnership(ctx, userID, id)
	if err != nil {
		return err
	}
	return s.repo.SetHidden(ctx, link.ID, true)
}

func (s *SocialLinkService) Recover(ctx context.Context, userID, id string) error {
	link, err := s.verifyOwnership(ctx, userID, id)
	if err != nil {
		return err
	}
	return s.repo.SetHidden(ctx, link.ID, false)
}

func (s *SocialLinkService) Remove(ctx context.Context, userID, id string) error {
	link, err := s.verifyOwnership(ctx, userID, id)
	if err != nil {
		return err
	}
	return s.repo.Delete(ctx, link.ID)
}

func (s *SocialLinkService) List(ctx context.Context, userID string, f dto.SocialLinkFilters) ([]models.SocialLink, dto.PageMeta, error) {
	oid, err := parseUserID(userID)
	if err != nil {
		return nil, dto.PageMeta{}, err
	}
	f.Normalize()

	filter := bson.M{}
	if f.Hidden != nil {
		filter["hidden"] = *f.Hidden
	}

	links, total, err := s.repo.ListByUser(ctx, oid, filter, f.Page, f.Limit)
	if err != nil {
		return nil, dto.PageMeta{}, err
	}
	if links == nil {
		links = []models.SocialLink{}
	}
	return links, dto.NewPageMeta(f.Page, f.Limit, len(links), total), nil
}
