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

type LanguageService struct {
	repo *repositories.LanguageRepository
}

func NewLanguageService(repo *repositories.LanguageRepository) *LanguageService {
	return &LanguageService{repo: repo}
}

func (s *LanguageService) Create(ctx context.Context, userID string, req dto.CreateLanguageRequest) error {
	oid, err := parseUserID(userID)
	if err != nil {
		return err
	}
	language := &models.Language{
		UserID:   oid,
		Language: req.Language,
		Level:    req.Level,
	}
	if err := s.repo.Insert(ctx, language); err != nil {
		return fmt.Errorf("create language: %w", err)
	}
	return nil
}

func (s *LanguageService) verifyOwnership(ctx context.Context, userID, id string) (*models.Language, error) {
	oid, err := parseUserID(userID)
	if err != nil {
		return nil, err
	}
	language, err := s.repo.FindByIDForUser(ctx, id, oid)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrForbidden
		}
		return nil, err
	}
	return language, nil
}

func (s *LanguageService) Update(ctx context.Context, userID, id string, req dto.UpdateLanguageRequest) error {
	language, err := s.verifyOwnership(ctx, userID, id)
	if err != nil {
		return err
	}

	set := bson.M{}
	if req.Language != nil {
		set["language"] = *req.Language
	}
	if req.Level != nil {
		set["level"] = *req.Level
	}
	if len(set) == 0 {
		return nil
	}
	return s.repo.Update(ctx, language.ID, set)
}

func (s *LanguageService) Hide(ctx context.Context, userID, id string) error {
	language, err := s.verifyOwnership(ctx, userID, id)
	if err != nil {
		return err
	}
	return s.repo.SetHidden(ctx, language.ID, true)
}

func (s *LanguageService) Recover(ctx context.Context, userID, id string) error {
	language, err := s.verifyOwnership(ctx, userID, id)
	if err != nil {
		return err
	}
	return s.repo.SetHidden(ctx, language.ID, false)
}

func (s *LanguageService) Remove(ctx context.Context, userID, id string) error {
	language, err := s.verifyOwnership(ctx, userID, id)
	if err != nil {
		return err
	}
	return s.repo.Delete(ctx, language.ID)
}

func (s *LanguageService) List(ctx context.Context, userID string, f dto.LanguageFilters) ([]models.Language, dto.PageMeta, error) {
	oid, err := parseUserID(userID)
	if err != nil {
		return nil, dto.PageMeta{}, err
	}
	f.Normalize()

	filter := bson.M{}
	if f.Hidden != nil {
		filter["hidden"] = *f.Hidden
	}

	languages, total, err := s.repo.ListByUser(ctx, oid, filter, f.Page, f.Limit)
	if err != nil {
		return nil, dto.PageMeta{}, err
	}
	if languages == nil {
		languages = []models.Language{}
	}
	return languages, dto.NewPageMeta(f.Page, f.Limit, len(languages), total), nil
}
