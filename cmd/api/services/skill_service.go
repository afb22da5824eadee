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

type SkillService struct {
	repo *repositories.SkillRepository
}

func NewSkillService(repo *repositories.SkillRepository) *SkillService {
	return &SkillService{repo: repo}
}

func (s *SkillService) Create(ctx context.Context, userID string, req dto.CreateSkillRequest) error {
	oid, err := parseUserID(userID)
	if err != nil {
		return err
	}
	skill := &models.Skill{
		UserID:   oid,
		Name:     req.Name,
		Level:    req.Level,
		Category: req.Category,
	}
	if err := s.repo.Insert(ctx, skill); err != nil {
		return fmt.Errorf("create skill: %w", err)
	}
	return nil
}

// verifyOwnership loads the skill scoped to the owner; a miss is reported
// as forbidden, not as not-found, matching the API contract.
func (s *SkillService) verifyOwnership(ctx context.Context, userID, id string) (*models.Skill, error) {
	oid, err := parseUserID(userID)
	if err != nil {
		return nil, err
	}
	skill, err := s.repo.FindByIDForUser(ctx, id, oid)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrForbidden
		}
		return nil, err
	}
	return skill, nil
}

func (s *SkillService) Update(ctx context.Context, userID, id string, req dto.UpdateSkillRequest) error {
	skill, err := s.verifyOwnership(ctx, userID, id)
	if err != nil {
		return err
	}

	set := bson.M{}
	if req.Name != nil {
		set["name"] = *req.Name
	}
	if req.Level != nil {
		set["level"] = *req.Level
	}
	if req.Category != nil {
		set["category"] = *req.Category
	}
	if len(set) == 0 {
		return nil
	}
	return s.repo.Update(ctx, skill.ID, set)
}

func (s *SkillService) Hide(ctx context.Context, userID, id string) error {
	skill, err := s.verifyOwnership(ctx, userID, id)
	if err != nil {
		return err
	}
	return s.repo.SetHidden(ctx, skill.ID, true)
}

func (s *SkillService) Recover(ctx context.Context, userID, id string) error {
	skill, err := s.verifyOwnership(ctx, userID, id)
	if err != nil {
		return err
	}
	return s.repo.SetHidden(ctx, skill.ID, false)
}

func (s *SkillService) Remove(ctx context.Context, userID, id string) error {
	skill, err := s.verifyOwnership(ctx, userID, id)
	if err != nil {
		return err
	}
	return s.repo.Delete(ctx, skill.ID)
}

func (s *SkillService) List(ctx context.Context, userID string, f dto.SkillFilters) ([]models.Skill, dto.PageMeta, error) {
	oid, err := parseUserID(userID)
	if err != nil {
		return nil, dto.PageMeta{}, err
	}
	f.Normalize()

	filter := bson.M{}
	if f.Hidden != nil {
		filter["hidden"] = *f.Hidden
	}
	if f.Category != "" {
		filter["category"] = f.Category
	}

	skills, total, err := s.repo.ListByUser(ctx, oid, filter, f.Page, f.Limit)
	if err != nil {
		return nil, dto.PageMeta{}, err
	}
	if skills == nil {
		skills = []models.Skill{}
	}
	return skills, dto.NewPageMeta(f.Page, f.Limit, len(skills), total), nil
}

// Categories lists the caller's distinct skill categories, ascending.
func (s *SkillService) Categories(ctx context.Context, userID string) ([]string, error) {
	oid, err := parseUserID(userID)
	if err != nil {
		return nil, err
	}
	return s.repo.DistinctCategories(ctx, oid)
}
