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

type ExperienceService struct {
	repo *repositories.ExperienceRepository
}

func NewExperienceService(repo *repositories.ExperienceRepository) *ExperienceService {
	return &ExperienceService{repo: repo}
}

func (s *ExperienceService) Create(ctx context.Context, userID string, req dto.CreateExperienceRequest) error {
	oid, err := parseUserID(userID)
	if err != nil {
		return err
	}

	start, err := parseDate(req.StartDate)
	if err != nil {
		return err
	}
	record := &models.Experience{
		UserID:           oid,
		Role:             req.Role,
		Company:          req.Company,
		StartDate:        start,
		Description:      req.Description,
		Responsibilities: req.Responsibilities,
	}
	if record.Responsibilities == nil {
		record.Responsibilities = []string{}
	}
	if req.EndDate != "" {
		end, err := parseDate(req.EndDate)
		if err != nil {
			return err
		}
		record.EndDate = &end
	}

	if err := s.repo.Insert(ctx, record); err != nil {
		return fmt.Errorf("create experience: %w", err)
	}
	return nil
}

func (s *ExperienceService) verifyOwnership(ctx context.Context, userID, id string) (*models.Experience, error) {
	oid, err := parseUserID(userID)
	if err != nil {
		return nil, err
	}
	record, err := s.repo.FindByIDForUser(ctx, id, oid)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrForbidden
		}
		return nil, err
	}
	return record, nil
}

func (s *ExperienceService) Update(ctx context.Context, userID, id string, req dto.UpdateExperienceRequest) error {
	record, err := s.verifyOwnership(ctx, userID, id)
	if err != nil {
		return err
	}

	set := bson.M{}
	if req.Role != nil {
		set["role"] = *req.Role
	}
	if req.Company != nil {
		set["company"] = *req.Company
	}
	if req.Description != nil {
		set["description"] = *req.Description
	}
	if req.Responsibilities != nil {
		set["responsibilities"] = *req.Responsibilities
	}
	if req.StartDate != nil {
		start, err := parseDate(*req.StartDate)
		if err != nil {
			return err
		}
		set["start_date"] = start
	}
	if req.EndDate != nil {
		if *req.EndDate == "" {
			set["end_date"] = nil
		} else {
			end, err := parseDate(*req.EndDate)
			if err != nil {
				return err
			}
			set["end_date"] = end
		}
	}
	if len(set) == 0 {
		return nil
	}
	return s.repo.Update(ctx, record.ID, set)
}

func (s *ExperienceService) Hide(ctx context.Context, userID, id string) error {
	record, err := s.verifyOwnership(ctx, userID, id)
	if err != nil {
		return err
	}
	return s.repo.SetHidden(ctx, record.ID, true)
}

func (s *ExperienceService) Recover(ctx context.Context, userID, id string) error {
	record, err := s.verifyOwnership(ctx, userID, id)
	if err != nil {
		return err
	}
	return s.repo.SetHidden(ctx, record.ID, false)
}

func (s *ExperienceService) Remove(ctx context.Context, userID, id string) error {
	record, err := s.verifyOwnership(ctx, userID, id)
	if err != nil {
		return err
	}
	return s.repo.Delete(ctx, record.ID)
}

func (s *ExperienceService) List(ctx context.Context, userID string, f dto.ExperienceFilters) ([]models.Experience, dto.PageMeta, error) {
	oid, err := parseUserID(userID)
	if err != nil {
		return nil, dto.PageMeta{}, err
	}
	f.Normalize()

	filter := bson.M{}
	if f.Hidden != nil {
		filter["hidden"] = *f.Hidden
	}

	records, total, err := s.repo.ListByUser(ctx, oid, filter, f.Page, f.Limit)
	if err != nil {
		return nil, dto.PageMeta{}, err
	}
	if records == nil {
		records = []models.Experience{}
	}
	return records, dto.NewPageMeta(f.Page, f.Limit, len(records), total), nil
}
