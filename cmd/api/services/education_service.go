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

type EducationService struct {
	repo *repositories.EducationRepository
}

func NewEducationService(repo *repositories.EducationRepository) *EducationService {
	return &EducationService{repo: repo}
}

func (s *EducationService) Create(ctx context.Context, userID string, req dto.CreateEducationRequest) error {
	oid, err := parseUserID(userID)
	if err != nil {
		return err
	}

	start, err := parseDate(req.StartDate)
	if err != nil {
		return err
	}
	record := &models.Education{
		UserID:      oid,
		Institution: req.Institution,
		Title:       req.Title,
		Description: req.Description,
		Finished:    req.Finished,
		StartDate:   start,
	}
	// an end date only makes sense on a finished record
	if req.Finished && req.EndDate != "" {
		end, err := parseDate(req.EndDate)
		if err != nil {
			return err
		}
		record.EndDate = &end
	}

	if err := s.repo.Insert(ctx, record); err != nil {
		return fmt.Errorf("create education: %w", err)
	}
	return nil
}

func (s *EducationService) verifyOwnership(ctx context.Context, userID, id string) (*models.Education, error) {
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

func (s *EducationService) Update(ctx context.Context, userID, id string, req dto.UpdateEducationRequest) error {
	record, err := s.verifyOwnership(ctx, userID, id)
	if err != nil {
		return err
	}

	set := bson.M{}
	if req.Institution != nil {
		set["institution"] = *req.Institution
	}
	if req.Title != nil {
		set["title"] = *req.Title
	}
	if req.Description != nil {
		set["description"] = *req.Description
	}
	if req.Finished != nil {
		set["finished"] = *req.Finished
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

func (s *EducationService) Hide(ctx context.Context, userID, id string) error {
	record, err := s.verifyOwnership(ctx, userID, id)
	if err != nil {
		return err
	}
	return s.repo.SetHidden(ctx, record.ID, true)
}

func (s *EducationService) Recover(ctx context.Context, userID, id string) error {
	record, err := s.verifyOwnership(ctx, userID, id)
	if err != nil {
		return err
	}
	return s.repo.SetHidden(ctx, record.ID, false)
}

func (s *EducationService) Remove(ctx context.Context, userID, id string) error {
	record, err := s.verifyOwnership(ctx, userID, id)
	if err != nil {
		return err
	}
	return s.repo.Delete(ctx, record.ID)
}

func (s *EducationService) List(ctx context.Context, userID string, f dto.EducationFilters) ([]models.Education, dto.PageMeta, error) {
	oid, err := parseUserID(userID)
	if err != nil {
		return nil, dto.PageMeta{}, err
	}
	f.Normalize()

	filter := bson.M{}
	if f.Hidden != nil {
		filter["hidden"] = *f.Hidden
	}
	if f.Finished != nil {
		filter["finished"] = *f.Finished
	}

	records, total, err := s.repo.ListByUser(ctx, oid, filter, f.Page, f.Limit)
	if err != nil {
		return nil, dto.PageMeta{}, err
	}
	if records == nil {
		records = []models.Education{}
	}
	return records, dto.NewPageMeta(f.Page, f.Limit, len(records), total), nil
}
