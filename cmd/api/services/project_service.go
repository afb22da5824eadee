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

type ProjectService struct {
	repo *repositories.ProjectRepository
}

func NewProjectService(repo *repositories.ProjectRepository) *ProjectService {
	return &ProjectService{repo: repo}
}

func (s *ProjectService) Create(ctx context.Context, userID string, req dto.CreateProjectRequest) error {
	oid, err := parseUserID(userID)
	if err != nil {
		return err
	}

	finish, err := parseDate(req.FinishDate)
	if err != nil {
		return err
	}
	project := &models.Project{
		UserID:      oid,
		Title:       req.Title,
		Subtitle:    req.Subtitle,
		Description: req.Description,
		Role:        req.Role,
		TechStack:   req.TechStack,
		RepoURL:     req.RepoURL,
		DemoURL:     req.DemoURL,
		FinishDate:  finish,
		Highlight:   req.Highlight,
	}
	if err := s.repo.Insert(ctx, project); err != nil {
		return fmt.Errorf("create project: %w", err)
	}
	return nil
}

func (s *ProjectService) verifyOwnership(ctx context.Context, userID, id string) (*models.Project, error) {
	oid, err := parseUserID(userID)
	if err != nil {
		return nil, err
	}
	project, err := s.repo.FindByIDForUser(ctx, id, oid)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrForbidden
		}
		return nil, err
	}
	return project, nil
}

func (s *ProjectService) Update(ctx context.Context, userID, id string, req dto.UpdateProjectRequest) error {
	project, err := s.verifyOwnership(ctx, userID, id)
	if err != nil {
		return err
	}

	set := bson.M{}
	if req.Title != nil {
		set["title"] = *req.Title
	}
	if req.Subtitle != nil {
		set["subtitle"] = *req.Subtitle
	}
	if req.Description != nil {
		set["description"] = *req.Description
	}
	if req.Role != nil {
		set["role"] = *req.Role
	}
	if req.TechStack != nil {
		set["tech_stack"] = *req.TechStack
	}
	if req.RepoURL != nil {
		set["repo_url"] = *req.RepoURL
	}
	if req.DemoURL != nil {
		set["demo_url"] = *req.DemoURL
	}
	if req.Highlight != nil {
		set["highlight"] = *req.Highlight
	}
	if req.FinishDate != nil {
		finish, err := parseDate(*req.FinishDate)
		if err != nil {
			return err
		}
		set["finish_date"] = finish
	}
	if len(set) == 0 {
		return nil
	}
	return s.repo.Update(ctx, project.ID, set)
}

func (s *ProjectService) Hide(ctx context.Context, userID, id string) error {
	project, err := s.verifyOwnership(ctx, userID, id)
	if err != nil {
		return err
	}
	return s.repo.SetHidden(ctx, project.ID, true)
}

func (s *ProjectService) Recover(ctx context.Context, userID, id string) error {
	project, err := s.verifyOwnership(ctx, userID, id)
	if err != nil {
		return err
	}
	return s.repo.SetHidden(ctx, project.ID, false)
}

func (s *ProjectService) Remove(ctx context.Context, userID, id string) error {
	project, err := s.verifyOwnership(ctx, userID, id)
	if err != nil {
		return err
	}
	return s.repo.Delete(ctx, project.ID)
}

func (s *ProjectService) List(ctx context.Context, userID string, f dto.ProjectFilters) ([]models.Project, dto.PageMeta, error) {
	oid, err := parseUserID(userID)
	if err != nil {
		return nil, dto.PageMeta{}, err
	}
	f.Normalize()

	filter := bson.M{}
	if f.Hidden != nil {
		filter["hidden"] = *f.Hidden
	}
	if f.Highlight != nil {
		filter["highlight"] = *f.Highlight
	}

	projects, total, err := s.repo.ListByUser(ctx, oid, filter, f.Page, f.Limit)
	if err != nil {
		return nil, dto.PageMeta{}, err
	}
	if projects == nil {
		projects = []models.Project{}
	}
	return projects, dto.NewPageMeta(f.Page, f.Limit, len(projects), total), nil
}
