package cv

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"golang.org/x/sync/errgroup"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"portfolio-api/models"
	"portfolio-api/repositories"
)

// Store interfaces consumed by the aggregator. The repositories satisfy
// them directly; tests plug in fakes.
type ProfileStore interface {
	FindProfile(ctx context.Context, id string) (*models.User, error)
}

type SkillStore interface {
	FindByIDs(ctx context.Context, ids []string) ([]models.Skill, error)
}

type LanguageStore interface {
	FindByIDs(ctx context.Context, ids []string) ([]models.Language, error)
}

type EducationStore interface {
	FindByIDs(ctx context.Context, ids []string) ([]models.Education, error)
}

type ExperienceStore interface {
	FindByIDs(ctx context.Context, ids []string) ([]models.Experience, error)
}

type ProjectStore interface {
	FindByIDs(ctx context.Context, ids []string) ([]models.Project, error)
}

// Stores bundles the six record stores the pipeline reads from.
type Stores struct {
	Profiles   ProfileStore
	Skills     SkillStore
	Languages  LanguageStore
	Education  EducationStore
	Experience ExperienceStore
	Projects   ProjectStore
}

// Aggregator resolves a Request into a RenderModel. All category fetches
// run concurrently; an empty ID list short-circuits to its empty default
// without touching the store. The first failing fetch aborts the whole
// aggregation, there is no partial-success degradation.
type Aggregator struct {
	stores Stores
}

func NewAggregator(stores Stores) *Aggregator {
	return &Aggregator{stores: stores}
}

func (a *Aggregator) Aggregate(ctx context.Context, req Request) (*RenderModel, error) {
	model := &RenderModel{
		Skills:     []SkillGroup{},
		Languages:  []LanguageEntry{},
		Education:  []EducationEntry{},
		Experience: []ExperienceEntry{},
		Projects:   []ProjectEntry{},
	}

	// Fan-out: each goroutine writes only its own slot of model, the
	// Wait below is the barrier before any of them is read.
	g, ctx := errgroup.WithContext(ctx)

	if req.SubjectID != "" {
		g.Go(func() error {
			user, err := a.stores.Profiles.FindProfile(ctx, req.SubjectID)
			if err != nil {
				if errors.Is(err, repositories.ErrNotFound) {
					return fmt.Errorf("%w: %s", ErrProfileNotFound, req.SubjectID)
				}
				return fmt.Errorf("fetch profile: %w", err)
			}
			model.Profile = Profile{
				Name:     user.Name,
				Bio:      user.Bio,
				Title:    user.Title,
				SubTitle: user.SubTitle,
				Location: user.Location,
				HostURL:  user.HostURL,
				Email:    user.Email,
				Phone:    user.Phone,
			}
			return nil
		})
	}

	if len(req.SkillIDs) > 0 {
		g.Go(func() error {
			skills, err := a.stores.Skills.FindByIDs(ctx, req.SkillIDs)
			if err != nil {
				return fmt.Errorf("fetch skills: %w", err)
			}
			model.Skills = groupSkills(skills)
			return nil
		})
	}

	if len(req.LanguageIDs) > 0 {
		g.Go(func() error {
			languages, err := a.stores.Languages.FindByIDs(ctx, req.LanguageIDs)
			if err != nil {
				return fmt.Errorf("fetch languages: %w", err)
			}
			// languages keep store order
			entries := make([]LanguageEntry, 0, len(languages))
			for _, l := range languages {
				entries = append(entries, LanguageEntry{Language: l.Language, Level: l.Level})
			}
			model.Languages = entries
			return nil
		})
	}

	if len(req.EducationIDs) > 0 {
		g.Go(func() error {
			records, err := a.stores.Education.FindByIDs(ctx, req.EducationIDs)
			if err != nil {
				return fmt.Errorf("fetch education: %w", err)
			}
			model.Education = shapeEducation(records)
			return nil
		})
	}

	if len(req.ExperienceIDs) > 0 {
		g.Go(func() error {
			records, err := a.stores.Experience.FindByIDs(ctx, req.ExperienceIDs)
			if err != nil {
				return fmt.Errorf("fetch experience: %w", err)
			}
			model.Experience = shapeExperience(records)
			return nil
		})
	}

	if len(req.ProjectIDs) > 0 {
		g.Go(func() error {
			projects, err := a.stores.Projects.FindByIDs(ctx, req.ProjectIDs)
			if err != nil {
				return fmt.Errorf("fetch projects: %w", err)
			}
			model.Projects = shapeProjects(projects)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return model, nil
}

// groupSkills buckets skills by category ("Uncategorized" when unset),
// sorts each bucket level-descending and the buckets themselves by
// category name using English collation.
func groupSkills(skills []models.Skill) []SkillGroup {
	grouped := map[string][]SkillItem{}
	order := []string{}
	for _, s := range skills {
		cat := s.Category
		if cat == "" {
			cat = "Uncategorized"
		}
		if _, seen := grouped[cat]; !seen {
			order = append(order, cat)
		}
		grouped[cat] = append(grouped[cat], SkillItem{Name: s.Name, Level: s.Level})
	}

	groups := make([]SkillGroup, 0, len(order))
	for _, cat := range order {
		items := grouped[cat]
		sort.SliceStable(items, func(i, j int) bool { return items[i].Level > items[j].Level })
		groups = append(groups, SkillGroup{Category: cat, Items: items})
	}

	col := collate.New(language.English)
	sort.SliceStable(groups, func(i, j int) bool {
		return col.CompareString(groups[i].Category, groups[j].Category) < 0
	})
	return groups
}

func shapeEducation(records []models.Education) []EducationEntry {
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].StartDate.After(records[j].StartDate)
	})
	entries := make([]EducationEntry, 0, len(records))
	for _, e := range records {
		entries = append(entries, EducationEntry{
			Title:       e.Title,
			Institution: e.Institution,
			Period:      Period(e.StartDate, e.EndDate),
		})
	}
	return entries
}

func shapeExperience(records []models.Experience) []ExperienceEntry {
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].StartDate.After(records[j].StartDate)
	})
	entries := make([]ExperienceEntry, 0, len(records))
	for _, e := range records {
		entries = append(entries, ExperienceEntry{
			Role:             e.Role,
			Company:          e.Company,
			Period:           Period(e.StartDate, e.EndDate),
			Description:      e.Description,
			Responsibilities: e.Responsibilities,
		})
	}
	return entries
}

// shapeProjects puts highlighted projects first; the sort is stable so the
// relative store order is otherwise preserved. No secondary date sort.
func shapeProjects(projects []models.Project) []ProjectEntry {
	sort.SliceStable(projects, func(i, j int) bool {
		return projects[i].Highlight && !projects[j].Highlight
	})
	entries := make([]ProjectEntry, 0, len(projects))
	for _, p := range projects {
		entries = append(entries, ProjectEntry{
			Name:        p.Title,
			Subtitle:    p.Subtitle,
			Description: p.Description,
			Stack:       p.TechStack,
			Role:        p.Role,
			Demo:        p.DemoURL,
			Repo:        p.RepoURL,
			Highlight:   p.Highlight,
		})
	}
	return entries
}
