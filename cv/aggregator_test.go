package cv_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"portfolio-api/cv"
	"portfolio-api/models"
	"portfolio-api/repositories"
)

type fakeStores struct {
	calls atomic.Int64

	profile *models.User

	skills     []models.Skill
	languages  []models.Language
	education  []models.Education
	experience []models.Experience
	projects   []models.Project
}

func (f *fakeStores) FindProfile(ctx context.Context, id string) (*models.User, error) {
	f.calls.Add(1)
	if f.profile == nil {
		return nil, repositories.ErrNotFound
	}
	return f.profile, nil
}

type fakeSkillStore struct{ f *fakeStores }

func (s fakeSkillStore) FindByIDs(ctx context.Context, ids []string) ([]models.Skill, error) {
	s.f.calls.Add(1)
	return s.f.skills, nil
}

type fakeLanguageStore struct{ f *fakeStores }

func (s fakeLanguageStore) FindByIDs(ctx context.Context, ids []string) ([]models.Language, error) {
	s.f.calls.Add(1)
	return s.f.languages, nil
}

type fakeEducationStore struct{ f *fakeStores }

func (s fakeEducationStore) FindByIDs(ctx context.Context, ids []string) ([]models.Education, error) {
	s.f.calls.Add(1)
	return s.f.education, nil
}

type fakeExperienceStore struct{ f *fakeStores }

func (s fakeExperienceStore) FindByIDs(ctx context.Context, ids []string) ([]models.Experience, error) {
	s.f.calls.Add(1)
	return s.f.experience, nil
}

type fakeProjectStore struct{ f *fakeStores }

func (s fakeProjectStore) FindByIDs(ctx context.Context, ids []string) ([]models.Project, error) {
	s.f.calls.Add(1)
	return s.f.projects, nil
}

func (f *fakeStores) stores() cv.Stores {
	return cv.Stores{
		Profiles:   f,
		Skills:     fakeSkillStore{f},
		Languages:  fakeLanguageStore{f},
		Education:  fakeEducationStore{f},
		Experience: fakeExperienceStore{f},
		Projects:   fakeProjectStore{f},
	}
}

func TestAggregateEmptyRequestIssuesNoFetches(t *testing.T) {
	f := &fakeStores{}
	agg := cv.NewAggregator(f.stores())

	model, err := agg.Aggregate(context.Background(), cv.Request{TemplateID: "1"})
	assert.NoError(t, err)
	assert.Equal(t, int64(0), f.calls.Load())

	// all six collections present but empty
	assert.NotNil(t, model.Skills)
	assert.NotNil(t, model.Languages)
	assert.NotNil(t, model.Education)
	assert.NotNil(t, model.Experience)
	assert.NotNil(t, model.Projects)
	assert.Empty(t, model.Skills)
	assert.Empty(t, model.Languages)
	assert.Empty(t, model.Education)
	assert.Empty(t, model.Experience)
	assert.Empty(t, model.Projects)
}

func TestAggregateSkillsGrouping(t *testing.T) {
	f := &fakeStores{skills: []models.Skill{
		{Name: "Docker", Category: "B", Level: 3},
		{Name: "Go", Category: "A", Level: 5},
		{Name: "Bash", Category: "A", Level: 1},
	}}
	agg := cv.NewAggregator(f.stores())

	model, err := agg.Aggregate(context.Background(), cv.Request{TemplateID: "1", SkillIDs: []string{"a", "b", "c"}})
	assert.NoError(t, err)

	assert.Equal(t, []cv.SkillGroup{
		{Category: "A", Items: []cv.SkillItem{{Name: "Go", Level: 5}, {Name: "Bash", Level: 1}}},
		{Category: "B", Items: []cv.SkillItem{{Name: "Docker", Level: 3}}},
	}, model.Skills)
}

func TestAggregateSkillsUncategorizedBucket(t *testing.T) {
	f := &fakeStores{skills: []models.Skill{
		{Name: "Chess", Level: 2},
		{Name: "Go", Category: "Backend", Level: 5},
	}}
	agg := cv.NewAggregator(f.stores())

	model, err := agg.Aggregate(context.Background(), cv.Request{TemplateID: "1", SkillIDs: []string{"a", "b"}})
	assert.NoError(t, err)
	assert.Len(t, model.Skills, 2)
	assert.Equal(t, "Backend", model.Skills[0].Category)
	assert.Equal(t, "Uncategorized", model.Skills[1].Category)
}

func TestAggregateLanguagesKeepStoreOrder(t *testing.T) {
	f := &fakeStores{languages: []models.Language{
		{Language: "Spanish", Level: "Native"},
		{Language: "English", Level: "B2"},
	}}
	agg := cv.NewAggregator(f.stores())

	model, err := agg.Aggregate(context.Background(), cv.Request{TemplateID: "1", LanguageIDs: []string{"a", "b"}})
	assert.NoError(t, err)
	assert.Equal(t, []cv.LanguageEntry{
		{Language: "Spanish", Level: "Native"},
		{Language: "English", Level: "B2"},
	}, model.Languages)
}

func TestAggregateEducationSortedDescendingWithPeriod(t *testing.T) {
	end := time.Date(2024, time.June, 30, 0, 0, 0, 0, time.UTC)
	f := &fakeStores{education: []models.Education{
		{Title: "BSc", Institution: "UNA", StartDate: time.Date(2017, time.February, 1, 0, 0, 0, 0, time.UTC), EndDate: &end},
		{Title: "MSc", Institution: "UCR", StartDate: time.Date(2021, time.January, 15, 0, 0, 0, 0, time.UTC)},
	}}
	agg := cv.NewAggregator(f.stores())

	model, err := agg.Aggregate(context.Background(), cv.Request{TemplateID: "1", EducationIDs: []string{"a", "b"}})
	assert.NoError(t, err)
	assert.Equal(t, []cv.EducationEntry{
		{Title: "MSc", Institution: "UCR", Period: "January 2021 - Present"},
		{Title: "BSc", Institution: "UNA", Period: "February 2017 - June 2024"},
	}, model.Education)
}

func TestAggregateProjectsHighlightFirstStable(t *testing.T) {
	f := &fakeStores{projects: []models.Project{
		{Title: "first", Highlight: false},
		{Title: "starred", Highlight: true},
		{Title: "second", Highlight: false},
	}}
	agg := cv.NewAggregator(f.stores())

	model, err := agg.Aggregate(context.Background(), cv.Request{TemplateID: "1", ProjectIDs: []string{"a", "b", "c"}})
	assert.NoError(t, err)

	names := make([]string, 0, len(model.Projects))
	for _, p := range model.Projects {
		names = append(names, p.Name)
	}
	assert.Equal(t, []string{"starred", "first", "second"}, names)
}

func TestAggregateProfileNotFound(t *testing.T) {
	f := &fakeStores{} // no profile configured
	agg := cv.NewAggregator(f.stores())

	_, err := agg.Aggregate(context.Background(), cv.Request{TemplateID: "1", SubjectID: "665f1c0b9d3a2e0001000001"})
	assert.ErrorIs(t, err, cv.ErrProfileNotFound)
}

func TestAggregateStoreFailureAbortsWhole(t *testing.T) {
	f := &fakeStores{profile: &models.User{Name: "Jane Doe"}}
	stores := f.stores()
	stores.Skills = failingSkillStore{}
	agg := cv.NewAggregator(stores)

	_, err := agg.Aggregate(context.Background(), cv.Request{
		TemplateID: "1",
		SubjectID:  "665f1c0b9d3a2e0001000001",
		SkillIDs:   []string{"a"},
	})
	assert.Error(t, err)
	assert.ErrorContains(t, err, "fetch skills")
}

type failingSkillStore struct{}

func (failingSkillStore) FindByIDs(ctx context.Context, ids []string) ([]models.Skill, error) {
	return nil, errors.New("store down")
}
