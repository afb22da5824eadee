package cv

// Request selects what goes into a generated CV. TemplateID is mandatory;
// every other field is optional. An absent or empty ID list excludes that
// category from the document entirely.
type Request struct {
	TemplateID    string
	SubjectID     string
	SkillIDs      []string
	LanguageIDs   []string
	EducationIDs  []string
	ExperienceIDs []string
	ProjectIDs    []string
}

// Document is the generated artifact. It is handed to the caller and never
// persisted or cached by the pipeline.
type Document struct {
	Content  []byte
	FileName string
}

// Profile carries the subject's header fields as shown on the CV.
type Profile struct {
	Name     string
	Bio      string
	Title    string
	SubTitle string
	Location string
	HostURL  string
	Email    string
	Phone    string
}

type SkillItem struct {
	Name  string
	Level int
}

// SkillGroup is one category bucket, items sorted level-descending.
type SkillGroup struct {
	Category string
	Items    []SkillItem
}

type LanguageEntry struct {
	Language string
	Level    string
}

type EducationEntry struct {
	Title       string
	Institution string
	Period      string
}

type ExperienceEntry struct {
	Role             string
	Company          string
	Period           string
	Description      string
	Responsibilities []string
}

type ProjectEntry struct {
	Name        string
	Subtitle    string
	Description string
	Stack       []string
	Role        string
	Demo        string
	Repo        string
	Highlight   bool
}

// RenderModel is the template-ready data. Profile fields and category
// collections are kept apart here; they only meet in Context().
type RenderModel struct {
	Profile    Profile
	Skills     []SkillGroup
	Languages  []LanguageEntry
	Education  []EducationEntry
	Experience []ExperienceEntry
	Projects   []ProjectEntry
}

// Context flattens the model into the variable names the templates use.
// Profile fields are written first and category keys last, so on a (never
// expected) name collision a category collection wins. All six category
// keys are always present, empty or not.
func (m *RenderModel) Context() map[string]any {
	ctx := map[string]any{
		"name":     m.Profile.Name,
		"bio":      m.Profile.Bio,
		"title":    m.Profile.Title,
		"subTitle": m.Profile.SubTitle,
		"location": m.Profile.Location,
		"hostUrl":  m.Profile.HostURL,
		"email":    m.Profile.Email,
		"phone":    m.Profile.Phone,
	}

	skills := make([]map[string]any, 0, len(m.Skills))
	for _, g := range m.Skills {
		items := make([]map[string]any, 0, len(g.Items))
		for _, it := range g.Items {
			items = append(items, map[string]any{"name": it.Name, "level": it.Level})
		}
		skills = append(skills, map[string]any{"category": g.Category, "items": items})
	}
	ctx["skills"] = skills

	languages := make([]map[string]any, 0, len(m.Languages))
	for _, l := range m.Languages {
		languages = append(languages, map[string]any{"language": l.Language, "level": l.Level})
	}
	ctx["languages"] = languages

	education := make([]map[string]any, 0, len(m.Education))
	for _, e := range m.Education {
		education = append(education, map[string]any{
			"title":       e.Title,
			"institution": e.Institution,
			"period":      e.Period,
		})
	}
	ctx["education"] = education

	experience := make([]map[string]any, 0, len(m.Experience))
	for _, e := range m.Experience {
		experience = append(experience, map[string]any{
			"role":             e.Role,
			"company":          e.Company,
			"period":           e.Period,
			"description":      e.Description,
			"responsibilities": e.Responsibilities,
		})
	}
	ctx["experience"] = experience

	projects := make([]map[string]any, 0, len(m.Projects))
	for _, p := range m.Projects {
		projects = append(projects, map[string]any{
			"name":        p.Name,
			"subtitle":    p.Subtitle,
			"description": p.Description,
			"stack":       p.Stack,
			"role":        p.Role,
			"demo":        p.Demo,
			"repo":        p.Repo,
			"highlight":   p.Highlight,
		})
	}
	ctx["projects"] = projects

	return ctx
}
