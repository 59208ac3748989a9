package resume

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/taibuivan/folio/internal/core/experience"
	"github.com/taibuivan/folio/internal/core/project"
	"github.com/taibuivan/folio/internal/core/siteconfig"
	"github.com/taibuivan/folio/internal/core/skill"
	"github.com/taibuivan/folio/internal/platform/apperr"
)

// # Sources
//
// The services the site already uses. Each one is optional.

type ProjectSource interface {
	ListProjects(ctx context.Context, query project.Query) ([]project.Project, error)
}

type ExperienceSource interface {
	ListExperience(ctx context.Context) ([]experience.Experience, error)
}

type SkillSource interface {
	ListSkills(ctx context.Context) ([]skill.Skill, error)
}

type ProfileSource interface {
	ProfileImage(ctx context.Context) (*siteconfig.ProfileImage, error)
	ContactInfo(ctx context.Context) (*siteconfig.ContactInfo, error)
}

// Assembler builds résumé data from the YAML file plus the live site content.
// Projects, experience and skills come from the store when it has any;
// otherwise the file's own entries are kept.
type Assembler struct {
	path       string
	photoURL   string
	projects   ProjectSource
	experience ExperienceSource
	skills     SkillSource
	profile    ProfileSource
	logger     *slog.Logger
}

// AssemblerConfig names the file and the optional store-backed sources.
type AssemblerConfig struct {
	DataPath   string
	PhotoURL   string
	Projects   ProjectSource
	Experience ExperienceSource
	Skills     SkillSource
	Profile    ProfileSource
}

func NewAssembler(config AssemblerConfig, logger *slog.Logger) *Assembler {
	return &Assembler{
		path:       config.DataPath,
		photoURL:   config.PhotoURL,
		projects:   config.Projects,
		experience: config.Experience,
		skills:     config.Skills,
		profile:    config.Profile,
		logger:     logger,
	}
}

/*
Load reads the data file and merges the live site content into it.

Returns:
  - Data: Validated résumé data
  - error: apperr.Configuration when the file is missing,
    apperr.Unprocessable when it is invalid, or store failures
*/
func (assembler *Assembler) Load(context context.Context) (Data, error) {
	data, err := LoadFile(assembler.path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		return Data{}, apperr.Configuration("Résumé data file is not configured")
	case err != nil:
		return Data{}, apperr.Unprocessable(err.Error())
	}

	return assembler.Assemble(context, data)
}

// Assemble merges the live site content into base.
func (assembler *Assembler) Assemble(context context.Context, base Data) (Data, error) {
	data := base

	if assembler.projects != nil {
		projects, err := assembler.projects.ListProjects(context, project.Query{})
		if err != nil {
			return Data{}, err
		}
		if len(projects) > 0 {
			data.Projects = fromProjects(projects)
		}
	}

	if assembler.experience != nil {
		roles, err := assembler.experience.ListExperience(context)
		if err != nil {
			return Data{}, err
		}
		if len(roles) > 0 {
			data.Experience = fromExperience(roles)
		}
	}

	if assembler.skills != nil {
		skills, err := assembler.skills.ListSkills(context)
		if err != nil {
			return Data{}, err
		}
		if len(skills) > 0 {
			data.SkillCategories = fromSkills(skills)
		}
	}

	if err := assembler.mergeProfile(context, &data.Personal); err != nil {
		return Data{}, err
	}

	if err := data.Validate(); err != nil {
		return Data{}, apperr.Unprocessable(fmt.Sprintf("resume: invalid data: %v", err))
	}

	assembler.logger.DebugContext(context, "resume_assembled",
		slog.Int("projects", len(data.Projects)),
		slog.Int("experience", len(data.Experience)),
		slog.Int("skill_categories", len(data.SkillCategories)),
	)
	return data, nil
}

// mergeProfile fills contact fields the file leaves blank. An explicit photo
// URL wins over the site's profile image.
func (assembler *Assembler) mergeProfile(context context.Context, personal *Personal) error {
	if assembler.photoURL != "" {
		personal.PhotoURL = assembler.photoURL
	}
	if assembler.profile == nil {
		return nil
	}

	if personal.PhotoURL == "" {
		image, err := assembler.profile.ProfileImage(context)
		if err != nil {
			return err
		}
		if image != nil {
			personal.PhotoURL = image.ProfileImage
		}
	}

	info, err := assembler.profile.ContactInfo(context)
	if err != nil || info == nil {
		return err
	}

	fill := func(field *string, value string) {
		if strings.TrimSpace(*field) == "" {
			*field = value
		}
	}
	fill(&personal.Email, info.Email)
	fill(&personal.Phone, info.Phone)
	fill(&personal.Location, info.Address)
	fill(&personal.Website, info.Website)
	fill(&personal.GitHub, info.Github)
	fill(&personal.LinkedIn, info.Linkedin)
	return nil
}

// # Conversions

func fromProjects(projects []project.Project) []Project {
	out := make([]Project, 0, len(projects))
	for _, p := range projects {
		link := p.LiveURL
		if link == "" {
			link = p.GithubURL
		}
		out = append(out, Project{
			Name:         p.Title,
			Description:  p.Description,
			Technologies: p.Technologies,
			Link:         link,
		})
	}
	return out
}

func fromExperience(roles []experience.Experience) []Experience {
	out := make([]Experience, 0, len(roles))
	for _, role := range roles {
		end := "Present"
		if !role.Current() {
			end = formatMonth(*role.EndDate)
		}
		out = append(out, Experience{
			Company:          role.Company,
			Position:         role.Position,
			Location:         role.Location,
			Period:           formatMonth(role.StartDate) + " - " + end,
			Description:      role.Description,
			Responsibilities: role.Achievements,
		})
	}
	return out
}

func fromSkills(skills []skill.Skill) []SkillCategory {
	groups := skill.GroupSkills(skills)
	out := make([]SkillCategory, 0, len(groups))
	for _, group := range groups {
		category := SkillCategory{Name: group.Label}
		for _, s := range group.Skills {
			category.Skills = append(category.Skills, SkillLevel{Name: s.Name, Level: s.Proficiency})
		}
		out = append(out, category)
	}
	return out
}

// formatMonth renders "2024-03" or "2024-03-15" as "Mar 2024". Anything else
// is returned unchanged.
func formatMonth(value string) string {
	if len(value) >= len("2006-01") {
		if parsed, err := time.Parse("2006-01", value[:len("2006-01")]); err == nil {
			return parsed.Format("Jan 2006")
		}
	}
	return value
}
