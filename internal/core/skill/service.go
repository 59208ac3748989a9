package skill

import (
	"context"
	"log/slog"

	"github.com/taibuivan/folio/internal/platform/apperr"
	"github.com/taibuivan/folio/internal/platform/dberr"
	"github.com/taibuivan/folio/internal/platform/validate"
	"github.com/taibuivan/folio/pkg/slice"
)

type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

func (service *Service) ListSkills(context context.Context) ([]Skill, error) {
	skills, err := service.repo.List(context, DisplayOrder)
	return skills, dberr.Wrap(err, "Skill")
}

// ListByOrder lists skills under an explicit order-by field such as "-order".
func (service *Service) ListByOrder(context context.Context, orderBy string) ([]Skill, error) {
	skills, err := service.repo.List(context, orderBy)
	return skills, dberr.Wrap(err, "Skill")
}

// GroupedSkills returns one group per category that has skills, in category
// order, each keeping the display order of its skills.
func (service *Service) GroupedSkills(context context.Context) ([]Group, error) {
	skills, err := service.ListSkills(context)
	if err != nil {
		return nil, err
	}
	return GroupSkills(skills), nil
}

// GroupSkills buckets skills by category. Unknown categories land in "other".
func GroupSkills(skills []Skill) []Group {
	byCategory := slice.GroupBy(skills, func(s Skill) Category {
		if !isKnown(s.Category) {
			return CategoryOther
		}
		return s.Category
	})

	groups := make([]Group, 0, len(byCategory))
	for _, category := range Categories {
		members, ok := byCategory[category]
		if !ok {
			continue
		}
		groups = append(groups, Group{Category: category, Label: category.Label(), Skills: members})
	}
	return groups
}

func (service *Service) GetSkill(context context.Context, id string) (*Skill, error) {
	skill, err := service.repo.Get(context, id)
	if err != nil {
		return nil, dberr.Wrap(err, "Skill")
	}
	if skill == nil {
		return nil, apperr.NotFound("Skill")
	}
	return skill, nil
}

func (service *Service) CreateSkill(context context.Context, input Skill) (Skill, error) {
	validator := &validate.Validator{}
	validator.Required(FieldName, input.Name).MaxLen(FieldName, input.Name, 100)
	validateCategory(validator, string(input.Category))
	validator.Range(FieldProficiency, input.Proficiency, 0, 100)
	validator.Custom(FieldOrder, input.Order < 0, "Must not be negative")

	if err := validator.Err(); err != nil {
		return Skill{}, err
	}

	created, err := service.repo.Create(context, input)
	if err != nil {
		return Skill{}, dberr.Wrap(err, "Skill")
	}

	service.logger.Info("skill_created", slog.String("skill_id", created.ID), slog.String("name", created.Name))
	return created, nil
}

func (service *Service) UpdateSkill(context context.Context, id string, patch Patch) (Skill, error) {
	validator := &validate.Validator{}
	if patch.Name != nil {
		validator.Required(FieldName, *patch.Name).MaxLen(FieldName, *patch.Name, 100)
	}
	if patch.Category != nil {
		validateCategory(validator, string(*patch.Category))
	}
	if patch.Proficiency != nil {
		validator.Range(FieldProficiency, *patch.Proficiency, 0, 100)
	}
	validator.Custom(FieldOrder, patch.Order != nil && *patch.Order < 0, "Must not be negative")

	if err := validator.Err(); err != nil {
		return Skill{}, err
	}

	updated, err := service.repo.Update(context, id, patch)
	if err != nil {
		return Skill{}, dberr.Wrap(err, "Skill")
	}

	service.logger.Info("skill_updated", slog.String("skill_id", id))
	return updated, nil
}

// DeleteSkill removes the skill. Projects listing it by name are not touched.
func (service *Service) DeleteSkill(context context.Context, id string) (string, error) {
	result, err := service.repo.Delete(context, id)
	if err != nil {
		return "", dberr.Wrap(err, "Skill")
	}

	service.logger.Warn("skill_deleted", slog.String("skill_id", id))
	return result.ID, nil
}

func validateCategory(validator *validate.Validator, value string) {
	allowed := slice.Map(Categories, func(c Category) string { return string(c) })
	validator.OneOf(FieldCategory, value, allowed...)
}

func isKnown(category Category) bool {
	for _, c := range Categories {
		if c == category {
			return true
		}
	}
	return false
}
