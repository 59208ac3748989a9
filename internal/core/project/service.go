package project

import (
	"context"
	"log/slog"

	"github.com/taibuivan/folio/internal/platform/apperr"
	"github.com/taibuivan/folio/internal/platform/dberr"
	"github.com/taibuivan/folio/internal/platform/validate"
)

type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// ListProjects returns the public list, optionally only featured projects.
func (service *Service) ListProjects(context context.Context, query Query) ([]Project, error) {
	if query.FeaturedOnly {
		projects, err := service.repo.Filter(context, map[string]any{FieldFeatured: true}, DisplayOrder, query.Limit)
		return projects, dberr.Wrap(err, "Project")
	}

	projects, err := service.repo.List(context, DisplayOrder)
	if err != nil {
		return nil, dberr.Wrap(err, "Project")
	}
	if query.Limit > 0 && len(projects) > query.Limit {
		projects = projects[:query.Limit]
	}
	return projects, nil
}

func (service *Service) GetProject(context context.Context, id string) (*Project, error) {
	project, err := service.repo.Get(context, id)
	if err != nil {
		return nil, dberr.Wrap(err, "Project")
	}
	if project == nil {
		return nil, apperr.NotFound("Project")
	}
	return project, nil
}

func (service *Service) CreateProject(context context.Context, input Project) (Project, error) {
	validator := &validate.Validator{}
	validator.Required(FieldTitle, input.Title).MaxLen(FieldTitle, input.Title, maxTitleLength)
	validator.Required(FieldDescription, input.Description)
	validateLinks(validator, input.ImageURL, input.GithubURL, input.LiveURL)
	validator.Custom(FieldOrder, input.Order < 0, "Must not be negative")

	if err := validator.Err(); err != nil {
		return Project{}, err
	}

	if input.Technologies == nil {
		input.Technologies = []string{}
	}

	created, err := service.repo.Create(context, input)
	if err != nil {
		return Project{}, dberr.Wrap(err, "Project")
	}

	service.logger.Info("project_created", slog.String("project_id", created.ID), slog.String("title", created.Title))
	return created, nil
}

func (service *Service) UpdateProject(context context.Context, id string, patch Patch) (Project, error) {
	validator := &validate.Validator{}
	if patch.Title != nil {
		validator.Required(FieldTitle, *patch.Title).MaxLen(FieldTitle, *patch.Title, maxTitleLength)
	}
	if patch.Description != nil {
		validator.Required(FieldDescription, *patch.Description)
	}
	validateLinks(validator, deref(patch.ImageURL), deref(patch.GithubURL), deref(patch.LiveURL))
	validator.Custom(FieldOrder, patch.Order != nil && *patch.Order < 0, "Must not be negative")

	if err := validator.Err(); err != nil {
		return Project{}, err
	}

	updated, err := service.repo.Update(context, id, patch)
	if err != nil {
		return Project{}, dberr.Wrap(err, "Project")
	}

	service.logger.Info("project_updated", slog.String("project_id", id))
	return updated, nil
}

// DeleteProject removes the project. Skills or posts naming it are untouched.
func (service *Service) DeleteProject(context context.Context, id string) (string, error) {
	result, err := service.repo.Delete(context, id)
	if err != nil {
		return "", dberr.Wrap(err, "Project")
	}

	service.logger.Warn("project_deleted", slog.String("project_id", id))
	return result.ID, nil
}

func validateLinks(validator *validate.Validator, imageURL, githubURL, liveURL string) {
	validator.OptionalURL(FieldImageURL, imageURL)
	validator.OptionalURL(FieldGithubURL, githubURL)
	validator.OptionalURL(FieldLiveURL, liveURL)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
