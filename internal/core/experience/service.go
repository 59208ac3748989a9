package experience

import (
	"context"
	"log/slog"
	"strings"

	"github.com/taibuivan/folio/internal/platform/apperr"
	"github.com/taibuivan/folio/internal/platform/dberr"
	"github.com/taibuivan/folio/internal/platform/validate"
)

type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

func (service *Service) ListExperience(context context.Context) ([]Experience, error) {
	entries, err := service.repo.List(context, DisplayOrder)
	return entries, dberr.Wrap(err, "Experience")
}

func (service *Service) GetExperience(context context.Context, id string) (*Experience, error) {
	entry, err := service.repo.Get(context, id)
	if err != nil {
		return nil, dberr.Wrap(err, "Experience")
	}
	if entry == nil {
		return nil, apperr.NotFound("Experience")
	}
	return entry, nil
}

func (service *Service) CreateExperience(context context.Context, input Experience) (Experience, error) {
	if input.EndDate != nil && strings.TrimSpace(*input.EndDate) == "" {
		input.EndDate = nil
	}

	validator := &validate.Validator{}
	validator.Required(FieldCompany, input.Company)
	validator.Required(FieldPosition, input.Position)
	validateDates(validator, input.StartDate, input.EndDate)
	validator.Custom(FieldOrder, input.Order < 0, "Must not be negative")

	if err := validator.Err(); err != nil {
		return Experience{}, err
	}

	if input.Achievements == nil {
		input.Achievements = []string{}
	}

	created, err := service.repo.Create(context, input)
	if err != nil {
		return Experience{}, dberr.Wrap(err, "Experience")
	}

	service.logger.Info("experience_created",
		slog.String("experience_id", created.ID),
		slog.String("company", created.Company),
	)
	return created, nil
}

// UpdateExperience merges patch. Date ordering is checked against the stored
// entry when only one side of the range changes.
func (service *Service) UpdateExperience(context context.Context, id string, patch Patch) (Experience, error) {
	validator := &validate.Validator{}
	if patch.Company != nil {
		validator.Required(FieldCompany, *patch.Company)
	}
	if patch.Position != nil {
		validator.Required(FieldPosition, *patch.Position)
	}
	validator.Custom(FieldOrder, patch.Order != nil && *patch.Order < 0, "Must not be negative")

	if patch.StartDate != nil || (patch.EndDate != nil && !patch.Current) {
		current, err := service.GetExperience(context, id)
		if err != nil {
			return Experience{}, err
		}

		start, end := current.StartDate, current.EndDate
		if patch.StartDate != nil {
			start = *patch.StartDate
		}
		if patch.Current {
			end = nil
		} else if patch.EndDate != nil {
			end = patch.EndDate
		}
		validateDates(validator, start, end)
	}

	if err := validator.Err(); err != nil {
		return Experience{}, err
	}

	updated, err := service.repo.Update(context, id, patch)
	if err != nil {
		return Experience{}, dberr.Wrap(err, "Experience")
	}

	service.logger.Info("experience_updated", slog.String("experience_id", id), slog.Bool("current", updated.Current()))
	return updated, nil
}

func (service *Service) DeleteExperience(context context.Context, id string) (string, error) {
	result, err := service.repo.Delete(context, id)
	if err != nil {
		return "", dberr.Wrap(err, "Experience")
	}

	service.logger.Warn("experience_deleted", slog.String("experience_id", id))
	return result.ID, nil
}

// validateDates accepts YYYY-MM or YYYY-MM-DD. Both layouts order correctly as
// strings, so the range check compares them directly.
func validateDates(validator *validate.Validator, start string, end *string) {
	validator.Required(FieldStartDate, start)
	if start != "" {
		validator.Date(FieldStartDate, start)
	}
	if end == nil {
		return
	}

	validator.Date(FieldEndDate, *end)
	if start != "" && !validator.HasErrors() {
		validator.Custom(FieldEndDate, *end < start[:min(len(start), len(*end))], "Must not be before start_date")
	}
}
