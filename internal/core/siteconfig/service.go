package siteconfig

import (
	"context"
	"log/slog"

	"github.com/taibuivan/folio/internal/platform/constants"
	"github.com/taibuivan/folio/internal/platform/dberr"
	"github.com/taibuivan/folio/internal/platform/docstore"
	"github.com/taibuivan/folio/internal/platform/validate"
)

// ImageRemover releases a replaced image. Failures never block the caller.
type ImageRemover interface {
	DeleteImage(ctx context.Context, url string) error
}

type Service struct {
	repos  Repositories
	images ImageRemover
	logger *slog.Logger
}

func NewService(repos Repositories, images ImageRemover, logger *slog.Logger) *Service {
	return &Service{repos: repos, images: images, logger: logger}
}

// # Profile Image

// ProfileImage returns the singleton, or nil when it was never written.
func (service *Service) ProfileImage(context context.Context) (*ProfileImage, error) {
	image, err := service.repos.ProfileImages.Get(context, constants.DocProfileImage)
	return image, dberr.Wrap(err, "Profile image")
}

// SetProfileImage points the singleton at url, creating it on first use.
func (service *Service) SetProfileImage(context context.Context, url string) (ProfileImage, error) {
	validator := &validate.Validator{}
	validator.Required(FieldProfileImage, url).URL(FieldProfileImage, url)
	if err := validator.Err(); err != nil {
		return ProfileImage{}, err
	}

	previous, err := service.ProfileImage(context)
	if err != nil {
		return ProfileImage{}, err
	}

	repo := service.repos.ProfileImages
	now := repo.Now().String()

	patch := map[string]any{
		FieldProfileImage: url,
		FieldUpdatedAt:    now,
	}
	if previous == nil {
		patch[FieldCreatedAt] = now
	}

	image, created, err := repo.Upsert(context, constants.DocProfileImage, patch)
	if err != nil {
		return ProfileImage{}, dberr.Wrap(err, "Profile image")
	}

	if previous != nil && previous.ProfileImage != "" && previous.ProfileImage != url {
		service.releaseImage(context, previous.ProfileImage)
	}

	service.logger.Info("profile_image_updated", slog.Bool("created", created))
	return image, nil
}

func (service *Service) releaseImage(context context.Context, url string) {
	if service.images == nil {
		return
	}
	if err := service.images.DeleteImage(context, url); err != nil {
		service.logger.Warn("image_release_failed", slog.String("url", url), slog.Any("error", err))
	}
}

// # Contact Info

// ContactInfo returns the singleton, or nil when it was never written.
func (service *Service) ContactInfo(context context.Context) (*ContactInfo, error) {
	info, err := service.repos.ContactInfos.Get(context, constants.DocContactInfo)
	return info, dberr.Wrap(err, "Contact info")
}

// UpdateContactInfo merges patch into the singleton, creating it on first use.
func (service *Service) UpdateContactInfo(context context.Context, patch ContactPatch) (ContactInfo, error) {
	validator := &validate.Validator{}
	if patch.Email != nil && *patch.Email != "" {
		validator.Email(FieldEmail, *patch.Email)
	}
	links := []struct {
		field string
		value *string
	}{
		{FieldWebsite, patch.Website},
		{FieldGithub, patch.Github},
		{FieldLinkedin, patch.Linkedin},
	}
	for _, link := range links {
		if link.value != nil {
			validator.OptionalURL(link.field, *link.value)
		}
	}
	if err := validator.Err(); err != nil {
		return ContactInfo{}, err
	}

	fields, err := docstore.PatchFields(patch)
	if err != nil {
		return ContactInfo{}, dberr.Wrap(err, "Contact info")
	}

	info, created, err := service.repos.ContactInfos.Upsert(context, constants.DocContactInfo, fields)
	if err != nil {
		return ContactInfo{}, dberr.Wrap(err, "Contact info")
	}

	service.logger.Info("contact_info_updated", slog.Bool("created", created), slog.Int("fields", len(fields)))
	return info, nil
}
