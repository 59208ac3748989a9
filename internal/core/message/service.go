package message

import (
	"context"
	"log/slog"
	"strings"

	"github.com/taibuivan/folio/internal/platform/apperr"
	"github.com/taibuivan/folio/internal/platform/dberr"
	"github.com/taibuivan/folio/internal/platform/validate"
	"github.com/taibuivan/folio/pkg/pagination"
	"github.com/taibuivan/folio/pkg/pointer"
)

type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// Submit validates a contact-form submission and stores it unread.
func (service *Service) Submit(context context.Context, input Submission) (Message, error) {
	input = Submission{
		Name:    strings.TrimSpace(input.Name),
		Email:   strings.TrimSpace(input.Email),
		Subject: strings.TrimSpace(input.Subject),
		Message: strings.TrimSpace(input.Message),
	}

	if err := ValidateSubmission(input); err != nil {
		return Message{}, err
	}

	created, err := service.repo.Create(context, Message{
		Name:    input.Name,
		Email:   input.Email,
		Subject: input.Subject,
		Message: input.Message,
	})
	if err != nil {
		return Message{}, dberr.Wrap(err, "Message")
	}

	service.logger.Info("message_received", slog.String("message_id", created.ID), slog.String("subject", created.Subject))
	return created, nil
}

// ValidateSubmission applies the contact-form field rules.
func ValidateSubmission(input Submission) error {
	validator := &validate.Validator{}

	if validator.Required(FieldName, input.Name); strings.TrimSpace(input.Name) != "" {
		validator.MinLen(FieldName, input.Name, 2).MaxLen(FieldName, input.Name, 100)
	}
	if validator.Required(FieldEmail, input.Email); strings.TrimSpace(input.Email) != "" {
		validator.Email(FieldEmail, input.Email)
	}
	if validator.Required(FieldSubject, input.Subject); strings.TrimSpace(input.Subject) != "" {
		validator.MinLen(FieldSubject, input.Subject, 3).MaxLen(FieldSubject, input.Subject, 200)
	}
	if validator.Required(FieldMessage, input.Message); strings.TrimSpace(input.Message) != "" {
		validator.MinLen(FieldMessage, input.Message, 10).MaxLen(FieldMessage, input.Message, 5000)
	}

	return validator.Err()
}

// Inbox returns one page of messages, newest first.
func (service *Service) Inbox(context context.Context, params pagination.Params, unreadOnly bool) ([]Message, pagination.Meta, error) {
	var (
		messages []Message
		err      error
	)
	if unreadOnly {
		messages, err = service.repo.Filter(context, map[string]any{FieldRead: false}, InboxOrder, 0)
	} else {
		messages, err = service.repo.List(context, InboxOrder)
	}
	if err != nil {
		return nil, pagination.Meta{}, dberr.Wrap(err, "Message")
	}

	page, meta := pagination.Window(messages, params)
	return page, meta, nil
}

func (service *Service) UnreadCount(context context.Context) (int, error) {
	unread, err := service.repo.Filter(context, map[string]any{FieldRead: false}, "", 0)
	if err != nil {
		return 0, dberr.Wrap(err, "Message")
	}
	return len(unread), nil
}

func (service *Service) GetMessage(context context.Context, id string) (*Message, error) {
	message, err := service.repo.Get(context, id)
	if err != nil {
		return nil, dberr.Wrap(err, "Message")
	}
	if message == nil {
		return nil, apperr.NotFound("Message")
	}
	return message, nil
}

// MarkRead sets the read flag. A patch without the flag marks as read.
func (service *Service) MarkRead(context context.Context, id string, patch ReadPatch) (Message, error) {
	read := true
	if patch.Read != nil {
		read = *patch.Read
	}

	updated, err := service.repo.Update(context, id, ReadPatch{Read: pointer.To(read)})
	if err != nil {
		return Message{}, dberr.Wrap(err, "Message")
	}

	service.logger.Info("message_marked", slog.String("message_id", id), slog.Bool("read", read))
	return updated, nil
}

func (service *Service) DeleteMessage(context context.Context, id string) (string, error) {
	result, err := service.repo.Delete(context, id)
	if err != nil {
		return "", dberr.Wrap(err, "Message")
	}

	service.logger.Warn("message_deleted", slog.String("message_id", id))
	return result.ID, nil
}
