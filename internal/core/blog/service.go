package blog

import (
	"context"
	"log/slog"
	"strings"

	"github.com/taibuivan/folio/internal/platform/apperr"
	"github.com/taibuivan/folio/internal/platform/dberr"
	"github.com/taibuivan/folio/internal/platform/docstore"
	"github.com/taibuivan/folio/internal/platform/validate"
	"github.com/taibuivan/folio/pkg/pointer"
	"github.com/taibuivan/folio/pkg/slice"
	"github.com/taibuivan/folio/pkg/slug"
)

type Service struct {
	repo     Repository
	markdown *Markdown
	logger   *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:     repo,
		markdown: NewMarkdown(),
		logger:   logger,
	}
}

// # Public

// ListPublished returns published posts, newest first.
func (service *Service) ListPublished(context context.Context, query ListQuery) ([]Post, error) {
	criteria := map[string]any{FieldStatus: string(StatusPublished)}
	if query.Category != "" {
		criteria[FieldCategory] = string(query.Category)
	}
	if query.Featured != nil {
		criteria[FieldFeatured] = *query.Featured
	}

	// Tags are matched after the equality filter, so the limit is applied here.
	posts, err := service.repo.Filter(context, criteria, PublicOrder, 0)
	if err != nil {
		return nil, dberr.Wrap(err, "Blog post")
	}

	if tag := normalizeTag(query.Tag); tag != "" {
		posts = slice.Filter(posts, func(p Post) bool { return hasTag(p, tag) })
	}
	if query.Limit > 0 && len(posts) > query.Limit {
		posts = posts[:query.Limit]
	}
	return posts, nil
}

// ReadPublished returns a published post by slug with its rendered HTML, and
// counts the view.
func (service *Service) ReadPublished(context context.Context, postSlug string) (PostView, error) {
	matches, err := service.repo.Filter(context, map[string]any{
		FieldSlug:   postSlug,
		FieldStatus: string(StatusPublished),
	}, "", 1)
	if err != nil {
		return PostView{}, dberr.Wrap(err, "Blog post")
	}
	if len(matches) == 0 {
		return PostView{}, apperr.NotFound("Blog post")
	}
	post := matches[0]

	// Last write wins; concurrent reads may undercount. A view is not an
	// edit, so updated_date stays as it was.
	viewed, err := service.repo.Touch(context, post.ID, map[string]any{FieldViews: post.Views + 1})
	if err != nil {
		return PostView{}, dberr.Wrap(err, "Blog post")
	}

	html, err := service.markdown.Render(viewed.Content)
	if err != nil {
		return PostView{}, apperr.Internal(err)
	}

	return PostView{Post: viewed, ContentHTML: html}, nil
}

// # Admin

func (service *Service) ListAll(context context.Context, status Status) ([]Post, error) {
	if status != "" {
		posts, err := service.repo.Filter(context, map[string]any{FieldStatus: string(status)}, AdminOrder, 0)
		return posts, dberr.Wrap(err, "Blog post")
	}

	posts, err := service.repo.List(context, AdminOrder)
	return posts, dberr.Wrap(err, "Blog post")
}

func (service *Service) GetPost(context context.Context, id string) (*Post, error) {
	post, err := service.repo.Get(context, id)
	if err != nil {
		return nil, dberr.Wrap(err, "Blog post")
	}
	if post == nil {
		return nil, apperr.NotFound("Blog post")
	}
	return post, nil
}

// CreatePost stores a new post. The slug comes from the title when not given
// and gets a numeric suffix when another post already uses it.
func (service *Service) CreatePost(context context.Context, input Post) (Post, error) {
	if input.Category == "" {
		input.Category = CategoryOther
	}
	if input.Status == "" {
		input.Status = StatusDraft
	}

	base := strings.TrimSpace(input.Slug)
	if base == "" {
		base = slug.From(input.Title)
	}

	validator := &validate.Validator{}
	validator.Required(FieldTitle, input.Title).MaxLen(FieldTitle, input.Title, maxTitleLength)
	validator.Required(FieldContent, input.Content)
	validator.OneOf(FieldCategory, string(input.Category), Categories...)
	validator.OneOf(FieldStatus, string(input.Status), string(StatusDraft), string(StatusPublished))
	validator.OptionalURL(FieldFeaturedImage, input.FeaturedImage)
	if strings.TrimSpace(input.Title) != "" {
		validator.Slug(FieldSlug, base)
	}

	if err := validator.Err(); err != nil {
		return Post{}, err
	}

	postSlug, err := service.uniqueSlug(context, base, "")
	if err != nil {
		return Post{}, err
	}

	input.Slug = postSlug
	input.Tags = normalizeTags(input.Tags)
	input.ReadingTime = ReadingTime(service.markdown.CountWords(input.Content))
	input.Views = 0
	input.PublishedDate = nil
	if input.Published() {
		input.PublishedDate = pointer.To(service.repo.Now())
	}

	created, err := service.repo.Create(context, input)
	if err != nil {
		return Post{}, dberr.Wrap(err, "Blog post")
	}

	service.logger.Info("blog_post_created",
		slog.String("post_id", created.ID),
		slog.String("slug", created.Slug),
		slog.String("status", string(created.Status)),
	)
	return created, nil
}

// UpdatePost merges patch and keeps the derived fields in step with it.
// published_date is stamped only the first time a post is published.
func (service *Service) UpdatePost(context context.Context, id string, patch Patch) (Post, error) {
	current, err := service.GetPost(context, id)
	if err != nil {
		return Post{}, err
	}

	validator := &validate.Validator{}
	if patch.Title != nil {
		validator.Required(FieldTitle, *patch.Title).MaxLen(FieldTitle, *patch.Title, maxTitleLength)
	}
	if patch.Content != nil {
		validator.Required(FieldContent, *patch.Content)
	}
	if patch.Category != nil {
		validator.OneOf(FieldCategory, string(*patch.Category), Categories...)
	}
	if patch.Status != nil {
		validator.OneOf(FieldStatus, string(*patch.Status), string(StatusDraft), string(StatusPublished))
	}
	if patch.FeaturedImage != nil {
		validator.OptionalURL(FieldFeaturedImage, *patch.FeaturedImage)
	}

	var base string
	if patch.Slug != nil {
		base = strings.TrimSpace(*patch.Slug)
		if base == "" {
			base = slug.From(pointer.Fallback(patch.Title, current.Title))
		}
		validator.Slug(FieldSlug, base)
	}

	if err := validator.Err(); err != nil {
		return Post{}, err
	}

	if patch.Tags != nil {
		patch.Tags = pointer.To(normalizeTags(*patch.Tags))
	}

	fields, err := docstore.PatchFields(patch)
	if err != nil {
		return Post{}, apperr.Internal(err)
	}

	if patch.Slug != nil {
		postSlug, err := service.uniqueSlug(context, base, id)
		if err != nil {
			return Post{}, err
		}
		fields[FieldSlug] = postSlug
	}
	if patch.Content != nil {
		fields[FieldReadingTime] = ReadingTime(service.markdown.CountWords(*patch.Content))
	}
	if pointer.Val(patch.Status) == StatusPublished && current.PublishedDate == nil {
		fields[FieldPublishedDate] = service.repo.Now().String()
	}

	updated, err := service.repo.Update(context, id, fields)
	if err != nil {
		return Post{}, dberr.Wrap(err, "Blog post")
	}

	service.logger.Info("blog_post_updated",
		slog.String("post_id", id),
		slog.String("status", string(updated.Status)),
	)
	return updated, nil
}

func (service *Service) DeletePost(context context.Context, id string) (string, error) {
	result, err := service.repo.Delete(context, id)
	if err != nil {
		return "", dberr.Wrap(err, "Blog post")
	}

	service.logger.Warn("blog_post_deleted", slog.String("post_id", id))
	return result.ID, nil
}

// uniqueSlug returns base, or base-2, base-3... for the first candidate no
// other post uses. exceptID is the post being edited.
func (service *Service) uniqueSlug(context context.Context, base, exceptID string) (string, error) {
	for n := 1; ; n++ {
		candidate := slug.WithSuffix(base, n)

		taken, err := service.repo.Filter(context, map[string]any{FieldSlug: candidate}, "", 0)
		if err != nil {
			return "", dberr.Wrap(err, "Blog post")
		}

		others := slice.Filter(taken, func(p Post) bool { return p.ID != exceptID })
		if len(others) == 0 {
			if n > 1 {
				service.logger.Info("blog_slug_suffixed", slog.String("base", base), slog.String("slug", candidate))
			}
			return candidate, nil
		}
	}
}

func normalizeTag(tag string) string {
	return strings.ToLower(strings.TrimSpace(tag))
}

// normalizeTags lowercases, trims and de-duplicates, keeping first occurrences.
func normalizeTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	seen := make(map[string]bool, len(tags))
	for _, tag := range tags {
		tag = normalizeTag(tag)
		if tag == "" || seen[tag] {
			continue
		}
		seen[tag] = true
		out = append(out, tag)
	}
	return out
}

func hasTag(post Post, tag string) bool {
	for _, t := range post.Tags {
		if t == tag {
			return true
		}
	}
	return false
}
