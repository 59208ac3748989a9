package blog

import "github.com/taibuivan/folio/internal/platform/docstore"

type Status string

const (
	StatusDraft     Status = "draft"
	StatusPublished Status = "published"
)

type Category string

const (
	CategoryTutorial Category = "tutorial"
	CategoryProject  Category = "project"
	CategoryThoughts Category = "thoughts"
	CategoryNews     Category = "news"
	CategoryOther    Category = "other"
)

var Categories = []string{
	string(CategoryTutorial),
	string(CategoryProject),
	string(CategoryThoughts),
	string(CategoryNews),
	string(CategoryOther),
}

// Post is a blog article. Slug, ReadingTime and PublishedDate are maintained
// by the service.
type Post struct {
	ID            string              `json:"id"`
	Title         string              `json:"title"`
	Slug          string              `json:"slug"`
	Excerpt       string              `json:"excerpt"`
	Content       string              `json:"content"`
	Author        string              `json:"author"`
	FeaturedImage string              `json:"featured_image"`
	Tags          []string            `json:"tags"`
	Category      Category            `json:"category"`
	Status        Status              `json:"status"`
	Featured      bool                `json:"featured"`
	ReadingTime   int                 `json:"reading_time"`
	Views         int                 `json:"views"`
	PublishedDate *docstore.Timestamp `json:"published_date"`
	CreatedDate   docstore.Timestamp  `json:"created_date"`
	UpdatedDate   docstore.Timestamp  `json:"updated_date"`
}

// Published reports whether the post is publicly visible.
func (p Post) Published() bool { return p.Status == StatusPublished }

// PostView is a published post with its rendered body.
type PostView struct {
	Post
	ContentHTML string `json:"content_html"`
}

// Patch is an admin edit. An empty Slug asks for one derived from the title.
type Patch struct {
	Title         *string   `json:"title,omitempty"`
	Slug          *string   `json:"slug,omitempty"`
	Excerpt       *string   `json:"excerpt,omitempty"`
	Content       *string   `json:"content,omitempty"`
	Author        *string   `json:"author,omitempty"`
	FeaturedImage *string   `json:"featured_image,omitempty"`
	Tags          *[]string `json:"tags,omitempty"`
	Category      *Category `json:"category,omitempty"`
	Status        *Status   `json:"status,omitempty"`
	Featured      *bool     `json:"featured,omitempty"`
}

// ListQuery narrows the public list. Zero values mean no constraint.
type ListQuery struct {
	Tag      string
	Category Category
	Featured *bool
	Limit    int
}

const (
	FieldTitle         = "title"
	FieldSlug          = "slug"
	FieldContent       = "content"
	FieldFeaturedImage = "featured_image"
	FieldCategory      = "category"
	FieldStatus        = "status"
	FieldFeatured      = "featured"
	FieldReadingTime   = "reading_time"
	FieldViews         = "views"
	FieldPublishedDate = "published_date"

	PublicOrder = "-published_date"
	AdminOrder  = "-created_date"

	maxTitleLength = 200
)
