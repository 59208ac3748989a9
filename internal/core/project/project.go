package project

import "github.com/taibuivan/folio/internal/platform/docstore"

// Project is a portfolio entry shown on the projects page.
type Project struct {
	ID              string             `json:"id"`
	Title           string             `json:"title"`
	Description     string             `json:"description"`
	LongDescription string             `json:"long_description"`
	Technologies    []string           `json:"technologies"`
	ImageURL        string             `json:"image_url"`
	GithubURL       string             `json:"github_url"`
	LiveURL         string             `json:"live_url"`
	Featured        bool               `json:"featured"`
	Order           int                `json:"order"`
	CreatedDate     docstore.Timestamp `json:"created_date"`
	UpdatedDate     docstore.Timestamp `json:"updated_date"`
}

// Patch holds the fields an admin edit may change. Nil means unchanged.
type Patch struct {
	Title           *string   `json:"title,omitempty"`
	Description     *string   `json:"description,omitempty"`
	LongDescription *string   `json:"long_description,omitempty"`
	Technologies    *[]string `json:"technologies,omitempty"`
	ImageURL        *string   `json:"image_url,omitempty"`
	GithubURL       *string   `json:"github_url,omitempty"`
	LiveURL         *string   `json:"live_url,omitempty"`
	Featured        *bool     `json:"featured,omitempty"`
	Order           *int      `json:"order,omitempty"`
}

// Query selects the public project list.
type Query struct {
	FeaturedOnly bool
	Limit        int
}

const (
	FieldTitle       = "title"
	FieldDescription = "description"
	FieldImageURL    = "image_url"
	FieldGithubURL   = "github_url"
	FieldLiveURL     = "live_url"
	FieldFeatured    = "featured"
	FieldOrder       = "order"

	// DisplayOrder puts the highest `order` first.
	DisplayOrder = "-order"

	maxTitleLength = 200
)
