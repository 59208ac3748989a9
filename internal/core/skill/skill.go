package skill

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/taibuivan/folio/internal/platform/docstore"
)

type Category string

const (
	CategoryFrontend Category = "frontend"
	CategoryBackend  Category = "backend"
	CategoryDatabase Category = "database"
	CategoryDevOps   Category = "devops"
	CategoryTools    Category = "tools"
	CategoryOther    Category = "other"
)

// Categories lists every category in display order.
var Categories = []Category{
	CategoryFrontend,
	CategoryBackend,
	CategoryDatabase,
	CategoryDevOps,
	CategoryTools,
	CategoryOther,
}

var labelOverrides = map[Category]string{
	CategoryDevOps: "DevOps",
}

// Label is the heading shown above a category.
func (c Category) Label() string {
	if label, ok := labelOverrides[c]; ok {
		return label
	}
	// A Caser keeps state, so each call gets its own.
	return cases.Title(language.English).String(string(c))
}

type Skill struct {
	ID          string             `json:"id"`
	Name        string             `json:"name"`
	Category    Category           `json:"category"`
	Proficiency int                `json:"proficiency"`
	Icon        string             `json:"icon"`
	Order       int                `json:"order"`
	CreatedDate docstore.Timestamp `json:"created_date"`
	UpdatedDate docstore.Timestamp `json:"updated_date"`
}

type Patch struct {
	Name        *string   `json:"name,omitempty"`
	Category    *Category `json:"category,omitempty"`
	Proficiency *int      `json:"proficiency,omitempty"`
	Icon        *string   `json:"icon,omitempty"`
	Order       *int      `json:"order,omitempty"`
}

// Group is one category section of the skills page.
type Group struct {
	Category Category `json:"category"`
	Label    string   `json:"label"`
	Skills   []Skill  `json:"skills"`
}

const (
	FieldName        = "name"
	FieldCategory    = "category"
	FieldProficiency = "proficiency"
	FieldOrder       = "order"

	DisplayOrder = "order"
)
