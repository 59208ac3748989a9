/*
Package resume renders the owner's résumé as a PDF in one of three templates.

The data model is loaded from a YAML file and, when a store is available,
completed with the projects, experience and skills the site already shows
(see [Assembler]). Rendering is a single pass per template over fixed sections;
see [Render].
*/
package resume

import (
	"fmt"
	"os"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"gopkg.in/yaml.v3"
)

// # Data Model

type Data struct {
	Personal        Personal        `yaml:"personal" json:"personal"`
	Education       []Education     `yaml:"education" json:"education"`
	SkillCategories []SkillCategory `yaml:"skill_categories" json:"skill_categories"`
	Projects        []Project       `yaml:"projects" json:"projects"`
	Experience      []Experience    `yaml:"experience" json:"experience"`
	Certifications  []Certification `yaml:"certifications" json:"certifications"`
	Languages       []Language      `yaml:"languages" json:"languages"`
	Hobbies         []string        `yaml:"hobbies" json:"hobbies"`
}

type Personal struct {
	FullName string `yaml:"full_name" json:"full_name"`
	Title    string `yaml:"title" json:"title"`
	Email    string `yaml:"email" json:"email"`
	Phone    string `yaml:"phone" json:"phone"`
	Location string `yaml:"location" json:"location"`
	Website  string `yaml:"website" json:"website"`
	GitHub   string `yaml:"github" json:"github"`
	LinkedIn string `yaml:"linkedin" json:"linkedin"`
	Summary  string `yaml:"summary" json:"summary"`
	PhotoURL string `yaml:"photo_url" json:"photo_url"`
}

// Education carries either a single Grade or a per-semester breakdown.
type Education struct {
	Institution  string     `yaml:"institution" json:"institution"`
	Degree       string     `yaml:"degree" json:"degree"`
	Period       string     `yaml:"period" json:"period"`
	Description  string     `yaml:"description" json:"description"`
	Achievements []string   `yaml:"achievements" json:"achievements"`
	Grade        string     `yaml:"grade" json:"grade,omitempty"`
	Semesters    []Semester `yaml:"semesters" json:"semesters,omitempty"`
}

type Semester struct {
	Semester string `yaml:"semester" json:"semester"`
	GPA      string `yaml:"gpa" json:"gpa"`
}

type SkillCategory struct {
	Name   string       `yaml:"name" json:"name"`
	Icon   string       `yaml:"icon" json:"icon"`
	Skills []SkillLevel `yaml:"skills" json:"skills"`
}

// SkillLevel is a named skill with a 0-100 proficiency.
type SkillLevel struct {
	Name  string `yaml:"name" json:"name"`
	Level int    `yaml:"level" json:"level"`
}

type Project struct {
	Name         string   `yaml:"name" json:"name"`
	Period       string   `yaml:"period" json:"period"`
	Description  string   `yaml:"description" json:"description"`
	Technologies []string `yaml:"technologies" json:"technologies"`
	Features     []string `yaml:"features" json:"features"`
	Achievements []string `yaml:"achievements" json:"achievements"`
	Link         string   `yaml:"link" json:"link"`
}

type Experience struct {
	Company          string   `yaml:"company" json:"company"`
	Position         string   `yaml:"position" json:"position"`
	Location         string   `yaml:"location" json:"location"`
	Period           string   `yaml:"period" json:"period"`
	Description      string   `yaml:"description" json:"description"`
	Responsibilities []string `yaml:"responsibilities" json:"responsibilities"`
}

type Certification struct {
	Name   string `yaml:"name" json:"name"`
	Issuer string `yaml:"issuer" json:"issuer"`
	Date   string `yaml:"date" json:"date"`
}

// Language is a spoken language; Proficiency is the label ("Native"), Level
// the 0-100 meter value.
type Language struct {
	Name        string `yaml:"name" json:"name"`
	Proficiency string `yaml:"proficiency" json:"proficiency"`
	Level       int    `yaml:"level" json:"level"`
}

// # Validation

func (d Data) Validate() error {
	return validation.ValidateStruct(&d,
		validation.Field(&d.Personal),
		validation.Field(&d.Education),
		validation.Field(&d.SkillCategories),
		validation.Field(&d.Projects),
		validation.Field(&d.Experience),
		validation.Field(&d.Certifications),
		validation.Field(&d.Languages),
	)
}

func (p Personal) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.FullName, validation.Required, validation.Length(1, 120)),
		validation.Field(&p.Email, is.EmailFormat),
		validation.Field(&p.Website, is.URL),
		validation.Field(&p.PhotoURL, is.URL),
	)
}

func (e Education) Validate() error {
	return validation.ValidateStruct(&e,
		validation.Field(&e.Institution, validation.Required),
		validation.Field(&e.Semesters),
	)
}

func (s Semester) Validate() error {
	return validation.ValidateStruct(&s,
		validation.Field(&s.Semester, validation.Required),
		validation.Field(&s.GPA, validation.Required),
	)
}

func (c SkillCategory) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Name, validation.Required),
		validation.Field(&c.Skills),
	)
}

func (s SkillLevel) Validate() error {
	return validation.ValidateStruct(&s,
		validation.Field(&s.Name, validation.Required),
		validation.Field(&s.Level, validation.Min(0), validation.Max(100)),
	)
}

func (p Project) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Name, validation.Required),
	)
}

func (e Experience) Validate() error {
	return validation.ValidateStruct(&e,
		validation.Field(&e.Company, validation.Required),
		validation.Field(&e.Position, validation.Required),
	)
}

func (c Certification) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Name, validation.Required),
	)
}

func (l Language) Validate() error {
	return validation.ValidateStruct(&l,
		validation.Field(&l.Name, validation.Required),
		validation.Field(&l.Level, validation.Min(0), validation.Max(100)),
	)
}

// # Loading

// LoadFile reads and validates a YAML résumé file.
func LoadFile(path string) (Data, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Data{}, fmt.Errorf("resume: read %s: %w", path, err)
	}
	return Parse(raw)
}

// Parse decodes and validates YAML résumé data.
func Parse(raw []byte) (Data, error) {
	var data Data
	if err := yaml.Unmarshal(raw, &data); err != nil {
		return Data{}, fmt.Errorf("resume: decode yaml: %w", err)
	}
	if err := data.Validate(); err != nil {
		return Data{}, fmt.Errorf("resume: invalid data: %w", err)
	}
	return data, nil
}
