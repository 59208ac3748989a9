package siteconfig

import "github.com/taibuivan/folio/internal/platform/docstore"

// ProfileImage is the singleton holding the portrait shown on the home page.
type ProfileImage struct {
	ID           string             `json:"id"`
	ProfileImage string             `json:"profileImage"`
	CreatedAt    docstore.Timestamp `json:"created_at"`
	UpdatedAt    docstore.Timestamp `json:"updated_at"`
}

// ContactInfo is the singleton shown on the contact page.
type ContactInfo struct {
	ID           string `json:"id"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	Address      string `json:"address"`
	Website      string `json:"website"`
	Github       string `json:"github"`
	Linkedin     string `json:"linkedin"`
	Twitter      string `json:"twitter"`
	Availability string `json:"availability"`
	Description  string `json:"description"`
}

type ContactPatch struct {
	Email        *string `json:"email,omitempty"`
	Phone        *string `json:"phone,omitempty"`
	Address      *string `json:"address,omitempty"`
	Website      *string `json:"website,omitempty"`
	Github       *string `json:"github,omitempty"`
	Linkedin     *string `json:"linkedin,omitempty"`
	Twitter      *string `json:"twitter,omitempty"`
	Availability *string `json:"availability,omitempty"`
	Description  *string `json:"description,omitempty"`
}

type ProfileImagePatch struct {
	ProfileImage string `json:"profileImage"`
}

const (
	FieldProfileImage = "profileImage"
	FieldCreatedAt    = "created_at"
	FieldUpdatedAt    = "updated_at"
	FieldEmail        = "email"
	FieldWebsite      = "website"
	FieldGithub       = "github"
	FieldLinkedin     = "linkedin"
)
