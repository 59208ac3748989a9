package message

import "github.com/taibuivan/folio/internal/platform/docstore"

// Message is an inbound contact-form submission. Only Read may change after
// it is stored.
type Message struct {
	ID          string             `json:"id"`
	Name        string             `json:"name"`
	Email       string             `json:"email"`
	Subject     string             `json:"subject"`
	Message     string             `json:"message"`
	Read        bool               `json:"read"`
	CreatedDate docstore.Timestamp `json:"created_date"`
	UpdatedDate docstore.Timestamp `json:"updated_date"`
}

// Submission is what the public contact form posts.
type Submission struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// ReadPatch is the only update a message accepts.
type ReadPatch struct {
	Read *bool `json:"read,omitempty"`
}

const (
	FieldName    = "name"
	FieldEmail   = "email"
	FieldSubject = "subject"
	FieldMessage = "message"
	FieldRead    = "read"

	// InboxOrder shows the newest message first.
	InboxOrder = "-created_date"
)
