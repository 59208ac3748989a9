package experience

import (
	"github.com/taibuivan/folio/internal/platform/docstore"
)

// Experience is a role on the experience timeline. A nil EndDate means the
// role is current.
type Experience struct {
	ID           string             `json:"id"`
	Company      string             `json:"company"`
	Position     string             `json:"position"`
	Location     string             `json:"location"`
	StartDate    string             `json:"start_date"`
	EndDate      *string            `json:"end_date"`
	Description  string             `json:"description"`
	Achievements []string           `json:"achievements"`
	Order        int                `json:"order"`
	CreatedDate  docstore.Timestamp `json:"created_date"`
	UpdatedDate  docstore.Timestamp `json:"updated_date"`
}

// Current reports whether the role has no end date.
func (e Experience) Current() bool {
	return e.EndDate == nil || *e.EndDate == ""
}

// Patch is an admin edit. Setting Current clears end_date and wins over EndDate.
type Patch struct {
	Company      *string   `json:"company,omitempty"`
	Position     *string   `json:"position,omitempty"`
	Location     *string   `json:"location,omitempty"`
	StartDate    *string   `json:"start_date,omitempty"`
	EndDate      *string   `json:"end_date,omitempty"`
	Current      bool      `json:"current,omitempty"`
	Description  *string   `json:"description,omitempty"`
	Achievements *[]string `json:"achievements,omitempty"`
	Order        *int      `json:"order,omitempty"`
}

// PatchFields implements docstore.Patcher.
func (p Patch) PatchFields() (map[string]any, error) {
	fields := map[string]any{}

	set := func(name string, value *string) {
		if value != nil {
			fields[name] = *value
		}
	}
	set(FieldCompany, p.Company)
	set(FieldPosition, p.Position)
	set("location", p.Location)
	set(FieldStartDate, p.StartDate)
	set(FieldEndDate, p.EndDate)
	set("description", p.Description)

	if p.Achievements != nil {
		achievements := make([]any, len(*p.Achievements))
		for i, a := range *p.Achievements {
			achievements[i] = a
		}
		fields["achievements"] = achievements
	}
	if p.Order != nil {
		fields[FieldOrder] = *p.Order
	}
	if p.Current {
		fields[FieldEndDate] = nil
	}

	return fields, nil
}

const (
	FieldCompany   = "company"
	FieldPosition  = "position"
	FieldStartDate = "start_date"
	FieldEndDate   = "end_date"
	FieldOrder     = "order"

	DisplayOrder = "-order"
)

var _ docstore.Patcher = Patch{}
