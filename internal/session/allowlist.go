package session

import "strings"

// AllowList is the set of emails allowed into the dashboard. Matching is
// exact apart from case.
type AllowList struct {
	emails map[string]struct{}
}

func NewAllowList(emails []string) AllowList {
	set := make(map[string]struct{}, len(emails))
	for _, email := range emails {
		if email = normalizeEmail(email); email != "" {
			set[email] = struct{}{}
		}
	}
	return AllowList{emails: set}
}

func (list AllowList) Contains(email string) bool {
	_, ok := list.emails[normalizeEmail(email)]
	return ok
}

func (list AllowList) Len() int { return len(list.emails) }

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
