package resume_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/folio/internal/resume"
)

/*
TestGlyphs_Apply verifies icons, typography and accents all end up as
printable ASCII.
*/
func TestGlyphs_Apply(t *testing.T) {
	glyphs := resume.NewGlyphs("\U0001F4E7", "Email:")

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain ascii untouched", "Jane Doe", "Jane Doe"},
		{"icon from table", "\U0001F4E7 jane@example.com", "Email: jane@example.com"},
		{"accents folded", "Nguyễn Văn Đức", "Nguyen Van Duc"},
		{"typography", "“Go” – fast… ✓", `"Go" - fast... +`},
		{"unknown emoji dropped", "Ship it \U0001F680", "Ship it "},
		{"variation selector dropped", "☕️ Coffee", " Coffee"},
		{"newline kept", "one\ntwo", "one\ntwo"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, glyphs.Apply(tc.in))
		})
	}
}
