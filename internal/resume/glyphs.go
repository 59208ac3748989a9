package resume

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Glyphs maps characters the PDF core fonts cannot draw to ASCII stand-ins.
// Every string drawn by a template goes through its Glyphs first.
type Glyphs struct {
	replacer *strings.Replacer
}

// typography is shared by every table.
var typography = []string{
	"–", "-", "—", "-", "−", "-",
	"‘", "'", "’", "'", "“", `"`, "”", `"`,
	"…", "...", "•", "-", "·", "-",
	"→", "->", "←", "<-", "\u00a0", " ",
	"×", "x", "©", "(c)", "®", "(R)", "™", "(TM)",
	"✓", "+", "✔", "+", "★", "*", "⭐", "*",
	// Letters NFD does not decompose.
	"đ", "d", "Đ", "D", "ß", "ss", "æ", "ae", "Æ", "AE",
	"ø", "o", "Ø", "O", "ł", "l", "Ł", "L", "œ", "oe",
}

// NewGlyphs builds a table from icon/abbreviation pairs layered over the
// shared typography substitutions.
func NewGlyphs(icons ...string) Glyphs {
	pairs := append(append([]string{}, icons...), typography...)
	return Glyphs{replacer: strings.NewReplacer(pairs...)}
}

var (
	// quickGlyphs keeps the single-column template terse.
	quickGlyphs = NewGlyphs(
		"\U0001F4E7", "E:", "✉️", "E:", "✉", "E:",
		"\U0001F4F1", "P:", "\U0001F4DE", "P:", "☎", "P:",
		"\U0001F4CD", "L:", "\U0001F517", "W:", "\U0001F310", "W:",
		"\U0001F4BC", "in:", "\U0001F419", "gh:",
		"\U0001F393", "", "\U0001F3C6", "", "\U0001F4BB", "", "\U0001F680", "", "\U0001F3E2", "",
	)

	modernGlyphs = NewGlyphs(
		"\U0001F4E7", "@", "✉️", "@", "✉", "@",
		"\U0001F4F1", "Tel", "\U0001F4DE", "Tel", "☎", "Tel",
		"\U0001F4CD", "Loc", "\U0001F517", "Web", "\U0001F310", "Web",
		"\U0001F4BC", "LinkedIn", "\U0001F419", "GitHub",
		"\U0001F393", "[EDU]", "\U0001F3C6", "[*]", "\U0001F4BB", "[DEV]", "\U0001F680", "[>]",
		"\U0001F3E2", "[WORK]",
	)

	executiveGlyphs = NewGlyphs(
		"\U0001F4E7", "Email", "✉️", "Email", "✉", "Email",
		"\U0001F4F1", "Phone", "\U0001F4DE", "Phone", "☎", "Phone",
		"\U0001F4CD", "Address", "\U0001F517", "Website", "\U0001F310", "Website",
		"\U0001F4BC", "LinkedIn", "\U0001F419", "GitHub",
		"\U0001F393", "", "\U0001F3C6", "", "\U0001F4BB", "", "\U0001F680", "", "\U0001F3E2", "",
	)
)

// Apply returns s reduced to printable ASCII: table substitutions first, then
// accents folded, then anything still outside the range dropped.
func (g Glyphs) Apply(s string) string {
	if isPrintableASCII(s) {
		return s
	}

	if g.replacer != nil {
		s = g.replacer.Replace(s)
	}

	folder := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	if folded, _, err := transform.String(folder, s); err == nil {
		s = folded
	}

	return strings.Map(func(r rune) rune {
		switch {
		case r == '\n':
			return r
		case r == '\t':
			return ' '
		case r < 0x20 || r > 0x7e:
			return -1
		}
		return r
	}, s)
}

func isPrintableASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < 0x20 || s[i] > 0x7e {
			return false
		}
	}
	return true
}
