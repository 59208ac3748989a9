package resume

import (
	"strings"

	"github.com/go-pdf/fpdf"
)

type theme struct {
	accent  rgb
	ink     rgb
	muted   rgb
	chipInk rgb
	track   rgb

	name    textStyle
	title   textStyle
	strong  textStyle
	body    textStyle
	small   textStyle
	italic  textStyle
	spacing float64
}

func newTheme(accent, chipInk rgb) theme {
	ink := rgb{33, 37, 41}
	muted := rgb{108, 117, 125}
	return theme{
		accent:  accent,
		ink:     ink,
		muted:   muted,
		chipInk: chipInk,
		track:   rgb{222, 226, 230},
		name:    textStyle{size: 22, style: "B", color: ink, leading: 9},
		title:   textStyle{size: 12, color: accent, leading: 6},
		strong:  textStyle{size: 10, style: "B", color: ink, leading: 5},
		body:    textStyle{size: 9, color: ink, leading: 4.4},
		small:   textStyle{size: 8, color: muted, leading: 4},
		italic:  textStyle{size: 8.5, style: "I", color: muted, leading: 4.2},
		spacing: 3,
	}
}

// layoutFunc lays data out on c. hasPhoto reports whether the photo image was
// registered.
type layoutFunc func(c *canvas, data Data, hasPhoto bool)

type template struct {
	glyphs Glyphs
	layout layoutFunc
}

var templates = map[Kind]template{
	KindQuick:     {glyphs: quickGlyphs, layout: layoutQuick},
	KindModern:    {glyphs: modernGlyphs, layout: layoutModern},
	KindExecutive: {glyphs: executiveGlyphs, layout: layoutExecutive},
}

// # Quick

// layoutQuick is a single column, one page when the content fits.
func layoutQuick(c *canvas, data Data, hasPhoto bool) {
	th := newTheme(rgb{13, 110, 253}, rgb{255, 255, 255})
	th.body.leading = 4.2

	col := c.column(pageMargin, pageWidth-2*pageMargin, pageMargin, pageMargin)

	if hasPhoto {
		const size = 24.0
		photoCol := c.column(pageWidth-pageMargin-size, size, pageMargin, pageMargin)
		photoCol.image(photoImageName, size, size)
		col.width -= size + 5
	}

	writeHeader(col, th, data.Personal)
	col.paragraph(th.small, strings.Join(contactItems(data.Personal), "  |  "))
	if hasPhoto {
		col.width = pageWidth - 2*pageMargin
		col.y = max(col.y, pageMargin+26)
	}
	col.rule(th.track)

	writeSummary(col, th, data.Personal.Summary)
	writeExperience(col, th, data.Experience)
	writeProjects(col, th, data.Projects)
	writeEducation(col, th, data.Education)
	writeSkillList(col, th, data.SkillCategories)
	writeCertifications(col, th, data.Certifications)
	writeLanguageList(col, th, data.Languages)
	writeHobbies(col, th, data.Hobbies)
}

// # Modern

// layoutModern has a header band above a narrow left column with meters and a
// wide right column with the narrative sections.
func layoutModern(c *canvas, data Data, hasPhoto bool) {
	th := newTheme(rgb{111, 66, 193}, rgb{255, 255, 255})
	const band = 42.0

	c.background = func(pdf *fpdf.Fpdf, page int) {
		if page != 0 {
			return
		}
		pdf.SetFillColor(th.accent.r, th.accent.g, th.accent.b)
		pdf.Rect(0, 0, pageWidth, band, "F")
	}

	header := c.column(pageMargin, pageWidth-2*pageMargin, 11, pageMargin)
	if hasPhoto {
		const size = 28.0
		photoCol := c.column(pageWidth-pageMargin-size, size, 7, pageMargin)
		photoCol.image(photoImageName, size, size)
		header.width -= size + 5
	}

	white := rgb{255, 255, 255}
	name, title := th.name, th.title
	name.color, title.color = white, rgb{230, 220, 250}
	header.paragraph(name, data.Personal.FullName)
	header.paragraph(title, data.Personal.Title)

	left := c.column(pageMargin, 62, band+8, pageMargin)
	right := c.column(pageMargin+62+8, pageWidth-2*pageMargin-62-8, band+8, pageMargin)

	left.chip("Contact", th.accent, th.chipInk)
	for _, item := range contactItems(data.Personal) {
		left.paragraph(th.small, item)
	}
	left.gap(th.spacing)
	writeSkillMeters(left, th, data.SkillCategories)
	writeLanguageMeters(left, th, data.Languages)
	writeCertifications(left, th, data.Certifications)
	writeHobbies(left, th, data.Hobbies)

	writeSummary(right, th, data.Personal.Summary)
	writeExperience(right, th, data.Experience)
	writeProjects(right, th, data.Projects)
	writeEducation(right, th, data.Education)
}

// # Executive

// layoutExecutive puts contact and meters in a shaded sidebar on every page,
// with the name and narrative sections in the main column.
func layoutExecutive(c *canvas, data Data, hasPhoto bool) {
	th := newTheme(rgb{25, 42, 86}, rgb{255, 255, 255})
	const sidebar = 68.0

	c.background = func(pdf *fpdf.Fpdf, _ int) {
		pdf.SetFillColor(236, 239, 244)
		pdf.Rect(0, 0, sidebar, pageHeight, "F")
	}

	side := c.column(8, sidebar-16, pageMargin, pageMargin)
	main := c.column(sidebar+8, pageWidth-sidebar-8-pageMargin, pageMargin, pageMargin)

	if hasPhoto {
		const size = 40.0
		side.x += (side.width - size) / 2
		side.image(photoImageName, size, size)
		side.x = 8
		side.gap(6)
	}

	side.chip("Contact", th.accent, th.chipInk)
	for _, item := range contactItems(data.Personal) {
		side.paragraph(th.small, item)
	}
	side.gap(th.spacing)
	writeSkillMeters(side, th, data.SkillCategories)
	writeLanguageMeters(side, th, data.Languages)
	writeHobbies(side, th, data.Hobbies)

	writeHeader(main, th, data.Personal)
	main.rule(th.accent)
	main.gap(1)
	writeSummary(main, th, data.Personal.Summary)
	writeExperience(main, th, data.Experience)
	writeProjects(main, th, data.Projects)
	writeEducation(main, th, data.Education)
	writeCertifications(main, th, data.Certifications)
}

// # Sections
//
// Sections with no entries are left out.

func contactItems(p Personal) []string {
	fields := []struct{ icon, value string }{
		{"\U0001F4E7", p.Email},
		{"\U0001F4F1", p.Phone},
		{"\U0001F4CD", p.Location},
		{"\U0001F517", p.Website},
		{"\U0001F419", p.GitHub},
		{"\U0001F4BC", p.LinkedIn},
	}

	var items []string
	for _, field := range fields {
		if value := strings.TrimSpace(field.value); value != "" {
			items = append(items, field.icon+" "+value)
		}
	}
	return items
}

func writeHeader(col *column, th theme, p Personal) {
	col.paragraph(th.name, p.FullName)
	col.paragraph(th.title, p.Title)
	col.gap(1)
}

func writeSummary(col *column, th theme, summary string) {
	if strings.TrimSpace(summary) == "" {
		return
	}
	col.chip("Profile", th.accent, th.chipInk)
	col.paragraph(th.body, summary)
	col.gap(th.spacing)
}

func writeExperience(col *column, th theme, items []Experience) {
	if len(items) == 0 {
		return
	}
	col.chip("\U0001F3E2 Experience", th.accent, th.chipInk)
	for _, item := range items {
		col.line(th.strong, item.Position, th.small, item.Period)
		col.line(th.italic, joinNonEmpty(" - ", item.Company, item.Location), th.small, "")
		col.paragraph(th.body, item.Description)
		col.bullets(th.body, item.Responsibilities)
		col.gap(th.spacing)
	}
}

func writeProjects(col *column, th theme, items []Project) {
	if len(items) == 0 {
		return
	}
	col.chip("\U0001F680 Projects", th.accent, th.chipInk)
	for _, item := range items {
		col.line(th.strong, item.Name, th.small, item.Period)
		col.paragraph(th.body, item.Description)
		if len(item.Technologies) > 0 {
			col.paragraph(th.italic, "Tech: "+strings.Join(item.Technologies, ", "))
		}
		col.bullets(th.body, item.Features)
		col.bullets(th.body, item.Achievements)
		if item.Link != "" {
			col.paragraph(th.small, "\U0001F517 "+item.Link)
		}
		col.gap(th.spacing)
	}
}

func writeEducation(col *column, th theme, items []Education) {
	if len(items) == 0 {
		return
	}
	col.chip("\U0001F393 Education", th.accent, th.chipInk)
	for _, item := range items {
		col.line(th.strong, item.Institution, th.small, item.Period)
		if item.Degree != "" {
			col.paragraph(th.italic, item.Degree)
		}
		col.paragraph(th.body, item.Description)

		switch {
		case item.Grade != "":
			col.paragraph(th.body, "Grade: "+item.Grade)
		case len(item.Semesters) > 0:
			scores := make([]string, 0, len(item.Semesters))
			for _, semester := range item.Semesters {
				scores = append(scores, semester.Semester+": "+semester.GPA)
			}
			col.paragraph(th.body, "GPA by semester: "+strings.Join(scores, "  |  "))
		}

		col.bullets(th.body, item.Achievements)
		col.gap(th.spacing)
	}
}

func writeSkillList(col *column, th theme, categories []SkillCategory) {
	if len(categories) == 0 {
		return
	}
	col.chip("\U0001F4BB Skills", th.accent, th.chipInk)
	for _, category := range categories {
		names := make([]string, 0, len(category.Skills))
		for _, skill := range category.Skills {
			names = append(names, skill.Name)
		}
		col.paragraph(th.body, joinNonEmpty(" ", category.Icon, category.Name)+": "+strings.Join(names, ", "))
	}
	col.gap(th.spacing)
}

func writeSkillMeters(col *column, th theme, categories []SkillCategory) {
	if len(categories) == 0 {
		return
	}
	col.chip("Skills", th.accent, th.chipInk)
	for _, category := range categories {
		col.paragraph(th.strong, joinNonEmpty(" ", category.Icon, category.Name))
		for _, skill := range category.Skills {
			col.meter(th.small, skill.Name, skill.Level, th.track, th.accent)
		}
		col.gap(1.5)
	}
	col.gap(th.spacing)
}

func writeLanguageList(col *column, th theme, languages []Language) {
	if len(languages) == 0 {
		return
	}
	col.chip("Languages", th.accent, th.chipInk)
	parts := make([]string, 0, len(languages))
	for _, language := range languages {
		if language.Proficiency != "" {
			parts = append(parts, language.Name+" ("+language.Proficiency+")")
			continue
		}
		parts = append(parts, language.Name)
	}
	col.paragraph(th.body, strings.Join(parts, ", "))
	col.gap(th.spacing)
}

func writeLanguageMeters(col *column, th theme, languages []Language) {
	if len(languages) == 0 {
		return
	}
	col.chip("Languages", th.accent, th.chipInk)
	for _, language := range languages {
		col.meter(th.small, joinNonEmpty(" - ", language.Name, language.Proficiency), language.Level, th.track, th.accent)
	}
	col.gap(th.spacing)
}

func writeCertifications(col *column, th theme, items []Certification) {
	if len(items) == 0 {
		return
	}
	col.chip("\U0001F3C6 Certifications", th.accent, th.chipInk)
	for _, item := range items {
		col.paragraph(th.strong, item.Name)
		col.paragraph(th.small, joinNonEmpty(" - ", item.Issuer, item.Date))
	}
	col.gap(th.spacing)
}

func writeHobbies(col *column, th theme, hobbies []string) {
	if len(hobbies) == 0 {
		return
	}
	col.chip("Hobbies", th.accent, th.chipInk)
	col.paragraph(th.body, strings.Join(hobbies, ", "))
	col.gap(th.spacing)
}

func joinNonEmpty(sep string, parts ...string) string {
	kept := parts[:0:0]
	for _, part := range parts {
		if part = strings.TrimSpace(part); part != "" {
			kept = append(kept, part)
		}
	}
	return strings.Join(kept, sep)
}
