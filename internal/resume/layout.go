package resume

import (
	"strconv"
	"strings"

	"github.com/go-pdf/fpdf"
)

// # Page Geometry (A4, millimetres)

const (
	pageWidth    = 210.0
	pageHeight   = 297.0
	pageMargin   = 15.0
	footerHeight = 12.0
	printBottom  = pageHeight - footerHeight - 4

	fontFamily = "Helvetica"
	barHeight  = 2.2
)

type rgb struct{ r, g, b int }

type textStyle struct {
	size    float64
	style   string // fpdf style: "", "B", "I", "BI"
	color   rgb
	leading float64
}

// drawOp is a deferred drawing call. Columns record ops per page and the
// canvas replays them page by page, so a column that runs onto page 2 never
// forces the other column's content out of order.
type drawOp func(pdf *fpdf.Fpdf)

// canvas is the page-aware drawing surface shared by a template's columns.
type canvas struct {
	pdf        *fpdf.Fpdf
	glyphs     Glyphs
	pages      [][]drawOp
	background func(pdf *fpdf.Fpdf, page int)
}

func newCanvas(pdf *fpdf.Fpdf, glyphs Glyphs) *canvas {
	return &canvas{pdf: pdf, glyphs: glyphs}
}

func (c *canvas) at(page int, op drawOp) {
	for len(c.pages) <= page {
		c.pages = append(c.pages, nil)
	}
	c.pages[page] = append(c.pages[page], op)
}

// pageCount is known once every column has been laid out.
func (c *canvas) pageCount() int {
	return max(len(c.pages), 1)
}

// flush emits every recorded page. The document always has at least one page.
func (c *canvas) flush() {
	for page := 0; page < c.pageCount(); page++ {
		c.pdf.AddPage()
		if c.background != nil {
			c.background(c.pdf, page)
		}
		if page < len(c.pages) {
			for _, op := range c.pages[page] {
				op(c.pdf)
			}
		}
	}
}

// split wraps text to width using style's font metrics.
func (c *canvas) split(style textStyle, text string, width float64) []string {
	c.pdf.SetFont(fontFamily, style.style, style.size)

	var lines []string
	for _, paragraph := range strings.Split(text, "\n") {
		if strings.TrimSpace(paragraph) == "" {
			continue
		}
		lines = append(lines, c.pdf.SplitText(paragraph, width)...)
	}
	return lines
}

func (c *canvas) width(style textStyle, text string) float64 {
	c.pdf.SetFont(fontFamily, style.style, style.size)
	return c.pdf.GetStringWidth(text)
}

// # Columns

// column is a vertical lane with its own cursor. When the cursor would pass
// the printable bottom the column continues at top on the next page.
type column struct {
	canvas *canvas
	x      float64
	width  float64
	top    float64
	page   int
	y      float64
}

func (c *canvas) column(x, width, startY, continueTop float64) *column {
	return &column{canvas: c, x: x, width: width, top: continueTop, y: startY}
}

// ensure moves to the next page unless height fits below the cursor. A block
// taller than a whole page starts at the top and is split by its lines.
func (col *column) ensure(height float64) {
	if col.y+height <= printBottom || col.y <= col.top {
		return
	}
	col.page++
	col.y = col.top
}

func (col *column) gap(height float64) {
	col.y += height
}

func (col *column) draw(op drawOp) {
	col.canvas.at(col.page, op)
}

func (col *column) textAt(style textStyle, x, y float64, text string) {
	col.draw(func(pdf *fpdf.Fpdf) {
		pdf.SetFont(fontFamily, style.style, style.size)
		pdf.SetTextColor(style.color.r, style.color.g, style.color.b)
		pdf.Text(x, y+style.leading*0.72, text)
	})
}

// paragraph draws wrapped text, keeping it on one page when it fits on one.
func (col *column) paragraph(style textStyle, text string) {
	col.paragraphIndented(style, text, 0)
}

func (col *column) paragraphIndented(style textStyle, text string, indent float64) {
	text = strings.TrimSpace(col.canvas.glyphs.Apply(text))
	if text == "" {
		return
	}

	lines := col.canvas.split(style, text, col.width-indent)
	col.ensure(float64(len(lines)) * style.leading)
	for _, line := range lines {
		col.ensure(style.leading)
		col.textAt(style, col.x+indent, col.y, line)
		col.y += style.leading
	}
}

// line draws a single unwrapped line, with right text flush to the column edge.
func (col *column) line(left textStyle, leftText string, right textStyle, rightText string) {
	leftText = strings.TrimSpace(col.canvas.glyphs.Apply(leftText))
	rightText = strings.TrimSpace(col.canvas.glyphs.Apply(rightText))
	if leftText == "" && rightText == "" {
		return
	}

	leading := max(left.leading, right.leading)
	col.ensure(leading)

	if rightText != "" {
		rightWidth := col.canvas.width(right, rightText)
		col.textAt(right, col.x+col.width-rightWidth, col.y, rightText)

		// Leave room for the right-hand text.
		available := col.width - rightWidth - 3
		if lines := col.canvas.split(left, leftText, available); len(lines) > 0 {
			leftText = lines[0]
		}
	}
	if leftText != "" {
		col.textAt(left, col.x, col.y, leftText)
	}
	col.y += leading
}

// bullets draws a dash list with hanging indent.
func (col *column) bullets(style textStyle, items []string) {
	const indent = 4.0
	for _, item := range items {
		item = strings.TrimSpace(col.canvas.glyphs.Apply(item))
		if item == "" {
			continue
		}

		lines := col.canvas.split(style, item, col.width-indent)
		col.ensure(float64(len(lines)) * style.leading)
		for i, line := range lines {
			col.ensure(style.leading)
			if i == 0 {
				col.textAt(style, col.x, col.y, "-")
			}
			col.textAt(style, col.x+indent, col.y, line)
			col.y += style.leading
		}
	}
}

// chip draws a filled section label. It reserves room for the first line of
// the section so a label never ends a page on its own.
func (col *column) chip(label string, fill, ink rgb) {
	const height, padding = 6.5, 2.5
	style := textStyle{size: 10, style: "B", color: ink, leading: height}

	label = strings.TrimSpace(col.canvas.glyphs.Apply(strings.ToUpper(label)))
	col.ensure(height + 10)

	x, y := col.x, col.y
	width := min(col.canvas.width(style, label)+2*padding, col.width)
	col.draw(func(pdf *fpdf.Fpdf) {
		pdf.SetFillColor(fill.r, fill.g, fill.b)
		pdf.Rect(x, y, width, height, "F")
	})
	col.textAt(style, x+padding, y, label)
	col.y += height + 2.5
}

// rule draws a hairline across the column.
func (col *column) rule(color rgb) {
	x, y, width := col.x, col.y, col.width
	col.draw(func(pdf *fpdf.Fpdf) {
		pdf.SetDrawColor(color.r, color.g, color.b)
		pdf.SetLineWidth(0.2)
		pdf.Line(x, y, x+width, y)
	})
	col.y += 1.5
}

// meter draws a label with its percentage and a proportional bar below.
func (col *column) meter(style textStyle, label string, level int, track, fill rgb) {
	col.ensure(style.leading + barHeight + 2)
	col.line(style, label, style, levelText(level))

	x, y, width := col.x, col.y, col.width
	filled := FilledWidth(width, level)
	col.draw(func(pdf *fpdf.Fpdf) {
		pdf.SetFillColor(track.r, track.g, track.b)
		pdf.Rect(x, y, width, barHeight, "F")
		if filled > 0 {
			pdf.SetFillColor(fill.r, fill.g, fill.b)
			pdf.Rect(x, y, filled, barHeight, "F")
		}
	})
	col.y += barHeight + 2
}

// image places a registered image at the cursor.
func (col *column) image(name string, width, height float64) {
	col.ensure(height)
	x, y := col.x, col.y
	col.draw(func(pdf *fpdf.Fpdf) {
		pdf.ImageOptions(name, x, y, width, height, false, fpdf.ImageOptions{ImageType: photoImageType}, 0, "")
	})
	col.y += height
}

// FilledWidth is the filled part of a proficiency bar: track * level / 100,
// with level clamped to 0..100.
func FilledWidth(track float64, level int) float64 {
	level = min(max(level, 0), 100)
	return track * float64(level) / 100
}

func levelText(level int) string {
	return strconv.Itoa(min(max(level, 0), 100)) + "%"
}
