package blog

import (
	"bytes"
	"math"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
)

// WordsPerMinute is the reading speed behind reading_time.
const WordsPerMinute = 200

// Markdown renders post bodies and measures their length.
type Markdown struct {
	md goldmark.Markdown
}

func NewMarkdown() *Markdown {
	return &Markdown{
		md: goldmark.New(
			goldmark.WithExtensions(extension.GFM),
			goldmark.WithParserOptions(parser.WithAutoHeadingID()),
		),
	}
}

// Render converts markdown to HTML. Raw HTML in the source is omitted.
func (m *Markdown) Render(source string) (string, error) {
	var buf bytes.Buffer
	if err := m.md.Convert([]byte(source), &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// CountWords counts the words of the post, code blocks included. Markup and
// raw HTML are not words.
func (m *Markdown) CountWords(source string) int {
	src := []byte(source)
	doc := m.md.Parser().Parse(text.NewReader(src))

	var plain strings.Builder
	_ = ast.Walk(doc, func(node ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			if node.Type() == ast.TypeBlock {
				plain.WriteByte(' ')
			}
			return ast.WalkContinue, nil
		}

		switch n := node.(type) {
		case *ast.FencedCodeBlock, *ast.CodeBlock:
			lines := n.Lines()
			for i := 0; i < lines.Len(); i++ {
				line := lines.At(i)
				plain.Write(line.Value(src))
				plain.WriteByte(' ')
			}
			return ast.WalkSkipChildren, nil
		case *ast.HTMLBlock, *ast.RawHTML:
			return ast.WalkSkipChildren, nil
		case *ast.Text:
			plain.Write(n.Segment.Value(src))
			if n.SoftLineBreak() || n.HardLineBreak() {
				plain.WriteByte(' ')
			}
		case *ast.String:
			plain.Write(n.Value)
		}
		return ast.WalkContinue, nil
	})

	return len(strings.Fields(plain.String()))
}

// ReadingTime is the whole minutes needed for words, never less than one.
func ReadingTime(words int) int {
	minutes := int(math.Ceil(float64(words) / WordsPerMinute))
	return max(minutes, 1)
}
