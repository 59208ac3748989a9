package resume

import (
	"bytes"
	stdctx "context"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/jpeg"
	_ "image/png"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"
	"unicode"

	"github.com/go-pdf/fpdf"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/taibuivan/folio/internal/platform/constants"
)

type Kind string

const (
	KindQuick     Kind = "quick"
	KindModern    Kind = "modern"
	KindExecutive Kind = "executive"
)

// Kinds lists the templates in the order clients offer them.
var Kinds = []Kind{KindQuick, KindModern, KindExecutive}

var ErrUnknownTemplate = errors.New("resume: unknown template")

// ParseKind accepts a template name in any case. An empty name selects the
// default template.
func ParseKind(raw string) (Kind, error) {
	raw = strings.ToLower(strings.TrimSpace(raw))
	if raw == "" {
		return Kind(constants.DefaultResumeTemplate), nil
	}
	kind := Kind(raw)
	if _, ok := templates[kind]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownTemplate, raw)
	}
	return kind, nil
}

func (k Kind) Label() string { return cases.Title(language.English).String(string(k)) }

// FileName is the download name, e.g. "Jane_Doe_Modern_Resume.pdf".
func FileName(fullName string, kind Kind) string {
	folded := NewGlyphs().Apply(fullName)
	words := strings.FieldsFunc(folded, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})

	words = append(words, kind.Label(), "Resume")
	return strings.Join(words, "_") + ".pdf"
}

// # Renderer

const (
	photoImageName = "profile-photo"
	photoImageType = "JPG"
)

// Renderer turns résumé data into PDF documents.
type Renderer struct {
	client   *http.Client
	logger   *slog.Logger
	now      func() time.Time
	compress bool
}

type Option func(*Renderer)

// WithClock fixes the time printed in the footer and stored as the document
// dates. Identical data and clock produce identical bytes.
func WithClock(now func() time.Time) Option {
	return func(renderer *Renderer) { renderer.now = now }
}

// NewRenderer uses client to fetch the profile photo; nil means
// http.DefaultClient.
func NewRenderer(client *http.Client, logger *slog.Logger, opts ...Option) *Renderer {
	if client == nil {
		client = http.DefaultClient
	}
	renderer := &Renderer{client: client, logger: logger, now: time.Now, compress: true}
	for _, opt := range opts {
		opt(renderer)
	}
	return renderer
}

/*
Render lays data out with the kind template and writes the finished PDF to
writer. Nothing is written unless the whole document was produced.

A photo that cannot be fetched or decoded is logged and left out.
*/
func (renderer *Renderer) Render(context stdctx.Context, data Data, kind Kind, writer io.Writer) error {
	tmpl, ok := templates[kind]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownTemplate, kind)
	}
	if err := data.Validate(); err != nil {
		return fmt.Errorf("resume: %s: invalid data: %w", kind, err)
	}

	now := renderer.now()
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(pageMargin, pageMargin, pageMargin)
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetCompression(renderer.compress)
	pdf.SetCreationDate(now)
	pdf.SetModificationDate(now)
	pdf.SetCatalogSort(true)
	pdf.SetTitle(tmpl.glyphs.Apply(data.Personal.FullName+" - Resume"), false)
	pdf.SetAuthor(tmpl.glyphs.Apply(data.Personal.FullName), false)
	pdf.SetCreator(constants.AppName, false)

	hasPhoto := renderer.embedPhoto(context, pdf, data.Personal.PhotoURL)

	surface := newCanvas(pdf, tmpl.glyphs)
	tmpl.layout(surface, data, hasPhoto)

	generated := "Generated on " + now.Format("January 2, 2006")
	total := surface.pageCount()
	pdf.SetFooterFunc(func() {
		pdf.SetY(-footerHeight)
		pdf.SetFont(fontFamily, "I", 7.5)
		pdf.SetTextColor(134, 142, 150)
		pdf.CellFormat(0, 5, generated, "", 0, "L", false, 0, "")
		pdf.SetX(pageMargin)
		pdf.CellFormat(0, 5, fmt.Sprintf("Page %d of %d", pdf.PageNo(), total), "", 0, "R", false, 0, "")
	})
	surface.flush()

	var buffer bytes.Buffer
	if err := pdf.Output(&buffer); err != nil {
		renderer.logger.ErrorContext(context, "resume_render_failed",
			slog.String("template", string(kind)),
			slog.Any("error", err),
		)
		return fmt.Errorf("resume: render %s: %w", kind, err)
	}

	renderer.logger.InfoContext(context, "resume_rendered",
		slog.String("template", string(kind)),
		slog.Int("pages", total),
		slog.Int("bytes", buffer.Len()),
		slog.Bool("photo", hasPhoto),
	)

	_, err := buffer.WriteTo(writer)
	return err
}

// # Photo

func (renderer *Renderer) embedPhoto(context stdctx.Context, pdf *fpdf.Fpdf, url string) bool {
	if strings.TrimSpace(url) == "" {
		return false
	}

	encoded, err := renderer.fetchPhoto(context, url)
	if err != nil {
		renderer.logger.WarnContext(context, "resume_photo_skipped", slog.String("url", url), slog.Any("error", err))
		return false
	}

	pdf.RegisterImageOptionsReader(photoImageName, fpdf.ImageOptions{ImageType: photoImageType}, encoded)
	if pdf.Err() {
		renderer.logger.WarnContext(context, "resume_photo_skipped", slog.String("url", url), slog.Any("error", pdf.Error()))
		pdf.ClearError()
		return false
	}
	return true
}

// fetchPhoto downloads url and re-encodes it as an opaque JPEG, which the PDF
// writer embeds without further parsing.
func (renderer *Renderer) fetchPhoto(context stdctx.Context, url string) (*bytes.Buffer, error) {
	context, cancel := stdctx.WithTimeout(context, constants.ResumePhotoTimeout)
	defer cancel()

	request, err := http.NewRequestWithContext(context, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	response, err := renderer.client.Do(request)
	if err != nil {
		return nil, err
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("photo request returned %d", response.StatusCode)
	}

	raw, err := io.ReadAll(io.LimitReader(response.Body, constants.MaxUploadBytes+1))
	if err != nil {
		return nil, err
	}
	if len(raw) > constants.MaxUploadBytes {
		return nil, errors.New("photo exceeds upload size limit")
	}

	decoded, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("decode photo: %w", err)
	}

	// Flatten transparency onto white before dropping the alpha channel.
	bounds := decoded.Bounds()
	flat := image.NewRGBA(bounds)
	draw.Draw(flat, bounds, image.NewUniform(color.White), image.Point{}, draw.Src)
	draw.Draw(flat, bounds, decoded, bounds.Min, draw.Over)

	var encoded bytes.Buffer
	if err := jpeg.Encode(&encoded, flat, &jpeg.Options{Quality: 90}); err != nil {
		return nil, err
	}
	return &encoded, nil
}
