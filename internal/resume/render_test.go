package resume_test

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/folio/internal/resume"
)

var fixedClock = func() time.Time { return time.Date(2026, 5, 4, 10, 0, 0, 0, time.UTC) }

func newRenderer() *resume.Renderer {
	return resume.NewRenderer(nil, slog.New(slog.DiscardHandler), resume.WithClock(fixedClock))
}

func sampleData(t *testing.T) resume.Data {
	t.Helper()
	data, err := resume.LoadFile("testdata/resume.yaml")
	require.NoError(t, err)
	return data
}

/*
TestRender_AllTemplates renders the sample, which mixes both education forms,
with every template.
*/
func TestRender_AllTemplates(t *testing.T) {
	data := sampleData(t)

	for _, kind := range resume.Kinds {
		t.Run(string(kind), func(t *testing.T) {
			var out bytes.Buffer
			require.NoError(t, newRenderer().Render(context.Background(), data, kind, &out))
			assert.True(t, bytes.HasPrefix(out.Bytes(), []byte("%PDF-")))
			assert.True(t, bytes.Contains(out.Bytes(), []byte("%%EOF")))
		})
	}
}

/*
TestRender_Deterministic verifies the same data and clock give identical bytes.
*/
func TestRender_Deterministic(t *testing.T) {
	data := sampleData(t)

	var first, second bytes.Buffer
	require.NoError(t, newRenderer().Render(context.Background(), data, resume.KindExecutive, &first))
	require.NoError(t, newRenderer().Render(context.Background(), data, resume.KindExecutive, &second))
	assert.Equal(t, first.Bytes(), second.Bytes())
}

/*
TestRender_QuickWithoutProjects renders a person with no projects at all.
*/
func TestRender_QuickWithoutProjects(t *testing.T) {
	data := sampleData(t)
	data.Projects = nil

	var out bytes.Buffer
	require.NoError(t, newRenderer().Render(context.Background(), data, resume.KindQuick, &out))
	assert.NotZero(t, out.Len())
}

/*
TestRender_NothingWrittenOnError leaves the writer untouched when the data is
rejected or the template is unknown.
*/
func TestRender_NothingWrittenOnError(t *testing.T) {
	data := sampleData(t)

	var out bytes.Buffer
	err := newRenderer().Render(context.Background(), data, resume.Kind("fancy"), &out)
	assert.ErrorIs(t, err, resume.ErrUnknownTemplate)
	assert.Zero(t, out.Len())

	data.Personal.FullName = ""
	err = newRenderer().Render(context.Background(), data, resume.KindModern, &out)
	assert.Error(t, err)
	assert.Zero(t, out.Len())
}

/*
TestRender_Photo embeds a served PNG and renders without a photo that fails
to load.
*/
func TestRender_Photo(t *testing.T) {
	portrait := image.NewNRGBA(image.Rect(0, 0, 8, 8))
	for x := 0; x < 8; x++ {
		portrait.Set(x, x, color.NRGBA{R: 200, A: 128})
	}
	var encoded bytes.Buffer
	require.NoError(t, png.Encode(&encoded, portrait))

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		switch request.URL.Path {
		case "/me.png":
			writer.Header().Set("Content-Type", "image/png")
			_, _ = writer.Write(encoded.Bytes())
		case "/broken.png":
			_, _ = writer.Write([]byte("not an image"))
		default:
			http.NotFound(writer, request)
		}
	}))
	defer server.Close()

	renderer := resume.NewRenderer(server.Client(), slog.New(slog.DiscardHandler), resume.WithClock(fixedClock))
	data := sampleData(t)

	var withoutPhoto bytes.Buffer
	require.NoError(t, renderer.Render(context.Background(), data, resume.KindModern, &withoutPhoto))

	for _, path := range []string{"/missing.png", "/broken.png"} {
		data.Personal.PhotoURL = server.URL + path
		var out bytes.Buffer
		require.NoError(t, renderer.Render(context.Background(), data, resume.KindModern, &out), path)
		assert.Equal(t, withoutPhoto.Bytes(), out.Bytes(), path)
	}

	data.Personal.PhotoURL = server.URL + "/me.png"
	var withPhoto bytes.Buffer
	require.NoError(t, renderer.Render(context.Background(), data, resume.KindModern, &withPhoto))
	assert.Greater(t, withPhoto.Len(), withoutPhoto.Len())
}

/*
TestFileName builds the download name from the folded full name.
*/
func TestFileName(t *testing.T) {
	tests := []struct {
		name string
		kind resume.Kind
		want string
	}{
		{"Jane Doe", resume.KindModern, "Jane_Doe_Modern_Resume.pdf"},
		{"  Nguyễn Văn Đức ", resume.KindQuick, "Nguyen_Van_Duc_Quick_Resume.pdf"},
		{"Mary-Jane O'Neil", resume.KindExecutive, "Mary_Jane_O_Neil_Executive_Resume.pdf"},
		{"", resume.KindModern, "Modern_Resume.pdf"},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.want, resume.FileName(tc.name, tc.kind), tc.name)
	}
}

/*
TestParseKind defaults to modern and rejects unknown names.
*/
func TestParseKind(t *testing.T) {
	kind, err := resume.ParseKind("")
	require.NoError(t, err)
	assert.Equal(t, resume.KindModern, kind)

	kind, err = resume.ParseKind(" Executive ")
	require.NoError(t, err)
	assert.Equal(t, resume.KindExecutive, kind)

	_, err = resume.ParseKind("fancy")
	assert.ErrorIs(t, err, resume.ErrUnknownTemplate)
}

/*
TestFilledWidth scales the bar and clamps out-of-range levels.
*/
func TestFilledWidth(t *testing.T) {
	assert.InDelta(t, 30.0, resume.FilledWidth(60, 50), 1e-9)
	assert.InDelta(t, 60.0, resume.FilledWidth(60, 100), 1e-9)
	assert.InDelta(t, 60.0, resume.FilledWidth(60, 180), 1e-9)
	assert.Zero(t, resume.FilledWidth(60, -10))
}
