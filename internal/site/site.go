// Package site holds the fixed table of public page paths.
package site

import (
	"net/http"
	"net/url"
	"regexp"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/folio/internal/platform/respond"
)

type Page string

const (
	PageHome       Page = "home"
	PageAbout      Page = "about"
	PageProjects   Page = "projects"
	PageExperience Page = "experience"
	PageBlog       Page = "blog"
	PageBlogPost   Page = "blog-post"
	PageContact    Page = "contact"
	PageAdmin      Page = "admin"
)

// Route is one entry of the table.
type Route struct {
	Page Page   `json:"page"`
	Path string `json:"path"`
}

// Routes is the table in navigation order. The blog post path carries the
// only parameter.
var Routes = []Route{
	{PageHome, "/"},
	{PageAbout, "/about"},
	{PageProjects, "/projects"},
	{PageExperience, "/experience"},
	{PageBlog, "/blog"},
	{PageBlogPost, "/blog/{slug}"},
	{PageContact, "/contact"},
	{PageAdmin, "/admin"},
}

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

// Path returns the URL path of page. slug is used by the blog post page only.
func Path(page Page, slug string) (string, bool) {
	for _, route := range Routes {
		if route.Page != page {
			continue
		}
		if page == PageBlogPost {
			if !slugPattern.MatchString(slug) {
				return "", false
			}
			return strings.Replace(route.Path, "{slug}", slug, 1), true
		}
		return route.Path, true
	}
	return "", false
}

// ResolveReturnURL keeps raw only when it is a relative path to a known page,
// so redirects can never leave the site. Anything else becomes the admin
// dashboard path.
func ResolveReturnURL(raw string) string {
	fallback, _ := Path(PageAdmin, "")

	raw = strings.TrimSpace(raw)
	if raw == "" || !strings.HasPrefix(raw, "/") || strings.HasPrefix(raw, "//") || strings.Contains(raw, `\`) {
		return fallback
	}

	parsed, err := url.Parse(raw)
	if err != nil || parsed.Scheme != "" || parsed.Host != "" || !known(parsed.Path) {
		return fallback
	}

	resolved := parsed.Path
	if parsed.RawQuery != "" {
		resolved += "?" + parsed.RawQuery
	}
	return resolved
}

func known(path string) bool {
	if path != "/" {
		path = strings.TrimSuffix(path, "/")
	}

	for _, route := range Routes {
		if route.Path == path {
			return true
		}
	}

	if slug, ok := strings.CutPrefix(path, "/blog/"); ok {
		return slugPattern.MatchString(slug)
	}
	if rest, ok := strings.CutPrefix(path, "/admin/"); ok {
		return rest != "" && !strings.Contains(rest, "..")
	}
	return false
}

// RegisterRoutes publishes the table for clients.
func RegisterRoutes(router chi.Router) {
	router.Get("/routes", func(writer http.ResponseWriter, _ *http.Request) {
		respond.OK(writer, Routes)
	})
}
