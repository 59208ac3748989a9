// Copyright (c) 2026 Folio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package slug generates ASCII URL slugs from arbitrary Unicode strings.
//
// # Usage
//
// Blog posts are addressed by slug (e.g. "building-a-pdf-resume-in-go").
// This package handles normalization, accent removal, and character sanitization.
package slug

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// nonSlug matches any run of characters that cannot appear in a slug.
var nonSlug = regexp.MustCompile(`[^a-z0-9]+`)

// From converts an arbitrary Unicode string into a URL-safe ASCII slug.
//
// # Transformation Pipeline
//
// 1. Normalizes to NFD and drops combining marks (é → e).
// 2. Lowercases.
// 3. Collapses every run of other characters into a single hyphen.
// 4. Trims leading/trailing hyphens.
func From(s string) string {
	folded, _, _ := transform.String(transform.Chain(norm.NFD, transform.RemoveFunc(isMn)), s)
	folded = strings.ToLower(folded)

	return strings.Trim(nonSlug.ReplaceAllString(folded, "-"), "-")
}

// WithSuffix returns the n-th candidate for base when earlier ones are taken:
// n <= 1 yields base itself, then "base-2", "base-3" and so on.
func WithSuffix(base string, n int) string {
	if n <= 1 {
		return base
	}
	return base + "-" + strconv.Itoa(n)
}

// isMn reports whether r is a Unicode non-spacing mark (e.g., accents).
func isMn(r rune) bool {
	return unicode.Is(unicode.Mn, r)
}
