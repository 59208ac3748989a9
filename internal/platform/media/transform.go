// Copyright (c) 2026 Folio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package media

import (
	"fmt"
	"strings"
)

const uploadSegment = "/upload/"

// DefaultWidths are the srcset widths used when none are given.
var DefaultWidths = []int{320, 640, 960, 1280}

// Options are URL-embedded transformation parameters. Zero values are omitted.
type Options struct {
	Width   int
	Height  int
	Crop    string
	Quality string
	Format  string
}

func (o Options) segment() string {
	var parts []string
	if o.Width > 0 {
		parts = append(parts, fmt.Sprintf("w_%d", o.Width))
	}
	if o.Height > 0 {
		parts = append(parts, fmt.Sprintf("h_%d", o.Height))
	}
	if o.Crop != "" {
		parts = append(parts, "c_"+o.Crop)
	}
	if o.Quality != "" {
		parts = append(parts, "q_"+o.Quality)
	}
	if o.Format != "" {
		parts = append(parts, "f_"+o.Format)
	}
	return strings.Join(parts, ",")
}

// Transform inserts the transformation after the upload segment of a CDN URL.
// URLs from elsewhere, or empty options, are returned unchanged.
func Transform(url string, opts Options) string {
	segment := opts.segment()
	index := strings.Index(url, uploadSegment)
	if segment == "" || index < 0 {
		return url
	}

	cut := index + len(uploadSegment)
	return url[:cut] + segment + "/" + url[cut:]
}

// Preview is the small variant used in admin lists.
func Preview(url string) string {
	return Transform(url, Options{Width: 400, Crop: "limit", Quality: "auto", Format: "auto"})
}

// ResponsiveSet builds an srcset value with one variant per width.
func ResponsiveSet(url string, widths ...int) string {
	if len(widths) == 0 {
		widths = DefaultWidths
	}

	entries := make([]string, 0, len(widths))
	for _, width := range widths {
		variant := Transform(url, Options{Width: width, Crop: "scale", Quality: "auto", Format: "auto"})
		entries = append(entries, fmt.Sprintf("%s %dw", variant, width))
	}
	return strings.Join(entries, ", ")
}
