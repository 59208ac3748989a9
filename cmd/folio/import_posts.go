// Copyright (c) 2026 Folio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/adrg/frontmatter"
	"github.com/spf13/cobra"

	"github.com/taibuivan/folio/internal/core/blog"
)

// postMeta is the front matter block accepted at the top of an imported post.
type postMeta struct {
	Title         string   `yaml:"title" toml:"title" json:"title"`
	Slug          string   `yaml:"slug" toml:"slug" json:"slug"`
	Excerpt       string   `yaml:"excerpt" toml:"excerpt" json:"excerpt"`
	Author        string   `yaml:"author" toml:"author" json:"author"`
	Tags          []string `yaml:"tags" toml:"tags" json:"tags"`
	Category      string   `yaml:"category" toml:"category" json:"category"`
	Featured      bool     `yaml:"featured" toml:"featured" json:"featured"`
	FeaturedImage string   `yaml:"featured_image" toml:"featured_image" json:"featured_image"`
}

func newImportPostsCmd() *cobra.Command {
	var publish bool

	cmd := &cobra.Command{
		Use:   "import-posts DIR",
		Short: "Import Markdown files with front matter as blog posts",
		Long: `Import every *.md file in DIR as a blog post.

Posts are created as drafts unless --publish is given. Slugs that are already
taken get a numeric suffix, so importing twice creates copies.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := loadConfig()
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}

			store, err := openStore(ctx, cfg, log)
			if err != nil {
				return err
			}
			defer store.Close()

			status := blog.StatusDraft
			if publish {
				status = blog.StatusPublished
			}

			svc := newServices(store, nil, log)
			imported, err := importPosts(ctx, svc.blog, args[0], status, log)
			fmt.Fprintf(cmd.OutOrStdout(), "imported %d post(s)\n", imported)
			return err
		},
	}

	cmd.Flags().BoolVar(&publish, "publish", false, "publish the imported posts immediately")
	return cmd
}

// importPosts stops at the first file that fails and reports how many were created before it.
func importPosts(ctx context.Context, posts *blog.Service, dir string, status blog.Status, log *slog.Logger) (int, error) {
	paths, err := filepath.Glob(filepath.Join(dir, "*.md"))
	if err != nil {
		return 0, err
	}
	sort.Strings(paths)

	imported := 0
	for _, path := range paths {
		post, err := readPost(path)
		if err != nil {
			return imported, err
		}
		post.Status = status

		created, err := posts.CreatePost(ctx, post)
		if err != nil {
			return imported, fmt.Errorf("%s: %w", filepath.Base(path), err)
		}

		imported++
		log.Info("blog_post_imported",
			slog.String("file", filepath.Base(path)),
			slog.String("post_id", created.ID),
			slog.String("slug", created.Slug),
		)
	}
	return imported, nil
}

func readPost(path string) (blog.Post, error) {
	file, err := os.Open(path)
	if err != nil {
		return blog.Post{}, err
	}
	defer file.Close()

	var meta postMeta
	body, err := frontmatter.Parse(file, &meta)
	if err != nil {
		return blog.Post{}, fmt.Errorf("%s: front matter: %w", filepath.Base(path), err)
	}

	title := strings.TrimSpace(meta.Title)
	if title == "" {
		title = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}

	return blog.Post{
		Title:         title,
		Slug:          meta.Slug,
		Excerpt:       meta.Excerpt,
		Content:       strings.TrimSpace(string(body)),
		Author:        meta.Author,
		FeaturedImage: meta.FeaturedImage,
		Tags:          meta.Tags,
		Category:      blog.Category(meta.Category),
		Featured:      meta.Featured,
	}, nil
}
