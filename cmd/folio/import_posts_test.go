package main

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/folio/internal/core/blog"
	"github.com/taibuivan/folio/internal/platform/docstore"
)

func writePost(t *testing.T, dir, name, body string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644))
}

/*
TestReadPost maps the front matter onto the post and keeps the body as content.
*/
func TestReadPost(t *testing.T) {
	dir := t.TempDir()
	writePost(t, dir, "hello.md", `---
title: Hello, World
excerpt: First post
tags: [Go, go, Testing]
category: tutorial
featured: true
---

# Hello

Body text.
`)

	post, err := readPost(filepath.Join(dir, "hello.md"))
	require.NoError(t, err)

	assert.Equal(t, "Hello, World", post.Title)
	assert.Equal(t, "First post", post.Excerpt)
	assert.Equal(t, blog.CategoryTutorial, post.Category)
	assert.True(t, post.Featured)
	assert.Equal(t, "# Hello\n\nBody text.", post.Content)
}

/*
TestReadPost_TitleFromFileName falls back to the file name without front matter.
*/
func TestReadPost_TitleFromFileName(t *testing.T) {
	dir := t.TempDir()
	writePost(t, dir, "notes-on-go.md", "Just a body.\n")

	post, err := readPost(filepath.Join(dir, "notes-on-go.md"))
	require.NoError(t, err)
	assert.Equal(t, "notes-on-go", post.Title)
	assert.Equal(t, "Just a body.", post.Content)
}

/*
TestImportPosts creates drafts in file-name order and skips non-Markdown files.
*/
func TestImportPosts(t *testing.T) {
	dir := t.TempDir()
	writePost(t, dir, "b.md", "---\ntitle: Second\n---\nTwo.\n")
	writePost(t, dir, "a.md", "---\ntitle: First\n---\nOne.\n")
	writePost(t, dir, "readme.txt", "ignored")

	log := slog.New(slog.DiscardHandler)
	service := newServices(docstore.NewMemoryStore(), nil, log).blog

	imported, err := importPosts(context.Background(), service, dir, blog.StatusDraft, log)
	require.NoError(t, err)
	assert.Equal(t, 2, imported)

	posts, err := service.ListAll(context.Background(), blog.StatusDraft)
	require.NoError(t, err)
	require.Len(t, posts, 2)

	slugs := []string{posts[0].Slug, posts[1].Slug}
	assert.ElementsMatch(t, []string{"first", "second"}, slugs)
}

/*
TestImportPosts_StopsOnInvalidPost reports how many posts were created before the failure.
*/
func TestImportPosts_StopsOnInvalidPost(t *testing.T) {
	dir := t.TempDir()
	writePost(t, dir, "a.md", "---\ntitle: Fine\n---\nOne.\n")
	writePost(t, dir, "b.md", "---\ntitle: Empty\n---\n")

	log := slog.New(slog.DiscardHandler)
	service := newServices(docstore.NewMemoryStore(), nil, log).blog

	imported, err := importPosts(context.Background(), service, dir, blog.StatusDraft, log)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "b.md")
	assert.Equal(t, 1, imported)
}
