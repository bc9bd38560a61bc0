package services

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/rpupo63/portfolio-backend/errs"
	"github.com/rpupo63/portfolio-backend/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeLister struct {
	projects []*models.Project
	err      error
}

func (f fakeLister) FindAll(context.Context) ([]*models.Project, error) {
	return f.projects, f.err
}

func strPtr(s string) *string { return &s }

func sampleProjects() []*models.Project {
	ts := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	return []*models.Project{
		{
			ID:            2,
			Slug:          "newer",
			Title:         "Newer",
			Technologies:  strPtr("Go, SQLite"),
			ImageURL:      strPtr("images/newer/cover.png"),
			ImagesSection: strPtr("images/newer/cover.png,\n/images/newer/demo.gif\nhttps://cdn.example.org/shot.png"),
			CreatedAt:     ts.Add(time.Hour),
			UpdatedAt:     ts.Add(time.Hour),
		},
		{ID: 1, Slug: "older", Title: "Older", CreatedAt: ts, UpdatedAt: ts},
	}
}

func TestExportProjects(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "projects.json")

	n, err := ExportProjects(context.Background(), fakeLister{projects: sampleProjects()}, path)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)

	var got []map[string]any
	require.NoError(t, json.Unmarshal(raw, &got))
	require.Len(t, got, 2)
	assert.Equal(t, "newer", got[0]["slug"])
	assert.Equal(t, "Go, SQLite", got[0]["technologies"])
	assert.Equal(t, "older", got[1]["slug"])
	assert.Nil(t, got[1]["technologies"])

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp file should not be left behind")
}

func TestExportProjectsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "projects.json")

	n, err := ExportProjects(context.Background(), fakeLister{}, path)
	require.NoError(t, err)
	assert.Zero(t, n)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "[]\n", string(raw))
}

func TestExportProjectsReplacesExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "projects.json")
	require.NoError(t, os.WriteFile(path, []byte("stale"), 0o644))

	_, err := ExportProjects(context.Background(), fakeLister{projects: sampleProjects()[:1]}, path)
	require.NoError(t, err)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(raw), "["))
	assert.Contains(t, string(raw), `"slug": "newer"`)
}

func TestExportProjectsStoreFailure(t *testing.T) {
	path := filepath.Join(t.TempDir(), "projects.json")
	storeErr := errs.NewDatabaseError("list", "projects", errors.New("disk I/O error"))

	_, err := ExportProjects(context.Background(), fakeLister{err: storeErr}, path)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrDatabaseQuery)

	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))
}

func TestExportProjectsUnwritablePath(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))

	_, err := ExportProjects(context.Background(), fakeLister{}, filepath.Join(blocker, "projects.json"))
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrExportWrite)
}

func TestBuildProjectURL(t *testing.T) {
	tests := []struct {
		name    string
		baseURL string
		slug    string
		want    string
	}{
		{"plain", "https://example.com", "portfolio-v1", "https://example.com/projeto.html?slug=portfolio-v1"},
		{"trailing slash", "https://example.com/", "a", "https://example.com/projeto.html?slug=a"},
		{"escaped slug", "https://example.com", "a b&c", "https://example.com/projeto.html?slug=a+b%26c"},
		{"no base", "", "a", ""},
		{"no slug", "https://example.com", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, BuildProjectURL(tt.baseURL, tt.slug))
		})
	}
}

func TestGetBaseURL(t *testing.T) {
	assert.Equal(t, "https://example.com", GetBaseURL(map[string]string{"BASE_URL": "https://example.com/"}))
	assert.Equal(t, "", GetBaseURL(map[string]string{}))
}

func TestExportSitemap(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sitemap.xml")

	n, err := ExportSitemap(context.Background(), fakeLister{projects: sampleProjects()}, "https://example.com", path)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	body := string(raw)
	assert.True(t, strings.HasPrefix(body, "<?xml"))
	assert.Contains(t, body, "<loc>https://example.com/projeto.html?slug=newer</loc>")
	assert.Contains(t, body, "<lastmod>2024-05-01</lastmod>")
	assert.Contains(t, body, `xmlns:image="http://www.google.com/schemas/sitemap-image/1.1"`)
	assert.Equal(t, 1, strings.Count(body, "<image:loc>https://example.com/images/newer/cover.png</image:loc>"))
	assert.Contains(t, body, "<image:loc>https://example.com/images/newer/demo.gif</image:loc>")
	assert.Contains(t, body, "<image:loc>https://cdn.example.org/shot.png</image:loc>")
	assert.Equal(t, 3, strings.Count(body, "<image:image>"))
}

func TestResolveAssetURL(t *testing.T) {
	assert.Equal(t, "https://example.com/a.png", resolveAssetURL("https://example.com/", "/a.png"))
	assert.Equal(t, "https://example.com/img/a.png", resolveAssetURL("https://example.com", " img/a.png "))
	assert.Equal(t, "http://cdn/a.png", resolveAssetURL("https://example.com", "http://cdn/a.png"))
	assert.Equal(t, "", resolveAssetURL("https://example.com", "  "))
}

func TestExportSitemapRequiresBaseURL(t *testing.T) {
	_, err := ExportSitemap(context.Background(), fakeLister{}, "", filepath.Join(t.TempDir(), "sitemap.xml"))
	require.Error(t, err)
	assert.True(t, errs.IsEnvironmentVariableError(err))
}
