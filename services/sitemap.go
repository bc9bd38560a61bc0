package services

import (
	"context"
	"encoding/xml"
	"strings"

	"github.com/rpupo63/portfolio-backend/errs"
	"github.com/rpupo63/portfolio-backend/models"
	"github.com/rs/zerolog/log"
)

const (
	sitemapNamespace      = "http://www.sitemaps.org/schemas/sitemap/0.9"
	sitemapImageNamespace = "http://www.google.com/schemas/sitemap-image/1.1"
)

type sitemapURLSet struct {
	XMLName    xml.Name     `xml:"urlset"`
	Xmlns      string       `xml:"xmlns,attr"`
	XmlnsImage string       `xml:"xmlns:image,attr"`
	URLs       []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Loc     string         `xml:"loc"`
	LastMod string         `xml:"lastmod,omitempty"`
	Images  []sitemapImage `xml:"image:image"`
}

type sitemapImage struct {
	Loc string `xml:"image:loc"`
}

// ExportSitemap writes a sitemap with one entry per project detail page. Each
// entry lists the project's cover image and gallery images.
func ExportSitemap(ctx context.Context, repo ProjectLister, baseURL, path string) (int, error) {
	if baseURL == "" {
		return 0, errs.NewEnvironmentVariableError("BASE_URL")
	}

	projects, err := repo.FindAll(ctx)
	if err != nil {
		return 0, err
	}

	set := sitemapURLSet{Xmlns: sitemapNamespace, XmlnsImage: sitemapImageNamespace}
	for _, p := range projects {
		set.URLs = append(set.URLs, sitemapURL{
			Loc:     BuildProjectURL(baseURL, p.Slug),
			LastMod: p.UpdatedAt.UTC().Format("2006-01-02"),
			Images:  projectImages(baseURL, p),
		})
	}

	data, err := xml.MarshalIndent(set, "", "  ")
	if err != nil {
		return 0, errs.NewJSONMarshalError("sitemap export", err)
	}
	data = append([]byte(xml.Header), data...)
	data = append(data, '\n')

	if err := writeFileAtomic(path, data); err != nil {
		return 0, errs.NewExportWriteError(path, err)
	}

	log.Info().Str("path", path).Int("urls", len(set.URLs)).Msg("Sitemap exported")
	return len(set.URLs), nil
}

// projectImages resolves image_url and images_section against baseURL,
// keeping first-seen order without duplicates.
func projectImages(baseURL string, p *models.Project) []sitemapImage {
	var refs []string
	if p.ImageURL != nil {
		refs = append(refs, *p.ImageURL)
	}
	refs = append(refs, p.ImageList()...)

	seen := make(map[string]bool, len(refs))
	var images []sitemapImage
	for _, ref := range refs {
		loc := resolveAssetURL(baseURL, ref)
		if loc == "" || seen[loc] {
			continue
		}
		seen[loc] = true
		images = append(images, sitemapImage{Loc: loc})
	}
	return images
}

// resolveAssetURL leaves absolute URLs alone and roots site paths at baseURL.
func resolveAssetURL(baseURL, ref string) string {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return ""
	}
	if strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://") {
		return ref
	}
	return strings.TrimSuffix(baseURL, "/") + "/" + strings.TrimPrefix(ref, "/")
}
