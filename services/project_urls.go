package services

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/rpupo63/portfolio-backend/config"
)

// projectPage is the static page that renders a single project by slug.
const projectPage = "projeto.html"

// GetBaseURL retrieves the public site URL from configuration
func GetBaseURL(cfg map[string]string) string {
	return strings.TrimSuffix(config.GetString(cfg, "BASE_URL", ""), "/")
}

// BuildProjectURL constructs the detail page URL for a project slug
// Parameters:
//   - baseURL: The base URL (e.g., "https://example.com")
//   - slug: The project slug
//
// Returns:
//   - The full project URL (e.g., "https://example.com/projeto.html?slug=portfolio-v1")
func BuildProjectURL(baseURL, slug string) string {
	if baseURL == "" || slug == "" {
		return ""
	}
	return fmt.Sprintf("%s/%s?slug=%s", strings.TrimSuffix(baseURL, "/"), projectPage, url.QueryEscape(slug))
}
