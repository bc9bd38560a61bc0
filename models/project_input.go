package models

import "strings"

// ProjectInput is the body accepted by create and update. Unknown keys are ignored.
type ProjectInput struct {
	Slug             string  `json:"slug"`
	Title            string  `json:"title"`
	ShortDesc        *string `json:"short_desc"`
	Description      *string `json:"description"`
	Technologies     *string `json:"technologies"`
	ImageURL         *string `json:"image_url"`
	RepoURL          *string `json:"repo_url"`
	LiveURL          *string `json:"live_url"`
	Introduction     *string `json:"introduction"`
	MainIdea         *string `json:"main_idea"`
	ImagesSection    *string `json:"images_section"`
	TechnicalDetails *string `json:"technical_details"`
	Presentation     *string `json:"presentation"`
	HowToRun         *string `json:"how_to_run"`
}

// MissingField returns the first required field that is blank, or "".
func (in ProjectInput) MissingField() string {
	switch {
	case strings.TrimSpace(in.Title) == "":
		return "title"
	case strings.TrimSpace(in.Slug) == "":
		return "slug"
	}
	return ""
}

// Apply overwrites every mutable field of p. Absent optional fields become NULL.
func (in ProjectInput) Apply(p *Project) {
	p.Slug = in.Slug
	p.Title = in.Title
	p.ShortDesc = in.ShortDesc
	p.Description = in.Description
	p.Technologies = in.Technologies
	p.ImageURL = in.ImageURL
	p.RepoURL = in.RepoURL
	p.LiveURL = in.LiveURL
	p.Introduction = in.Introduction
	p.MainIdea = in.MainIdea
	p.ImagesSection = in.ImagesSection
	p.TechnicalDetails = in.TechnicalDetails
	p.Presentation = in.Presentation
	p.HowToRun = in.HowToRun
}

// Columns maps every mutable column to its new value, nils included.
func (in ProjectInput) Columns() map[string]any {
	return map[string]any{
		"slug":              in.Slug,
		"title":             in.Title,
		"short_desc":        in.ShortDesc,
		"description":       in.Description,
		"technologies":      in.Technologies,
		"image_url":         in.ImageURL,
		"repo_url":          in.RepoURL,
		"live_url":          in.LiveURL,
		"introduction":      in.Introduction,
		"main_idea":         in.MainIdea,
		"images_section":    in.ImagesSection,
		"technical_details": in.TechnicalDetails,
		"presentation":      in.Presentation,
		"how_to_run":        in.HowToRun,
	}
}
