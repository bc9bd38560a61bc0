package models

import (
	"strings"
	"time"
)

// Project represents a portfolio entry rendered by the site
type Project struct {
	ID               int64     `json:"id" db:"id" gorm:"column:id;primaryKey;autoIncrement"`
	Slug             string    `json:"slug" db:"slug" gorm:"column:slug;type:text;unique"`
	Title            string    `json:"title" db:"title" gorm:"column:title;type:text"`
	ShortDesc        *string   `json:"short_desc" db:"short_desc" gorm:"column:short_desc;type:text"`
	Description      *string   `json:"description" db:"description" gorm:"column:description;type:text"`
	Technologies     *string   `json:"technologies" db:"technologies" gorm:"column:technologies;type:text"`
	ImageURL         *string   `json:"image_url" db:"image_url" gorm:"column:image_url;type:text"`
	RepoURL          *string   `json:"repo_url" db:"repo_url" gorm:"column:repo_url;type:text"`
	LiveURL          *string   `json:"live_url" db:"live_url" gorm:"column:live_url;type:text"`
	CreatedAt        time.Time `json:"created_at" db:"created_at" gorm:"column:created_at;type:datetime;autoCreateTime:false"`
	UpdatedAt        time.Time `json:"updated_at" db:"updated_at" gorm:"column:updated_at;type:datetime;autoUpdateTime:false"`
	Introduction     *string   `json:"introduction" db:"introduction" gorm:"column:introduction;type:text"`
	MainIdea         *string   `json:"main_idea" db:"main_idea" gorm:"column:main_idea;type:text"`
	ImagesSection    *string   `json:"images_section" db:"images_section" gorm:"column:images_section;type:text"`
	TechnicalDetails *string   `json:"technical_details" db:"technical_details" gorm:"column:technical_details;type:text"`
	Presentation     *string   `json:"presentation" db:"presentation" gorm:"column:presentation;type:text"`
	HowToRun         *string   `json:"how_to_run" db:"how_to_run" gorm:"column:how_to_run;type:text"`
}

func (Project) TableName() string {
	return "projects"
}

// ImageList splits images_section on commas and newlines.
func (p Project) ImageList() []string {
	if p.ImagesSection == nil {
		return nil
	}
	return splitNonEmpty(*p.ImagesSection, ",\n")
}

func splitNonEmpty(s, separators string) []string {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return strings.ContainsRune(separators, r)
	})

	out := make([]string, 0, len(fields))
	for _, f := range fields {
		if f = strings.TrimSpace(f); f != "" {
			out = append(out, f)
		}
	}
	return out
}
