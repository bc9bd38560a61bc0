package database

import (
	"context"
	"fmt"
	"strings"

	"github.com/rpupo63/portfolio-backend/errs"
	"github.com/rpupo63/portfolio-backend/models"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

const projectsTable = "projects"

// Base schema as first deployed. Later columns arrive through projectColumnSteps.
const createProjectsTable = `CREATE TABLE IF NOT EXISTS projects (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	slug TEXT UNIQUE,
	title TEXT,
	short_desc TEXT,
	description TEXT,
	technologies TEXT,
	image_url TEXT,
	repo_url TEXT,
	live_url TEXT,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
	updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
)`

// projectColumnSteps are applied in order. Each adds one nullable TEXT column
// and is safe to re-run.
var projectColumnSteps = []string{
	"introduction",
	"main_idea",
	"images_section",
	"technical_details",
	"presentation",
	"how_to_run",
}

// MigrationReport summarizes one Initialize run.
type MigrationReport struct {
	Added   []string
	Present []string
	Failed  map[string]error
}

func (r MigrationReport) String() string {
	return fmt.Sprintf("added=%d present=%d failed=%d", len(r.Added), len(r.Present), len(r.Failed))
}

// Initialize creates the projects table when absent and adds any missing
// extension columns. Only a failure to create the table is returned; a column
// that cannot be added is logged, recorded in the report and skipped.
func (d Database) Initialize(ctx context.Context) (MigrationReport, error) {
	db := d.db.WithContext(ctx)
	report := MigrationReport{Failed: map[string]error{}}

	if err := db.Exec(createProjectsTable).Error; err != nil {
		return report, errs.NewSchemaCreationError(projectsTable, err)
	}

	for _, column := range projectColumnSteps {
		added, err := addTextColumn(db, projectsTable, column)
		switch {
		case err != nil:
			log.Error().Err(err).Str("table", projectsTable).Str("column", column).Msg("Failed to add column, skipping")
			report.Failed[column] = err
		case added:
			log.Info().Str("table", projectsTable).Str("column", column).Msg("Column added")
			report.Added = append(report.Added, column)
		default:
			log.Debug().Str("table", projectsTable).Str("column", column).Msg("Column already present")
			report.Present = append(report.Present, column)
		}
	}

	log.Info().Stringer("result", report).Msg("Database migration completed")
	return report, nil
}

// addTextColumn reports whether it changed the schema.
func addTextColumn(db *gorm.DB, table, column string) (bool, error) {
	columns, err := models.TableColumns(db, table)
	if err != nil {
		return false, errs.NewMigrationStepError(table, column, err)
	}
	for _, existing := range columns {
		if strings.EqualFold(existing, column) {
			return false, nil
		}
	}

	err = db.Exec(fmt.Sprintf("ALTER TABLE %s ADD COLUMN %s TEXT", table, column)).Error
	switch {
	case err == nil:
		return true, nil
	case isDuplicateColumn(err):
		// lost a race with another process, or the column was added between the check and the ALTER
		return false, nil
	default:
		return false, errs.NewMigrationStepError(table, column, err)
	}
}

// SQLite reports this case only as a generic SQLITE_ERROR, so the message is all there is.
func isDuplicateColumn(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate column") || strings.Contains(msg, "already exists")
}
