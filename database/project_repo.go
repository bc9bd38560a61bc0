package database

import (
	"context"
	"errors"
	"strings"

	"github.com/rpupo63/portfolio-backend/errs"
	"github.com/rpupo63/portfolio-backend/models"
	"gorm.io/gorm"
)

const projectEntity = "project"

type ProjectRepo struct {
	db *gorm.DB
}

func NewProjectRepo(db *gorm.DB) *ProjectRepo {
	return &ProjectRepo{db}
}

// FindAll returns every project, most recently created first
func (r *ProjectRepo) FindAll(ctx context.Context) ([]*models.Project, error) {
	projects := []*models.Project{}
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Order("id DESC").
		Find(&projects).Error
	if err != nil {
		return nil, errs.NewDatabaseError("list", "projects", err)
	}
	return projects, nil
}

// FindByID returns a project by its ID
func (r *ProjectRepo) FindByID(ctx context.Context, id int64) (*models.Project, error) {
	var project models.Project
	err := r.db.WithContext(ctx).Where("id = ?", id).Take(&project).Error
	if err != nil {
		return nil, classify("find", err)
	}
	return &project, nil
}

// FindBySlug returns a project by its slug
func (r *ProjectRepo) FindBySlug(ctx context.Context, slug string) (*models.Project, error) {
	var project models.Project
	err := r.db.WithContext(ctx).Where("slug = ?", slug).Take(&project).Error
	if err != nil {
		return nil, classify("find", err)
	}
	return &project, nil
}

// Insert stores a new project and returns it as read back from the table.
// Any ID or timestamps already set on project are replaced.
func (r *ProjectRepo) Insert(ctx context.Context, project *models.Project) (*models.Project, error) {
	now := r.db.NowFunc()
	project.ID = 0
	project.CreatedAt = now
	project.UpdatedAt = now

	if err := r.db.WithContext(ctx).Create(project).Error; err != nil {
		return nil, classifyWrite("insert", project.Slug, err)
	}
	return r.FindByID(ctx, project.ID)
}

// Update replaces every mutable field of the project and refreshes updated_at
func (r *ProjectRepo) Update(ctx context.Context, id int64, input models.ProjectInput) (*models.Project, error) {
	columns := input.Columns()
	columns["updated_at"] = r.db.NowFunc()

	result := r.db.WithContext(ctx).
		Model(&models.Project{}).
		Where("id = ?", id).
		Updates(columns)
	if result.Error != nil {
		return nil, classifyWrite("update", input.Slug, result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, errs.NewNotFound(projectEntity)
	}
	return r.FindByID(ctx, id)
}

// Delete removes a project from the database by id
func (r *ProjectRepo) Delete(ctx context.Context, id int64) (int64, error) {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Project{})
	if result.Error != nil {
		return 0, errs.NewDatabaseError("delete", projectEntity, result.Error)
	}
	if result.RowsAffected == 0 {
		return 0, errs.NewNotFound(projectEntity)
	}
	return id, nil
}

func classify(operation string, err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errs.NewNotFound(projectEntity)
	}
	return errs.NewDatabaseError(operation, projectEntity, err)
}

func classifyWrite(operation, slug string, err error) error {
	if isUniqueViolation(err) {
		return errs.NewAlreadyExists(projectEntity, "slug", slug, err)
	}
	return errs.NewDatabaseError(operation, projectEntity, err)
}

// gorm translates constraint codes when the dialector supports it; the
// message check covers drivers that surface the raw engine error.
func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
