package services

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rpupo63/portfolio-backend/errs"
	"github.com/rpupo63/portfolio-backend/models"
	"github.com/rs/zerolog/log"
)

// ProjectLister is the read side of the project store used by exports.
type ProjectLister interface {
	FindAll(ctx context.Context) ([]*models.Project, error)
}

// ExportProjects writes every project, newest first, as the JSON array the
// static pages load from data/projects.json. The file is replaced atomically.
// It returns the number of projects written.
func ExportProjects(ctx context.Context, repo ProjectLister, path string) (int, error) {
	projects, err := repo.FindAll(ctx)
	if err != nil {
		return 0, err
	}
	if projects == nil {
		projects = []*models.Project{}
	}

	data, err := json.MarshalIndent(projects, "", "  ")
	if err != nil {
		return 0, errs.NewJSONMarshalError("project export", err)
	}
	data = append(data, '\n')

	if err := writeFileAtomic(path, data); err != nil {
		return 0, errs.NewExportWriteError(path, err)
	}

	log.Info().Str("path", path).Int("projects", len(projects)).Msg("Projects exported")
	return len(projects), nil
}

// writeFileAtomic writes to a temp file beside path and renames it into place,
// so readers never see a partial file.
func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create export dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName) // no-op once renamed

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write %s: %w", tmpName, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close %s: %w", tmpName, err)
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		return fmt.Errorf("chmod %s: %w", tmpName, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("rename into %s: %w", path, err)
	}
	return nil
}
