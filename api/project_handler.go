package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rpupo63/portfolio-backend/database"
	"github.com/rpupo63/portfolio-backend/errs"
	"github.com/rpupo63/portfolio-backend/models"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type projectHandler struct {
	responder    Responder
	logger       zerolog.Logger
	projectRepo  *database.ProjectRepo
	maxBodyBytes int64
}

func newProjectHandler(projectRepo *database.ProjectRepo, maxBodyBytes int64) projectHandler {
	logger := log.With().Str("handlerName", "projectHandler").Logger()

	return projectHandler{
		responder:    NewResponder(logger),
		logger:       logger,
		projectRepo:  projectRepo,
		maxBodyBytes: maxBodyBytes,
	}
}

// getAllProjects retrieves all projects
// @Summary Get all projects
// @Description Retrieves all projects, most recently created first
// @Tags Projects
// @Produce json
// @Success 200 {array} models.Project "List of projects"
// @Failure 500 {object} ErrorResponse "Internal Server Error"
// @Router /api/projects [get]
func (h projectHandler) getAllProjects() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projects, err := h.projectRepo.FindAll(r.Context())
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, projects)
	}
}

// getProject retrieves a specific project by ID
// @Summary Get project
// @Tags Projects
// @Produce json
// @Param projectID path int true "Project ID"
// @Success 200 {object} models.Project
// @Failure 404 {object} ErrorResponse "Not Found - Project not found"
// @Failure 500 {object} ErrorResponse "Internal Server Error"
// @Router /api/projects/{projectID} [get]
func (h projectHandler) getProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, ok := parseProjectID(r)
		if !ok {
			h.responder.WriteError(w, errs.NewNotFound("project"))
			return
		}

		project, err := h.projectRepo.FindByID(r.Context(), projectID)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, project)
	}
}

// getProjectBySlug retrieves a specific project by slug
// @Summary Get project by slug
// @Tags Projects
// @Produce json
// @Param slug path string true "Project slug"
// @Success 200 {object} models.Project
// @Failure 404 {object} ErrorResponse "Not Found - Project not found"
// @Failure 500 {object} ErrorResponse "Internal Server Error"
// @Router /api/projects/slug/{slug} [get]
func (h projectHandler) getProjectBySlug() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slug := chi.URLParam(r, "slug")

		project, err := h.projectRepo.FindBySlug(r.Context(), slug)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, project)
	}
}

// createProject creates a new project. Title and slug are required; a value
// that is empty or only whitespace counts as missing.
// @Summary Create project
// @Tags Projects
// @Accept json
// @Produce json
// @Param project body models.ProjectInput true "Project data"
// @Success 201 {object} models.Project "Created project"
// @Failure 400 {object} ErrorResponse "Bad Request - title and slug are required"
// @Failure 409 {object} ErrorResponse "Conflict - slug already in use"
// @Failure 500 {object} ErrorResponse "Internal Server Error"
// @Router /api/projects [post]
func (h projectHandler) createProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		input, err := h.decodeInput(w, r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		var project models.Project
		input.Apply(&project)

		created, err := h.projectRepo.Insert(r.Context(), &project)
		if err != nil {
			if errs.IsConflict(err) {
				h.logger.Info().Str("slug", project.Slug).Msg("Project slug already in use")
			}
			h.responder.WriteError(w, err)
			return
		}

		h.logger.Info().Int64("projectID", created.ID).Str("slug", created.Slug).Msg("Project created")
		h.responder.WriteJSONStatus(w, http.StatusCreated, created)
	}
}

// updateProject replaces every field of an existing project
// Title and slug follow the same rules as on create.
// @Summary Update project
// @Tags Projects
// @Accept json
// @Produce json
// @Param projectID path int true "Project ID"
// @Param project body models.ProjectInput true "Full project data"
// @Success 200 {object} models.Project "Updated project"
// @Failure 400 {object} ErrorResponse "Bad Request - title and slug are required"
// @Failure 404 {object} ErrorResponse "Not Found - Project not found"
// @Failure 409 {object} ErrorResponse "Conflict - slug already in use"
// @Failure 500 {object} ErrorResponse "Internal Server Error"
// @Router /api/projects/{projectID} [put]
func (h projectHandler) updateProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, ok := parseProjectID(r)
		if !ok {
			h.responder.WriteError(w, errs.NewNotFound("project"))
			return
		}

		// Verify project exists
		if _, err := h.projectRepo.FindByID(r.Context(), projectID); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		input, err := h.decodeInput(w, r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		updated, err := h.projectRepo.Update(r.Context(), projectID, input)
		if err != nil {
			if errs.IsConflict(err) {
				h.logger.Info().Int64("projectID", projectID).Str("slug", input.Slug).Msg("Project slug already in use")
			}
			h.responder.WriteError(w, err)
			return
		}

		h.logger.Info().Int64("projectID", updated.ID).Str("slug", updated.Slug).Msg("Project updated")
		h.responder.WriteJSON(w, updated)
	}
}

// deleteProject deletes a project by ID
// @Summary Delete project
// @Tags Projects
// @Produce json
// @Param projectID path int true "Project ID"
// @Success 200 {object} DeleteResponse
// @Failure 404 {object} ErrorResponse "Not Found - Project not found"
// @Failure 500 {object} ErrorResponse "Internal Server Error"
// @Router /api/projects/{projectID} [delete]
func (h projectHandler) deleteProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, ok := parseProjectID(r)
		if !ok {
			h.responder.WriteError(w, errs.NewNotFound("project"))
			return
		}

		// Verify project exists
		if _, err := h.projectRepo.FindByID(r.Context(), projectID); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		deletedID, err := h.projectRepo.Delete(r.Context(), projectID)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.logger.Info().Int64("projectID", deletedID).Msg("Project deleted")
		h.responder.WriteJSON(w, DeleteResponse{Deleted: true, ID: deletedID})
	}
}

// decodeInput reads a size-capped JSON body and checks required fields.
func (h projectHandler) decodeInput(w http.ResponseWriter, r *http.Request) (models.ProjectInput, error) {
	var input models.ProjectInput

	body := http.MaxBytesReader(w, r.Body, h.maxBodyBytes)
	if err := json.NewDecoder(body).Decode(&input); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			return input, errs.NewMaxBodySizeExceededError(maxBytesErr.Limit)
		}
		h.logger.Warn().Err(err).Msg("Failed to decode project request body")
		return input, errs.NewInvalidJSONError(err)
	}

	if field := input.MissingField(); field != "" {
		return input, errs.NewMissingRequiredFieldError(field)
	}
	return input, nil
}

// parseProjectID reads the {projectID} URL param. Ids are positive integers,
// so anything else cannot name a project.
func parseProjectID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "projectID"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
