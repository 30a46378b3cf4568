package api

import (
	"errors"
	"mime/multipart"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/taijii-c/portfolio-site-backend/errs"
	"github.com/taijii-c/portfolio-site-backend/imagestore"
	"github.com/taijii-c/portfolio-site-backend/models"
	"github.com/taijii-c/portfolio-site-backend/pagination"
)

const maxUploadBytes = 10 << 20 // 10MB cap on project image uploads

type projectHandler struct {
	responder   Responder
	logger      zerolog.Logger
	projectRepo projectStore
	images      imagestore.Store
}

func newProjectHandler(projectRepo projectStore, images imagestore.Store) projectHandler {
	logger := log.With().Str("handlerName", "projectHandler").Logger()

	return projectHandler{
		responder:   NewResponder(logger),
		logger:      logger,
		projectRepo: projectRepo,
		images:      images,
	}
}

// listProjects returns one page of projects, newest first
func (h projectHandler) listProjects() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		count, err := h.projectRepo.Count()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("count projects", "projects", err))
			return
		}

		pager := pagination.New(count, pageParam(r), pagination.DefaultPageSize)

		projects, err := h.projectRepo.FindPage(pager.Offset(), pager.Limit())
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find projects", "projects", err))
			return
		}

		h.responder.WriteJSON(w, pagination.NewPage(pager, projects))
	}
}

// getProject returns a single project by ID
func (h projectHandler) getProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, ok := uuidParam(r, "projectID")
		if !ok {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid projectID"))
			return
		}

		project, err := h.projectRepo.FindByID(projectID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find project", "project", err))
			return
		}
		if project == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("project not found"))
			return
		}

		h.responder.WriteJSON(w, project)
	}
}

// createProject creates a new project from a multipart form, optionally
// storing an uploaded image. Validation runs before anything is written.
func (h projectHandler) createProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		form, image, fieldErrs, err := h.parseProjectForm(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		if image != nil {
			defer image.file.Close()
		}

		fieldErrs = append(fieldErrs, validateProjectForm(form)...)
		if len(fieldErrs) > 0 {
			h.responder.WriteValidationFailure(w, fieldErrs, form)
			return
		}

		dateCreated := time.Now()
		if form.DateCreated != nil {
			dateCreated = *form.DateCreated
		}

		project := models.Project{
			Title:       form.Title,
			Description: form.Description,
			DateCreated: dateCreated,
			GithubURL:   optionalString(form.GithubURL),
			LiveURL:     optionalString(form.LiveURL),
		}

		if image != nil {
			imagePath, err := h.images.Save(r.Context(), image.filename, image.file)
			if err != nil {
				h.responder.WriteError(w, errs.NewStorageIOError("save project image", err))
				return
			}
			project.ImagePath = &imagePath
		}

		if err := h.projectRepo.Add(&project); err != nil {
			h.discardImage(r, project.ImagePath)
			h.responder.WriteError(w, wrapDatabaseError("create project", "project", err))
			return
		}

		h.responder.WriteJSONStatus(w, http.StatusCreated, project)
	}
}

// updateProject edits an existing project. A replacement image is written
// before the old one is deleted, so a failed write leaves the prior image
// untouched.
func (h projectHandler) updateProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, ok := uuidParam(r, "projectID")
		if !ok {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid projectID"))
			return
		}

		project, err := h.projectRepo.FindByID(projectID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find project", "project", err))
			return
		}
		if project == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("project not found"))
			return
		}

		form, image, fieldErrs, err := h.parseProjectForm(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		if image != nil {
			defer image.file.Close()
		}

		fieldErrs = append(fieldErrs, validateProjectForm(form)...)
		if len(fieldErrs) > 0 {
			h.responder.WriteValidationFailure(w, fieldErrs, form)
			return
		}

		var oldImagePath *string
		if image != nil {
			newPath, err := h.images.Save(r.Context(), image.filename, image.file)
			if err != nil {
				// The prior image path stays on the record untouched.
				h.responder.WriteError(w, errs.NewStorageIOError("save project image", err))
				return
			}
			oldImagePath = project.ImagePath
			project.ImagePath = &newPath
		}

		project.Title = form.Title
		project.Description = form.Description
		if form.DateCreated != nil {
			project.DateCreated = *form.DateCreated
		}
		project.GithubURL = optionalString(form.GithubURL)
		project.LiveURL = optionalString(form.LiveURL)

		if err := h.projectRepo.Update(project); err != nil {
			if image != nil {
				h.discardImage(r, project.ImagePath)
			}
			if errs.IsConcurrentUpdate(err) {
				h.writeUpdateConflict(w, projectID)
				return
			}
			h.responder.WriteError(w, wrapDatabaseError("update project", "project", err))
			return
		}

		// The new image is committed; only now is the old one removed.
		if oldImagePath != nil {
			if err := h.images.Delete(r.Context(), *oldImagePath); err != nil {
				h.logger.Warn().Err(err).Str("imagePath", *oldImagePath).Msg("failed to delete replaced project image")
			}
		}

		h.responder.WriteJSON(w, project)
	}
}

// deleteProject removes a project and its stored image
func (h projectHandler) deleteProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, ok := uuidParam(r, "projectID")
		if !ok {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid projectID"))
			return
		}

		project, err := h.projectRepo.FindByID(projectID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find project", "project", err))
			return
		}
		if project == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("project not found"))
			return
		}

		if err := h.projectRepo.Delete(projectID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete project", "project", err))
			return
		}

		if project.ImagePath != nil {
			if err := h.images.Delete(r.Context(), *project.ImagePath); err != nil {
				h.logger.Warn().Err(err).Str("imagePath", *project.ImagePath).Msg("failed to delete project image")
			}
		}

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "project deleted successfully",
		})
	}
}

// writeUpdateConflict disambiguates an optimistic-concurrency failure: a
// vanished record is a plain not-found, anything else is a conflict surfaced
// unrecovered.
func (h projectHandler) writeUpdateConflict(w http.ResponseWriter, projectID uuid.UUID) {
	exists, err := h.projectRepo.Exists(projectID)
	if err == nil && !exists {
		h.responder.WriteError(w, errs.NewNotFoundError("project not found"))
		return
	}
	h.responder.WriteError(w, errs.NewConcurrencyConflictError("project"))
}

type uploadedImage struct {
	file     multipart.File
	filename string
}

// parseProjectForm reads the multipart fields and the optional image part.
// A malformed dateCreated is reported as a field error rather than a hard
// payload failure so the rest of the input still validates.
func (h projectHandler) parseProjectForm(r *http.Request) (ProjectForm, *uploadedImage, []FieldError, error) {
	r.Body = http.MaxBytesReader(nil, r.Body, maxUploadBytes)
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		return ProjectForm{}, nil, nil, errs.NewMalformedPayloadError("multipart form", err)
	}

	form := ProjectForm{
		Title:       r.FormValue("title"),
		Description: r.FormValue("description"),
		GithubURL:   r.FormValue("githubUrl"),
		LiveURL:     r.FormValue("liveUrl"),
	}

	var fieldErrs []FieldError
	if v := r.FormValue("dateCreated"); v != "" {
		parsed, err := parseDate(v)
		if err != nil {
			fieldErrs = append(fieldErrs, FieldError{Field: "dateCreated", Message: "dateCreated must be an RFC 3339 timestamp or YYYY-MM-DD date"})
		} else {
			form.DateCreated = &parsed
		}
	}

	file, header, err := r.FormFile("image")
	if errors.Is(err, http.ErrMissingFile) {
		return form, nil, fieldErrs, nil
	}
	if err != nil {
		return ProjectForm{}, nil, nil, errs.NewMalformedPayloadError("image upload", err)
	}

	return form, &uploadedImage{file: file, filename: header.Filename}, fieldErrs, nil
}

// discardImage best-effort removes an image that was written for a mutation
// that subsequently failed
func (h projectHandler) discardImage(r *http.Request, imagePath *string) {
	if imagePath == nil {
		return
	}
	if err := h.images.Delete(r.Context(), *imagePath); err != nil {
		h.logger.Warn().Err(err).Str("imagePath", *imagePath).Msg("failed to discard orphaned project image")
	}
}

func parseDate(v string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, v); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", v)
}

func optionalString(v string) *string {
	if v == "" {
		return nil
	}
	return &v
}
