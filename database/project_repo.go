package database

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/taijii-c/portfolio-site-backend/errs"
	"github.com/taijii-c/portfolio-site-backend/models"
)

type ProjectRepo struct {
	db *gorm.DB
}

func NewProjectRepo(db *gorm.DB) *ProjectRepo {
	return &ProjectRepo{db}
}

// Count returns the total number of projects
func (r *ProjectRepo) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Project{}).Count(&count).Error
	return count, err
}

// FindPage returns one window of projects ordered by creation date, newest first
func (r *ProjectRepo) FindPage(offset, limit int) ([]*models.Project, error) {
	var projects []*models.Project
	err := r.db.
		Order("date_created DESC").
		Offset(offset).
		Limit(limit).
		Find(&projects).Error
	return projects, err
}

// FindLatest returns the n most recently created projects
func (r *ProjectRepo) FindLatest(n int) ([]*models.Project, error) {
	var projects []*models.Project
	err := r.db.
		Order("date_created DESC").
		Limit(n).
		Find(&projects).Error
	return projects, err
}

// FindByID returns a project by its ID, or nil when no such project exists
func (r *ProjectRepo) FindByID(id uuid.UUID) (*models.Project, error) {
	var project models.Project
	err := r.db.First(&project, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &project, nil
}

// Exists reports whether a project with the given ID is present
func (r *ProjectRepo) Exists(id uuid.UUID) (bool, error) {
	var count int64
	err := r.db.Model(&models.Project{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

// Add inserts a new project into the database
func (r *ProjectRepo) Add(project *models.Project) error {
	return r.db.Create(project).Error
}

// Update saves a modified project. The update only applies when the stored
// version still matches the loaded one; otherwise ErrConcurrentUpdate is
// returned and nothing changes.
func (r *ProjectRepo) Update(project *models.Project) error {
	result := r.db.Model(&models.Project{}).
		Where("id = ? AND version = ?", project.ID, project.Version).
		Updates(map[string]any{
			"title":        project.Title,
			"description":  project.Description,
			"date_created": project.DateCreated,
			"github_url":   project.GithubURL,
			"live_url":     project.LiveURL,
			"image_path":   project.ImagePath,
			"version":      project.Version + 1,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.ErrConcurrentUpdate
	}
	project.Version++
	return nil
}

// Delete removes a project from the database by id
func (r *ProjectRepo) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Project{}, "id = ?", id).Error
}
