package api

import (
	"github.com/google/uuid"

	"github.com/taijii-c/portfolio-site-backend/models"
)

// Store interfaces consumed by the handlers. The database package's repos
// satisfy them; tests substitute in-memory fakes.

type projectStore interface {
	Count() (int64, error)
	FindPage(offset, limit int) ([]*models.Project, error)
	FindLatest(n int) ([]*models.Project, error)
	FindByID(id uuid.UUID) (*models.Project, error)
	Exists(id uuid.UUID) (bool, error)
	Add(project *models.Project) error
	Update(project *models.Project) error
	Delete(id uuid.UUID) error
}

type articleStore interface {
	Count() (int64, error)
	FindPage(offset, limit int) ([]*models.Article, error)
	FindLatest(n int) ([]*models.Article, error)
	FindByID(id uuid.UUID) (*models.Article, error)
	FindByIDWithComments(id uuid.UUID) (*models.Article, error)
	Exists(id uuid.UUID) (bool, error)
	Add(article *models.Article) error
	Update(article *models.Article) error
	Delete(id uuid.UUID) error
}

type commentStore interface {
	FindByID(id uuid.UUID) (*models.Comment, error)
	Add(comment *models.Comment) error
	Delete(id uuid.UUID) error
}

type userStore interface {
	Upsert(user *models.User) error
}
