package database

import (
	"gorm.io/gorm"

	"github.com/taijii-c/portfolio-site-backend/models"
)

type Database struct {
	projectRepo *ProjectRepo
	articleRepo *ArticleRepo
	commentRepo *CommentRepo
	userRepo    *UserRepo
}

// New initializes a new Database struct with each repository using a shared GORM database instance
func New(db *gorm.DB) Database {
	return Database{
		projectRepo: NewProjectRepo(db),
		articleRepo: NewArticleRepo(db),
		commentRepo: NewCommentRepo(db),
		userRepo:    NewUserRepo(db),
	}
}

// Migrate creates or updates the schema for all models. The declared foreign
// keys make comment cleanup on article deletion a store-level guarantee in
// addition to the explicit delete-children-first step in ArticleRepo.Delete.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Project{},
		&models.Article{},
		&models.Comment{},
	)
}

// Accessor methods for each repository

func (d Database) ProjectRepo() *ProjectRepo {
	return d.projectRepo
}

func (d Database) ArticleRepo() *ArticleRepo {
	return d.articleRepo
}

func (d Database) CommentRepo() *CommentRepo {
	return d.commentRepo
}

func (d Database) UserRepo() *UserRepo {
	return d.userRepo
}
