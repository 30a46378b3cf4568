package database

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/taijii-c/portfolio-site-backend/errs"
	"github.com/taijii-c/portfolio-site-backend/models"
)

type ArticleRepo struct {
	db *gorm.DB
}

func NewArticleRepo(db *gorm.DB) *ArticleRepo {
	return &ArticleRepo{db}
}

// Count returns the total number of articles
func (r *ArticleRepo) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Article{}).Count(&count).Error
	return count, err
}

// FindPage returns one window of articles with their authors, ordered by
// publish date, newest first
func (r *ArticleRepo) FindPage(offset, limit int) ([]*models.Article, error) {
	var articles []*models.Article
	err := r.db.
		Preload("Author").
		Order("published_date DESC").
		Offset(offset).
		Limit(limit).
		Find(&articles).Error
	return articles, err
}

// FindLatest returns the n most recently published articles with their authors
func (r *ArticleRepo) FindLatest(n int) ([]*models.Article, error) {
	var articles []*models.Article
	err := r.db.
		Preload("Author").
		Order("published_date DESC").
		Limit(n).
		Find(&articles).Error
	return articles, err
}

// FindByID returns an article by its ID without relations, or nil when no
// such article exists
func (r *ArticleRepo) FindByID(id uuid.UUID) (*models.Article, error) {
	var article models.Article
	err := r.db.First(&article, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &article, nil
}

// FindByIDWithComments returns an article with its author and all comments,
// each comment carrying its own author. Comments are ordered by publish date,
// newest first. Returns nil when no such article exists.
func (r *ArticleRepo) FindByIDWithComments(id uuid.UUID) (*models.Article, error) {
	var article models.Article
	err := r.db.
		Preload("Author").
		Preload("Comments", func(db *gorm.DB) *gorm.DB {
			return db.Order("comments.published_date DESC")
		}).
		Preload("Comments.Author").
		First(&article, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &article, nil
}

// Exists reports whether an article with the given ID is present
func (r *ArticleRepo) Exists(id uuid.UUID) (bool, error) {
	var count int64
	err := r.db.Model(&models.Article{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

// Add inserts a new article into the database
func (r *ArticleRepo) Add(article *models.Article) error {
	return r.db.Create(article).Error
}

// Update saves a modified article under an optimistic version check. Only
// title and content ever change through this path; author and publish date
// are written back as loaded so a stale in-memory value cannot drift the
// stored ones.
func (r *ArticleRepo) Update(article *models.Article) error {
	result := r.db.Model(&models.Article{}).
		Where("id = ? AND version = ?", article.ID, article.Version).
		Updates(map[string]any{
			"title":          article.Title,
			"content":        article.Content,
			"author_id":      article.AuthorID,
			"published_date": article.PublishedDate,
			"version":        article.Version + 1,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.ErrConcurrentUpdate
	}
	article.Version++
	return nil
}

// Delete removes an article and its comments. The comments go first inside
// one transaction so a partially applied delete can never strand them.
func (r *ArticleRepo) Delete(id uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&models.Comment{}, "article_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Article{}, "id = ?", id).Error
	})
}
