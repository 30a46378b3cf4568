package api

import (
	"context"
	"errors"
	"io"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/taijii-c/portfolio-site-backend/errs"
	"github.com/taijii-c/portfolio-site-backend/models"
)

// fakeDB is an in-memory stand-in for the database repos. Reads hand out
// copies, so handler-side mutation only becomes visible through Update, the
// same way a real store behaves.
type fakeDB struct {
	mu       sync.Mutex
	projects map[uuid.UUID]*models.Project
	articles map[uuid.UUID]*models.Article
	comments map[uuid.UUID]*models.Comment
	users    map[string]*models.User

	conflictOnUpdate bool
}

func newFakeDB() *fakeDB {
	return &fakeDB{
		projects: make(map[uuid.UUID]*models.Project),
		articles: make(map[uuid.UUID]*models.Article),
		comments: make(map[uuid.UUID]*models.Comment),
		users:    make(map[string]*models.User),
	}
}

// projectStore

func (f *fakeDB) Count() (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return int64(len(f.projects)), nil
}

func (f *fakeDB) FindPage(offset, limit int) ([]*models.Project, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	sorted := f.sortedProjects()
	return pageOf(sorted, offset, limit), nil
}

func (f *fakeDB) FindLatest(n int) ([]*models.Project, error) {
	return f.FindPage(0, n)
}

func (f *fakeDB) FindByID(id uuid.UUID) (*models.Project, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	p, ok := f.projects[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (f *fakeDB) Exists(id uuid.UUID) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, ok := f.projects[id]
	return ok, nil
}

func (f *fakeDB) Add(p *models.Project) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	cp := *p
	f.projects[p.ID] = &cp
	return nil
}

func (f *fakeDB) Update(p *models.Project) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.conflictOnUpdate {
		return errs.ErrConcurrentUpdate
	}
	if _, ok := f.projects[p.ID]; !ok {
		return errs.ErrConcurrentUpdate
	}
	cp := *p
	cp.Version++
	f.projects[p.ID] = &cp
	p.Version++
	return nil
}

func (f *fakeDB) Delete(id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.projects, id)
	return nil
}

func (f *fakeDB) sortedProjects() []*models.Project {
	sorted := make([]*models.Project, 0, len(f.projects))
	for _, p := range f.projects {
		cp := *p
		sorted = append(sorted, &cp)
	}
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].DateCreated.After(sorted[j].DateCreated)
	})
	return sorted
}

// articleStore is implemented by a separate type so one test can use both a
// project and an article fake without method-set collisions.

type fakeArticleDB struct {
	db *fakeDB
}

func (f fakeArticleDB) Count() (int64, error) {
	f.db.mu.Lock()
	defer f.db.mu.Unlock()
	return int64(len(f.db.articles)), nil
}

func (f fakeArticleDB) FindPage(offset, limit int) ([]*models.Article, error) {
	f.db.mu.Lock()
	defer f.db.mu.Unlock()
	return pageOf(f.sortedArticles(), offset, limit), nil
}

func (f fakeArticleDB) FindLatest(n int) ([]*models.Article, error) {
	return f.FindPage(0, n)
}

func (f fakeArticleDB) FindByID(id uuid.UUID) (*models.Article, error) {
	f.db.mu.Lock()
	defer f.db.mu.Unlock()

	a, ok := f.db.articles[id]
	if !ok {
		return nil, nil
	}
	cp := *a
	return &cp, nil
}

func (f fakeArticleDB) FindByIDWithComments(id uuid.UUID) (*models.Article, error) {
	f.db.mu.Lock()
	defer f.db.mu.Unlock()

	a, ok := f.db.articles[id]
	if !ok {
		return nil, nil
	}
	cp := *a

	var comments []models.Comment
	for _, c := range f.db.comments {
		if c.ArticleID == id {
			comments = append(comments, *c)
		}
	}
	sort.Slice(comments, func(i, j int) bool {
		return comments[i].PublishedDate.After(comments[j].PublishedDate)
	})
	cp.Comments = comments
	return &cp, nil
}

func (f fakeArticleDB) Exists(id uuid.UUID) (bool, error) {
	f.db.mu.Lock()
	defer f.db.mu.Unlock()
	_, ok := f.db.articles[id]
	return ok, nil
}

func (f fakeArticleDB) Add(a *models.Article) error {
	f.db.mu.Lock()
	defer f.db.mu.Unlock()

	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	cp := *a
	f.db.articles[a.ID] = &cp
	return nil
}

func (f fakeArticleDB) Update(a *models.Article) error {
	f.db.mu.Lock()
	defer f.db.mu.Unlock()

	if f.db.conflictOnUpdate {
		return errs.ErrConcurrentUpdate
	}
	if _, ok := f.db.articles[a.ID]; !ok {
		return errs.ErrConcurrentUpdate
	}
	cp := *a
	cp.Version++
	f.db.articles[a.ID] = &cp
	a.Version++
	return nil
}

func (f fakeArticleDB) Delete(id uuid.UUID) error {
	f.db.mu.Lock()
	defer f.db.mu.Unlock()

	for cid, c := range f.db.comments {
		if c.ArticleID == id {
			delete(f.db.comments, cid)
		}
	}
	delete(f.db.articles, id)
	return nil
}

func (f fakeArticleDB) sortedArticles() []*models.Article {
	sorted := make([]*models.Article, 0, len(f.db.articles))
	for _, a := range f.db.articles {
		cp := *a
		sorted = append(sorted, &cp)
	}
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].PublishedDate.After(sorted[j].PublishedDate)
	})
	return sorted
}

// commentStore

type fakeCommentDB struct {
	db *fakeDB
}

func (f fakeCommentDB) FindByID(id uuid.UUID) (*models.Comment, error) {
	f.db.mu.Lock()
	defer f.db.mu.Unlock()

	c, ok := f.db.comments[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (f fakeCommentDB) Add(c *models.Comment) error {
	f.db.mu.Lock()
	defer f.db.mu.Unlock()

	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	cp := *c
	f.db.comments[c.ID] = &cp
	return nil
}

func (f fakeCommentDB) Delete(id uuid.UUID) error {
	f.db.mu.Lock()
	defer f.db.mu.Unlock()
	delete(f.db.comments, id)
	return nil
}

// userStore

type fakeUserDB struct {
	db *fakeDB
}

func (f fakeUserDB) Upsert(u *models.User) error {
	f.db.mu.Lock()
	defer f.db.mu.Unlock()
	cp := *u
	f.db.users[u.ID] = &cp
	return nil
}

func pageOf[T any](sorted []*T, offset, limit int) []*T {
	if offset >= len(sorted) {
		return nil
	}
	end := offset + limit
	if end > len(sorted) {
		end = len(sorted)
	}
	return sorted[offset:end]
}

// fakeImageStore records saves and deletes; failSave makes every write fail.
type fakeImageStore struct {
	mu      sync.Mutex
	saved   []string
	deleted []string

	failSave bool
	nextPath string
}

func (f *fakeImageStore) Save(_ context.Context, filename string, r io.Reader) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.failSave {
		return "", errors.New("disk full")
	}
	io.Copy(io.Discard, r)

	path := f.nextPath
	if path == "" {
		path = "/img/uploads/" + uuid.New().String() + "_" + filename
	}
	f.saved = append(f.saved, path)
	return path, nil
}

func (f *fakeImageStore) Delete(_ context.Context, relPath string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deleted = append(f.deleted, relPath)
	return nil
}
