// Package mock holds in-memory repository implementations so service
// and handler tests run without Postgres. Filtering and ordering
// mirror the SQL repos.
package mock

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/meenakannan/portfolio-api/internal/models"
	"github.com/meenakannan/portfolio-api/internal/query"
	"github.com/meenakannan/portfolio-api/internal/repository"
)

type ProjectsRepo struct {
	mu    sync.Mutex
	items map[string]models.Project

	// Err, when set, is returned by every call.
	Err error
}

func NewProjects() *ProjectsRepo {
	return &ProjectsRepo{items: map[string]models.Project{}}
}

func (m *ProjectsRepo) Create(_ context.Context, p models.Project) (models.Project, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return models.Project{}, m.Err
	}
	now := time.Now().UTC()
	p.ID = uuid.NewString()
	p.CreatedAt, p.UpdatedAt = now, now
	m.items[p.ID] = p
	return p, nil
}

func (m *ProjectsRepo) GetByID(_ context.Context, id string) (models.Project, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return models.Project{}, m.Err
	}
	p, ok := m.items[id]
	if !ok {
		return models.Project{}, repository.ErrNotFound
	}
	return p, nil
}

func matchProject(p models.Project, f query.ProjectFilter) bool {
	if f.Featured != nil && p.Featured != *f.Featured {
		return false
	}
	if f.Category != "" && string(p.Category) != f.Category {
		return false
	}
	if f.Status != "" && string(p.Status) != f.Status {
		return false
	}
	if f.Technology != "" && !contains(p.Technologies, f.Technology) {
		return false
	}
	return true
}

func (m *ProjectsRepo) List(_ context.Context, f query.ProjectFilter, pg query.Page) ([]models.Project, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return nil, m.Err
	}
	var all []models.Project
	for _, p := range m.items {
		if matchProject(p, f) {
			all = append(all, p)
		}
	}
	sort.Slice(all, func(i, j int) bool {
		if all[i].Featured != all[j].Featured {
			return all[i].Featured
		}
		return all[i].CreatedAt.After(all[j].CreatedAt)
	})
	return page(all, pg), nil
}

func (m *ProjectsRepo) Count(_ context.Context, f query.ProjectFilter) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return 0, m.Err
	}
	var n int64
	for _, p := range m.items {
		if matchProject(p, f) {
			n++
		}
	}
	return n, nil
}

func (m *ProjectsRepo) Update(_ context.Context, p models.Project) (models.Project, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return models.Project{}, m.Err
	}
	cur, ok := m.items[p.ID]
	if !ok {
		return models.Project{}, repository.ErrNotFound
	}
	p.CreatedAt = cur.CreatedAt
	p.UpdatedAt = time.Now().UTC()
	m.items[p.ID] = p
	return p, nil
}

func (m *ProjectsRepo) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return m.Err
	}
	if _, ok := m.items[id]; !ok {
		return repository.ErrNotFound
	}
	delete(m.items, id)
	return nil
}

type PostsRepo struct {
	mu    sync.Mutex
	items map[string]models.BlogPost

	Err error
}

func NewPosts() *PostsRepo {
	return &PostsRepo{items: map[string]models.BlogPost{}}
}

func (m *PostsRepo) Create(_ context.Context, b models.BlogPost) (models.BlogPost, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return models.BlogPost{}, m.Err
	}
	now := time.Now().UTC()
	b.ID = uuid.NewString()
	b.CreatedAt, b.UpdatedAt = now, now
	m.items[b.ID] = b
	return b, nil
}

func (m *PostsRepo) GetByID(_ context.Context, id string) (models.BlogPost, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return models.BlogPost{}, m.Err
	}
	b, ok := m.items[id]
	if !ok {
		return models.BlogPost{}, repository.ErrNotFound
	}
	return b, nil
}

func (m *PostsRepo) GetPublishedBySlug(_ context.Context, slug string) (models.BlogPost, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return models.BlogPost{}, m.Err
	}
	for _, b := range m.items {
		if b.Slug == slug && b.Published {
			return b, nil
		}
	}
	return models.BlogPost{}, repository.ErrNotFound
}

func matchPost(b models.BlogPost, f query.PostFilter) bool {
	if f.Published != nil && b.Published != *f.Published {
		return false
	}
	if f.Featured != nil && b.Featured != *f.Featured {
		return false
	}
	if f.Tag != "" && !contains(b.Tags, f.Tag) {
		return false
	}
	return true
}

func (m *PostsRepo) List(_ context.Context, f query.PostFilter, pg query.Page) ([]models.BlogPost, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return nil, m.Err
	}
	var all []models.BlogPost
	for _, b := range m.items {
		if matchPost(b, f) {
			b.Content = "" // list responses never carry content
			all = append(all, b)
		}
	}
	sort.Slice(all, func(i, j int) bool {
		pi, pj := all[i].PublishedAt, all[j].PublishedAt
		switch {
		case pi != nil && pj != nil && !pi.Equal(*pj):
			return pi.After(*pj)
		case pi == nil && pj != nil:
			return false
		case pi != nil && pj == nil:
			return true
		}
		return all[i].CreatedAt.After(all[j].CreatedAt)
	})
	return page(all, pg), nil
}

func (m *PostsRepo) Count(_ context.Context, f query.PostFilter) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return 0, m.Err
	}
	var n int64
	for _, b := range m.items {
		if matchPost(b, f) {
			n++
		}
	}
	return n, nil
}

func (m *PostsRepo) Update(_ context.Context, b models.BlogPost) (models.BlogPost, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return models.BlogPost{}, m.Err
	}
	cur, ok := m.items[b.ID]
	if !ok {
		return models.BlogPost{}, repository.ErrNotFound
	}
	b.CreatedAt = cur.CreatedAt
	b.Views, b.Likes = cur.Views, cur.Likes
	b.UpdatedAt = time.Now().UTC()
	m.items[b.ID] = b
	return b, nil
}

func (m *PostsRepo) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return m.Err
	}
	if _, ok := m.items[id]; !ok {
		return repository.ErrNotFound
	}
	delete(m.items, id)
	return nil
}

func (m *PostsRepo) SlugExists(_ context.Context, slug, excludeID string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return false, m.Err
	}
	for id, b := range m.items {
		if b.Slug == slug && id != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (m *PostsRepo) IncrementViews(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return m.Err
	}
	b, ok := m.items[id]
	if !ok {
		return repository.ErrNotFound
	}
	b.Views++
	m.items[id] = b
	return nil
}

func (m *PostsRepo) IncrementLikes(_ context.Context, id string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return 0, m.Err
	}
	b, ok := m.items[id]
	if !ok {
		return 0, repository.ErrNotFound
	}
	b.Likes++
	m.items[id] = b
	return b.Likes, nil
}

type ContactsRepo struct {
	mu    sync.Mutex
	items map[string]models.Contact

	Err error
}

func NewContacts() *ContactsRepo {
	return &ContactsRepo{items: map[string]models.Contact{}}
}

func (m *ContactsRepo) Create(_ context.Context, c models.Contact) (models.Contact, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return models.Contact{}, m.Err
	}
	now := time.Now().UTC()
	c.ID = uuid.NewString()
	c.CreatedAt, c.UpdatedAt = now, now
	m.items[c.ID] = c
	return c, nil
}

func (m *ContactsRepo) List(_ context.Context, f query.ContactFilter, pg query.Page) ([]models.Contact, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return nil, m.Err
	}
	var all []models.Contact
	for _, c := range m.items {
		if f.Status == "" || string(c.Status) == f.Status {
			all = append(all, c)
		}
	}
	sort.Slice(all, func(i, j int) bool { return all[i].CreatedAt.After(all[j].CreatedAt) })
	return page(all, pg), nil
}

func (m *ContactsRepo) Count(_ context.Context, f query.ContactFilter) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return 0, m.Err
	}
	var n int64
	for _, c := range m.items {
		if f.Status == "" || string(c.Status) == f.Status {
			n++
		}
	}
	return n, nil
}

func (m *ContactsRepo) UpdateStatus(_ context.Context, id string, status models.ContactStatus) (models.Contact, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return models.Contact{}, m.Err
	}
	c, ok := m.items[id]
	if !ok {
		return models.Contact{}, repository.ErrNotFound
	}
	c.Status = status
	c.UpdatedAt = time.Now().UTC()
	m.items[id] = c
	return c, nil
}

func contains(list []string, want string) bool {
	for _, s := range list {
		if s == want {
			return true
		}
	}
	return false
}

func page[T any](all []T, pg query.Page) []T {
	if pg.Offset >= len(all) {
		return nil
	}
	end := pg.Offset + pg.Limit
	if end > len(all) {
		end = len(all)
	}
	return all[pg.Offset:end]
}
