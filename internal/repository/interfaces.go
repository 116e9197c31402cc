package repository

import (
	"context"
	"errors"

	"github.com/meenakannan/portfolio-api/internal/models"
	"github.com/meenakannan/portfolio-api/internal/query"
)

// ErrNotFound is returned when an id or slug matches no record.
var ErrNotFound = errors.New("record not found")

type Projects interface {
	Create(ctx context.Context, p models.Project) (models.Project, error)
	GetByID(ctx context.Context, id string) (models.Project, error)
	List(ctx context.Context, f query.ProjectFilter, pg query.Page) ([]models.Project, error)
	Count(ctx context.Context, f query.ProjectFilter) (int64, error)
	Update(ctx context.Context, p models.Project) (models.Project, error)
	Delete(ctx context.Context, id string) error
}

type Posts interface {
	Create(ctx context.Context, b models.BlogPost) (models.BlogPost, error)
	GetByID(ctx context.Context, id string) (models.BlogPost, error)
	// GetPublishedBySlug only sees published posts; drafts 404 publicly.
	GetPublishedBySlug(ctx context.Context, slug string) (models.BlogPost, error)
	// List never loads content; list payloads stay small.
	List(ctx context.Context, f query.PostFilter, pg query.Page) ([]models.BlogPost, error)
	Count(ctx context.Context, f query.PostFilter) (int64, error)
	Update(ctx context.Context, b models.BlogPost) (models.BlogPost, error)
	Delete(ctx context.Context, id string) error
	SlugExists(ctx context.Context, slug, excludeID string) (bool, error)

	// Counter bumps are atomic at the store, never read-modify-write.
	IncrementViews(ctx context.Context, id string) error
	IncrementLikes(ctx context.Context, id string) (int64, error)
}

type Contacts interface {
	Create(ctx context.Context, c models.Contact) (models.Contact, error)
	List(ctx context.Context, f query.ContactFilter, pg query.Page) ([]models.Contact, error)
	Count(ctx context.Context, f query.ContactFilter) (int64, error)
	UpdateStatus(ctx context.Context, id string, status models.ContactStatus) (models.Contact, error)
}
