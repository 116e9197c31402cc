package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/meenakannan/portfolio-api/internal/api/validate"
	"github.com/meenakannan/portfolio-api/internal/models"
	"github.com/meenakannan/portfolio-api/internal/query"
	repo "github.com/meenakannan/portfolio-api/internal/repository"
)

type BlogService struct{ r repo.Posts }

func NewBlogService(r repo.Posts) *BlogService { return &BlogService{r: r} }

func (s *BlogService) List(ctx context.Context, f query.PostFilter, pg query.Page) ([]models.BlogPost, int64, error) {
	items, err := s.r.List(ctx, f, pg)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.r.Count(ctx, f)
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func (s *BlogService) Get(ctx context.Context, id string) (models.BlogPost, error) {
	return s.r.GetByID(ctx, id)
}

// GetBySlug serves the public read path: published posts only, and a
// view bump recorded as a separate write. The returned record carries
// the pre-increment count; that slack is accepted.
func (s *BlogService) GetBySlug(ctx context.Context, slug string) (models.BlogPost, error) {
	b, err := s.r.GetPublishedBySlug(ctx, slug)
	if err != nil {
		return models.BlogPost{}, err
	}
	if err := s.r.IncrementViews(ctx, b.ID); err != nil {
		slog.Error("view increment", "slug", slug, "err", err)
	}
	return b, nil
}

func (s *BlogService) Create(ctx context.Context, b models.BlogPost) (models.BlogPost, error) {
	if err := b.Validate(); err != nil {
		return models.BlogPost{}, err
	}
	if err := s.checkSlug(ctx, b.Slug, ""); err != nil {
		return models.BlogPost{}, err
	}
	b.SetPublishedAt(time.Now().UTC())
	return s.r.Create(ctx, b)
}

func (s *BlogService) Update(ctx context.Context, b models.BlogPost) (models.BlogPost, error) {
	if err := b.Validate(); err != nil {
		return models.BlogPost{}, err
	}
	if err := s.checkSlug(ctx, b.Slug, b.ID); err != nil {
		return models.BlogPost{}, err
	}
	b.SetPublishedAt(time.Now().UTC())
	return s.r.Update(ctx, b)
}

func (s *BlogService) Delete(ctx context.Context, id string) error {
	return s.r.Delete(ctx, id)
}

func (s *BlogService) Like(ctx context.Context, id string) (int64, error) {
	return s.r.IncrementLikes(ctx, id)
}

func (s *BlogService) checkSlug(ctx context.Context, slug, excludeID string) error {
	taken, err := s.r.SlugExists(ctx, slug, excludeID)
	if err != nil {
		return err
	}
	if taken {
		return validate.Errs{{Field: "slug", Msg: "already in use"}}
	}
	return nil
}
