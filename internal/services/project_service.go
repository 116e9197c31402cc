package services

import (
	"context"

	"github.com/meenakannan/portfolio-api/internal/models"
	"github.com/meenakannan/portfolio-api/internal/query"
	repo "github.com/meenakannan/portfolio-api/internal/repository"
)

type ProjectService struct{ r repo.Projects }

func NewProjectService(r repo.Projects) *ProjectService { return &ProjectService{r: r} }

func (s *ProjectService) List(ctx context.Context, f query.ProjectFilter, pg query.Page) ([]models.Project, int64, error) {
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

func (s *ProjectService) Get(ctx context.Context, id string) (models.Project, error) {
	return s.r.GetByID(ctx, id)
}

func (s *ProjectService) Create(ctx context.Context, p models.Project) (models.Project, error) {
	if err := p.Validate(); err != nil {
		return models.Project{}, err
	}
	return s.r.Create(ctx, p)
}

func (s *ProjectService) Update(ctx context.Context, p models.Project) (models.Project, error) {
	if err := p.Validate(); err != nil {
		return models.Project{}, err
	}
	return s.r.Update(ctx, p)
}

func (s *ProjectService) Delete(ctx context.Context, id string) error {
	return s.r.Delete(ctx, id)
}
