package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/meenakannan/portfolio-api/internal/models"
	"github.com/meenakannan/portfolio-api/internal/query"
	"github.com/meenakannan/portfolio-api/internal/repository"
)

type projectsRepo struct{ pool *pgxpool.Pool }

const projectCols = `id, title, description, long_description, image, images, technologies,
	live_url, github_url, featured, category, status, start_date, end_date, created_at, updated_at`

func scanProject(row pgx.Row) (models.Project, error) {
	var p models.Project
	err := row.Scan(&p.ID, &p.Title, &p.Description, &p.LongDescription, &p.Image, &p.Images,
		&p.Technologies, &p.LiveURL, &p.GithubURL, &p.Featured, &p.Category, &p.Status,
		&p.StartDate, &p.EndDate, &p.CreatedAt, &p.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return models.Project{}, repository.ErrNotFound
	}
	return p, err
}

func projectWhere(f query.ProjectFilter) (string, []any) {
	var conds []string
	var args []any
	if f.Featured != nil {
		args = append(args, *f.Featured)
		conds = append(conds, fmt.Sprintf("featured = $%d", len(args)))
	}
	if f.Category != "" {
		args = append(args, f.Category)
		conds = append(conds, fmt.Sprintf("category = $%d", len(args)))
	}
	if f.Status != "" {
		args = append(args, f.Status)
		conds = append(conds, fmt.Sprintf("status = $%d", len(args)))
	}
	if f.Technology != "" {
		args = append(args, f.Technology)
		conds = append(conds, fmt.Sprintf("$%d = ANY(technologies)", len(args)))
	}
	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

func (r *projectsRepo) Create(ctx context.Context, p models.Project) (models.Project, error) {
	p.ID = uuid.NewString()
	return scanProject(r.pool.QueryRow(ctx,
		`INSERT INTO projects (id, title, description, long_description, image, images,
		   technologies, live_url, github_url, featured, category, status, start_date, end_date)
		 VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14)
		 RETURNING `+projectCols,
		p.ID, p.Title, p.Description, p.LongDescription, p.Image, p.Images,
		p.Technologies, p.LiveURL, p.GithubURL, p.Featured, p.Category, p.Status,
		p.StartDate, p.EndDate,
	))
}

func (r *projectsRepo) GetByID(ctx context.Context, id string) (models.Project, error) {
	return scanProject(r.pool.QueryRow(ctx,
		`SELECT `+projectCols+` FROM projects WHERE id=$1`, id))
}

func (r *projectsRepo) List(ctx context.Context, f query.ProjectFilter, pg query.Page) ([]models.Project, error) {
	where, args := projectWhere(f)
	args = append(args, pg.Limit, pg.Offset)
	rows, err := r.pool.Query(ctx,
		fmt.Sprintf(`SELECT %s FROM projects%s
		 ORDER BY featured DESC, created_at DESC
		 LIMIT $%d OFFSET $%d`, projectCols, where, len(args)-1, len(args)),
		args...,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.Project
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *projectsRepo) Count(ctx context.Context, f query.ProjectFilter) (int64, error) {
	where, args := projectWhere(f)
	var n int64
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM projects`+where, args...).Scan(&n)
	return n, err
}

func (r *projectsRepo) Update(ctx context.Context, p models.Project) (models.Project, error) {
	return scanProject(r.pool.QueryRow(ctx,
		`UPDATE projects
		    SET title=$2, description=$3, long_description=$4, image=$5, images=$6,
		        technologies=$7, live_url=$8, github_url=$9, featured=$10, category=$11,
		        status=$12, start_date=$13, end_date=$14, updated_at=now()
		  WHERE id=$1
		  RETURNING `+projectCols,
		p.ID, p.Title, p.Description, p.LongDescription, p.Image, p.Images,
		p.Technologies, p.LiveURL, p.GithubURL, p.Featured, p.Category, p.Status,
		p.StartDate, p.EndDate,
	))
}

func (r *projectsRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM projects WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}
