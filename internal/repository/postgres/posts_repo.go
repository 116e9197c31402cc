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

type postsRepo struct{ pool *pgxpool.Pool }

const postCols = `id, title, slug, excerpt, content, author, tags, featured, published,
	published_at, read_time, views, likes, featured_image, created_at, updated_at`

// list queries skip content to keep list payloads small
const postListCols = `id, title, slug, excerpt, author, tags, featured, published,
	published_at, read_time, views, likes, featured_image, created_at, updated_at`

func scanPost(row pgx.Row) (models.BlogPost, error) {
	var b models.BlogPost
	err := row.Scan(&b.ID, &b.Title, &b.Slug, &b.Excerpt, &b.Content, &b.Author, &b.Tags,
		&b.Featured, &b.Published, &b.PublishedAt, &b.ReadTime, &b.Views, &b.Likes,
		&b.FeaturedImage, &b.CreatedAt, &b.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return models.BlogPost{}, repository.ErrNotFound
	}
	return b, err
}

func postWhere(f query.PostFilter) (string, []any) {
	var conds []string
	var args []any
	if f.Published != nil {
		args = append(args, *f.Published)
		conds = append(conds, fmt.Sprintf("published = $%d", len(args)))
	}
	if f.Featured != nil {
		args = append(args, *f.Featured)
		conds = append(conds, fmt.Sprintf("featured = $%d", len(args)))
	}
	if f.Tag != "" {
		args = append(args, f.Tag)
		conds = append(conds, fmt.Sprintf("$%d = ANY(tags)", len(args)))
	}
	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

func (r *postsRepo) Create(ctx context.Context, b models.BlogPost) (models.BlogPost, error) {
	b.ID = uuid.NewString()
	return scanPost(r.pool.QueryRow(ctx,
		`INSERT INTO blog_posts (id, title, slug, excerpt, content, author, tags,
		   featured, published, published_at, read_time, featured_image)
		 VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)
		 RETURNING `+postCols,
		b.ID, b.Title, b.Slug, b.Excerpt, b.Content, b.Author, b.Tags,
		b.Featured, b.Published, b.PublishedAt, b.ReadTime, b.FeaturedImage,
	))
}

func (r *postsRepo) GetByID(ctx context.Context, id string) (models.BlogPost, error) {
	return scanPost(r.pool.QueryRow(ctx,
		`SELECT `+postCols+` FROM blog_posts WHERE id=$1`, id))
}

func (r *postsRepo) GetPublishedBySlug(ctx context.Context, slug string) (models.BlogPost, error) {
	return scanPost(r.pool.QueryRow(ctx,
		`SELECT `+postCols+` FROM blog_posts WHERE slug=$1 AND published=true`, slug))
}

func (r *postsRepo) List(ctx context.Context, f query.PostFilter, pg query.Page) ([]models.BlogPost, error) {
	where, args := postWhere(f)
	args = append(args, pg.Limit, pg.Offset)
	rows, err := r.pool.Query(ctx,
		fmt.Sprintf(`SELECT %s FROM blog_posts%s
		 ORDER BY published_at DESC NULLS LAST, created_at DESC
		 LIMIT $%d OFFSET $%d`, postListCols, where, len(args)-1, len(args)),
		args...,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.BlogPost
	for rows.Next() {
		var b models.BlogPost
		if err := rows.Scan(&b.ID, &b.Title, &b.Slug, &b.Excerpt, &b.Author, &b.Tags,
			&b.Featured, &b.Published, &b.PublishedAt, &b.ReadTime, &b.Views, &b.Likes,
			&b.FeaturedImage, &b.CreatedAt, &b.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

func (r *postsRepo) Count(ctx context.Context, f query.PostFilter) (int64, error) {
	where, args := postWhere(f)
	var n int64
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM blog_posts`+where, args...).Scan(&n)
	return n, err
}

func (r *postsRepo) Update(ctx context.Context, b models.BlogPost) (models.BlogPost, error) {
	return scanPost(r.pool.QueryRow(ctx,
		`UPDATE blog_posts
		    SET title=$2, slug=$3, excerpt=$4, content=$5, author=$6, tags=$7,
		        featured=$8, published=$9, published_at=$10, read_time=$11,
		        featured_image=$12, updated_at=now()
		  WHERE id=$1
		  RETURNING `+postCols,
		b.ID, b.Title, b.Slug, b.Excerpt, b.Content, b.Author, b.Tags,
		b.Featured, b.Published, b.PublishedAt, b.ReadTime, b.FeaturedImage,
	))
}

func (r *postsRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM blog_posts WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *postsRepo) SlugExists(ctx context.Context, slug, excludeID string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM blog_posts WHERE slug=$1 AND id <> $2)`,
		slug, excludeID,
	).Scan(&exists)
	return exists, err
}

func (r *postsRepo) IncrementViews(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `UPDATE blog_posts SET views = views + 1 WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *postsRepo) IncrementLikes(ctx context.Context, id string) (int64, error) {
	var likes int64
	err := r.pool.QueryRow(ctx,
		`UPDATE blog_posts SET likes = likes + 1 WHERE id=$1 RETURNING likes`, id,
	).Scan(&likes)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, repository.ErrNotFound
	}
	return likes, err
}
