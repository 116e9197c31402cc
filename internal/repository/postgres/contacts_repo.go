package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/meenakannan/portfolio-api/internal/models"
	"github.com/meenakannan/portfolio-api/internal/query"
	"github.com/meenakannan/portfolio-api/internal/repository"
)

type contactsRepo struct{ pool *pgxpool.Pool }

const contactCols = `id, name, email, subject, message, status, created_at, updated_at`

func scanContact(row pgx.Row) (models.Contact, error) {
	var c models.Contact
	err := row.Scan(&c.ID, &c.Name, &c.Email, &c.Subject, &c.Message, &c.Status,
		&c.CreatedAt, &c.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return models.Contact{}, repository.ErrNotFound
	}
	return c, err
}

func contactWhere(f query.ContactFilter) (string, []any) {
	if f.Status == "" {
		return "", nil
	}
	return " WHERE status = $1", []any{f.Status}
}

func (r *contactsRepo) Create(ctx context.Context, c models.Contact) (models.Contact, error) {
	c.ID = uuid.NewString()
	return scanContact(r.pool.QueryRow(ctx,
		`INSERT INTO contacts (id, name, email, subject, message, status)
		 VALUES ($1,$2,$3,$4,$5,$6)
		 RETURNING `+contactCols,
		c.ID, c.Name, c.Email, c.Subject, c.Message, c.Status,
	))
}

func (r *contactsRepo) List(ctx context.Context, f query.ContactFilter, pg query.Page) ([]models.Contact, error) {
	where, args := contactWhere(f)
	args = append(args, pg.Limit, pg.Offset)
	rows, err := r.pool.Query(ctx,
		fmt.Sprintf(`SELECT %s FROM contacts%s
		 ORDER BY created_at DESC
		 LIMIT $%d OFFSET $%d`, contactCols, where, len(args)-1, len(args)),
		args...,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.Contact
	for rows.Next() {
		c, err := scanContact(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *contactsRepo) Count(ctx context.Context, f query.ContactFilter) (int64, error) {
	where, args := contactWhere(f)
	var n int64
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM contacts`+where, args...).Scan(&n)
	return n, err
}

func (r *contactsRepo) UpdateStatus(ctx context.Context, id string, status models.ContactStatus) (models.Contact, error) {
	return scanContact(r.pool.QueryRow(ctx,
		`UPDATE contacts SET status=$2, updated_at=now() WHERE id=$1 RETURNING `+contactCols,
		id, status,
	))
}
