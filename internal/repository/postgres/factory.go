package postgres

import (
	repo "github.com/meenakannan/portfolio-api/internal/repository"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repositories struct {
	Projects repo.Projects
	Posts    repo.Posts
	Contacts repo.Contacts
}

func NewRepositories(pool *pgxpool.Pool) Repositories {
	return Repositories{
		Projects: &projectsRepo{pool},
		Posts:    &postsRepo{pool},
		Contacts: &contactsRepo{pool},
	}
}
