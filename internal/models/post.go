package models

import (
	"strings"
	"time"

	"github.com/meenakannan/portfolio-api/internal/api/validate"
)

const DefaultAuthor = "Meena Kannan"

type BlogPost struct {
	ID            string     `json:"id"`
	Title         string     `json:"title"`
	Slug          string     `json:"slug"`
	Excerpt       string     `json:"excerpt"`
	Content       string     `json:"content,omitempty"` // omitted from list responses
	Author        string     `json:"author"`
	Tags          []string   `json:"tags"`
	Featured      bool       `json:"featured"`
	Published     bool       `json:"published"`
	PublishedAt   *time.Time `json:"publishedAt,omitempty"`
	ReadTime      int        `json:"readTime"` // minutes
	Views         int64      `json:"views"`
	Likes         int64      `json:"likes"`
	FeaturedImage string     `json:"featuredImage,omitempty"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt"`
}

// Validate trims fields, fills defaults and checks schema constraints.
// Slug uniqueness is enforced by the store, not here.
func (b *BlogPost) Validate() error {
	b.Title = strings.TrimSpace(b.Title)
	b.Slug = strings.ToLower(strings.TrimSpace(b.Slug))
	b.Excerpt = strings.TrimSpace(b.Excerpt)
	b.Content = strings.TrimSpace(b.Content)
	b.Author = strings.TrimSpace(b.Author)
	b.FeaturedImage = strings.TrimSpace(b.FeaturedImage)
	for i, t := range b.Tags {
		b.Tags[i] = strings.ToLower(strings.TrimSpace(t))
	}
	b.Tags = trimAll(b.Tags)
	if b.Author == "" {
		b.Author = DefaultAuthor
	}

	var errs validate.Errs
	errs.Add(validate.Required("title", b.Title))
	errs.Add(validate.MaxLen("title", b.Title, 200))
	if fe := validate.Required("slug", b.Slug); fe != nil {
		errs.Add(fe)
	} else {
		errs.Add(validate.Slug("slug", b.Slug))
	}
	errs.Add(validate.Required("excerpt", b.Excerpt))
	errs.Add(validate.MaxLen("excerpt", b.Excerpt, 500))
	errs.Add(validate.Required("content", b.Content))
	errs.Add(validate.MinInt("readTime", int64(b.ReadTime), 1))
	return errs.OrNil()
}

// SetPublishedAt fills publishedAt the first time the post goes live.
// Once set it is never cleared, even if published flips back to false.
func (b *BlogPost) SetPublishedAt(now time.Time) {
	if b.Published && b.PublishedAt == nil {
		b.PublishedAt = &now
	}
}
