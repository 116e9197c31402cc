package models

import (
	"strings"
	"time"

	"github.com/meenakannan/portfolio-api/internal/api/validate"
)

type ProjectCategory string

const (
	CategoryWeb     ProjectCategory = "web"
	CategoryMobile  ProjectCategory = "mobile"
	CategoryDesktop ProjectCategory = "desktop"
	CategoryOther   ProjectCategory = "other"
)

type ProjectStatus string

const (
	StatusCompleted  ProjectStatus = "completed"
	StatusInProgress ProjectStatus = "in-progress"
	StatusPlanned    ProjectStatus = "planned"
)

type Project struct {
	ID              string          `json:"id"`
	Title           string          `json:"title"`
	Description     string          `json:"description"`
	LongDescription string          `json:"longDescription,omitempty"`
	Image           string          `json:"image"`
	Images          []string        `json:"images,omitempty"`
	Technologies    []string        `json:"technologies"`
	LiveURL         string          `json:"liveUrl,omitempty"`
	GithubURL       string          `json:"githubUrl,omitempty"`
	Featured        bool            `json:"featured"`
	Category        ProjectCategory `json:"category"`
	Status          ProjectStatus   `json:"status"`
	StartDate       *time.Time      `json:"startDate,omitempty"`
	EndDate         *time.Time      `json:"endDate,omitempty"`
	CreatedAt       time.Time       `json:"createdAt"`
	UpdatedAt       time.Time       `json:"updatedAt"`
}

// Validate trims fields, fills defaults and checks schema constraints.
func (p *Project) Validate() error {
	p.Title = strings.TrimSpace(p.Title)
	p.Description = strings.TrimSpace(p.Description)
	p.LongDescription = strings.TrimSpace(p.LongDescription)
	p.Image = strings.TrimSpace(p.Image)
	p.LiveURL = strings.TrimSpace(p.LiveURL)
	p.GithubURL = strings.TrimSpace(p.GithubURL)
	p.Technologies = trimAll(p.Technologies)
	p.Images = trimAll(p.Images)
	if p.Category == "" {
		p.Category = CategoryWeb
	}
	if p.Status == "" {
		p.Status = StatusCompleted
	}

	var errs validate.Errs
	errs.Add(validate.Required("title", p.Title))
	errs.Add(validate.MaxLen("title", p.Title, 100))
	errs.Add(validate.Required("description", p.Description))
	errs.Add(validate.MaxLen("description", p.Description, 500))
	errs.Add(validate.MaxLen("longDescription", p.LongDescription, 2000))
	errs.Add(validate.Required("image", p.Image))
	if len(p.Technologies) == 0 {
		errs.Add(&validate.ErrField{Field: "technologies", Msg: "required"})
	}
	errs.Add(validate.URL("liveUrl", p.LiveURL))
	errs.Add(validate.URL("githubUrl", p.GithubURL))
	errs.Add(validate.OneOf("category", string(p.Category), "web", "mobile", "desktop", "other"))
	errs.Add(validate.OneOf("status", string(p.Status), "completed", "in-progress", "planned"))
	return errs.OrNil()
}

func trimAll(in []string) []string {
	var out []string
	for _, s := range in {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
