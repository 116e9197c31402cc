package models

import (
	"strings"
	"time"

	"github.com/meenakannan/portfolio-api/internal/api/validate"
)

type ContactStatus string

const (
	ContactNew      ContactStatus = "new"
	ContactRead     ContactStatus = "read"
	ContactReplied  ContactStatus = "replied"
	ContactArchived ContactStatus = "archived"
)

type Contact struct {
	ID        string        `json:"id"`
	Name      string        `json:"name"`
	Email     string        `json:"email"`
	Subject   string        `json:"subject"`
	Message   string        `json:"message"`
	Status    ContactStatus `json:"status"`
	CreatedAt time.Time     `json:"createdAt"`
	UpdatedAt time.Time     `json:"updatedAt"`
}

// Validate trims fields, fills defaults and checks schema constraints.
func (c *Contact) Validate() error {
	c.Name = strings.TrimSpace(c.Name)
	c.Email = strings.ToLower(strings.TrimSpace(c.Email))
	c.Subject = strings.TrimSpace(c.Subject)
	c.Message = strings.TrimSpace(c.Message)
	if c.Status == "" {
		c.Status = ContactNew
	}

	var errs validate.Errs
	errs.Add(validate.Required("name", c.Name))
	errs.Add(validate.MaxLen("name", c.Name, 100))
	if fe := validate.Required("email", c.Email); fe != nil {
		errs.Add(fe)
	} else {
		errs.Add(validate.Email("email", c.Email))
	}
	errs.Add(validate.Required("subject", c.Subject))
	errs.Add(validate.MaxLen("subject", c.Subject, 200))
	errs.Add(validate.Required("message", c.Message))
	errs.Add(validate.MaxLen("message", c.Message, 2000))
	errs.Add(validate.OneOf("status", string(c.Status), "new", "read", "replied", "archived"))
	return errs.OrNil()
}
