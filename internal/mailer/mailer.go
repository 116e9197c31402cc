// Package mailer sends the contact-form notification mails over SMTP.
// Sends are best effort; callers log failures and move on.
package mailer

import (
	"fmt"
	"html"
	"strings"

	"gopkg.in/gomail.v2"

	"github.com/meenakannan/portfolio-api/internal/config"
	"github.com/meenakannan/portfolio-api/internal/models"
)

const fromName = "Meena Kannan Portfolio"

type Sender interface {
	Send(to, subject, htmlBody string) error
}

type SMTP struct {
	dialer *gomail.Dialer
	from   string
}

func NewSMTP(cfg config.Config) *SMTP {
	return &SMTP{
		dialer: gomail.NewDialer(cfg.EmailHost, cfg.EmailPort, cfg.EmailUser, cfg.EmailPass),
		from:   cfg.EmailUser,
	}
}

func (s *SMTP) Send(to, subject, htmlBody string) error {
	m := gomail.NewMessage()
	m.SetAddressHeader("From", s.from, fromName)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", htmlBody)
	return s.dialer.DialAndSend(m)
}

// ContactNotification is the internal summary mailed to the site operator.
func ContactNotification(c models.Contact) (subject, body string) {
	subject = "New Contact Form Submission: " + c.Subject
	body = fmt.Sprintf(`<h2>New Contact Form Submission</h2>
<p><strong>Name:</strong> %s</p>
<p><strong>Email:</strong> %s</p>
<p><strong>Subject:</strong> %s</p>
<p><strong>Message:</strong></p>
<p>%s</p>`,
		html.EscapeString(c.Name),
		html.EscapeString(c.Email),
		html.EscapeString(c.Subject),
		htmlParagraph(c.Message),
	)
	return subject, body
}

// AutoReply is the acknowledgment mailed back to the submitter.
func AutoReply(c models.Contact) (subject, body string) {
	subject = "Thank you for contacting Meena Kannan"
	body = fmt.Sprintf(`<h2>Thank you for reaching out!</h2>
<p>Hi %s,</p>
<p>Thank you for your message. I've received your email and will get back to you as soon as possible.</p>
<p>Best regards,<br>Meena Kannan</p>`,
		html.EscapeString(c.Name),
	)
	return subject, body
}

func htmlParagraph(s string) string {
	return strings.ReplaceAll(html.EscapeString(s), "\n", "<br>")
}
