package email

import (
	"context"
	"regexp"

	"github.com/summitair/website/pkg/validator"
)

var addressPattern = regexp.MustCompile(`^[A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,}$`)

// SendEmailParams describes one transactional message.
type SendEmailParams struct {
	SendTo   string
	Subject  string
	BodyHTML string
	Tag      string
}

// Validate reports whether the params can be sent.
func (p SendEmailParams) Validate() error {
	return validator.Apply(
		validator.Required("send_to", p.SendTo),
		validator.FullMatch("send_to", p.SendTo, addressPattern, "Recipient must be a valid email address"),
		validator.Required("subject", p.Subject),
		validator.Required("body_html", p.BodyHTML),
	)
}

// EmailSender delivers transactional messages.
type EmailSender interface {
	SendEmail(ctx context.Context, params SendEmailParams) error
}
