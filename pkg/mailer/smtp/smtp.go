// Package smtp delivers email through a plain SMTP server with go-mail.
package smtp

import (
	"context"
	"crypto/tls"
	"fmt"

	mail "github.com/go-mail/mail"

	"github.com/madsmiley/mailbridge/pkg/mailer"
)

// Config holds SMTP provider configuration.
// Embed this in your app config for env parsing with caarlos0/env.
type Config struct {
	Host        string `env:"SMTP_HOST,required"`
	Port        int    `env:"SMTP_PORT" envDefault:"587"`
	Username    string `env:"SMTP_USERNAME"`
	Password    string `env:"SMTP_PASSWORD"`
	SenderEmail string `env:"SMTP_FROM_EMAIL"`
	SenderName  string `env:"SMTP_FROM_NAME"`

	// TLSMode is "auto", "starttls", "ssl", or "none". Auto lets go-mail
	// negotiate STARTTLS when the server offers it.
	TLSMode string `env:"SMTP_TLS_MODE" envDefault:"auto"`

	// InsecureSkipVerify disables certificate verification. Development only.
	InsecureSkipVerify bool `env:"SMTP_INSECURE_SKIP_VERIFY" envDefault:"false"`
}

// Sender implements mailer.Sender over SMTP.
type Sender struct {
	config Config
}

// New creates a new SMTP sender.
func New(cfg Config) *Sender {
	return &Sender{config: cfg}
}

// Send implements mailer.Sender. go-mail dials per message; the context is
// checked before dialing since the library offers no cancellation hook.
func (s *Sender) Send(ctx context.Context, email *mailer.Email) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	from := email.From
	if from == "" {
		from = mailer.Recipient(s.config.SenderName, s.config.SenderEmail)
	}

	m := mail.NewMessage()
	m.SetHeader("From", from)
	m.SetHeader("To", email.To...)
	m.SetHeader("Subject", email.Subject)
	if email.ReplyTo != "" {
		m.SetHeader("Reply-To", email.ReplyTo)
	}
	if len(email.CC) > 0 {
		m.SetHeader("Cc", email.CC...)
	}
	if len(email.BCC) > 0 {
		m.SetHeader("Bcc", email.BCC...)
	}
	for name, value := range email.Headers {
		m.SetHeader(name, value)
	}

	// Prefer multipart/alternative when a text part exists.
	if email.Text != "" {
		m.SetBody("text/plain", email.Text)
		if email.HTML != "" {
			m.AddAlternative("text/html", email.HTML)
		}
	} else {
		m.SetBody("text/html", email.HTML)
	}

	d := mail.NewDialer(s.config.Host, s.config.Port, s.config.Username, s.config.Password)
	d.TLSConfig = &tls.Config{
		ServerName:         s.config.Host,
		InsecureSkipVerify: s.config.InsecureSkipVerify,
	}
	switch s.config.TLSMode {
	case "ssl":
		d.SSL = true
	case "none":
		d.TLSConfig = &tls.Config{InsecureSkipVerify: s.config.InsecureSkipVerify}
	default:
		// auto/starttls negotiated by go-mail
	}

	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("smtp: failed to send email: %w", err)
	}
	return nil
}
