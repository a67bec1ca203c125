package gateway

import (
	"bytes"
	"context"
	"errors"

	mail "github.com/wneessen/go-mail"

	"parkgate/internal/pkg/config"
	"parkgate/internal/pkg/errs"
	"parkgate/internal/usecase"
)

// SMTPMailer delivers the confirmation email over SMTP. The per-recipient
// accepted/rejected buckets are reconstructed from the transport outcome:
// SMTP gives one verdict per message here, so a rejected send puts the
// recipient in Rejected and a clean send puts it in Accepted.
type SMTPMailer struct {
	cfg config.MailConfig
}

func NewSMTPMailer(cfg config.Config) *SMTPMailer {
	return &SMTPMailer{cfg: cfg.Mail}
}

func (m *SMTPMailer) Send(ctx context.Context, email usecase.Email) (*usecase.SendResult, error) {
	msg := mail.NewMsg()
	if err := msg.From(m.cfg.From); err != nil {
		return nil, errs.Wrap(err, "invalid sender address")
	}
	if err := msg.To(email.To); err != nil {
		return nil, errs.Wrap(err, "invalid recipient address")
	}
	msg.Subject(email.Subject)
	msg.SetBodyString(mail.TypeTextPlain, email.Text)
	msg.AddAlternativeString(mail.TypeTextHTML, email.HTML)

	for _, att := range email.Attachments {
		msg.AttachReader(att.Filename, bytes.NewReader(att.Data),
			mail.WithFileContentType(mail.ContentType(att.ContentType)))
	}

	client, err := mail.NewClient(m.cfg.Host,
		mail.WithPort(m.cfg.Port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(m.cfg.Username),
		mail.WithPassword(m.cfg.Password),
		mail.WithTLSPortPolicy(mail.TLSOpportunistic),
	)
	if err != nil {
		return nil, errs.Wrap(err, "failed to build smtp client")
	}

	if err := client.DialAndSendWithContext(ctx, msg); err != nil {
		var sendErr *mail.SendError
		if errors.As(err, &sendErr) {
			// Transport reached the server but the message was refused.
			return &usecase.SendResult{Rejected: []string{email.To}}, nil
		}
		return nil, errs.Wrap(err, "smtp send failed")
	}

	return &usecase.SendResult{Accepted: []string{email.To}}, nil
}
