package mailer

import (
	"context"

	"rental-backoffice/internal/pkg/config"
	"rental-backoffice/internal/pkg/errs"

	"github.com/wneessen/go-mail"
)

type Email struct {
	To      string
	Subject string
	Body    string
}

type dialer interface {
	DialAndSendWithContext(ctx context.Context, messages ...*mail.Msg) error
}

// SMTPMailer sends plain-text mail through one configured relay.
type SMTPMailer struct {
	client   dialer
	from     string
	fromName string
}

func NewSMTPMailer(cfg config.SMTPConfig) (*SMTPMailer, error) {
	opts := []mail.Option{mail.WithPort(cfg.Port)}
	if cfg.Username != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(cfg.Username),
			mail.WithPassword(cfg.Password),
		)
	}
	c, err := mail.NewClient(cfg.Host, opts...)
	if err != nil {
		return nil, errs.Wrap(err, "could not initialize smtp client")
	}
	return &SMTPMailer{client: c, from: cfg.From, fromName: cfg.FromName}, nil
}

func (m *SMTPMailer) Send(ctx context.Context, e Email) error {
	msg, err := m.build(e)
	if err != nil {
		return err
	}
	if err := m.client.DialAndSendWithContext(ctx, msg); err != nil {
		return errs.Wrap(err, "failed to send mail")
	}
	return nil
}

func (m *SMTPMailer) build(e Email) (*mail.Msg, error) {
	msg := mail.NewMsg()
	if err := msg.FromFormat(m.fromName, m.from); err != nil {
		return nil, errs.Wrap(err, "failed to set From address")
	}
	if err := msg.To(e.To); err != nil {
		return nil, errs.Wrap(err, "failed to set To address")
	}
	msg.Subject(e.Subject)
	msg.SetBodyString(mail.TypeTextPlain, e.Body)
	return msg, nil
}
