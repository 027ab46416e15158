package notify

import (
	"context"
	"errors"
	"fmt"
	"net/smtp"

	"djflowerz_payments/internal/domain/entities"
	"djflowerz_payments/internal/usecase/interfaces"
)

var ErrMissingSMTPConfig = errors.New("missing SMTP_HOST/SMTP_FROM configuration")

// SMTPNotifier delivers email notifications over plain SMTP.

type SMTPNotifier struct {
	host     string
	port     string
	username string
	password string
	from     string
	adminTo  string

	// send is swappable for tests; defaults to smtp.SendMail.
	send func(addr string, a smtp.Auth, from string, to []string, msg []byte) error
}

var _ interfaces.INotifier = (*SMTPNotifier)(nil)

type SMTPConfig struct {
	Host     string
	Port     string
	Username string
	Password string
	From     string
	AdminTo  string
}

func NewSMTPNotifier(cfg SMTPConfig) (*SMTPNotifier, error) {
	if cfg.Host == "" || cfg.From == "" {
		return nil, ErrMissingSMTPConfig
	}
	if cfg.Port == "" {
		cfg.Port = "587"
	}
	return &SMTPNotifier{
		host:     cfg.Host,
		port:     cfg.Port,
		username: cfg.Username,
		password: cfg.Password,
		from:     cfg.From,
		adminTo:  cfg.AdminTo,
		send:     smtp.SendMail,
	}, nil
}

func (s *SMTPNotifier) Notify(_ context.Context, n entities.Notification) error {
	to := n.Recipient
	if to == "" {
		to = s.adminTo
	}
	if to == "" {
		return errors.New("email notification has no recipient")
	}

	msg := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\n\r\n%s\r\n", s.from, to, n.Subject, n.Text)

	var auth smtp.Auth
	if s.username != "" {
		auth = smtp.PlainAuth("", s.username, s.password, s.host)
	}
	return s.send(s.host+":"+s.port, auth, s.from, []string{to}, []byte(msg))
}
