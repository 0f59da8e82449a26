// Copyright (c) 2026 Alor Foundation. All rights reserved.

// Package mailer sends transactional email over SMTP.
package mailer

import (
	"fmt"
	"log/slog"

	"gopkg.in/gomail.v2"
)

// Sender abstracts outbound email so services can be tested without SMTP.
type Sender interface {
	Send(email Email) error
	Enabled() bool
}

// Email represents one outbound message.
type Email struct {
	To       []string
	Subject  string
	Body     string
	HTMLBody string
}

// MailRecorder counts delivery outcomes, typically the metrics collector.
// A nil recorder disables counting.
type MailRecorder interface {
	RecordMail(success bool)
}

// Mailer sends email through a configured SMTP relay.
type Mailer struct {
	dialer   *gomail.Dialer
	from     string
	recorder MailRecorder
	logger   *slog.Logger
}

// Config holds the SMTP settings the mailer needs.
type Config struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

/*
New creates a Mailer for the given SMTP settings. When cfg.Host is empty
the mailer is disabled: Send becomes a logged no-op so environments without
an SMTP relay keep working.

Parameters:
  - cfg: SMTP relay settings.
  - recorder: delivery outcome counter, may be nil.
  - logger: structured logger for delivery outcomes.

Returns:
  - Sender: a live Mailer, or a disabled one when no host is configured.
*/
func New(cfg Config, recorder MailRecorder, logger *slog.Logger) Sender {
	if cfg.Host == "" {
		logger.Warn("SMTP host not configured, outbound email disabled")
		return &noopMailer{logger: logger}
	}

	return &Mailer{
		dialer:   gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
		from:     cfg.From,
		recorder: recorder,
		logger:   logger,
	}
}

func (m *Mailer) record(success bool) {
	if m.recorder != nil {
		m.recorder.RecordMail(success)
	}
}

// Enabled reports whether the mailer can deliver email.
func (m *Mailer) Enabled() bool { return true }

/*
Send delivers a single email.

Parameters:
  - email: message to deliver; at least one recipient is required.

Returns:
  - error: nil on success, the SMTP error otherwise.
*/
func (m *Mailer) Send(email Email) error {
	if len(email.To) == 0 {
		m.record(false)
		return fmt.Errorf("no recipients specified")
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", email.To...)
	msg.SetHeader("Subject", email.Subject)

	if email.HTMLBody != "" {
		msg.SetBody("text/html", email.HTMLBody)
		if email.Body != "" {
			msg.AddAlternative("text/plain", email.Body)
		}
	} else {
		msg.SetBody("text/plain", email.Body)
	}

	if err := m.dialer.DialAndSend(msg); err != nil {
		m.record(false)
		return fmt.Errorf("send email: %w", err)
	}

	m.record(true)
	m.logger.Debug("email sent", "to", email.To, "subject", email.Subject)
	return nil
}

// noopMailer drops all email. Used when SMTP is not configured.
type noopMailer struct {
	logger *slog.Logger
}

func (n *noopMailer) Enabled() bool { return false }

func (n *noopMailer) Send(email Email) error {
	n.logger.Debug("email delivery skipped, SMTP disabled", "subject", email.Subject)
	return nil
}
