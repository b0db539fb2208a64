package delivery

import (
	"context"
	"fmt"
	"strings"
	"time"

	gomail "github.com/wneessen/go-mail"

	"roadmap_backend/internal/roadmap"
)

// SMTPSender delivers operator notifications via a direct SMTP connection
// using go-mail. It is only constructed when the full SMTP option set is
// present; a partially configured transport stays disabled.
type SMTPSender struct {
	host      string
	port      int
	username  string
	password  string
	secure    bool
	fromEmail string
	toEmail   string
}

// NewSMTPSender creates a new SMTPSender with the given SMTP credentials.
func NewSMTPSender(host string, port int, username, password string, secure bool, fromEmail, toEmail string) *SMTPSender {
	return &SMTPSender{
		host:      host,
		port:      port,
		username:  username,
		password:  password,
		secure:    secure,
		fromEmail: fromEmail,
		toEmail:   toEmail,
	}
}

// SendRoadmapNotification mails the lead record and generated roadmap to the
// fixed operator address as plaintext.
func (s *SMTPSender) SendRoadmapNotification(ctx context.Context, lead roadmap.LeadRecord, text, modelUsed string) error {
	subject := fmt.Sprintf("New roadmap for %s", lead.FirstName)
	return s.send(ctx, subject, buildNotificationBody(lead, text, modelUsed))
}

func (s *SMTPSender) send(ctx context.Context, subject, body string) error {
	msg := gomail.NewMsg()
	if err := msg.From(s.fromEmail); err != nil {
		return fmt.Errorf("smtp from: %w", err)
	}
	if err := msg.To(s.toEmail); err != nil {
		return fmt.Errorf("smtp to: %w", err)
	}
	msg.Subject(subject)
	msg.SetBodyString(gomail.TypeTextPlain, body)

	tlsPolicy := gomail.TLSOpportunistic
	if s.secure {
		tlsPolicy = gomail.TLSMandatory
	}

	client, err := gomail.NewClient(s.host,
		gomail.WithPort(s.port),
		gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
		gomail.WithUsername(s.username),
		gomail.WithPassword(s.password),
		gomail.WithTLSPortPolicy(tlsPolicy),
		gomail.WithTimeout(15*time.Second),
	)
	if err != nil {
		return fmt.Errorf("smtp client: %w", err)
	}

	if err := client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("smtp send: %w", err)
	}

	return nil
}

func buildNotificationBody(lead roadmap.LeadRecord, text, modelUsed string) string {
	var b strings.Builder
	b.WriteString("A new roadmap was generated.\n\n")
	b.WriteString("Name: " + lead.FirstName + "\n")
	b.WriteString("Goal: " + lead.Goal + "\n")
	b.WriteString("Stuck: " + lead.Stuck + "\n")
	b.WriteString("Plan: " + lead.Level + "\n")
	if lead.Email != "" {
		b.WriteString("Email: " + lead.Email + "\n")
	}
	if lead.Phone != "" {
		b.WriteString("Phone: " + lead.Phone + "\n")
	}
	if lead.ContactID != "" {
		b.WriteString("Contact ID: " + lead.ContactID + "\n")
	}
	b.WriteString("Model: " + modelUsed + "\n")
	b.WriteString("\n----------------------------------------\n\n")
	b.WriteString(text)
	b.WriteString("\n")
	return b.String()
}
