// file: internals/helpers/mailer.go
package helper

import (
	"fmt"
	"log"
	"net/smtp"

	"buchverein_backend/internals/configs"
)

// Mailer sends best-effort notification mails after a create. Without an
// SMTP_HOST it runs in dry-run mode and only logs the mail, so dev setups
// never need a mail server.
type Mailer struct {
	Host string
	Port string
	From string
	To   string
}

func NewMailerFromEnv() *Mailer {
	return &Mailer{
		Host: configs.SMTPHost,
		Port: configs.SMTPPort,
		From: configs.MailFrom,
		To:   configs.MailTo,
	}
}

func (m *Mailer) Send(subject, body string) error {
	if m == nil || m.Host == "" {
		log.Printf("[INFO] mail (dry-run): subject=%q body=%q", subject, body)
		return nil
	}

	msg := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\n\r\n%s\r\n",
		m.From, m.To, subject, body)
	addr := m.Host + ":" + m.Port
	if err := smtp.SendMail(addr, nil, m.From, []string{m.To}, []byte(msg)); err != nil {
		log.Printf("[WARN] mail send failed: %v", err)
		return err
	}
	return nil
}
