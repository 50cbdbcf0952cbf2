package utils

import (
	"edusite/config"
	"edusite/models"
	"fmt"
	"log"
	"net/smtp"
	"strings"
)

// SendMailFunc is the SMTP send used by SendEmail. Tests swap it out to
// observe dispatches without a mail server.
var SendMailFunc = smtp.SendMail

// SendEmail sends a plain-text email to the given recipients.
func SendEmail(to []string, subject, body string) error {
	cfg := config.AppConfig

	msg := fmt.Sprintf("From: %s\r\n", cfg.EmailSender)
	msg += fmt.Sprintf("To: %s\r\n", strings.Join(to, ","))
	msg += fmt.Sprintf("Subject: %s\r\n", subject)
	msg += "MIME-version: 1.0;\r\nContent-Type: text/plain; charset=\"UTF-8\";\r\n\r\n"
	msg += body

	auth := smtp.PlainAuth("", cfg.EmailSender, cfg.EmailPassword, cfg.SMTPHost)

	return SendMailFunc(cfg.SMTPHost+":"+cfg.SMTPPort, auth, cfg.EmailSender, to, []byte(msg))
}

// notifyAdmin is a best-effort send to the configured admin address.
// A failed send is logged and swallowed; it never reaches the caller.
func notifyAdmin(subject, body string) {
	if err := SendEmail([]string{config.AppConfig.AdminEmail}, subject, body); err != nil {
		log.Printf("Error sending admin notification %q: %v", subject, err)
	}
}

// NotifyPartnershipApplication tells the admin about a new partnership inquiry.
func NotifyPartnershipApplication(app *models.PartnershipApplication) {
	subject := "New Partnership Application - " + app.SchoolName
	body := fmt.Sprintf(`New Partnership Application Received

School Name: %s
School Address: %s
School Phone: %s
School Email: %s
Class Type: %s

Please review this application in the admin panel.
`, app.SchoolName, app.SchoolAddress, app.SchoolPhone, app.SchoolEmail, app.ClassType)

	notifyAdmin(subject, body)
}

// NotifyContactMessage tells the admin about a new contact message.
func NotifyContactMessage(msg *models.ContactMessage) {
	subject := "New Contact Message - " + msg.Subject
	body := fmt.Sprintf(`New Contact Message Received

Name: %s
Email: %s
Phone: %s
Subject: %s

Message:
%s

Please respond to this inquiry.
`, msg.Name, msg.Email, msg.Phone, msg.Subject, msg.Message)

	notifyAdmin(subject, body)
}
