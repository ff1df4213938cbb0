package utils

import (
	"fmt"
	"net/smtp"
	"strings"

	"medishare/config"
)

// Mailer sends transactional mail over SMTP. A nil Mailer, or one built
// without a sender address, turns every send into a no-op so the rest of
// the app never has to care whether email is configured.
type Mailer struct {
	Host     string
	Port     string
	From     string
	Password string
}

func NewMailer(cfg *config.Config) *Mailer {
	return &Mailer{
		Host:     cfg.SMTPHost,
		Port:     cfg.SMTPPort,
		From:     cfg.EmailSender,
		Password: cfg.Password,
	}
}

// Generic Send Email
func (m *Mailer) SendEmail(to []string, subject string, htmlBody string) error {
	if m == nil || m.From == "" {
		return nil
	}

	// MIME basics
	msg := "MIME-version: 1.0;\nContent-Type: text/html; charset=\"UTF-8\";\n"
	msg += fmt.Sprintf("From: MediShare <%s>\r\n", m.From)
	msg += fmt.Sprintf("To: %s\r\n", strings.Join(to, ","))
	msg += fmt.Sprintf("Subject: %s\r\n\r\n", subject)
	msg += htmlBody

	auth := smtp.PlainAuth("", m.From, m.Password, m.Host)

	err := smtp.SendMail(m.Host+":"+m.Port, auth, m.From, to, []byte(msg))
	if err != nil {
		fmt.Println("Error sending email:", err)
		return err
	}
	return nil
}

func getEmailTemplate(title string, bodyContent string) string {
	return fmt.Sprintf(`
	<!DOCTYPE html>
	<html>
	<head>
		<style>
			body { font-family: 'Helvetica Neue', Helvetica, Arial, sans-serif; background-color: #F6F6F6; margin: 0; padding: 0; }
			.container { max-width: 600px; margin: 40px auto; background: #FFFFFF; border-radius: 8px; overflow: hidden; box-shadow: 0 4px 15px rgba(0,0,0,0.05); }
			.header { background-color: #0B6E4F; padding: 30px; text-align: center; }
			.header h1 { color: #FFFFFF; margin: 0; font-size: 24px; letter-spacing: 1px; }
			.content { padding: 40px 30px; color: #1B2A2F; line-height: 1.6; }
			.content h2 { color: #0B6E4F; margin-top: 0; }
			.footer { background-color: #F6F6F6; padding: 20px; text-align: center; font-size: 12px; color: #666666; border-top: 1px solid #E0E0E0; }
			.info-box { background: #E8F5EE; padding: 15px; border-radius: 4px; border-left: 4px solid #0B6E4F; margin: 20px 0; }
		</style>
	</head>
	<body>
		<div class="container">
			<div class="header">
				<h1>MEDISHARE</h1>
			</div>
			<div class="content">
				<h2>%s</h2>
				%s
			</div>
			<div class="footer">
				&copy; 2026 MediShare. All rights reserved.<br>
				Always check expiry dates and consult a professional before taking donated medicine.
			</div>
		</div>
	</body>
	</html>
	`, title, bodyContent)
}

// --- Triggers ---

// 1. Welcome / Signup
func (m *Mailer) SendWelcomeEmail(email, name string) {
	subject := "Welcome to MediShare"
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>Welcome to <strong>MediShare</strong>! Your account has been created.</p>
		<p>You can now list unused medicines for donation or browse what others have shared.</p>
	`, name)

	go m.SendEmail([]string{email}, subject, getEmailTemplate("Welcome Onboard!", body))
}

// 2. New request against one of the donor's listings
func (m *Mailer) SendRequestAlertEmail(email, donorName, medicineName, requesterName string) {
	subject := "New request for " + medicineName
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p><strong>%s</strong> has requested your listed medicine <strong>%s</strong>.</p>
		<div class="info-box">
			Their contact details are waiting in your MediShare notifications.
		</div>
	`, donorName, requesterName, medicineName)

	go m.SendEmail([]string{email}, subject, getEmailTemplate("New Medicine Request", body))
}
