package helper

import (
	"fmt"
	"net/smtp"

	"github.com/jordan-wright/email"

	"github.com/zacharvey88/teatime-collective-sub000/config"
)

// SendPasswordResetEmail mails an admin a reset link as plain text. Order
// emails go through gomail with HTML templates; this one stays minimal.
func SendPasswordResetEmail(to, token string) error {
	host := config.Config("SMTP_HOST")
	from := config.Config("SMTP_FROM")
	username := config.Config("SMTP_USERNAME")
	password := config.Config("SMTP_PASSWORD")
	port := config.ConfigDefault("SMTP_PORT", "587")
	baseUrl := config.ConfigDefault("ADMIN_BASE_URL", "http://localhost:3000")

	e := email.NewEmail()
	e.From = from
	e.To = []string{to}
	e.Subject = "Reset your Teatime Collective admin password"
	e.Text = []byte(fmt.Sprintf(
		"A password reset was requested for your account.\n\n"+
			"Reset link (valid for 1 hour):\n%s/reset-password?token=%s\n\n"+
			"If you did not request this, ignore this email.",
		baseUrl, token,
	))

	return e.Send(fmt.Sprintf("%s:%s", host, port), smtp.PlainAuth("", username, password, host))
}
