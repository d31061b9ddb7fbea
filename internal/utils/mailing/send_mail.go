package mailing

import (
	"fmt"
	"strconv"

	"gopkg.in/gomail.v2"

	"Bar-Management-SaaS/internal/utils"
)

type MailConfig struct {
	AppURL       string
	SMTPHost     string
	SMTPPort     string
	SMTPSender   string
	SMTPEmail    string
	SMTPPassword string
}

func LoadMailConfig() MailConfig {
	return MailConfig{
		AppURL:       utils.GetConfig("APP_URL"),
		SMTPHost:     utils.GetConfig("SMTP_HOST"),
		SMTPPort:     utils.GetConfig("SMTP_PORT"),
		SMTPSender:   utils.GetConfig("SMTP_SENDER_NAME"),
		SMTPEmail:    utils.GetConfig("SMTP_AUTH_EMAIL"),
		SMTPPassword: utils.GetConfig("SMTP_AUTH_PASSWORD"),
	}
}

func SendMail(toEmail string, subject string, body string) error {
	emailConfig := LoadMailConfig()

	mailer := gomail.NewMessage()
	mailer.SetHeader("From", emailConfig.SMTPEmail)
	mailer.SetHeader("To", toEmail)
	mailer.SetHeader("Subject", subject)
	mailer.SetBody("text/html", body)
	port, err := strconv.Atoi(emailConfig.SMTPPort)
	if err != nil {
		return err
	}
	dialer := gomail.NewDialer(
		emailConfig.SMTPHost,
		port,
		emailConfig.SMTPEmail,
		emailConfig.SMTPPassword,
	)

	return dialer.DialAndSend(mailer)
}

// SendInviteMail delivers an invitation code for joining a store.
func SendInviteMail(toEmail string, storeName string, role string, inviteCode string) error {
	emailConfig := LoadMailConfig()

	joinURL := fmt.Sprintf("%s/join?code=%s", emailConfig.AppURL, inviteCode)
	body := fmt.Sprintf(`
		<h2>%s へのご招待</h2>
		<p>あなたは %s として %s に招待されました。</p>
		<p>招待コード: <b>%s</b></p>
		<p><a href="%s">こちらから登録してください</a></p>
	`, storeName, role, storeName, inviteCode, joinURL)

	return SendMail(toEmail, fmt.Sprintf("%s への招待", storeName), body)
}
