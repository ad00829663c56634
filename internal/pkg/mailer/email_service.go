package mailer

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

type IEmailService interface {
	SendContactAlert(toEmail string, name, phone *string) error
}

type emailService struct {
	dialer      *gomail.Dialer
	senderEmail string
}

func NewEmailService(host string, port int, username, password, senderEmail string) IEmailService {
	d := gomail.NewDialer(host, port, username, password)

	return &emailService{
		dialer:      d,
		senderEmail: senderEmail,
	}
}

// SendContactAlert notifies the admin that a visitor asked to be contacted.
func (s *emailService) SendContactAlert(toEmail string, name, phone *string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.senderEmail)
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", "New contact request from chat widget")

	displayName := "Unknown visitor"
	if name != nil && *name != "" {
		displayName = *name
	}
	displayPhone := "not provided"
	if phone != nil && *phone != "" {
		displayPhone = *phone
	}

	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<h2>A visitor asked to be contacted</h2>
			<p>Name: <strong>%s</strong></p>
			<p>Phone: <strong>%s</strong></p>
			<p>Open the admin panel for the full transcript.</p>
		</div>
	`, displayName, displayPhone)

	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		fmt.Printf("[MAILER ERROR] Failed to send contact alert to %s: %v\n", toEmail, err)
		return err
	}

	return nil
}
