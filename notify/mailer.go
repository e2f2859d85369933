package notify

import (
	"fmt"
	"net/http"

	"eduportal/logger"

	"github.com/sendgrid/sendgrid-go"
	sgmail "github.com/sendgrid/sendgrid-go/helpers/mail"
	"go.uber.org/zap"
)

// Message is a single outgoing email.
type Message struct {
	ToName  string
	ToEmail string
	Subject string
	Text    string
	HTML    string
}

// Mailer delivers email messages.
type Mailer interface {
	Send(msg Message) error
}

// SendgridMailer sends mail through the SendGrid v3 API.
type SendgridMailer struct {
	client *sendgrid.Client
	from   *sgmail.Email
}

func NewSendgridMailer(apiKey, fromName, fromEmail string) *SendgridMailer {
	return &SendgridMailer{
		client: sendgrid.NewSendClient(apiKey),
		from:   sgmail.NewEmail(fromName, fromEmail),
	}
}

func (m *SendgridMailer) Send(msg Message) error {
	to := sgmail.NewEmail(msg.ToName, msg.ToEmail)
	mail := sgmail.NewSingleEmail(m.from, msg.Subject, to, msg.Text, msg.HTML)

	resp, err := m.client.Send(mail)
	if err != nil {
		return err
	}
	if resp.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("sendgrid: status %d: %s", resp.StatusCode, resp.Body)
	}
	return nil
}

// LogMailer writes messages to the application log instead of sending them.
type LogMailer struct{}

func (LogMailer) Send(msg Message) error {
	logger.Log.Info("mail",
		zap.String("to", msg.ToEmail),
		zap.String("subject", msg.Subject),
		zap.String("text", msg.Text),
	)
	return nil
}
